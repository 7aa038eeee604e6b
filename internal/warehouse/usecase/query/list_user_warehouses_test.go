package query

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	userdomain "github.com/YarenOpuz/smart-stock/internal/user/domain"
	userrepo "github.com/YarenOpuz/smart-stock/internal/user/repository"
	"github.com/YarenOpuz/smart-stock/internal/warehouse/domain"
	"github.com/YarenOpuz/smart-stock/internal/warehouse/repository"
)

func setupQueryDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to connect to in-memory db")
	require.NoError(t, db.AutoMigrate(&userdomain.User{}, &domain.Warehouse{}))

	return db
}

func TestListUserWarehouses(t *testing.T) {
	db := setupQueryDB(t)
	handler := NewListUserWarehousesHandler(
		repository.NewGormWarehouseRepository(db),
		userrepo.NewGormUserRepository(db),
	)

	owner := &userdomain.User{Email: "a@b.com", Password: "x", IsActive: true}
	other := &userdomain.User{Email: "c@d.com", Password: "x", IsActive: true}
	require.NoError(t, db.Create(owner).Error)
	require.NoError(t, db.Create(other).Error)

	require.NoError(t, db.Create(&domain.Warehouse{Name: "w1", Location: "x", Capacity: 10, OwnerID: owner.ID}).Error)
	require.NoError(t, db.Create(&domain.Warehouse{Name: "w2", Location: "x", Capacity: 10, OwnerID: owner.ID}).Error)

	warehouses, err := handler.Handle(ListUserWarehousesQuery{UserID: owner.ID})
	require.NoError(t, err)
	require.Len(t, warehouses, 2)

	// A user without warehouses gets an empty list, not an error
	warehouses, err = handler.Handle(ListUserWarehousesQuery{UserID: other.ID})
	require.NoError(t, err)
	require.Empty(t, warehouses)
}

func TestListUserWarehousesUnknownUser(t *testing.T) {
	db := setupQueryDB(t)
	handler := NewListUserWarehousesHandler(
		repository.NewGormWarehouseRepository(db),
		userrepo.NewGormUserRepository(db),
	)

	_, err := handler.Handle(ListUserWarehousesQuery{UserID: 42})
	require.ErrorIs(t, err, userdomain.ErrUserNotFound)
}
