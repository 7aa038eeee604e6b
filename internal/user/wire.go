//go:build wireinject
// +build wireinject

package user

import (
	"time"

	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/YarenOpuz/smart-stock/internal/user/delivery/http"
	"github.com/YarenOpuz/smart-stock/internal/user/domain"
	"github.com/YarenOpuz/smart-stock/internal/user/repository"
	"github.com/YarenOpuz/smart-stock/internal/user/usecase/command"
	"github.com/YarenOpuz/smart-stock/internal/user/usecase/query"
)

// ProvideUserRepository provides the user repository
func ProvideUserRepository(db *gorm.DB) domain.UserRepository {
	return repository.NewGormUserRepository(db)
}

var RepositorySet = wire.NewSet(
	ProvideUserRepository,
)

var CommandHandlerSet = wire.NewSet(
	command.NewRegisterUserHandler,
	command.NewLoginUserHandler,
	command.NewUpdateUserHandler,
	command.NewDeleteUserHandler,
)

var QueryHandlerSet = wire.NewSet(
	query.NewGetUserHandler,
	query.NewListUsersHandler,
)

// InitializeUserHandler initializes the HTTP handler with all dependencies
func InitializeUserHandler(db *gorm.DB, events command.EventPublisher, tokenTTL time.Duration) (*http.UserHandler, error) {
	wire.Build(
		RepositorySet,
		CommandHandlerSet,
		QueryHandlerSet,
		http.NewUserHandlerWithDI,
	)
	return nil, nil
}
