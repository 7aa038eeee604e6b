package repository

import (
	"gorm.io/gorm"

	"github.com/YarenOpuz/smart-stock/internal/warehouse/domain"
)

type GormWarehouseRepository struct {
	db *gorm.DB
}

func NewGormWarehouseRepository(db *gorm.DB) *GormWarehouseRepository {
	return &GormWarehouseRepository{db: db}
}

func (r *GormWarehouseRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Warehouse{})
}

func (r *GormWarehouseRepository) Create(warehouse *domain.Warehouse) error {
	return r.db.Create(warehouse).Error
}

func (r *GormWarehouseRepository) FindByID(id uint) (*domain.Warehouse, error) {
	var warehouse domain.Warehouse
	err := r.db.First(&warehouse, id).Error
	if err != nil {
		return nil, err
	}
	return &warehouse, nil
}

func (r *GormWarehouseRepository) FindByName(name string) (*domain.Warehouse, error) {
	var warehouse domain.Warehouse
	err := r.db.Where("name = ?", name).First(&warehouse).Error
	if err != nil {
		return nil, err
	}
	return &warehouse, nil
}

func (r *GormWarehouseRepository) FindAll(limit, offset int) ([]domain.Warehouse, error) {
	var warehouses []domain.Warehouse
	err := r.db.Limit(limit).Offset(offset).Find(&warehouses).Error
	return warehouses, err
}

func (r *GormWarehouseRepository) FindByOwner(ownerID uint) ([]domain.Warehouse, error) {
	var warehouses []domain.Warehouse
	err := r.db.Where("owner_id = ?", ownerID).Find(&warehouses).Error
	return warehouses, err
}

func (r *GormWarehouseRepository) Update(warehouse *domain.Warehouse) error {
	return r.db.Save(warehouse).Error
}

func (r *GormWarehouseRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Warehouse{}, id).Error
}

func (r *GormWarehouseRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Warehouse{}).Count(&count).Error
	return count, err
}
