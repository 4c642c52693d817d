package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/groomshop/grooming-scheduler/internal/apperr"
	"github.com/groomshop/grooming-scheduler/internal/models"
)

// Catalog reads the fixed service-type list.
type Catalog interface {
	GetServiceType(ctx context.Context, id uint) (*models.ServiceType, error)
	ListServiceTypes(ctx context.Context) ([]models.ServiceType, error)
}

type GormCatalog struct {
	db *gorm.DB
}

func NewGormCatalog(db *gorm.DB) *GormCatalog {
	return &GormCatalog{db: db}
}

func (c *GormCatalog) GetServiceType(
	ctx context.Context,
	id uint,
) (*models.ServiceType, error) {

	var st models.ServiceType
	if err := c.db.WithContext(ctx).First(&st, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("invalid_service_type", "Service type not found.")
		}
		return nil, err
	}
	return &st, nil
}

func (c *GormCatalog) ListServiceTypes(
	ctx context.Context,
) ([]models.ServiceType, error) {

	var types []models.ServiceType
	if err := c.db.WithContext(ctx).
		Order("id ASC").
		Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

var _ Catalog = (*GormCatalog)(nil)
