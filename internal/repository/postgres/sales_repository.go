package postgres

import (
	"context"
	"fmt"

	"salesreco/domain"

	"gorm.io/gorm"
)

// SalesRepository reads the raw sales table the catalog publisher
// preprocesses into the shared catalog.
type SalesRepository struct {
	DB *gorm.DB
}

func NewSalesRepository(db *gorm.DB) *SalesRepository {
	return &SalesRepository{
		DB: db,
	}
}

func (r *SalesRepository) FindAll(ctx context.Context) ([]domain.RawSale, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var sales []domain.RawSale
	err := r.DB.WithContext(ctx).Find(&sales).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find raw sales: %w", err)
	}

	return sales, nil
}
