package catalog

import (
	"context"
	"fmt"
	"sort"
	"time"

	"salesreco/domain"
)

// RawSalesRepository loads the rows of the raw sales table.
type RawSalesRepository interface {
	FindAll(ctx context.Context) ([]domain.RawSale, error)
}

// CatalogWriter stores the preprocessed catalog under its shared key.
type CatalogWriter interface {
	PublishCatalog(ctx context.Context, catalog domain.Catalog) error
}

// NumericScaler rescales a preprocessed feature row in place. The hook
// exists for deployments that apply the fitted scaler from model
// training; Publish works without one.
type NumericScaler interface {
	Scale(row []float64)
}

type CatalogService struct {
	sales  RawSalesRepository
	writer CatalogWriter
	scaler NumericScaler
}

func NewCatalogService(sales RawSalesRepository, writer CatalogWriter, scaler NumericScaler) *CatalogService {
	return &CatalogService{
		sales:  sales,
		writer: writer,
		scaler: scaler,
	}
}

// scaleMetrics runs the fitted scaler over the six log-scaled commerce
// metrics of a record. Badge and category attributes are untouched.
func scaleMetrics(rec *domain.SaleRecord, scaler NumericScaler) {
	row := []float64{
		rec.LogDelta,
		rec.LogFollowers,
		rec.Conversion,
		rec.LogRevenue,
		rec.LogBrandAppearance,
		rec.LogAvgPrice,
	}
	scaler.Scale(row)
	rec.LogDelta = row[0]
	rec.LogFollowers = row[1]
	rec.Conversion = row[2]
	rec.LogRevenue = row[3]
	rec.LogBrandAppearance = row[4]
	rec.LogAvgPrice = row[5]
}

// Publish preprocesses the raw sales table into the shared catalog,
// ordered by ranking score descending, and stores it for the
// recommendation engines. It returns the number of published sales.
func (s *CatalogService) Publish(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	rows, err := s.sales.FindAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load raw sales: %w", err)
	}

	records := make([]domain.SaleRecord, 0, len(rows))
	for _, row := range rows {
		rec := BuildSaleRecord(row)
		if s.scaler != nil {
			scaleMetrics(&rec, s.scaler)
		}
		records = append(records, rec)
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Score > records[j].Score
	})

	catalog := domain.Catalog{
		Sales:     records,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.writer.PublishCatalog(ctx, catalog); err != nil {
		return 0, fmt.Errorf("failed to publish catalog: %w", err)
	}
	return len(records), nil
}
