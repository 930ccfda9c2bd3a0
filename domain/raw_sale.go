package domain

import (
	"time"
)

// CREATE TABLE public.raw_sales (
//     id               BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     sale_id          TEXT NOT NULL,
//     brand            TEXT,
//     score            NUMERIC,
//     is_new           BOOLEAN,
//     badges           TEXT,
//     category         TEXT,
//     delta            NUMERIC,
//     followers        NUMERIC,
//     conversion       NUMERIC,
//     revenue          NUMERIC,
//     brand_appearance NUMERIC,
//     avg_price        NUMERIC,
//     created_at       TIMESTAMPTZ DEFAULT NOW()
// );

// RawSale is one row of the raw sales table the catalog publisher
// preprocesses into SaleRecord entries.
type RawSale struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement"`
	SaleID          string    `gorm:"column:sale_id;not null"`
	Brand           string    `gorm:"column:brand;type:text"`
	Score           float64   `gorm:"column:score;type:numeric"`
	IsNew           bool      `gorm:"column:is_new;default:false"`
	Badges          string    `gorm:"column:badges;type:text"`
	Category        string    `gorm:"column:category;type:text"`
	Delta           float64   `gorm:"column:delta;type:numeric"`
	Followers       float64   `gorm:"column:followers;type:numeric"`
	Conversion      float64   `gorm:"column:conversion;type:numeric"`
	Revenue         float64   `gorm:"column:revenue;type:numeric"`
	BrandAppearance float64   `gorm:"column:brand_appearance;type:numeric"`
	AvgPrice        float64   `gorm:"column:avg_price;type:numeric"`
	CreatedAt       time.Time `gorm:"column:created_at"`
}

func (RawSale) TableName() string {
	return "raw_sales"
}
