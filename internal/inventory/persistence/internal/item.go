package internal

import (
	"time"

	inventoryDomain "green-link/internal/inventory/domain"
	shareddomain "green-link/internal/shared_kernel/domain"
)

type Item struct {
	ID              string  `gorm:"primaryKey"`
	ItemID          string  `gorm:"not null;uniqueIndex"`
	ItemName        string  `gorm:"not null;index"`
	ItemBrand       string  `gorm:"not null"`
	ItemPrice       float64 `gorm:"not null"`
	StockCount      int     `gorm:"not null"`
	ItemDescription *string
	Category        *string
	Warranty        *string
	ImgURL          *string
	CreatedAt       time.Time `gorm:"index;autoCreateTime:false"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime:false"`
}

func (Item) TableName() string {
	return "inventory_items"
}

func (i Item) ToDomain() inventoryDomain.Item {
	return inventoryDomain.Item{
		ID:              shareddomain.ID(i.ID),
		ItemID:          i.ItemID,
		ItemName:        shareddomain.Name(i.ItemName),
		ItemBrand:       i.ItemBrand,
		ItemPrice:       i.ItemPrice,
		StockCount:      i.StockCount,
		ItemDescription: i.ItemDescription,
		Category:        i.Category,
		Warranty:        i.Warranty,
		ImgURL:          i.ImgURL,
		CreatedAt:       i.CreatedAt.UTC(),
		UpdatedAt:       i.UpdatedAt.UTC(),
	}
}

func FromItem(value inventoryDomain.Item) Item {
	return Item{
		ID:              value.ID.String(),
		ItemID:          value.ItemID,
		ItemName:        value.ItemName.String(),
		ItemBrand:       value.ItemBrand,
		ItemPrice:       value.ItemPrice,
		StockCount:      value.StockCount,
		ItemDescription: value.ItemDescription,
		Category:        value.Category,
		Warranty:        value.Warranty,
		ImgURL:          value.ImgURL,
		CreatedAt:       value.CreatedAt,
		UpdatedAt:       value.UpdatedAt,
	}
}
