package domain

import (
	"errors"
	"time"

	"green-link/internal/infra/utils"
	shareddomain "green-link/internal/shared_kernel/domain"
	"green-link/internal/shared_kernel/schema"
)

const DefaultLowStockThreshold = 5

var ErrIncompleteItem = errors.New("inventory item needs an item id, a name and a brand")

type Item struct {
	ID              shareddomain.ID
	ItemID          string
	ItemName        shareddomain.Name
	ItemBrand       string
	ItemPrice       float64
	StockCount      int
	ItemDescription *string
	Category        *string
	Warranty        *string
	ImgURL          *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (i Item) IsLowStock(threshold int) bool {
	return i.StockCount < threshold
}

// Apply merges a normalized record onto the item. The business key is only
// taken from the record when the item has none yet.
func (i *Item) Apply(record schema.Record) {
	if v, ok := record.String(FieldItemID); ok && i.ItemID == "" {
		i.ItemID = v
	}
	if v, ok := record.String(FieldItemName); ok {
		i.ItemName = shareddomain.Name(v)
	}
	if v, ok := record.String(FieldItemBrand); ok {
		i.ItemBrand = v
	}
	if v, ok := record.Float(FieldItemPrice); ok && v != nil {
		i.ItemPrice = *v
	}
	if v, ok := record.Int(FieldStockCount); ok && v != nil {
		i.StockCount = *v
	}
	applyText(record, FieldItemDescription, &i.ItemDescription)
	applyText(record, FieldCategory, &i.Category)
	applyText(record, FieldWarranty, &i.Warranty)
	applyText(record, FieldImgURL, &i.ImgURL)
}

func applyText(record schema.Record, name string, target **string) {
	if !record.Has(name) {
		return
	}
	v, _ := record.String(name)
	*target = utils.StringPtr(v)
}

// LowStock keeps the items whose stock is strictly below threshold, in order.
func LowStock(items []Item, threshold int) []Item {
	result := make([]Item, 0)
	for _, item := range items {
		if item.IsLowStock(threshold) {
			result = append(result, item)
		}
	}
	return result
}

func NewItemBuilder() *itemBuilder {
	return &itemBuilder{}
}

type itemBuilder struct {
	actions []itemHandler
}

type itemHandler func(v *Item) error

func (b *itemBuilder) WithItemID(value string) *itemBuilder {
	b.actions = append(b.actions, func(d *Item) error {
		d.ItemID = value
		return nil
	})
	return b
}

func (b *itemBuilder) WithItemName(value string) *itemBuilder {
	b.actions = append(b.actions, func(d *Item) error {
		d.ItemName = shareddomain.Name(value)
		return nil
	})
	return b
}

func (b *itemBuilder) WithItemBrand(value string) *itemBuilder {
	b.actions = append(b.actions, func(d *Item) error {
		d.ItemBrand = value
		return nil
	})
	return b
}

func (b *itemBuilder) WithItemPrice(value float64) *itemBuilder {
	b.actions = append(b.actions, func(d *Item) error {
		d.ItemPrice = value
		return nil
	})
	return b
}

func (b *itemBuilder) WithStockCount(value int) *itemBuilder {
	b.actions = append(b.actions, func(d *Item) error {
		d.StockCount = value
		return nil
	})
	return b
}

func (b *itemBuilder) WithCategory(value string) *itemBuilder {
	b.actions = append(b.actions, func(d *Item) error {
		d.Category = utils.StringPtr(value)
		return nil
	})
	return b
}

func (b *itemBuilder) WithCreatedAt(value time.Time) *itemBuilder {
	b.actions = append(b.actions, func(d *Item) error {
		d.CreatedAt = value
		d.UpdatedAt = value
		return nil
	})
	return b
}

func (b *itemBuilder) WithRecord(record schema.Record) *itemBuilder {
	b.actions = append(b.actions, func(d *Item) error {
		d.Apply(record)
		return nil
	})
	return b
}

func (b *itemBuilder) Build() (Item, error) {
	now := time.Now().UTC()
	result := Item{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return Item{}, err
		}
	}

	if result.ItemID == "" || result.ItemName == "" || result.ItemBrand == "" {
		return Item{}, ErrIncompleteItem
	}

	return result, nil
}
