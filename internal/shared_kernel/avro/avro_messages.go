package avro

import "time"

type Operation string

const (
	OperationCreated Operation = "created"
	OperationUpdated Operation = "updated"
	OperationDeleted Operation = "deleted"
)

// CropChanged is emitted after every crop write.
type CropChanged struct {
	Operation           string     `avro:"operation"`
	ID                  string     `avro:"id"`
	Name                string     `avro:"name"`
	Type                string     `avro:"type"`
	Season              string     `avro:"season"`
	YieldPerAcre        *float64   `avro:"yield_per_acre"`
	PlantingDate        *time.Time `avro:"planting_date"`
	ExpectedHarvestDate *time.Time `avro:"expected_harvest_date"`
	OccurredAt          time.Time  `avro:"occurred_at"`
}

// InventoryItemChanged is emitted after every inventory item write.
type InventoryItemChanged struct {
	Operation  string    `avro:"operation"`
	ID         string    `avro:"id"`
	ItemID     string    `avro:"item_id"`
	ItemName   string    `avro:"item_name"`
	ItemBrand  string    `avro:"item_brand"`
	ItemPrice  float64   `avro:"item_price"`
	StockCount int       `avro:"stock_count"`
	OccurredAt time.Time `avro:"occurred_at"`
}
