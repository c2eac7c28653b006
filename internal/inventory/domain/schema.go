package domain

import (
	shareddomain "green-link/internal/shared_kernel/domain"
	"green-link/internal/shared_kernel/schema"
)

const (
	FieldItemID          = "itemID"
	FieldItemName        = "itemName"
	FieldItemBrand       = "itemBrand"
	FieldItemPrice       = "itemPrice"
	FieldStockCount      = "stockCount"
	FieldItemDescription = "itemDescription"
	FieldCategory        = "catagory"
	FieldWarranty        = "warranty"
	FieldImgURL          = "imgURL"
)

var ItemSchema = schema.NewSchemaBuilder(shareddomain.KindInventoryItem).
	Required(FieldItemID, "Item ID", schema.FieldTypeText).
	Required(FieldItemName, "Item Name", schema.FieldTypeText).
	Required(FieldItemBrand, "Item Brand", schema.FieldTypeText).
	Required(FieldItemPrice, "Item Price", schema.FieldTypeNumber).NonNegative().
	Required(FieldStockCount, "Stock Count", schema.FieldTypeInteger).NonNegative().
	Optional(FieldItemDescription, "Item Description", schema.FieldTypeText).
	Optional(FieldCategory, "Category", schema.FieldTypeText).
	Optional(FieldWarranty, "Warranty", schema.FieldTypeText).
	Optional(FieldImgURL, "Image URL", schema.FieldTypeText).
	Build()
