package internal

import (
	"green-link/internal/infra/utils"
	inventoryDomain "green-link/internal/inventory/domain"
)

type ItemResponse struct {
	ID              string     `json:"id"`
	ItemID          string     `json:"itemID"`
	ItemName        string     `json:"itemName"`
	ItemBrand       string     `json:"itemBrand"`
	ItemPrice       float64    `json:"itemPrice"`
	StockCount      int        `json:"stockCount"`
	ItemDescription *string    `json:"itemDescription"`
	Category        *string    `json:"catagory"`
	Warranty        *string    `json:"warranty"`
	ImgURL          *string    `json:"imgURL"`
	CreatedAt       utils.Time `json:"createdAt"`
	UpdatedAt       utils.Time `json:"updatedAt"`
}

func ToItemResponse(item inventoryDomain.Item) ItemResponse {
	return ItemResponse{
		ID:              item.ID.String(),
		ItemID:          item.ItemID,
		ItemName:        item.ItemName.String(),
		ItemBrand:       item.ItemBrand,
		ItemPrice:       item.ItemPrice,
		StockCount:      item.StockCount,
		ItemDescription: item.ItemDescription,
		Category:        item.Category,
		Warranty:        item.Warranty,
		ImgURL:          item.ImgURL,
		CreatedAt:       utils.Time{Time: item.CreatedAt},
		UpdatedAt:       utils.Time{Time: item.UpdatedAt},
	}
}

func ToItemResponses(items []inventoryDomain.Item) []ItemResponse {
	result := make([]ItemResponse, len(items))
	for i, item := range items {
		result[i] = ToItemResponse(item)
	}
	return result
}
