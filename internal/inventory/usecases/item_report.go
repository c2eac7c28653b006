package usecases

import (
	"strconv"

	inventoryDomain "green-link/internal/inventory/domain"
	"green-link/internal/shared_kernel/report"
)

type ItemReportRow struct {
	ItemID     string `csv:"Item ID"`
	ItemName   string `csv:"Item Name"`
	Brand      string `csv:"Brand"`
	Price      string `csv:"Price"`
	StockCount string `csv:"Stock Count"`
	AddedDate  string `csv:"Added Date"`
}

func NewItemReportRows(items []inventoryDomain.Item) []ItemReportRow {
	rows := make([]ItemReportRow, len(items))
	for i, item := range items {
		rows[i] = ItemReportRow{
			ItemID:     report.Text(item.ItemID),
			ItemName:   report.Text(item.ItemName.String()),
			Brand:      report.Text(item.ItemBrand),
			Price:      report.Number(&item.ItemPrice),
			StockCount: strconv.Itoa(item.StockCount),
			AddedDate:  report.Date(&item.CreatedAt),
		}
	}
	return rows
}
