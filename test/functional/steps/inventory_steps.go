package steps

import (
	"slices"
	"strings"

	"github.com/cucumber/godog"
)

func (fc *FeatureContext) iAddAnInventoryItem(itemID, name string, stock int) error {
	scopedID := fc.scoped(itemID)
	err := fc.record(fc.apiDriver.CreateItem(map[string]any{
		"itemID":     scopedID,
		"itemName":   name,
		"itemBrand":  "Green Link",
		"itemPrice":  100,
		"stockCount": stock,
	}))
	if err != nil {
		return err
	}
	if fc.response.StatusCode() == 201 {
		fc.itemIDs = append(fc.itemIDs, scopedID)
	}
	return nil
}

func (fc *FeatureContext) anInventoryItemExists(itemID, name string, stock int) error {
	if err := fc.iAddAnInventoryItem(itemID, name, stock); err != nil {
		return err
	}
	fc.require.Equal(201, fc.response.StatusCode(), "creating item: %s", fc.response.String())
	return nil
}

func (fc *FeatureContext) iGetTheInventoryItem(itemID string) error {
	return fc.record(fc.apiDriver.GetItem(fc.scoped(itemID)))
}

func (fc *FeatureContext) iUpdateTheInventoryItemWith(itemID string, table *godog.Table) error {
	patch := tableFields(table)
	if v, ok := patch["itemID"].(string); ok {
		patch["itemID"] = fc.scoped(v)
	}
	return fc.record(fc.apiDriver.UpdateItem(fc.scoped(itemID), patch))
}

func (fc *FeatureContext) iDeleteTheInventoryItem(itemID string) error {
	return fc.record(fc.apiDriver.DeleteItem(fc.scoped(itemID)))
}

func (fc *FeatureContext) iListLowStockItems() error {
	return fc.record(fc.apiDriver.ListLowStock(""))
}

func (fc *FeatureContext) iListLowStockItemsBelow(threshold string) error {
	return fc.record(fc.apiDriver.ListLowStock(threshold))
}

// theLowStockListShouldContainExactly ignores items other scenarios left on
// the server.
func (fc *FeatureContext) theLowStockListShouldContainExactly(itemIDs string) error {
	listed := make([]string, 0)
	for _, item := range fc.body.Get("data").Array() {
		id := item.Get("itemID").String()
		if slices.Contains(fc.itemIDs, id) {
			listed = append(listed, fc.unscoped(id))
		}
	}

	expected := make([]string, 0)
	for _, id := range strings.Split(itemIDs, ",") {
		if id = strings.TrimSpace(id); id != "" {
			expected = append(expected, id)
		}
	}

	fc.require.ElementsMatch(expected, listed)
	return nil
}
