package usecases

//go:generate mockgen -source=./item_service.go -destination=../../../test/unit/doubles/inventory/usecases/item_service_mock.go -package=usecases -mock_names=ItemService=MockItemService

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"green-link/internal/infra/async"
	"green-link/internal/infra/utils"
	inventoryDomain "green-link/internal/inventory/domain"
	shareddomain "green-link/internal/shared_kernel/domain"
	"green-link/internal/shared_kernel/report"
)

const (
	InventoryTopic  async.BrokerTopicName = "inventory"
	StockLowEvent                         = "stock_low"
	DefaultThreshold                      = -1
)

type ItemService interface {
	CreateItem(ctx context.Context, fields map[string]any) (inventoryDomain.Item, error)
	ListItems(ctx context.Context, filter ItemFilter) ([]inventoryDomain.Item, int, error)
	GetItem(ctx context.Context, itemID string) (inventoryDomain.Item, error)
	UpdateItem(ctx context.Context, itemID string, patch map[string]any) (inventoryDomain.Item, error)
	DeleteItem(ctx context.Context, itemID string) (inventoryDomain.Item, error)
	// ListLowStock uses the configured threshold when given DefaultThreshold.
	ListLowStock(ctx context.Context, threshold int) ([]inventoryDomain.Item, error)
	ExportItems(ctx context.Context, w io.Writer, format report.Format) error
}

type ItemServiceConfig struct {
	LowStockThreshold    int
	LockBrandAndCategory bool
}

func NewItemService(
	repository ItemRepository,
	broker async.InternalBroker,
	clock utils.Clock,
	config ItemServiceConfig,
) *SimpleItemService {
	if config.LowStockThreshold <= 0 {
		config.LowStockThreshold = inventoryDomain.DefaultLowStockThreshold
	}

	return &SimpleItemService{
		repository: repository,
		broker:     broker,
		clock:      clock,
		config:     config,
	}
}

var _ ItemService = (*SimpleItemService)(nil)

type SimpleItemService struct {
	repository ItemRepository
	broker     async.InternalBroker
	clock      utils.Clock
	config     ItemServiceConfig
}

func (s *SimpleItemService) CreateItem(ctx context.Context, fields map[string]any) (inventoryDomain.Item, error) {
	record, err := inventoryDomain.ItemSchema.Validate(fields)
	if err != nil {
		return inventoryDomain.Item{}, err
	}

	item, err := inventoryDomain.NewItemBuilder().
		WithRecord(record).
		WithCreatedAt(s.clock.Now()).
		Build()
	if err != nil {
		return inventoryDomain.Item{}, fmt.Errorf("building inventory item: %w", err)
	}

	_, err = s.repository.GetByItemID(ctx, item.ItemID)
	if err == nil {
		return inventoryDomain.Item{}, conflict(item.ItemID)
	}
	if !errors.Is(err, ErrItemNotFound) {
		return inventoryDomain.Item{}, unavailable("checking inventory item id", err)
	}

	err = s.repository.Create(ctx, item)
	if errors.Is(err, ErrDuplicateItemID) {
		return inventoryDomain.Item{}, conflict(item.ItemID)
	}
	if err != nil {
		return inventoryDomain.Item{}, unavailable("creating inventory item", err)
	}

	slog.Info("inventory item created", slog.String("item_id", item.ItemID), slog.Int("stock", item.StockCount))
	s.checkStock(ctx, item)
	return item, nil
}

func (s *SimpleItemService) ListItems(ctx context.Context, filter ItemFilter) ([]inventoryDomain.Item, int, error) {
	items, total, err := s.repository.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, unavailable("listing inventory items", err)
	}

	return items, total, nil
}

func (s *SimpleItemService) GetItem(ctx context.Context, itemID string) (inventoryDomain.Item, error) {
	item, err := s.repository.GetByItemID(ctx, itemID)
	if errors.Is(err, ErrItemNotFound) {
		return inventoryDomain.Item{}, notFound(itemID)
	}
	if err != nil {
		return inventoryDomain.Item{}, unavailable("getting inventory item", err)
	}

	return item, nil
}

func (s *SimpleItemService) UpdateItem(ctx context.Context, itemID string, patch map[string]any) (inventoryDomain.Item, error) {
	record, err := inventoryDomain.ItemSchema.ValidatePatch(patch)
	if err != nil {
		return inventoryDomain.Item{}, err
	}

	if newID, ok := record.String(inventoryDomain.FieldItemID); ok && newID != itemID {
		verr := shareddomain.NewValidationError(shareddomain.KindInventoryItem)
		verr.Add(inventoryDomain.FieldItemID, "Item ID cannot be changed")
		return inventoryDomain.Item{}, verr
	}

	item, err := s.GetItem(ctx, itemID)
	if err != nil {
		return inventoryDomain.Item{}, err
	}

	if s.config.LockBrandAndCategory {
		if err := checkLockedFields(item, record); err != nil {
			return inventoryDomain.Item{}, err
		}
	}

	item.Apply(record)
	item.UpdatedAt = s.clock.Now()

	err = s.repository.Update(ctx, item)
	if errors.Is(err, ErrItemNotFound) {
		return inventoryDomain.Item{}, notFound(itemID)
	}
	if err != nil {
		return inventoryDomain.Item{}, unavailable("updating inventory item", err)
	}

	slog.Debug("inventory item updated", slog.String("item_id", itemID))
	s.checkStock(ctx, item)
	return item, nil
}

func (s *SimpleItemService) DeleteItem(ctx context.Context, itemID string) (inventoryDomain.Item, error) {
	item, err := s.repository.Delete(ctx, itemID)
	if errors.Is(err, ErrItemNotFound) {
		return inventoryDomain.Item{}, notFound(itemID)
	}
	if err != nil {
		return inventoryDomain.Item{}, unavailable("deleting inventory item", err)
	}

	slog.Info("inventory item deleted", slog.String("item_id", itemID))
	return item, nil
}

func (s *SimpleItemService) ListLowStock(ctx context.Context, threshold int) ([]inventoryDomain.Item, error) {
	if threshold == DefaultThreshold {
		threshold = s.config.LowStockThreshold
	}

	items, _, err := s.repository.FindAll(ctx, ItemFilter{})
	if err != nil {
		return nil, unavailable("listing low stock items", err)
	}

	return inventoryDomain.LowStock(items, threshold), nil
}

func (s *SimpleItemService) ExportItems(ctx context.Context, w io.Writer, format report.Format) error {
	items, _, err := s.repository.FindAll(ctx, ItemFilter{})
	if err != nil {
		return unavailable("exporting inventory items", err)
	}

	if err := report.Render(w, format, "Inventory", NewItemReportRows(items)); err != nil {
		return fmt.Errorf("rendering inventory report: %w", err)
	}

	return nil
}

// checkStock announces items that fell below the configured threshold.
func (s *SimpleItemService) checkStock(ctx context.Context, item inventoryDomain.Item) {
	if !item.IsLowStock(s.config.LowStockThreshold) {
		return
	}

	err := s.broker.Publish(ctx, InventoryTopic, async.BrokerMessage{Event: StockLowEvent, Value: item})
	if errors.Is(err, async.ErrTopicNotFound) {
		slog.Debug("nobody listens for low stock", slog.String("item_id", item.ItemID))
		return
	}
	if err != nil {
		slog.Error("publishing low stock", slog.String("item_id", item.ItemID), slog.String("error", err.Error()))
	}
}

func checkLockedFields(item inventoryDomain.Item, record map[string]any) error {
	verr := shareddomain.NewValidationError(shareddomain.KindInventoryItem)

	if v, ok := record[inventoryDomain.FieldItemBrand]; ok && v != item.ItemBrand {
		verr.Add(inventoryDomain.FieldItemBrand, "Item Brand cannot be changed")
	}
	if v, ok := record[inventoryDomain.FieldCategory]; ok {
		current := utils.ValueOr(item.Category, "")
		if next, _ := v.(string); next != current {
			verr.Add(inventoryDomain.FieldCategory, "Category cannot be changed")
		}
	}

	return verr.OrNil()
}

func conflict(itemID string) error {
	return &shareddomain.ConflictError{Kind: shareddomain.KindInventoryItem, Key: itemID}
}

func notFound(itemID string) error {
	return &shareddomain.NotFoundError{Kind: shareddomain.KindInventoryItem, Key: itemID}
}

func unavailable(op string, err error) error {
	slog.Error(op, slog.String("error", err.Error()))
	return shareddomain.NewUnavailableError(op, err)
}
