package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"green-link/internal/infra/pubsub"
	"green-link/internal/infra/sql"
	inventoryDomain "green-link/internal/inventory/domain"
	"green-link/internal/inventory/persistence/internal"
	"green-link/internal/inventory/usecases"
	"green-link/internal/shared_kernel/avro"
)

func NewItemRepository(
	publisherFactory pubsub.PublisherFactory,
	orm sql.ORM,
) (*SimpleItemRepository, error) {
	publisher, err := publisherFactory.New(pubsub.TopicInventoryItems, &avro.InventoryItemChanged{})
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}

	err = orm.AutoMigrate(&internal.Item{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleItemRepository{
		publisher: publisher,
		orm:       orm,
	}, nil
}

var _ usecases.ItemRepository = (*SimpleItemRepository)(nil)

type SimpleItemRepository struct {
	publisher pubsub.Publisher
	orm       sql.ORM
}

func (r *SimpleItemRepository) Create(ctx context.Context, item inventoryDomain.Item) error {
	entity := internal.FromItem(item)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if errors.Is(err, sql.ErrDuplicatedKey) {
		return usecases.ErrDuplicateItemID
	}
	if err != nil {
		return fmt.Errorf("creating inventory item in database: %w", err)
	}

	r.publish(ctx, avro.OperationCreated, item)
	return nil
}

func (r *SimpleItemRepository) FindAll(ctx context.Context, filter usecases.ItemFilter) ([]inventoryDomain.Item, int, error) {
	var total int64
	err := r.filtered(ctx, filter).Count(&total).Error()
	if err != nil {
		return nil, 0, fmt.Errorf("count query: %w", err)
	}

	query := r.filtered(ctx, filter).Order("created_at DESC, id DESC")
	if filter.Pagination != nil {
		query = query.Limit(filter.Pagination.Limit).Offset(filter.Pagination.Offset)
	}

	var entities []internal.Item
	err = query.Find(&entities).Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]inventoryDomain.Item, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}

func (r *SimpleItemRepository) filtered(ctx context.Context, filter usecases.ItemFilter) sql.ORM {
	query := r.orm.WithContext(ctx).Model(&internal.Item{})
	if q := strings.TrimSpace(filter.Query); q != "" {
		query = query.Where(`LOWER(item_name) LIKE ? ESCAPE '\'`, "%"+escapeLike(strings.ToLower(q))+"%")
	}
	return query
}

func (r *SimpleItemRepository) GetByItemID(ctx context.Context, itemID string) (inventoryDomain.Item, error) {
	var entity internal.Item
	err := r.orm.
		WithContext(ctx).
		First(&entity, "item_id = ?", itemID).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return inventoryDomain.Item{}, usecases.ErrItemNotFound
	}

	if err != nil {
		return inventoryDomain.Item{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleItemRepository) Update(ctx context.Context, item inventoryDomain.Item) error {
	entity := internal.FromItem(item)

	err := r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		var existing internal.Item
		if err := tx.First(&existing, "item_id = ?", entity.ItemID).Error(); err != nil {
			return err
		}
		entity.ID = existing.ID
		entity.CreatedAt = existing.CreatedAt
		return tx.Save(&entity).Error()
	})
	if errors.Is(err, sql.ErrRecordNotFound) {
		return usecases.ErrItemNotFound
	}
	if err != nil {
		return fmt.Errorf("updating inventory item in database: %w", err)
	}

	r.publish(ctx, avro.OperationUpdated, entity.ToDomain())
	return nil
}

func (r *SimpleItemRepository) Delete(ctx context.Context, itemID string) (inventoryDomain.Item, error) {
	var entity internal.Item

	err := r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		if err := tx.First(&entity, "item_id = ?", itemID).Error(); err != nil {
			return err
		}
		return tx.Delete(&internal.Item{}, "item_id = ?", itemID).Error()
	})
	if errors.Is(err, sql.ErrRecordNotFound) {
		return inventoryDomain.Item{}, usecases.ErrItemNotFound
	}
	if err != nil {
		return inventoryDomain.Item{}, fmt.Errorf("deleting inventory item in database: %w", err)
	}

	item := entity.ToDomain()
	r.publish(ctx, avro.OperationDeleted, item)
	return item, nil
}

// publish emits a change event keyed by the business item id. Failures are
// logged only; the row is already written.
func (r *SimpleItemRepository) publish(ctx context.Context, operation avro.Operation, item inventoryDomain.Item) {
	event := &avro.InventoryItemChanged{
		Operation:  string(operation),
		ID:         item.ID.String(),
		ItemID:     item.ItemID,
		ItemName:   item.ItemName.String(),
		ItemBrand:  item.ItemBrand,
		ItemPrice:  item.ItemPrice,
		StockCount: item.StockCount,
		OccurredAt: time.Now().UTC(),
	}

	if err := r.publisher.Publish(ctx, pubsub.Key(item.ItemID), event); err != nil {
		slog.Error("publishing inventory item change", slog.String("item_id", item.ItemID), slog.String("error", err.Error()))
	}
}

func escapeLike(value string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(value)
}
