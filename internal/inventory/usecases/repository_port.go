package usecases

//go:generate mockgen -source=repository_port.go -destination=../../../test/unit/doubles/inventory/usecases/repository_port_mock.go -package=usecases -mock_names=ItemRepository=MockItemRepository

import (
	"context"
	"errors"

	inventoryDomain "green-link/internal/inventory/domain"
)

var (
	ErrItemNotFound    = errors.New("inventory item not found")
	ErrDuplicateItemID = errors.New("inventory item id already taken")
)

type Pagination struct {
	Limit  int
	Offset int
}

// ItemFilter narrows a listing. A nil Pagination returns every match.
type ItemFilter struct {
	Query      string
	Pagination *Pagination
}

// ItemRepository is keyed by the business item id. Listings come newest
// first.
type ItemRepository interface {
	Create(ctx context.Context, item inventoryDomain.Item) error
	FindAll(ctx context.Context, filter ItemFilter) ([]inventoryDomain.Item, int, error)
	GetByItemID(ctx context.Context, itemID string) (inventoryDomain.Item, error)
	Update(ctx context.Context, item inventoryDomain.Item) error
	Delete(ctx context.Context, itemID string) (inventoryDomain.Item, error)
}
