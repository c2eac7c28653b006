package usecases

//go:generate mockgen -source=repository_port.go -destination=../../../test/unit/doubles/crops/usecases/repository_port_mock.go -package=usecases -mock_names=CropRepository=MockCropRepository

import (
	"context"
	"errors"
	"time"

	cropsDomain "green-link/internal/crops/domain"
	shareddomain "green-link/internal/shared_kernel/domain"
)

var ErrCropNotFound = errors.New("crop not found")

type Pagination struct {
	Limit  int
	Offset int
}

// CropFilter narrows a listing. A nil Pagination returns every match.
type CropFilter struct {
	Query      string
	Pagination *Pagination
}

type CropRepository interface {
	Create(ctx context.Context, crop cropsDomain.Crop) error
	FindAll(ctx context.Context, filter CropFilter) ([]cropsDomain.Crop, int, error)
	GetByID(ctx context.Context, id shareddomain.ID) (cropsDomain.Crop, error)
	FindHarvestingBetween(ctx context.Context, from, to time.Time) ([]cropsDomain.Crop, error)
	Update(ctx context.Context, crop cropsDomain.Crop) error
	Delete(ctx context.Context, id shareddomain.ID) (cropsDomain.Crop, error)
}
