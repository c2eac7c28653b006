package usecases

//go:generate mockgen -source=./crop_service.go -destination=../../../test/unit/doubles/crops/usecases/crop_service_mock.go -package=usecases -mock_names=CropService=MockCropService

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	cropsDomain "green-link/internal/crops/domain"
	"green-link/internal/infra/utils"
	shareddomain "green-link/internal/shared_kernel/domain"
	"green-link/internal/shared_kernel/report"
)

type CropService interface {
	CreateCrop(ctx context.Context, fields map[string]any) (cropsDomain.Crop, error)
	ListCrops(ctx context.Context, filter CropFilter) ([]cropsDomain.Crop, int, error)
	GetCrop(ctx context.Context, id shareddomain.ID) (cropsDomain.Crop, error)
	UpdateCrop(ctx context.Context, id shareddomain.ID, patch map[string]any) (cropsDomain.Crop, error)
	DeleteCrop(ctx context.Context, id shareddomain.ID) (cropsDomain.Crop, error)
	GrowthOf(crop cropsDomain.Crop) cropsDomain.Growth
	ExportCrops(ctx context.Context, w io.Writer, format report.Format) error
}

func NewCropService(repository CropRepository, clock utils.Clock) *SimpleCropService {
	return &SimpleCropService{
		repository: repository,
		clock:      clock,
	}
}

var _ CropService = (*SimpleCropService)(nil)

type SimpleCropService struct {
	repository CropRepository
	clock      utils.Clock
}

func (s *SimpleCropService) CreateCrop(ctx context.Context, fields map[string]any) (cropsDomain.Crop, error) {
	record, err := cropsDomain.CropSchema.Validate(fields)
	if err != nil {
		return cropsDomain.Crop{}, err
	}

	crop, err := cropsDomain.NewCropBuilder().
		WithRecord(record).
		WithCreatedAt(s.clock.Now()).
		Build()
	if err != nil {
		return cropsDomain.Crop{}, fmt.Errorf("building crop: %w", err)
	}

	if err := crop.CheckSchedule(); err != nil {
		return cropsDomain.Crop{}, err
	}

	if err := s.repository.Create(ctx, crop); err != nil {
		return cropsDomain.Crop{}, unavailable("creating crop", err)
	}

	slog.Info("crop created", slog.String("id", crop.ID.String()), slog.String("name", crop.Name.String()))
	return crop, nil
}

func (s *SimpleCropService) ListCrops(ctx context.Context, filter CropFilter) ([]cropsDomain.Crop, int, error) {
	crops, total, err := s.repository.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, unavailable("listing crops", err)
	}

	return crops, total, nil
}

func (s *SimpleCropService) GetCrop(ctx context.Context, id shareddomain.ID) (cropsDomain.Crop, error) {
	crop, err := s.repository.GetByID(ctx, id)
	if errors.Is(err, ErrCropNotFound) {
		return cropsDomain.Crop{}, &shareddomain.NotFoundError{Kind: shareddomain.KindCrop, Key: id.String()}
	}
	if err != nil {
		return cropsDomain.Crop{}, unavailable("getting crop", err)
	}

	return crop, nil
}

// UpdateCrop merges patch onto the stored crop. The patch is validated before
// the crop is looked up.
func (s *SimpleCropService) UpdateCrop(ctx context.Context, id shareddomain.ID, patch map[string]any) (cropsDomain.Crop, error) {
	record, err := cropsDomain.CropSchema.ValidatePatch(patch)
	if err != nil {
		return cropsDomain.Crop{}, err
	}

	crop, err := s.GetCrop(ctx, id)
	if err != nil {
		return cropsDomain.Crop{}, err
	}

	crop.Apply(record)
	if record.Has(cropsDomain.FieldPlantingDate) || record.Has(cropsDomain.FieldExpectedHarvestDate) {
		if err := crop.CheckSchedule(); err != nil {
			return cropsDomain.Crop{}, err
		}
	}
	crop.UpdatedAt = s.clock.Now()

	err = s.repository.Update(ctx, crop)
	if errors.Is(err, ErrCropNotFound) {
		return cropsDomain.Crop{}, &shareddomain.NotFoundError{Kind: shareddomain.KindCrop, Key: id.String()}
	}
	if err != nil {
		return cropsDomain.Crop{}, unavailable("updating crop", err)
	}

	slog.Debug("crop updated", slog.String("id", id.String()))
	return crop, nil
}

func (s *SimpleCropService) DeleteCrop(ctx context.Context, id shareddomain.ID) (cropsDomain.Crop, error) {
	crop, err := s.repository.Delete(ctx, id)
	if errors.Is(err, ErrCropNotFound) {
		return cropsDomain.Crop{}, &shareddomain.NotFoundError{Kind: shareddomain.KindCrop, Key: id.String()}
	}
	if err != nil {
		return cropsDomain.Crop{}, unavailable("deleting crop", err)
	}

	slog.Info("crop deleted", slog.String("id", id.String()))
	return crop, nil
}

func (s *SimpleCropService) GrowthOf(crop cropsDomain.Crop) cropsDomain.Growth {
	return crop.GrowthAt(s.clock.Now())
}

func (s *SimpleCropService) ExportCrops(ctx context.Context, w io.Writer, format report.Format) error {
	crops, _, err := s.repository.FindAll(ctx, CropFilter{})
	if err != nil {
		return unavailable("exporting crops", err)
	}

	if err := report.Render(w, format, "Crops", NewCropReportRows(crops)); err != nil {
		return fmt.Errorf("rendering crop report: %w", err)
	}

	return nil
}

func unavailable(op string, err error) error {
	slog.Error(op, slog.String("error", err.Error()))
	return shareddomain.NewUnavailableError(op, err)
}
