package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	cropsDomain "green-link/internal/crops/domain"
	"green-link/internal/crops/persistence/internal"
	"green-link/internal/crops/usecases"
	"green-link/internal/infra/pubsub"
	"green-link/internal/infra/sql"
	"green-link/internal/shared_kernel/avro"
	shareddomain "green-link/internal/shared_kernel/domain"
)

func NewCropRepository(
	publisherFactory pubsub.PublisherFactory,
	orm sql.ORM,
) (*SimpleCropRepository, error) {
	publisher, err := publisherFactory.New(pubsub.TopicCrops, &avro.CropChanged{})
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}

	err = orm.AutoMigrate(&internal.Crop{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleCropRepository{
		publisher: publisher,
		orm:       orm,
	}, nil
}

var _ usecases.CropRepository = (*SimpleCropRepository)(nil)

type SimpleCropRepository struct {
	publisher pubsub.Publisher
	orm       sql.ORM
}

func (r *SimpleCropRepository) Create(ctx context.Context, crop cropsDomain.Crop) error {
	entity := internal.FromCrop(crop)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("creating crop in database: %w", err)
	}

	r.publish(ctx, avro.OperationCreated, crop)
	return nil
}

func (r *SimpleCropRepository) FindAll(ctx context.Context, filter usecases.CropFilter) ([]cropsDomain.Crop, int, error) {
	var total int64
	err := r.filtered(ctx, filter).Count(&total).Error()
	if err != nil {
		return nil, 0, fmt.Errorf("count query: %w", err)
	}

	query := r.filtered(ctx, filter).Order("created_at ASC, id ASC")
	if filter.Pagination != nil {
		query = query.Limit(filter.Pagination.Limit).Offset(filter.Pagination.Offset)
	}

	var entities []internal.Crop
	err = query.Find(&entities).Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]cropsDomain.Crop, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}

func (r *SimpleCropRepository) filtered(ctx context.Context, filter usecases.CropFilter) sql.ORM {
	query := r.orm.WithContext(ctx).Model(&internal.Crop{})
	if q := strings.TrimSpace(filter.Query); q != "" {
		query = query.Where(`LOWER(name) LIKE ? ESCAPE '\'`, "%"+escapeLike(strings.ToLower(q))+"%")
	}
	return query
}

func (r *SimpleCropRepository) GetByID(ctx context.Context, id shareddomain.ID) (cropsDomain.Crop, error) {
	var entity internal.Crop
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return cropsDomain.Crop{}, usecases.ErrCropNotFound
	}

	if err != nil {
		return cropsDomain.Crop{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleCropRepository) FindHarvestingBetween(ctx context.Context, from, to time.Time) ([]cropsDomain.Crop, error) {
	var entities []internal.Crop
	err := r.orm.
		WithContext(ctx).
		Where("expected_harvest_date IS NOT NULL AND expected_harvest_date >= ? AND expected_harvest_date <= ?", from, to).
		Order("expected_harvest_date ASC").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]cropsDomain.Crop, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, nil
}

func (r *SimpleCropRepository) Update(ctx context.Context, crop cropsDomain.Crop) error {
	entity := internal.FromCrop(crop)

	err := r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		var existing internal.Crop
		if err := tx.First(&existing, "id = ?", entity.ID).Error(); err != nil {
			return err
		}
		return tx.Save(&entity).Error()
	})
	if errors.Is(err, sql.ErrRecordNotFound) {
		return usecases.ErrCropNotFound
	}
	if err != nil {
		return fmt.Errorf("updating crop in database: %w", err)
	}

	r.publish(ctx, avro.OperationUpdated, crop)
	return nil
}

func (r *SimpleCropRepository) Delete(ctx context.Context, id shareddomain.ID) (cropsDomain.Crop, error) {
	var entity internal.Crop

	err := r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		if err := tx.First(&entity, "id = ?", id.String()).Error(); err != nil {
			return err
		}
		return tx.Delete(&internal.Crop{}, "id = ?", id.String()).Error()
	})
	if errors.Is(err, sql.ErrRecordNotFound) {
		return cropsDomain.Crop{}, usecases.ErrCropNotFound
	}
	if err != nil {
		return cropsDomain.Crop{}, fmt.Errorf("deleting crop in database: %w", err)
	}

	crop := entity.ToDomain()
	r.publish(ctx, avro.OperationDeleted, crop)
	return crop, nil
}

// publish emits a change event. The write already happened, so a failed emit
// is logged and not reported to the caller.
func (r *SimpleCropRepository) publish(ctx context.Context, operation avro.Operation, crop cropsDomain.Crop) {
	event := &avro.CropChanged{
		Operation:           string(operation),
		ID:                  crop.ID.String(),
		Name:                crop.Name.String(),
		Type:                crop.Type,
		Season:              crop.Season,
		YieldPerAcre:        crop.YieldPerAcre,
		PlantingDate:        crop.PlantingDate,
		ExpectedHarvestDate: crop.ExpectedHarvestDate,
		OccurredAt:          time.Now().UTC(),
	}

	slog.Debug("publishing crop change", slog.String("crop_id", crop.ID.String()), slog.String("operation", string(operation)))
	if err := r.publisher.Publish(ctx, pubsub.Key(crop.ID), event); err != nil {
		slog.Error("publishing crop change", slog.String("crop_id", crop.ID.String()), slog.String("error", err.Error()))
	}
}

func escapeLike(value string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(value)
}
