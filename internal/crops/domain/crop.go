package domain

import (
	"time"

	"green-link/internal/infra/utils"
	shareddomain "green-link/internal/shared_kernel/domain"
	"green-link/internal/shared_kernel/schema"
)

type Crop struct {
	ID                  shareddomain.ID
	Name                shareddomain.Name
	Type                string
	Season              string
	YieldPerAcre        *float64
	WeatherDependency   *string
	PestControl         *string
	FertilizerSchedule  *string
	FertilizerType      *string
	WateringSchedule    *string
	SoilType            *string
	PlantingDate        *time.Time
	ExpectedHarvestDate *time.Time
	Phone               *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Apply merges a normalized record onto the crop. Keys absent from the
// record are left untouched and nil values clear optional fields.
func (c *Crop) Apply(record schema.Record) {
	if v, ok := record.String(FieldName); ok {
		c.Name = shareddomain.Name(v)
	}
	if v, ok := record.String(FieldType); ok {
		c.Type = v
	}
	if v, ok := record.String(FieldSeason); ok {
		c.Season = v
	}
	if v, ok := record.Float(FieldYieldPerAcre); ok {
		c.YieldPerAcre = v
	}
	applyText(record, FieldWeatherDependency, &c.WeatherDependency)
	applyText(record, FieldPestControl, &c.PestControl)
	applyText(record, FieldFertilizerSchedule, &c.FertilizerSchedule)
	applyText(record, FieldFertilizerType, &c.FertilizerType)
	applyText(record, FieldWateringSchedule, &c.WateringSchedule)
	applyText(record, FieldSoilType, &c.SoilType)
	applyText(record, FieldPhone, &c.Phone)
	if v, ok := record.Date(FieldPlantingDate); ok {
		c.PlantingDate = v
	}
	if v, ok := record.Date(FieldExpectedHarvestDate); ok {
		c.ExpectedHarvestDate = v
	}
}

func applyText(record schema.Record, name string, target **string) {
	if !record.Has(name) {
		return
	}
	v, _ := record.String(name)
	*target = utils.StringPtr(v)
}

// CheckSchedule rejects a harvest date that does not come strictly after
// the planting date.
func (c Crop) CheckSchedule() error {
	if c.PlantingDate == nil || c.ExpectedHarvestDate == nil {
		return nil
	}

	if !c.ExpectedHarvestDate.After(*c.PlantingDate) {
		verr := shareddomain.NewValidationError(shareddomain.KindCrop)
		verr.Add(FieldExpectedHarvestDate, "Expected Harvest Date must be after the Planting Date")
		return verr
	}

	return nil
}

// GrowthAt reports the growth of the crop at now.
func (c Crop) GrowthAt(now time.Time) Growth {
	return ComputeGrowth(c.PlantingDate, c.ExpectedHarvestDate, now)
}

func NewCropBuilder() *cropBuilder {
	return &cropBuilder{}
}

type cropBuilder struct {
	actions []cropHandler
}

type cropHandler func(v *Crop) error

func (b *cropBuilder) WithID(value shareddomain.ID) *cropBuilder {
	b.actions = append(b.actions, func(d *Crop) error {
		d.ID = value
		return nil
	})
	return b
}

func (b *cropBuilder) WithName(value string) *cropBuilder {
	b.actions = append(b.actions, func(d *Crop) error {
		d.Name = shareddomain.Name(value)
		return nil
	})
	return b
}

func (b *cropBuilder) WithType(value string) *cropBuilder {
	b.actions = append(b.actions, func(d *Crop) error {
		d.Type = value
		return nil
	})
	return b
}

func (b *cropBuilder) WithSeason(value string) *cropBuilder {
	b.actions = append(b.actions, func(d *Crop) error {
		d.Season = value
		return nil
	})
	return b
}

func (b *cropBuilder) WithYieldPerAcre(value float64) *cropBuilder {
	b.actions = append(b.actions, func(d *Crop) error {
		d.YieldPerAcre = &value
		return nil
	})
	return b
}

func (b *cropBuilder) WithPlantingDate(value time.Time) *cropBuilder {
	b.actions = append(b.actions, func(d *Crop) error {
		d.PlantingDate = &value
		return nil
	})
	return b
}

func (b *cropBuilder) WithExpectedHarvestDate(value time.Time) *cropBuilder {
	b.actions = append(b.actions, func(d *Crop) error {
		d.ExpectedHarvestDate = &value
		return nil
	})
	return b
}

func (b *cropBuilder) WithPhone(value string) *cropBuilder {
	b.actions = append(b.actions, func(d *Crop) error {
		d.Phone = utils.StringPtr(value)
		return nil
	})
	return b
}

func (b *cropBuilder) WithCreatedAt(value time.Time) *cropBuilder {
	b.actions = append(b.actions, func(d *Crop) error {
		d.CreatedAt = value
		d.UpdatedAt = value
		return nil
	})
	return b
}

// WithRecord applies a validated create record.
func (b *cropBuilder) WithRecord(record schema.Record) *cropBuilder {
	b.actions = append(b.actions, func(d *Crop) error {
		d.Apply(record)
		return nil
	})
	return b
}

func (b *cropBuilder) Build() (Crop, error) {
	now := time.Now().UTC()
	result := Crop{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return Crop{}, err
		}
	}

	if result.Name == "" || result.Type == "" || result.Season == "" {
		return Crop{}, ErrIncompleteCrop
	}

	return result, nil
}
