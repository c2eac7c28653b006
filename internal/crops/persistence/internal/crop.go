package internal

import (
	"time"

	cropsDomain "green-link/internal/crops/domain"
	shareddomain "green-link/internal/shared_kernel/domain"
)

type Crop struct {
	ID                  string     `gorm:"primaryKey"`
	Name                string     `gorm:"not null;index"`
	Type                string     `gorm:"not null"`
	Season              string     `gorm:"not null"`
	YieldPerAcre        *float64
	WeatherDependency   *string
	PestControl         *string
	FertilizerSchedule  *string
	FertilizerType      *string
	WateringSchedule    *string
	SoilType            *string
	PlantingDate        *time.Time
	ExpectedHarvestDate *time.Time `gorm:"index"`
	Phone               *string
	CreatedAt           time.Time `gorm:"index;autoCreateTime:false"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime:false"`
}

func (Crop) TableName() string {
	return "crops"
}

func (c Crop) ToDomain() cropsDomain.Crop {
	return cropsDomain.Crop{
		ID:                  shareddomain.ID(c.ID),
		Name:                shareddomain.Name(c.Name),
		Type:                c.Type,
		Season:              c.Season,
		YieldPerAcre:        c.YieldPerAcre,
		WeatherDependency:   c.WeatherDependency,
		PestControl:         c.PestControl,
		FertilizerSchedule:  c.FertilizerSchedule,
		FertilizerType:      c.FertilizerType,
		WateringSchedule:    c.WateringSchedule,
		SoilType:            c.SoilType,
		PlantingDate:        utcPtr(c.PlantingDate),
		ExpectedHarvestDate: utcPtr(c.ExpectedHarvestDate),
		Phone:               c.Phone,
		CreatedAt:           c.CreatedAt.UTC(),
		UpdatedAt:           c.UpdatedAt.UTC(),
	}
}

func FromCrop(value cropsDomain.Crop) Crop {
	return Crop{
		ID:                  value.ID.String(),
		Name:                value.Name.String(),
		Type:                value.Type,
		Season:              value.Season,
		YieldPerAcre:        value.YieldPerAcre,
		WeatherDependency:   value.WeatherDependency,
		PestControl:         value.PestControl,
		FertilizerSchedule:  value.FertilizerSchedule,
		FertilizerType:      value.FertilizerType,
		WateringSchedule:    value.WateringSchedule,
		SoilType:            value.SoilType,
		PlantingDate:        value.PlantingDate,
		ExpectedHarvestDate: value.ExpectedHarvestDate,
		Phone:               value.Phone,
		CreatedAt:           value.CreatedAt,
		UpdatedAt:           value.UpdatedAt,
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	utc := t.UTC()
	return &utc
}
