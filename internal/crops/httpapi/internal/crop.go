package internal

import (
	cropsDomain "green-link/internal/crops/domain"
	"green-link/internal/infra/utils"
)

type GrowthResponse struct {
	Status   string  `json:"status"`
	Progress float64 `json:"progress"`
}

type CropResponse struct {
	ID                  string         `json:"id"`
	Name                string         `json:"name"`
	Type                string         `json:"type"`
	Season              string         `json:"season"`
	YieldPerAcre        *float64       `json:"yieldPerAcre"`
	WeatherDependency   *string        `json:"weatherDependency"`
	PestControl         *string        `json:"pestControl"`
	FertilizerSchedule  *string        `json:"fertilizerSchedule"`
	FertilizerType      *string        `json:"fertilizerType"`
	WateringSchedule    *string        `json:"wateringSchedule"`
	SoilType            *string        `json:"soilType"`
	PlantingDate        *utils.Time    `json:"plantingDate"`
	ExpectedHarvestDate *utils.Time    `json:"expectedHarvestDate"`
	Phone               *string        `json:"phone"`
	Growth              GrowthResponse `json:"growth"`
	CreatedAt           utils.Time     `json:"createdAt"`
	UpdatedAt           utils.Time     `json:"updatedAt"`
}

func ToGrowthResponse(growth cropsDomain.Growth) GrowthResponse {
	return GrowthResponse{
		Status:   string(growth.Status),
		Progress: growth.Progress,
	}
}

func ToCropResponse(crop cropsDomain.Crop, growth cropsDomain.Growth) CropResponse {
	return CropResponse{
		ID:                  crop.ID.String(),
		Name:                crop.Name.String(),
		Type:                crop.Type,
		Season:              crop.Season,
		YieldPerAcre:        crop.YieldPerAcre,
		WeatherDependency:   crop.WeatherDependency,
		PestControl:         crop.PestControl,
		FertilizerSchedule:  crop.FertilizerSchedule,
		FertilizerType:      crop.FertilizerType,
		WateringSchedule:    crop.WateringSchedule,
		SoilType:            crop.SoilType,
		PlantingDate:        utils.NewTimePtr(crop.PlantingDate),
		ExpectedHarvestDate: utils.NewTimePtr(crop.ExpectedHarvestDate),
		Phone:               crop.Phone,
		Growth:              ToGrowthResponse(growth),
		CreatedAt:           utils.Time{Time: crop.CreatedAt},
		UpdatedAt:           utils.Time{Time: crop.UpdatedAt},
	}
}
