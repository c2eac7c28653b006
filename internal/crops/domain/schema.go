package domain

import (
	shareddomain "green-link/internal/shared_kernel/domain"
	"green-link/internal/shared_kernel/schema"
)

const (
	FieldName                = "name"
	FieldType                = "type"
	FieldSeason              = "season"
	FieldYieldPerAcre        = "yieldPerAcre"
	FieldWeatherDependency   = "weatherDependency"
	FieldPestControl         = "pestControl"
	FieldFertilizerSchedule  = "fertilizerSchedule"
	FieldFertilizerType      = "fertilizerType"
	FieldWateringSchedule    = "wateringSchedule"
	FieldSoilType            = "soilType"
	FieldPlantingDate        = "plantingDate"
	FieldExpectedHarvestDate = "expectedHarvestDate"
	FieldPhone               = "phone"
)

var CropSchema = schema.NewSchemaBuilder(shareddomain.KindCrop).
	Required(FieldName, "Crop Name", schema.FieldTypeText).
	Required(FieldType, "Crop Type", schema.FieldTypeText).
	Required(FieldSeason, "Season", schema.FieldTypeText).
	Optional(FieldYieldPerAcre, "Yield per Acre", schema.FieldTypeNumber).NonNegative().
	Optional(FieldWeatherDependency, "Weather Dependency", schema.FieldTypeText).
	Optional(FieldPestControl, "Pest Control", schema.FieldTypeText).
	Optional(FieldFertilizerSchedule, "Fertilizer Schedule", schema.FieldTypeText).
	Optional(FieldFertilizerType, "Fertilizer Type", schema.FieldTypeText).
	Optional(FieldWateringSchedule, "Watering Schedule", schema.FieldTypeText).
	Optional(FieldSoilType, "Soil Type", schema.FieldTypeText).
	Optional(FieldPlantingDate, "Planting Date", schema.FieldTypeDate).
	Optional(FieldExpectedHarvestDate, "Expected Harvest Date", schema.FieldTypeDate).
	Optional(FieldPhone, "Phone", schema.FieldTypePhone).
	Build()
