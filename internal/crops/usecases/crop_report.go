package usecases

import (
	cropsDomain "green-link/internal/crops/domain"
	"green-link/internal/shared_kernel/report"
)

type CropReportRow struct {
	Name                string `csv:"Name"`
	Type                string `csv:"Type"`
	Season              string `csv:"Season"`
	YieldPerAcre        string `csv:"Yield per Acre"`
	WeatherDependency   string `csv:"Weather Dependency"`
	PestControl         string `csv:"Pest Control"`
	FertilizerSchedule  string `csv:"Fertilizer Schedule"`
	FertilizerType      string `csv:"Fertilizer Type"`
	WateringSchedule    string `csv:"Watering Schedule"`
	SoilType            string `csv:"Soil Type"`
	PlantingDate        string `csv:"Planting Date"`
	ExpectedHarvestDate string `csv:"Expected Harvest Date"`
}

func NewCropReportRows(crops []cropsDomain.Crop) []CropReportRow {
	rows := make([]CropReportRow, len(crops))
	for i, crop := range crops {
		rows[i] = CropReportRow{
			Name:                report.Text(crop.Name.String()),
			Type:                report.Text(crop.Type),
			Season:              report.Text(crop.Season),
			YieldPerAcre:        report.Number(crop.YieldPerAcre),
			WeatherDependency:   report.TextPtr(crop.WeatherDependency),
			PestControl:         report.TextPtr(crop.PestControl),
			FertilizerSchedule:  report.TextPtr(crop.FertilizerSchedule),
			FertilizerType:      report.TextPtr(crop.FertilizerType),
			WateringSchedule:    report.TextPtr(crop.WateringSchedule),
			SoilType:            report.TextPtr(crop.SoilType),
			PlantingDate:        report.Date(crop.PlantingDate),
			ExpectedHarvestDate: report.Date(crop.ExpectedHarvestDate),
		}
	}
	return rows
}
