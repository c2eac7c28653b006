package domain

import "time"

type GrowthStatus string

const (
	GrowthStatusUnknown    GrowthStatus = "Unknown"
	GrowthStatusNotPlanted GrowthStatus = "NotPlanted"
	GrowthStatusGrowing    GrowthStatus = "Growing"
	GrowthStatusHarvested  GrowthStatus = "Harvested"
)

type Growth struct {
	Status   GrowthStatus
	Progress float64
}

// ComputeGrowth places now on the planting to harvest span. Progress is a
// fraction in [0, 1].
func ComputeGrowth(planting, harvest *time.Time, now time.Time) Growth {
	if planting == nil || harvest == nil {
		return Growth{Status: GrowthStatusUnknown}
	}

	switch {
	case now.Before(*planting):
		return Growth{Status: GrowthStatusNotPlanted}
	case now.After(*harvest):
		return Growth{Status: GrowthStatusHarvested, Progress: 1}
	}

	span := harvest.Sub(*planting)
	if span <= 0 {
		return Growth{Status: GrowthStatusGrowing, Progress: 1}
	}

	progress := float64(now.Sub(*planting)) / float64(span)
	return Growth{Status: GrowthStatusGrowing, Progress: min(max(progress, 0), 1)}
}
