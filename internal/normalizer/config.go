package normalizer

import (
	"github.com/irfndi/strmarket-engine/internal/utils"
)

// Defaults holds the neutral values used when a source record lacks a field.
// They sit mid-range on purpose: zero would be an extreme for most fields.
type Defaults struct {
	Population             int64   `mapstructure:"population"`
	MedianHomeValue        float64 `mapstructure:"median_home_value"`
	AverageDailyRate       float64 `mapstructure:"average_daily_rate"`
	OccupancyRate          float64 `mapstructure:"occupancy_rate"` // percent
	Saturation             float64 `mapstructure:"saturation"`
	SeasonalityConsistency float64 `mapstructure:"seasonality_consistency"`
	LandlordFavorability   float64 `mapstructure:"landlord_favorability"`
}

// Config controls unit reconciliation and defaulting
type Config struct {
	Defaults Defaults `mapstructure:"defaults"`
	// FullSaturationDensity is the listings-per-1k-residents density that maps to saturation 100
	FullSaturationDensity float64 `mapstructure:"full_saturation_density"`
	// SeasonalitySmoothing is the SMA period applied to monthly occupancy
	SeasonalitySmoothing int `mapstructure:"seasonality_smoothing"`
}

// DefaultConfig returns the stock neutral-defaults table
func DefaultConfig() Config {
	return Config{
		Defaults: Defaults{
			Population:             50000,
			MedianHomeValue:        350000,
			AverageDailyRate:       180,
			OccupancyRate:          55,
			Saturation:             50,
			SeasonalityConsistency: 50,
			LandlordFavorability:   50,
		},
		FullSaturationDensity: 20,
		SeasonalitySmoothing:  3,
	}
}

// Validate checks that every default is inside the domain its field accepts
func (c Config) Validate() error {
	d := c.Defaults
	if d.Population < 0 {
		return utils.NewFieldError("normalizer.defaults.population", "must not be negative")
	}
	if d.MedianHomeValue <= 0 {
		return utils.NewFieldError("normalizer.defaults.median_home_value", "must be positive")
	}
	if d.AverageDailyRate < 0 {
		return utils.NewFieldError("normalizer.defaults.average_daily_rate", "must not be negative")
	}
	percents := map[string]float64{
		"occupancy_rate":          d.OccupancyRate,
		"saturation":              d.Saturation,
		"seasonality_consistency": d.SeasonalityConsistency,
		"landlord_favorability":   d.LandlordFavorability,
	}
	for name, v := range percents {
		if v < 0 || v > 100 {
			return utils.NewFieldError("normalizer.defaults."+name, "must be between 0 and 100, got %v", v)
		}
	}
	if c.FullSaturationDensity <= 0 {
		return utils.NewFieldError("normalizer.full_saturation_density", "must be positive")
	}
	if c.SeasonalitySmoothing < 1 || c.SeasonalitySmoothing > 12 {
		return utils.NewFieldError("normalizer.seasonality_smoothing", "must be between 1 and 12")
	}
	return nil
}
