package memory

import (
	"fmt"
	"math"

	apperrors "github.com/confirmly/dashboard-api/pkg/errors"
)

// CategoryProportions splits a day's responses into the four outcome
// categories. The values must sum to 1.0.
type CategoryProportions struct {
	Confirmed    float64 `mapstructure:"confirmed"`
	NotConfirmed float64 `mapstructure:"not_confirmed"`
	Questions    float64 `mapstructure:"questions"`
	Other        float64 `mapstructure:"other"`
}

// GeneratorConfig tunes the synthetic dataset. The zero value is not
// usable; start from DefaultGeneratorConfig.
type GeneratorConfig struct {
	Seed               int64               `mapstructure:"seed"`
	DaysOfHistory      int                 `mapstructure:"days_of_history"`
	CustomersPerDayMin int                 `mapstructure:"customers_per_day_min"`
	CustomersPerDayMax int                 `mapstructure:"customers_per_day_max"`
	ResponseRateMin    float64             `mapstructure:"response_rate_min"`
	ResponseRateMax    float64             `mapstructure:"response_rate_max"`
	Proportions        CategoryProportions `mapstructure:"proportions"`
}

func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Seed:               12345,
		DaysOfHistory:      30,
		CustomersPerDayMin: 150,
		CustomersPerDayMax: 200,
		ResponseRateMin:    0.65,
		ResponseRateMax:    0.85,
		Proportions: CategoryProportions{
			Confirmed:    0.60,
			NotConfirmed: 0.15,
			Questions:    0.08,
			Other:        0.17,
		},
	}
}

// Validate refuses configurations that would produce inconsistent
// totals. A generator is never built from an invalid config.
func (c GeneratorConfig) Validate() error {
	if c.Seed <= 0 {
		return apperrors.ConfigInvalid("seed must be a positive integer", nil)
	}
	if c.DaysOfHistory <= 0 {
		return apperrors.ConfigInvalid("days_of_history must be positive", nil)
	}
	if c.CustomersPerDayMin < 0 || c.CustomersPerDayMax < c.CustomersPerDayMin {
		return apperrors.ConfigInvalid("customers_per_day range is invalid", nil)
	}
	if c.ResponseRateMin < 0 || c.ResponseRateMax > 1 || c.ResponseRateMax < c.ResponseRateMin {
		return apperrors.ConfigInvalid("response_rate range must satisfy 0 <= min <= max <= 1", nil)
	}
	p := c.Proportions
	if p.Confirmed < 0 || p.NotConfirmed < 0 || p.Questions < 0 || p.Other < 0 {
		return apperrors.ConfigInvalid("category proportions must be non-negative", nil)
	}
	if sum := p.Confirmed + p.NotConfirmed + p.Questions + p.Other; math.Abs(sum-1.0) > 1e-9 {
		return apperrors.ConfigInvalid(fmt.Sprintf("category proportions must sum to 1.0, got %g", sum), nil)
	}
	return nil
}
