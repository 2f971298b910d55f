package usecases

import "github.com/vpndash/vpndash/internal/domain/usage"

// GetTrendsUseCase serves the fixed hourly chart.
type GetTrendsUseCase struct{}

func NewGetTrendsUseCase() *GetTrendsUseCase {
	return &GetTrendsUseCase{}
}

func (uc *GetTrendsUseCase) Execute() []usage.TrendPoint {
	return usage.DailyTrend()
}
