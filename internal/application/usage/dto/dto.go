package dto

import (
	"math"

	"github.com/vpndash/vpndash/internal/domain/usage"
)

type CurrentSpeed struct {
	Upload   float64 `json:"upload"`
	Download float64 `json:"download"`
}

type UsageStatsResponse struct {
	CurrentSpeed CurrentSpeed `json:"currentSpeed"`
	TodayUsage   float64      `json:"todayUsage"`
	WeekUsage    float64      `json:"weekUsage"`
	MonthUsage   float64      `json:"monthUsage"`
	AverageSpeed float64      `json:"averageSpeed"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func ToUsageStatsResponse(s *usage.Stats) *UsageStatsResponse {
	if s == nil {
		return nil
	}
	return &UsageStatsResponse{
		CurrentSpeed: CurrentSpeed{
			Upload:   s.UploadSpeed(),
			Download: s.DownloadSpeed(),
		},
		TodayUsage:   round2(s.TodayUsage()),
		WeekUsage:    round2(s.WeekUsage()),
		MonthUsage:   round2(s.MonthUsage()),
		AverageSpeed: round2(s.AverageSpeed()),
	}
}

type TrendPointResponse struct {
	Hour     string  `json:"hour"`
	Upload   float64 `json:"upload"`
	Download float64 `json:"download"`
	DataUsed float64 `json:"dataUsed"`
}

func ToTrendResponses(points []usage.TrendPoint) []TrendPointResponse {
	out := make([]TrendPointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, TrendPointResponse{
			Hour:     p.Hour,
			Upload:   p.Upload,
			Download: p.Download,
			DataUsed: p.DataUsed,
		})
	}
	return out
}
