package usage

// TrendPoint is one sample of the hourly usage chart.
type TrendPoint struct {
	Hour     string
	Upload   float64
	Download float64
	DataUsed float64
}

var dailyTrend = []TrendPoint{
	{Hour: "00:00", Upload: 50, Download: 120, DataUsed: 2.5},
	{Hour: "04:00", Upload: 35, Download: 85, DataUsed: 1.8},
	{Hour: "08:00", Upload: 120, Download: 250, DataUsed: 5.2},
	{Hour: "12:00", Upload: 95, Download: 180, DataUsed: 4.1},
	{Hour: "16:00", Upload: 140, Download: 320, DataUsed: 6.8},
	{Hour: "20:00", Upload: 160, Download: 380, DataUsed: 7.5},
	{Hour: "23:00", Upload: 75, Download: 150, DataUsed: 3.2},
}

// DailyTrend returns a copy of the fixed seven-point trend.
func DailyTrend() []TrendPoint {
	out := make([]TrendPoint, len(dailyTrend))
	copy(out, dailyTrend)
	return out
}
