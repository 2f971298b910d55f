package connection

import "math"

// LogTotals are the raw aggregates of a user's connection logs.
type LogTotals struct {
	Total         int64
	Failed        int64
	TotalDuration int64
}

// Summary is the derived view served by the connection stats endpoint.
type Summary struct {
	TotalConnections int64
	SuccessRate      float64 // percent, one decimal
	AverageDuration  int64   // seconds
}

// Summarize derives the success rate and average duration. An empty history
// has a zero success rate.
func Summarize(t LogTotals) Summary {
	if t.Total == 0 {
		return Summary{}
	}
	rate := float64(t.Total-t.Failed) / float64(t.Total) * 100
	return Summary{
		TotalConnections: t.Total,
		SuccessRate:      math.Round(rate*10) / 10,
		AverageDuration:  t.TotalDuration / t.Total,
	}
}
