// Package usage holds the per-user usage counters shown on the dashboard.
package usage

import (
	"fmt"
	"time"

	"github.com/vpndash/vpndash/internal/shared/biztime"
)

// Stats is the single usage row of a user. Usage values are in GB, speeds in
// bytes per second and the average speed in Mbps.
type Stats struct {
	id            uint
	userID        uint
	todayUsage    float64
	weekUsage     float64
	monthUsage    float64
	uploadSpeed   float64
	downloadSpeed float64
	averageSpeed  float64
	lastAccruedAt *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

// NewStats returns a zeroed row for a newly registered user.
func NewStats(userID uint, now time.Time) (*Stats, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	now = now.UTC()
	return &Stats{
		userID:    userID,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// StatsSnapshot carries persisted state into ReconstructStats.
type StatsSnapshot struct {
	ID            uint
	UserID        uint
	TodayUsage    float64
	WeekUsage     float64
	MonthUsage    float64
	UploadSpeed   float64
	DownloadSpeed float64
	AverageSpeed  float64
	LastAccruedAt *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func ReconstructStats(s StatsSnapshot) *Stats {
	var lastAccruedAt *time.Time
	if s.LastAccruedAt != nil {
		t := s.LastAccruedAt.UTC()
		lastAccruedAt = &t
	}
	return &Stats{
		id:            s.ID,
		userID:        s.UserID,
		todayUsage:    s.TodayUsage,
		weekUsage:     s.WeekUsage,
		monthUsage:    s.MonthUsage,
		uploadSpeed:   s.UploadSpeed,
		downloadSpeed: s.DownloadSpeed,
		averageSpeed:  s.AverageSpeed,
		lastAccruedAt: lastAccruedAt,
		createdAt:     s.CreatedAt.UTC(),
		updatedAt:     s.UpdatedAt.UTC(),
	}
}

func (s *Stats) ID() uint                  { return s.id }
func (s *Stats) UserID() uint              { return s.userID }
func (s *Stats) TodayUsage() float64       { return s.todayUsage }
func (s *Stats) WeekUsage() float64        { return s.weekUsage }
func (s *Stats) MonthUsage() float64       { return s.monthUsage }
func (s *Stats) UploadSpeed() float64      { return s.uploadSpeed }
func (s *Stats) DownloadSpeed() float64    { return s.downloadSpeed }
func (s *Stats) AverageSpeed() float64     { return s.averageSpeed }
func (s *Stats) LastAccruedAt() *time.Time { return s.lastAccruedAt }
func (s *Stats) CreatedAt() time.Time      { return s.createdAt }
func (s *Stats) UpdatedAt() time.Time      { return s.updatedAt }

// SetID sets the row ID (only for persistence layer use)
func (s *Stats) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("usage stats ID is already set")
	}
	s.id = id
	return nil
}

// RollOver zeroes the counters whose period has ended since the last accrual.
func (s *Stats) RollOver(now time.Time) {
	if s.lastAccruedAt == nil {
		return
	}
	last := *s.lastAccruedAt
	if last.Before(biztime.StartOfDayUTC(now)) {
		s.todayUsage = 0
	}
	if last.Before(biztime.StartOfWeekUTC(now)) {
		s.weekUsage = 0
	}
	if last.Before(biztime.StartOfMonthUTC(now)) {
		s.monthUsage = 0
	}
}

// Accrue adds a closed session's data to the period counters.
func (s *Stats) Accrue(gb float64, now time.Time) error {
	if gb < 0 {
		return fmt.Errorf("usage cannot be negative: %f", gb)
	}
	now = now.UTC()
	s.RollOver(now)
	s.todayUsage += gb
	s.weekUsage += gb
	s.monthUsage += gb
	s.lastAccruedAt = &now
	s.updatedAt = now
	return nil
}

// OverlaySpeeds replaces the current speeds with live readings. Callers do
// not persist the result.
func (s *Stats) OverlaySpeeds(upload, download float64) {
	s.uploadSpeed = upload
	s.downloadSpeed = download
}
