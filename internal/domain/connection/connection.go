// Package connection models a VPN session and the log row its closure leaves behind.
package connection

import (
	"errors"
	"fmt"
	"time"
)

// Status is the lifecycle state of a connection. connected -> disconnected is
// the only transition and it is terminal.
type Status string

const (
	StatusConnected    Status = "connected"
	StatusDisconnected Status = "disconnected"
)

func (s Status) String() string { return string(s) }

// ErrAlreadyStopped is returned when stopping a connection that is no longer connected.
var ErrAlreadyStopped = errors.New("connection already stopped")

// Connection is one VPN session of a user.
type Connection struct {
	id        uint
	sid       string
	userID    uint
	serverID  string
	startTime time.Time
	endTime   *time.Time
	duration  int64
	dataUsed  float64
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// NewConnection opens a session on serverID starting at now.
func NewConnection(userID uint, serverID string, now time.Time, shortIDGenerator func() (string, error)) (*Connection, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if serverID == "" {
		return nil, fmt.Errorf("server ID is required")
	}

	sid, err := shortIDGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to generate SID: %w", err)
	}

	now = now.UTC()
	return &Connection{
		sid:       sid,
		userID:    userID,
		serverID:  serverID,
		startTime: now,
		status:    StatusConnected,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ConnectionSnapshot carries persisted state into ReconstructConnection.
type ConnectionSnapshot struct {
	ID        uint
	SID       string
	UserID    uint
	ServerID  string
	StartTime time.Time
	EndTime   *time.Time
	Duration  int64
	DataUsed  float64
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func ReconstructConnection(s ConnectionSnapshot) (*Connection, error) {
	status := Status(s.Status)
	if status != StatusConnected && status != StatusDisconnected {
		return nil, fmt.Errorf("invalid connection status: %q", s.Status)
	}
	return &Connection{
		id:        s.ID,
		sid:       s.SID,
		userID:    s.UserID,
		serverID:  s.ServerID,
		startTime: s.StartTime.UTC(),
		endTime:   utcPtr(s.EndTime),
		duration:  s.Duration,
		dataUsed:  s.DataUsed,
		status:    status,
		createdAt: s.CreatedAt.UTC(),
		updatedAt: s.UpdatedAt.UTC(),
	}, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func (c *Connection) ID() uint             { return c.id }
func (c *Connection) SID() string          { return c.sid }
func (c *Connection) UserID() uint         { return c.userID }
func (c *Connection) ServerID() string     { return c.serverID }
func (c *Connection) StartTime() time.Time { return c.startTime }
func (c *Connection) EndTime() *time.Time  { return c.endTime }
func (c *Connection) Duration() int64      { return c.duration }
func (c *Connection) DataUsed() float64    { return c.dataUsed }
func (c *Connection) Status() Status       { return c.status }
func (c *Connection) CreatedAt() time.Time { return c.createdAt }
func (c *Connection) UpdatedAt() time.Time { return c.updatedAt }

func (c *Connection) IsConnected() bool {
	return c.status == StatusConnected
}

// SetID sets the connection ID (only for persistence layer use)
func (c *Connection) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("connection ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("connection ID cannot be zero")
	}
	c.id = id
	return nil
}

// Stop closes the session at now. dataUsedGB is the usage attributed to it.
func (c *Connection) Stop(now time.Time, dataUsedGB float64) error {
	if c.status != StatusConnected {
		return ErrAlreadyStopped
	}
	if dataUsedGB < 0 {
		return fmt.Errorf("data used cannot be negative: %f", dataUsedGB)
	}

	end := now.UTC()
	c.endTime = &end
	c.duration = ElapsedSeconds(c.startTime, end)
	c.dataUsed = dataUsedGB
	c.status = StatusDisconnected
	c.updatedAt = end
	return nil
}

// ConnectionTime is the whole seconds the session has been open at now.
func (c *Connection) ConnectionTime(now time.Time) int64 {
	if c.endTime != nil {
		return c.duration
	}
	return ElapsedSeconds(c.startTime, now)
}

// ElapsedSeconds returns floor(end - start) in seconds, never negative.
func ElapsedSeconds(start, end time.Time) int64 {
	d := end.Sub(start)
	if d < 0 {
		return 0
	}
	return int64(d / time.Second)
}
