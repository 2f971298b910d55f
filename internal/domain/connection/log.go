package connection

import (
	"fmt"
	"time"
)

// LogStatus is the outcome recorded for a session. Only disconnected is
// written by the session lifecycle; failed exists for externally imported rows.
type LogStatus string

const (
	LogStatusConnected    LogStatus = "connected"
	LogStatusDisconnected LogStatus = "disconnected"
	LogStatusFailed       LogStatus = "failed"
)

func ParseLogStatus(s string) (LogStatus, error) {
	switch ls := LogStatus(s); ls {
	case LogStatusConnected, LogStatusDisconnected, LogStatusFailed:
		return ls, nil
	default:
		return "", fmt.Errorf("invalid log status: %q", s)
	}
}

// Log is an append-only history row. DataUsed is in MB.
type Log struct {
	id             uint
	sid            string
	userID         uint
	timestamp      time.Time
	serverLocation string
	ipAddress      string
	dataUsed       float64
	duration       int64
	status         LogStatus
}

// NewSessionLog records a closed connection. The timestamp is the session start.
func NewSessionLog(c *Connection, serverLocation, ipAddress string, dataUsedMB float64, shortIDGenerator func() (string, error)) (*Log, error) {
	if c == nil {
		return nil, fmt.Errorf("connection is required")
	}
	if c.IsConnected() {
		return nil, fmt.Errorf("connection %s is still open", c.SID())
	}

	sid, err := shortIDGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to generate SID: %w", err)
	}

	return &Log{
		sid:            sid,
		userID:         c.UserID(),
		timestamp:      c.StartTime(),
		serverLocation: serverLocation,
		ipAddress:      ipAddress,
		dataUsed:       dataUsedMB,
		duration:       c.Duration(),
		status:         LogStatusDisconnected,
	}, nil
}

// LogSnapshot carries persisted state into ReconstructLog.
type LogSnapshot struct {
	ID             uint
	SID            string
	UserID         uint
	Timestamp      time.Time
	ServerLocation string
	IPAddress      string
	DataUsed       float64
	Duration       int64
	Status         string
}

func ReconstructLog(s LogSnapshot) (*Log, error) {
	status, err := ParseLogStatus(s.Status)
	if err != nil {
		return nil, err
	}
	return &Log{
		id:             s.ID,
		sid:            s.SID,
		userID:         s.UserID,
		timestamp:      s.Timestamp.UTC(),
		serverLocation: s.ServerLocation,
		ipAddress:      s.IPAddress,
		dataUsed:       s.DataUsed,
		duration:       s.Duration,
		status:         status,
	}, nil
}

func (l *Log) ID() uint               { return l.id }
func (l *Log) SID() string            { return l.sid }
func (l *Log) UserID() uint           { return l.userID }
func (l *Log) Timestamp() time.Time   { return l.timestamp }
func (l *Log) ServerLocation() string { return l.serverLocation }
func (l *Log) IPAddress() string      { return l.ipAddress }
func (l *Log) DataUsed() float64      { return l.dataUsed }
func (l *Log) Duration() int64        { return l.duration }
func (l *Log) Status() LogStatus      { return l.status }

func (l *Log) SetID(id uint) error {
	if l.id != 0 {
		return fmt.Errorf("log ID is already set")
	}
	l.id = id
	return nil
}
