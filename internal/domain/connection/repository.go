package connection

import "context"

// Repository persists connections.
type Repository interface {
	// Create inserts a connected row. A user that already has a connected row
	// gets a conflict error.
	Create(ctx context.Context, c *Connection) error

	// GetBySIDForUser returns the connection only when userID owns it.
	GetBySIDForUser(ctx context.Context, userID uint, sid string) (*Connection, error)

	// GetActiveByUserID returns the open connection of a user, or nil when there is none.
	GetActiveByUserID(ctx context.Context, userID uint) (*Connection, error)

	// MarkStopped writes the closing fields of c, but only while the stored row
	// is still connected. Otherwise it returns ErrAlreadyStopped.
	MarkStopped(ctx context.Context, c *Connection) error
}

// LogRepository persists connection logs.
type LogRepository interface {
	Append(ctx context.Context, l *Log) error

	// ListByUserID returns up to limit logs, newest first.
	ListByUserID(ctx context.Context, userID uint, limit int) ([]*Log, error)

	Totals(ctx context.Context, userID uint) (LogTotals, error)
}

// TelemetryGenerator is the source of the synthetic numbers attached to a
// session. A real telemetry feed can replace it without touching the lifecycle.
type TelemetryGenerator interface {
	// SessionDataMB is the usage of a closed session, in [100, 600) MB.
	SessionDataMB() float64
	// ClientIP is the public address recorded in the log.
	ClientIP() string
	// LiveSpeeds returns upload and download speed in bytes per second.
	LiveSpeeds() (upload, download float64)
}
