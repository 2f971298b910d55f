package connection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedSID(sid string) func() (string, error) {
	return func() (string, error) { return sid, nil }
}

func TestConnection_StopComputesFlooredDuration(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c, err := NewConnection(1, "server2", start, fixedSID("conn_1"))
	require.NoError(t, err)
	assert.True(t, c.IsConnected())

	require.NoError(t, c.Stop(start.Add(125*time.Second+900*time.Millisecond), 0.25))

	assert.Equal(t, StatusDisconnected, c.Status())
	assert.Equal(t, int64(125), c.Duration())
	assert.Equal(t, 0.25, c.DataUsed())
	require.NotNil(t, c.EndTime())
}

func TestConnection_StopTwice(t *testing.T) {
	start := time.Now()
	c, err := NewConnection(1, "server1", start, fixedSID("conn_1"))
	require.NoError(t, err)

	require.NoError(t, c.Stop(start.Add(time.Second), 0.1))
	assert.ErrorIs(t, c.Stop(start.Add(2*time.Second), 0.1), ErrAlreadyStopped)
	assert.Equal(t, int64(1), c.Duration())
}

func TestConnection_ClockSkewNeverNegative(t *testing.T) {
	start := time.Now()
	c, err := NewConnection(1, "server1", start, fixedSID("conn_1"))
	require.NoError(t, err)

	assert.Zero(t, c.ConnectionTime(start.Add(-time.Minute)))
	require.NoError(t, c.Stop(start.Add(-time.Minute), 0))
	assert.Zero(t, c.Duration())
}

func TestNewSessionLog(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c, err := NewConnection(7, "server1", start, fixedSID("conn_1"))
	require.NoError(t, err)

	_, err = NewSessionLog(c, "New York, USA", "104.21.1.2", 300, fixedSID("log_1"))
	assert.Error(t, err, "open connection must not be logged")

	require.NoError(t, c.Stop(start.Add(90*time.Second), 300.0/1024))
	l, err := NewSessionLog(c, "New York, USA", "104.21.1.2", 300, fixedSID("log_1"))
	require.NoError(t, err)

	assert.Equal(t, uint(7), l.UserID())
	assert.Equal(t, start, l.Timestamp())
	assert.Equal(t, int64(90), l.Duration())
	assert.Equal(t, 300.0, l.DataUsed())
	assert.Equal(t, LogStatusDisconnected, l.Status())
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(LogTotals{}))

	s := Summarize(LogTotals{Total: 3, Failed: 1, TotalDuration: 100})
	assert.Equal(t, int64(3), s.TotalConnections)
	assert.Equal(t, 66.7, s.SuccessRate)
	assert.Equal(t, int64(33), s.AverageDuration)
}
