package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDefinition() Definition {
	return Definition{
		ID: "server1", Name: "NY-01", Location: "New York, USA", Country: "United States",
		IP: "104.21.45.67", Protocol: "OpenVPN", Status: StatusOnline,
		LoadRange: Range{Min: 20, Max: 80}, PingRange: Range{Min: 10, Max: 40},
	}
}

func TestDefinition_Validate(t *testing.T) {
	require.NoError(t, validDefinition().Validate())

	d := validDefinition()
	d.IP = "not-an-ip"
	assert.Error(t, d.Validate())

	d = validDefinition()
	d.PingRange = Range{Min: 40, Max: 40}
	assert.Error(t, d.Validate())

	d = validDefinition()
	d.Status = "maintenance"
	assert.Error(t, d.Validate())

	d = validDefinition()
	d.LoadRange = Range{Min: 0, Max: 500}
	assert.Error(t, d.Validate())

	d = validDefinition()
	d.LoadRange = Range{Min: 0, Max: MaxLoadPercent}
	assert.NoError(t, d.Validate())
}

func TestRecommend(t *testing.T) {
	mk := func(id string, load, ping int, status Status) Server {
		d := validDefinition()
		d.ID = id
		d.Status = status
		return Server{Definition: d, Load: load, Ping: ping}
	}

	best, ok := Recommend([]Server{
		mk("a", 50, 10, StatusOnline),
		mk("b", 10, 90, StatusOffline),
		mk("c", 30, 40, StatusOnline),
		mk("d", 30, 20, StatusOnline),
	})
	require.True(t, ok)
	assert.Equal(t, "d", best.ID)

	_, ok = Recommend([]Server{mk("x", 1, 1, StatusOffline)})
	assert.False(t, ok)
}
