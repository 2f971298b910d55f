package usecases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vpndash/vpndash/internal/domain/server"
	"github.com/vpndash/vpndash/internal/shared/errors"
)

type stubCatalog struct {
	servers []server.Server
}

func (s stubCatalog) List() []server.Server { return s.servers }

func (s stubCatalog) Get(id string) (server.Definition, bool) {
	for _, srv := range s.servers {
		if srv.ID == id {
			return srv.Definition, true
		}
	}
	return server.Definition{}, false
}

func (s stubCatalog) Locations() []string {
	out := make([]string, 0, len(s.servers))
	for _, srv := range s.servers {
		out = append(out, srv.Location)
	}
	return out
}

func srv(id string, status server.Status, load, ping int) server.Server {
	return server.Server{
		Definition: server.Definition{ID: id, Location: id + "-city", Status: status},
		Load:       load,
		Ping:       ping,
	}
}

func TestGetRecommendedServer(t *testing.T) {
	cat := stubCatalog{servers: []server.Server{
		srv("a", server.StatusOnline, 50, 10),
		srv("b", server.StatusOffline, 5, 10),
		srv("c", server.StatusOnline, 30, 90),
		srv("d", server.StatusOnline, 30, 40),
	}}

	best, err := NewGetRecommendedServerUseCase(cat).Execute()
	require.NoError(t, err)
	assert.Equal(t, "d", best.ID)
}

func TestGetRecommendedServer_NoneOnline(t *testing.T) {
	cat := stubCatalog{servers: []server.Server{srv("b", server.StatusOffline, 5, 10)}}

	_, err := NewGetRecommendedServerUseCase(cat).Execute()
	assert.True(t, errors.IsNotFoundError(err))
}

func TestListServersAndLocations(t *testing.T) {
	cat := stubCatalog{servers: []server.Server{srv("a", server.StatusOnline, 1, 1), srv("b", server.StatusOnline, 1, 1)}}

	assert.Len(t, NewListServersUseCase(cat).Execute(), 2)
	assert.Equal(t, []string{"a-city", "b-city"}, NewListLocationsUseCase(cat).Execute())
}
