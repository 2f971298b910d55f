// Package server describes the VPN endpoints a user can pick from. Servers are
// configuration, not stored data.
package server

import (
	"fmt"
	"net"
)

type Status string

const (
	StatusOnline  Status = "online"
	StatusOffline Status = "offline"
)

// DefaultServerID is used when a session is started without a server.
const DefaultServerID = "server1"

// MaxLoadPercent bounds the load range of a definition.
const MaxLoadPercent = 100

// Range is a half-open integer interval [Min, Max).
type Range struct {
	Min int
	Max int
}

func (r Range) Validate() error {
	if r.Min < 0 || r.Max <= r.Min {
		return fmt.Errorf("invalid range [%d, %d)", r.Min, r.Max)
	}
	return nil
}

// Definition is the static description of a server.
type Definition struct {
	ID        string
	Name      string
	Location  string
	Country   string
	IP        string
	Protocol  string
	Status    Status
	LoadRange Range
	PingRange Range
	Notes     string // markdown
}

func (d Definition) Validate() error {
	if d.ID == "" || d.Name == "" || d.Location == "" {
		return fmt.Errorf("server %q: id, name and location are required", d.ID)
	}
	if net.ParseIP(d.IP).To4() == nil {
		return fmt.Errorf("server %q: invalid IPv4 address %q", d.ID, d.IP)
	}
	if d.Status != StatusOnline && d.Status != StatusOffline {
		return fmt.Errorf("server %q: invalid status %q", d.ID, d.Status)
	}
	if err := d.LoadRange.Validate(); err != nil {
		return fmt.Errorf("server %q load: %w", d.ID, err)
	}
	if d.LoadRange.Max > MaxLoadPercent {
		return fmt.Errorf("server %q load: range [%d, %d) exceeds %d%%", d.ID, d.LoadRange.Min, d.LoadRange.Max, MaxLoadPercent)
	}
	if err := d.PingRange.Validate(); err != nil {
		return fmt.Errorf("server %q ping: %w", d.ID, err)
	}
	return nil
}

// Server is a definition with its current load and ping.
type Server struct {
	Definition
	Load      int
	Ping      int
	NotesHTML string
}

func (s Server) IsOnline() bool {
	return s.Status == StatusOnline
}

// Sampler produces the current load percentage and ping of a server.
type Sampler interface {
	Sample(load, ping Range) (int, int)
}

// Catalog is the read-only list of servers.
type Catalog interface {
	// List returns every server with freshly sampled load and ping.
	List() []Server
	// Get returns the definition of a server by ID.
	Get(id string) (Definition, bool)
	// Locations returns the distinct location labels in catalog order.
	Locations() []string
}

// Recommend picks the online server with the lowest load, breaking ties by ping.
func Recommend(servers []Server) (Server, bool) {
	var best Server
	found := false
	for _, s := range servers {
		if !s.IsOnline() {
			continue
		}
		if !found || s.Load < best.Load || (s.Load == best.Load && s.Ping < best.Ping) {
			best = s
			found = true
		}
	}
	return best, found
}
