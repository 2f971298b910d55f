// Package catalog provides the read-only server list.
package catalog

import (
	"fmt"

	"github.com/vpndash/vpndash/internal/domain/server"
	"github.com/vpndash/vpndash/internal/shared/logger"
	"github.com/vpndash/vpndash/internal/shared/services/markdown"
)

// StaticCatalog serves a fixed set of definitions. Load and ping are sampled on
// every List call; notes are rendered once at construction.
type StaticCatalog struct {
	defs      []server.Definition
	byID      map[string]int
	notesHTML []string
	sampler   server.Sampler
}

func NewStaticCatalog(defs []server.Definition, sampler server.Sampler, md markdown.Service) (*StaticCatalog, error) {
	c := &StaticCatalog{
		defs:      defs,
		byID:      make(map[string]int, len(defs)),
		notesHTML: make([]string, len(defs)),
		sampler:   sampler,
	}

	for i, d := range defs {
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byID[d.ID]; dup {
			return nil, fmt.Errorf("duplicate server id %q", d.ID)
		}
		c.byID[d.ID] = i

		if d.Notes != "" {
			html, err := md.ToHTMLSanitized(d.Notes)
			if err != nil {
				return nil, fmt.Errorf("server %q notes: %w", d.ID, err)
			}
			c.notesHTML[i] = html
		}
	}
	return c, nil
}

// New builds the catalog from path, or from the built-in list when path is empty.
func New(path string, sampler server.Sampler, md markdown.Service, log logger.Interface) (*StaticCatalog, error) {
	defs := DefaultDefinitions()
	if path != "" {
		loaded, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		defs = loaded
		log.Infow("server catalog loaded", "path", path, "servers", len(defs))
	}
	return NewStaticCatalog(defs, sampler, md)
}

func (c *StaticCatalog) List() []server.Server {
	servers := make([]server.Server, 0, len(c.defs))
	for i, d := range c.defs {
		load, ping := c.sampler.Sample(d.LoadRange, d.PingRange)
		servers = append(servers, server.Server{
			Definition: d,
			Load:       load,
			Ping:       ping,
			NotesHTML:  c.notesHTML[i],
		})
	}
	return servers
}

func (c *StaticCatalog) Get(id string) (server.Definition, bool) {
	i, ok := c.byID[id]
	if !ok {
		return server.Definition{}, false
	}
	return c.defs[i], true
}

func (c *StaticCatalog) Locations() []string {
	seen := make(map[string]struct{}, len(c.defs))
	locations := make([]string, 0, len(c.defs))
	for _, d := range c.defs {
		if _, ok := seen[d.Location]; ok {
			continue
		}
		seen[d.Location] = struct{}{}
		locations = append(locations, d.Location)
	}
	return locations
}
