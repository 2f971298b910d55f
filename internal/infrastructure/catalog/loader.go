package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vpndash/vpndash/internal/domain/server"
	"github.com/vpndash/vpndash/internal/shared/utils"
)

type rangeFile struct {
	Min int `yaml:"min" validate:"gte=0"`
	Max int `yaml:"max" validate:"gtfield=Min"`
}

type loadRangeFile struct {
	Min int `yaml:"min" validate:"gte=0,lt=100"`
	Max int `yaml:"max" validate:"gtfield=Min,lte=100"`
}

type serverFile struct {
	ID       string        `yaml:"id" validate:"required,max=64"`
	Name     string        `yaml:"name" validate:"required"`
	Location string        `yaml:"location" validate:"required"`
	Country  string        `yaml:"country"`
	IP       string        `yaml:"ip" validate:"required,ip"`
	Protocol string        `yaml:"protocol"`
	Status   string        `yaml:"status" validate:"omitempty,oneof=online offline"`
	Load     loadRangeFile `yaml:"load"`
	Ping     rangeFile     `yaml:"ping"`
	Notes    string        `yaml:"notes"`
}

type catalogFile struct {
	Servers []serverFile `yaml:"servers"`
}

// LoadFile reads server definitions from a YAML file of the form
//
//	servers:
//	  - id: server1
//	    name: NY-01
//	    load: {min: 20, max: 80}
//	    ping: {min: 10, max: 40}
func LoadFile(path string) ([]server.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read server catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog. Status defaults to online.
func Parse(data []byte) ([]server.Definition, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse server catalog: %w", err)
	}
	if len(file.Servers) == 0 {
		return nil, fmt.Errorf("server catalog is empty")
	}

	seen := make(map[string]struct{}, len(file.Servers))
	defs := make([]server.Definition, 0, len(file.Servers))
	for i, s := range file.Servers {
		if err := utils.ValidateStruct(s); err != nil {
			return nil, fmt.Errorf("server catalog entry %d: %w", i, err)
		}

		status := server.Status(s.Status)
		if status == "" {
			status = server.StatusOnline
		}

		def := server.Definition{
			ID:        s.ID,
			Name:      s.Name,
			Location:  s.Location,
			Country:   s.Country,
			IP:        s.IP,
			Protocol:  s.Protocol,
			Status:    status,
			LoadRange: server.Range{Min: s.Load.Min, Max: s.Load.Max},
			PingRange: server.Range{Min: s.Ping.Min, Max: s.Ping.Max},
			Notes:     s.Notes,
		}
		if err := def.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[def.ID]; dup {
			return nil, fmt.Errorf("duplicate server id %q", def.ID)
		}
		seen[def.ID] = struct{}{}
		defs = append(defs, def)
	}
	return defs, nil
}
