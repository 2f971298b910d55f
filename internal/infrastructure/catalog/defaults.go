package catalog

import "github.com/vpndash/vpndash/internal/domain/server"

var defaultLoad = server.Range{Min: 20, Max: 80}

// DefaultDefinitions is the built-in server list used when no catalog file is configured.
func DefaultDefinitions() []server.Definition {
	return []server.Definition{
		{
			ID: "server1", Name: "NY-01", Location: "New York, USA", Country: "United States",
			IP: "104.21.45.67", Protocol: "OpenVPN", Status: server.StatusOnline,
			LoadRange: defaultLoad, PingRange: server.Range{Min: 10, Max: 40},
		},
		{
			ID: "server2", Name: "LON-01", Location: "London, UK", Country: "United Kingdom",
			IP: "93.184.216.34", Protocol: "WireGuard", Status: server.StatusOnline,
			LoadRange: defaultLoad, PingRange: server.Range{Min: 20, Max: 60},
		},
		{
			ID: "server3", Name: "TYO-01", Location: "Tokyo, Japan", Country: "Japan",
			IP: "203.0.113.45", Protocol: "OpenVPN", Status: server.StatusOnline,
			LoadRange: defaultLoad, PingRange: server.Range{Min: 70, Max: 170},
		},
		{
			ID: "server4", Name: "SYD-01", Location: "Sydney, Australia", Country: "Australia",
			IP: "192.0.2.123", Protocol: "WireGuard", Status: server.StatusOnline,
			LoadRange: defaultLoad, PingRange: server.Range{Min: 140, Max: 320},
		},
		{
			ID: "server5", Name: "TOR-01", Location: "Toronto, Canada", Country: "Canada",
			IP: "198.51.100.56", Protocol: "OpenVPN", Status: server.StatusOnline,
			LoadRange: defaultLoad, PingRange: server.Range{Min: 30, Max: 80},
		},
		{
			ID: "server6", Name: "AMS-01", Location: "Amsterdam, Netherlands", Country: "Netherlands",
			IP: "198.19.255.1", Protocol: "WireGuard", Status: server.StatusOnline,
			LoadRange: defaultLoad, PingRange: server.Range{Min: 20, Max: 60},
		},
	}
}
