// Package telemetry produces the synthetic numbers shown by the dashboard:
// session data usage, client addresses, live speeds and server load/ping.
package telemetry

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/vpndash/vpndash/internal/domain/server"
)

const (
	minSessionMB = 100
	maxSessionMB = 600

	minUploadBps   = 1 << 20 // 1 MiB/s
	maxUploadBps   = 6 << 20
	minDownloadBps = 2 << 20
	maxDownloadBps = 12 << 20
)

// RandomGenerator is safe for concurrent use.
type RandomGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomGenerator seeds from the runtime's entropy source.
func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{rnd: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededGenerator returns a reproducible generator, used by tests.
func NewSeededGenerator(seed uint64) *RandomGenerator {
	return &RandomGenerator{rnd: rand.New(rand.NewPCG(seed, seed))}
}

func (g *RandomGenerator) float(lo, hi float64) float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return lo + g.rnd.Float64()*(hi-lo)
}

func (g *RandomGenerator) intn(lo, hi int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return lo + g.rnd.IntN(hi-lo)
}

// SessionDataMB returns a value in [100, 600).
func (g *RandomGenerator) SessionDataMB() float64 {
	return g.float(minSessionMB, maxSessionMB)
}

// ClientIP returns an address in 104.21.0.0/16.
func (g *RandomGenerator) ClientIP() string {
	return fmt.Sprintf("104.21.%d.%d", g.intn(0, 256), g.intn(0, 256))
}

func (g *RandomGenerator) LiveSpeeds() (upload, download float64) {
	return float64(g.intn(minUploadBps, maxUploadBps)), float64(g.intn(minDownloadBps, maxDownloadBps))
}

// Sample implements server.Sampler.
func (g *RandomGenerator) Sample(load, ping server.Range) (int, int) {
	return g.intn(load.Min, load.Max), g.intn(ping.Min, ping.Max)
}
