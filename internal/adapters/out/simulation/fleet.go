package simulation

import (
	"math/rand/v2"
	"sync"
	"time"

	"freightdesk/internal/core/domain/model/kernel"
)

// jitterMagnitude bounds a single movement step in degrees. Roughly 200
// meters at Chinese latitudes, small enough to never leave valid range.
const jitterMagnitude = 0.002

// Fleet holds the simulated agents and moves them. Snapshots are safe for
// concurrent use; movement publishes one update per moved agent on the
// feed, in fleet order.
type Fleet struct {
	mu     sync.Mutex
	agents []Agent
	byID   map[string]int
	feed   *Feed
}

// NewFleet generates a deterministic fleet and attaches it to the feed.
func NewFleet(count int, seed int64, feed *Feed) (*Fleet, error) {
	agents, err := GenerateAgents(count, seed)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]int, len(agents))
	for i, agent := range agents {
		byID[agent.ID] = i
	}

	return &Fleet{
		agents: agents,
		byID:   byID,
		feed:   feed,
	}, nil
}

// Agents returns a snapshot of the fleet in generation order.
func (f *Fleet) Agents() []Agent {
	f.mu.Lock()
	defer f.mu.Unlock()

	snapshot := make([]Agent, len(f.agents))
	copy(snapshot, f.agents)
	return snapshot
}

// Agent returns one agent by ID.
func (f *Fleet) Agent(id string) (Agent, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	index, ok := f.byID[id]
	if !ok {
		return Agent{}, false
	}

	return f.agents[index], true
}

// Move jitters every active agent's position and publishes the movements.
// Offline agents stay put.
func (f *Fleet) Move(now time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.agents {
		if f.agents[i].Status == Offline {
			continue
		}

		moved, err := jitterLocation(f.agents[i].Location)
		if err != nil {
			return err
		}

		f.agents[i].Location = moved
		f.feed.Publish(AgentUpdate{
			AgentID:  f.agents[i].ID,
			Location: moved,
			At:       now,
		})
	}

	return nil
}

// jitterLocation nudges a position by at most half the jitter magnitude
// on each axis.
func jitterLocation(location kernel.GeoPoint) (kernel.GeoPoint, error) {
	lat := location.Latitude() + (rand.Float64()-0.5)*jitterMagnitude
	lng := location.Longitude() + (rand.Float64()-0.5)*jitterMagnitude

	return kernel.NewGeoPoint(lat, lng)
}
