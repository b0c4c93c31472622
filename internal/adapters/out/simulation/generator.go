// Package simulation provides the deterministic delivery agent fleet
// backing the live tracking feed. Agents are synthesized from a fixed
// seed so every process start shows the same fleet; only their movement
// jitter is non-deterministic.
package simulation

import (
	"fmt"
	"math"

	"freightdesk/internal/core/domain/model/kernel"
)

const (
	// DefaultSeed is the fixed generator seed. Keeping it constant makes
	// the fleet reproducible across restarts.
	DefaultSeed = 20260215

	// DefaultAgentCount is the fleet size when none is configured.
	DefaultAgentCount = 60
)

// seededRand is a Park-Miller linear congruential generator. It exists so
// the agent fleet is identical for a given seed regardless of platform.
type seededRand struct {
	value int64
}

func newSeededRand(seed int64) *seededRand {
	value := seed % 2147483647
	if value <= 0 {
		value += 2147483646
	}

	return &seededRand{value: value}
}

// next returns the next pseudo-random float in [0, 1).
func (r *seededRand) next() float64 {
	r.value = r.value * 16807 % 2147483647
	return float64(r.value-1) / 2147483646
}

// cityCluster anchors generated agents around a real metro area.
type cityCluster struct {
	name   string
	lat    float64
	lng    float64
	spread float64
}

func cityClusters() []cityCluster {
	return []cityCluster{
		{name: "Shanghai", lat: 31.2304, lng: 121.4737, spread: 0.15},
		{name: "Guangzhou", lat: 23.1291, lng: 113.2644, spread: 0.12},
		{name: "Beijing", lat: 39.9042, lng: 116.4074, spread: 0.18},
		{name: "Shenzhen", lat: 22.5431, lng: 114.0579, spread: 0.10},
		{name: "Chengdu", lat: 30.5728, lng: 104.0668, spread: 0.14},
	}
}

func surnames() []string {
	return []string{"张", "王", "李", "赵", "陈", "杨", "黄", "周", "吴", "刘", "孙", "马", "胡", "林"}
}

func givenNames() []string {
	return []string{"伟", "芳", "强", "敏", "静", "磊", "洋", "勇", "艳", "杰", "娜", "军", "秀", "涛"}
}

// GenerateAgents synthesizes a deterministic fleet of the given size.
// The same count and seed always produce the same agents.
func GenerateAgents(count int, seed int64) ([]Agent, error) {
	if count <= 0 {
		count = DefaultAgentCount
	}

	random := newSeededRand(seed)
	clusters := cityClusters()
	statuses := []AgentStatus{Available, OnDelivery, Offline, OnBreak}
	vehicles := []VehicleType{Bike, Van, Truck}

	agents := make([]Agent, 0, count)
	for index := 0; index < count; index++ {
		cluster := clusters[int(random.next()*float64(len(clusters)))]
		lat := cluster.lat + (random.next()-0.5)*2*cluster.spread
		lng := cluster.lng + (random.next()-0.5)*2*cluster.spread

		location, err := kernel.NewGeoPoint(lat, lng)
		if err != nil {
			return nil, err
		}

		status := statuses[int(random.next()*float64(len(statuses)))]
		vehicle := vehicles[int(random.next()*float64(len(vehicles)))]
		surname := surnames()[int(random.next()*float64(len(surnames())))]
		given := givenNames()[int(random.next()*float64(len(givenNames())))]
		phone := fmt.Sprintf("138%08d", int(random.next()*100000000))

		orderCount := 0
		if status == OnDelivery {
			orderCount = int(random.next()*5) + 1
		}
		assignedOrders := make([]string, 0, orderCount)
		for oi := 0; oi < orderCount; oi++ {
			assignedOrders = append(assignedOrders, fmt.Sprintf("order-%06d", index*10+oi+1))
		}

		agents = append(agents, Agent{
			ID:              fmt.Sprintf("agent-%03d", index+1),
			Name:            surname + given,
			Phone:           phone,
			Status:          status,
			Location:        location,
			AssignedOrders:  assignedOrders,
			Region:          cluster.name,
			Vehicle:         vehicle,
			Rating:          math.Round((3.5+random.next()*1.5)*10) / 10,
			TotalDeliveries: int(random.next()*3000) + 50,
		})
	}

	return agents, nil
}
