package flock

import (
	"math/rand"
	"runtime"

	"github.com/meghashyamc/flocking2d/geometry"
	"github.com/meghashyamc/flocking2d/logger"
	"golang.org/x/sync/errgroup"
)

// Population owns every agent of a simulation in insertion order.
// It is not safe for concurrent use.
type Population struct {
	agents []*Agent
	params Params
	mode   UpdateMode
	rng    *rand.Rand
	logger logger.Logger
}

// NewPopulation creates an empty population. Invalid params are replaced by
// their defaults, a nil rng falls back to the global source and a nil log
// discards records.
func NewPopulation(params Params, mode UpdateMode, rng *rand.Rand, log logger.Logger) *Population {
	if log == nil {
		log = logger.Discard()
	}

	params, replaced := params.Sanitize()
	if len(replaced) > 0 {
		log.Warn("replaced invalid steering params with defaults", "fields", replaced)
	}

	return &Population{
		agents: make([]*Agent, 0),
		params: params,
		mode:   mode,
		rng:    rng,
		logger: log,
	}
}

// NewAgent builds an agent that uses the population's params and random
// source. The agent is not inserted.
func (p *Population) NewAgent(position geometry.Vector, maxSpeed, maxForce float64) *Agent {
	return newAgent(position, maxSpeed, maxForce, p.params, p.rng)
}

// Insert appends agent. Duplicates and overlapping positions are allowed.
func (p *Population) Insert(agent *Agent) {
	if agent == nil {
		return
	}
	p.agents = append(p.agents, agent)
	p.logger.Debug("agent inserted", "position", agent.position, "count", len(p.agents))
}

// Spawn creates an agent with NewAgent and inserts it
func (p *Population) Spawn(position geometry.Vector, maxSpeed, maxForce float64) *Agent {
	agent := p.NewAgent(position, maxSpeed, maxForce)
	p.Insert(agent)
	return agent
}

// Step advances every agent present at the start of the call by one tick.
// Agents inserted while stepping are first moved on the next call.
func (p *Population) Step(worldWidth, worldHeight float64) {
	agents := p.snapshot()

	switch p.mode {
	case Batched:
		p.stepBatched(agents, worldWidth, worldHeight)
	default:
		for _, agent := range agents {
			agent.Step(agents, worldWidth, worldHeight)
		}
	}
}

// snapshot returns the current agents with capacity capped at their length,
// so an Insert never writes into the slice being iterated
func (p *Population) snapshot() []*Agent {
	return p.agents[:len(p.agents):len(p.agents)]
}

// stepBatched freezes every agent, computes all steering forces concurrently
// against the frozen copies, then moves the live agents in order
func (p *Population) stepBatched(agents []*Agent, worldWidth, worldHeight float64) {
	frozen := make([]*Agent, len(agents))
	for i, agent := range agents {
		snapshot := *agent
		frozen[i] = &snapshot
	}

	forces := make([]geometry.Vector, len(agents))
	var group errgroup.Group
	group.SetLimit(runtime.GOMAXPROCS(0))
	for i := range frozen {
		group.Go(func() error {
			forces[i] = frozen[i].steering(frozen)
			return nil
		})
	}
	// Steering never fails, Wait only joins the workers.
	_ = group.Wait()

	for i, agent := range agents {
		agent.applyForce(forces[i])
		agent.integrate()
		agent.wrap(worldWidth, worldHeight)
	}
}

// Agents returns the agents in insertion order. Callers must not modify the slice.
func (p *Population) Agents() []*Agent {
	return p.agents
}

func (p *Population) Len() int {
	return len(p.agents)
}

func (p *Population) Params() Params {
	return p.params
}

func (p *Population) Mode() UpdateMode {
	return p.mode
}
