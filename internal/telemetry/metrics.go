package telemetry

import "sync/atomic"

type Counter struct {
	val atomic.Int64
}

func (c *Counter) Inc()         { c.val.Add(1) }
func (c *Counter) Add(n int64)  { c.val.Add(n) }
func (c *Counter) Value() int64 { return c.val.Load() }

type Gauge struct {
	val atomic.Int64
}

func (g *Gauge) Set(v int64)  { g.val.Store(v) }
func (g *Gauge) Inc()         { g.val.Add(1) }
func (g *Gauge) Dec()         { g.val.Add(-1) }
func (g *Gauge) Value() int64 { return g.val.Load() }

// Metrics is the global counter registry for a host process running one
// or more simulations. Nothing in the simulation core branches on a
// metric value — these exist purely for a host to scrape without
// standing up a metrics server.
var Metrics = struct {
	GamesSimulated      Counter
	EventsEmitted       Counter
	PenaltiesCalled     Counter
	InjuriesRolled      Counter
	TurnoversForced     Counter
	InvariantViolations Counter
	SafetyCapHits       Counter
}{}
