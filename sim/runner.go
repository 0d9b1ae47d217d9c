package sim

import (
	"log"
	"sync"
	"time"
)

// IntentFunc supplies the merged input intent for the next tick.
type IntentFunc func() InputIntent

// Runner drives a Simulation at a fixed tick rate without a display. The
// windowed game doesn't use it (ebiten's Update is the scheduler there); it
// exists so the simulation can run headless, e.g. from tests or tools.
type Runner struct {
	sim      *Simulation
	intents  IntentFunc
	tickRate int
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewRunner(s *Simulation, intents IntentFunc, tickRate int) *Runner {
	if intents == nil {
		intents = func() InputIntent { return InputIntent{} }
	}
	return &Runner{
		sim:      s,
		intents:  intents,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// Run steps the simulation until Stop is called. Steps never overlap; the
// loop is strictly sequential.
func (r *Runner) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(r.tickRate))
	defer ticker.Stop()

	log.Printf("simulation loop started at %d ticks/second", r.tickRate)

	for {
		select {
		case <-r.stopChan:
			log.Println("simulation loop stopped")
			return
		case <-ticker.C:
			r.sim.Step(r.intents())
		}
	}
}

func (r *Runner) Stop() {
	r.stopOnce.Do(func() {
		close(r.stopChan)
	})
}
