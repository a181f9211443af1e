package capacitor

import (
	"container/heap"
	"math"

	"github.com/solrange/fitsim/internal/domain/fitting"
)

// Default simulation limits. The depletion loop is hard-capped so the
// simulator stays a bounded synchronous call even on pathological inputs
// (zero recharge time, all-zero costs).
const (
	DefaultMaxSimulatedSeconds = 8 * 3600.0
	DefaultMaxSteps            = 100_000

	peakRechargeFraction = 0.25
	bisectionIterations  = 50
	bisectionTolerance   = 1e-4
)

// Result is the outcome of a capacitor stability run.
type Result struct {
	// Stable reports whether net capacitor flow at the peak-recharge
	// operating point is non-negative, or the depletion simulation ran out
	// of budget without depleting.
	Stable bool

	// StableFraction is the equilibrium capacitor level as a fraction of
	// capacity. Only meaningful when Stable is true.
	StableFraction float64

	// LastsSeconds is how long the capacitor lasts before depleting.
	// +Inf is a legitimate result meaning the fit did not deplete within
	// the simulation horizon.
	LastsSeconds float64

	// DeltaPerSecond is peak recharge plus boost minus cost, in GJ/s.
	DeltaPerSecond float64

	// BudgetExhausted marks stability that was declared because the
	// depletion simulation hit its step/time ceiling, as opposed to
	// stability proven from the recharge curve.
	BudgetExhausted bool
}

// consumer is one cost-incurring module in the depletion simulation.
type consumer struct {
	need     float64 // GJ per activation
	cycle    float64 // seconds between activations
	transfer float64 // GJ credited when a cycle of this module completes (group 68)
}

// Simulator determines capacitor stability for a resolved fit.
// Stateless; safe for reuse across fits.
type Simulator struct {
	maxSimulatedSeconds float64
	maxSteps            int
}

// NewSimulator creates a simulator with the default iteration/time ceilings.
func NewSimulator() *Simulator {
	return &Simulator{
		maxSimulatedSeconds: DefaultMaxSimulatedSeconds,
		maxSteps:            DefaultMaxSteps,
	}
}

// NewSimulatorWithLimits creates a simulator with custom ceilings.
// Non-positive values fall back to the defaults.
func NewSimulatorWithLimits(maxSimulatedSeconds float64, maxSteps int) *Simulator {
	s := NewSimulator()
	if maxSimulatedSeconds > 0 {
		s.maxSimulatedSeconds = maxSimulatedSeconds
	}
	if maxSteps > 0 {
		s.maxSteps = maxSteps
	}
	return s
}

// Simulate runs the stability analysis for the given fit.
//
// Active modules feed a per-second cost pool; capacitor boosters (group 76)
// and energy-transfer modules (group 68) feed a boost pool. If peak recharge
// plus boost covers the cost, the equilibrium level is found by bisection on
// the recharge curve; otherwise a discrete-event simulation runs the
// capacitor down and reports how long it lasts.
func (s *Simulator) Simulate(fit *fitting.Fit) *Result {
	ship := fit.Ship
	profile := buildProfile(fit)

	peak := rechargeRate(ship, peakRechargeFraction)
	boost := profile.boosterRate + profile.transferRate
	delta := peak + boost - profile.costRate

	result := &Result{DeltaPerSecond: delta}

	if delta >= 0 {
		result.Stable = true
		result.LastsSeconds = math.Inf(1)
		result.StableFraction = s.equilibrium(ship, profile.costRate-boost)
		return result
	}

	s.simulateDepletion(ship, profile, result)
	return result
}

type profile struct {
	consumers    []consumer
	costRate     float64 // GJ/s drawn by active modules
	boosterRate  float64 // GJ/s injected by capacitor booster charges
	transferRate float64 // GJ/s received from energy-transfer cycles
}

func buildProfile(fit *fitting.Fit) *profile {
	p := &profile{}
	for _, m := range fit.Modules {
		if !m.Status.IsActive() {
			continue
		}

		// Capacitor boosters inject their charge's bonus over the clip's
		// total cycle, reload included. They are excluded from the generic
		// cost loop.
		if m.GroupID == fitting.GroupCapacitorBooster && m.Charge != nil && m.Charge.Quantity > 0 {
			duration := fitting.CycleDurationMS(m.Attributes) / 1000
			chargeRate := m.Charge.Attributes.GetOr(fitting.AttrChargeRate, 1)
			if chargeRate <= 0 {
				chargeRate = 1
			}
			ammoCycles := m.Charge.Quantity / chargeRate
			totalCycle := duration*ammoCycles + m.Attributes.Get(fitting.AttrReloadTime)/1000
			if totalCycle > 0 {
				p.boosterRate += m.Charge.Quantity * m.Charge.Attributes.Get(fitting.AttrCapacitorBonus) / totalCycle
			}
			continue
		}

		cycle := fitting.FullCycleSeconds(m.Attributes)
		if cycle <= 0 {
			continue
		}

		need := m.Attributes.Get(fitting.AttrCapacitorNeed)
		c := consumer{need: need, cycle: cycle}

		if m.GroupID == fitting.GroupEnergyTransfer {
			c.transfer = m.Attributes.Get(fitting.AttrPowerTransferAmount)
			p.transferRate += c.transfer / cycle
		}

		if need != 0 || c.transfer != 0 {
			p.consumers = append(p.consumers, c)
			p.costRate += need / cycle
		}
	}
	return p
}

// rechargeRate is the natural recharge in GJ/s at capacitor fraction x.
// Zero at empty and at full, peaking at x = 0.25.
func rechargeRate(ship *fitting.ResolvedShip, x float64) float64 {
	rechargeTime := ship.RechargeTimeSeconds()
	if rechargeTime <= 0 {
		return 0
	}
	sqrtX := math.Sqrt(x)
	return 10 * ship.Capacity / rechargeTime * sqrtX * (1 - sqrtX)
}

// equilibrium finds x* with recharge(x*) = need by bisection on the
// ascending branch [0, 0.25] of the recharge curve. The bracket is checked
// before bisecting: when net need is non-positive the lower bound 0 already
// satisfies the threshold and is returned directly.
func (s *Simulator) equilibrium(ship *fitting.ResolvedShip, need float64) float64 {
	lo, hi := 0.0, peakRechargeFraction
	if need <= 0 || rechargeRate(ship, hi) < need {
		return lo
	}
	mid := (lo + hi) / 2
	for i := 0; i < bisectionIterations; i++ {
		mid = (lo + hi) / 2
		r := rechargeRate(ship, mid)
		if math.Abs(r-need) <= bisectionTolerance {
			break
		}
		if r < need {
			lo = mid
		} else {
			hi = mid
		}
	}
	return mid
}

// simulateDepletion runs the discrete-event depletion loop. One activation
// event per consumer is seeded at t=0; each event advances the capacitor
// with the closed-form recovery curve, pays the module's activation cost and
// reschedules the module one cycle later. Energy-transfer gains are credited
// at the completion time of the module's own cycle, never at t=0.
func (s *Simulator) simulateDepletion(ship *fitting.ResolvedShip, p *profile, result *Result) {
	events := make(eventQueue, 0, len(p.consumers))
	for i := range p.consumers {
		events = append(events, event{at: 0, consumer: &p.consumers[i]})
	}
	heap.Init(&events)

	level := ship.Capacity
	lastTime := 0.0
	steps := 0

	for events.Len() > 0 {
		ev := heap.Pop(&events).(event)

		if ev.at > s.maxSimulatedSeconds || steps >= s.maxSteps {
			// Ran out of budget without depleting: effectively infinite.
			result.Stable = true
			result.BudgetExhausted = true
			result.LastsSeconds = math.Inf(1)
			return
		}
		steps++

		level = s.advance(ship, p, level, ev.at-lastTime)
		lastTime = ev.at

		// credit is the transfer amount from the cycle completing now;
		// zero on the seed event.
		level = math.Min(level+ev.credit, ship.Capacity)
		level -= ev.consumer.need

		if level < 0 {
			result.LastsSeconds = ev.at
			return
		}

		heap.Push(&events, event{
			at:       ev.at + ev.consumer.cycle,
			consumer: ev.consumer,
			credit:   ev.consumer.transfer,
		})
	}

	// No consumers survived profiling; nothing can deplete the capacitor.
	result.Stable = true
	result.LastsSeconds = math.Inf(1)
}

// advance moves the capacitor level forward dt seconds using the
// closed-form exponential recovery plus the linear booster inflow,
// capped at capacity.
func (s *Simulator) advance(ship *fitting.ResolvedShip, p *profile, level, dt float64) float64 {
	if dt <= 0 {
		return level
	}
	tau := ship.RechargeTimeSeconds() / 5
	if tau > 0 && ship.Capacity > 0 {
		root := 1 + (math.Sqrt(level/ship.Capacity)-1)*math.Exp(-dt/tau)
		level = root * root * ship.Capacity
	}
	level += p.boosterRate * dt
	return math.Min(level, ship.Capacity)
}
