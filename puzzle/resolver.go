package puzzle

import (
	"log/slog"
	"math"

	"github.com/lixenwraith/ring-tower/parameter"
	"github.com/lixenwraith/ring-tower/vmath"
)

// Reason explains a drop outcome
type Reason uint8

const (
	ReasonAccepted Reason = iota
	ReasonNoPole
	ReasonIllegal
	ReasonSamePole
	ReasonInvariant
)

func (r Reason) String() string {
	switch r {
	case ReasonAccepted:
		return "accepted"
	case ReasonNoPole:
		return "no pole"
	case ReasonIllegal:
		return "illegal"
	case ReasonSamePole:
		return "same pole"
	case ReasonInvariant:
		return "invariant"
	default:
		return "unknown"
	}
}

// Outcome is the result of one drop
// From is the pole holding the ring before the drop, To the pole holding it after
// Target is the pole the ring was released over, NoPole when none overlapped
type Outcome struct {
	Ring     RingID
	From     PoleID
	To       PoleID
	Target   PoleID
	Accepted bool
	Reason   Reason
	Solved   bool
}

// Resolver validates drops and commits or rejects them
type Resolver struct {
	registry *Registry
	layout   *Layout
	detector *SolvedDetector
	strict   bool
	logger   *slog.Logger
}

// NewResolver wires a resolver
// In strict mode an invariant fault panics, otherwise it is logged and the drop skipped
func NewResolver(registry *Registry, layout *Layout, detector *SolvedDetector, strict bool, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Resolver{
		registry: registry,
		layout:   layout,
		detector: detector,
		strict:   strict,
		logger:   logger,
	}
}

// Overlaps reports whether a ring of the given diameter centered at x intersects the
// pole's drop band [poleX - PoleDiameter, poleX + PoleDiameter]
func Overlaps(pole Pole, diameter, x float64) bool {
	return vmath.IntervalsOverlap(
		x-diameter/2, x+diameter/2,
		pole.X-parameter.PoleDiameter, pole.X+parameter.PoleDiameter,
	)
}

// Legal reports whether the pole accepts the ring on top
// An empty pole accepts anything, otherwise the top ring must be strictly larger
func Legal(reg *Registry, pole PoleID, ring RingID) bool {
	r, ok := reg.Ring(ring)
	if !ok {
		return false
	}
	topID, ok := reg.Top(pole)
	if !ok {
		return true
	}
	top, _ := reg.Ring(topID)
	return top.Size > r.Size
}

// TargetPole returns the pole a ring released at x lands on
// When several drop bands overlap the nearest pole center wins, ties go to the lower index
func (r *Resolver) TargetPole(ring RingID, x float64) (PoleID, bool) {
	rg, ok := r.registry.Ring(ring)
	if !ok {
		return NoPole, false
	}
	best, bestDist := NoPole, math.Inf(1)
	for _, p := range r.registry.Poles() {
		if !Overlaps(p, rg.Diameter, x) {
			continue
		}
		// Poles are scanned in index order, an equal distance keeps the lower one
		if d := math.Abs(p.CenterX() - x); best == NoPole || d < bestDist && !vmath.NearlyEqual(d, bestDist) {
			best, bestDist = p.ID, d
		}
	}
	return best, best != NoPole
}

// Resolve decides the drop of ring released at horizontal position x
// Rejection is silent: the ring returns to its current slot and the outcome says why
func (r *Resolver) Resolve(ring RingID, x float64) Outcome {
	if err := r.registry.Validate(); err != nil {
		return r.fault(ring, err)
	}
	from, index, ok := r.registry.IndexOf(ring)
	if !ok {
		return r.fault(ring, ErrInvariant)
	}

	out := Outcome{Ring: ring, From: from, To: from, Target: NoPole}

	target, ok := r.TargetPole(ring, x)
	switch {
	case !ok:
		out.Reason = ReasonNoPole
	case target == from:
		out.Target = target
		out.Reason = ReasonSamePole
	case !Legal(r.registry, target, ring):
		out.Target = target
		out.Reason = ReasonIllegal
	default:
		out.Target = target
		return r.commit(out)
	}

	pole, _ := r.registry.Pole(from)
	r.layout.MoveTo(ring, pole, index)
	out.Solved = r.detector.Solved()
	r.logger.Debug("drop rejected", "ring", ring, "pole", pole.Name, "reason", out.Reason)
	return out
}

func (r *Resolver) commit(out Outcome) Outcome {
	if err := r.registry.Reassign(out.Ring, out.From, out.Target); err != nil {
		return r.fault(out.Ring, err)
	}
	pole, _ := r.registry.Pole(out.Target)
	r.layout.MoveTo(out.Ring, pole, r.registry.Len(out.Target)-1)

	out.To = out.Target
	out.Accepted = true
	out.Reason = ReasonAccepted
	out.Solved = r.detector.Evaluate(r.registry)
	r.logger.Debug("drop committed", "ring", out.Ring, "pole", pole.Name, "solved", out.Solved)
	return out
}

func (r *Resolver) fault(ring RingID, err error) Outcome {
	if r.strict {
		panic(err)
	}
	r.logger.Error("drop skipped", "ring", ring, "error", err)
	return Outcome{Ring: ring, From: NoPole, To: NoPole, Target: NoPole, Reason: ReasonInvariant}
}
