package puzzle

import (
	"fmt"
	"log/slog"

	"github.com/lixenwraith/ring-tower/parameter"
)

// StageConfig sizes one puzzle session
type StageConfig struct {
	RingCount        int
	AnimationFrames  int
	StrictInvariants bool
}

// Stage aggregates the registry, layout, resolver and solved detector of one session
type Stage struct {
	registry   *Registry
	transforms *Transforms
	layout     *Layout
	resolver   *Resolver
	detector   *SolvedDetector
	moves      int
}

// NewStage builds a session with every ring stacked on the start pole
func NewStage(cfg StageConfig, animator Animator, notifier Notifier, logger *slog.Logger) (*Stage, error) {
	if cfg.RingCount < parameter.RingCountMin || cfg.RingCount > parameter.RingCountMax {
		return nil, fmt.Errorf("ring count %d out of range [%d, %d]",
			cfg.RingCount, parameter.RingCountMin, parameter.RingCountMax)
	}

	rings := NewRings(cfg.RingCount)
	poles := NewPoles(cfg.RingCount)
	registry := NewRegistry(rings, poles)
	transforms := NewTransforms(len(rings))
	layout := NewLayout(transforms, animator, cfg.AnimationFrames)
	detector := NewSolvedDetector(notifier)

	s := &Stage{
		registry:   registry,
		transforms: transforms,
		layout:     layout,
		resolver:   NewResolver(registry, layout, detector, cfg.StrictInvariants, logger),
		detector:   detector,
	}

	start := poles[parameter.StartPole]
	for i, ring := range rings {
		if err := registry.Reassign(ring.ID, NoPole, start.ID); err != nil {
			return nil, fmt.Errorf("stack ring %d: %w", ring.ID, err)
		}
		layout.Place(ring.ID, start, i)
	}
	if err := registry.Validate(); err != nil {
		return nil, fmt.Errorf("initial stage: %w", err)
	}
	return s, nil
}

// Registry returns the authoritative stack model
func (s *Stage) Registry() *Registry { return s.registry }

// Transforms returns the ring position table
func (s *Stage) Transforms() *Transforms { return s.transforms }

// Layout returns the slot layout engine
func (s *Stage) Layout() *Layout { return s.layout }

// Resolver returns the drop resolver
func (s *Stage) Resolver() *Resolver { return s.resolver }

// ResolveDrop resolves a drop at the ring's live horizontal position
func (s *Stage) ResolveDrop(ring RingID) Outcome {
	return s.Drop(ring, s.transforms.Get(ring).X)
}

// Drop resolves a drop of ring released at x and counts committed moves
func (s *Stage) Drop(ring RingID, x float64) Outcome {
	out := s.resolver.Resolve(ring, x)
	if out.Accepted {
		s.moves++
	}
	return out
}

// SnapBack returns the ring to its current slot without changing membership
func (s *Stage) SnapBack(ring RingID) {
	pole, index, ok := s.registry.IndexOf(ring)
	if !ok {
		return
	}
	p, _ := s.registry.Pole(pole)
	s.layout.MoveTo(ring, p, index)
}

// IsSolved returns the latched solved flag
func (s *Stage) IsSolved() bool { return s.detector.Solved() }

// Moves returns the number of committed moves
func (s *Stage) Moves() int { return s.moves }

// MinimalMoves returns 2^n - 1 for the session's ring count
func (s *Stage) MinimalMoves() int {
	return 1<<s.registry.RingCount() - 1
}
