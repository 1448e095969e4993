package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ring-tower/parameter"
)

type animCall struct {
	ring     RingID
	axis     Axis
	from, to float64
	frames   int
}

// recordingAnimator captures transitions without running them
type recordingAnimator struct {
	calls   []animCall
	cancels []RingID
}

func (a *recordingAnimator) Animate(ring RingID, axis Axis, from, to float64, frames int) {
	a.calls = append(a.calls, animCall{ring, axis, from, to, frames})
}

func (a *recordingAnimator) Cancel(ring RingID) {
	a.cancels = append(a.cancels, ring)
}

func newTestStage(t *testing.T, rings int, notifier Notifier) *Stage {
	t.Helper()
	s, err := NewStage(StageConfig{RingCount: rings, StrictInvariants: true}, nil, notifier, nil)
	require.NoError(t, err)
	return s
}

// dropOnPole releases the ring with the given size over the center of pole
func dropOnPole(t *testing.T, s *Stage, size int, pole PoleID) Outcome {
	t.Helper()
	ring, ok := s.Registry().RingBySize(size)
	require.True(t, ok, "ring size %d", size)
	p, ok := s.Registry().Pole(pole)
	require.True(t, ok)
	return s.Drop(ring.ID, p.CenterX())
}

func sizesOn(s *Stage, pole PoleID) []int {
	var sizes []int
	for _, id := range s.Registry().StackOf(pole) {
		r, _ := s.Registry().Ring(id)
		sizes = append(sizes, r.Size)
	}
	return sizes
}

func TestNewStage_InitialStack(t *testing.T) {
	s := newTestStage(t, 5, nil)

	assert.Empty(t, s.Registry().StackOf(0))
	assert.Equal(t, []int{5, 4, 3, 2, 1}, sizesOn(s, parameter.StartPole))
	assert.Empty(t, s.Registry().StackOf(2))
	assert.False(t, s.IsSolved())
	assert.Equal(t, 31, s.MinimalMoves())

	// Diameter follows size
	rings := s.Registry().Rings()
	for i := 1; i < len(rings); i++ {
		assert.Greater(t, rings[i-1].Diameter, rings[i].Diameter)
	}

	// Initial positions are the stack slots
	b, _ := s.Registry().Pole(parameter.StartPole)
	for i, id := range s.Registry().StackOf(parameter.StartPole) {
		x, y := s.Layout().Target(b, i)
		pos := s.Transforms().Get(id)
		assert.Equal(t, x, pos.X)
		assert.Equal(t, y, pos.Y)
		assert.Equal(t, parameter.DragPlaneZ, pos.Z)
	}
}

func TestNewStage_RejectsRingCount(t *testing.T) {
	_, err := NewStage(StageConfig{RingCount: 0}, nil, nil, nil)
	assert.Error(t, err)
	_, err = NewStage(StageConfig{RingCount: parameter.RingCountMax + 1}, nil, nil, nil)
	assert.Error(t, err)
}

func TestRegistry_ReassignExclusive(t *testing.T) {
	reg := NewRegistry(NewRings(4), NewPoles(4))
	for _, r := range reg.Rings() {
		require.NoError(t, reg.Reassign(r.ID, NoPole, 1))
	}

	for _, r := range reg.Rings() {
		for p := PoleID(0); p < 3; p++ {
			require.NoError(t, reg.Reassign(r.ID, NoPole, p))

			holder, ok := reg.PoleHolding(r.ID)
			require.True(t, ok)
			assert.Equal(t, p, holder)

			count := 0
			for q := PoleID(0); q < 3; q++ {
				for _, id := range reg.StackOf(q) {
					if id == r.ID {
						count++
					}
				}
			}
			assert.Equal(t, 1, count, "ring %d must be on exactly one pole", r.ID)
		}
	}
}

func TestRegistry_ReassignAbsentRingIsIdempotentRemoval(t *testing.T) {
	reg := NewRegistry(NewRings(2), NewPoles(2))
	require.NoError(t, reg.Reassign(1, 2, 0))
	assert.Equal(t, []RingID{1}, reg.StackOf(0))

	assert.ErrorIs(t, reg.Reassign(9, 0, 1), ErrUnknownRing)
	assert.ErrorIs(t, reg.Reassign(0, 0, 7), ErrUnknownPole)
}

func TestRegistry_Validate(t *testing.T) {
	reg := NewRegistry(NewRings(2), NewPoles(2))
	require.NoError(t, reg.Reassign(0, NoPole, 0))
	assert.ErrorIs(t, reg.Validate(), ErrInvariant, "ring 1 on no pole")

	require.NoError(t, reg.Reassign(1, NoPole, 0))
	assert.NoError(t, reg.Validate())

	// Force a duplicate behind the single mutation point
	reg.stacks[2] = append(reg.stacks[2], 1)
	assert.ErrorIs(t, reg.Validate(), ErrInvariant)

	reg.stacks[2] = nil
	reg.stacks[0] = []RingID{1, 0}
	assert.ErrorIs(t, reg.Validate(), ErrInvariant, "larger ring above smaller")
}

func TestLayout_TargetDeterminism(t *testing.T) {
	l := NewLayout(NewTransforms(0), nil, 0)
	step := parameter.RingThickness + parameter.RingGap

	for _, p := range NewPoles(parameter.RingCountMax) {
		prevX, prevY := l.Target(p, 0)
		assert.Equal(t, p.X+parameter.PoleDiameter/2, prevX)
		assert.InDelta(t, parameter.RingThickness/2+parameter.RingGroundClearance, prevY, 1e-12)

		for i := 1; i < parameter.RingCountMax; i++ {
			x, y := l.Target(p, i)
			assert.Equal(t, prevX, x, "x constant per pole")
			assert.Greater(t, y, prevY)
			assert.InDelta(t, step, y-prevY, 1e-12, "constant spacing")
			prevY = y
		}
	}
}

func TestLayout_MoveToSupersedes(t *testing.T) {
	anim := &recordingAnimator{}
	tr := NewTransforms(1)
	tr.Set(0, tr.Get(0).WithAxis(2, 3))
	l := NewLayout(tr, anim, 10)
	pole := NewPoles(1)[0]

	l.MoveTo(0, pole, 2)

	require.Equal(t, []RingID{0}, anim.cancels, "cancel before animating")
	require.Len(t, anim.calls, 2)
	x, y := l.Target(pole, 2)
	assert.Equal(t, animCall{0, AxisX, 0, x, 10}, anim.calls[0])
	assert.Equal(t, animCall{0, AxisY, 0, y, 10}, anim.calls[1])
	assert.Equal(t, parameter.DragPlaneZ, tr.Get(0).Z)
}

func TestLayout_InstantWithoutAnimator(t *testing.T) {
	tr := NewTransforms(1)
	l := NewLayout(tr, nil, 10)
	pole := NewPoles(1)[2]

	l.MoveTo(0, pole, 0)

	x, y := l.Target(pole, 0)
	assert.Equal(t, x, tr.Get(0).X)
	assert.Equal(t, y, tr.Get(0).Y)
}

// arrange places rings by size directly through the registry, bypassing drop rules
func arrange(t *testing.T, s *Stage, stacks map[PoleID][]int) {
	t.Helper()
	for pole := PoleID(0); pole < parameter.PoleCount; pole++ {
		for _, size := range stacks[pole] {
			ring, ok := s.Registry().RingBySize(size)
			require.True(t, ok)
			require.NoError(t, s.Registry().Reassign(ring.ID, NoPole, pole))
		}
	}
	require.NoError(t, s.Registry().Validate())
}

func TestResolve_Legality(t *testing.T) {
	tests := []struct {
		name     string
		stacks   map[PoleID][]int
		size     int
		accepted bool
	}{
		{"empty pole accepts", map[PoleID][]int{1: {3, 2, 1}}, 1, true},
		{"smaller onto larger", map[PoleID][]int{0: {2}, 1: {3, 1}}, 1, true},
		{"larger onto smaller", map[PoleID][]int{0: {1}, 1: {3, 2}}, 2, false},
		{"largest onto smallest", map[PoleID][]int{0: {1}, 1: {3}, 2: {2}}, 3, false},
		{"largest onto middle", map[PoleID][]int{0: {2}, 1: {3}, 2: {1}}, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStage(t, 3, nil)
			arrange(t, s, tt.stacks)

			ring, _ := s.Registry().RingBySize(tt.size)
			require.True(t, s.Registry().IsTop(ring.ID))
			before := s.Registry().StackOf(0)
			from, _ := s.Registry().PoleHolding(ring.ID)

			out := dropOnPole(t, s, tt.size, 0)

			assert.Equal(t, tt.accepted, out.Accepted)
			holder, _ := s.Registry().PoleHolding(ring.ID)
			if tt.accepted {
				assert.Equal(t, PoleID(0), holder)
				assert.Equal(t, append(before, ring.ID), s.Registry().StackOf(0))
			} else {
				assert.Equal(t, ReasonIllegal, out.Reason)
				assert.Equal(t, from, holder, "rejected ring keeps its pole")
				assert.Equal(t, before, s.Registry().StackOf(0))
			}
			assert.NoError(t, s.Registry().Validate())
		})
	}
}

func TestResolve_NoPoleSnapsBack(t *testing.T) {
	anim := &recordingAnimator{}
	s, err := NewStage(StageConfig{RingCount: 3, AnimationFrames: 8, StrictInvariants: true}, anim, nil, nil)
	require.NoError(t, err)
	top, _ := s.Registry().Top(1)
	anim.calls = nil

	// Halfway between B and A, the smallest ring reaches neither band
	out := s.Drop(top, 1.9)

	assert.False(t, out.Accepted)
	assert.Equal(t, ReasonNoPole, out.Reason)
	assert.Equal(t, NoPole, out.Target)
	assert.Equal(t, PoleID(1), out.To)
	assert.Equal(t, 0, s.Moves())

	require.Len(t, anim.calls, 2)
	b, _ := s.Registry().Pole(1)
	x, y := s.Layout().Target(b, 2)
	assert.Equal(t, x, anim.calls[0].to)
	assert.Equal(t, y, anim.calls[1].to)
}

func TestResolve_SamePole(t *testing.T) {
	s := newTestStage(t, 3, nil)
	out := dropOnPole(t, s, 1, 1)
	assert.False(t, out.Accepted)
	assert.Equal(t, ReasonSamePole, out.Reason)
	assert.Equal(t, []int{3, 2, 1}, sizesOn(s, 1))
}

func TestResolve_TieBreakNearestCenter(t *testing.T) {
	s := newTestStage(t, parameter.RingCountMax, nil)
	largest, _ := s.Registry().RingBySize(parameter.RingCountMax)
	a, _ := s.Registry().Pole(0)
	b, _ := s.Registry().Pole(1)

	// Largest ring spans both bands near the midpoint
	require.True(t, Overlaps(a, largest.Diameter, 1.7))
	require.True(t, Overlaps(b, largest.Diameter, 1.7))

	p, ok := s.Resolver().TargetPole(largest.ID, 1.7)
	require.True(t, ok)
	assert.Equal(t, PoleID(1), p)

	p, ok = s.Resolver().TargetPole(largest.ID, 2.0)
	require.True(t, ok)
	assert.Equal(t, PoleID(0), p)

	mid := (a.CenterX() + b.CenterX()) / 2
	p, ok = s.Resolver().TargetPole(largest.ID, mid)
	require.True(t, ok)
	assert.Equal(t, PoleID(0), p, "equal distance goes to the lower index")

	p, ok = s.Resolver().TargetPole(largest.ID, mid-1e-12)
	require.True(t, ok)
	assert.Equal(t, PoleID(0), p, "rounding noise does not break the tie")
}

func TestResolve_InvariantFault(t *testing.T) {
	build := func(strict bool) *Resolver {
		reg := NewRegistry(NewRings(2), NewPoles(2))
		require.NoError(t, reg.Reassign(0, NoPole, 1))
		// ring 1 deliberately left off every pole
		tr := NewTransforms(2)
		return NewResolver(reg, NewLayout(tr, nil, 0), NewSolvedDetector(nil), strict, nil)
	}

	assert.Panics(t, func() { build(true).Resolve(0, 3.75) })

	out := build(false).Resolve(0, 3.75)
	assert.False(t, out.Accepted)
	assert.Equal(t, ReasonInvariant, out.Reason)
}

func TestSolved_ThreeRingScenario(t *testing.T) {
	announced := 0
	s := newTestStage(t, 3, NotifierFunc(func() { announced++ }))

	// Size 1 to A, then an illegal size 2 onto size 1
	require.True(t, dropOnPole(t, s, 1, 0).Accepted)
	out := dropOnPole(t, s, 2, 0)
	assert.False(t, out.Accepted)
	assert.Equal(t, []int{1}, sizesOn(s, 0))
	assert.Equal(t, []int{3, 2}, sizesOn(s, 1))

	// Finish on A
	steps := []Move{
		{2, 1, 2}, {1, 0, 2}, {3, 1, 0}, {1, 2, 1}, {2, 2, 0}, {1, 1, 0},
	}
	for i, m := range steps {
		require.False(t, s.IsSolved(), "solved too early at step %d", i)
		out := dropOnPole(t, s, m.Size, m.To)
		require.True(t, out.Accepted, "step %d: %+v reason %s", i, m, out.Reason)
	}

	assert.True(t, s.IsSolved())
	assert.Equal(t, 1, announced)
	assert.Equal(t, []int{3, 2, 1}, sizesOn(s, 0))
	assert.Equal(t, 7, s.Moves())
}

func TestSolved_OptimalSolutionEitherOuterPole(t *testing.T) {
	for _, target := range []PoleID{0, 2} {
		for n := parameter.RingCountMin; n <= parameter.RingCountMax; n++ {
			announced := 0
			s := newTestStage(t, n, NotifierFunc(func() { announced++ }))
			moves := Solve(n, parameter.StartPole, target)
			require.Len(t, moves, 1<<n-1)

			for i, m := range moves {
				require.False(t, s.IsSolved())
				out := dropOnPole(t, s, m.Size, m.To)
				require.True(t, out.Accepted, "n=%d step %d", n, i)
				require.NoError(t, s.Registry().Validate())
			}
			assert.True(t, s.IsSolved(), "n=%d target=%d", n, target)
			assert.Equal(t, 1, announced)
			assert.Equal(t, s.MinimalMoves(), s.Moves())
		}
	}
}

func TestSolved_LatchAndIdempotence(t *testing.T) {
	announced := 0
	s := newTestStage(t, 1, NotifierFunc(func() { announced++ }))
	reg := s.Registry()

	assert.Equal(t, CheckSolved(reg, 1), CheckSolved(reg, 1))
	assert.False(t, CheckSolved(reg, 1))

	require.True(t, dropOnPole(t, s, 1, 2).Accepted)
	assert.True(t, CheckSolved(reg, 1))
	assert.Equal(t, CheckSolved(reg, 1), CheckSolved(reg, 1))

	// Moving back to the middle leaves the latch set and fires nothing new
	require.True(t, dropOnPole(t, s, 1, 1).Accepted)
	assert.False(t, CheckSolved(reg, 1))
	assert.True(t, s.IsSolved())
	require.True(t, dropOnPole(t, s, 1, 0).Accepted)
	assert.Equal(t, 1, announced)
}

func TestSolve_Sequence(t *testing.T) {
	assert.Equal(t, []Move{
		{1, 1, 0}, {2, 1, 2}, {1, 0, 2}, {3, 1, 0}, {1, 2, 1}, {2, 2, 0}, {1, 1, 0},
	}, Solve(3, 1, 0))
	assert.Empty(t, Solve(0, 1, 0))
}
