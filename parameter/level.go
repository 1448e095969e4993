package parameter

// Ground dimensions, top face of the ground sits at y=0
const (
	LevelSizeX = 15.0
	LevelSizeY = 0.25
	LevelSizeZ = 10.0
)

// Pole geometry
const (
	// PoleCount is fixed, the puzzle is always three poles
	PoleCount = 3

	// PoleDiameter is the physical pole diameter
	// The drop-catch band is twice as wide (poleX +- PoleDiameter)
	PoleDiameter = 0.5

	// PoleHeadroom is extra pole height above a full stack
	PoleHeadroom = RingThickness

	// StartPole is the index of the pole holding all rings at session start
	StartPole = 1
)

// Ring geometry
const (
	// RingThickness is the vertical extent of one ring
	RingThickness = 0.5

	// RingGap is the vertical gap between stacked rings
	RingGap = 0.1

	// RingGroundClearance lifts the bottom ring above the ground
	RingGroundClearance = 0.05

	// RingDiameterSmallest is the outer diameter of the size-1 ring
	RingDiameterSmallest = 1.0

	// RingDiameterStep is the diameter growth per size rank
	RingDiameterStep = 0.4

	// RingHoleMargin is the clearance between the pole surface and a ring's inner wall
	RingHoleMargin = 0.08
)

// Ring count limits
const (
	RingCountDefault = 5
	RingCountMin     = 1
	RingCountMax     = 8
)

// DragPlaneZ is the depth every dragged ring is pinned to
const DragPlaneZ = 0.0

// DragLimitX bounds the horizontal coordinate of a dragged ring to [-DragLimitX, DragLimitX]
const DragLimitX = LevelSizeX / 4

// PoleAnchorX returns the anchor x of pole i (A, B, C)
// The physical pole center is the anchor plus PoleDiameter/2
func PoleAnchorX(i int) float64 {
	switch i {
	case 0:
		return -(PoleDiameter / 2) + LevelSizeX/4
	case 1:
		return -(PoleDiameter / 2)
	default:
		return -(PoleDiameter / 2) - LevelSizeX/4
	}
}

// PoleHeight returns the pole height that fits a full stack of ringCount rings
func PoleHeight(ringCount int) float64 {
	return RingGroundClearance + float64(ringCount)*(RingThickness+RingGap) + PoleHeadroom
}

// RingDiameter returns the outer diameter of the ring with the given size rank
// Diameter grows with size so stacking order by size is also visual order
func RingDiameter(size int) float64 {
	return RingDiameterSmallest + float64(size-1)*RingDiameterStep
}
