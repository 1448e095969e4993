package parameter

// Orbit camera defaults
// The camera looks at CameraTarget from CameraDistance, rotated by yaw around y and pitch around x
const (
	// CameraDistance is the default eye distance from the target
	CameraDistance = 12.0

	// CameraDistanceMin and CameraDistanceMax bound zoom
	CameraDistanceMin = 5.0
	CameraDistanceMax = 30.0

	// CameraYaw is the default horizontal angle in radians, 0 looks down +z from -z
	CameraYaw = 0.0

	// CameraPitch is the default elevation in radians
	CameraPitch = 0.35

	// CameraPitchMin and CameraPitchMax keep the eye above the ground and below the zenith
	CameraPitchMin = 0.05
	CameraPitchMax = 1.45

	// CameraTargetY is the height of the look-at point
	CameraTargetY = 1.2

	// CameraFocal is the focal length in view-height units (1/tan(fov/2))
	CameraFocal = 1.8

	// CameraCellAspect compensates for terminal cells being twice as tall as wide
	CameraCellAspect = 2.0

	// CameraSensitivity is the default orbit radians per cell of pointer travel
	CameraSensitivity = 0.03

	// CameraZoomStep is the distance change per wheel notch or key press
	CameraZoomStep = 0.75

	// CameraKeyStep is the orbit angle per arrow key press
	CameraKeyStep = 0.08
)
