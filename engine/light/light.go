package light

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	direction [3]float32
	color     [3]float32
	intensity float32
	ambient   [3]float32
}

// Light defines the interface for the scene's directional light source.
//
// The light has no position, only a direction; it affects all fragments
// uniformly with no distance attenuation, like sunlight. The ambient term
// lives on the light so the whole lighting environment marshals into a
// single GPU uniform via the gpu_types helpers.
//
// The light is configured at startup and read by the render loop; it is
// not safe for concurrent mutation while a frame is in flight.
type Light interface {
	// Direction returns the normalized direction the light travels in.
	//
	// Returns:
	//   - [3]float32: normalized direction as (x, y, z)
	Direction() [3]float32

	// Color returns the RGB color of the light.
	//
	// Returns:
	//   - [3]float32: color as (r, g, b)
	Color() [3]float32

	// Intensity returns the scalar intensity multiplier for the light.
	//
	// Returns:
	//   - float32: the intensity value
	Intensity() float32

	// Ambient returns the RGB ambient color applied to every fragment
	// regardless of facing.
	//
	// Returns:
	//   - [3]float32: ambient color as (r, g, b)
	Ambient() [3]float32

	// SetDirection sets the direction of the light and normalizes it.
	//
	// Parameters:
	//   - x, y, z: direction components (will be normalized)
	SetDirection(x, y, z float32)

	// SetColor sets the RGB color of the light.
	//
	// Parameters:
	//   - r, g, b: color components
	SetColor(r, g, b float32)

	// SetIntensity sets the scalar intensity multiplier.
	//
	// Parameters:
	//   - intensity: the intensity value
	SetIntensity(intensity float32)

	// SetAmbient sets the RGB ambient color.
	//
	// Parameters:
	//   - r, g, b: ambient color components
	SetAmbient(r, g, b float32)

	// GPUData returns the light marshaled into its GPU uniform representation.
	//
	// Returns:
	//   - GPULight: the GPU-aligned light data for the current state
	GPUData() GPULight
}

var _ Light = &lightImpl{}

// NewLight creates a new directional Light with sensible defaults and any
// provided options applied.
//
// Parameters:
//   - opts: variadic list of LightBuilderOption functions to configure the light
//
// Returns:
//   - Light: a new Light instance
func NewLight(opts ...LightBuilderOption) Light {
	l := &lightImpl{
		direction: normalize3(-0.5, -1.0, -0.75),
		color:     [3]float32{1, 1, 1},
		intensity: 1.0,
		ambient:   [3]float32{0.15, 0.15, 0.18},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *lightImpl) Direction() [3]float32 {
	return l.direction
}

func (l *lightImpl) Color() [3]float32 {
	return l.color
}

func (l *lightImpl) Intensity() float32 {
	return l.intensity
}

func (l *lightImpl) Ambient() [3]float32 {
	return l.ambient
}

func (l *lightImpl) SetDirection(x, y, z float32) {
	l.direction = normalize3(x, y, z)
}

func (l *lightImpl) SetColor(r, g, b float32) {
	l.color = [3]float32{r, g, b}
}

func (l *lightImpl) SetIntensity(intensity float32) {
	l.intensity = intensity
}

func (l *lightImpl) SetAmbient(r, g, b float32) {
	l.ambient = [3]float32{r, g, b}
}

func (l *lightImpl) GPUData() GPULight {
	return GPULight{
		Direction: l.direction,
		Color:     l.color,
		Intensity: l.intensity,
		Ambient:   l.ambient,
	}
}
