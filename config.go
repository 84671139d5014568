package parallax

import "github.com/tanema/gween/ease"

// Config configures a Container. It is read once by NewContainer; the zero
// value is a vertical continuous-mode container with no viewport.
type Config struct {
	// Mode selects the engine strategy. Fixed for the container's lifetime.
	Mode Mode
	// Orientation selects the scroll axis. Default Vertical.
	Orientation Orientation
	// ParallaxAxis selects which translation component continuous mode
	// drives. Default AxisAlongScroll.
	ParallaxAxis ParallaxAxis

	// InitialScrollOffset is applied once, before the first frame is drawn.
	InitialScrollOffset float64

	// Viewport is the container's rectangle on screen.
	Viewport Rect

	// ContentWidth and ContentHeight override the measured content extent
	// when positive. Otherwise the extent is measured from the children.
	ContentWidth, ContentHeight float64

	// RevealDuration is the threshold-mode tween duration in seconds.
	// Default DefaultRevealDuration.
	RevealDuration float32
	// RevealEase is the threshold-mode easing. Default DefaultRevealEase.
	RevealEase ease.TweenFunc

	// WheelStep is the scroll distance of one wheel notch or arrow key.
	// Default 40.
	WheelStep float64
}

const defaultWheelStep = 40

func (cfg Config) withDefaults() Config {
	if cfg.RevealDuration <= 0 {
		cfg.RevealDuration = DefaultRevealDuration
	}
	if cfg.RevealEase == nil {
		cfg.RevealEase = DefaultRevealEase
	}
	if cfg.WheelStep <= 0 {
		cfg.WheelStep = defaultWheelStep
	}
	return cfg
}
