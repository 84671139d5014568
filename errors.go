package parallax

import "errors"

// Layout file errors. Wrapped with context by LoadLayout; test with errors.Is.
var (
	ErrNoChildren          = errors.New("layout has no children")
	ErrUnknownMode         = errors.New("unknown mode")
	ErrUnknownOrientation  = errors.New("unknown orientation")
	ErrUnknownParallaxAxis = errors.New("unknown parallax axis")
)
