package parallax

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Layout is a container and its children described in a TOML file:
//
//	[container]
//	mode = "continuous"        # or "threshold"
//	orientation = "vertical"   # or "horizontal"
//	parallax_axis = "along"    # or "across"
//	width = 640
//	height = 480
//	initial_scroll_offset = 120
//
//	[[children]]
//	name = "moon"
//	y = 200
//	width = 120
//	height = 120
//	color = "#e8e3c8"
//	translation_y = 300
//	scale_x = 0.5
//	alpha = 0.2
//
// Omitted child keys take the NewChildSpec defaults.
type Layout struct {
	Container containerLayout `toml:"container"`
	Children  []childLayout   `toml:"children"`

	config     Config
	background Color
}

type containerLayout struct {
	Mode                string  `toml:"mode"`
	Orientation         string  `toml:"orientation"`
	ParallaxAxis        string  `toml:"parallax_axis"`
	X                   float64 `toml:"x"`
	Y                   float64 `toml:"y"`
	Width               float64 `toml:"width"`
	Height              float64 `toml:"height"`
	ContentWidth        float64 `toml:"content_width"`
	ContentHeight       float64 `toml:"content_height"`
	InitialScrollOffset float64 `toml:"initial_scroll_offset"`
	RevealDuration      float32 `toml:"reveal_duration"`
	WheelStep           float64 `toml:"wheel_step"`
	Background          string  `toml:"background"`
}

type childLayout struct {
	Name   string  `toml:"name"`
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Color  string  `toml:"color"`

	TranslationX           float64  `toml:"translation_x"`
	TranslationY           float64  `toml:"translation_y"`
	ScaleX                 *float64 `toml:"scale_x"`
	ScaleY                 *float64 `toml:"scale_y"`
	Alpha                  *float64 `toml:"alpha"`
	Rotation               float64  `toml:"rotation"`
	AnimationStartFraction *float64 `toml:"animation_start_fraction"`
}

// LoadLayoutFile reads and parses a TOML layout file.
func LoadLayoutFile(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	return LoadLayout(data)
}

// LoadLayout parses a TOML layout.
func LoadLayout(data []byte) (*Layout, error) {
	var l Layout
	if _, err := toml.Decode(string(data), &l); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	if len(l.Children) == 0 {
		return nil, fmt.Errorf("parse layout: %w", ErrNoChildren)
	}

	cl := l.Container
	cfg := Config{
		Viewport:            Rect{X: cl.X, Y: cl.Y, Width: cl.Width, Height: cl.Height},
		ContentWidth:        cl.ContentWidth,
		ContentHeight:       cl.ContentHeight,
		InitialScrollOffset: cl.InitialScrollOffset,
		RevealDuration:      cl.RevealDuration,
		WheelStep:           cl.WheelStep,
	}
	if err := cfg.Mode.UnmarshalText([]byte(cl.Mode)); err != nil {
		return nil, fmt.Errorf("parse layout: container: %w", err)
	}
	if cl.Orientation != "" {
		if err := cfg.Orientation.UnmarshalText([]byte(cl.Orientation)); err != nil {
			return nil, fmt.Errorf("parse layout: container: %w", err)
		}
	}
	if err := cfg.ParallaxAxis.UnmarshalText([]byte(cl.ParallaxAxis)); err != nil {
		return nil, fmt.Errorf("parse layout: container: %w", err)
	}
	l.config = cfg

	if cl.Background != "" {
		bg, err := parseHexColor(cl.Background)
		if err != nil {
			return nil, fmt.Errorf("parse layout: container background: %w", err)
		}
		l.background = bg
	}
	for i, ch := range l.Children {
		if ch.Color == "" {
			continue
		}
		if _, err := parseHexColor(ch.Color); err != nil {
			return nil, fmt.Errorf("parse layout: child %d (%s): %w", i, ch.Name, err)
		}
	}
	return &l, nil
}

// Config returns the container configuration described by the layout.
func (l *Layout) Config() Config {
	return l.config
}

// Build creates a container with every child attached in file order.
func (l *Layout) Build() *Container {
	c := NewContainer(l.config)
	c.ClearColor = l.background
	for i, ch := range l.Children {
		name := ch.Name
		if name == "" {
			name = "child-" + strconv.Itoa(i)
		}
		n := NewNode(name, Rect{X: ch.X, Y: ch.Y, Width: ch.Width, Height: ch.Height})
		if ch.Color != "" {
			n.Color, _ = parseHexColor(ch.Color)
		}
		c.AddChild(n, ch.spec())
	}
	return c
}

// spec converts the child's parallax keys to a ChildSpec, keeping defaults
// for omitted keys.
func (ch childLayout) spec() *ChildSpec {
	s := NewChildSpec()
	s.TranslationX = ch.TranslationX
	s.TranslationY = ch.TranslationY
	s.Rotation = ch.Rotation
	if ch.ScaleX != nil {
		s.ScaleX = *ch.ScaleX
	}
	if ch.ScaleY != nil {
		s.ScaleY = *ch.ScaleY
	}
	if ch.Alpha != nil {
		s.Alpha = *ch.Alpha
	}
	if ch.AnimationStartFraction != nil {
		s.TriggerFraction = *ch.AnimationStartFraction
	}
	return s
}

// parseHexColor parses "#rrggbb" or "#rrggbbaa".
func parseHexColor(s string) (Color, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 && len(h) != 8 {
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}
