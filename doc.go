// Package parallax is a scroll-driven parallax container for [Ebitengine].
//
// A [Container] owns a viewport node and a content panel that scrolls inside
// it. Children attached to the panel carry a [ChildSpec] describing the
// transform they move toward as the user scrolls: translation, scale, alpha,
// and rotation.
//
// # Quick start
//
//	c := parallax.NewContainer(parallax.Config{
//		Viewport: parallax.Rect{Width: 640, Height: 480},
//	})
//	moon := parallax.NewNode("moon", parallax.Rect{X: 260, Y: 600, Width: 120, Height: 120})
//	spec := parallax.NewChildSpec()
//	spec.TranslationY = 300
//	spec.Alpha = 0.2
//	c.AddChild(moon, spec)
//	parallax.Run(c, parallax.RunConfig{Title: "Parallax", Width: 640, Height: 480})
//
// For full control, implement [ebiten.Game] yourself and call
// [Container.Update] and [Container.Draw].
//
// # Modes
//
// [ModeContinuous] maps the scroll offset to a progress fraction
// (offset / max(1, content - viewport), see [Fraction]) on every scroll change
// and interpolates each child from the identity transform to its target.
// Progress is not clamped, so overscroll extrapolates past the target.
//
// [ModeThreshold] leaves children at rest until the visible fraction of a
// child reaches its [ChildSpec.TriggerFraction], then starts a one-shot
// reveal tween (via [gween]) to the target. A child reveals at most once.
//
// # Host hooks
//
// Hosts that drive the container without the frame loop call
// [Container.NotifyScrollChanged], [Container.NotifyVisibilityCheckRequested],
// and [Container.SeedInitialOffset] directly. Visible rectangles and reveal
// tweens come from a [VisibilityProvider] and an [Animator], both
// replaceable.
//
// Layouts can be loaded from TOML with [LoadLayout]; the ecs submodule
// forwards [TriggerEvent]s to a [Donburi] world.
//
// # Automated runs
//
// A [ScrollScript] replays scroll, wheel, and visibility-check steps across
// frames, and [Container.Screenshot] captures frames to PNG. The
// parallaxview command runs layouts and scripts from the shell.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package parallax
