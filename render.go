package parallax

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// whitePixel is a 1x1 white image scaled and tinted to draw every node.
// Created on first Draw so the package can be used without a graphics
// context.
var whitePixel *ebiten.Image

func pixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// toRGBA converts a Color to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// geoM converts an affine matrix to an ebiten.GeoM.
func geoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(0, 1, m[2])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 0, m[1])
	g.SetElement(1, 1, m[3])
	g.SetElement(1, 2, m[5])
	return g
}

// Draw renders the container to screen. The initial offset is applied first
// if it has not been yet, so it is in place before the first paint. Queued
// screenshots are captured after drawing.
func (c *Container) Draw(screen *ebiten.Image) {
	c.SeedInitialOffset()
	c.refresh()
	if c.ClearColor.A > 0 {
		screen.Fill(c.ClearColor.toRGBA())
	}
	drawNode(screen, c.root)
	c.flushScreenshots(screen)
}

// drawNode draws n as a tinted quad and recurses into its children, clipping
// them to n's bounds when ClipChildren is set. Overscroll can drive alpha
// outside [0, 1]; it is clamped here and nowhere else.
func drawNode(dst *ebiten.Image, n *Node) {
	if !n.Visible {
		return
	}

	alpha := clamp01(n.worldAlpha) * clamp01(n.Color.A)
	if n.Width > 0 && n.Height > 0 && alpha > 0 {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(n.Width, n.Height)
		op.GeoM.Concat(geoM(n.worldTransform))
		op.ColorScale.Scale(
			float32(clamp01(n.Color.R)*alpha),
			float32(clamp01(n.Color.G)*alpha),
			float32(clamp01(n.Color.B)*alpha),
			float32(alpha),
		)
		dst.DrawImage(pixel(), op)
	}

	if len(n.children) == 0 {
		return
	}
	target := dst
	if n.ClipChildren {
		r := worldAABB(n.worldTransform, n.Width, n.Height)
		clip := image.Rect(
			int(math.Floor(r.X)), int(math.Floor(r.Y)),
			int(math.Ceil(r.Right())), int(math.Ceil(r.Bottom())),
		).Intersect(dst.Bounds())
		if clip.Empty() {
			return
		}
		target = dst.SubImage(clip).(*ebiten.Image)
	}
	for _, child := range n.children {
		drawNode(target, child)
	}
}
