package core

import (
	"image"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Framebuffer is a double-buffered monochrome Display backed by grayscale
// images. Drawing goes to the back buffer; Present copies it to the front
// buffer, which is what platform bindings read.
type Framebuffer struct {
	back   *image.Gray
	front  *image.Gray
	face   font.Face
	ascent int
	frames uint64
}

// NewFramebuffer creates a cleared ScreenWidth x ScreenHeight framebuffer.
func NewFramebuffer() *Framebuffer {
	bounds := image.Rect(0, 0, ScreenWidth, ScreenHeight)
	face := basicfont.Face7x13
	return &Framebuffer{
		back:   image.NewGray(bounds),
		front:  image.NewGray(bounds),
		face:   face,
		ascent: face.Metrics().Ascent.Ceil(),
	}
}

// Width returns the canvas width in pixels.
func (f *Framebuffer) Width() int {
	return ScreenWidth
}

// Height returns the canvas height in pixels.
func (f *Framebuffer) Height() int {
	return ScreenHeight
}

// Clear switches every back-buffer pixel off.
func (f *Framebuffer) Clear() {
	clear(f.back.Pix)
}

// FillRect switches on the clipped w x h box at (x, y).
// Boxes with a non-positive size draw nothing.
func (f *Framebuffer) FillRect(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	r := image.Rect(x, y, x+w, y+h).Intersect(f.back.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(f.back, r, image.White, image.Point{}, draw.Src)
}

// DrawText renders text with the built-in 7x13 bitmap font.
func (f *Framebuffer) DrawText(x, y int, text string) {
	d := font.Drawer{
		Dst:  f.back,
		Src:  image.White,
		Face: f.face,
		Dot:  fixed.P(x, y+f.ascent),
	}
	d.DrawString(text)
}

// Present publishes the back buffer.
func (f *Framebuffer) Present() {
	copy(f.front.Pix, f.back.Pix)
	f.frames++
}

// Frames returns how many frames have been presented.
func (f *Framebuffer) Frames() uint64 {
	return f.frames
}

// Pixel reports whether the presented pixel at (x, y) is on.
// Out-of-bounds coordinates read as off.
func (f *Framebuffer) Pixel(x, y int) bool {
	if !(image.Point{X: x, Y: y}).In(f.front.Bounds()) {
		return false
	}
	return f.front.GrayAt(x, y).Y >= 0x80
}

// Frame returns a copy of the presented frame.
func (f *Framebuffer) Frame() *image.Gray {
	img := image.NewGray(f.front.Bounds())
	copy(img.Pix, f.front.Pix)
	return img
}

// String converts the presented frame to text art, one row per line.
func (f *Framebuffer) String() string {
	var sb strings.Builder
	sb.Grow((ScreenWidth + 1) * ScreenHeight)

	for y := range ScreenHeight {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range ScreenWidth {
			if f.Pixel(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
