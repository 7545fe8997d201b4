package framebuf

import (
	"unicode/utf8"

	"speedscreen/pkg/font"
)

// DrawScaledText renders text into an off-screen strip and paints every set
// pixel of it as a scale x scale block at (x+col*scale, y+row*scale).
// A scale below 1 draws nothing.
func (fb *FrameBuffer) DrawScaledText(text string, x, y, scale int, c Color) {
	n := utf8.RuneCountInString(text)
	if n == 0 || scale < 1 {
		return
	}

	scratch, err := New(n*font.Width, font.Height)
	if err != nil {
		return
	}
	scratch.Text(text, 0, 0, On)

	c0, c1 := blocks(x, scale, fb.width, scratch.width)
	r0, r1 := blocks(y, scale, fb.height, scratch.height)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			if scratch.Pixel(col, row) != Off {
				fb.FillRect(x+col*scale, y+row*scale, scale, scale, c)
			}
		}
	}
}

// blocks returns the cells [lo, hi) of count, laid out scale wide from pos,
// whose blocks touch [0, limit). pos+i*scale is exact for every i in range.
func blocks(pos, scale, limit, count int) (lo, hi int) {
	if pos >= limit {
		return 0, 0
	}

	s := uint64(scale)
	var first uint64
	if pos < 0 {
		first = (0 - uint64(pos)) / s
	}
	end := (uint64(limit)-uint64(pos)-1)/s + 1

	return int(min(first, uint64(count))), int(min(end, uint64(count)))
}

// DrawTextMax draws text at the origin with the largest scale that fits.
func (fb *FrameBuffer) DrawTextMax(text string) {
	if s := MaxScale(text, fb.width, fb.height); s > 0 {
		fb.DrawScaledText(text, 0, 0, s, On)
	}
}

// MaxScale is the largest integer scale at which text fits width x height.
// Text too long for scale 1 still gets 1 and is clipped at the right edge.
// Empty text yields 0.
func MaxScale(text string, width, height int) int {
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return 0
	}
	return max(min(width/(n*font.Width), height/font.Height), 1)
}
