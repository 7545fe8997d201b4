package framebuf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"speedscreen/pkg/font"
)

func TestScaledTextRoundTrip(t *testing.T) {
	fb := newFB(t, 128, 32)
	text := "Az09!~"
	fb.DrawScaledText(text, 0, 0, 1, On)

	for i, r := range text {
		g := font.Glyph(r)
		for col := 0; col < font.Width; col++ {
			for row := 0; row < font.Height; row++ {
				want := Color(g[col] >> row & 1)
				assert.Equal(t, want, fb.Pixel(i*font.Width+col, row))
			}
		}
	}
}

func TestScaledTextBlocks(t *testing.T) {
	ref := newFB(t, 8, 8)
	ref.Text("7", 0, 0, On)

	fb := newFB(t, 64, 32)
	fb.DrawScaledText("7", 3, 2, 3, On)

	for y := 0; y < 32; y++ {
		for x := 0; x < 64; x++ {
			want := Off
			if x >= 3 && y >= 2 {
				want = ref.Pixel((x-3)/3, (y-2)/3)
			}
			assert.Equal(t, want, fb.Pixel(x, y), "(%d,%d)", x, y)
		}
	}
}

func TestScaledTextDegenerate(t *testing.T) {
	fb := newFB(t, 32, 16)
	fb.DrawScaledText("8", 0, 0, 0, On)
	fb.DrawScaledText("8", 0, 0, -2, On)
	fb.DrawScaledText("", 0, 0, 2, On)
	assert.Zero(t, countOn(fb))

	assert.NotPanics(t, func() { fb.DrawScaledText("888", 20, 10, 4, On) })
}

func TestScaledTextHugeScale(t *testing.T) {
	const block = "\x7f"
	fb := newFB(t, 32, 16)

	// one block covers everything right of x=10
	fb.DrawScaledText(block, 10, 0, math.MaxInt, On)
	assert.Equal(t, 22*16, countOn(fb))
	assert.Equal(t, Off, fb.Pixel(9, 0))

	// the second glyph's first column starts at MinInt+MaxInt = -1
	fb.Fill(Off)
	fb.DrawScaledText(block+block, math.MinInt, 0, math.MaxInt, On)
	assert.Equal(t, 32*16, countOn(fb))

	fb.Fill(Off)
	fb.DrawScaledText(block, 40, 0, math.MaxInt, On)
	fb.DrawScaledText(block, math.MinInt, math.MinInt, 3, On)
	assert.Zero(t, countOn(fb))

	fb.DrawScaledText(block, -7, -7, 4, On)
	assert.Equal(t, 25*16, countOn(fb))
}

func TestMaxScale(t *testing.T) {
	for _, tc := range []struct {
		text string
		w, h int
		want int
	}{
		{"300", 128, 32, 4},
		{"1", 128, 32, 4},
		{"1", 128, 64, 8},
		{"12345", 128, 64, 3},
		{"0123456789abcdefX", 128, 32, 1},
		{"", 128, 32, 0},
	} {
		assert.Equal(t, tc.want, MaxScale(tc.text, tc.w, tc.h), "%q on %dx%d", tc.text, tc.w, tc.h)
	}
}

func TestDrawTextMax(t *testing.T) {
	fb := newFB(t, 128, 32)
	fb.DrawTextMax("300")

	ref := newFB(t, 128, 32)
	ref.DrawScaledText("300", 0, 0, 4, On)
	assert.Equal(t, ref.Bytes(), fb.Bytes())

	// too long for the display: drawn at scale 1, clipped on the right
	fb.Fill(Off)
	fb.DrawTextMax("ABCDEFGHIJKLMNOPQ")
	ref.Fill(Off)
	ref.Text("ABCDEFGHIJKLMNOPQ", 0, 0, On)
	assert.Equal(t, ref.Bytes(), fb.Bytes())
	assert.NotZero(t, countOn(fb))
}
