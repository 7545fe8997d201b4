package bitmap

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"speedscreen/pkg/framebuf"
)

func square(size int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestDraw(t *testing.T) {
	fb, err := framebuf.New(16, 16)
	require.NoError(t, err)

	img := square(4, color.White)
	img.Set(1, 1, color.Black)
	img.Set(2, 2, color.Transparent)
	fb.SetPixel(6, 6, framebuf.On)

	Draw(fb, 4, 4, img)

	assert.Equal(t, framebuf.On, fb.Pixel(4, 4))
	assert.Equal(t, framebuf.On, fb.Pixel(7, 7))
	assert.Equal(t, framebuf.Off, fb.Pixel(5, 5))
	// transparent pixel keeps what was there
	assert.Equal(t, framebuf.On, fb.Pixel(6, 6))
	assert.Equal(t, framebuf.Off, fb.Pixel(8, 8))
}

func TestDrawClipped(t *testing.T) {
	fb, err := framebuf.New(8, 8)
	require.NoError(t, err)

	assert.NotPanics(t, func() { Draw(fb, 6, -2, square(4, color.White)) })
	assert.Equal(t, framebuf.On, fb.Pixel(7, 0))
	assert.Equal(t, framebuf.On, fb.Pixel(6, 1))
	assert.Equal(t, framebuf.Off, fb.Pixel(6, 2))
}

func TestMono(t *testing.T) {
	fb, err := framebuf.New(8, 8)
	require.NoError(t, err)

	mid := square(2, color.Gray{Y: 0x60})
	Draw(fb, 0, 0, Mono(mid, 0x40))
	assert.Equal(t, framebuf.On, fb.Pixel(0, 0))

	Draw(fb, 0, 0, mid)
	assert.Equal(t, framebuf.Off, fb.Pixel(0, 0))

	blank := square(2, color.Transparent)
	fb.SetPixel(1, 1, framebuf.On)
	Draw(fb, 0, 0, Mono(blank, 0))
	assert.Equal(t, framebuf.On, fb.Pixel(1, 1))
}

func TestEncode(t *testing.T) {
	bs, err := Encode(square(64, color.White), 128, 32, Threshold)
	require.NoError(t, err)
	require.Len(t, bs, 128*32/8)

	// fitted to 32x32 at the left edge
	assert.Equal(t, byte(0xff), bs[0])
	assert.Equal(t, byte(0xff), bs[3*128+31])
	assert.Equal(t, byte(0x00), bs[32])

	// dark gray only lights up under a low threshold
	bs, err = Encode(square(16, color.Gray{Y: 0x30}), 16, 8, 0x20)
	require.NoError(t, err)
	assert.Equal(t, byte(0xff), bs[0])
	bs, err = Encode(square(16, color.Gray{Y: 0x30}), 16, 8, Threshold)
	require.NoError(t, err)
	assert.Equal(t, byte(0x00), bs[0])

	_, err = Encode(square(4, color.White), 16, 12, Threshold)
	assert.Error(t, err)
}
