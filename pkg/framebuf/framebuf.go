package framebuf

import (
	"math"

	"github.com/pkg/errors"

	"speedscreen/pkg/font"
)

// Color of a single pixel. Any non-zero value draws as On.
type Color uint8

const (
	Off Color = 0
	On  Color = 1
)

// New allocates a buffer of width x height pixels. The height must be a
// multiple of 8, one page per 8 rows.
func New(width, height int) (*FrameBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("framebuf: invalid size %dx%d", width, height)
	}
	if height%8 != 0 {
		return nil, errors.Errorf("framebuf: height %d is not a multiple of 8", height)
	}

	return &FrameBuffer{
		buf:    make([]byte, width*height/8),
		width:  width,
		height: height,
		pages:  height / 8,
	}, nil
}

// FrameBuffer is a monochrome pixel store packed vertically: each byte holds
// eight stacked pixels of one column, bit 0 on top.
type FrameBuffer struct {
	buf    []byte
	width  int
	height int
	pages  int
}

func (fb *FrameBuffer) Width() int {
	return fb.width
}

func (fb *FrameBuffer) Height() int {
	return fb.height
}

func (fb *FrameBuffer) Pages() int {
	return fb.pages
}

// Bytes exposes the backing store, pages*width bytes long.
func (fb *FrameBuffer) Bytes() []byte {
	return fb.buf
}

// Page returns the width bytes of page p, or nil when p is not in [0, Pages()).
func (fb *FrameBuffer) Page(p int) []byte {
	if p < 0 || p >= fb.pages {
		return nil
	}
	return fb.buf[p*fb.width : (p+1)*fb.width]
}

func (fb *FrameBuffer) inside(x, y int) bool {
	return x >= 0 && x < fb.width && y >= 0 && y < fb.height
}

// set writes an in-range pixel.
func (fb *FrameBuffer) set(x, y int, c Color) {
	i := (y>>3)*fb.width + x
	if c != Off {
		fb.buf[i] |= 1 << (y & 7)
	} else {
		fb.buf[i] &^= 1 << (y & 7)
	}
}

func (fb *FrameBuffer) Fill(c Color) {
	var v byte
	if c != Off {
		v = 0xff
	}
	for i := range fb.buf {
		fb.buf[i] = v
	}
}

func (fb *FrameBuffer) SetPixel(x, y int, c Color) {
	if fb.inside(x, y) {
		fb.set(x, y, c)
	}
}

// Pixel reads a pixel, out-of-range coordinates read as Off.
func (fb *FrameBuffer) Pixel(x, y int) Color {
	if !fb.inside(x, y) {
		return Off
	}
	return Color(fb.buf[(y>>3)*fb.width+x] >> (y & 7) & 1)
}

func (fb *FrameBuffer) HLine(x, y, w int, c Color) {
	fb.FillRect(x, y, w, 1, c)
}

func (fb *FrameBuffer) VLine(x, y, h int, c Color) {
	fb.FillRect(x, y, 1, h, c)
}

// Rect outlines the w x h box at (x, y). Edges outside the buffer are skipped.
func (fb *FrameBuffer) Rect(x, y, w, h int, c Color) {
	x0, x1, left, right := span(x, w, fb.width)
	y0, y1, top, bottom := span(y, h, fb.height)
	if x0 == x1 || y0 == y1 {
		return
	}

	if top {
		fb.fill(x0, y0, x1, y0+1, c)
	}
	if bottom {
		fb.fill(x0, y1-1, x1, y1, c)
	}
	if left {
		fb.fill(x0, y0, x0+1, y1, c)
	}
	if right {
		fb.fill(x1-1, y0, x1, y1, c)
	}
}

func (fb *FrameBuffer) FillRect(x, y, w, h int, c Color) {
	x0, x1, _, _ := span(x, w, fb.width)
	y0, y1, _, _ := span(y, h, fb.height)
	fb.fill(x0, y0, x1, y1, c)
}

// fill sets the in-range box [x0, x1) x [y0, y1).
func (fb *FrameBuffer) fill(x0, y0, x1, y1 int, c Color) {
	for yy := y0; yy < y1; yy++ {
		for xx := x0; xx < x1; xx++ {
			fb.set(xx, yy, c)
		}
	}
}

// span clips the run of n cells starting at pos to [0, limit). head and tail
// report whether the first and last cell of the run survived. No sum in here
// can overflow, whatever pos and n are.
func span(pos, n, limit int) (lo, hi int, head, tail bool) {
	if n <= 0 || pos >= limit {
		return 0, 0, false, false
	}

	head = pos >= 0
	if !head {
		if n+pos <= 0 {
			return 0, 0, false, false
		}
		n += pos
		pos = 0
	}

	tail = n <= limit-pos
	if !tail {
		n = limit - pos
	}
	return pos, pos + n, head, tail
}

// Line draws from (x1, y1) to (x2, y2) inclusive using Bresenham's algorithm,
// after trimming the segment to the buffer.
func (fb *FrameBuffer) Line(x1, y1, x2, y2 int, c Color) {
	x1, y1, x2, y2, ok := fb.clipLine(x1, y1, x2, y2)
	if !ok {
		return
	}

	dx, sx := x2-x1, 1
	if dx < 0 {
		dx, sx = -dx, -1
	}
	dy, sy := y2-y1, 1
	if dy < 0 {
		dy, sy = -dy, -1
	}

	e := dx - dy
	for {
		fb.SetPixel(x1, y1, c)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * e
		if e2 > -dy {
			e -= dy
			x1 += sx
		}
		if e2 < dx {
			e += dx
			y1 += sy
		}
	}
}

const (
	outLeft = 1 << iota
	outRight
	outTop
	outBottom
)

// clipLine is Cohen-Sutherland against the pixel centers of the buffer,
// widened by half a pixel. Segments already inside come back unchanged.
func (fb *FrameBuffer) clipLine(x1, y1, x2, y2 int) (int, int, int, int, bool) {
	if fb.inside(x1, y1) && fb.inside(x2, y2) {
		return x1, y1, x2, y2, true
	}

	xmin, ymin := -0.5, -0.5
	xmax, ymax := float64(fb.width)-0.5, float64(fb.height)-0.5
	outcode := func(x, y float64) int {
		code := 0
		if x < xmin {
			code |= outLeft
		} else if x > xmax {
			code |= outRight
		}
		if y < ymin {
			code |= outTop
		} else if y > ymax {
			code |= outBottom
		}
		return code
	}

	ax, ay, bx, by := float64(x1), float64(y1), float64(x2), float64(y2)
	ca, cb := outcode(ax, ay), outcode(bx, by)

	// each pass pins one coordinate to an edge; a few passes always settle
	for i := 0; i < 8; i++ {
		if ca|cb == 0 {
			return pixel(ax), pixel(ay), pixel(bx), pixel(by), true
		}
		if ca&cb != 0 {
			break
		}

		code := ca
		if code == 0 {
			code = cb
		}

		var x, y float64
		switch {
		case code&outTop != 0:
			x, y = ax+(bx-ax)*(ymin-ay)/(by-ay), ymin
		case code&outBottom != 0:
			x, y = ax+(bx-ax)*(ymax-ay)/(by-ay), ymax
		case code&outRight != 0:
			x, y = xmax, ay+(by-ay)*(xmax-ax)/(bx-ax)
		default:
			x, y = xmin, ay+(by-ay)*(xmin-ax)/(bx-ax)
		}

		if code == ca {
			ax, ay, ca = x, y, outcode(x, y)
		} else {
			bx, by, cb = x, y, outcode(x, y)
		}
	}

	return 0, 0, 0, 0, false
}

// pixel rounds a clipped coordinate to the nearest pixel center.
func pixel(v float64) int {
	return int(math.Floor(v + 0.5))
}

// Text draws s with the built-in 8x8 font, one glyph every 8 pixels. Only
// the set bits of each glyph are drawn.
func (fb *FrameBuffer) Text(s string, x, y int, c Color) {
	for _, r := range s {
		if x >= fb.width {
			return
		}
		g := font.Glyph(r)
		for col, bits := range g {
			for row := 0; row < font.Height; row++ {
				if bits&(1<<row) != 0 {
					fb.SetPixel(x+col, y+row, c)
				}
			}
		}
		x += font.Width
	}
}

// Blit ORs the set pixels of src into fb with src's origin at (x, y).
func (fb *FrameBuffer) Blit(src *FrameBuffer, x, y int) {
	for sy := 0; sy < src.height; sy++ {
		for sx := 0; sx < src.width; sx++ {
			if src.Pixel(sx, sy) != Off {
				fb.SetPixel(x+sx, y+sy, On)
			}
		}
	}
}
