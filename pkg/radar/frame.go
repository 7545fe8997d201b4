package radar

import (
	"encoding/binary"
	"io"
	"time"

	"github.com/pkg/errors"
)

const FrameSize = 10

// Velocity is the speed field of a frame in centimeters per second.
type Velocity uint16

// Decode extracts the velocity from a whole frame. Anything but exactly
// FrameSize bytes yields no value.
func Decode(frame []byte) (Velocity, bool) {
	if len(frame) != FrameSize {
		return 0, false
	}
	return Velocity(binary.BigEndian.Uint16(frame[5:7])), true
}

type Reading struct {
	Velocity Velocity
	At       time.Time
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: r, now: time.Now}
}

// Reader treats every Read on the underlying stream as one frame. The
// sensor sends no start marker, so a frame split over two reads, or two
// frames merged into one, is dropped and never resynchronized.
type Reader struct {
	r   io.Reader
	buf [64]byte
	now func() time.Time
}

// Next does a single read. ok is false when nothing decodable arrived.
func (r *Reader) Next() (reading Reading, ok bool, err error) {
	n, err := r.r.Read(r.buf[:])
	if err != nil && !(errors.Is(err, io.EOF) && n > 0) {
		return Reading{}, false, err
	}

	v, ok := Decode(r.buf[:n])
	if !ok {
		return Reading{}, false, nil
	}

	return Reading{Velocity: v, At: r.now()}, true, nil
}
