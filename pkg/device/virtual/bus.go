package virtual

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Op is one transport call: a single command byte or a data payload.
type Op struct {
	Command bool
	Bytes   []byte
}

func NewBus(logger *zap.Logger) *Bus {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bus{logger: logger}
}

// Bus is a Transport with no panel behind it. It keeps every call for
// inspection and logs them at debug level.
type Bus struct {
	mu     sync.Mutex
	ops    []Op
	logger *zap.Logger
}

func (b *Bus) String() string {
	return "virtual"
}

func (b *Bus) SendCommand(cmd byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.ops = append(b.ops, Op{Command: true, Bytes: []byte{cmd}})
	b.logger.With(zap.String("cmd", fmt.Sprintf("%#02x", cmd))).Debug("command")
	return nil
}

func (b *Bus) SendData(data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.ops = append(b.ops, Op{Bytes: append([]byte(nil), data...)})
	b.logger.With(zap.Int("len", len(data))).Debug("data")
	return nil
}

// Ops returns the recorded calls.
func (b *Bus) Ops() []Op {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Op(nil), b.ops...)
}

// Commands returns only the command bytes, in order.
func (b *Bus) Commands() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()

	var cmds []byte
	for _, op := range b.ops {
		if op.Command {
			cmds = append(cmds, op.Bytes[0])
		}
	}
	return cmds
}

func (b *Bus) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ops = nil
}
