package diag

import (
	"io"
	"strconv"
	"sync"

	"rgbknob-go/types"
)

// Console writes each report as a block of text:
//
//	<blank line>
//	red: 15
//	green: 15
//	blue: 15
//	frame rate: 100
type Console struct {
	mu  sync.Mutex
	w   io.Writer
	buf []byte // reused so reports don't churn the heap
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w, buf: make([]byte, 0, 64)}
}

func (c *Console) Report(s types.UIState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buf = AppendState(c.buf[:0], s)
	_, _ = c.w.Write(c.buf)
}

// AppendState appends the console rendering of s to dst.
func AppendState(dst []byte, s types.UIState) []byte {
	dst = append(dst, '\n')
	for i, name := range types.ChannelNames {
		dst = append(dst, name...)
		dst = append(dst, ": "...)
		dst = strconv.AppendUint(dst, uint64(s.Levels[i]), 10)
		dst = append(dst, '\n')
	}
	dst = append(dst, "frame rate: "...)
	dst = strconv.AppendUint(dst, uint64(s.FrameRate), 10)
	dst = append(dst, '\n')
	return dst
}
