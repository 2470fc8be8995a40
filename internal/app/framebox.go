package app

import (
	"sync"

	"github.com/nvidal/go-look-to-point/pkg/msgs/sensor_msgs"
)

// frameBox is a latest-frame mailbox. Writers overwrite whatever is
// pending; the reader drains. A slow consumer drops frames instead of
// queueing them.
type frameBox struct {
	mu  sync.Mutex
	msg *sensor_msgs.Image
}

func newFrameBox() *frameBox {
	return &frameBox{}
}

func (b *frameBox) Put(msg *sensor_msgs.Image) {
	b.mu.Lock()
	b.msg = msg
	b.mu.Unlock()
}

// Take returns the pending frame, or nil, and clears the box.
func (b *frameBox) Take() *sensor_msgs.Image {
	b.mu.Lock()
	msg := b.msg
	b.msg = nil
	b.mu.Unlock()
	return msg
}
