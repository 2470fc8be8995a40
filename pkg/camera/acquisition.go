package camera

import (
	"context"
	"sync"
	"time"

	"github.com/edwinhayes/rosgo/ros"
	"github.com/pkg/errors"

	"github.com/nvidal/go-look-to-point/pkg/msgs/sensor_msgs"
)

// spinner pumps pending subscription callbacks. Satisfied by ros.Node.
type spinner interface {
	SpinOnce()
}

// Acquisition waits for the first CameraInfo message on a calibration
// topic and keeps its intrinsics for the rest of the process. The
// subscription is torn down after the first message: re-calibration is
// deliberately not handled.
type Acquisition struct {
	mu       sync.Mutex
	intr     Intrinsics
	err      error
	received bool
	sub      ros.Subscriber
}

func NewAcquisition() *Acquisition {
	return &Acquisition{}
}

// Start subscribes to the calibration topic. Callbacks are delivered by
// the node's spin loop, so the caller must keep spinning while waiting.
func (a *Acquisition) Start(node ros.Node, topic string) {
	a.sub, _ = node.NewSubscriber(topic, sensor_msgs.MsgCameraInfo, a.onCameraInfo)
}

func (a *Acquisition) onCameraInfo(msg *sensor_msgs.CameraInfo) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.received {
		return
	}
	a.intr, a.err = IntrinsicsFromK(msg.K)
	a.received = true
}

// Wait blocks until the first calibration message has been handled or
// ctx is cancelled, pumping callbacks once per poll cycle. Cancellation
// is honored within one poll interval.
func (a *Acquisition) Wait(ctx context.Context, spin spinner, poll time.Duration) (Intrinsics, error) {
	for {
		if err := ctx.Err(); err != nil {
			return Intrinsics{}, errors.Wrap(err, "waiting for camera intrinsics")
		}
		spin.SpinOnce()

		a.mu.Lock()
		received, intr, err := a.received, a.intr, a.err
		a.mu.Unlock()
		if received {
			if a.sub != nil {
				a.sub.Shutdown()
				a.sub = nil
			}
			if err != nil {
				return Intrinsics{}, err
			}
			return intr, nil
		}

		select {
		case <-ctx.Done():
		case <-time.After(poll):
		}
	}
}
