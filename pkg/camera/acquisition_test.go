package camera

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nvidal/go-look-to-point/pkg/msgs/sensor_msgs"
)

// scriptedSpinner stands in for the node's spin loop: it delivers the
// calibration message on the n-th pump.
type scriptedSpinner struct {
	acq   *Acquisition
	msg   *sensor_msgs.CameraInfo
	after int
	spins int
}

func (s *scriptedSpinner) SpinOnce() {
	s.spins++
	if s.msg != nil && s.spins == s.after {
		s.acq.onCameraInfo(s.msg)
	}
}

func validCameraInfo() *sensor_msgs.CameraInfo {
	msg := sensor_msgs.MsgCameraInfo.NewMessage().(*sensor_msgs.CameraInfo)
	msg.K = [9]float64{500, 0, 320, 0, 500, 240, 0, 0, 1}
	return msg
}

func TestWait_ReturnsFirstCalibration(t *testing.T) {
	acq := NewAcquisition()
	spin := &scriptedSpinner{acq: acq, msg: validCameraInfo(), after: 3}

	in, err := acq.Wait(context.Background(), spin, 5*time.Millisecond)
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if in.Fx != 500 || in.Fy != 500 || in.Cx != 320 || in.Cy != 240 {
		t.Errorf("intrinsics: got %+v", in)
	}
	if spin.spins != 3 {
		t.Errorf("spins: got %d, want 3", spin.spins)
	}
}

func TestWait_FirstMessageWins(t *testing.T) {
	acq := NewAcquisition()
	acq.onCameraInfo(validCameraInfo())

	// A later message must not replace the stored calibration.
	second := validCameraInfo()
	second.K[0] = 999
	acq.onCameraInfo(second)

	in, err := acq.Wait(context.Background(), &scriptedSpinner{acq: acq}, time.Millisecond)
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if in.Fx != 500 {
		t.Errorf("Fx: got %v, want 500 (first message)", in.Fx)
	}
}

func TestWait_DegenerateCalibrationFails(t *testing.T) {
	acq := NewAcquisition()
	msg := sensor_msgs.MsgCameraInfo.NewMessage().(*sensor_msgs.CameraInfo)
	spin := &scriptedSpinner{acq: acq, msg: msg, after: 1}

	_, err := acq.Wait(context.Background(), spin, time.Millisecond)
	if !errors.Is(err, ErrDegenerateCalibration) {
		t.Errorf("got %v, want ErrDegenerateCalibration", err)
	}
}

func TestWait_CancelledPromptly(t *testing.T) {
	acq := NewAcquisition()
	spin := &scriptedSpinner{acq: acq} // never delivers

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	poll := 50 * time.Millisecond
	start := time.Now()
	_, err := acq.Wait(ctx, spin, poll)
	elapsed := time.Since(start)

	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
	// Must exit within roughly one poll interval of the cancellation,
	// not wait for a calibration message that never comes.
	if elapsed > 3*poll {
		t.Errorf("Wait took %v after cancellation, want < %v", elapsed, 3*poll)
	}
}
