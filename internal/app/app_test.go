package app

import (
	"context"
	"errors"
	"io"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/edwinhayes/rosgo/ros"
	"github.com/sirupsen/logrus"

	"github.com/nvidal/go-look-to-point/internal/config"
	"github.com/nvidal/go-look-to-point/pkg/camera"
	"github.com/nvidal/go-look-to-point/pkg/display"
	"github.com/nvidal/go-look-to-point/pkg/msgs/control_msgs"
	"github.com/nvidal/go-look-to-point/pkg/msgs/sensor_msgs"
)

const floatTolerance = 1e-9

func floatEquals(a, b float64) bool {
	return math.Abs(a-b) < floatTolerance
}

// mockActuator records dispatched goals.
type mockActuator struct {
	mu         sync.Mutex
	goals      []*control_msgs.PointHeadGoal
	connectErr error
	cancelled  int
}

func (m *mockActuator) Connect(perAttempt ros.Duration, maxAttempts int) error {
	return m.connectErr
}

func (m *mockActuator) SendGoal(goal *control_msgs.PointHeadGoal) {
	m.mu.Lock()
	m.goals = append(m.goals, goal)
	m.mu.Unlock()
}

func (m *mockActuator) CancelAll() {
	m.mu.Lock()
	m.cancelled++
	m.mu.Unlock()
}

func (m *mockActuator) goalCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.goals)
}

func newTestApp(head *mockActuator) *App {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	a := New(config.Default(), nil, head, logrus.NewEntry(logger))
	a.intr = camera.Intrinsics{Fx: 500, Fy: 500, Cx: 320, Cy: 240}
	return a
}

func TestOnMouse_IgnoresNonClickEvents(t *testing.T) {
	head := &mockActuator{}
	a := newTestApp(head)

	for _, event := range []display.MouseEvent{
		display.MouseMove,
		display.MouseLeftUp,
		display.MouseRightDown,
		display.MouseRightUp,
		display.MouseMiddleDown,
	} {
		a.onMouse(event, 100, 100)
	}

	if head.goalCount() != 0 {
		t.Errorf("dispatches: got %d, want 0 (only button-down qualifies)", head.goalCount())
	}
}

func TestOnMouse_ClickDispatchesGoal(t *testing.T) {
	head := &mockActuator{}
	a := newTestApp(head)

	a.onMouse(display.MouseLeftDown, 420, 240)

	if head.goalCount() != 1 {
		t.Fatalf("dispatches: got %d, want 1", head.goalCount())
	}
	goal := head.goals[0]

	if !floatEquals(goal.Target.Point.X, 0.2) || !floatEquals(goal.Target.Point.Y, 0) || !floatEquals(goal.Target.Point.Z, 1.0) {
		t.Errorf("target: got (%v, %v, %v), want (0.2, 0, 1)",
			goal.Target.Point.X, goal.Target.Point.Y, goal.Target.Point.Z)
	}
	if goal.Target.Header.FrameId != config.DefaultCameraFrame {
		t.Errorf("target frame: got %q, want %q", goal.Target.Header.FrameId, config.DefaultCameraFrame)
	}
	if goal.PointingFrame != config.DefaultCameraFrame {
		t.Errorf("pointing frame: got %q, want %q", goal.PointingFrame, config.DefaultCameraFrame)
	}
	if goal.PointingAxis.X != 0 || goal.PointingAxis.Y != 0 || goal.PointingAxis.Z != 1 {
		t.Errorf("pointing axis: got (%v, %v, %v), want (0, 0, 1)",
			goal.PointingAxis.X, goal.PointingAxis.Y, goal.PointingAxis.Z)
	}
	if !floatEquals(goal.MinDuration.ToSec(), 0.5) {
		t.Errorf("min duration: got %v, want 0.5", goal.MinDuration.ToSec())
	}
	if !floatEquals(goal.MaxVelocity, 1.0) {
		t.Errorf("max velocity: got %v, want 1.0", goal.MaxVelocity)
	}
}

func TestOnMouse_RapidClicksDispatchIndependently(t *testing.T) {
	head := &mockActuator{}
	a := newTestApp(head)

	const clicks = 25
	start := time.Now()
	for i := 0; i < clicks; i++ {
		a.onMouse(display.MouseLeftDown, i, i)
	}
	elapsed := time.Since(start)

	if head.goalCount() != clicks {
		t.Errorf("dispatches: got %d, want %d", head.goalCount(), clicks)
	}
	if elapsed > 100*time.Millisecond {
		t.Errorf("%d clicks took %v, want no blocking between dispatches", clicks, elapsed)
	}
}

func TestFrameBox_OverwritesPending(t *testing.T) {
	box := newFrameBox()

	first := &sensor_msgs.Image{Encoding: "bgr8"}
	second := &sensor_msgs.Image{Encoding: "mono8"}
	box.Put(first)
	box.Put(second)

	if got := box.Take(); got != second {
		t.Errorf("Take: got %v, want the latest frame", got)
	}
	if got := box.Take(); got != nil {
		t.Errorf("Take after drain: got %v, want nil", got)
	}
}

func TestWaitForValidClock_ValidImmediately(t *testing.T) {
	a := newTestApp(&mockActuator{})
	a.now = ros.Now

	if err := a.waitForValidClock(context.Background()); err != nil {
		t.Errorf("waitForValidClock: %v", err)
	}
}

func TestWaitForValidClock_TimesOut(t *testing.T) {
	a := newTestApp(&mockActuator{})
	a.now = func() ros.Time { return ros.Time{} }
	a.clockTimeout = 50 * time.Millisecond

	start := time.Now()
	err := a.waitForValidClock(context.Background())
	elapsed := time.Since(start)

	if !errors.Is(err, ErrClockUnavailable) {
		t.Errorf("got %v, want ErrClockUnavailable", err)
	}
	if elapsed > time.Second {
		t.Errorf("waitForValidClock took %v, want bounded", elapsed)
	}
}

func TestWaitForValidClock_Cancelled(t *testing.T) {
	a := newTestApp(&mockActuator{})
	a.now = func() ros.Time { return ros.Time{} }
	a.clockTimeout = 5 * time.Second

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	err := a.waitForValidClock(ctx)
	elapsed := time.Since(start)

	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
	if elapsed > 500*time.Millisecond {
		t.Errorf("waitForValidClock took %v after cancellation", elapsed)
	}
}
