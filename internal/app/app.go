// Package app wires the camera feed, the click-to-ray projection and the
// head action client into one process: wait for a valid clock, acquire
// the camera intrinsics, connect to the head controller, then render
// frames and turn clicks into PointHead goals until told to stop.
package app

import (
	"context"
	"time"

	"github.com/edwinhayes/rosgo/ros"
	"github.com/sirupsen/logrus"

	"github.com/nvidal/go-look-to-point/internal/config"
	"github.com/nvidal/go-look-to-point/pkg/camera"
	"github.com/nvidal/go-look-to-point/pkg/display"
	"github.com/nvidal/go-look-to-point/pkg/msgs/control_msgs"
	"github.com/nvidal/go-look-to-point/pkg/msgs/geometry_msgs"
	"github.com/nvidal/go-look-to-point/pkg/msgs/sensor_msgs"
	"github.com/nvidal/go-look-to-point/pkg/msgs/std_msgs"
)

// Startup bounds. The head controller gets three bounded attempts; the
// clock gets one.
const (
	clockTimeout    = 5 * time.Second
	intrinsicsPoll  = 200 * time.Millisecond
	connectAttempts = 3
)

var connectAttemptTimeout = ros.NewDuration(2, 0)

// Goal shaping: values that produce a smooth, visibly bounded head
// motion rather than a snap.
const (
	goalMinDuration = 0.5
	goalMaxVelocity = 1.0
)

// waitKeyMS is how long each loop iteration services the window queue.
const waitKeyMS = 15

// actuator is the slice of the head client the controller needs.
type actuator interface {
	Connect(perAttempt ros.Duration, maxAttempts int) error
	SendGoal(goal *control_msgs.PointHeadGoal)
	CancelAll()
}

// App owns everything the event handlers touch: the node, the window,
// the intrinsics and the head client. Handlers receive it explicitly;
// there is no process-wide state.
type App struct {
	cfg    config.Config
	node   ros.Node
	head   actuator
	log    *logrus.Entry
	frames *frameBox
	window *display.Window
	intr   camera.Intrinsics

	// injectable for tests
	now          func() ros.Time
	clockTimeout time.Duration
}

func New(cfg config.Config, node ros.Node, head actuator, log *logrus.Entry) *App {
	return &App{
		cfg:          cfg,
		node:         node,
		head:         head,
		log:          log,
		frames:       newFrameBox(),
		now:          ros.Now,
		clockTimeout: clockTimeout,
	}
}

// Run drives the process: clock precondition, intrinsics acquisition,
// head controller connection, then the display loop until ctx is
// cancelled. Startup failures are returned; cancellation is not an
// error.
func (a *App) Run(ctx context.Context) error {
	if err := a.waitForValidClock(ctx); err != nil {
		return err
	}

	acq := camera.NewAcquisition()
	acq.Start(a.node, a.cfg.CameraInfoTopic)
	a.log.WithField("topic", a.cfg.CameraInfoTopic).Info("waiting for camera intrinsics")
	intr, err := acq.Wait(ctx, a.node, intrinsicsPoll)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}
	a.intr = intr

	if err := a.head.Connect(connectAttemptTimeout, connectAttempts); err != nil {
		return err
	}

	a.window = display.NewWindow(a.cfg.WindowName)
	defer a.window.Close()
	a.window.OnMouse(a.onMouse)

	sub, _ := a.node.NewSubscriber(a.cfg.ImageTopic, sensor_msgs.MsgImage, a.onImage)
	defer sub.Shutdown()
	a.log.WithField("topic", a.cfg.ImageTopic).Info("subscribed to image stream")

	return a.loop(ctx)
}

// loop is the steady state: a single thread multiplexing node callbacks,
// frame rendering and window pointer events.
func (a *App) loop(ctx context.Context) error {
	for a.node.OK() {
		select {
		case <-ctx.Done():
			a.head.CancelAll()
			return nil
		default:
		}
		a.node.SpinOnce()
		if msg := a.frames.Take(); msg != nil {
			a.render(msg)
		}
		a.window.Pump(waitKeyMS)
	}
	return nil
}

// onImage runs from the spin loop; it only parks the frame for the
// render step so callbacks never back up.
func (a *App) onImage(msg *sensor_msgs.Image) {
	a.frames.Put(msg)
}

func (a *App) render(msg *sensor_msgs.Image) {
	m, err := display.ImageToMat(msg)
	if err != nil {
		a.log.WithError(err).Warn("skipping frame")
		return
	}
	defer m.Close()
	a.window.Show(m)
}

// onMouse filters for the primary-button press edge; every other pointer
// event is ignored. A qualifying click is projected to a ray and
// dispatched; nothing is kept between clicks.
func (a *App) onMouse(event display.MouseEvent, u, v int) {
	if event != display.MouseLeftDown {
		return
	}
	a.log.WithFields(logrus.Fields{"u": u, "v": v}).Info("pixel selected, pointing head")
	ray := a.intr.Project(u, v)
	a.head.SendGoal(a.buildGoal(ray))
}

// buildGoal shapes a PointHeadGoal that orients the camera's optical
// axis toward the ray.
func (a *App) buildGoal(ray camera.Ray) *control_msgs.PointHeadGoal {
	var minDuration ros.Duration
	minDuration.FromSec(goalMinDuration)
	return &control_msgs.PointHeadGoal{
		Target: geometry_msgs.PointStamped{
			Header: std_msgs.Header{Stamp: a.now(), FrameId: a.cfg.CameraFrame},
			Point:  geometry_msgs.Point{X: ray.X, Y: ray.Y, Z: ray.Z},
		},
		PointingAxis:  geometry_msgs.Vector3{X: 0, Y: 0, Z: 1},
		PointingFrame: a.cfg.CameraFrame,
		MinDuration:   minDuration,
		MaxVelocity:   goalMaxVelocity,
	}
}
