// Package display wraps the OpenCV window the camera feed is rendered
// into, and translates its pointer events and raw image buffers.
package display

import (
	"gocv.io/x/gocv"
)

// MouseEvent identifies the pointer events the window reports. Values
// match the cv::MouseEventTypes codes gocv hands the raw handler.
type MouseEvent int

const (
	MouseMove       MouseEvent = 0
	MouseLeftDown   MouseEvent = 1
	MouseRightDown  MouseEvent = 2
	MouseMiddleDown MouseEvent = 3
	MouseLeftUp     MouseEvent = 4
	MouseRightUp    MouseEvent = 5
	MouseMiddleUp   MouseEvent = 6
)

// MouseHandler receives pointer events with their pixel coordinates.
type MouseHandler func(event MouseEvent, u, v int)

// Window is a named OpenCV window showing the camera feed.
type Window struct {
	win *gocv.Window
}

func NewWindow(name string) *Window {
	return &Window{win: gocv.NewWindow(name)}
}

// OnMouse registers a handler for pointer events on the window. Events
// are delivered while the window queue is pumped, on the pumping thread.
func (w *Window) OnMouse(handler MouseHandler) {
	w.win.SetMouseHandler(func(event int, x int, y int, flags int, userdata interface{}) {
		handler(MouseEvent(event), x, y)
	}, nil)
}

// Show renders a frame into the window.
func (w *Window) Show(img gocv.Mat) {
	w.win.IMShow(img)
}

// Pump services the window event queue for the given number of
// milliseconds and returns the pressed key, if any.
func (w *Window) Pump(ms int) int {
	return w.win.WaitKey(ms)
}

func (w *Window) Close() error {
	return w.win.Close()
}
