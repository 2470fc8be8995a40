// Package head provides a client for the head controller's PointHead
// action. It speaks the actionlib wire protocol directly: goals go out on
// <action>/goal and the server is detected through its <action>/status
// heartbeat. Dispatch is fire-and-forget; a newly sent goal supersedes an
// executing one under the server's own queuing rules, so completion is
// intentionally not tracked.
package head

import (
	"fmt"
	"sync"

	"github.com/edwinhayes/rosgo/ros"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/nvidal/go-look-to-point/pkg/msgs/actionlib_msgs"
	"github.com/nvidal/go-look-to-point/pkg/msgs/control_msgs"
	"github.com/nvidal/go-look-to-point/pkg/msgs/std_msgs"
)

// ErrServerUnavailable is returned when the action server does not come
// up within the bounded startup wait. Fatal to the caller: without an
// actuation channel there is nothing left to do.
var ErrServerUnavailable = errors.New("head: action server not available")

// ConnState tracks the startup handshake with the action server.
type ConnState int

const (
	Disconnected ConnState = iota
	Connecting
	Ready
	Failed
)

func (s ConnState) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case Connecting:
		return "connecting"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("ConnState(%d)", int(s))
}

// Client sends PointHead goals to an actionlib server.
type Client struct {
	action    string
	goalPub   ros.Publisher
	cancelPub ros.Publisher
	statusSub ros.Subscriber
	state     ConnState
	ids       *goalIDGenerator
	log       *logrus.Entry

	// up reports whether the action server is present.
	up func() bool

	mu         sync.Mutex
	statusSeen bool
}

// NewClient wires the action topic endpoints for the named PointHead
// action. The server is not contacted until Connect.
func NewClient(node ros.Node, nodeName, action string, log *logrus.Entry) *Client {
	c := &Client{
		action: action,
		state:  Disconnected,
		ids:    newGoalIDGenerator(nodeName),
		log:    log,
	}
	c.goalPub, _ = node.NewPublisher(fmt.Sprintf("%s/goal", action), control_msgs.MsgPointHeadActionGoal)
	c.cancelPub, _ = node.NewPublisher(fmt.Sprintf("%s/cancel", action), actionlib_msgs.MsgGoalID)
	c.statusSub, _ = node.NewSubscriber(fmt.Sprintf("%s/status", action), actionlib_msgs.MsgGoalStatusArray, c.onStatus)
	c.up = c.serverUp
	return c
}

func (c *Client) onStatus(msg *actionlib_msgs.GoalStatusArray, event ros.MessageEvent) {
	c.mu.Lock()
	if !c.statusSeen {
		c.statusSeen = true
		c.log.WithField("publisher", event.PublisherName).Debug("received first status from action server")
	}
	c.mu.Unlock()
}

// serverUp reports whether the status heartbeat has a publisher behind
// it. Presence is advertised through the master, so no callback needs to
// have run yet.
func (c *Client) serverUp() bool {
	c.mu.Lock()
	seen := c.statusSeen
	c.mu.Unlock()
	return seen || c.statusSub.GetNumPublishers() > 0
}

// waitForServer polls for the action server, bounded by timeout.
func (c *Client) waitForServer(timeout ros.Duration) bool {
	rate := ros.CycleTime(ros.NewDuration(0, 10000000))
	waitStart := ros.Now()
	for {
		if c.up() {
			return true
		}
		now := ros.Now()
		diff := now.Diff(waitStart)
		if !timeout.IsZero() && diff.Cmp(timeout) >= 0 {
			return false
		}
		rate.Sleep()
	}
}

// Connect waits for the action server to come up, retrying up to
// maxAttempts bounded attempts. On success the client is Ready; on
// exhaustion it is Failed and ErrServerUnavailable is returned.
func (c *Client) Connect(perAttempt ros.Duration, maxAttempts int) error {
	c.state = Connecting
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if c.waitForServer(perAttempt) {
			c.state = Ready
			c.log.WithField("attempts", attempt).Info("head action server up")
			return nil
		}
		c.log.Debug("waiting for the point head action server to come up")
	}
	c.state = Failed
	return errors.Wrapf(ErrServerUnavailable, "%s after %d attempts of %.1fs", c.action, maxAttempts, perAttempt.ToSec())
}

// State reports the connection handshake state.
func (c *Client) State() ConnState {
	return c.state
}

// SendGoal wraps goal in a fresh action goal and publishes it. The send
// is asynchronous at the transport layer: the call returns without
// waiting for the server to receive or act on the goal.
func (c *Client) SendGoal(goal *control_msgs.PointHeadGoal) {
	if c.state != Ready {
		c.log.WithField("state", c.state.String()).Warn("dropping goal, head client not connected")
		return
	}
	now := ros.Now()
	ag := &control_msgs.PointHeadActionGoal{
		Header: std_msgs.Header{Stamp: now},
		GoalId: actionlib_msgs.GoalID{Stamp: now, Id: c.ids.generateID()},
		Goal:   *goal,
	}
	c.goalPub.Publish(ag)
}

// CancelAll asks the server to drop every outstanding goal.
func (c *Client) CancelAll() {
	c.cancelPub.Publish(&actionlib_msgs.GoalID{})
}

// Shutdown releases the action topic endpoints.
func (c *Client) Shutdown() {
	if c.goalPub != nil {
		c.goalPub.Shutdown()
	}
	if c.cancelPub != nil {
		c.cancelPub.Shutdown()
	}
	if c.statusSub != nil {
		c.statusSub.Shutdown()
	}
	c.state = Disconnected
}
