package control_msgs

import (
	"bytes"

	"github.com/edwinhayes/rosgo/ros"

	"github.com/nvidal/go-look-to-point/pkg/msgs/actionlib_msgs"
	"github.com/nvidal/go-look-to-point/pkg/msgs/std_msgs"
)

type _MsgPointHeadActionGoal struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgPointHeadActionGoal) Text() string {
	return t.text
}

func (t *_MsgPointHeadActionGoal) Name() string {
	return t.name
}

func (t *_MsgPointHeadActionGoal) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgPointHeadActionGoal) NewMessage() ros.Message {
	m := new(PointHeadActionGoal)
	return m
}

var (
	MsgPointHeadActionGoal = &_MsgPointHeadActionGoal{
		`# ====== DO NOT MODIFY! AUTOGENERATED FROM AN ACTION DEFINITION ======
Header header
actionlib_msgs/GoalID goal_id
PointHeadGoal goal
`,
		"control_msgs/PointHeadActionGoal",
		"b53a8323d0ba7b310ba17a2d3a82a6b8",
	}
)

type PointHeadActionGoal struct {
	Header std_msgs.Header       `rosmsg:"header:Header"`
	GoalId actionlib_msgs.GoalID `rosmsg:"goal_id:GoalID"`
	Goal   PointHeadGoal         `rosmsg:"goal:PointHeadGoal"`
}

func (m *PointHeadActionGoal) Type() ros.MessageType {
	return MsgPointHeadActionGoal
}

func (m *PointHeadActionGoal) Serialize(buf *bytes.Buffer) error {
	var err error
	if err = m.Header.Serialize(buf); err != nil {
		return err
	}
	if err = m.GoalId.Serialize(buf); err != nil {
		return err
	}
	if err = m.Goal.Serialize(buf); err != nil {
		return err
	}
	return err
}

func (m *PointHeadActionGoal) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = m.Header.Deserialize(buf); err != nil {
		return err
	}
	if err = m.GoalId.Deserialize(buf); err != nil {
		return err
	}
	if err = m.Goal.Deserialize(buf); err != nil {
		return err
	}
	return err
}

func (m *PointHeadActionGoal) GetHeader() std_msgs.Header {
	return m.Header
}

func (m *PointHeadActionGoal) SetHeader(s std_msgs.Header) {
	m.Header = s
}

func (m *PointHeadActionGoal) GetGoalId() actionlib_msgs.GoalID {
	return m.GoalId
}

func (m *PointHeadActionGoal) SetGoalId(s actionlib_msgs.GoalID) {
	m.GoalId = s
}

func (m *PointHeadActionGoal) GetGoal() ros.Message {
	return &m.Goal
}

func (m *PointHeadActionGoal) SetGoal(s ros.Message) {
	msg := s.(*PointHeadGoal)
	m.Goal = *msg
}
