// Package control_msgs is generated from the control_msgs PointHead action definition
package control_msgs

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo/ros"

	"github.com/nvidal/go-look-to-point/pkg/msgs/geometry_msgs"
)

type _MsgPointHeadGoal struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgPointHeadGoal) Text() string {
	return t.text
}

func (t *_MsgPointHeadGoal) Name() string {
	return t.name
}

func (t *_MsgPointHeadGoal) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgPointHeadGoal) NewMessage() ros.Message {
	m := new(PointHeadGoal)
	return m
}

var (
	MsgPointHeadGoal = &_MsgPointHeadGoal{
		`geometry_msgs/PointStamped target
geometry_msgs/Vector3 pointing_axis
string pointing_frame
duration min_duration
float64 max_velocity
`,
		"control_msgs/PointHeadGoal",
		"8b92b1cd5e06c8a94c917dc3209a4c1d",
	}
)

type PointHeadGoal struct {
	Target        geometry_msgs.PointStamped `rosmsg:"target:PointStamped"`
	PointingAxis  geometry_msgs.Vector3      `rosmsg:"pointing_axis:Vector3"`
	PointingFrame string                     `rosmsg:"pointing_frame:string"`
	MinDuration   ros.Duration               `rosmsg:"min_duration:duration"`
	MaxVelocity   float64                    `rosmsg:"max_velocity:float64"`
}

func (m *PointHeadGoal) Type() ros.MessageType {
	return MsgPointHeadGoal
}

func (m *PointHeadGoal) Serialize(buf *bytes.Buffer) error {
	var err error
	if err = m.Target.Serialize(buf); err != nil {
		return err
	}
	if err = m.PointingAxis.Serialize(buf); err != nil {
		return err
	}
	binary.Write(buf, binary.LittleEndian, uint32(len([]byte(m.PointingFrame))))
	buf.Write([]byte(m.PointingFrame))
	binary.Write(buf, binary.LittleEndian, m.MinDuration.Sec)
	binary.Write(buf, binary.LittleEndian, m.MinDuration.NSec)
	binary.Write(buf, binary.LittleEndian, m.MaxVelocity)
	return err
}

func (m *PointHeadGoal) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = m.Target.Deserialize(buf); err != nil {
		return err
	}
	if err = m.PointingAxis.Deserialize(buf); err != nil {
		return err
	}
	{
		var size uint32
		if err = binary.Read(buf, binary.LittleEndian, &size); err != nil {
			return err
		}
		data := make([]byte, int(size))
		if err = binary.Read(buf, binary.LittleEndian, data); err != nil {
			return err
		}
		m.PointingFrame = string(data)
	}
	{
		if err = binary.Read(buf, binary.LittleEndian, &m.MinDuration.Sec); err != nil {
			return err
		}
		if err = binary.Read(buf, binary.LittleEndian, &m.MinDuration.NSec); err != nil {
			return err
		}
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.MaxVelocity); err != nil {
		return err
	}
	return err
}
