// Package actionlib_msgs is generated from the actionlib_msgs message definitions
package actionlib_msgs

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo/ros"
)

type _MsgGoalID struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgGoalID) Text() string {
	return t.text
}

func (t *_MsgGoalID) Name() string {
	return t.name
}

func (t *_MsgGoalID) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgGoalID) NewMessage() ros.Message {
	m := new(GoalID)
	return m
}

var (
	MsgGoalID = &_MsgGoalID{
		`# The stamp should store the time at which this goal was requested.
time stamp
# The id provides a way to associate feedback and result messages with goals.
string id
`,
		"actionlib_msgs/GoalID",
		"302881f31927c1df708a2dbab0e80ee8",
	}
)

type GoalID struct {
	Stamp ros.Time `rosmsg:"stamp:time"`
	Id    string   `rosmsg:"id:string"`
}

func (m *GoalID) Type() ros.MessageType {
	return MsgGoalID
}

func (m *GoalID) Serialize(buf *bytes.Buffer) error {
	var err error
	binary.Write(buf, binary.LittleEndian, m.Stamp.Sec)
	binary.Write(buf, binary.LittleEndian, m.Stamp.NSec)
	binary.Write(buf, binary.LittleEndian, uint32(len([]byte(m.Id))))
	buf.Write([]byte(m.Id))
	return err
}

func (m *GoalID) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	{
		if err = binary.Read(buf, binary.LittleEndian, &m.Stamp.Sec); err != nil {
			return err
		}
		if err = binary.Read(buf, binary.LittleEndian, &m.Stamp.NSec); err != nil {
			return err
		}
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
		m.Id = string(data)
	}
	return err
}
