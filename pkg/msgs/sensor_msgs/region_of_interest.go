// Package sensor_msgs is generated from the sensor_msgs message definitions
package sensor_msgs

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo/ros"
)

type _MsgRegionOfInterest struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgRegionOfInterest) Text() string {
	return t.text
}

func (t *_MsgRegionOfInterest) Name() string {
	return t.name
}

func (t *_MsgRegionOfInterest) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgRegionOfInterest) NewMessage() ros.Message {
	m := new(RegionOfInterest)
	return m
}

var (
	MsgRegionOfInterest = &_MsgRegionOfInterest{
		`# This message is used to specify a region of interest within an image.
uint32 x_offset  # Leftmost pixel of the ROI
uint32 y_offset  # Topmost pixel of the ROI
uint32 height    # Height of ROI
uint32 width     # Width of ROI
bool do_rectify
`,
		"sensor_msgs/RegionOfInterest",
		"bdb633039d588fcccb441a4d43ccfe09",
	}
)

type RegionOfInterest struct {
	XOffset   uint32 `rosmsg:"x_offset:uint32"`
	YOffset   uint32 `rosmsg:"y_offset:uint32"`
	Height    uint32 `rosmsg:"height:uint32"`
	Width     uint32 `rosmsg:"width:uint32"`
	DoRectify bool   `rosmsg:"do_rectify:bool"`
}

func (m *RegionOfInterest) Type() ros.MessageType {
	return MsgRegionOfInterest
}

func (m *RegionOfInterest) Serialize(buf *bytes.Buffer) error {
	var err error
	binary.Write(buf, binary.LittleEndian, m.XOffset)
	binary.Write(buf, binary.LittleEndian, m.YOffset)
	binary.Write(buf, binary.LittleEndian, m.Height)
	binary.Write(buf, binary.LittleEndian, m.Width)
	binary.Write(buf, binary.LittleEndian, m.DoRectify)
	return err
}

func (m *RegionOfInterest) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = binary.Read(buf, binary.LittleEndian, &m.XOffset); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.YOffset); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.Height); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.Width); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.DoRectify); err != nil {
		return err
	}
	return err
}
