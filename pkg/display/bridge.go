package display

import (
	"gocv.io/x/gocv"

	"github.com/pkg/errors"

	"github.com/nvidal/go-look-to-point/pkg/msgs/sensor_msgs"
)

// Pixel formats the robot cameras publish.
const (
	EncodingBGR8  = "bgr8"
	EncodingRGB8  = "rgb8"
	EncodingMono8 = "mono8"
)

// ImageToMat converts a sensor_msgs/Image raw pixel buffer into a Mat
// ready for rendering, converting to BGR where needed. The caller owns
// the returned Mat and must Close it.
func ImageToMat(msg *sensor_msgs.Image) (gocv.Mat, error) {
	rows := int(msg.Height)
	cols := int(msg.Width)
	if rows <= 0 || cols <= 0 {
		return gocv.Mat{}, errors.Errorf("display: bad image size %dx%d", cols, rows)
	}

	switch msg.Encoding {
	case EncodingBGR8:
		if len(msg.Data) < rows*cols*3 {
			return gocv.Mat{}, errors.Errorf("display: short %s buffer, %d bytes for %dx%d", msg.Encoding, len(msg.Data), cols, rows)
		}
		return gocv.NewMatFromBytes(rows, cols, gocv.MatTypeCV8UC3, msg.Data)
	case EncodingRGB8:
		if len(msg.Data) < rows*cols*3 {
			return gocv.Mat{}, errors.Errorf("display: short %s buffer, %d bytes for %dx%d", msg.Encoding, len(msg.Data), cols, rows)
		}
		m, err := gocv.NewMatFromBytes(rows, cols, gocv.MatTypeCV8UC3, msg.Data)
		if err != nil {
			return m, err
		}
		gocv.CvtColor(m, &m, gocv.ColorRGBToBGR)
		return m, nil
	case EncodingMono8:
		if len(msg.Data) < rows*cols {
			return gocv.Mat{}, errors.Errorf("display: short %s buffer, %d bytes for %dx%d", msg.Encoding, len(msg.Data), cols, rows)
		}
		return gocv.NewMatFromBytes(rows, cols, gocv.MatTypeCV8UC1, msg.Data)
	default:
		return gocv.Mat{}, errors.Errorf("display: unsupported encoding %q", msg.Encoding)
	}
}
