// Package config provides configuration helpers for look-to-point commands.
package config

import (
	"os"

	"github.com/buger/jsonparser"
	"github.com/pkg/errors"
)

// Default topic and frame wiring. These match the REEM stereo camera and
// head controller namespaces; override via environment variables or a
// config file.
const (
	DefaultWindowName      = "REEM left eye"
	DefaultCameraFrame     = "/stereo_optical_frame"
	DefaultImageTopic      = "/stereo/left/image"
	DefaultCameraInfoTopic = "/stereo/left/camera_info"
	DefaultPointHeadAction = "/head_traj_controller/point_head_action"
)

// Config holds the wiring for one camera/head-controller pair.
type Config struct {
	WindowName      string
	CameraFrame     string
	ImageTopic      string
	CameraInfoTopic string
	PointHeadAction string
}

// Default returns the built-in wiring.
func Default() Config {
	return Config{
		WindowName:      DefaultWindowName,
		CameraFrame:     DefaultCameraFrame,
		ImageTopic:      DefaultImageTopic,
		CameraInfoTopic: DefaultCameraInfoTopic,
		PointHeadAction: DefaultPointHeadAction,
	}
}

// Load returns the effective configuration: defaults, overlaid with the
// optional JSON file named by LOOK_CONFIG, overlaid with LOOK_* env vars.
func Load() (Config, error) {
	c := Default()
	if path := os.Getenv("LOOK_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return c, errors.Wrap(err, "reading config file")
		}
		c = applyJSON(c, data)
	}
	return applyEnv(c), nil
}

// applyJSON overlays the keys present in data. Absent keys keep their
// current values.
func applyJSON(c Config, data []byte) Config {
	set := func(dst *string, key string) {
		if v, err := jsonparser.GetString(data, key); err == nil {
			*dst = v
		}
	}
	set(&c.WindowName, "window_name")
	set(&c.CameraFrame, "camera_frame")
	set(&c.ImageTopic, "image_topic")
	set(&c.CameraInfoTopic, "camera_info_topic")
	set(&c.PointHeadAction, "point_head_action")
	return c
}

func applyEnv(c Config) Config {
	c.WindowName = envOr("LOOK_WINDOW_NAME", c.WindowName)
	c.CameraFrame = envOr("LOOK_CAMERA_FRAME", c.CameraFrame)
	c.ImageTopic = envOr("LOOK_IMAGE_TOPIC", c.ImageTopic)
	c.CameraInfoTopic = envOr("LOOK_CAMERA_INFO_TOPIC", c.CameraInfoTopic)
	c.PointHeadAction = envOr("LOOK_POINT_HEAD_ACTION", c.PointHeadAction)
	return c
}

// envOr returns the value of the named env var, or def if unset.
func envOr(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}
