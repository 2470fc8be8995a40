package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	c := Default()

	if c.ImageTopic != "/stereo/left/image" {
		t.Errorf("ImageTopic: got %q", c.ImageTopic)
	}
	if c.CameraInfoTopic != "/stereo/left/camera_info" {
		t.Errorf("CameraInfoTopic: got %q", c.CameraInfoTopic)
	}
	if c.CameraFrame != "/stereo_optical_frame" {
		t.Errorf("CameraFrame: got %q", c.CameraFrame)
	}
	if c.PointHeadAction != "/head_traj_controller/point_head_action" {
		t.Errorf("PointHeadAction: got %q", c.PointHeadAction)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LOOK_IMAGE_TOPIC", "/camera/rgb/image_raw")
	t.Setenv("LOOK_CAMERA_FRAME", "/camera_rgb_optical_frame")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.ImageTopic != "/camera/rgb/image_raw" {
		t.Errorf("ImageTopic: got %q", c.ImageTopic)
	}
	if c.CameraFrame != "/camera_rgb_optical_frame" {
		t.Errorf("CameraFrame: got %q", c.CameraFrame)
	}
	// Untouched keys keep their defaults.
	if c.PointHeadAction != DefaultPointHeadAction {
		t.Errorf("PointHeadAction: got %q, want default", c.PointHeadAction)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "look.json")
	data := []byte(`{"window_name": "left eye", "image_topic": "/left/image"}`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LOOK_CONFIG", path)

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.WindowName != "left eye" {
		t.Errorf("WindowName: got %q", c.WindowName)
	}
	if c.ImageTopic != "/left/image" {
		t.Errorf("ImageTopic: got %q", c.ImageTopic)
	}
	// Keys absent from the file keep their defaults.
	if c.CameraInfoTopic != DefaultCameraInfoTopic {
		t.Errorf("CameraInfoTopic: got %q, want default", c.CameraInfoTopic)
	}
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "look.json")
	if err := os.WriteFile(path, []byte(`{"image_topic": "/from/file"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LOOK_CONFIG", path)
	t.Setenv("LOOK_IMAGE_TOPIC", "/from/env")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.ImageTopic != "/from/env" {
		t.Errorf("ImageTopic: got %q, want env override", c.ImageTopic)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("LOOK_CONFIG", filepath.Join(t.TempDir(), "absent.json"))

	if _, err := Load(); err == nil {
		t.Error("Load: want error for missing config file")
	}
}
