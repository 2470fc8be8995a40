// Command look-to-point shows a robot camera feed in a window and points
// the robot's head toward whatever pixel the user clicks.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/edwinhayes/rosgo/ros"

	"github.com/nvidal/go-look-to-point/internal/app"
	"github.com/nvidal/go-look-to-point/internal/config"
	"github.com/nvidal/go-look-to-point/internal/log"
	"github.com/nvidal/go-look-to-point/pkg/head"
)

const nodeName = "look_to_point"

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	level := "info"
	if *debug {
		level = "debug"
	}
	log.Init(level)

	if err := run(); err != nil {
		log.L().WithError(err).Error("look_to_point failed")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	node, err := ros.NewNode(nodeName, os.Args)
	if err != nil {
		return err
	}
	defer node.Shutdown()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info("shutting down")
		cancel()
	}()

	client := head.NewClient(node, nodeName, cfg.PointHeadAction, log.Component("head"))
	defer client.Shutdown()

	log.Info("starting look_to_point")
	return app.New(cfg, node, client, log.Component("app")).Run(ctx)
}
