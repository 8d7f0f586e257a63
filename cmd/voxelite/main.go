package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"

	"voxelite/internal/config"
	"voxelite/internal/game"
)

func init() {
	// GLFW and GL calls must stay on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "settings.yaml", "path to the settings file")
	flag.Parse()

	if err := config.LoadFile(*configPath); err != nil {
		if !os.IsNotExist(err) {
			log.Fatalf("load settings: %v", err)
		}
		log.Printf("no settings file at %s, using defaults", *configPath)
	}

	if err := glfw.Init(); err != nil {
		log.Fatalf("init glfw: %v", err)
	}
	closer.Bind(glfw.Terminate)

	window, err := game.SetupWindow()
	if err != nil {
		log.Fatalf("create window: %v", err)
	}

	session, err := game.NewSession(window)
	if err != nil {
		log.Fatalf("create session: %v", err)
	}
	closer.Bind(session.Cleanup)

	log.Printf("voxelite started")
	for !window.ShouldClose() {
		session.RunFrame()
	}

	closer.Close()
}
