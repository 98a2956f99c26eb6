package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"retro-snake/config"
	"retro-snake/logging"
	"retro-snake/session"
	"retro-snake/ui/rlcanvas"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const hudHeight = 40

func main() {
	cfg, err := config.Parse(os.Args[0], os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		session.ReportError("config:", err)
		os.Exit(2)
	}

	log, logFile, err := logging.Setup(cfg.Debug, cfg.LogDir())
	if err != nil {
		session.ReportError("logging:", err)
	}

	s := session.Setup(cfg, log, logFile)

	rl.InitWindow(int32(cfg.SurfaceSize), int32(cfg.SurfaceSize+hudHeight), "Retro Snake")
	defer rl.CloseWindow()
	// Escape belongs to the game
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)

	hud := rlcanvas.New(0, 0, cfg.SurfaceSize, hudHeight)
	board := rlcanvas.New(0, hudHeight, cfg.SurfaceSize, cfg.SurfaceSize)

	s.Open()
	for !rl.WindowShouldClose() && s.IsOpen() {
		for _, k := range rlcanvas.PressedKeys() {
			s.HandleKey(k)
		}
		s.Update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		s.Draw(board, hud, time.Now())
		rl.EndDrawing()
	}

	if err := s.Shutdown(); err != nil {
		session.ReportError("shutdown:", err)
	}
	fmt.Println(s.Summary())
}
