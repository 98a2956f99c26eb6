// Command snake-term plays the game in a terminal.
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
	"retro-snake/ui/termcanvas"

	"github.com/gdamore/tcell/v2"
)

const frameInterval = 16 * time.Millisecond

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
	if err := run(s, cfg.GridSize); err != nil {
		session.ReportError("terminal:", err)
	}

	if err := s.Shutdown(); err != nil {
		session.ReportError("shutdown:", err)
	}
	fmt.Println(s.Summary())
}

func run(s *session.Session, gridSize int) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("problem creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("problem initializing screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	// One row for the HUD above the board
	hud := termcanvas.New(screen, 0, 0, gridSize, 1)
	board := termcanvas.New(screen, 0, 1, gridSize, gridSize)

	// PollEvent blocks, so it gets its own goroutine; the game is only touched here
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	frames := time.NewTicker(frameInterval)
	defer frames.Stop()

	s.Open()
	for s.IsOpen() {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC {
					s.Close()
					continue
				}
				s.HandleKey(termcanvas.MapKey(ev))
			case *tcell.EventResize:
				screen.Clear()
				screen.Sync()
			}

		case <-frames.C:
			s.Update()
			s.Draw(board, hud, time.Now())
			screen.Show()
		}
	}
	return nil
}
