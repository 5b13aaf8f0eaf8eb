package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kjetilmb/mouse-juggler/internal/config"
	"github.com/kjetilmb/mouse-juggler/internal/device"
	"github.com/kjetilmb/mouse-juggler/internal/hotkey"
	"github.com/kjetilmb/mouse-juggler/internal/juggler"
	"github.com/kjetilmb/mouse-juggler/internal/ui"
)

const appVersion = "0.1.0"

func main() {
	flags, err := config.ParseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if flags.ShowVersion {
		fmt.Printf("juggler %s\n", appVersion)
		return
	}

	configPath := flags.ConfigPath
	if configPath == "" {
		if configPath, err = config.DefaultPath(); err != nil {
			log.Fatal(err)
		}
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal(err)
	}
	if flags.NoHotkey {
		cfg.Hotkey = false
	}

	dev := device.NewPointer()
	listener := hotkey.New(cfg.Hotkey)
	jug := juggler.New(dev, listener)

	cleanup := juggler.NewCleanupManager(10 * time.Second)
	if closer, ok := dev.(io.Closer); ok {
		cleanup.RegisterFunc("device", closer.Close)
	}
	cleanup.RegisterFunc("session", jug.Stop)

	if flags.Headless {
		if err := runHeadless(jug, cfg, flags.Duration, cleanup); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := runUI(jug, cfg, configPath, flags.Duration, cleanup); err != nil {
		log.Printf("error running program: %v", err)
		os.Exit(1)
	}
}

// runUI drives the bubbletea program, with OS signals routed through
// the cleanup manager so a Ctrl+C still stops the session and tears
// the listener down.
func runUI(jug *juggler.Juggler, cfg config.Config, configPath string, d time.Duration, cleanup *juggler.CleanupManager) error {
	// The TUI owns the terminal; keep log output away from it.
	if os.Getenv("JUGGLER_DEBUG") != "" {
		f, err := tea.LogToFile("juggler-debug.log", "debug")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	var model ui.Model
	if d > 0 {
		model = ui.InitialModelWithDuration(jug, cfg, configPath, d)
	} else {
		model = ui.InitialModel(jug, cfg, configPath)
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithoutSignalHandler(),
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, stopSignals()...)
	defer signal.Stop(sigChan)

	go func() {
		sig := <-sigChan
		log.Printf("juggler: received %v", sig)
		if isSuspend(sig) {
			log.Printf("juggler: suspend not supported, stopping instead")
		}
		if err := cleanup.Execute(); err != nil {
			log.Printf("juggler: cleanup: %v", err)
		}
		p.Kill()
	}()

	_, err := p.Run()
	if cerr := cleanup.Execute(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

// runHeadless runs without the TUI until a signal arrives or the run
// ends on its own (timer or global key press).
func runHeadless(jug *juggler.Juggler, cfg config.Config, d time.Duration, cleanup *juggler.CleanupManager) error {
	var err error
	if d > 0 {
		err = jug.StartTimed(cfg, d)
	} else {
		err = jug.Start(cfg)
	}
	if err != nil {
		return err
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, stopSignals()...)
	defer signal.Stop(sigChan)

	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case sig := <-sigChan:
			log.Printf("juggler: received %v", sig)
			return cleanup.Execute()
		case <-ticker.C:
			if !jug.IsRunning() {
				log.Printf("juggler: run ended")
				return cleanup.Execute()
			}
		}
	}
}
