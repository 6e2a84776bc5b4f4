// Command regionmon shows live region activation in the terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/PixPMusic/gopher-regions/internal/activation"
	"github.com/PixPMusic/gopher-regions/internal/config"
	"github.com/PixPMusic/gopher-regions/internal/midi/input"
)

func main() {
	configPath := flag.String("config", "", "config file (default: user config dir)")
	port := flag.String("port", "", "MIDI input port (default: from config)")
	list := flag.Bool("list", false, "list MIDI input ports and exit")
	flag.Parse()

	midiManager := input.NewManager()
	defer midiManager.Close()

	if *list {
		for _, name := range midiManager.ListInPorts() {
			fmt.Println(name)
		}
		return
	}

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFrom(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	inPort := cfg.InPort
	if *port != "" {
		inPort = *port
	}

	// bubbletea owns the terminal; diagnostics go to a file when enabled
	var logger *log.Logger
	if cfg.Debug {
		f, err := tea.LogToFile("regionmon.log", "regionmon")
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		logger = log.Default()
	}

	engine := activation.NewEngine(logger)
	p := tea.NewProgram(newModel(cfg.Regions, engine, inPort, cfg.FrameRate), tea.WithAltScreen())

	stop, err := midiManager.StartListening(inPort, func(msg []byte, received time.Time) {
		p.Send(eventMsg{raw: msg, at: received})
	})
	if err != nil {
		log.Fatalf("Failed to start listener: %v", err)
	}
	if stop != nil {
		defer stop()
	}

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
