package main

import (
	"log"

	"fyne.io/fyne/v2/app"
	"github.com/PixPMusic/gopher-regions/internal/config"
	"github.com/PixPMusic/gopher-regions/internal/midi/input"
	"github.com/PixPMusic/gopher-regions/internal/tray"
	"github.com/PixPMusic/gopher-regions/internal/window"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize MIDI manager
	midiManager := input.NewManager()
	defer midiManager.Close()

	fyneApp := app.NewWithID("com.pixpmusic.gopherregions")

	mainWindow := window.NewMainWindow(fyneApp, cfg, midiManager)
	defer mainWindow.Stop()

	tray.Setup(fyneApp, tray.Callbacks{
		OnOpen:  mainWindow.Show,
		OnClear: mainWindow.ClearActivations,
		OnQuit:  fyneApp.Quit,
	})

	// Open the saved input port and start rendering
	mainWindow.Start()
	mainWindow.Show()

	// Run the Fyne app (this blocks until app.Quit is called)
	fyneApp.Run()
}
