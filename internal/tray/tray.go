package tray

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
)

// Callbacks for tray menu actions
type Callbacks struct {
	OnOpen  func()
	OnClear func() // forget all sounding notes
	OnQuit  func()
}

// Setup installs the system tray menu when running as a desktop app.
// It reports whether a tray was installed.
func Setup(app fyne.App, callbacks Callbacks) bool {
	desk, ok := app.(desktop.App)
	if !ok {
		return false
	}

	desk.SetSystemTrayMenu(NewMenu(callbacks))
	desk.SetSystemTrayIcon(theme.ColorPaletteIcon())
	return true
}

// NewMenu builds the tray menu
func NewMenu(callbacks Callbacks) *fyne.Menu {
	openItem := fyne.NewMenuItem("Open GopherRegions", func() {
		if callbacks.OnOpen != nil {
			callbacks.OnOpen()
		}
	})

	clearItem := fyne.NewMenuItem("Clear Activations", func() {
		if callbacks.OnClear != nil {
			callbacks.OnClear()
		}
	})

	quitItem := fyne.NewMenuItem("Quit", func() {
		if callbacks.OnQuit != nil {
			callbacks.OnQuit()
		}
	})

	return fyne.NewMenu("GopherRegions",
		openItem,
		clearItem,
		fyne.NewMenuItemSeparator(),
		quitItem,
	)
}
