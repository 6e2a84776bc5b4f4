package window

import (
	"fmt"
	"image"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/PixPMusic/gopher-regions/internal/activation"
	"github.com/PixPMusic/gopher-regions/internal/authoring"
	"github.com/PixPMusic/gopher-regions/internal/config"
	"github.com/PixPMusic/gopher-regions/internal/midi/input"
	"github.com/PixPMusic/gopher-regions/internal/region"
	"github.com/PixPMusic/gopher-regions/internal/render"
)

const noPort = "(None)"

// MainWindow manages the main application window
type MainWindow struct {
	window      fyne.Window
	app         fyne.App
	cfg         *config.Config
	midiManager *input.Manager

	registry *region.Registry
	machine  *authoring.Machine
	engine   *activation.Engine
	painter  *render.Painter

	surface    *Surface
	portSelect *escapeSelect
	status     *widget.Label
	form       *regionForm
	dirty      bool // redraw needed on the next tick

	midiStop   func()
	tickerStop chan struct{}
}

// NewMainWindow creates the main application window
func NewMainWindow(app fyne.App, cfg *config.Config, midiManager *input.Manager) *MainWindow {
	win := app.NewWindow("GopherRegions")

	var logger *log.Logger
	if cfg.Debug {
		logger = log.Default()
	}

	mw := &MainWindow{
		window:      win,
		app:         app,
		cfg:         cfg,
		midiManager: midiManager,
		registry:    cfg.NewRegistry(),
		engine:      activation.NewEngine(logger),
		painter:     render.NewPainter(),
	}
	mw.machine = authoring.NewMachine(mw.registry)
	mw.machine.SetHandleRadius(cfg.HandleRadius)
	mw.machine.OnChange = mw.onMachineChange

	mw.setupUI()

	win.Resize(fyne.NewSize(1000, 700))
	win.CenterOnScreen()

	win.SetCloseIntercept(func() {
		win.Hide()
	})

	return mw
}

// Show brings the window to the front
func (mw *MainWindow) Show() {
	mw.window.Show()
	mw.window.RequestFocus()
}

// Start opens the configured input port and starts the render ticker
func (mw *MainWindow) Start() {
	mw.StartMIDIListener(mw.cfg.InPort)
	mw.startTicker()
}

// Stop releases the input port and stops the render ticker
func (mw *MainWindow) Stop() {
	mw.StopMIDIListener()
	if mw.tickerStop != nil {
		close(mw.tickerStop)
		mw.tickerStop = nil
	}
}

// StartMIDIListener switches the input source. Sounding notes from the
// previous source are dropped.
func (mw *MainWindow) StartMIDIListener(inPort string) {
	mw.StopMIDIListener()
	mw.engine.Reset()
	mw.dirty = true

	stop, err := mw.midiManager.StartListening(inPort, func(msg []byte, received time.Time) {
		// Hardware callbacks arrive on the driver goroutine; apply them on
		// the UI goroutine so every mutation has a single writer.
		fyne.Do(func() {
			mw.engine.OnEvent(msg, received)
			mw.dirty = true
		})
	})
	if err != nil {
		log.Printf("Failed to start listener for %s: %v", inPort, err)
		mw.setStatus(fmt.Sprintf("Input %s unavailable", inPort))
		return
	}

	if stop != nil {
		mw.midiStop = stop
		log.Printf("Started listening on %s", inPort)
	}
}

// StopMIDIListener stops the current input listener
func (mw *MainWindow) StopMIDIListener() {
	if mw.midiStop != nil {
		mw.midiStop()
		mw.midiStop = nil
	}
}

// ClearActivations forgets every sounding note
func (mw *MainWindow) ClearActivations() {
	mw.engine.Reset()
	mw.dirty = true
}

func (mw *MainWindow) startTicker() {
	rate := mw.cfg.FrameRate
	if rate <= 0 {
		rate = config.DefaultFrameRate
	}
	stop := make(chan struct{})
	mw.tickerStop = stop

	go func() {
		ticker := time.NewTicker(time.Second / time.Duration(rate))
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				fyne.Do(mw.tick)
			}
		}
	}()
}

func (mw *MainWindow) tick() {
	if !mw.dirty {
		return
	}
	mw.dirty = false
	mw.surface.Refresh()
}

func (mw *MainWindow) paint(w, h int) image.Image {
	drag, dragging := mw.machine.Drag()
	view := render.View{
		Selected: mw.machine.Selected(),
		Dragging: dragging && drag.RegionID == mw.machine.Selected(),
		Draft:    mw.machine.DrawPoints(),
	}
	frame := render.Build(mw.registry.List(), mw.engine.Snapshot(), view)
	return mw.painter.Paint(frame, w, h)
}

func (mw *MainWindow) setupUI() {
	mw.surface = NewSurface(mw.machine, mw.paint)
	mw.status = widget.NewLabel("")
	mw.form = newRegionForm(mw.window, mw.applyRegion, mw.escape)

	ports := append([]string{noPort}, mw.midiManager.ListInPorts()...)
	mw.portSelect = newEscapeSelect(ports, mw.escape)
	if mw.cfg.InPort != "" {
		mw.portSelect.SetSelected(mw.cfg.InPort)
	} else {
		mw.portSelect.SetSelected(noPort)
	}
	// Attached after the initial selection so construction does not open the port
	mw.portSelect.OnChanged = func(selected string) {
		if selected == noPort {
			selected = ""
		}
		mw.cfg.InPort = selected
		mw.StartMIDIListener(selected)
	}

	refreshBtn := widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), func() {
		mw.portSelect.Options = append([]string{noPort}, mw.midiManager.ListInPorts()...)
		mw.portSelect.Refresh()
	})

	finishBtn := widget.NewButtonWithIcon("Finish Shape", theme.ConfirmIcon(), mw.commit)
	cancelBtn := widget.NewButtonWithIcon("Cancel", theme.CancelIcon(), mw.machine.GlobalCancel)
	deleteBtn := widget.NewButtonWithIcon("Delete", theme.DeleteIcon(), mw.deleteSelected)
	saveBtn := widget.NewButtonWithIcon("Save", theme.DocumentSaveIcon(), mw.save)
	saveBtn.Importance = widget.HighImportance

	inputLabel := widget.NewLabel("Input")
	inputLabel.TextStyle = fyne.TextStyle{Bold: true}

	toolbar := container.NewBorder(nil, nil,
		container.NewHBox(inputLabel, mw.portSelect, refreshBtn),
		container.NewHBox(finishBtn, cancelBtn, deleteBtn, saveBtn),
	)

	split := container.NewHSplit(mw.surface, container.NewVScroll(mw.form.container))
	split.SetOffset(0.72)

	mw.window.SetContent(container.NewBorder(
		container.NewVBox(toolbar, widget.NewSeparator()),
		mw.status,
		nil, nil,
		split,
	))

	mw.window.Canvas().SetOnTypedKey(mw.onKey)
	mw.onMachineChange()
}

// onKey handles keys typed while no widget has focus. Focused inputs route
// Escape through escape themselves.
func (mw *MainWindow) onKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyEscape:
		mw.escape()
	case fyne.KeyReturn, fyne.KeyEnter:
		mw.commit()
	case fyne.KeyDelete, fyne.KeyBackspace:
		mw.deleteSelected()
	}
}

// escape drops keyboard focus and cancels drawing or selection
func (mw *MainWindow) escape() {
	mw.window.Canvas().Unfocus()
	mw.machine.GlobalCancel()
}

func (mw *MainWindow) commit() {
	if r, ok := mw.machine.Commit(); ok {
		log.Printf("Created region %s", r.ID)
	}
}

func (mw *MainWindow) deleteSelected() {
	id := mw.machine.Selected()
	if id == "" {
		return
	}
	mw.registry.Delete(id)
	mw.machine.Forget(id)
	mw.dirty = true
}

func (mw *MainWindow) applyRegion(r region.Region) {
	if !mw.registry.Update(r) {
		return
	}
	mw.dirty = true
	mw.updateStatus()
}

func (mw *MainWindow) onMachineChange() {
	mw.dirty = true

	if r, ok := mw.registry.Get(mw.machine.Selected()); ok {
		_, dragging := mw.machine.Drag()
		if !dragging {
			mw.form.load(r)
		}
	} else {
		mw.form.clear()
	}
	mw.updateStatus()
}

func (mw *MainWindow) updateStatus() {
	switch mw.machine.State() {
	case authoring.StateDrawing:
		n := len(mw.machine.DrawPoints())
		mw.setStatus(fmt.Sprintf("Drawing: %d point(s). Enter to finish (3 minimum), Esc to cancel.", n))
	case authoring.StateDragging:
		mw.setStatus("Moving vertex. Release to drop.")
	default:
		if mw.machine.Selected() != "" {
			mw.setStatus("Drag a handle to reshape, Delete to remove, Esc to deselect.")
		} else {
			mw.setStatus(fmt.Sprintf("%d region(s). Click the background to start a shape.", mw.registry.Len()))
		}
	}
}

func (mw *MainWindow) setStatus(text string) {
	if mw.status != nil {
		mw.status.SetText(text)
	}
}

func (mw *MainWindow) save() {
	mw.cfg.SyncRegions(mw.registry)
	if err := mw.cfg.Save(); err != nil {
		log.Printf("Failed to save config: %v", err)
		dialog.ShowError(err, mw.window)
		return
	}
	log.Printf("Saved %d region(s)", mw.registry.Len())
	mw.setStatus("Saved.")
}
