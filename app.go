// Package pictriage wires the triage engine, texture cache, and
// ebitenui screens into a desktop application.
package pictriage

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/pictriage/pictriage/output"
	"github.com/pictriage/pictriage/screens"
	"github.com/pictriage/pictriage/storage"
	"github.com/pictriage/pictriage/style"
	"github.com/pictriage/pictriage/swipe"
	"github.com/pictriage/pictriage/texture"
)

// RunOptions configure a triage run.
type RunOptions struct {
	Session   Session
	OutputDir string
	Title     string
}

// App is the main application struct that implements ebiten.Game.
type App struct {
	ui *ebitenui.UI

	state  AppState
	config *storage.Config

	session  Session
	engine   *swipe.Engine
	cache    *texture.Cache
	outcomes []swipe.Outcome

	notification *Notification
	confirmSound []byte

	sortScreen     *screens.SortScreen
	queueScreen    *screens.QueueScreen
	completeScreen *screens.CompleteScreen

	// Window tracking for persistence and size-dependent layouts
	// (physical pixels)
	windowWidth     int
	windowHeight    int
	lastBuildWidth  int
	lastBuildHeight int

	rebuildPending  bool
	currentDPIScale float64

	clipboardReady bool
	quitting       bool
}

// Run is the public entry point. It loads config, configures the
// window, starts the session, and runs the Ebiten game loop until the
// user quits.
func Run(opts RunOptions) error {
	if err := storage.EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}

	config, err := storage.LoadConfig()
	if err != nil {
		log.Printf("Warning: using default config: %v", err)
		config = storage.DefaultConfig()
	}

	title := opts.Title
	if title == "" {
		title = "pictriage"
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(640, 480, -1, -1)
	ebiten.SetWindowSize(config.Window.Width, config.Window.Height)

	app := newApp(opts, config)
	if err := ebiten.RunGame(app); err != nil {
		return err
	}
	app.saveAndClose()
	return nil
}

// newApp creates and initializes the application for the session.
func newApp(opts RunOptions, config *storage.Config) *App {
	app := &App{
		state:   StateSorting,
		config:  config,
		session: opts.Session,
	}

	app.notification = NewNotification()
	if config.Triage.FeedbackSound {
		app.confirmSound = generateConfirmSound()
	}
	app.initClipboard()

	maxSize := texture.Size{
		W: config.Triage.MaxTextureSize,
		H: config.Triage.MaxTextureSize,
	}
	app.cache = texture.NewCache(maxSize, placeholderImage())

	// Multi-image pages preload proportionally further so a full page
	// step still lands inside decoded territory.
	radius := config.Triage.PreloadRadius
	if opts.Session.PageSize > 1 {
		radius *= opts.Session.PageSize
	}
	cursor := swipe.NewCursor(opts.Session.PageSize, opts.Session.StepSize, radius)

	reg := swipe.NewRegistry()
	reg.AppendAll(opts.Session.Items)
	app.engine = swipe.NewEngine(reg, app.cache, cursor, output.NewSaver(opts.OutputDir))
	app.outcomes = opts.Session.outcomes(app)

	app.engine.SetOnMove(func() {
		app.rebuildPending = true
	})
	app.engine.SetOnComplete(func() {
		if app.session.onExhaust != nil && app.session.onExhaust(app) {
			app.rebuildPending = true
			return
		}
		app.state = StateComplete
		app.rebuildPending = true
	})

	app.sortScreen = screens.NewSortScreen(app)
	app.queueScreen = screens.NewQueueScreen(app)
	app.completeScreen = screens.NewCompleteScreen(app)

	app.engine.Start()
	app.rebuildCurrentScreen()
	return app
}

// rebuildCurrentScreen rebuilds the UI for the current state.
func (a *App) rebuildCurrentScreen() {
	width := a.windowWidth
	height := a.windowHeight
	if width == 0 || height == 0 {
		width = a.config.Window.Width
		height = a.config.Window.Height
	}

	var current screens.Screen
	switch a.state {
	case StateQueue:
		current = a.queueScreen
	case StateComplete:
		current = a.completeScreen
	default:
		current = a.sortScreen
	}

	a.ui = &ebitenui.UI{Container: current.Build(width, height)}
	a.lastBuildWidth = width
	a.lastBuildHeight = height
}

// Update implements ebiten.Game.
func (a *App) Update() error {
	if a.quitting {
		return ebiten.Termination
	}

	if a.rebuildPending {
		a.rebuildPending = false
		a.rebuildCurrentScreen()
	}

	// Size-dependent layouts (image best-fit) need a rebuild on resize.
	if a.windowWidth > 0 &&
		(a.windowWidth != a.lastBuildWidth || a.windowHeight != a.lastBuildHeight) {
		a.rebuildCurrentScreen()
	}

	a.handleHotkeys()
	if a.quitting {
		return ebiten.Termination
	}
	if a.rebuildPending {
		a.rebuildPending = false
		a.rebuildCurrentScreen()
	}

	a.ui.Update()
	return nil
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	a.ui.Draw(screen)
	a.notification.Draw(screen)
}

// Layout implements ebiten.Game. Returns physical pixel dimensions so
// rendering happens at full resolution on HiDPI displays.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := 1.0
	if m := ebiten.Monitor(); m != nil {
		s = m.DeviceScaleFactor()
	}
	if s != a.currentDPIScale {
		a.currentDPIScale = s
		style.SetDPIScale(s)
		a.rebuildPending = true
	}

	w := int(float64(outsideWidth) * s)
	h := int(float64(outsideHeight) * s)
	a.windowWidth = w
	a.windowHeight = h
	return w, h
}

// saveAndClose persists the window size and releases GPU and audio
// resources.
func (a *App) saveAndClose() {
	if a.windowWidth > 0 && a.windowHeight > 0 {
		s := a.currentDPIScale
		if s <= 0 {
			s = 1.0
		}
		a.config.Window.Width = int(float64(a.windowWidth) / s)
		a.config.Window.Height = int(float64(a.windowHeight) / s)
	}
	if err := storage.SaveConfig(a.config); err != nil {
		log.Printf("Failed to save config: %v", err)
	}

	a.sortScreen.Teardown()
	a.cache.Clear()
	a.notification.Close()
}

// screens.Callback implementation

// Engine returns the navigation engine backing the session.
func (a *App) Engine() *swipe.Engine { return a.engine }

// Textures returns the resident texture cache.
func (a *App) Textures() *texture.Cache { return a.cache }

// Outcomes returns the action buttons for the current session.
func (a *App) Outcomes() []swipe.Outcome { return a.outcomes }

// Dispatch performs an outcome against a page slot, with feedback
// sound on successful saves and a toast on save failure. Navigation
// continues either way.
func (a *App) Dispatch(slot int, outcome swipe.Outcome) {
	err := a.engine.Dispatch(slot, outcome)
	if err != nil {
		log.Printf("Save failed: %v", err)
		a.notification.ShowDefault("Save failed, see log")
		return
	}
	switch outcome.Kind {
	case swipe.OutcomeAccept, swipe.OutcomeHighlight:
		if a.config.Triage.FeedbackSound {
			a.notification.PlaySound(a.confirmSound)
		}
	}
}

// ToggleQueue switches between the sorting view and the queue list.
func (a *App) ToggleQueue() {
	switch a.state {
	case StateQueue:
		a.state = StateSorting
	case StateSorting:
		a.state = StateQueue
	default:
		return
	}
	a.rebuildPending = true
}

// Quit requests application shutdown on the next update.
func (a *App) Quit() {
	a.quitting = true
}
