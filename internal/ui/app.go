package ui

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"go.uber.org/zap"

	"github.com/five82/carousel/internal/carousel"
	"github.com/five82/carousel/internal/logger"
	"github.com/five82/carousel/internal/logtail"
	"github.com/five82/carousel/internal/prefs"
	"github.com/five82/carousel/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Engine    carousel.Options
	Reload    func() // asynchronous; results arrive through Store
	ThemeName string
	Captions  bool
	PrefsPath string
	LogPath   string // shown by the log overlay; empty disables it
}

// autoplayClock mirrors the most recent ArmAutoplay so the countdown bar can
// be drawn.
type autoplayClock struct {
	gen     uint64
	armedAt time.Time
	after   time.Duration
	armed   bool
}

func (c autoplayClock) fraction(now time.Time) float64 {
	if !c.armed || c.after <= 0 {
		return 0
	}
	f := float64(now.Sub(c.armedAt)) / float64(c.after)
	return math.Max(0, math.Min(1, f))
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	reload    func()
	prefsPath string
	logPath   string
	keys      keyMap
	now       func() time.Time

	// Carousel
	engine    *carousel.Engine
	spring    harmonica.Spring
	pos       float64 // painted offset, chases the engine offset
	vel       float64
	animating bool
	autoplay  autoplayClock
	settleGen uint64
	pressed   bool // left button went down over the track

	// UI state
	theme    Theme
	captions bool
	width    int
	height   int
	ready    bool
	showHelp bool
	showLog  bool
	status   string

	// Log overlay
	logEntries []logtail.Entry
	logErr     error

	// Data state
	snapshot state.Snapshot
	version  uint64

	// Widgets
	spinner  spinner.Model
	progress progress.Model
	help     help.Model
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	engine := carousel.New(opts.Engine)
	theme := GetTheme(themeName)

	s := spinner.New()
	s.Spinner = spinner.Dot

	return Model{
		ctx:       ctx,
		store:     opts.Store,
		reload:    opts.Reload,
		prefsPath: prefsPath,
		logPath:   opts.LogPath,
		keys:      DefaultKeyMap(),
		now:       time.Now,
		engine:    engine,
		spring:    newSpring(engine.Options().TransitionDuration),
		theme:     theme,
		captions:  opts.Captions,
		spinner:   s,
		progress:  newCountdownBar(theme, progressWidth),
		help:      help.New(),
	}
}

// newSpring returns a critically damped spring that settles within d.
func newSpring(d time.Duration) harmonica.Spring {
	secs := d.Seconds()
	if secs <= 0 {
		secs = carousel.DefaultTransitionDuration.Seconds()
	}
	return harmonica.NewSpring(harmonica.FPS(int(time.Second/frameInterval)), springSettleSpan/secs, 1.0)
}

func newCountdownBar(theme Theme, width int) progress.Model {
	bar := progress.New(
		progress.WithSolidFill(theme.Accent),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = theme.SurfaceAlt
	bar.Width = width
	return bar
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		snapshotTickCmd(),
		m.spinner.Tick,
	}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.BlurMsg:
		m.pressed = false
		return m, m.dispatch(carousel.PointerLeave{})

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.progress.Width = minInt(progressWidth, containerWidth(m.width))
		m.help.Width = m.width
		return m, m.dispatch(carousel.Resize{
			ViewportWidth:  float64(msg.Width),
			ContainerWidth: float64(containerWidth(msg.Width)),
		})

	case snapshotTickMsg:
		var cmds []tea.Cmd
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		if m.showLog {
			cmds = append(cmds, readLogCmd(m.logPath))
		}
		cmds = append(cmds, snapshotTickCmd())
		return m, tea.Batch(cmds...)

	case logTailMsg:
		m.logEntries = msg.entries
		m.logErr = msg.err
		return m, nil

	case snapshotMsg:
		return m.handleSnapshot(state.Snapshot(msg))

	case autoplayMsg:
		return m, m.dispatch(carousel.AutoplayTick{Gen: msg.gen})

	case settleMsg:
		return m, m.dispatch(carousel.SettleTick{Gen: msg.gen})

	case paintedMsg:
		return m, m.dispatch(carousel.Painted{})

	case frameMsg:
		return m.stepSpring()

	case spinner.TickMsg:
		if !m.engine.Frame().Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.showLog {
		return m.renderLog()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp || m.showLog {
		// Any key closes an overlay
		m.showHelp = false
		m.showLog = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.ShowLog):
		if m.logPath == "" {
			m.status = "Logging to stderr; no log file to show"
			return m, nil
		}
		m.showLog = true
		return m, readLogCmd(m.logPath)

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.progress = newCountdownBar(m.theme, m.progress.Width)
		m.savePrefs()

	case key.Matches(msg, m.keys.Captions):
		m.captions = !m.captions
		m.savePrefs()

	case key.Matches(msg, m.keys.Reload):
		if m.reload != nil {
			m.status = "Reloading slides"
			m.reload()
		}

	case key.Matches(msg, m.keys.Previous):
		return m, m.dispatch(carousel.Navigate{Intent: carousel.Previous})

	case key.Matches(msg, m.keys.Next):
		return m, m.dispatch(carousel.Navigate{Intent: carousel.Next})

	case key.Matches(msg, m.keys.GoTo):
		index := int(msg.String()[0] - '1')
		return m, m.dispatch(carousel.Navigate{Intent: carousel.GoTo, Index: index})
	}

	return m, nil
}

// handleSnapshot hands a new slide list to the engine. Failed reloads keep
// the store's version, so the carousel keeps its current slides.
func (m Model) handleSnapshot(snap state.Snapshot) (tea.Model, tea.Cmd) {
	m.snapshot = snap
	if !snap.Loaded || snap.Version == m.version {
		return m, nil
	}
	m.version = snap.Version

	var err error
	if len(snap.Slides) == 0 {
		err = snap.LastError
	}
	m.status = ""
	if err != nil {
		m.status = "Slides unavailable: " + err.Error()
	}
	return m, m.dispatch(carousel.SlidesLoaded{Slides: snap.Slides, Err: err})
}

// dispatch feeds one event to the engine and turns its effects into
// commands.
func (m *Model) dispatch(ev carousel.Event) tea.Cmd {
	cmds := m.schedule(m.engine.Dispatch(ev))
	cmds = append(cmds, m.syncOffset())
	return tea.Batch(cmds...)
}

// schedule maps engine effects onto one-shot timers. Stale timers are never
// cancelled; the engine drops ticks from old generations.
func (m *Model) schedule(effects []carousel.Effect) []tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(effects)+1)
	for _, eff := range effects {
		switch e := eff.(type) {
		case carousel.ArmAutoplay:
			m.autoplay = autoplayClock{gen: e.Gen, armedAt: m.now(), after: e.After, armed: true}
			cmds = append(cmds, autoplayCmd(e.Gen, e.After))
		case carousel.ArmSettle:
			m.settleGen = e.Gen
			cmds = append(cmds, settleCmd(e.Gen, e.After))
		case carousel.FollowLink:
			m.status = "Open " + e.URL
			logger.Get().Info("follow link", zap.String("url", e.URL))
		}
	}
	return cmds
}

// syncOffset moves the painted offset toward the engine's. Drags and
// instant frames snap; every other change springs.
func (m *Model) syncOffset() tea.Cmd {
	f := m.engine.Frame()
	if f.Mode == carousel.ModeInstant {
		m.pos, m.vel = f.Offset, 0
		return paintedCmd()
	}
	if !f.TransitionEnabled {
		m.pos, m.vel = f.Offset, 0
		return nil
	}
	if m.animating || (m.pos == f.Offset && m.vel == 0) {
		return nil
	}
	m.animating = true
	return frameCmd()
}

func (m Model) stepSpring() (tea.Model, tea.Cmd) {
	target := m.engine.Frame().Offset
	m.pos, m.vel = m.spring.Update(m.pos, m.vel, target)
	if math.Abs(m.pos-target) < 0.5 && math.Abs(m.vel) < 0.5 {
		m.pos, m.vel = target, 0
		m.animating = false
		return m, nil
	}
	return m, frameCmd()
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, Captions: m.captions}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		logger.Get().Warn("save prefs failed", zap.Error(err))
	}
}

// renderMain renders header, track, dots, countdown and footer.
func (m Model) renderMain() string {
	f := m.engine.Frame()

	rows := make([]string, 0, trackRows(m.height)+chromeRows)
	rows = append(rows, m.renderHeader(f))
	rows = append(rows, m.renderTrack(f)...)
	rows = append(rows, m.renderDots(f), m.renderCountdown(f), m.renderFooter())
	return strings.Join(rows, "\n")
}

// Messages

type snapshotTickMsg time.Time

type snapshotMsg state.Snapshot

type frameMsg time.Time

type autoplayMsg struct{ gen uint64 }

type settleMsg struct{ gen uint64 }

type paintedMsg struct{}

type logTailMsg struct {
	entries []logtail.Entry
	err     error
}

// Commands

func snapshotTickCmd() tea.Cmd {
	return tea.Tick(snapshotInterval, func(t time.Time) tea.Msg {
		return snapshotTickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func autoplayCmd(gen uint64, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return autoplayMsg{gen: gen}
	})
}

func settleCmd(gen uint64, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return settleMsg{gen: gen}
	})
}

func readLogCmd(path string) tea.Cmd {
	return func() tea.Msg {
		entries, err := logtail.Tail(path, logTailLines)
		return logTailMsg{entries: entries, err: err}
	}
}

// paintedCmd reports the instant frame as painted one frame later.
func paintedCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return paintedMsg{}
	})
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
		tea.WithContext(m.ctx),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
