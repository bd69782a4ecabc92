package tui

import (
	"math"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mediabar/mediabar/clock"
	"github.com/mediabar/mediabar/internal/ui"
	"github.com/mediabar/mediabar/player"
	"github.com/mediabar/mediabar/style"
	"github.com/mediabar/mediabar/util"
	"github.com/mediabar/mediabar/visibility"
	"github.com/mediabar/mediabar/waveform"
	"golang.org/x/exp/slices"
)

// statefulBubble holds the shell state. Every field is owned by the event loop.
type statefulBubble struct {
	state  state
	keymap *statefulKeymap

	// components
	spinnerC spinner.Model
	seekC    progress.Model
	volumeC  progress.Model
	menuC    list.Model
	helpC    help.Model
	notifier *ui.Model

	engine   player.Player
	events   <-chan player.Event
	playback player.State
	controls *visibility.Controller
	animator *waveform.Animator

	// loop is nil when timers are driven by another clock, as in tests.
	loop *loopClock
	// dispatch turns an engine operation into a command.
	dispatch func(engineOp) tea.Cmd
	pending  []tea.Cmd

	speeds       []float64
	focus        segment
	hovered      map[visibility.Region]bool
	layout       layout
	cursorHidden bool

	lastError     error
	width, height int
	options       *Options
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.setState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// resize propagates terminal dimension changes to the child components.
func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()

	b.width = util.Max(width-x, 0)
	b.height = util.Max(height-y, 0)

	// "0:00:00 " on both sides of the seek bar
	b.seekC.Width = util.Max(b.width-2*timeColumns, 10)
	b.volumeC.Width = util.Clamp(b.width/3, 10, 30)
	b.menuC.SetSize(b.width, util.Min(b.height, menuHeight))
	b.helpC.Width = b.width

	b.animator.Resize(waveform.FitBars(b.width, b.options.BarWidth, b.options.BarGap))
}

// do queues an engine operation; the queue is flushed at the end of Update.
func (b *statefulBubble) do(op engineOp) {
	b.pending = append(b.pending, b.dispatch(op))
}

func (b *statefulBubble) flush(cmds ...tea.Cmd) tea.Cmd {
	cmds = append(cmds, b.pending...)
	b.pending = nil
	return tea.Batch(cmds...)
}

func newBubble(options *Options, engine player.Player, c clock.Clock) *statefulBubble {
	keymap := newStatefulKeymap()
	bubble := statefulBubble{
		keymap:   keymap,
		engine:   engine,
		playback: player.NewState(),
		controls: visibility.NewController(c, visibility.Options{
			HideDelay:         options.HideDelay,
			DoubleClickWindow: options.DoubleClickWindow,
			NativeControls:    options.NativeControls,
		}),
		animator: waveform.NewAnimator(options.Gradient, options.Heights),
		hovered:  make(map[visibility.Region]bool),
		speeds:   slices.Clone(options.Speeds),
		notifier: &ui.Model{},
		options:  options,
	}
	bubble.dispatch = bubble.runAsync
	slices.Sort(bubble.speeds)
	bubble.speeds = slices.Compact(bubble.speeds)
	if len(bubble.speeds) == 0 {
		bubble.speeds = []float64{1}
	}

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(style.AccentColor)

	bubble.seekC = progress.New(
		progress.WithGradient(string(style.AccentColor), string(style.SuccessColor)),
		progress.WithoutPercentage(),
	)
	bubble.volumeC = progress.New(
		progress.WithSolidFill(string(style.SecondaryColor)),
		progress.WithoutPercentage(),
	)

	delegate := list.NewDefaultDelegate()
	delegate.SetSpacing(0)
	delegate.ShowDescription = false
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(style.AccentColor).
		Foreground(style.AccentColor).
		Padding(0, 0, 0, 1)
	delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(style.Text)

	bubble.menuC = list.New([]list.Item{}, delegate, 0, 0)
	bubble.menuC.KeyMap = keymap.forList()
	bubble.menuC.Title = "Settings"
	bubble.menuC.Styles.Title = lipgloss.NewStyle().Foreground(style.Base).Background(style.AccentColor).Padding(0, 1)
	bubble.menuC.SetShowHelp(false)
	bubble.menuC.SetShowPagination(false)
	bubble.menuC.SetShowStatusBar(false)
	bubble.menuC.SetFilteringEnabled(false)

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	return &bubble
}

// nearestSpeed returns the index of the configured speed closest to v.
func (b *statefulBubble) nearestSpeed(v float64) int {
	best := 0
	for i, s := range b.speeds {
		if math.Abs(s-v) < math.Abs(b.speeds[best]-v) {
			best = i
		}
	}
	return best
}

func (b *statefulBubble) stepSpeed(delta int) float64 {
	i := util.Clamp(b.nearestSpeed(b.playback.Speed)+delta, 0, len(b.speeds)-1)
	return b.speeds[i]
}
