package visibility

import (
	"time"

	"github.com/mediabar/mediabar/clock"
	"github.com/mediabar/mediabar/log"
)

// Default timings.
const (
	DefaultHideDelay         = 3000 * time.Millisecond
	DefaultDoubleClickWindow = 500 * time.Millisecond
)

// Options configures a Controller.
type Options struct {
	HideDelay         time.Duration
	DoubleClickWindow time.Duration
	// NativeControls marks that the engine's own controller replaces the custom controls.
	NativeControls bool
}

// Controller is the single source of truth for whether the custom controls are visible.
// It is not safe for concurrent use: all calls, including timer callbacks, must happen on one event loop.
type Controller struct {
	clock   clock.Clock
	options Options

	playing            bool
	recentlyInteracted bool
	hoveringControls   bool
	volume             usage
	speed              usage
	menuOpen           bool
	sourceType         SourceType

	hideTimer clock.Timer
	clicks    *ClickTracker
	closed    bool
}

// NewController creates a controller in the initial state: paused, source unknown, controls shown.
func NewController(c clock.Clock, options Options) *Controller {
	if options.HideDelay <= 0 {
		options.HideDelay = DefaultHideDelay
	}
	if options.DoubleClickWindow <= 0 {
		options.DoubleClickWindow = DefaultDoubleClickWindow
	}

	return &Controller{
		clock:   c,
		options: options,
		clicks:  NewClickTracker(c, options.DoubleClickWindow),
	}
}

// Signals returns the current input snapshot.
func (c *Controller) Signals() Signals {
	return Signals{
		Playing:            c.playing,
		RecentlyInteracted: c.recentlyInteracted,
		HoveringControls:   c.hoveringControls,
		UsingVolume:        c.volume.active(),
		UsingSpeed:         c.speed.active(),
		UsingSettingsMenu:  c.menuOpen,
		SourceType:         c.sourceType,
		NativeControls:     c.options.NativeControls,
	}
}

// IsHidden reports whether the custom controls should be hidden right now.
func (c *Controller) IsHidden() bool {
	return c.Signals().Hidden()
}

// CursorHidden reports whether the pointer should be hidden over the media surface.
func (c *Controller) CursorHidden() bool {
	return !c.options.NativeControls && c.IsHidden()
}

// MarkInteraction records user activity and restarts the hide countdown.
func (c *Controller) MarkInteraction() {
	if c.closed {
		return
	}

	c.recentlyInteracted = true
	c.cancelHide()

	if c.sourceType == SourceVideo && !c.Signals().pinned() {
		c.scheduleHide()
	}
}

// SetHovering updates pointer presence over a region.
// Entering a popover counts as an interaction; leaving the control bar restarts the hide countdown.
func (c *Controller) SetHovering(region Region, hovering bool) {
	if c.closed {
		return
	}

	switch region {
	case RegionControls:
		c.hoveringControls = hovering
		if hovering {
			c.recentlyInteracted = true
			c.cancelHide()
		} else {
			c.MarkInteraction()
		}
	case RegionVolume:
		c.volume.hovered = hovering
		c.afterPopoverChange(hovering)
	case RegionSpeed:
		c.speed.hovered = hovering
		c.afterPopoverChange(hovering)
	}
}

// SetFocused updates keyboard focus on a popover region. Focus on the control bar itself is not tracked.
func (c *Controller) SetFocused(region Region, focused bool) {
	if c.closed {
		return
	}

	switch region {
	case RegionVolume:
		c.volume.focused = focused
		c.afterPopoverChange(focused)
	case RegionSpeed:
		c.speed.focused = focused
		c.afterPopoverChange(focused)
	}
}

// SetMenuOpen records whether the settings menu is open. An open menu suppresses hiding.
func (c *Controller) SetMenuOpen(open bool) {
	if c.closed {
		return
	}

	c.menuOpen = open
	if open {
		c.cancelHide()
		return
	}
	c.rearm()
}

// MenuOpen reports whether the settings menu is open.
func (c *Controller) MenuOpen() bool {
	return c.menuOpen
}

// SetPlaying mirrors the engine's playback state.
func (c *Controller) SetPlaying(playing bool) {
	if c.closed {
		return
	}

	c.playing = playing
	if playing {
		c.rearm()
	}
}

// SetSourceType records the probed media kind and re-evaluates hide eligibility.
func (c *Controller) SetSourceType(t SourceType) {
	if c.closed {
		return
	}

	if t != c.sourceType {
		log.Debugf("visibility: source type %s -> %s", c.sourceType, t)
	}
	c.sourceType = t

	switch t {
	case SourceVideo:
		c.rearm()
	default:
		c.cancelHide()
	}
}

// SourceType returns the current media kind.
func (c *Controller) SourceType() SourceType {
	return c.sourceType
}

// RegisterClick routes a click on the media surface through the double-click tracker.
func (c *Controller) RegisterClick(onSingle, onDouble func()) {
	if c.closed {
		return
	}
	c.clicks.Register(onSingle, onDouble)
}

// Close cancels all pending timers. Every later call is a no-op.
func (c *Controller) Close() {
	c.cancelHide()
	c.clicks.Close()
	c.closed = true
}

func (c *Controller) afterPopoverChange(entered bool) {
	if entered {
		c.MarkInteraction()
		return
	}
	c.rearm()
}

// rearm schedules a hide when the controls are only held open by a past interaction and no countdown is running.
func (c *Controller) rearm() {
	if c.hideTimer != nil || !c.recentlyInteracted {
		return
	}
	if c.sourceType != SourceVideo || c.Signals().pinned() {
		return
	}
	c.scheduleHide()
}

func (c *Controller) scheduleHide() {
	var timer clock.Timer
	timer = c.clock.AfterFunc(c.options.HideDelay, func() {
		// A superseded timer must never act, even if Stop lost a race with the fire.
		if c.closed || c.hideTimer != timer {
			return
		}
		c.hideTimer = nil

		if c.playing && !c.Signals().pinned() {
			c.recentlyInteracted = false
			log.Trace("visibility: controls auto-hidden")
		}
	})
	c.hideTimer = timer
}

func (c *Controller) cancelHide() {
	if c.hideTimer != nil {
		c.hideTimer.Stop()
		c.hideTimer = nil
	}
}
