// Package render works around WebView rendering and input-latency quirks
// around screen transitions, data loads, list renders and logout.
//
// Every workaround is cosmetic and fails soft: internal errors and panics are
// logged at warn and the caller's callback still runs.
package render

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

const (
	DefaultDataLoadDelay         = 100 * time.Millisecond
	DefaultLogoutSettleDelay     = 150 * time.Millisecond
	DefaultListContainerSelector = `[data-testid="list-container"]`
	DefaultDeferFrames           = 2

	reflowOpacity    = "0.99"
	compositingHint  = "translateZ(0)"
	momentumScrollOn = "touch"
)

// Options tunes the coordinator. Zero values take the defaults above.
type Options struct {
	DataLoadDelay         time.Duration
	LogoutSettleDelay     time.Duration
	ListContainerSelector string
	DeferFrames           int
}

func (o Options) withDefaults() Options {
	if o.DataLoadDelay <= 0 {
		o.DataLoadDelay = DefaultDataLoadDelay
	}
	if o.LogoutSettleDelay <= 0 {
		o.LogoutSettleDelay = DefaultLogoutSettleDelay
	}
	if o.ListContainerSelector == "" {
		o.ListContainerSelector = DefaultListContainerSelector
	}
	if o.DeferFrames <= 0 {
		o.DeferFrames = DefaultDeferFrames
	}

	return o
}

// Hints is the effective configuration a page should apply.
type Hints struct {
	Enabled               bool   `json:"enabled"`
	DeferFrames           int    `json:"defer_frames"`
	DataLoadDelayMs       int64  `json:"data_load_delay_ms"`
	LogoutSettleDelayMs   int64  `json:"logout_settle_delay_ms"`
	ListContainerSelector string `json:"list_container_selector"`
}

// HintsFor returns the hints for a page; outside a WebView everything is a passthrough.
func (o Options) HintsFor(inWebView bool) Hints {
	o = o.withDefaults()
	if !inWebView {
		return Hints{ListContainerSelector: o.ListContainerSelector}
	}

	return Hints{
		Enabled:               true,
		DeferFrames:           o.DeferFrames,
		DataLoadDelayMs:       o.DataLoadDelay.Milliseconds(),
		LogoutSettleDelayMs:   o.LogoutSettleDelay.Milliseconds(),
		ListContainerSelector: o.ListContainerSelector,
	}
}

// Params holds the capabilities the coordinator drives.
// Nil Frames/Timer default to the immediate implementations.
type Params struct {
	InWebView      func() bool
	Frames         FrameScheduler
	Timer          Timer
	Surface        Surface
	LocalStorage   Storage
	SessionStorage Storage
	LogoutBridge   LogoutBridge
	Logger         *slog.Logger
	Options        Options
}

// Coordinator applies the WebView workarounds.
type Coordinator struct {
	inWebView func() bool
	frames    FrameScheduler
	timer     Timer
	surface   Surface
	local     Storage
	session   Storage
	bridge    LogoutBridge
	logger    *slog.Logger
	opts      Options
}

// New creates a Coordinator.
func New(params Params) *Coordinator {
	coordinator := &Coordinator{
		inWebView: params.InWebView,
		frames:    params.Frames,
		timer:     params.Timer,
		surface:   params.Surface,
		local:     params.LocalStorage,
		session:   params.SessionStorage,
		bridge:    params.LogoutBridge,
		logger:    params.Logger,
		opts:      params.Options.withDefaults(),
	}
	if coordinator.inWebView == nil {
		coordinator.inWebView = func() bool { return false }
	}
	if coordinator.frames == nil {
		coordinator.frames = ImmediateScheduler{}
	}
	if coordinator.timer == nil {
		coordinator.timer = ImmediateTimer{}
	}
	if coordinator.logger == nil {
		coordinator.logger = slog.Default()
	}

	return coordinator
}

// Options returns the effective options.
func (c *Coordinator) Options() Options {
	return c.opts
}

// OptimizeTransition nudges input handling with a synthetic touch and runs fn
// once the WebView has completed a layout pass.
func (c *Coordinator) OptimizeTransition(fn func()) {
	if !c.active() {
		fn()

		return
	}

	c.touch()
	c.deferFrames(c.opts.DeferFrames, fn)
}

// OptimizeDataLoading delays loader in a WebView so heavy fetches start after
// the first layout settles. Outside a WebView loader runs synchronously.
// A non-positive delay uses the configured default.
func (c *Coordinator) OptimizeDataLoading(loader func(), delay time.Duration) {
	if !c.active() {
		loader()

		return
	}

	if delay <= 0 {
		delay = c.opts.DataLoadDelay
	}

	c.timer.AfterFunc(delay, func() {
		_ = c.guard("data loader", func() error {
			loader()

			return nil
		})
	})
}

// OptimizeListRendering forces a repaint of the list container after list data
// arrives, then calls done. An empty selector uses the configured default.
func (c *Coordinator) OptimizeListRendering(selector string, done func()) {
	if !c.active() {
		done()

		return
	}

	if selector == "" {
		selector = c.opts.ListContainerSelector
	}

	container, ok := c.query(selector)
	if !ok {
		done()

		return
	}

	err := c.guard("list reflow", func() error {
		if err := container.SetStyle("opacity", reflowOpacity); err != nil {
			return err
		}
		_, err := container.OffsetHeight()

		return err
	})
	if err != nil {
		done()

		return
	}

	c.deferFrames(c.opts.DeferFrames, func() {
		_ = c.guard("list repaint", func() error {
			if err := container.SetStyle("opacity", "1"); err != nil {
				return err
			}
			if err := container.SetStyle("transform", compositingHint); err != nil {
				return err
			}

			return c.surface.DispatchTouchStart(container)
		})
		done()
	})
}

// OptimizeScroll enables momentum scrolling on the container and keeps a
// compositing layer during scroll. It reports whether the hints were applied.
func (c *Coordinator) OptimizeScroll(selector string) bool {
	if !c.active() {
		return false
	}

	if selector == "" {
		selector = c.opts.ListContainerSelector
	}

	container, ok := c.query(selector)
	if !ok {
		return false
	}

	err := c.guard("scroll hints", func() error {
		if err := container.SetStyle("-webkit-overflow-scrolling", momentumScrollOn); err != nil {
			return err
		}
		if err := container.SetStyle("will-change", "transform"); err != nil {
			return err
		}

		return container.AddScrollListener(func() {
			_ = c.guard("scroll compositing", func() error {
				return container.SetStyle("transform", compositingHint)
			})
		}, true)
	})

	return err == nil
}

// OptimizeLogout runs logout through the native helper when one exists:
// clear storage once, call the helper, let it settle, then run logout on a
// deferred frame. It always returns; failures are logged and logout still runs.
// The frame wait is capped at LogoutSettleDelay, so a FrameScheduler that
// never delivers (e.g. a FrameClock that is not running) cannot block it.
func (c *Coordinator) OptimizeLogout(ctx context.Context, logout func(context.Context) error) {
	if c.bridge == nil {
		c.runLogout(ctx, logout)

		return
	}

	c.clearStorage()

	if err := c.guard("logout bridge", func() error { return c.bridge.Logout(ctx) }); err != nil {
		c.runLogout(ctx, logout)

		return
	}

	if !c.wait(ctx, c.opts.LogoutSettleDelay) {
		c.logger.Warn("Logout settle wait interrupted", slog.Any("error", ctx.Err()))
		c.runLogout(ctx, logout)

		return
	}

	var once sync.Once
	finish := func() {
		once.Do(func() { c.runLogout(ctx, logout) })
	}

	done := make(chan struct{})
	err := c.guard("logout frame", func() error {
		c.frames.RequestFrame(func() {
			defer close(done)
			finish()
		})

		return nil
	})
	if err != nil {
		finish()

		return
	}

	ceiling := time.NewTimer(c.opts.LogoutSettleDelay)
	defer ceiling.Stop()

	select {
	case <-done:
	case <-ceiling.C:
		c.logger.Warn("Logout frame not delivered, running logout directly",
			slog.Duration("waited", c.opts.LogoutSettleDelay),
		)
		finish()
	case <-ctx.Done():
		c.logger.Warn("Logout frame abandoned, running logout directly", slog.Any("error", ctx.Err()))
		finish()
	}
}

func (c *Coordinator) active() bool {
	return c.surface != nil && c.inWebView()
}

func (c *Coordinator) touch() {
	_ = c.guard("synthetic touch", func() error {
		return c.surface.DispatchTouchStart(c.surface.Body())
	})
}

func (c *Coordinator) query(selector string) (Element, bool) {
	var (
		element Element
		found   bool
	)
	_ = c.guard("query "+selector, func() error {
		element, found = c.surface.Query(selector)

		return nil
	})

	return element, found && element != nil
}

// deferFrames runs fn after n frames; if scheduling fails fn runs immediately.
func (c *Coordinator) deferFrames(n int, fn func()) {
	if n <= 0 {
		fn()

		return
	}

	err := c.guard("request frame", func() error {
		c.frames.RequestFrame(func() { c.deferFrames(n-1, fn) })

		return nil
	})
	if err != nil {
		fn()
	}
}

func (c *Coordinator) clearStorage() {
	for name, storage := range map[string]Storage{"local": c.local, "session": c.session} {
		if storage == nil {
			continue
		}
		_ = c.guard(name+" storage clear", storage.Clear)
	}
}

func (c *Coordinator) wait(ctx context.Context, d time.Duration) bool {
	elapsed := make(chan struct{})
	err := c.guard("settle timer", func() error {
		c.timer.AfterFunc(d, func() { close(elapsed) })

		return nil
	})
	if err != nil {
		return true
	}

	select {
	case <-elapsed:
		return true
	case <-ctx.Done():
		return false
	}
}

func (c *Coordinator) runLogout(ctx context.Context, logout func(context.Context) error) {
	_ = c.guard("logout callback", func() error { return logout(ctx) })
}

// guard runs fn, converting panics into errors, and logs any failure at warn.
func (c *Coordinator) guard(step string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
		if err != nil {
			c.logger.Warn("WebView workaround failed",
				slog.String("step", step),
				slog.Any("error", err),
			)
		}
	}()

	return fn()
}
