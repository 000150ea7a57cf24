package render

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeElement struct {
	mu        sync.Mutex
	styles    map[string]string
	history   []string
	reflows   int
	listeners []func()
	passive   []bool
	styleErr  error
}

func newFakeElement() *fakeElement {
	return &fakeElement{styles: make(map[string]string)}
}

func (e *fakeElement) SetStyle(property, value string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.styleErr != nil {
		return e.styleErr
	}
	e.styles[property] = value
	e.history = append(e.history, property+"="+value)

	return nil
}

func (e *fakeElement) OffsetHeight() (float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reflows++

	return 480, nil
}

func (e *fakeElement) AddScrollListener(fn func(), passive bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, fn)
	e.passive = append(e.passive, passive)

	return nil
}

type fakeSurface struct {
	body     *fakeElement
	elements map[string]*fakeElement
	touches  []Element
	touchErr error
	panicOn  string
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{body: newFakeElement(), elements: make(map[string]*fakeElement)}
}

func (s *fakeSurface) Body() Element { return s.body }

func (s *fakeSurface) Query(selector string) (Element, bool) {
	if s.panicOn == "query" {
		panic("query exploded")
	}
	element, ok := s.elements[selector]
	if !ok {
		return nil, false
	}

	return element, true
}

func (s *fakeSurface) DispatchTouchStart(target Element) error {
	if s.panicOn == "touch" {
		panic("touch exploded")
	}
	s.touches = append(s.touches, target)

	return s.touchErr
}

type recorder struct {
	mu     sync.Mutex
	events []string
}

func (r *recorder) add(event string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recorder) list() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.events...)
}

type fakeStorage struct {
	name string
	rec  *recorder
	err  error
}

func (s *fakeStorage) Clear() error {
	s.rec.add("clear " + s.name)

	return s.err
}

type fakeBridge struct {
	rec     *recorder
	err     error
	doPanic bool
}

func (b *fakeBridge) Logout(context.Context) error {
	b.rec.add("bridge")
	if b.doPanic {
		panic("bridge exploded")
	}

	return b.err
}

type recordingTimer struct {
	delays []time.Duration
}

func (t *recordingTimer) AfterFunc(d time.Duration, fn func()) {
	t.delays = append(t.delays, d)
	fn()
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func webView(on bool) func() bool {
	return func() bool { return on }
}

func TestOptimizeTransitionOutsideWebViewRunsImmediately(t *testing.T) {
	surface := newFakeSurface()
	clock := NewFrameClock(time.Millisecond)
	coordinator := New(Params{InWebView: webView(false), Frames: clock, Surface: surface, Logger: discardLogger()})

	ran := false
	coordinator.OptimizeTransition(func() { ran = true })

	assert.True(t, ran)
	assert.Empty(t, surface.touches)
	assert.Zero(t, clock.Pending())
}

func TestOptimizeTransitionWaitsTwoFrames(t *testing.T) {
	surface := newFakeSurface()
	clock := NewFrameClock(time.Millisecond)
	coordinator := New(Params{InWebView: webView(true), Frames: clock, Surface: surface, Logger: discardLogger()})

	ran := false
	coordinator.OptimizeTransition(func() { ran = true })

	require.Len(t, surface.touches, 1)
	assert.Same(t, surface.body, surface.touches[0])
	assert.False(t, ran)

	clock.Tick()
	assert.False(t, ran, "callback must not run after a single frame")

	clock.Tick()
	assert.True(t, ran)
}

func TestOptimizeTransitionSwallowsTouchFailure(t *testing.T) {
	surface := newFakeSurface()
	surface.panicOn = "touch"
	coordinator := New(Params{InWebView: webView(true), Surface: surface, Logger: discardLogger()})

	ran := false
	assert.NotPanics(t, func() {
		coordinator.OptimizeTransition(func() { ran = true })
	})
	assert.True(t, ran)
}

func TestOptimizeDataLoading(t *testing.T) {
	t.Run("browser runs loader synchronously", func(t *testing.T) {
		timer := &recordingTimer{}
		coordinator := New(Params{InWebView: webView(false), Timer: timer, Surface: newFakeSurface(), Logger: discardLogger()})

		loaded := false
		coordinator.OptimizeDataLoading(func() { loaded = true }, 0)

		assert.True(t, loaded)
		assert.Empty(t, timer.delays)
	})

	t.Run("webview delays by default", func(t *testing.T) {
		timer := &recordingTimer{}
		coordinator := New(Params{InWebView: webView(true), Timer: timer, Surface: newFakeSurface(), Logger: discardLogger()})

		loaded := false
		coordinator.OptimizeDataLoading(func() { loaded = true }, 0)

		assert.True(t, loaded)
		assert.Equal(t, []time.Duration{DefaultDataLoadDelay}, timer.delays)
	})

	t.Run("webview honors explicit delay", func(t *testing.T) {
		timer := &recordingTimer{}
		coordinator := New(Params{InWebView: webView(true), Timer: timer, Surface: newFakeSurface(), Logger: discardLogger()})

		coordinator.OptimizeDataLoading(func() {}, 250*time.Millisecond)

		assert.Equal(t, []time.Duration{250 * time.Millisecond}, timer.delays)
	})
}

func TestOptimizeListRendering(t *testing.T) {
	t.Run("missing container calls done immediately", func(t *testing.T) {
		clock := NewFrameClock(time.Millisecond)
		coordinator := New(Params{InWebView: webView(true), Frames: clock, Surface: newFakeSurface(), Logger: discardLogger()})

		done := false
		coordinator.OptimizeListRendering("", func() { done = true })

		assert.True(t, done)
		assert.Zero(t, clock.Pending())
	})

	t.Run("forces reflow then repaints after two frames", func(t *testing.T) {
		surface := newFakeSurface()
		list := newFakeElement()
		surface.elements[DefaultListContainerSelector] = list
		clock := NewFrameClock(time.Millisecond)
		coordinator := New(Params{InWebView: webView(true), Frames: clock, Surface: surface, Logger: discardLogger()})

		done := false
		coordinator.OptimizeListRendering("", func() { done = true })

		assert.Equal(t, "0.99", list.styles["opacity"])
		assert.Equal(t, 1, list.reflows)
		assert.False(t, done)

		clock.Tick()
		clock.Tick()

		assert.True(t, done)
		assert.Equal(t, "1", list.styles["opacity"])
		assert.Equal(t, "translateZ(0)", list.styles["transform"])
		require.Len(t, surface.touches, 1)
		assert.Same(t, list, surface.touches[0])
	})

	t.Run("style failure still calls done", func(t *testing.T) {
		surface := newFakeSurface()
		list := newFakeElement()
		list.styleErr = errors.New("detached node")
		surface.elements["#menu"] = list
		coordinator := New(Params{InWebView: webView(true), Surface: surface, Logger: discardLogger()})

		done := false
		coordinator.OptimizeListRendering("#menu", func() { done = true })

		assert.True(t, done)
	})

	t.Run("query panic still calls done", func(t *testing.T) {
		surface := newFakeSurface()
		surface.panicOn = "query"
		coordinator := New(Params{InWebView: webView(true), Surface: surface, Logger: discardLogger()})

		done := false
		assert.NotPanics(t, func() {
			coordinator.OptimizeListRendering("", func() { done = true })
		})
		assert.True(t, done)
	})
}

func TestOptimizeScroll(t *testing.T) {
	surface := newFakeSurface()
	list := newFakeElement()
	surface.elements[DefaultListContainerSelector] = list
	coordinator := New(Params{InWebView: webView(true), Surface: surface, Logger: discardLogger()})

	require.True(t, coordinator.OptimizeScroll(""))
	assert.Equal(t, "touch", list.styles["-webkit-overflow-scrolling"])
	require.Len(t, list.listeners, 1)
	assert.True(t, list.passive[0])

	list.listeners[0]()
	assert.Equal(t, "translateZ(0)", list.styles["transform"])

	assert.False(t, New(Params{InWebView: webView(false), Surface: surface}).OptimizeScroll(""))
}

func TestOptimizeLogout(t *testing.T) {
	t.Run("no bridge runs callback directly", func(t *testing.T) {
		rec := &recorder{}
		coordinator := New(Params{
			InWebView:    webView(true),
			Surface:      newFakeSurface(),
			LocalStorage: &fakeStorage{name: "local", rec: rec},
			Logger:       discardLogger(),
		})

		coordinator.OptimizeLogout(context.Background(), func(context.Context) error {
			rec.add("logout")

			return nil
		})

		assert.Equal(t, []string{"logout"}, rec.list())
	})

	t.Run("bridge path clears storage once before callback", func(t *testing.T) {
		rec := &recorder{}
		timer := &recordingTimer{}
		coordinator := New(Params{
			InWebView:      webView(true),
			Timer:          timer,
			Surface:        newFakeSurface(),
			LocalStorage:   &fakeStorage{name: "local", rec: rec},
			SessionStorage: &fakeStorage{name: "session", rec: rec},
			LogoutBridge:   &fakeBridge{rec: rec},
			Logger:         discardLogger(),
		})

		coordinator.OptimizeLogout(context.Background(), func(context.Context) error {
			rec.add("logout")

			return nil
		})

		events := rec.list()
		require.Len(t, events, 4)
		assert.ElementsMatch(t, []string{"clear local", "clear session"}, events[:2])
		assert.Equal(t, []string{"bridge", "logout"}, events[2:])
		assert.Equal(t, []time.Duration{DefaultLogoutSettleDelay}, timer.delays)
	})

	t.Run("bridge failure still runs callback", func(t *testing.T) {
		for name, bridge := range map[string]*fakeBridge{
			"error": {err: errors.New("bridge gone")},
			"panic": {doPanic: true},
		} {
			t.Run(name, func(t *testing.T) {
				rec := &recorder{}
				bridge.rec = rec
				coordinator := New(Params{
					InWebView:    webView(true),
					Surface:      newFakeSurface(),
					LocalStorage: &fakeStorage{name: "local", rec: rec, err: errors.New("quota")},
					LogoutBridge: bridge,
					Logger:       discardLogger(),
				})

				assert.NotPanics(t, func() {
					coordinator.OptimizeLogout(context.Background(), func(context.Context) error {
						rec.add("logout")

						return nil
					})
				})
				assert.Equal(t, []string{"clear local", "bridge", "logout"}, rec.list())
			})
		}
	})

	t.Run("callback error and panic are contained", func(t *testing.T) {
		coordinator := New(Params{InWebView: webView(false), Logger: discardLogger()})

		assert.NotPanics(t, func() {
			coordinator.OptimizeLogout(context.Background(), func(context.Context) error {
				return errors.New("server said no")
			})
			coordinator.OptimizeLogout(context.Background(), func(context.Context) error {
				panic("boom")
			})
		})
	})

	t.Run("frame clock drives deferred callback", func(t *testing.T) {
		rec := &recorder{}
		clock := NewFrameClock(time.Millisecond)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go clock.Run(ctx)

		coordinator := New(Params{
			InWebView:    webView(true),
			Frames:       clock,
			Surface:      newFakeSurface(),
			LogoutBridge: &fakeBridge{rec: rec},
			Logger:       discardLogger(),
		})

		coordinator.OptimizeLogout(context.Background(), func(context.Context) error {
			rec.add("logout")

			return nil
		})

		assert.Equal(t, []string{"bridge", "logout"}, rec.list())
	})
}

// heldFrames keeps frame callbacks until release is called.
type heldFrames struct {
	mu  sync.Mutex
	fns []func()
}

func (h *heldFrames) RequestFrame(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.fns = append(h.fns, fn)
}

func (h *heldFrames) release() {
	h.mu.Lock()
	fns := h.fns
	h.fns = nil
	h.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

func TestOptimizeLogout_UndeliveredFrame(t *testing.T) {
	rec := &recorder{}
	frames := &heldFrames{}
	coordinator := New(Params{
		InWebView:    webView(true),
		Frames:       frames,
		Timer:        &recordingTimer{},
		Surface:      newFakeSurface(),
		LogoutBridge: &fakeBridge{rec: rec},
		Logger:       discardLogger(),
		Options:      Options{LogoutSettleDelay: 20 * time.Millisecond},
	})

	returned := make(chan struct{})
	go func() {
		defer close(returned)
		coordinator.OptimizeLogout(context.Background(), func(context.Context) error {
			rec.add("logout")

			return nil
		})
	}()

	select {
	case <-returned:
	case <-time.After(2 * time.Second):
		t.Fatal("OptimizeLogout blocked on a frame that never came")
	}
	assert.Equal(t, []string{"bridge", "logout"}, rec.list())

	// a late frame must not log out twice
	frames.release()
	assert.Equal(t, []string{"bridge", "logout"}, rec.list())
}

func TestOptimizeLogout_CancelledWhileWaitingForFrame(t *testing.T) {
	rec := &recorder{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	coordinator := New(Params{
		InWebView:    webView(true),
		Frames:       &heldFrames{},
		Surface:      newFakeSurface(),
		LogoutBridge: &fakeBridge{rec: rec},
		Logger:       discardLogger(),
		Options:      Options{LogoutSettleDelay: time.Minute},
	})

	coordinator.OptimizeLogout(ctx, func(context.Context) error {
		rec.add("logout")

		return nil
	})

	assert.Equal(t, []string{"bridge", "logout"}, rec.list())
}

func TestHintsFor(t *testing.T) {
	opts := Options{DataLoadDelay: 200 * time.Millisecond}

	browser := opts.HintsFor(false)
	assert.False(t, browser.Enabled)
	assert.Zero(t, browser.DataLoadDelayMs)
	assert.Equal(t, DefaultListContainerSelector, browser.ListContainerSelector)

	wv := opts.HintsFor(true)
	assert.True(t, wv.Enabled)
	assert.Equal(t, int64(200), wv.DataLoadDelayMs)
	assert.Equal(t, int64(150), wv.LogoutSettleDelayMs)
	assert.Equal(t, DefaultDeferFrames, wv.DeferFrames)
}

func TestFrameClockDefersNestedRequests(t *testing.T) {
	clock := NewFrameClock(0)
	var order []int

	clock.RequestFrame(func() {
		order = append(order, 1)
		clock.RequestFrame(func() { order = append(order, 2) })
	})

	assert.Equal(t, 1, clock.Tick())
	assert.Equal(t, []int{1}, order)
	assert.Equal(t, 1, clock.Tick())
	assert.Equal(t, []int{1, 2}, order)
}
