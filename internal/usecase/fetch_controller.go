package usecase

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const DefaultFetchTimeout = 10 * time.Second

// Phase is the display state of a FetchController. Success and failure are
// both idle: no request is in flight.
type Phase string

const (
	PhaseLoading Phase = "loading"
	PhaseSuccess Phase = "success"
	PhaseFailure Phase = "failure"
)

// Result is the outcome of one fetch: a value or an error, never both.
type Result[T any] struct {
	Value T
	Err   error
}

func (r Result[T]) OK() bool { return r.Err == nil }

// FetchFunc performs the network request for a parameter.
type FetchFunc[P comparable, T any] func(ctx context.Context, param P) (T, error)

// FetchState is an immutable snapshot of a controller.
type FetchState[P comparable, T any] struct {
	Phase      Phase
	Loading    bool
	Err        string
	Cause      error
	Data       T
	HasData    bool
	Param      P
	Generation uint64
}

type ControllerOptions struct {
	Name    string
	Timeout time.Duration
	Logger  *zap.Logger
	// ClearOnChange drops held data when the parameter changes, so data of one
	// parameter is never shown for another. Refresh always keeps data.
	ClearOnChange bool
}

// FetchController issues one request per parameter change and tracks the
// loading/error/data state around it. A newer request supersedes an older one:
// the older context is cancelled and its result, if it still arrives, is
// dropped. Prior data survives a failed request.
type FetchController[P comparable, T any] struct {
	fetch         FetchFunc[P, T]
	name          string
	timeout       time.Duration
	logger        *zap.Logger
	clearOnChange bool

	mu          sync.Mutex
	state       FetchState[P, T]
	hasParam    bool
	cancel      context.CancelFunc
	settled     chan struct{}
	subscribers []func(FetchState[P, T])
	closed      bool
}

func NewFetchController[P comparable, T any](fetch FetchFunc[P, T], opts ControllerOptions) *FetchController[P, T] {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultFetchTimeout
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	// A view starts out loading; its first SetParam issues the request.
	return &FetchController[P, T]{
		fetch:         fetch,
		name:          opts.Name,
		timeout:       opts.Timeout,
		logger:        opts.Logger,
		clearOnChange: opts.ClearOnChange,
		state:         FetchState[P, T]{Phase: PhaseLoading, Loading: true},
		settled:       make(chan struct{}),
	}
}

// SetParam starts a request for param unless param is already current.
// It reports whether a request was issued.
func (c *FetchController[P, T]) SetParam(param P) bool {
	c.mu.Lock()
	if c.closed || (c.hasParam && c.state.Param == param) {
		c.mu.Unlock()
		return false
	}
	if c.hasParam && c.clearOnChange {
		var zero T
		c.state.Data = zero
		c.state.HasData = false
		c.state.Err = ""
		c.state.Cause = nil
	}
	c.hasParam = true
	c.state.Param = param
	c.startLocked()
	return true
}

// Refresh re-issues the request for the current parameter.
func (c *FetchController[P, T]) Refresh() bool {
	c.mu.Lock()
	if c.closed || !c.hasParam {
		c.mu.Unlock()
		return false
	}
	c.startLocked()
	return true
}

// startLocked must be called with mu held; it releases it.
func (c *FetchController[P, T]) startLocked() {
	if c.cancel != nil {
		c.cancel()
	}
	// Wake waiters of the superseded generation so they pick up the new one.
	if c.state.Generation > 0 && c.state.Loading {
		close(c.settled)
		c.settled = make(chan struct{})
	}

	c.state.Generation++
	c.state.Phase = PhaseLoading
	c.state.Loading = true

	gen := c.state.Generation
	param := c.state.Param
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	c.cancel = cancel
	snapshot := c.state
	subs := c.subscribers
	c.mu.Unlock()

	c.logger.Debug("fetch started", zap.String("controller", c.name), zap.Uint64("generation", gen))
	notify(subs, snapshot)

	go func() {
		defer cancel()
		value, err := c.fetch(ctx, param)
		if err != nil && ctx.Err() == context.DeadlineExceeded {
			err = ErrRequestTimeout
		}
		c.settle(gen, Result[T]{Value: value, Err: err})
	}()
}

func (c *FetchController[P, T]) settle(gen uint64, res Result[T]) {
	c.mu.Lock()
	if gen != c.state.Generation || c.closed {
		c.mu.Unlock()
		c.logger.Debug("discarding stale response",
			zap.String("controller", c.name),
			zap.Uint64("generation", gen),
		)
		return
	}

	if res.OK() {
		c.state.Phase = PhaseSuccess
		c.state.Data = res.Value
		c.state.HasData = true
		c.state.Err = ""
		c.state.Cause = nil
	} else {
		c.state.Phase = PhaseFailure
		c.state.Err = UserMessage(res.Err)
		c.state.Cause = res.Err
		c.logger.Warn("fetch failed",
			zap.String("controller", c.name),
			zap.Uint64("generation", gen),
			zap.Error(res.Err),
		)
	}
	c.state.Loading = false
	c.cancel = nil
	close(c.settled)
	c.settled = make(chan struct{})

	snapshot := c.state
	subs := c.subscribers
	c.mu.Unlock()

	notify(subs, snapshot)
}

func notify[P comparable, T any](subs []func(FetchState[P, T]), s FetchState[P, T]) {
	for _, fn := range subs {
		fn(s)
	}
}

// State returns the current snapshot.
func (c *FetchController[P, T]) State() FetchState[P, T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Wait blocks until the current request settles or ctx is done. If no request
// has been issued yet it returns immediately.
func (c *FetchController[P, T]) Wait(ctx context.Context) (FetchState[P, T], error) {
	for {
		c.mu.Lock()
		if !c.state.Loading || !c.hasParam || c.closed {
			s := c.state
			c.mu.Unlock()
			return s, nil
		}
		ch := c.settled
		c.mu.Unlock()

		select {
		case <-ch:
		case <-ctx.Done():
			return c.State(), ctx.Err()
		}
	}
}

// Subscribe registers fn to be called after every transition. Callbacks run
// on the goroutine that caused the transition and must not block.
func (c *FetchController[P, T]) Subscribe(fn func(FetchState[P, T])) {
	c.mu.Lock()
	defer c.mu.Unlock()
	subs := make([]func(FetchState[P, T]), len(c.subscribers), len(c.subscribers)+1)
	copy(subs, c.subscribers)
	c.subscribers = append(subs, fn)
}

// Close cancels any in-flight request. Later results are dropped.
func (c *FetchController[P, T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	close(c.settled)
	c.settled = make(chan struct{})
}
