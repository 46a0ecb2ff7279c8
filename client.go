// Copyright 2026 The asynchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package asynchttp

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/gogama/asynchttp/failure"
	"github.com/gogama/asynchttp/request"
)

// DefaultTimeout is the network timeout of a new Client.
const DefaultTimeout = 30 * time.Second

var (
	// ErrUnknownBackend is wrapped by the error New returns when asked
	// for a backend name it does not know.
	ErrUnknownBackend = errors.New("asynchttp: unknown backend")
	// ErrClosed is wrapped by the failure every verb method resolves
	// its Future with after the Client has been closed.
	ErrClosed = errors.New("asynchttp: client closed")
)

var emptyHandlers = HandlerGroup{}

// A Client is an asynchronous HTTP client which dispatches every
// request to one backend chosen at construction time.
//
// Each verb method returns immediately with a Future and performs the
// network operation on a new goroutine. There is no pool, no queue and
// no limit on the number of outstanding requests. The only timeout
// enforced is the network timeout set with SetTimeout.
//
// The Client holds a single lock guarding its timeout setting and, for
// Serialized backends, the backend's shared engine handle. See
// Discipline for how long the lock is held during a round trip.
//
// Client is safe for concurrent use by multiple goroutines. Create one
// with New, NewFromConfig or NewWithBackend; the zero value is not
// usable.
type Client struct {
	mu      sync.Mutex
	timeout time.Duration

	backend    Backend
	discipline Discipline
	caps       Capabilities
	handlers   *HandlerGroup
	logger     zerolog.Logger

	lifeMu   sync.Mutex
	closed   bool
	inflight sync.WaitGroup
}

// An Option configures a Client at construction time.
type Option func(*options)

type options struct {
	timeout  time.Duration
	logger   zerolog.Logger
	handlers *HandlerGroup
}

// WithTimeout sets the initial network timeout. It panics if d is
// negative.
func WithTimeout(d time.Duration) Option {
	checkTimeout(d)
	return func(o *options) {
		o.timeout = d
	}
}

// WithLogger sets the logger the Client, and its backend, log to. By
// default nothing is logged.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithHandlers installs event handlers in the Client.
func WithHandlers(g *HandlerGroup) Option {
	return func(o *options) {
		o.handlers = g
	}
}

func buildOptions(opts []Option) *options {
	o := &options{
		timeout: DefaultTimeout,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// New returns a Client using the backend registered under name. See
// Backends for the accepted names.
//
// Asking for an unknown backend is a configuration error: New returns
// an error wrapping ErrUnknownBackend, and no Client.
func New(name string, opts ...Option) (*Client, error) {
	reg, ok := registry[name]
	if !ok {
		return nil, &failure.Error{
			Kind:    failure.Invalid,
			Message: fmt.Sprintf("unknown backend %q (known backends: %v)", name, Backends()),
			Err:     ErrUnknownBackend,
		}
	}
	o := buildOptions(opts)
	c := newClient(reg.factory(o), reg.discipline, o)
	c.caps = reg.caps
	return c, nil
}

// MustNew is like New but panics if the backend name is unknown.
func MustNew(name string, opts ...Option) *Client {
	c, err := New(name, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// NewWithBackend returns a Client using the given backend and lock
// discipline. The Client reports zero Capabilities.
func NewWithBackend(b Backend, d Discipline, opts ...Option) *Client {
	if b == nil {
		panic("asynchttp: nil backend")
	}
	return newClient(b, d, buildOptions(opts))
}

func newClient(b Backend, d Discipline, o *options) *Client {
	return &Client{
		timeout:    truncate(o.timeout),
		backend:    b,
		discipline: d,
		handlers:   o.handlers,
		logger:     o.logger.With().Str("backend", b.Name()).Logger(),
	}
}

// Get starts a GET of the specified URI.
func (c *Client) Get(uri string, headers ...string) *Future {
	return c.dispatch(request.GET, uri, nil, headers)
}

// Put starts a PUT of body to the specified URI.
func (c *Client) Put(uri string, body []byte, headers ...string) *Future {
	return c.dispatch(request.PUT, uri, body, headers)
}

// Post starts a POST of body to the specified URI.
func (c *Client) Post(uri string, body []byte, headers ...string) *Future {
	return c.dispatch(request.POST, uri, body, headers)
}

// Patch starts a PATCH of body to the specified URI.
func (c *Client) Patch(uri string, body []byte, headers ...string) *Future {
	return c.dispatch(request.PATCH, uri, body, headers)
}

// Delete starts a DELETE of the specified URI.
func (c *Client) Delete(uri string, headers ...string) *Future {
	return c.dispatch(request.DELETE, uri, nil, headers)
}

// SetTimeout sets the network timeout for requests whose round trip
// starts after the call. The timeout has millisecond granularity; any
// sub-millisecond remainder is dropped. A zero timeout means no
// timeout. SetTimeout panics if d is negative.
func (c *Client) SetTimeout(d time.Duration) {
	checkTimeout(d)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.timeout = truncate(d)
}

// Timeout returns the current network timeout.
func (c *Client) Timeout() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.timeout
}

// Backend returns the name of the Client's backend.
func (c *Client) Backend() string {
	return c.backend.Name()
}

// Discipline returns the Client's lock discipline.
func (c *Client) Discipline() Discipline {
	return c.discipline
}

// Capabilities returns the capabilities of the Client's backend.
func (c *Client) Capabilities() Capabilities {
	return c.caps
}

// Close waits for every outstanding request to complete, then
// releases the backend's resources. Verb methods called after Close
// resolve immediately with a Generic failure wrapping ErrClosed.
// Calling Close more than once is harmless.
func (c *Client) Close() error {
	c.lifeMu.Lock()
	if c.closed {
		c.lifeMu.Unlock()
		return nil
	}
	c.closed = true
	c.lifeMu.Unlock()

	c.inflight.Wait()
	return c.backend.Close()
}

func (c *Client) dispatch(m request.Method, uri string, body []byte, headers []string) *Future {
	p, err := request.NewPlan(m, uri, body, headers...)
	if err != nil {
		return failed(failure.Wrap(m.String(), uri, err))
	}
	if !c.begin() {
		return failed(failure.WrapKind(failure.Generic, m.String(), uri, ErrClosed))
	}

	f := newFuture()
	e := request.NewExecution(p, c.backend.Name())
	go c.run(e, f)
	return f
}

func (c *Client) begin() bool {
	c.lifeMu.Lock()
	defer c.lifeMu.Unlock()
	if c.closed {
		return false
	}
	c.inflight.Add(1)
	return true
}

func (c *Client) run(e *request.Execution, f *Future) {
	defer c.inflight.Done()
	defer func() {
		f.resolve(e.Response, e.Err)
	}()

	handlers := c.handlers
	if handlers == nil {
		handlers = &emptyHandlers
	}
	fire := func(evt Event) {
		handlers.run(evt, e, func(v interface{}) {
			c.logger.Error().
				Str("id", e.ID).
				Str("event", evt.Name()).
				Interface("panic", v).
				Msg("handler panicked")
		})
	}
	fire(BeforeExecution)
	c.logger.Debug().
		Str("id", e.ID).
		Str("method", e.Plan.Method.String()).
		Str("uri", e.Plan.URI).
		Int("headers", len(e.Plan.Header)).
		Int("body_bytes", len(e.Plan.Body)).
		Msg("dispatching request")

	c.roundTrip(e)

	if e.Err != nil {
		kind, _ := e.Kind()
		c.logger.Debug().
			Str("id", e.ID).
			Str("kind", kind.String()).
			Dur("elapsed", e.Duration()).
			Err(e.Err).
			Msg("request failed")
		fire(AfterFailure)
	} else {
		c.logger.Debug().
			Str("id", e.ID).
			Int("status", e.StatusCode()).
			Int("response_bytes", len(e.Response.Body)).
			Dur("elapsed", e.Duration()).
			Msg("request completed")
		fire(AfterResponse)
	}
	fire(AfterExecution)
}

// roundTrip invokes the backend under the Client's lock discipline and
// records the outcome in e. A panicking backend produces a Generic
// failure.
func (c *Client) roundTrip(e *request.Execution) {
	c.mu.Lock()
	e.Timeout = c.timeout
	if c.discipline == Serialized {
		defer c.mu.Unlock()
	} else {
		c.mu.Unlock()
	}

	op, uri := e.Plan.Method.String(), e.Plan.URI
	defer func() {
		if r := recover(); r != nil {
			e.Response = nil
			e.Err = failure.WrapKind(failure.Generic, op, uri, fmt.Errorf("backend panic: %v", r))
		}
		e.End = time.Now()
	}()

	e.Start = time.Now()
	resp, err := c.backend.Do(e.Plan, e.Timeout)
	switch {
	case err != nil:
		e.Err = failure.Wrap(op, uri, err)
	case resp == nil:
		e.Err = failure.WrapKind(failure.Invalid, op, uri, errors.New("backend returned no response"))
	default:
		e.Response = resp
	}
}

func checkTimeout(d time.Duration) {
	if d < 0 {
		panic("asynchttp: negative timeout")
	}
}

func truncate(d time.Duration) time.Duration {
	return d.Truncate(time.Millisecond)
}
