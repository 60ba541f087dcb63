// Package editor holds the current civil date/time being edited and keeps it
// in step with a UTC Julian Day.
//
// Edits arrive as raw, possibly out-of-range field values. Each one runs
// through a single pipeline: normalize, convert to a local Julian Day, shift
// to UTC, store, then notify subscribers. External UTC Julian Days run the
// reverse pipeline.
package editor

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/codeGROOVE-dev/jdcal/pkg/civil"
	"github.com/codeGROOVE-dev/jdcal/pkg/constants"
	"github.com/codeGROOVE-dev/jdcal/pkg/julian"
	"github.com/codeGROOVE-dev/jdcal/pkg/timezone"
	"github.com/codeGROOVE-dev/jdcal/pkg/tzconvert"
)

// Update describes a published change to the editor's state.
type Update struct {
	Local civil.DateTime `json:"local"`
	UTC   float64        `json:"utc_jd"`
	// Field is the field whose edit triggered the update, or civil.NoField
	// for whole-value and external updates.
	Field civil.Field `json:"-"`
	// Normalized is true when rollover changed the submitted fields.
	Normalized bool `json:"normalized"`
	// External is true for updates from SetUTC.
	External bool `json:"external"`
}

type subscriber struct {
	id int
	fn func(Update)
}

// Editor owns the only mutable copy of the current date/time. All methods
// are safe for concurrent use. Updates are delivered in commit order, each
// to every subscriber in subscription order. Reads are not blocked by a
// slow subscriber, but a subscriber must not call Apply, Edit or SetUTC.
type Editor struct {
	logger   *slog.Logger
	resolver tzconvert.OffsetResolver
	subs     []subscriber
	current  civil.DateTime
	utc      float64
	nextID   int
	mu       sync.Mutex // guards the fields above
	deliver  sync.Mutex // held from commit through notify
}

// Option configures an Editor.
type Option func(*OptionHolder)

// OptionHolder holds configuration options.
type OptionHolder struct {
	logger   *slog.Logger
	resolver tzconvert.OffsetResolver
	initial  *float64
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *OptionHolder) {
		o.logger = logger
	}
}

// WithResolver sets the UTC offset resolver. The default is UTC.
func WithResolver(r tzconvert.OffsetResolver) Option {
	return func(o *OptionHolder) {
		o.resolver = r
	}
}

// WithUTC sets the initial UTC Julian Day. The default is J2000.0.
func WithUTC(jd float64) Option {
	return func(o *OptionHolder) {
		o.initial = &jd
	}
}

// New creates an Editor.
func New(opts ...Option) (*Editor, error) {
	o := &OptionHolder{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.resolver == nil {
		o.resolver = timezone.Fixed(0)
	}

	e := &Editor{logger: o.logger, resolver: o.resolver}
	jd := constants.J2000
	if o.initial != nil {
		jd = *o.initial
	}
	if _, err := e.SetUTC(jd); err != nil {
		return nil, fmt.Errorf("initial julian day: %w", err)
	}
	return e, nil
}

// Current returns the current local civil date/time, always normalized.
func (e *Editor) Current() civil.DateTime {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current
}

// UTC returns the current UTC Julian Day.
func (e *Editor) UTC() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.utc
}

// Apply replaces all six fields with raw values, normalizes them, publishes
// the result and returns the UTC Julian Day.
func (e *Editor) Apply(dt civil.DateTime) float64 {
	e.deliver.Lock()
	defer e.deliver.Unlock()

	e.mu.Lock()
	u := e.commit(dt, civil.NoField)
	subs := e.subscribers()
	e.mu.Unlock()

	notify(subs, u)
	return u.UTC
}

// Edit sets one field to a raw value and runs the result through the same
// pipeline as Apply. An edit that leaves the field unchanged publishes
// nothing.
func (e *Editor) Edit(f civil.Field, v int) float64 {
	e.deliver.Lock()
	defer e.deliver.Unlock()

	e.mu.Lock()
	if f == civil.NoField || e.current.Get(f) == v {
		utc := e.utc
		e.mu.Unlock()
		return utc
	}
	u := e.commit(e.current.With(f, v), f)
	subs := e.subscribers()
	e.mu.Unlock()

	notify(subs, u)
	return u.UTC
}

// commit normalizes dt, derives the UTC Julian Day and stores both.
// e.mu must be held.
func (e *Editor) commit(dt civil.DateTime, f civil.Field) Update {
	local, changed := civil.Normalize(dt)
	if changed {
		e.logger.Debug("fields rolled over", "field", f.String(), "from", dt.String(), "to", local.String())
	}
	utc := tzconvert.LocalToUTC(julian.FromCivil(local), e.resolver)

	e.current = local
	e.utc = utc
	return Update{Local: local, UTC: utc, Field: f, Normalized: changed}
}

// SetUTC sets the state from an external UTC Julian Day and returns the
// local civil fields for display. A Julian Day that is not finite, or that
// the resolver shifts out of range, fails with julian.ErrInvalidArgument and
// leaves the state untouched.
func (e *Editor) SetUTC(jd float64) (civil.DateTime, error) {
	if err := julian.Validate(jd); err != nil {
		return civil.DateTime{}, err
	}
	local, err := julian.ToCivil(tzconvert.UTCToLocal(jd, e.resolver))
	if err != nil {
		return civil.DateTime{}, err
	}

	e.deliver.Lock()
	defer e.deliver.Unlock()

	e.mu.Lock()
	e.current = local
	e.utc = jd
	subs := e.subscribers()
	e.mu.Unlock()

	e.logger.Debug("set from external julian day", "utc_jd", jd, "local", local.String())
	notify(subs, Update{Local: local, UTC: jd, External: true})
	return local, nil
}

// Subscribe registers fn to receive every published Update. The returned
// function removes the subscription.
func (e *Editor) Subscribe(fn func(Update)) (cancel func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.nextID++
	id := e.nextID
	e.subs = append(e.subs, subscriber{id: id, fn: fn})

	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		for i, s := range e.subs {
			if s.id == id {
				e.subs = append(e.subs[:i:i], e.subs[i+1:]...)
				return
			}
		}
	}
}

// subscribers returns a snapshot of the subscriber list. e.mu must be held.
func (e *Editor) subscribers() []subscriber {
	return append([]subscriber(nil), e.subs...)
}

func notify(subs []subscriber, u Update) {
	for _, s := range subs {
		s.fn(u)
	}
}
