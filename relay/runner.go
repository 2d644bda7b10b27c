package relay

import (
	"errors"
	"time"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	errs "github.com/gisportal/go-portal-gateway/internal/errors"
	"github.com/gisportal/go-portal-gateway/session"
)

// Re-delivery delays after the frame's load event. Embedded apps that
// initialize asynchronously miss the first pass, so the same strategies
// run again after these fixed delays. There is no cancellation: a stale
// timer firing against a replaced frame fails with a detached/cross-origin
// error and is dropped.
var defaultRedeliveryDelays = []time.Duration{500 * time.Millisecond, 1500 * time.Millisecond}

// Runner drives the relay for one session: immediate delivery on attach,
// plus the fixed re-delivery schedule, plus inbound navigation handling.
type Runner struct {
	sess       session.Session
	opener     Opener
	strategies []Strategy
	delays     []time.Duration
	after      func(d time.Duration, f func())
}

type RunnerOption func(*Runner)

// WithStrategies overrides the strategy list (primarily for testing).
func WithStrategies(strategies ...Strategy) RunnerOption {
	return func(r *Runner) {
		r.strategies = strategies
	}
}

// WithAfterFunc replaces the timer used for re-delivery (for testing).
func WithAfterFunc(after func(d time.Duration, f func())) RunnerOption {
	return func(r *Runner) {
		r.after = after
	}
}

func NewRunner(sess session.Session, opener Opener, options ...RunnerOption) *Runner {
	r := &Runner{
		sess:       sess,
		opener:     opener,
		strategies: Strategies(),
		delays:     defaultRedeliveryDelays,
		after: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// Attach runs every strategy against the freshly loaded frame and
// schedules the fixed re-deliveries. The returned error only reports
// programming errors from the immediate pass; scheduled passes log
// instead, having no caller left to report to.
func (r *Runner) Attach(frame Frame) error {
	attemptID := uuid.New().String()
	err := r.deliver(frame, attemptID)
	for _, delay := range r.delays {
		delay := delay
		r.after(delay, func() {
			if err := r.deliver(frame, attemptID); err != nil {
				log.Error().Err(err).Str("attempt_id", attemptID).Dur("delay", delay).Msg("token relay re-delivery failed")
			}
		})
	}
	return err
}

// deliver tries every strategy regardless of individual outcomes.
// Cross-origin and detached-frame failures are the expected case and are
// logged at debug only; anything else is a programming error and is
// collected and returned.
func (r *Runner) deliver(frame Frame, attemptID string) error {
	var failures []error
	for _, strategy := range r.strategies {
		err := strategy.Deliver(frame, r.sess)
		switch {
		case err == nil:
		case errors.Is(err, errs.ErrCrossOrigin), errors.Is(err, errs.ErrFrameDetached):
			log.Debug().Str("strategy", strategy.Name()).Str("attempt_id", attemptID).Msg("frame not reachable, skipping strategy")
		default:
			failures = append(failures, pkgerrors.Wrapf(err, "[Runner.deliver] strategy %q", strategy.Name()))
		}
	}
	return errors.Join(failures...)
}

// HandleMessage reacts to inbound frame messages. Navigation requests are
// opened in a new top-level browsing context; every other message type is
// ignored.
func (r *Runner) HandleMessage(msg Message) error {
	switch msg.Type {
	case TypeLinkClick, TypeNavigation:
		if msg.URL == "" {
			return nil
		}
		return pkgerrors.Wrap(r.opener.Open(msg.URL), "[Runner.HandleMessage] open")
	}
	return nil
}
