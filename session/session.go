// Package session provides the per-caller session object described in
// spec §5/§9: a bounded LRU cache of measurement characteristics, an
// optional structured-logging handle, and cooperative cancellation
// checked at the pipeline's well-defined checkpoints. None of this state
// is global; every pipeline invocation owns (or is handed) its own
// Session rather than relying on package-level state.
package session

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/itsuki-jitera/rail-track-app-sub005/trackerr"
)

// Checkpoint names one of the well-defined points at which a long
// operation checks its abort token (§5).
type Checkpoint string

const (
	CheckpointResample   Checkpoint = "resample"
	CheckpointFFT        Checkpoint = "fft"
	CheckpointFilter     Checkpoint = "filter"
	CheckpointIFFT       Checkpoint = "ifft"
	CheckpointPlanLine   Checkpoint = "plan_line"
	CheckpointCorrection Checkpoint = "correction"
	CheckpointQuality    Checkpoint = "quality"
)

// Session bundles the ambient state one pipeline call may need: a
// characteristic cache, an optional logger, and a cancellation context.
type Session struct {
	ctx    context.Context
	cache  *CharacteristicCache
	logger *log.Logger
}

// New creates a Session with the given context (use context.Background()
// if cancellation is not needed) and a characteristic cache of the given
// capacity. A nil logger disables logging, per §9 ("Logging and telemetry
// are passed as a handle if needed").
func New(ctx context.Context, cacheCapacity int, logger *log.Logger) *Session {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Session{ctx: ctx, cache: NewCharacteristicCache(cacheCapacity), logger: logger}
}

// Cache returns the session's characteristic cache.
func (s *Session) Cache() *CharacteristicCache { return s.cache }

// Logger returns the session's logger handle, or nil if none was set.
func (s *Session) Logger() *log.Logger { return s.logger }

// CheckCancelled returns trackerr.ErrCancelled if the session's context
// has been cancelled, and logs the checkpoint at debug level otherwise.
func (s *Session) CheckCancelled(cp Checkpoint) error {
	select {
	case <-s.ctx.Done():
		if s.logger != nil {
			s.logger.Warn("pipeline cancelled", "checkpoint", string(cp))
		}
		return trackerr.ErrCancelled
	default:
		if s.logger != nil {
			s.logger.Debug("checkpoint reached", "checkpoint", string(cp))
		}
		return nil
	}
}
