// Package engine is the façade implementing the §6 operation table end to
// end, composing the lower components behind a small set of entry points,
// the way a stateful top-level engine composes its sub-engines.
package engine

import (
	"github.com/itsuki-jitera/rail-track-app-sub005/correction"
	"github.com/itsuki-jitera/rail-track-app-sub005/geometry"
	"github.com/itsuki-jitera/rail-track-app-sub005/planedit"
	"github.com/itsuki-jitera/rail-track-app-sub005/restore"
	"github.com/itsuki-jitera/rail-track-app-sub005/session"
	"github.com/itsuki-jitera/rail-track-app-sub005/trackdata"
)

// Engine bundles a Session with the restoration, geometry and correction
// components, presenting the pipeline's top-level operations (§6) as methods.
type Engine struct {
	sess *session.Session
}

// New wraps a Session into an Engine. Use session.New to build one with
// the cancellation context and cache capacity this caller wants.
func New(sess *session.Session) *Engine {
	return &Engine{sess: sess}
}

// Restore implements the `restore` operation: resample, bandpass-filter
// and return the restored waveform.
func (e *Engine) Restore(s trackdata.Series, cfg restore.Config) (trackdata.ResampledSeries, error) {
	if err := e.sess.CheckCancelled(session.CheckpointResample); err != nil {
		return trackdata.ResampledSeries{}, err
	}
	r, err := restore.Restore(s, cfg)
	if err != nil {
		return trackdata.ResampledSeries{}, err
	}
	if err := e.sess.CheckCancelled(session.CheckpointFFT); err != nil {
		return trackdata.ResampledSeries{}, err
	}
	return r, nil
}

// Versine implements the `versine` operation.
func (e *Engine) Versine(r trackdata.ResampledSeries, chordLength float64, mode geometry.VersineMode) (trackdata.Series, error) {
	return geometry.Versine(r, chordLength, mode)
}

// EccentricVersine implements the `eccentric_versine` operation.
func (e *Engine) EccentricVersine(r trackdata.ResampledSeries, p, q float64) (trackdata.Series, error) {
	return geometry.EccentricVersine(r, p, q)
}

// Characteristic implements the `characteristic` operation, routed
// through the session's characteristic cache so repeated (p,q,λ) queries
// within one caller's lifetime are served from memory (§9).
func (e *Engine) Characteristic(p, q float64, wavelengths []float64) []trackdata.MeasurementCharacteristic {
	out := make([]trackdata.MeasurementCharacteristic, len(wavelengths))
	for i, lambda := range wavelengths {
		out[i] = e.sess.Cache().Get(p, q, lambda)
	}
	return out
}

// ConvertVersine implements the `convert_versine` operation.
func (e *Engine) ConvertVersine(r trackdata.ResampledSeries, p1, q1, p2, q2, lambda float64) (trackdata.Series, error) {
	return geometry.ConvertVersine(r, p1, q1, p2, q2, lambda)
}

// ZeroCrossings implements the `zero_crossings` operation.
func (e *Engine) ZeroCrossings(r trackdata.ResampledSeries, cfg geometry.ZeroCrossingConfig) []trackdata.ZeroCrossing {
	return geometry.DetectZeroCrossings(r, cfg)
}

// PlanLine implements the `plan_line` operation.
func (e *Engine) PlanLine(r trackdata.ResampledSeries, cfg geometry.PlanLineConfig) (trackdata.PlanLine, error) {
	if err := e.sess.CheckCancelled(session.CheckpointPlanLine); err != nil {
		return trackdata.PlanLine{}, err
	}
	return geometry.GeneratePlanLine(r, cfg)
}

// MovementConfig bundles the optional inputs to the `movement` operation:
// fixed-point anchors, movement limits, convex re-lowering and MTT chord
// correction.
type MovementConfig struct {
	FixedPoints       []float64
	FixedPointSupport float64
	Limits            *trackdata.MovementLimits
	MTT               *trackdata.MTTConfig
	MTTLining         bool

	// WorkSection, if set, is checked for short buffers (§3) and
	// contributes a WBufferShort diagnostic per short side; it does not
	// otherwise affect the computed movement.
	WorkSection *trackdata.WorkSection

	// Convex restricts movement to sections flagged convex (§4.5):
	// the plan is re-lowered wherever it would otherwise exceed restored,
	// forcing movement >= 0. Unset, movement is the plain
	// restored-minus-plan difference and may be negative (the track
	// moves down), bounded only by Limits.
	Convex bool
}

// MovementResult is the `movement` operation's output: the corrected
// movement series aligned with restored, plus the diagnostics accumulated
// along the way.
type MovementResult struct {
	Movement    []float64
	Plan        trackdata.PlanLine
	Diagnostics []trackdata.Diagnostic
}

// Movement implements the `movement` operation: fixed-point anchoring of
// the plan, raw movement (or convex re-lowering, when requested), MTT
// chord correction and cap/gradient enforcement, in that order (§4.5),
// followed by a re-check that every fixed point still has zero movement.
func (e *Engine) Movement(restored trackdata.ResampledSeries, plan trackdata.PlanLine, cfg MovementConfig) (MovementResult, error) {
	if err := e.sess.CheckCancelled(session.CheckpointCorrection); err != nil {
		return MovementResult{}, err
	}

	var diagnostics []trackdata.Diagnostic
	if cfg.WorkSection != nil {
		diagnostics = append(diagnostics, cfg.WorkSection.CheckBuffers()...)
	}

	workingPlan := plan
	if len(cfg.FixedPoints) > 0 {
		support := cfg.FixedPointSupport
		if support <= 0 {
			support = correction.DefaultFixedPointSupport
		}
		workingPlan = correction.ApplyFixedPoints(restored, plan, cfg.FixedPoints, support)
	}

	tau := workingPlan.Tau
	var movement []float64
	if cfg.Convex {
		workingPlan, movement = correction.EnforceConvexMovement(restored, workingPlan, tau)
	} else {
		movement = correction.RawMovement(restored, workingPlan)
	}

	if cfg.MTT != nil {
		result := correction.MTTCorrect(movement, tau, *cfg.MTT, cfg.MTTLining, cfg.Limits, restored.Distances())
		movement = result.Movement
		diagnostics = append(diagnostics, result.Diagnostics...)
	}

	if cfg.Limits != nil {
		var capDiagnostics []trackdata.Diagnostic
		movement, capDiagnostics = correction.ApplyCaps(movement, restored.Distances(), tau, *cfg.Limits)
		diagnostics = append(diagnostics, capDiagnostics...)
	}

	if len(cfg.FixedPoints) > 0 {
		if err := correction.VerifyFixedPoints(restored.Distances(), movement, cfg.FixedPoints); err != nil {
			return MovementResult{}, err
		}
	}

	return MovementResult{Movement: movement, Plan: workingPlan, Diagnostics: diagnostics}, nil
}

// Quality implements the `quality` operation.
func (e *Engine) Quality(restored trackdata.ResampledSeries, movement []float64, cfg correction.QualityConfig) (trackdata.QualityReport, error) {
	if err := e.sess.CheckCancelled(session.CheckpointQuality); err != nil {
		return trackdata.QualityReport{}, err
	}
	return correction.Quality(restored, movement, cfg), nil
}

// EditPlanLine implements the `edit_plan_line` operation by running op
// against ed's current plan line and, on success, pushing the result onto
// ed's undo history.
func (e *Engine) EditPlanLine(ed *planedit.Editor, op func(trackdata.PlanLine) (trackdata.PlanLine, error)) (trackdata.PlanLine, error) {
	next, err := op(ed.Current())
	if err != nil {
		return trackdata.PlanLine{}, err
	}
	ed.Do(next)
	return next, nil
}
