package correction

import (
	"math"
	"math/rand"
	"sync"

	approx "github.com/cwbudde/algo-approx"
	"github.com/cwbudde/mayfly"

	"github.com/itsuki-jitera/rail-track-app-sub005/trackdata"
)

// MTTTolerance is the target residual between the MTT chord-perceived
// movement and the desired movement (mm), per §4.5.
const MTTTolerance = 1e-3

// MTTMaxIterations bounds the damped fixed-point loop (§9: chosen as a
// reasonable starting point for an otherwise implementation-defined
// iteration cap).
const MTTMaxIterations = 50

// mttBaseDamping is the initial step fraction applied to the residual each
// iteration (§9: chosen as a reasonable starting point for an otherwise
// implementation-defined damping factor).
const mttBaseDamping = 0.5

// machineBias holds the per-machine-type front/rear perception bias that
// the tamper's chord guidance adds on top of the geometric chord
// transform (§4.5, glossary "BC/CD chords"). Values are implementation-
// defined placeholders pending authoritative per-machine specifications.
var machineBias = map[string]struct{ front, rear float64 }{
	"08-16": {front: 0.02, rear: -0.01},
	"09-3X": {front: 0.015, rear: -0.015},
}

func biasFor(machineType string) (front, rear float64) {
	b, ok := machineBias[machineType]
	if !ok {
		return 0, 0
	}
	return b.front, b.rear
}

// chordResponse computes the realized/perceived movement for one chord
// pair (BC, CD), combining both half-chord versine-style transforms with
// the machine's front/rear bias (§4.5). Per §4.7, a windowed operation
// outputs exactly 0 where its window doesn't fit the index; the bias term
// only applies alongside the chord transform it biases, so it is gated by
// the same window-validity condition as bc/cd rather than added
// unconditionally.
func chordResponse(m []float64, tau, bcLen, cdLen float64, frontBias, rearBias float64) []float64 {
	nBC := round(bcLen / (2 * tau))
	nCD := round(cdLen / (2 * tau))
	out := make([]float64, len(m))
	for i := range m {
		var bc, cd float64
		bcValid := i-nBC >= 0 && i+nBC < len(m)
		cdValid := i-nCD >= 0 && i+nCD < len(m)
		if bcValid {
			bc = (m[i-nBC]+m[i+nBC])/2 - m[i] + frontBias
		}
		if cdValid {
			cd = (m[i-nCD]+m[i+nCD])/2 - m[i] - rearBias
		}
		if !bcValid && !cdValid {
			out[i] = 0
			continue
		}
		out[i] = 0.5*bc + 0.5*cd
	}
	return out
}

// round implements banker's rounding (round-half-to-even), matching the
// convention geometry.round uses for chord half-counts (§4.7).
func round(x float64) int {
	return int(math.RoundToEven(x))
}

// MTTResult is the outcome of chord-induced movement correction.
type MTTResult struct {
	Movement    []float64
	Converged   bool
	Diagnostics []trackdata.Diagnostic
}

// MTTCorrect iteratively adjusts m_target so that the configured tamper's
// chord-perceived movement approaches m_target within MTTTolerance,
// using a damped fixed-point iteration (§4.5). Caps (if limits is
// non-nil) are re-applied after every iteration so the search never
// drifts outside them. If the damped iteration fails to converge within
// MTTMaxIterations, a bounded mayfly search is tried as a fallback before
// returning the best-effort movement with a ConvergenceWarning (§7 item 3).
func MTTCorrect(target []float64, tau float64, mtt trackdata.MTTConfig, lining bool, limits *trackdata.MovementLimits, distances []float64) MTTResult {
	bcLen, cdLen := mtt.LevelingBC, mtt.LevelingCD
	if lining {
		bcLen, cdLen = mtt.LiningBC, mtt.LiningCD
	}
	front, rear := biasFor(mtt.MachineType)

	cmd := append([]float64(nil), target...)
	var converged bool
	for iter := 0; iter < MTTMaxIterations; iter++ {
		realized := chordResponse(cmd, tau, bcLen, cdLen, front, rear)
		maxErr, errVec := residual(target, realized)
		if maxErr < MTTTolerance {
			converged = true
			break
		}
		damping := mttBaseDamping * float64(approx.FastExp(float32(-0.02*float64(iter))))
		for i := range cmd {
			cmd[i] -= damping * errVec[i]
		}
		if limits != nil {
			cmd, _ = ApplyCaps(cmd, distances, tau, *limits)
		}
	}

	var diags []trackdata.Diagnostic
	if !converged {
		fallback, fallbackOK := mttMayflyFallback(cmd, target, tau, bcLen, cdLen, front, rear)
		if fallbackOK {
			cmd = fallback
		}
		diags = append(diags, trackdata.Diagnostic{
			Code:    trackdata.WConvergence,
			Message: "MTT chord correction did not converge within tolerance; returning best-effort movement",
		})
	}

	return MTTResult{Movement: cmd, Converged: converged, Diagnostics: diags}
}

func residual(target, realized []float64) (float64, []float64) {
	errVec := make([]float64, len(target))
	maxErr := 0.0
	for i := range target {
		e := target[i] - realized[i]
		errVec[i] = e
		if a := absf(e); a > maxErr {
			maxErr = a
		}
	}
	return maxErr, errVec
}

// mttMayflyFallback searches, via a bounded mayfly swarm, for a scaling of
// the current best-effort command vector that reduces the residual
// further before the engine gives up and reports ConvergenceWarning.
func mttMayflyFallback(cmd, target []float64, tau, bcLen, cdLen, front, rear float64) ([]float64, bool) {
	cfg := mayfly.NewDefaultConfig()
	cfg.ProblemSize = 1
	cfg.LowerBound = 0.5
	cfg.UpperBound = 1.5
	cfg.MaxIterations = 20
	cfg.NPop = 10
	cfg.NPopF = 10
	cfg.NC = 20
	cfg.NM = 1
	cfg.Rand = rand.New(rand.NewSource(1))

	var mu sync.Mutex
	bestScale := 1.0
	bestErr := evalScale(cmd, target, tau, bcLen, cdLen, front, rear, bestScale)

	cfg.ObjectiveFunc = func(pos []float64) float64 {
		scale := pos[0]
		e := evalScale(cmd, target, tau, bcLen, cdLen, front, rear, scale)
		mu.Lock()
		if e < bestErr {
			bestErr = e
			bestScale = scale
		}
		mu.Unlock()
		return e
	}

	if _, err := mayfly.Optimize(cfg); err != nil {
		return nil, false
	}

	out := make([]float64, len(cmd))
	for i, v := range cmd {
		out[i] = v * bestScale
	}
	return out, true
}

func evalScale(cmd, target []float64, tau, bcLen, cdLen, front, rear, scale float64) float64 {
	scaled := make([]float64, len(cmd))
	for i, v := range cmd {
		scaled[i] = v * scale
	}
	realized := chordResponse(scaled, tau, bcLen, cdLen, front, rear)
	sum := 0.0
	for i := range target {
		d := target[i] - realized[i]
		sum += d * d
	}
	return sum
}
