package systems

import (
	cfg "github.com/automoto/dancing-bear/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// engineTPS returns the fixed update rate the engine is running at.
func engineTPS() float64 {
	tps := ebiten.TPS()
	if tps <= 0 {
		// SyncWithFPS: fall back to the configured rate
		tps = cfg.Window.TPS
	}
	return float64(tps)
}

// FrameDelta is the per-update delta in reference frames: 1.0 when the engine
// runs at the reference frame rate, 2.0 when it runs at half of it.
func FrameDelta() float64 {
	return DeltaFor(cfg.Orbit.ReferenceFrameRate, engineTPS())
}

// FrameSeconds is the wall time covered by one update.
func FrameSeconds() float32 {
	return float32(1 / engineTPS())
}

// DeltaFor converts an update rate into a delta relative to referenceRate.
func DeltaFor(referenceRate, tps float64) float64 {
	if tps <= 0 {
		return 1
	}
	return referenceRate / tps
}
