package systems

import (
	"math"
	"testing"

	"github.com/automoto/dancing-bear/components"
	cfg "github.com/automoto/dancing-bear/config"
)

func TestStepHue(t *testing.T) {
	tests := []struct {
		name  string
		hue   float64
		axis  float64
		delta float64
		want  float64
	}{
		{"idle", 120, 0, 1, 120},
		{"right", 120, 1, 1, 123},
		{"left", 120, -1, 1, 117},
		{"half stick", 120, 0.5, 1, 121.5},
		{"double delta", 120, 1, 2, 126},
		{"wraps up", 359, 1, 1, 2},
		{"wraps down", 1, -1, 1, 358},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stepHue(tt.hue, tt.axis, 3, tt.delta)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("stepHue = %v, want %v", got, tt.want)
			}
			if got < 0 || got >= 360 {
				t.Errorf("hue %v outside [0, 360)", got)
			}
		})
	}
}

func TestHueAxis(t *testing.T) {
	tests := []struct {
		name  string
		stick float64
		left  bool
		right bool
		want  float64
	}{
		{"none", 0, false, false, 0},
		{"stick", 0.4, false, false, 0.4},
		{"left key", 0, true, false, -1},
		{"right key", 0, false, true, 1},
		{"both keys cancel", 0, true, true, 0},
		{"stick plus key clamps", 0.8, false, true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := &components.InputData{HueAxis: tt.stick}
			in.Current[cfg.ActionHueLeft] = tt.left
			in.Current[cfg.ActionHueRight] = tt.right
			if got := hueAxis(in); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("hueAxis = %v, want %v", got, tt.want)
			}
		})
	}
}
