package ui

import "testing"

func TestSceneLabel(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"orbit", "Orbit"},
		{"fireworks", "Fireworks"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sceneLabel(tt.name); got != tt.want {
				t.Errorf("sceneLabel(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}
