package systems

import (
	"testing"

	"github.com/automoto/dancing-bear/components"
)

func TestHintFor(t *testing.T) {
	hints := HUDHints{
		Keyboard:    "keys",
		Xbox:        "xbox",
		PlayStation: "ps",
	}

	tests := []struct {
		name   string
		method components.InputMethod
		want   string
	}{
		{"keyboard", components.InputKeyboard, "keys"},
		{"mouse falls back to keyboard", components.InputMouse, "keys"},
		{"xbox", components.InputXbox, "xbox"},
		{"playstation", components.InputPlayStation, "ps"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hintFor(hints, tt.method); got != tt.want {
				t.Errorf("hintFor(%v) = %q, want %q", tt.method, got, tt.want)
			}
		})
	}

	hints.Mouse = "mouse"
	if got := hintFor(hints, components.InputMouse); got != "mouse" {
		t.Errorf("hintFor(mouse) = %q, want %q", got, "mouse")
	}
}
