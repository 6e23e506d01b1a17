package assets

import (
	"errors"
	"image"
	"sort"
	"testing"
)

func TestNaturalLess(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"bear-2", "bear-10", true},
		{"bear-10", "bear-2", false},
		{"bear-1", "bear-1", false},
		{"bear", "bear-1", true},
		{"a9z", "a10a", true},
		{"frame01", "frame1", false},
		{"frame1", "frame01", true},
		{"Bear-3", "bear-4", true},
	}
	for _, tt := range tests {
		if got := NaturalLess(tt.a, tt.b); got != tt.want {
			t.Errorf("NaturalLess(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}

	names := []string{"f10", "f2", "f1", "f21", "f3"}
	sort.Slice(names, func(i, j int) bool { return NaturalLess(names[i], names[j]) })
	want := []string{"f1", "f2", "f3", "f10", "f21"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("sorted = %v, want %v", names, want)
		}
	}
}

func TestParseAtlasFrameOrder(t *testing.T) {
	data := []byte(`{
		"textures": [{
			"image": "sheet.png",
			"frames": [
				{"filename": "walk-10.png", "frame": {"x": 90, "y": 0, "w": 10, "h": 10}},
				{"filename": "walk-2.png", "frame": {"x": 10, "y": 0, "w": 10, "h": 10}},
				{"filename": "walk-1.png", "frame": {"x": 0, "y": 0, "w": 10, "h": 10}}
			]
		}]
	}`)

	atlas, err := ParseAtlas(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rects, err := atlas.FrameRects(image.Rect(0, 0, 100, 10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []image.Rectangle{
		image.Rect(0, 0, 10, 10),
		image.Rect(10, 0, 20, 10),
		image.Rect(90, 0, 100, 10),
	}
	if len(rects) != len(want) {
		t.Fatalf("expected %d frames, got %d", len(want), len(rects))
	}
	for i := range want {
		if rects[i] != want[i] {
			t.Errorf("frame %d = %v, want %v", i, rects[i], want[i])
		}
	}
}

func TestParseAtlasErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		bounds  image.Rectangle
		wantErr error
	}{
		{name: "malformed json", data: `{"textures": [`},
		{name: "no textures", data: `{"textures": []}`, wantErr: ErrNoTextures},
		{name: "no frames", data: `{"textures": [{"image": "a.png", "frames": []}]}`, bounds: image.Rect(0, 0, 10, 10), wantErr: ErrNoFrames},
		{
			name:   "frame outside sheet",
			data:   `{"textures": [{"image": "a.png", "frames": [{"filename": "a", "frame": {"x": 5, "y": 0, "w": 10, "h": 10}}]}]}`,
			bounds: image.Rect(0, 0, 10, 10),
		},
		{
			name:   "empty frame",
			data:   `{"textures": [{"image": "a.png", "frames": [{"filename": "a", "frame": {"x": 0, "y": 0, "w": 0, "h": 10}}]}]}`,
			bounds: image.Rect(0, 0, 10, 10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			atlas, err := ParseAtlas([]byte(tt.data))
			if err == nil {
				_, err = atlas.FrameRects(tt.bounds)
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestEmbeddedBearAtlas(t *testing.T) {
	sheet, err := DecodeImage(BearSheet)
	if err != nil {
		t.Fatalf("failed to decode sheet: %v", err)
	}
	atlas, err := LoadAtlas(BearAtlas)
	if err != nil {
		t.Fatalf("failed to load atlas: %v", err)
	}
	rects, err := atlas.FrameRects(sheet.Bounds())
	if err != nil {
		t.Fatalf("invalid atlas: %v", err)
	}
	if len(rects) != 6 {
		t.Fatalf("expected 6 bear frames, got %d", len(rects))
	}
	for i := 1; i < len(rects); i++ {
		if rects[i].Min.X <= rects[i-1].Min.X {
			t.Errorf("frames out of playback order at %d: %v after %v", i, rects[i], rects[i-1])
		}
	}
}

func TestEmbeddedFollowerImage(t *testing.T) {
	img, err := DecodeImage(FollowerPNG)
	if err != nil {
		t.Fatalf("failed to decode follower: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 104 || b.Dy() != 104 {
		t.Errorf("expected 104x104 follower, got %v", b)
	}
}
