package assets

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"sort"
	"strconv"
	"unicode"
)

// AtlasRect is a frame rectangle inside a sprite sheet.
type AtlasRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// AtlasFrame is a single named frame of a TexturePacker multipack atlas.
type AtlasFrame struct {
	Filename string    `json:"filename"`
	Frame    AtlasRect `json:"frame"`
}

// AtlasTexture is one sheet image of an atlas and the frames cut from it.
type AtlasTexture struct {
	Image  string       `json:"image"`
	Frames []AtlasFrame `json:"frames"`
}

// Atlas is the TexturePacker "JSON (multipack)" export format.
type Atlas struct {
	Textures []AtlasTexture `json:"textures"`
}

var (
	ErrNoTextures = errors.New("atlas has no textures")
	ErrNoFrames   = errors.New("atlas texture has no frames")
)

// ParseAtlas decodes atlas JSON.
func ParseAtlas(data []byte) (*Atlas, error) {
	var a Atlas
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("failed to parse atlas: %w", err)
	}
	if len(a.Textures) == 0 {
		return nil, ErrNoTextures
	}
	return &a, nil
}

// FrameRects returns the frame rectangles of the first texture ordered by filename,
// comparing digit runs numerically so "bear-2" sorts before "bear-10".
// Every frame must lie inside bounds.
func (a *Atlas) FrameRects(bounds image.Rectangle) ([]image.Rectangle, error) {
	if len(a.Textures) == 0 {
		return nil, ErrNoTextures
	}
	frames := append([]AtlasFrame(nil), a.Textures[0].Frames...)
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}

	sort.SliceStable(frames, func(i, j int) bool {
		return NaturalLess(frames[i].Filename, frames[j].Filename)
	})

	rects := make([]image.Rectangle, 0, len(frames))
	for _, f := range frames {
		r := image.Rect(f.Frame.X, f.Frame.Y, f.Frame.X+f.Frame.W, f.Frame.Y+f.Frame.H)
		if r.Empty() || !r.In(bounds) {
			return nil, fmt.Errorf("frame %s %v is outside sheet bounds %v", f.Filename, r, bounds)
		}
		rects = append(rects, r)
	}
	return rects, nil
}

// NaturalLess compares strings treating runs of digits as numbers.
func NaturalLess(a, b string) bool {
	ra, rb := []rune(a), []rune(b)
	i, j := 0, 0
	for i < len(ra) && j < len(rb) {
		ca, cb := ra[i], rb[j]
		if unicode.IsDigit(ca) && unicode.IsDigit(cb) {
			si := i
			for i < len(ra) && unicode.IsDigit(ra[i]) {
				i++
			}
			sj := j
			for j < len(rb) && unicode.IsDigit(rb[j]) {
				j++
			}
			na, errA := strconv.ParseUint(string(ra[si:i]), 10, 64)
			nb, errB := strconv.ParseUint(string(rb[sj:j]), 10, 64)
			if errA == nil && errB == nil && na != nb {
				return na < nb
			}
			// Equal value ("01" vs "1") or overflow: shorter run first, then lexical
			if da, db := string(ra[si:i]), string(rb[sj:j]); da != db {
				if len(da) != len(db) {
					return len(da) < len(db)
				}
				return da < db
			}
			continue
		}
		if ca != cb {
			la, lb := unicode.ToLower(ca), unicode.ToLower(cb)
			if la != lb {
				return la < lb
			}
			return ca < cb
		}
		i++
		j++
	}
	return len(ra)-i < len(rb)-j
}
