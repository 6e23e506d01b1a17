package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	//go:embed images
	imageFS embed.FS
)

// Embedded sprite paths
const (
	BearSheet   = "images/dancing-bear.png"
	BearAtlas   = "images/dancing-bear.json"
	FollowerPNG = "images/follower.png"
)

// ImageLoader decodes embedded images once and hands out cached ebiten images.
type ImageLoader struct {
	cache      map[string]*ebiten.Image
	frameCache map[string][]*ebiten.Image
}

func NewImageLoader() *ImageLoader {
	return &ImageLoader{
		cache:      make(map[string]*ebiten.Image),
		frameCache: make(map[string][]*ebiten.Image),
	}
}

// DecodeImage decodes an embedded image on the CPU only. Usable before the game loop starts.
func DecodeImage(path string) (image.Image, error) {
	data, err := imageFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// LoadAtlas reads and parses an embedded atlas file.
func LoadAtlas(path string) (*Atlas, error) {
	data, err := imageFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read atlas file %s: %w", path, err)
	}
	return ParseAtlas(data)
}

func (l *ImageLoader) MustLoadImage(path string) *ebiten.Image {
	if img, ok := l.cache[path]; ok {
		return img
	}

	imgBytes, err := imageFS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("Failed to read image %s: %v", path, err))
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		panic(fmt.Sprintf("Failed to decode image %s: %v", path, err))
	}
	l.cache[path] = img

	return img
}

// MustLoadFrames slices a sheet into the frames listed by its atlas, in playback order.
func (l *ImageLoader) MustLoadFrames(sheetPath, atlasPath string) []*ebiten.Image {
	key := sheetPath + "|" + atlasPath
	if frames, ok := l.frameCache[key]; ok {
		return frames
	}

	sheet := l.MustLoadImage(sheetPath)

	atlas, err := LoadAtlas(atlasPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load atlas %s: %v", atlasPath, err))
	}
	rects, err := atlas.FrameRects(sheet.Bounds())
	if err != nil {
		panic(fmt.Sprintf("Invalid atlas %s: %v", atlasPath, err))
	}

	frames := make([]*ebiten.Image, len(rects))
	for i, r := range rects {
		frames[i] = sheet.SubImage(r).(*ebiten.Image)
	}
	l.frameCache[key] = frames

	return frames
}

var (
	imageLoader = NewImageLoader()
)

// BearFrames returns the dancing bear animation frames.
func BearFrames() []*ebiten.Image {
	return imageLoader.MustLoadFrames(BearSheet, BearAtlas)
}

// FollowerImage returns the single-frame sprite that orbits the bear.
func FollowerImage() *ebiten.Image {
	return imageLoader.MustLoadImage(FollowerPNG)
}

// Preload uploads every embedded sprite so the first frame of a scene doesn't stall.
func Preload() {
	_ = BearFrames()
	_ = FollowerImage()
}
