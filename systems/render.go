package systems

import (
	"image/color"
	"sort"

	"github.com/automoto/dancing-bear/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var (
	drawOp      = &ebiten.DrawImageOptions{}
	spriteQuery = donburi.NewQuery(filter.Contains(components.Sprite, components.Transform))

	// Reused across frames to avoid allocating the draw list
	drawList []*donburi.Entry
)

// DrawSprites renders every sprite around its pivot, lowest ZIndex first.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	drawList = drawList[:0]
	spriteQuery.Each(ecs.World, func(e *donburi.Entry) {
		if components.Sprite.Get(e).Image != nil {
			drawList = append(drawList, e)
		}
	})

	sort.SliceStable(drawList, func(i, j int) bool {
		return components.Sprite.Get(drawList[i]).ZIndex < components.Sprite.Get(drawList[j]).ZIndex
	})

	for _, e := range drawList {
		drawSprite(screen, components.Sprite.Get(e), components.Transform.Get(e))
	}
}

func drawSprite(screen *ebiten.Image, sprite *components.SpriteData, t *components.TransformData) {
	w := float64(sprite.Image.Bounds().Dx())
	h := float64(sprite.Image.Bounds().Dy())

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.Filter = ebiten.FilterLinear

	// Anchor at the pivot, then scale around it
	drawOp.GeoM.Translate(-w*sprite.PivotX, -h*sprite.PivotY)
	drawOp.GeoM.Scale(t.Scale, t.Scale)
	drawOp.GeoM.Translate(t.X, t.Y)

	if sprite.Shade > 0 && sprite.Shade < 1 {
		drawOp.ColorScale.Scale(sprite.Shade, sprite.Shade, sprite.Shade, 1)
	}

	screen.DrawImage(sprite.Image, drawOp)
}

// fade scales a color by alpha, keeping it premultiplied for ebiten.
func fade(c color.RGBA, alpha float64) color.RGBA {
	if alpha <= 0 {
		return color.RGBA{}
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
