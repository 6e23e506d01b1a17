package systems

import (
	"github.com/automoto/dancing-bear/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations advances every animated entity and copies the frame into its sprite.
func UpdateAnimations(ecs *ecs.ECS) {
	delta := FrameDelta()
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		if anim.CurrentAnimation == nil {
			return
		}
		anim.CurrentAnimation.Update(delta)

		if e.HasComponent(components.Sprite) {
			if img := anim.CurrentFrame(); img != nil {
				components.Sprite.Get(e).Image = img
			}
		}
	})
}
