package tags

import "github.com/yohamta/donburi"

var (
	Bear     = donburi.NewTag().SetName("Bear")
	Follower = donburi.NewTag().SetName("Follower")
	Star     = donburi.NewTag().SetName("Star")
	Spark    = donburi.NewTag().SetName("Spark")
)
