package config

import "github.com/yohamta/donburi/ecs"

// Default is the only render layer; draw order inside it is decided by the renderers.
const Default ecs.LayerID = iota
