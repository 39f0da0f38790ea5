package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Platform   = donburi.NewTag().SetName("Platform")
	Enemy      = donburi.NewTag().SetName("Enemy")
	MagicBlast = donburi.NewTag().SetName("MagicBlast")
	Particle   = donburi.NewTag().SetName("Particle")
	Camera     = donburi.NewTag().SetName("Camera")
)

// Resolv tags for the broadphase space. Platform objects carry ResolvPlatform
// plus the tag of their kind.
const (
	ResolvPlatform    = "platform"
	ResolvSolid       = "solid"
	ResolvJumpThrough = "jumpthrough"
	ResolvMoving      = "moving"
	ResolvBreakable   = "breakable"
	ResolvSpikes      = "spikes"
	ResolvPlayer      = "Player"
	ResolvEnemy       = "Enemy"
	ResolvProbe       = "probe"
)
