package factory

import (
	"github.com/automoto/slimebrawl/archetypes"
	"github.com/automoto/slimebrawl/components"
	cfg "github.com/automoto/slimebrawl/config"
	"github.com/yohamta/donburi"
)

func CreateCamera(w donburi.World) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.Set(camera, &components.CameraData{
		ViewWidth:   cfg.Camera.ViewWidth,
		ViewHeight:  cfg.Camera.ViewHeight,
		FollowSpeed: cfg.Camera.FollowSpeed,
		Lead:        cfg.Camera.LeadDistance,
		Smoothing:   cfg.Camera.Smoothing,
	})
	components.ScreenShake.Set(camera, &components.ScreenShakeData{
		Decay: cfg.ScreenShake.Decay,
	})
	return camera
}
