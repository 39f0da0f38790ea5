package factory

import (
	"github.com/automoto/slimebrawl/archetypes"
	"github.com/automoto/slimebrawl/components"
	cfg "github.com/automoto/slimebrawl/config"
	"github.com/automoto/slimebrawl/shared/leveldata"
	"github.com/automoto/slimebrawl/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreatePlatform registers a platform in the space. The spec must already be
// validated.
func CreatePlatform(w donburi.World, id int, spec leveldata.PlatformSpec) *donburi.Entry {
	platform := archetypes.Platform.Spawn(w)

	obj := resolv.NewObject(spec.X, spec.Y, spec.W, spec.H, tags.ResolvPlatform, string(spec.Kind))
	obj.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: obj})

	data := components.PlatformData{
		ID:      id,
		Kind:    spec.Kind,
		OriginX: spec.X,
		OriginY: spec.Y,
	}
	if spec.Kind == cfg.PlatformMoving {
		data.MoveSpeed = spec.MoveSpeed
		if data.MoveSpeed == 0 {
			data.MoveSpeed = cfg.Platform.MoveSpeed
		}
		data.MoveRange = spec.MoveRange
		if data.MoveRange == 0 {
			data.MoveRange = cfg.Platform.MoveRange
		}
		data.Axis = spec.Axis
		if data.Axis == "" {
			data.Axis = cfg.AxisHorizontal
		}
		data.MoveDirection = 1
	}
	components.Platform.SetValue(platform, data)

	SpaceOf(w).Add(obj)
	return platform
}
