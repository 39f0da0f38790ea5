package factory

import (
	"fmt"

	"github.com/automoto/slimebrawl/archetypes"
	"github.com/automoto/slimebrawl/components"
	cfg "github.com/automoto/slimebrawl/config"
	"github.com/automoto/slimebrawl/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreatePlayer(w donburi.World, x, y float64) (*donburi.Entry, error) {
	if err := cfg.Player.Validate(); err != nil {
		return nil, fmt.Errorf("create player: %w", err)
	}

	player := archetypes.Player.Spawn(w)

	components.Body.SetValue(player, components.BodyData{
		X:     x,
		Y:     y,
		W:     cfg.Player.Width,
		H:     cfg.Player.Height,
		PrevX: x,
		PrevY: y,
	})

	obj := resolv.NewObject(x, y, cfg.Player.Width, cfg.Player.Height, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		Facing: 1,
		SpawnX: x,
		SpawnY: y,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.MaxHealth,
		Max:     cfg.Player.MaxHealth,
	})

	SpaceOf(w).Add(obj)
	return player, nil
}
