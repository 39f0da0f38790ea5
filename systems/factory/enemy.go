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

// CreateEnemy spawns an enemy of the named type, falling back to the default
// type for unknown names. direction must be -1 or 1.
func CreateEnemy(w donburi.World, x, y float64, enemyTypeName string, direction int) (*donburi.Entry, error) {
	enemyType := cfg.EnemyType(enemyTypeName)
	if err := enemyType.Validate(); err != nil {
		return nil, fmt.Errorf("create enemy %s: %w", enemyTypeName, err)
	}
	if direction != -1 && direction != 1 {
		direction = 1
	}

	enemy := archetypes.Enemy.Spawn(w)

	components.Body.SetValue(enemy, components.BodyData{
		X:     x,
		Y:     y,
		W:     enemyType.Width,
		H:     enemyType.Height,
		PrevX: x,
		PrevY: y,
	})

	obj := resolv.NewObject(x, y, enemyType.Width, enemyType.Height, tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})

	components.Enemy.SetValue(enemy, components.EnemyData{
		TypeName:       enemyType.Name,
		Direction:      direction,
		StartX:         x,
		Speed:          enemyType.Speed,
		PatrolDistance: enemyType.PatrolDistance,
		AttackRange:    enemyType.AttackRange,
		Damage:         enemyType.Damage,
		ProbeAhead:     enemyType.ProbeAhead,
		ProbeBelow:     enemyType.ProbeBelow,
		DeathDuration:  enemyType.DeathDuration,
		DeathBounce:    enemyType.DeathBounce,
	})
	components.State.SetValue(enemy, components.StateData{
		CurrentState:  cfg.StatePatrol,
		PreviousState: cfg.StateNone,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: enemyType.Health,
		Max:     enemyType.Health,
	})
	components.Death.SetValue(enemy, components.DeathData{
		Duration: enemyType.DeathDuration,
		Alpha:    1,
	})

	SpaceOf(w).Add(obj)
	return enemy, nil
}
