package systems

import (
	"cmp"
	"fmt"
	"log"
	"math"
	"slices"

	"github.com/automoto/slimebrawl/components"
	cfg "github.com/automoto/slimebrawl/config"
	"github.com/automoto/slimebrawl/shared/gamemath"
	"github.com/automoto/slimebrawl/shared/leveldata"
	"github.com/automoto/slimebrawl/systems/factory"
	"github.com/automoto/slimebrawl/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// EnemyReport is what one enemy pass did to the player and the population.
type EnemyReport struct {
	PlayerHit  bool
	PlayerDied bool
	Killed     int
}

// AddEnemy spawns an enemy unless the population cap is reached, in which
// case it returns nil and no error. Dying enemies count toward the cap until
// they are removed.
func AddEnemy(w *World, x, y float64, typeName string, direction int) (*donburi.Entry, error) {
	if EnemyCount(w) >= cfg.Enemy.MaxEnemies {
		return nil, nil
	}
	if direction == 0 {
		direction = 1
		if w.Rand().IntN(2) == 0 {
			direction = -1
		}
	}
	e, err := factory.CreateEnemy(w.ECS(), x, y, typeName, direction)
	if err != nil {
		return nil, fmt.Errorf("add enemy: %w", err)
	}
	return e, nil
}

// SpawnEnemies adds the level's enemies in order until the cap is reached and
// returns how many were added.
func SpawnEnemies(w *World, spawns []leveldata.EnemySpawn) (int, error) {
	added := 0
	for _, s := range spawns {
		e, err := AddEnemy(w, s.X, s.Y, s.Type, s.Direction)
		if err != nil {
			return added, err
		}
		if e == nil {
			log.Printf("[enemy] population cap %d reached, %d spawns skipped", cfg.Enemy.MaxEnemies, len(spawns)-added)
			break
		}
		added++
	}
	return added, nil
}

// ClearEnemies removes every enemy, dying ones included.
func ClearEnemies(w *World) {
	for _, e := range Enemies(w) {
		removeEnemy(w, e)
	}
}

// EnemyCount is the size of the live collection, dying enemies included.
func EnemyCount(w *World) int {
	return len(Enemies(w))
}

// Enemies returns every enemy in spawn order.
func Enemies(w *World) []*donburi.Entry {
	var out []*donburi.Entry
	tags.Enemy.Each(w.ECS(), func(e *donburi.Entry) {
		out = append(out, e)
	})
	slices.SortFunc(out, func(a, b *donburi.Entry) int {
		return cmp.Compare(a.Entity(), b.Entity())
	})
	return out
}

func removeEnemy(w *World, e *donburi.Entry) {
	w.Space().Remove(components.Object.Get(e).Object)
	w.ECS().Remove(e.Entity())
}

// UpdateEnemies runs patrol, attacks, melee and blast hits for every enemy,
// then drops those whose death window has elapsed. player may be nil.
func UpdateEnemies(w *World, player *donburi.Entry) EnemyReport {
	var report EnemyReport
	if player != nil && components.Health.Get(player).Dead() {
		player = nil
	}

	var expired []*donburi.Entry
	for _, e := range Enemies(w) {
		enemy := components.Enemy.Get(e)
		if enemy.Dead {
			if updateDying(e) {
				expired = append(expired, e)
			}
			continue
		}

		updatePatrol(w, e)
		if components.Body.Get(e).Y > w.Height()+cfg.DeathZone.Margin {
			killEnemy(e)
			report.Killed++
			continue
		}

		if player != nil {
			hit, died := enemyAttack(e, player)
			report.PlayerHit = report.PlayerHit || hit
			report.PlayerDied = report.PlayerDied || died
			if meleeHits(player, e) && DamageEnemy(e, cfg.Player.MeleeDamage) {
				report.Killed++
			}
		}
		updateEnemyState(e)
	}

	report.Killed += checkBlastHits(w)

	for _, e := range expired {
		removeEnemy(w, e)
	}
	return report
}

func updatePatrol(w *World, e *donburi.Entry) {
	enemy := components.Enemy.Get(e)
	body := components.Body.Get(e)
	phys := w.Physics()

	// Reverse toward spawn so an enemy pushed past its range cannot flip
	// every tick.
	offset := body.X - enemy.StartX
	if offset > enemy.PatrolDistance {
		enemy.Direction = -1
	} else if offset < -enemy.PatrolDistance {
		enemy.Direction = 1
	}
	body.SpeedX = enemy.Speed * float64(enemy.Direction)

	phys.ApplyGravity(body)
	phys.UpdatePosition(body, w.Step(SpikesSolid))
	blocked := body.SpeedX == 0 && enemy.Speed > 0
	w.CheckCollisions(body, SpikesSolid, nil)

	switch {
	case phys.CheckWorldBounds(body, w.Width()):
		enemy.Direction = 1
		if body.X > 0 {
			enemy.Direction = -1
		}
	case blocked:
		enemy.Direction = -enemy.Direction
	case body.OnGround:
		probeX := body.X + enemy.ProbeAhead*float64(enemy.Direction)
		probeY := body.Bottom() + enemy.ProbeBelow
		if !w.GroundAt(probeX, probeY) {
			enemy.Direction = -enemy.Direction
		}
	}

	enemy.AttackCooldown.Tick()
	components.Object.Get(e).Sync(body)
}

// enemyAttack damages the player when it is within range of the enemy's
// center and the enemy is off cooldown.
func enemyAttack(e, player *donburi.Entry) (hit, died bool) {
	enemy := components.Enemy.Get(e)
	if enemy.AttackCooldown.Active() {
		return false, false
	}
	eb := components.Body.Get(e)
	pb := components.Body.Get(player)
	if math.Hypot(pb.CenterX()-eb.CenterX(), pb.CenterY()-eb.CenterY()) >= enemy.AttackRange {
		return false, false
	}
	hit, died = DamagePlayer(player, enemy.Damage)
	if hit {
		enemy.AttackCooldown.Start(cfg.EnemyType(enemy.TypeName).AttackCooldown)
	}
	return hit, died
}

// meleeHits reports whether the player's current swing connects with e. Reach
// is measured between centers; the enemy's left edge must lie strictly on the
// facing side of the player's. Each swing lands on a given enemy at most once.
func meleeHits(player, e *donburi.Entry) bool {
	pd := components.Player.Get(player)
	enemy := components.Enemy.Get(e)
	if !pd.Punching() || enemy.LastSwing == pd.SwingID {
		return false
	}
	pb := components.Body.Get(player)
	eb := components.Body.Get(e)
	dx := eb.CenterX() - pb.CenterX()
	dy := eb.CenterY() - pb.CenterY()
	if math.Abs(dx) >= cfg.Player.MeleeRangeX || math.Abs(dy) >= cfg.Player.MeleeRangeY {
		return false
	}
	if (eb.X-pb.X)*float64(pd.Facing) <= 0 {
		return false
	}
	enemy.LastSwing = pd.SwingID
	return true
}

// checkBlastHits lets each active blast strike the first live enemy it
// overlaps, then spends it.
func checkBlastHits(w *World) int {
	killed := 0
	for _, b := range ActiveBlasts(w) {
		blast := components.MagicBlast.Get(b)
		bounds := components.Body.Get(b).Bounds()
		for _, e := range w.enemiesNear(bounds) {
			if components.Enemy.Get(e).Dead {
				continue
			}
			if !gamemath.Overlaps(bounds, components.Body.Get(e)) {
				continue
			}
			if DamageEnemy(e, blast.Damage) {
				killed++
			}
			blast.Destroy()
			break
		}
	}
	return killed
}

// DamageEnemy applies n damage to a live enemy and reports whether it died.
// Dead enemies ignore further damage.
func DamageEnemy(e *donburi.Entry, n int) bool {
	enemy := components.Enemy.Get(e)
	if enemy.Dead || n <= 0 {
		return false
	}
	health := components.Health.Get(e)
	health.Current = max(0, health.Current-n)
	if !health.Dead() {
		return false
	}
	killEnemy(e)
	return true
}

func killEnemy(e *donburi.Entry) {
	enemy := components.Enemy.Get(e)
	body := components.Body.Get(e)
	death := components.Death.Get(e)

	components.Health.Get(e).Current = 0
	enemy.Dead = true
	body.SpeedX = 0
	body.SpeedY = enemy.DeathBounce
	body.Leave()

	death.Timer = 0
	death.Duration = enemy.DeathDuration
	death.Fade = gween.New(1, 0, float32(enemy.DeathDuration), ease.Linear)
	death.Alpha = 1
	components.State.Get(e).Set(cfg.StateDying)

	log.Printf("[enemy] %s died at (%.0f, %.0f)", enemy.TypeName, body.X, body.Y)
}

// updateDying runs the fade and reports whether the enemy should now be
// removed. Dead enemies hold their position; the bounce velocity set by
// killEnemy is left for the renderer.
func updateDying(e *donburi.Entry) bool {
	death := components.Death.Get(e)

	death.Timer++
	if death.Fade != nil {
		alpha, _ := death.Fade.Update(1)
		death.Alpha = float64(alpha)
	}
	components.State.Get(e).Set(cfg.StateDying)
	return death.Expired()
}

func updateEnemyState(e *donburi.Entry) {
	state := components.State.Get(e)
	if components.Enemy.Get(e).AttackCooldown.Active() {
		state.Set(cfg.StateAttackCooldown)
		return
	}
	state.Set(cfg.StatePatrol)
}
