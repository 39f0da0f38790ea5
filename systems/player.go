package systems

import (
	"math"

	"github.com/automoto/slimebrawl/components"
	cfg "github.com/automoto/slimebrawl/config"
	"github.com/automoto/slimebrawl/tags"
	"github.com/yohamta/donburi"
)

// PlayerReport is what one player update produced.
type PlayerReport struct {
	Fired bool // A magic blast was spawned
	Hit   bool // Took damage from spikes
	Died  bool // Health reached zero this tick
}

// UpdatePlayer runs one tick of player control and integration in order:
// movement, jump, combat, gravity, friction, position, timers.
func UpdatePlayer(e *donburi.Entry, in InputState, w *World) PlayerReport {
	var report PlayerReport
	player := components.Player.Get(e)
	body := components.Body.Get(e)
	if components.Health.Get(e).Dead() {
		return report
	}

	handleMovementInput(player, body, in)
	handleJumpInput(player, body, in)
	report.Fired = handleCombatInput(e, player, in, w)

	phys := w.Physics()
	phys.ApplyGravity(body)
	phys.ApplyFriction(body)
	phys.UpdatePosition(body, w.Step(SpikesHurt))
	components.Object.Get(e).Sync(body)

	tickPlayerTimers(player)
	return report
}

func handleMovementInput(player *components.PlayerData, body *components.BodyData, in InputState) {
	switch {
	case in.Left && !in.Right:
		body.SpeedX = -cfg.Player.MoveSpeed
		player.Facing = -1
	case in.Right && !in.Left:
		body.SpeedX = cfg.Player.MoveSpeed
		player.Facing = 1
	}
}

// Jump fires on the press edge only, so holding the button while grounded
// does not bounce.
func handleJumpInput(player *components.PlayerData, body *components.BodyData, in InputState) {
	if in.Jump && !player.JumpWasPressed && body.OnGround {
		body.SpeedY = cfg.Player.JumpVelocity
		body.Leave()
	}
	player.JumpWasPressed = in.Jump
}

func handleCombatInput(e *donburi.Entry, player *components.PlayerData, in InputState, w *World) bool {
	fired := false
	if in.Ranged && !player.RangedCooldown.Active() {
		player.RangedCooldown.Start(cfg.Player.RangedCooldown)
		player.Attack = cfg.AttackRanged
		player.AttackTimer.Start(cfg.Player.RangedDuration)
		FireMagicBlast(w, e)
		fired = true
	}
	// A punch started on the same tick owns the overlay since it can hit.
	if in.Punch && !player.PunchCooldown.Active() {
		player.PunchCooldown.Start(cfg.Player.PunchCooldown)
		player.Attack = cfg.AttackPunch
		player.AttackTimer.Start(cfg.Player.PunchDuration)
		player.SwingID++
	}
	return fired
}

func tickPlayerTimers(player *components.PlayerData) {
	player.InvulnTimer.Tick()
	player.PunchCooldown.Tick()
	player.RangedCooldown.Tick()
	player.LandingTimer.Tick()
	player.AttackTimer.Tick()
	if !player.AttackTimer.Active() {
		player.Attack = cfg.AttackNone
	}
}

// CollidePlayer runs the player's platform pass and keeps it inside the
// world horizontally. Spike damage goes through DamagePlayer.
func CollidePlayer(e *donburi.Entry, w *World) PlayerReport {
	var report PlayerReport
	body := components.Body.Get(e)
	w.CheckCollisions(body, SpikesHurt, func(damage int) {
		hit, died := DamagePlayer(e, damage)
		report.Hit = report.Hit || hit
		report.Died = report.Died || died
	})
	w.Physics().CheckWorldBounds(body, w.Width())
	components.Object.Get(e).Sync(body)
	return report
}

// DamagePlayer applies n damage unless the player is invulnerable or already
// dead. hit reports whether health changed; died is true only on the call
// that brought health to zero.
func DamagePlayer(e *donburi.Entry, n int) (hit, died bool) {
	player := components.Player.Get(e)
	health := components.Health.Get(e)
	if n <= 0 || player.Invulnerable() || health.Dead() {
		return false, false
	}
	health.Current = max(0, health.Current-n)
	player.InvulnTimer.Start(cfg.Player.InvulnFrames)
	return true, health.Current == 0
}

// ResetPlayer restores the player to its spawn in full health and drops any
// blasts it still owns.
func ResetPlayer(e *donburi.Entry, w *World) {
	player := components.Player.Get(e)
	body := components.Body.Get(e)
	health := components.Health.Get(e)

	ClearBlasts(w, e)

	health.Current = health.Max
	*body = components.BodyData{
		X:     player.SpawnX,
		Y:     player.SpawnY,
		W:     body.W,
		H:     body.H,
		PrevX: player.SpawnX,
		PrevY: player.SpawnY,
	}
	// SwingID keeps counting so enemies hit before the reset do not ignore
	// the next swings.
	*player = components.PlayerData{
		Facing:  1,
		SwingID: player.SwingID,
		SpawnX:  player.SpawnX,
		SpawnY:  player.SpawnY,
	}
	player.InvulnTimer.Start(cfg.Player.RespawnInvulnFrames)
	components.State.SetValue(e, components.StateData{CurrentState: cfg.Idle})
	components.Object.Get(e).Sync(body)
}

// UpdatePlayerState derives the movement state from the collision results.
func UpdatePlayerState(e *donburi.Entry) {
	player := components.Player.Get(e)
	body := components.Body.Get(e)
	state := components.State.Get(e)

	airborne := state.CurrentState == cfg.Jumping || state.CurrentState == cfg.Falling
	switch {
	case !body.OnGround && body.SpeedY < 0:
		state.Set(cfg.Jumping)
	case !body.OnGround:
		state.Set(cfg.Falling)
	case airborne:
		player.LandingTimer.Start(cfg.Player.LandingFrames)
		state.Set(cfg.Landing)
	case player.LandingTimer.Active():
		state.Set(cfg.Landing)
	case math.Abs(body.SpeedX) > 0.1:
		state.Set(cfg.Walking)
	default:
		state.Set(cfg.Idle)
	}
}

// PlayerEntry returns the player, if one exists.
func PlayerEntry(w *World) (*donburi.Entry, bool) {
	return tags.Player.First(w.ECS())
}
