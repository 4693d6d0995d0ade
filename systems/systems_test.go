package systems

import (
	"math"
	"testing"
	"time"

	"github.com/johndunne/defender-game/components"
	"github.com/johndunne/defender-game/config"
	"github.com/johndunne/defender-game/engine"
	"github.com/johndunne/defender-game/input"
)

const tick = 16 * time.Millisecond

func newTestContext(t *testing.T) *engine.GameContext {
	t.Helper()

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load default config: %v", err)
	}
	cfg.Game.Seed = 1

	ctx := engine.NewGameContext(cfg)
	RegisterSystems(ctx, nil)
	ctx.Player = SpawnPlayer(ctx)
	return ctx
}

func TestFireSpawnsBulletAtPlayer(t *testing.T) {
	ctx := newTestContext(t)
	ctx.SetInput(input.Snapshot{Fire: true})

	NewPlayerSystem(ctx).Update(ctx.World, tick)

	bullets := ctx.World.Bullets.All()
	if len(bullets) != 1 {
		t.Fatalf("Bullet count = %d, want 1", len(bullets))
	}

	b, _ := ctx.World.Bullets.Get(bullets[0])
	pos, _ := ctx.World.Positions.Get(bullets[0])
	if pos.X != 0 || pos.Y != 0 {
		t.Errorf("Bullet spawned at (%v, %v), want player position (0, 0)", pos.X, pos.Y)
	}
	speed := ctx.Config.Bullet.Speed
	if math.Abs(b.VelX-speed) > 1e-9 || math.Abs(b.VelY) > 1e-9 {
		t.Errorf("Bullet velocity = (%v, %v), want (%v, 0) for direction 0", b.VelX, b.VelY, speed)
	}

	player, _ := ctx.World.Players.Get(ctx.Player)
	if player.WeaponCooldown != ctx.Config.Bullet.Cooldown {
		t.Errorf("Cooldown after firing = %v, want %v", player.WeaponCooldown, ctx.Config.Bullet.Cooldown)
	}
}

func TestFireBlockedWhileCoolingDown(t *testing.T) {
	ctx := newTestContext(t)

	player, _ := ctx.World.Players.Get(ctx.Player)
	player.WeaponCooldown = ctx.Config.Bullet.Cooldown
	ctx.World.Players.Add(ctx.Player, player)

	ctx.SetInput(input.Snapshot{Fire: true})
	NewPlayerSystem(ctx).Update(ctx.World, tick)

	if n := ctx.World.Bullets.Count(); n != 0 {
		t.Fatalf("Bullet count = %d, want 0 while cooling down", n)
	}
	player, _ = ctx.World.Players.Get(ctx.Player)
	want := ctx.Config.Bullet.Cooldown - tick.Seconds()
	if math.Abs(player.WeaponCooldown-want) > 1e-9 {
		t.Errorf("Cooldown = %v, want %v", player.WeaponCooldown, want)
	}
}

func TestCooldownNeverNegative(t *testing.T) {
	ctx := newTestContext(t)

	player, _ := ctx.World.Players.Get(ctx.Player)
	player.WeaponCooldown = 0.01
	ctx.World.Players.Add(ctx.Player, player)

	NewPlayerSystem(ctx).Update(ctx.World, time.Second)

	player, _ = ctx.World.Players.Get(ctx.Player)
	if player.WeaponCooldown != 0 {
		t.Errorf("Cooldown = %v, want exactly 0 after overshoot", player.WeaponCooldown)
	}
}

func TestRotationWrapsAndOppositeKeysCancel(t *testing.T) {
	ctx := newTestContext(t)
	sys := NewPlayerSystem(ctx)

	// Rotate left past 2*pi
	ctx.SetInput(input.Snapshot{RotateLeft: true})
	for i := 0; i < 200; i++ {
		sys.Update(ctx.World, 100*time.Millisecond)
	}
	player, _ := ctx.World.Players.Get(ctx.Player)
	if player.Direction < 0 || player.Direction >= 2*math.Pi {
		t.Errorf("Direction = %v, want wrapped into [0, 2*pi)", player.Direction)
	}

	player.Direction = 1
	ctx.World.Players.Add(ctx.Player, player)
	ctx.SetInput(input.Snapshot{RotateLeft: true, RotateRight: true})
	sys.Update(ctx.World, tick)
	player, _ = ctx.World.Players.Get(ctx.Player)
	if math.Abs(player.Direction-1) > 1e-9 {
		t.Errorf("Direction = %v after both keys, want unchanged 1", player.Direction)
	}
}

func TestBulletLeavingArenaIsDestroyed(t *testing.T) {
	ctx := newTestContext(t)

	// Parked exactly on the boundary: the edge is inside the arena
	edge := ctx.Config.ArenaHalfWidth()
	parked := SpawnBullet(ctx, edge, 0, 0)
	b, _ := ctx.World.Bullets.Get(parked)
	b.VelX, b.VelY = 0, 0
	ctx.World.Bullets.Add(parked, b)

	ctx.World.Update(tick)
	if !ctx.World.Alive(parked) {
		t.Fatal("Bullet sitting on the boundary must survive")
	}

	// The slightest outward motion kills it on the next tick
	b, _ = ctx.World.Bullets.Get(parked)
	b.VelX = 1
	ctx.World.Bullets.Add(parked, b)

	ctx.World.Update(tick)
	if ctx.World.Alive(parked) {
		t.Error("Bullet past the boundary must be destroyed")
	}
}

func TestBulletLifetimeExpires(t *testing.T) {
	ctx := newTestContext(t)

	e := SpawnBullet(ctx, 0, 0, math.Pi/2)
	b, _ := ctx.World.Bullets.Get(e)
	b.VelX, b.VelY = 0, 0 // hold it in place so only lifetime can kill it
	b.Lifetime = 2 * tick.Seconds()
	ctx.World.Bullets.Add(e, b)

	ctx.World.Update(tick)
	if !ctx.World.Alive(e) {
		t.Fatal("Bullet died before its lifetime elapsed")
	}
	ctx.World.Update(tick)
	if ctx.World.Alive(e) {
		t.Error("Bullet must die when its lifetime reaches zero")
	}
}

func TestCollisionDestroysBothAndScores(t *testing.T) {
	ctx := newTestContext(t)

	bullet := SpawnBullet(ctx, 100, 100, 0)
	b, _ := ctx.World.Bullets.Get(bullet)
	b.VelX, b.VelY = 0, 0
	ctx.World.Bullets.Add(bullet, b)
	enemy := SpawnEnemy(ctx, 100, 100)

	ctx.World.Update(tick)

	if ctx.World.Alive(bullet) {
		t.Error("Bullet must be destroyed on hit")
	}
	if ctx.World.Alive(enemy) {
		t.Error("Enemy must be destroyed on hit")
	}
	if got := ctx.State.Score(); got != 1 {
		t.Errorf("Score = %d, want 1", got)
	}
}

func TestBulletHitsAtMostOneEnemy(t *testing.T) {
	ctx := newTestContext(t)

	bullet := SpawnBullet(ctx, 100, 100, 0)
	b, _ := ctx.World.Bullets.Get(bullet)
	b.VelX, b.VelY = 0, 0
	ctx.World.Bullets.Add(bullet, b)

	// Both enemies overlap the bullet; only the first in spawn order dies
	first := SpawnEnemy(ctx, 98, 100)
	second := SpawnEnemy(ctx, 102, 100)

	ctx.World.Update(tick)

	if ctx.World.Alive(first) {
		t.Error("First overlapping enemy must die")
	}
	if !ctx.World.Alive(second) {
		t.Error("Second enemy must survive a single bullet")
	}
	if got := ctx.State.Score(); got != 1 {
		t.Errorf("Score = %d, want 1 for a single bullet", got)
	}
}

func TestEnemyDiesAtMostOncePerTick(t *testing.T) {
	ctx := newTestContext(t)

	for i := 0; i < 2; i++ {
		e := SpawnBullet(ctx, 100, 100, 0)
		b, _ := ctx.World.Bullets.Get(e)
		b.VelX, b.VelY = 0, 0
		ctx.World.Bullets.Add(e, b)
	}
	SpawnEnemy(ctx, 100, 100)

	ctx.World.Update(tick)

	if got := ctx.State.Score(); got != 1 {
		t.Errorf("Score = %d, want 1: one enemy is worth one point", got)
	}
	if n := ctx.World.Bullets.Count(); n != 1 {
		t.Errorf("Surviving bullets = %d, want 1: the dead enemy absorbs only one", n)
	}
}

func TestZeroDtTickChangesNothing(t *testing.T) {
	ctx := newTestContext(t)
	InitializeWorld(ctx)
	ctx.SetInput(input.Snapshot{Fire: true, RotateLeft: true})

	before := ctx.World.EntityCount()
	player, _ := ctx.World.Players.Get(ctx.Player)

	ctx.World.Update(0)

	if ctx.World.EntityCount() != before {
		t.Error("Zero-length tick must not create or destroy entities")
	}
	after, _ := ctx.World.Players.Get(ctx.Player)
	if after != player {
		t.Errorf("Player state changed across zero-length tick: %+v -> %+v", player, after)
	}
	if ctx.State.Score() != 0 {
		t.Error("Zero-length tick must not score")
	}
}

func TestEnemyDriftClampsToArena(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load default config: %v", err)
	}
	cfg.Game.Seed = 1

	ctx := engine.NewGameContext(cfg)
	RegisterSystems(ctx, DriftPolicy{VelX: 1e6})
	ctx.Player = SpawnPlayer(ctx)
	e := SpawnEnemy(ctx, 0, 0)

	ctx.World.Update(tick)

	pos, _ := ctx.World.Positions.Get(e)
	if pos.X != cfg.ArenaHalfWidth() {
		t.Errorf("Enemy X = %v, want clamped to %v", pos.X, cfg.ArenaHalfWidth())
	}
	if !ctx.World.Alive(e) {
		t.Error("Enemies pin to the edge, they never despawn")
	}
}

func TestStaticEnemiesHoldPosition(t *testing.T) {
	ctx := newTestContext(t)
	e := SpawnEnemy(ctx, 12, -30)

	for i := 0; i < 10; i++ {
		ctx.World.Update(tick)
	}

	pos, _ := ctx.World.Positions.Get(e)
	if pos != (components.PositionComponent{X: 12, Y: -30}) {
		t.Errorf("Static enemy moved to %+v", pos)
	}
}

func TestInitializeWorldPlacesEverything(t *testing.T) {
	ctx := newTestContext(t)
	InitializeWorld(ctx)

	if !ctx.World.Alive(ctx.Player) {
		t.Fatal("Player entity missing after setup")
	}
	pos, _ := ctx.World.Positions.Get(ctx.Player)
	if pos.X != 0 || pos.Y != 0 {
		t.Errorf("Player at (%v, %v), want origin", pos.X, pos.Y)
	}

	enemies := ctx.World.Enemies.All()
	if len(enemies) != ctx.Config.Game.EnemyCount {
		t.Fatalf("Enemy count = %d, want %d", len(enemies), ctx.Config.Game.EnemyCount)
	}
	halfW, halfH := ctx.Config.ArenaHalfWidth(), ctx.Config.ArenaHalfHeight()
	for _, e := range enemies {
		p, ok := ctx.World.Positions.Get(e)
		if !ok {
			t.Fatal("Enemy missing a position")
		}
		if p.X < -halfW || p.X > halfW || p.Y < -halfH || p.Y > halfH {
			t.Errorf("Enemy spawned outside the arena at %+v", p)
		}
	}
}

func TestSeededSpawnsAreReproducible(t *testing.T) {
	positions := func() []components.PositionComponent {
		cfg, err := config.Load("")
		if err != nil {
			t.Fatalf("Load default config: %v", err)
		}
		cfg.Game.Seed = 42

		ctx := engine.NewGameContext(cfg)
		InitializeWorld(ctx)

		var out []components.PositionComponent
		for _, e := range ctx.World.Enemies.All() {
			p, _ := ctx.World.Positions.Get(e)
			out = append(out, p)
		}
		return out
	}

	a, b := positions(), positions()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Spawn %d differs between runs with the same seed: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestFiredBulletEventuallyKillsEnemy(t *testing.T) {
	ctx := newTestContext(t)
	enemy := SpawnEnemy(ctx, 200, 0)

	// Fire once facing right, then let the bullet fly
	ctx.SetInput(input.Snapshot{Fire: true})
	ctx.World.Update(tick)
	ctx.SetInput(input.Snapshot{})

	prev := ctx.State.Score()
	for i := 0; i < 60 && ctx.World.Alive(enemy); i++ {
		ctx.World.Update(tick)
		if ctx.State.Score() < prev {
			t.Fatal("Score decreased")
		}
		prev = ctx.State.Score()
	}

	if ctx.World.Alive(enemy) {
		t.Fatal("Bullet fired at the enemy never connected")
	}
	if got := ctx.State.Score(); got != 1 {
		t.Errorf("Score = %d, want 1", got)
	}
	if n := ctx.World.Bullets.Count(); n != 0 {
		t.Errorf("Bullets remaining = %d, want 0", n)
	}
}
