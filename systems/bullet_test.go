package systems

import (
	"testing"
	"time"

	"github.com/automoto/tower-defense/components"
	"github.com/automoto/tower-defense/systems/factory"
	"github.com/go-gl/mathgl/mgl32"
)

func TestBulletLivesExactlyItsLifetime(t *testing.T) {
	e := newTestECS(t)
	tower := factory.CreateTower(e)
	bullet := factory.CreateBullet(e, tower, GetOrCreateTime(e).Frame)

	if got := countWith(e.World, components.Parent); got != 2 {
		t.Fatalf("Expected 2 model children, got %d", got)
	}

	for i := 1; i <= 4; i++ {
		step(e, 100*time.Millisecond)
		if !bullet.Valid() {
			t.Fatalf("Expected bullet alive after %dms", i*100)
		}
	}

	step(e, 100*time.Millisecond)
	if bullet.Valid() {
		t.Fatal("Expected bullet despawned at 500ms")
	}
	if got := countWith(e.World, components.Parent); got != 0 {
		t.Errorf("Expected children despawned with the bullet, %d left", got)
	}
	if got := GetOrCreateStats(e).BulletsDespawned; got != 1 {
		t.Errorf("Expected exactly one despawn event, got %d", got)
	}
}

func TestBulletSpawnedThisFrameDoesNotTick(t *testing.T) {
	e := newTestECS(t)
	tower := factory.CreateTower(e)

	StepTime(e, 100*time.Millisecond)
	bullet := factory.CreateBullet(e, tower, GetOrCreateTime(e).Frame)
	UpdateBullets(e)

	if got := components.Bullet.Get(bullet).Lifetime.Elapsed; got != 0 {
		t.Errorf("Expected no lifetime spent in the spawn frame, got %v", got)
	}
}

func TestMoveBulletsAlongForward(t *testing.T) {
	e := newTestECS(t)
	tower := factory.CreateTower(e)
	bullet := factory.CreateBullet(e, tower, GetOrCreateTime(e).Frame)
	start := components.Transform.Get(bullet).Translation

	StepTime(e, 100*time.Millisecond)
	MoveBullets(e)

	got := components.Transform.Get(bullet).Translation
	want := start.Add(mgl32.Vec3{0.25, 0, 0})
	if !got.ApproxEqualThreshold(want, eps) {
		t.Errorf("Expected bullet at %v, got %v", want, got)
	}
}

func TestSteadyStateKeepsAtMostOneBullet(t *testing.T) {
	e := newTestECS(t)
	factory.CreateTower(e)

	for i := 0; i < 100; i++ {
		step(e, 50*time.Millisecond)
		if n := bulletCount(e.World); n > 1 {
			t.Fatalf("Expected at most 1 bullet alive, got %d at frame %d", n, i)
		}
	}

	stats := GetOrCreateStats(e)
	if stats.ShotsFired != 5 || stats.BulletsDespawned != 4 {
		t.Errorf("Expected 5 shots and 4 despawns after 5s, got %+v", *stats)
	}
	if stats.BulletsAlive() != bulletCount(e.World) {
		t.Errorf("Expected stats to match the world, %d vs %d", stats.BulletsAlive(), bulletCount(e.World))
	}
}
