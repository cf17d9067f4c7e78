package board

import (
	"testing"

	"minesweeper/pkg/engine/world"
)

func TestRevealAt_MineQueuesEveryMine(t *testing.T) {
	mines := []world.Position{{X: 2, Y: 0}, {X: 0, Y: 1}, {X: 3, Y: 2}}
	b := mustBoard(t, 4, 3, mines...)
	b.ToggleFlag(2, 0)
	b.ToggleFlag(1, 1)

	if got := b.RevealAt(0, 1); got != RevealHitMine {
		t.Fatalf("RevealAt(0,1) = %v, want %v", got, RevealHitMine)
	}
	if !b.IsLost() || !b.IsEnded() {
		t.Error("hitting a mine did not lose the game")
	}
	if got := b.FlagCount(); got != 0 {
		t.Errorf("FlagCount() = %d after loss, want 0", got)
	}

	got := b.PendingExplosions()
	want := []world.Position{{X: 2, Y: 0}, {X: 0, Y: 1}, {X: 3, Y: 2}}
	if len(got) != len(want) {
		t.Fatalf("PendingExplosions() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("PendingExplosions()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestAdvanceExplosion_OneMineEveryThirdTick(t *testing.T) {
	b := mustBoard(t, 4, 4,
		world.Position{X: 0, Y: 0},
		world.Position{X: 3, Y: 0},
		world.Position{X: 0, Y: 3},
	)
	b.RevealAt(0, 0)

	// pending after each tick
	want := []int{2, 2, 2, 1, 1, 1, 0, 0, 0}
	for i, w := range want {
		b.Tick()
		if got := b.ExplosionPending(); got != w {
			t.Errorf("tick %d: ExplosionPending() = %d, want %d", i+1, got, w)
		}
	}

	b.ForEachCell(func(s CellState) {
		if s.HasMine && !s.Revealed {
			t.Errorf("mine at (%d,%d) never revealed", s.X, s.Y)
		}
	})
}

func TestAdvanceExplosion_FramesSaturate(t *testing.T) {
	b := mustBoard(t, 2, 2, world.Position{X: 0, Y: 0})
	b.RevealAt(0, 0)

	for i := 0; i < 5; i++ {
		b.Tick()
	}
	c, _ := b.Cell(0, 0)
	if got := c.ExplosionFrame(); got != 5 {
		t.Errorf("ExplosionFrame() = %d after 5 ticks, want 5", got)
	}
	if got := c.SpriteIndex(); got != 1 {
		t.Errorf("SpriteIndex() = %d, want 1", got)
	}

	for i := 0; i < 100; i++ {
		b.Tick()
	}
	c, _ = b.Cell(0, 0)
	if got := c.ExplosionFrame(); got != MaxExplosionFrame {
		t.Errorf("ExplosionFrame() = %d, want %d", got, MaxExplosionFrame)
	}
	if got := c.SpriteIndex(); got != 9 {
		t.Errorf("SpriteIndex() = %d, want 9", got)
	}

	safe, _ := b.Cell(1, 1)
	if safe.ExplosionFrame() != 0 {
		t.Errorf("safe cell ExplosionFrame() = %d, want 0", safe.ExplosionFrame())
	}
}

func TestAdvanceExplosion_IdleWhilePlaying(t *testing.T) {
	b := mustBoard(t, 3, 3, world.Position{X: 1, Y: 1})
	for i := 0; i < 10; i++ {
		b.Tick()
	}
	if b.ExplosionPending() != 0 {
		t.Errorf("ExplosionPending() = %d, want 0", b.ExplosionPending())
	}
	if s, _ := b.CellState(1, 1); s.Revealed || s.ExplosionFrame != 0 {
		t.Error("mine changed state without a loss")
	}
}
