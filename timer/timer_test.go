package timer

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestManager_OneShot(t *testing.T) {
	manager := NewManager()
	defer manager.Stop()

	var fired int32
	manager.AddTimer(50*time.Millisecond, 0, func() {
		atomic.AddInt32(&fired, 1)
	})

	time.Sleep(500 * time.Millisecond)

	if got := atomic.LoadInt32(&fired); got != 1 {
		t.Fatalf("Expected one-shot timer to fire exactly once, got %d", got)
	}
}

func TestManager_Repeating(t *testing.T) {
	manager := NewManager()
	defer manager.Stop()

	var fired int32
	id := manager.AddTimer(50*time.Millisecond, 100*time.Millisecond, func() {
		atomic.AddInt32(&fired, 1)
	})

	time.Sleep(600 * time.Millisecond)
	manager.RemoveTimer(id)

	if got := atomic.LoadInt32(&fired); got < 2 {
		t.Fatalf("Expected repeating timer to fire at least twice, got %d", got)
	}
}

func TestManager_RemoveTimer(t *testing.T) {
	manager := NewManager()
	defer manager.Stop()

	var fired int32
	id := manager.AddTimer(300*time.Millisecond, 0, func() {
		atomic.AddInt32(&fired, 1)
	})
	manager.RemoveTimer(id)

	time.Sleep(600 * time.Millisecond)

	if got := atomic.LoadInt32(&fired); got != 0 {
		t.Fatalf("Removed timer must not fire, got %d fires", got)
	}
}

func TestManager_RemoveUnknownTimer(t *testing.T) {
	manager := NewManager()
	defer manager.Stop()

	// Removing a nonexistent ID must not panic or disturb other tasks.
	manager.RemoveTimer(9999)

	var fired int32
	manager.AddTimer(50*time.Millisecond, 0, func() {
		atomic.AddInt32(&fired, 1)
	})
	time.Sleep(400 * time.Millisecond)

	if got := atomic.LoadInt32(&fired); got != 1 {
		t.Fatalf("Expected timer to fire once, got %d", got)
	}
}

func TestManager_Stop(t *testing.T) {
	manager := NewManager()

	var fired int32
	manager.AddTimer(300*time.Millisecond, 0, func() {
		atomic.AddInt32(&fired, 1)
	})

	manager.Stop()
	manager.Stop() // idempotent

	time.Sleep(600 * time.Millisecond)

	if got := atomic.LoadInt32(&fired); got != 0 {
		t.Fatalf("Stopped manager must not fire pending tasks, got %d", got)
	}
}

func TestManager_Ordering(t *testing.T) {
	manager := NewManager()
	defer manager.Stop()

	order := make(chan int, 2)
	manager.AddTimer(250*time.Millisecond, 0, func() { order <- 2 })
	manager.AddTimer(50*time.Millisecond, 0, func() { order <- 1 })

	time.Sleep(600 * time.Millisecond)

	if len(order) != 2 {
		t.Fatalf("Expected both timers to fire, got %d", len(order))
	}
	if first := <-order; first != 1 {
		t.Fatalf("Expected the earlier timer to fire first, got %d", first)
	}
}
