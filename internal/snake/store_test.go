package snake

import (
	"sync"
	"testing"
	"time"
)

// next reads one snapshot or fails after a timeout.
func next(t *testing.T, sub *Subscription) Snapshot {
	t.Helper()
	select {
	case snap, ok := <-sub.Updates():
		if !ok {
			t.Fatal("subscription closed")
		}
		return snap
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for snapshot")
	}
	return Snapshot{}
}

func assertNoUpdate(t *testing.T, sub *Subscription) {
	t.Helper()
	select {
	case snap := <-sub.Updates():
		t.Fatalf("unexpected snapshot seq=%d", snap.Seq)
	default:
	}
}

func TestStoreInitialSnapshot(t *testing.T) {
	store := NewStore(NewRandomFood(1, 0))

	snap := store.Snapshot()
	if snap.Seq != 0 {
		t.Errorf("Seq = %d, expected 0", snap.Seq)
	}
	if snap.Head() != (Cell{X: 10, Y: 10}) || snap.Food != (Cell{X: 15, Y: 15}) {
		t.Errorf("unexpected initial snapshot %+v", snap)
	}
	if snap.Direction != DirRight || snap.Score != 0 || snap.GameOver {
		t.Errorf("unexpected initial snapshot %+v", snap)
	}
}

func TestStoreSnapshotIsCopy(t *testing.T) {
	store := NewStore(NewRandomFood(1, 0))

	snap := store.Snapshot()
	snap.Snake[0] = Cell{X: 0, Y: 0}

	if store.Snapshot().Head() != (Cell{X: 10, Y: 10}) {
		t.Error("mutating a snapshot changed the store")
	}
}

func TestStoreSubscribeReceivesCurrent(t *testing.T) {
	store := NewStore(NewRandomFood(1, 0))
	store.Tick()

	sub := store.Subscribe(4)
	defer sub.Close()

	snap := next(t, sub)
	if snap.Seq != 1 {
		t.Errorf("Seq = %d, expected 1", snap.Seq)
	}
	if snap.Head() != (Cell{X: 11, Y: 10}) {
		t.Errorf("Head() = %v, expected (11,10)", snap.Head())
	}
}

func TestStorePublishesInOrder(t *testing.T) {
	store := NewStore(NewRandomFood(1, 0))
	sub := store.Subscribe(8)
	defer sub.Close()

	next(t, sub) // initial

	store.Tick()
	store.ApplyInput(KeyArrowDown)
	store.Tick()

	wantHeads := []Cell{{X: 11, Y: 10}, {X: 11, Y: 10}, {X: 11, Y: 11}}
	for i, want := range wantHeads {
		snap := next(t, sub)
		if snap.Seq != uint64(i+1) {
			t.Errorf("snapshot %d: Seq = %d, expected %d", i, snap.Seq, i+1)
		}
		if snap.Head() != want {
			t.Errorf("snapshot %d: Head() = %v, expected %v", i, snap.Head(), want)
		}
	}
	assertNoUpdate(t, sub)
}

func TestStoreIgnoredInputDoesNotPublish(t *testing.T) {
	store := NewStore(NewRandomFood(1, 0))
	sub := store.Subscribe(8)
	defer sub.Close()
	next(t, sub)

	store.ApplyInput(KeyArrowLeft)  // reversal
	store.ApplyInput(KeyArrowRight) // same direction
	store.ApplyInput("Escape")      // unknown

	assertNoUpdate(t, sub)
	if store.Snapshot().Seq != 0 {
		t.Errorf("Seq = %d, expected 0", store.Snapshot().Seq)
	}
}

func TestStoreGameOverAndReset(t *testing.T) {
	start := State{
		Snake:     []Cell{{X: 19, Y: 10}},
		Food:      Cell{X: 15, Y: 15},
		Direction: DirRight,
		Score:     2,
	}
	store := NewStore(NewRandomFood(1, 0), WithState(start))
	sub := store.Subscribe(8)
	defer sub.Close()
	next(t, sub)

	snap := store.Tick()
	if !snap.GameOver || snap.Phase() != PhaseGameOver {
		t.Fatal("expected game over at the right wall")
	}
	if snap.Head() != (Cell{X: 19, Y: 10}) || snap.Score != 2 {
		t.Errorf("state changed on collision: %+v", snap)
	}
	next(t, sub)

	// Terminal for tick and input
	store.Tick()
	store.ApplyInput(KeyArrowUp)
	assertNoUpdate(t, sub)

	snap = store.Reset()
	if snap.GameOver || snap.Score != 0 || snap.Len() != 1 || snap.Direction != DirRight {
		t.Errorf("Reset() = %+v, expected initial state", snap)
	}
	if snap.Food != (Cell{X: 15, Y: 15}) {
		t.Errorf("Food = %v, expected (15,15)", snap.Food)
	}
	if got := next(t, sub); got.Seq != snap.Seq {
		t.Errorf("published Seq = %d, expected %d", got.Seq, snap.Seq)
	}
}

func TestSubscriptionDropsOldest(t *testing.T) {
	store := NewStore(NewRandomFood(1, 0))
	sub := store.Subscribe(2)
	defer sub.Close()

	for i := 0; i < 5; i++ {
		store.Tick()
	}

	if got := next(t, sub).Seq; got != 4 {
		t.Errorf("first buffered Seq = %d, expected 4", got)
	}
	if got := next(t, sub).Seq; got != 5 {
		t.Errorf("second buffered Seq = %d, expected 5", got)
	}
	assertNoUpdate(t, sub)
}

func TestSubscriptionClose(t *testing.T) {
	store := NewStore(NewRandomFood(1, 0))
	sub := store.Subscribe(8)

	sub.Close()
	sub.Close() // idempotent

	select {
	case <-sub.Done():
	default:
		t.Error("Done() not closed after Close()")
	}

	store.Tick()

	for snap := range sub.Updates() {
		if snap.Seq != 0 {
			t.Errorf("received Seq = %d after Close()", snap.Seq)
		}
	}
}

func TestStoreConcurrentAccess(t *testing.T) {
	store := NewStore(NewRandomFood(11, 0))
	sub := store.Subscribe(4)
	defer sub.Close()

	keys := []Key{KeyArrowUp, KeyArrowLeft, KeyArrowDown, KeyArrowRight}

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			if store.Tick().GameOver {
				store.Reset()
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			store.ApplyInput(keys[i%len(keys)])
		}
	}()
	go func() {
		defer wg.Done()
		var last uint64
		for i := 0; i < 500; i++ {
			snap := store.Snapshot()
			if snap.Seq < last {
				t.Errorf("Seq went backwards: %d after %d", snap.Seq, last)
				return
			}
			last = snap.Seq
		}
	}()
	wg.Wait()

	snap := store.Snapshot()
	checkInvariants(t, 0, State{Snake: snap.Snake, Food: snap.Food})
}

func TestDeterminism(t *testing.T) {
	// Two stores with the same seed should produce identical snapshots
	s1 := NewStore(NewRandomFood(12345, 0))
	s2 := NewStore(NewRandomFood(12345, 0))

	script := map[int]Key{3: KeyArrowDown, 8: KeyArrowRight, 10: KeyArrowUp, 14: KeyArrowRight}
	for i := 0; i < 40; i++ {
		if k, ok := script[i]; ok {
			s1.ApplyInput(k)
			s2.ApplyInput(k)
		}
		s1.Tick()
		s2.Tick()
	}

	snap1, snap2 := s1.Snapshot(), s2.Snapshot()
	if snap1.String() != snap2.String() {
		t.Errorf("boards differ:\n%s\nvs\n%s", snap1, snap2)
	}
	if snap1.Seq != snap2.Seq {
		t.Errorf("Seq mismatch: %d vs %d", snap1.Seq, snap2.Seq)
	}
}

func TestSnapshotKindAt(t *testing.T) {
	snap := newSnapshot(0, State{
		Snake: []Cell{{X: 2, Y: 2}, {X: 1, Y: 2}},
		Food:  Cell{X: 5, Y: 5},
	})

	tests := []struct {
		cell Cell
		want CellKind
	}{
		{Cell{X: 2, Y: 2}, KindHead},
		{Cell{X: 1, Y: 2}, KindBody},
		{Cell{X: 5, Y: 5}, KindFood},
		{Cell{X: 0, Y: 0}, KindEmpty},
	}
	for _, tc := range tests {
		if got := snap.KindAt(tc.cell); got != tc.want {
			t.Errorf("KindAt(%v) = %v, expected %v", tc.cell, got, tc.want)
		}
	}
}
