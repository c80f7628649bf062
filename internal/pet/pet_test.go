package pet

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/moorebrett0/termpet/internal/clock"
)

func startPet(t *testing.T) (*Pet, context.CancelFunc) {
	t.Helper()
	p := New(NewState("Mochi", "octopus", clock.System))
	ctx, cancel := context.WithCancel(context.Background())
	go p.Run(ctx)
	t.Cleanup(cancel)
	return p, cancel
}

func TestUpdateIsSerialized(t *testing.T) {
	p, _ := startPet(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := p.Update(ctx, func(s *State) { s.DrainFood() }); err != nil {
				t.Errorf("update: %v", err)
			}
		}()
	}
	wg.Wait()

	snap, err := p.Snapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snap.Food != FoodMax-40 {
		t.Fatalf("food = %d, want %d", snap.Food, FoodMax-40)
	}
}

func TestEventsReachSinksInOrder(t *testing.T) {
	p, _ := startPet(t)

	var mu sync.Mutex
	var got []Event
	p.Subscribe(SinkFunc(func(e Event) {
		mu.Lock()
		got = append(got, e)
		mu.Unlock()
	}))

	_, err := p.Update(context.Background(), func(s *State) {
		s.Energy = 1
		s.DrainEnergy()
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 2 {
		t.Fatalf("got %d events, want 2: %+v", len(got), got)
	}
	if _, ok := got[0].(FellAsleep); !ok {
		t.Fatalf("first event = %T, want FellAsleep", got[0])
	}
	stats, ok := got[1].(StatsChanged)
	if !ok {
		t.Fatalf("second event = %T, want StatsChanged", got[1])
	}
	if stats.Snapshot.Awake() {
		t.Fatal("stats snapshot should show the pet asleep")
	}
}

func TestUpdateAfterStop(t *testing.T) {
	p, cancel := startPet(t)
	cancel()

	deadline := time.After(time.Second)
	for {
		_, err := p.Snapshot(context.Background())
		if errors.Is(err, ErrStopped) {
			return
		}
		select {
		case <-deadline:
			t.Fatalf("expected ErrStopped, last err = %v", err)
		default:
		}
	}
}
