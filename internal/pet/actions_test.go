package pet

import (
	"testing"
	"time"
)

func TestActionsRefusedWhileAsleep(t *testing.T) {
	for _, a := range []Action{ActFeed, ActClean, ActPlay} {
		s, _ := newTestState(t)
		s.Hygiene = 1
		s.FallAsleep(Bedtime)
		s.flush()
		before := statsOf(s)

		if s.BeginAction(a) {
			t.Fatalf("%s accepted while asleep", a)
		}
		if s.ActionInFlight {
			t.Fatalf("%s left the latch set", a)
		}
		rejected := eventsOf[Rejected](s.flush())
		if len(rejected) != 1 || rejected[0].Reason != ReasonAsleep {
			t.Fatalf("%s rejection = %+v, want asleep", a, rejected)
		}
		if statsOf(s) != before {
			t.Fatalf("%s changed stats while refused", a)
		}
	}
}

func TestActionsRefusedWhenDead(t *testing.T) {
	for _, a := range []Action{ActFeed, ActBed, ActWake, ActClean, ActPlay} {
		s, _ := newTestState(t)
		s.die(OldAge)
		s.flush()
		if s.BeginAction(a) {
			t.Fatalf("%s accepted on dead pet", a)
		}
		rejected := eventsOf[Rejected](s.flush())
		if len(rejected) != 1 || rejected[0].Reason != ReasonDead || rejected[0].Action != a {
			t.Fatalf("%s rejection = %+v, want dead", a, rejected)
		}
	}
}

func TestSleepStateRefusals(t *testing.T) {
	s, _ := newTestState(t)
	if s.BeginAction(ActWake) {
		t.Fatal("wake accepted while awake")
	}
	if r := eventsOf[Rejected](s.flush()); len(r) != 1 || r[0].Reason != ReasonAlreadyAwake {
		t.Fatalf("wake rejection = %+v", r)
	}

	s.FallAsleep(Bedtime)
	if s.BeginAction(ActBed) {
		t.Fatal("bed accepted while asleep")
	}
	if r := eventsOf[Rejected](s.flush()); len(r) != 1 || r[0].Reason != ReasonAlreadyAsleep {
		t.Fatalf("bed rejection = %+v", r)
	}
}

func TestFeedBelowMaxDoesNotSleep(t *testing.T) {
	s, _ := newTestState(t)
	s.Food = 30
	if !s.BeginAction(ActFeed) {
		t.Fatal("feed refused")
	}
	if !s.Feeding || !s.ActionInFlight {
		t.Fatal("feeding flags not set during action")
	}
	s.FinishAction(ActFeed)
	if s.Food != 45 {
		t.Fatalf("food = %d, want 45", s.Food)
	}
	if s.Mode != Awake {
		t.Fatal("pet fell asleep below max food")
	}
	if s.Feeding || s.ActionInFlight {
		t.Fatal("feeding flags not cleared")
	}
}

func TestFeedToMaxForcesSleep(t *testing.T) {
	s, _ := newTestState(t)
	s.Food = 45
	s.BeginAction(ActFeed)
	s.FinishAction(ActFeed)
	if s.Food != FoodMax {
		t.Fatalf("food = %d, want %d", s.Food, FoodMax)
	}
	sleeps := eventsOf[FellAsleep](s.flush())
	if len(sleeps) != 1 || sleeps[0].Cause != Overfed || sleeps[0].Cause.String() != "food" {
		t.Fatalf("sleep events = %+v, want one caused by food", sleeps)
	}
}

func TestCleanIsRepeatable(t *testing.T) {
	s, _ := newTestState(t)
	s.Hygiene = 1
	for i := 0; i < 2; i++ {
		if !s.BeginAction(ActClean) {
			t.Fatalf("clean %d refused", i+1)
		}
		s.FinishAction(ActClean)
		if s.Hygiene != HygieneMax {
			t.Fatalf("clean %d: hygiene = %d, want %d", i+1, s.Hygiene, HygieneMax)
		}
	}
	if r := eventsOf[Rejected](s.flush()); len(r) != 0 {
		t.Fatalf("unexpected rejections: %+v", r)
	}
}

func TestPlayFillsHappiness(t *testing.T) {
	s, _ := newTestState(t)
	s.Happiness = 80
	s.BeginAction(ActPlay)
	if !s.Playing {
		t.Fatal("playing flag not set")
	}
	s.FinishAction(ActPlay)
	if s.Happiness != HappinessMax {
		t.Fatalf("happiness = %d, want %d", s.Happiness, HappinessMax)
	}
	if got := len(eventsOf[Overjoyed](s.flush())); got != 1 {
		t.Fatalf("got %d Overjoyed events, want 1", got)
	}
}

func TestEarlyBedtimeIsRefusedWithPenalty(t *testing.T) {
	s, c := newTestState(t)
	c.Advance(MinAwake - time.Second)
	before := s.Happiness

	if !s.BeginAction(ActBed) {
		t.Fatal("bed refused up front")
	}
	s.FinishAction(ActBed)

	if s.Mode != Awake {
		t.Fatal("pet went to sleep despite being grumpy")
	}
	if got := before - s.Happiness; got != HappinessPenalty {
		t.Fatalf("happiness dropped by %d, want %d", got, HappinessPenalty)
	}
	if g := eventsOf[Grumbled](s.flush()); len(g) != 1 || g[0].Action != ActBed {
		t.Fatalf("grumble events = %+v", g)
	}
}

func TestBedtimeAfterMinimum(t *testing.T) {
	s, c := newTestState(t)
	c.Advance(MinAwake + time.Second)
	before := s.Happiness

	s.BeginAction(ActBed)
	s.FinishAction(ActBed)
	if s.Mode != Asleep {
		t.Fatal("pet should be asleep")
	}
	if s.Happiness != before {
		t.Fatal("happiness penalty applied to a timely bedtime")
	}
	if got := s.Snapshot().WakeElapsed; got != 0 {
		t.Fatalf("wake timer = %s, want reset", got)
	}
}

func TestEarlyWakeStillWakesWithPenalty(t *testing.T) {
	s, c := newTestState(t)
	s.FallAsleep(Exhausted)
	c.Advance(MinSleep / 2)
	before := s.Happiness

	s.BeginAction(ActWake)
	s.FinishAction(ActWake)
	if s.Mode != Awake {
		t.Fatal("pet should be awake")
	}
	if got := before - s.Happiness; got != HappinessPenalty {
		t.Fatalf("happiness dropped by %d, want %d", got, HappinessPenalty)
	}
	woke := eventsOf[WokeUp](s.flush())
	if len(woke) != 1 || !woke[0].Grumpy || woke[0].Cause != Roused {
		t.Fatalf("wake events = %+v, want one grumpy roused", woke)
	}
}

func TestTimelyWakeHasNoPenalty(t *testing.T) {
	s, c := newTestState(t)
	s.FallAsleep(Exhausted)
	c.Advance(MinSleep + time.Second)
	before := s.Happiness

	s.BeginAction(ActWake)
	s.FinishAction(ActWake)
	if s.Mode != Awake || s.Happiness != before {
		t.Fatalf("mode=%s happiness=%d, want awake with %d", s.Mode, s.Happiness, before)
	}
}

func TestEffectSkippedIfPetDiesMidAction(t *testing.T) {
	s, _ := newTestState(t)
	s.Food = 10
	s.BeginAction(ActFeed)
	s.die(BrokenHeart)
	s.FinishAction(ActFeed)
	if s.Food != 10 {
		t.Fatalf("food = %d, want unchanged 10", s.Food)
	}
	if s.ActionInFlight {
		t.Fatal("latch not released")
	}
}

func TestAbortActionReleasesLatch(t *testing.T) {
	s, _ := newTestState(t)
	s.BeginAction(ActPlay)
	s.AbortAction()
	if s.ActionInFlight || s.Playing {
		t.Fatal("abort left flags set")
	}
	if !s.BeginAction(ActPlay) {
		t.Fatal("latch not free after abort")
	}
}
