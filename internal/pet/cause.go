package pet

// DeathCause records why the pet died. The zero value means it has not.
type DeathCause int

const (
	NotDead DeathCause = iota
	OldAge
	Starvation
	PoorHygiene
	BrokenHeart
)

func (c DeathCause) String() string {
	switch c {
	case OldAge:
		return "age"
	case Starvation:
		return "hunger"
	case PoorHygiene:
		return "hygiene"
	case BrokenHeart:
		return "happiness"
	default:
		return "none"
	}
}

// SleepCause records what put the pet to sleep.
type SleepCause int

const (
	Exhausted SleepCause = iota // energy ran out
	Overfed                     // food reached max while feeding
	Bedtime                     // player put it to bed
)

func (c SleepCause) String() string {
	switch c {
	case Exhausted:
		return "energy"
	case Overfed:
		return "food"
	case Bedtime:
		return "bed"
	default:
		return "unknown"
	}
}

// WakeCause records what woke the pet up.
type WakeCause int

const (
	Rested WakeCause = iota // energy refilled during sleep
	Roused                  // player woke it
)

func (c WakeCause) String() string {
	if c == Rested {
		return "rested"
	}
	return "player"
}

// Action identifies a player action in events.
type Action int

const (
	ActFeed Action = iota
	ActBed
	ActWake
	ActClean
	ActPlay
)

func (a Action) String() string {
	switch a {
	case ActFeed:
		return "feed"
	case ActBed:
		return "bed"
	case ActWake:
		return "wake"
	case ActClean:
		return "clean"
	case ActPlay:
		return "play"
	default:
		return "unknown"
	}
}

// Reason explains why an action was refused.
type Reason int

const (
	ReasonDead Reason = iota
	ReasonAsleep
	ReasonAlreadyAsleep
	ReasonAlreadyAwake
)

func (r Reason) String() string {
	switch r {
	case ReasonDead:
		return "dead"
	case ReasonAsleep:
		return "asleep"
	case ReasonAlreadyAsleep:
		return "already_asleep"
	case ReasonAlreadyAwake:
		return "already_awake"
	default:
		return "unknown"
	}
}

// Stage is a life stage reached by age.
type Stage int

const (
	Baby Stage = iota
	Toddler
	Teenager
	Adult
	MiddleAged
	Elder
)

func (s Stage) String() string {
	switch s {
	case Toddler:
		return "toddler"
	case Teenager:
		return "teenager"
	case Adult:
		return "adult"
	case MiddleAged:
		return "middle_aged"
	case Elder:
		return "elder"
	default:
		return "baby"
	}
}

// milestones maps the age at which each stage begins.
var milestones = map[int]Stage{
	3:  Toddler,
	13: Teenager,
	18: Adult,
	50: MiddleAged,
	75: Elder,
}

// StageForAge returns the life stage for an age.
func StageForAge(age int) Stage {
	stage := Baby
	for at, s := range milestones {
		if age >= at && s > stage {
			stage = s
		}
	}
	return stage
}
