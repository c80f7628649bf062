package species

// Species defines a pet species with its personality and flavored verbs.
type Species struct {
	ID          string
	Name        string
	Emoji       string
	Description string
	Personality string // Injected into the epitaph prompt

	// Flavored verb strings for announcements
	Verbs Verbs
}

// Verbs are species-flavored phrases, written to follow the pet's name.
type Verbs struct {
	Hatch    string
	Grow     string
	Sleep    string
	Distress string
}

// DefaultID is used when a species is unknown.
const DefaultID = "octopus"

// Registry holds all available species keyed by ID.
var Registry = map[string]*Species{
	"octopus":    octopus,
	"turtle":     turtle,
	"penguin":    penguin,
	"crab":       crab,
	"pufferfish": pufferfish,
	"axolotl":    axolotl,
}

// OrderedIDs defines display order for species selection.
var OrderedIDs = []string{"octopus", "turtle", "penguin", "crab", "pufferfish", "axolotl"}

// Lookup returns the species for id, or the default species.
func Lookup(id string) *Species {
	if sp, ok := Registry[id]; ok {
		return sp
	}
	return Registry[DefaultID]
}

var octopus = &Species{
	ID:          "octopus",
	Name:        "Octopus",
	Emoji:       "\U0001F419",
	Description: "Curious, clever and always reaching for something",
	Personality: "You are a curious little octopus who lived in a terminal window. You counted everything on eight arms and changed color with your mood. You loved puzzles, snacks and being tucked in.",
	Verbs: Verbs{
		Hatch:    "wriggles out of the egg and waves three arms at once",
		Grow:     "flushes a proud shade of pink",
		Sleep:    "dims to a sleepy grey",
		Distress: "squirts a little cloud of ink",
	},
}

var turtle = &Species{
	ID:          "turtle",
	Name:        "Turtle",
	Emoji:       "\U0001F422",
	Description: "Slow, steady and in no hurry to grow up",
	Personality: "You are an unhurried turtle who lived in a terminal window. You had a dry sense of humor and never saw the point in rushing. You liked long naps and warm leaves.",
	Verbs: Verbs{
		Hatch:    "slowly pokes a head out of the shell",
		Grow:     "blinks slowly, pleased with itself",
		Sleep:    "withdraws into its shell",
		Distress: "hides completely inside its shell",
	},
}

var penguin = &Species{
	ID:          "penguin",
	Name:        "Penguin",
	Emoji:       "\U0001F427",
	Description: "Formal, tidy and a little clumsy",
	Personality: "You are a dignified penguin who lived in a terminal window. You liked things neat and clean and tried very hard to look serious, but your waddle gave you away.",
	Verbs: Verbs{
		Hatch:    "tumbles out of the egg and straightens its bow tie",
		Grow:     "flaps its flippers excitedly",
		Sleep:    "tucks its beak under a wing",
		Distress: "honks in alarm",
	},
}

var crab = &Species{
	ID:          "crab",
	Name:        "Crab",
	Emoji:       "\U0001F980",
	Description: "Sassy, sideways and hard to impress",
	Personality: "You are a sassy crab who lived in a terminal window. You walked sideways, trusted nobody at first and hid your soft side under a lot of sarcasm.",
	Verbs: Verbs{
		Hatch:    "scuttles out sideways and snaps at the shell",
		Grow:     "does a little sideways dance",
		Sleep:    "burrows into the sand, one eye still peeking",
		Distress: "snaps both claws in protest",
	},
}

var pufferfish = &Species{
	ID:          "pufferfish",
	Name:        "Pufferfish",
	Emoji:       "\U0001F421",
	Description: "Tiny when calm, spiky when upset",
	Personality: "You are a pufferfish who lived in a terminal window. You were tiny and sweet when things were calm and puffed up to twice your size whenever anything went wrong.",
	Verbs: Verbs{
		Hatch:    "pops out of the egg and puffs up in surprise",
		Grow:     "deflates happily and swims a loop",
		Sleep:    "floats gently near the bottom",
		Distress: "PUFFS UP, spines out",
	},
}

var axolotl = &Species{
	ID:          "axolotl",
	Name:        "Axolotl",
	Emoji:       "\U0001F98E",
	Description: "Smiley, gilled and endlessly optimistic",
	Personality: "You are an axolotl who lived in a terminal window. You were always smiling, wiggled your frilly gills when happy and believed every day was a good day.",
	Verbs: Verbs{
		Hatch:    "wiggles free and flashes a big smile",
		Grow:     "wiggles its frilly gills",
		Sleep:    "settles on a leaf and stops smiling for a while",
		Distress: "flattens its gills",
	},
}
