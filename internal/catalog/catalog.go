// Package catalog holds the static registries used to build lesson
// requests: enrichment modules, personas, class levels, subjects and the
// NCERT chapter catalog. Everything here is read-only after init.
package catalog

// Module is a global learning perspective that can be woven into a lesson.
type Module struct {
	ID          string
	Name        string
	Flag        string
	Description string
	Methodology string
}

// Persona is an AI character profile used to flavor tone and narration.
type Persona struct {
	ID           string
	Name         string
	Personality  string
	VoiceStyle   string
	SpeakingRate float64
	Pitch        float64
}

// ClassLevel is one grade of the primary curriculum.
type ClassLevel struct {
	Value   string
	Label   string
	AgeBand string
}

// Subject is a curriculum subject with its display label.
type Subject struct {
	Value string
	Label string
}

// Chapter is one chapter of the curriculum catalog.
type Chapter struct {
	Chapter string
	Title   string
	Topics  []string
}

// DefaultPersonaID is used when a request names no persona or an unknown one.
const DefaultPersonaID = "friendly_teacher"

// DefaultAgeBand applies to class levels missing from the table (class 3).
const DefaultAgeBand = "8-9"

var modules = []Module{
	{
		ID:          "china",
		Name:        "China Focus",
		Flag:        "🇨🇳",
		Description: "Discipline & Repetition",
		Methodology: "Quick drills, repetition exercises, speed practice",
	},
	{
		ID:          "japan",
		Name:        "Japan Focus",
		Flag:        "🇯🇵",
		Description: "Precision & Mindfulness",
		Methodology: "Careful observation, group harmony, respectful participation",
	},
	{
		ID:          "usa",
		Name:        "US Focus",
		Flag:        "🇺🇸",
		Description: "Curiosity & Experiments",
		Methodology: `Hands-on experiments, "what if" questions, individual exploration`,
	},
	{
		ID:          "europe",
		Name:        "Europe Focus",
		Flag:        "🇪🇺",
		Description: "Creativity & Art",
		Methodology: "Art projects, creative storytelling, cultural connections",
	},
}

var personas = []Persona{
	{
		ID:           "friendly_teacher",
		Name:         "Vidya",
		Personality:  "Warm, encouraging, patient",
		VoiceStyle:   "Gentle and clear",
		SpeakingRate: 0.9,
		Pitch:        1.1,
	},
	{
		ID:           "curious_explorer",
		Name:         "Arjun",
		Personality:  "Curious, energetic, fun",
		VoiceStyle:   "Enthusiastic and engaging",
		SpeakingRate: 1.1,
		Pitch:        1.2,
	},
	{
		ID:           "wise_storyteller",
		Name:         "Dadi",
		Personality:  "Wise, storytelling, cultural",
		VoiceStyle:   "Storytelling with warmth",
		SpeakingRate: 0.8,
		Pitch:        0.9,
	},
}

var classLevels = []ClassLevel{
	{Value: "1", Label: "Class 1 (Ages 6-7)", AgeBand: "6-7"},
	{Value: "2", Label: "Class 2 (Ages 7-8)", AgeBand: "7-8"},
	{Value: "3", Label: "Class 3 (Ages 8-9)", AgeBand: "8-9"},
	{Value: "4", Label: "Class 4 (Ages 9-10)", AgeBand: "9-10"},
	{Value: "5", Label: "Class 5 (Ages 10-11)", AgeBand: "10-11"},
}

var subjects = []Subject{
	{Value: "english", Label: "English"},
	{Value: "hindi", Label: "Hindi"},
	{Value: "mathematics", Label: "Mathematics"},
	{Value: "science", Label: "Environmental Science"},
	{Value: "social", Label: "Social Studies"},
	{Value: "moral", Label: "Moral Science"},
}

// Modules returns every enrichment module in registry order.
func Modules() []Module {
	return append([]Module(nil), modules...)
}

// LookupModule returns the module with the given id.
func LookupModule(id string) (Module, bool) {
	for _, m := range modules {
		if m.ID == id {
			return m, true
		}
	}
	return Module{}, false
}

// ResolveModules maps ids to descriptors with set semantics: unknown ids
// are dropped, duplicates collapse, and the result follows registry order
// regardless of input order.
func ResolveModules(ids []string) []Module {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []Module
	for _, m := range modules {
		if want[m.ID] {
			out = append(out, m)
		}
	}
	return out
}

// Personas returns every persona in registry order.
func Personas() []Persona {
	return append([]Persona(nil), personas...)
}

// LookupPersona returns the persona with the given id.
func LookupPersona(id string) (Persona, bool) {
	for _, p := range personas {
		if p.ID == id {
			return p, true
		}
	}
	return Persona{}, false
}

// ResolvePersona returns the named persona, or the default persona when id
// is empty or unknown.
func ResolvePersona(id string) Persona {
	if p, ok := LookupPersona(id); ok {
		return p
	}
	p, _ := LookupPersona(DefaultPersonaID)
	return p
}

// ClassLevels returns the supported class levels in order.
func ClassLevels() []ClassLevel {
	return append([]ClassLevel(nil), classLevels...)
}

// LookupClassLevel returns the class level with the given value.
func LookupClassLevel(value string) (ClassLevel, bool) {
	for _, c := range classLevels {
		if c.Value == value {
			return c, true
		}
	}
	return ClassLevel{}, false
}

// AgeBand maps a class level to its age band, falling back to
// DefaultAgeBand for unknown levels.
func AgeBand(classLevel string) string {
	if c, ok := LookupClassLevel(classLevel); ok {
		return c.AgeBand
	}
	return DefaultAgeBand
}

// Subjects returns the curriculum subjects in order.
func Subjects() []Subject {
	return append([]Subject(nil), subjects...)
}

// SubjectLabel returns the display label for a subject value, or the value
// itself when it is not in the catalog.
func SubjectLabel(value string) string {
	for _, s := range subjects {
		if s.Value == value {
			return s.Label
		}
	}
	return value
}
