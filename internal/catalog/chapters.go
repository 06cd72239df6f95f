package catalog

// chapters is the sample NCERT catalog keyed by class level then subject.
var chapters = map[string]map[string][]Chapter{
	"1": {
		"english": {
			{Chapter: "Chapter 1", Title: "A Happy Child", Topics: []string{"Family", "Happiness", "Sharing"}},
			{Chapter: "Chapter 2", Title: "The Kite", Topics: []string{"Colors", "Sky", "Flying"}},
		},
		"mathematics": {
			{Chapter: "Chapter 1", Title: "Shapes and Space", Topics: []string{"Circles", "Squares", "Triangles"}},
			{Chapter: "Chapter 2", Title: "Numbers from One to Nine", Topics: []string{"Counting", "Recognition", "Writing"}},
		},
		"science": {
			{Chapter: "Chapter 1", Title: "Plants Around Us", Topics: []string{"Trees", "Flowers", "Leaves"}},
			{Chapter: "Chapter 2", Title: "Animals Around Us", Topics: []string{"Pets", "Wild Animals", "Birds"}},
		},
	},
	"2": {
		"english": {
			{Chapter: "Chapter 1", Title: "First Day at School", Topics: []string{"School", "Friends", "Learning"}},
			{Chapter: "Chapter 2", Title: "Haldi's Adventure", Topics: []string{"Adventure", "Courage", "Friendship"}},
		},
		"mathematics": {
			{Chapter: "Chapter 1", Title: "What is Long, What is Round?", Topics: []string{"Measurement", "Shapes", "Comparison"}},
			{Chapter: "Chapter 2", Title: "Counting in Groups", Topics: []string{"Grouping", "Addition", "Subtraction"}},
		},
		"science": {
			{Chapter: "Chapter 1", Title: "My Family", Topics: []string{"Family Members", "Relationships", "Care"}},
			{Chapter: "Chapter 2", Title: "My Body", Topics: []string{"Body Parts", "Health", "Hygiene"}},
		},
	},
	"3": {
		"english": {
			{Chapter: "Chapter 1", Title: "The Magic Garden", Topics: []string{"Nature", "Growth", "Seasons"}},
			{Chapter: "Chapter 2", Title: "Bird Talk", Topics: []string{"Communication", "Animals", "Sounds"}},
		},
		"mathematics": {
			{Chapter: "Chapter 1", Title: "Where to Look From?", Topics: []string{"Directions", "Position", "Observation"}},
			{Chapter: "Chapter 2", Title: "Fun with Numbers", Topics: []string{"Addition", "Subtraction", "Patterns"}},
		},
		"science": {
			{Chapter: "Chapter 1", Title: "Water", Topics: []string{"Water Cycle", "Uses", "Conservation"}},
			{Chapter: "Chapter 2", Title: "Air Around Us", Topics: []string{"Breathing", "Wind", "Pollution"}},
		},
	},
	"4": {
		"english": {
			{Chapter: "Chapter 1", Title: "Wake Up!", Topics: []string{"Morning Routine", "Time", "Responsibility"}},
			{Chapter: "Chapter 2", Title: "Noses", Topics: []string{"Senses", "Animals", "Adaptation"}},
		},
		"mathematics": {
			{Chapter: "Chapter 1", Title: "Building with Bricks", Topics: []string{"Patterns", "Shapes", "Construction"}},
			{Chapter: "Chapter 2", Title: "Long and Short", Topics: []string{"Measurement", "Comparison", "Units"}},
		},
		"science": {
			{Chapter: "Chapter 1", Title: "Going to School", Topics: []string{"Transportation", "Safety", "Environment"}},
			{Chapter: "Chapter 2", Title: "Ear to Ear", Topics: []string{"Communication", "Sounds", "Language"}},
		},
	},
	"5": {
		"english": {
			{Chapter: "Chapter 1", Title: "Ice-cream Man", Topics: []string{"Seasons", "Joy", "Community"}},
			{Chapter: "Chapter 2", Title: "Wonderful Waste!", Topics: []string{"Recycling", "Environment", "Creativity"}},
		},
		"mathematics": {
			{Chapter: "Chapter 1", Title: "The Fish Tale", Topics: []string{"Measurement", "Estimation", "Problem Solving"}},
			{Chapter: "Chapter 2", Title: "Shapes and Angles", Topics: []string{"Geometry", "Angles", "Patterns"}},
		},
		"science": {
			{Chapter: "Chapter 1", Title: "Super Senses", Topics: []string{"Five Senses", "Animals", "Adaptation"}},
			{Chapter: "Chapter 2", Title: "A Snake Charmer's Story", Topics: []string{"Snakes", "Traditional Knowledge", "Respect"}},
		},
	},
}

// Chapters returns the catalog chapters for a class level and subject.
// The result is nil when the catalog has no entry.
func Chapters(classLevel, subject string) []Chapter {
	list := chapters[classLevel][subject]
	if list == nil {
		return nil
	}
	out := make([]Chapter, len(list))
	copy(out, list)
	return out
}

// CatalogSubjects lists the subjects with chapters for a class level, in
// subject registry order.
func CatalogSubjects(classLevel string) []Subject {
	bySubject := chapters[classLevel]
	var out []Subject
	for _, s := range subjects {
		if _, ok := bySubject[s.Value]; ok {
			out = append(out, s)
		}
	}
	return out
}
