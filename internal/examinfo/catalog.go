package examinfo

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownRole = errors.New("unknown role")

// Subject is one section of the written exam and its share of the paper
type Subject struct {
	Name      string
	Questions int
	Marks     int
	Color     string
}

// SyllabusSection lists the topics of one syllabus tab
type SyllabusSection struct {
	Subject string
	Topics  []string
}

// Pattern is the exam pattern of a recruitment role
type Pattern struct {
	Role           string
	Title          string
	TotalQuestions int
	MaxMarks       int
	// PassMarks is free text, some roles qualify per part
	PassMarks   string
	CorrectMark float64
	NegMark     float64
	Subjects    []Subject
	Syllabus    []SyllabusSection
}

// DefaultRole is the role shown when the page first opens
const DefaultRole = "gd"

var catalog = map[string]Pattern{
	"gd": {
		Role:           "gd",
		Title:          "General Duty (GD)",
		TotalQuestions: 50,
		MaxMarks:       100,
		PassMarks:      "35",
		CorrectMark:    2,
		NegMark:        0.5,
		Subjects: []Subject{
			{Name: "General Knowledge", Questions: 15, Marks: 30, Color: "#d97706"},
			{Name: "General Science", Questions: 15, Marks: 30, Color: "#16a34a"},
			{Name: "Maths", Questions: 15, Marks: 30, Color: "#2563eb"},
			{Name: "Logical Reasoning", Questions: 5, Marks: 10, Color: "#9333ea"},
		},
		Syllabus: []SyllabusSection{
			{Subject: "General Knowledge", Topics: []string{"Current Affairs", "Sports", "History", "Geography", "Awards"}},
			{Subject: "General Science", Topics: []string{"Biology (10th)", "Chemistry (10th)", "Physics (10th)"}},
			{Subject: "Maths", Topics: []string{"Number System", "HCF & LCM", "Percentage", "Average", "Ratio", "Mensuration"}},
			{Subject: "Logical Reasoning", Topics: []string{"Number Series", "Coding-Decoding", "Direction Sense", "Blood Relations"}},
		},
	},
	"tech": {
		Role:           "tech",
		Title:          "Technical",
		TotalQuestions: 50,
		MaxMarks:       200,
		PassMarks:      "80",
		CorrectMark:    4,
		NegMark:        1,
		Subjects: []Subject{
			{Name: "GK", Questions: 10, Marks: 40, Color: "#d97706"},
			{Name: "Maths", Questions: 15, Marks: 60, Color: "#2563eb"},
			{Name: "Physics", Questions: 15, Marks: 60, Color: "#0891b2"},
			{Name: "Chemistry", Questions: 10, Marks: 40, Color: "#be123c"},
		},
		Syllabus: []SyllabusSection{
			{Subject: "GK", Topics: []string{"History", "Geography", "Current Affairs"}},
			{Subject: "Maths", Topics: []string{"Algebra", "Matrices", "Trigonometry", "Calculus"}},
			{Subject: "Physics", Topics: []string{"Kinematics", "Laws of Motion", "Thermodynamics"}},
			{Subject: "Chemistry", Topics: []string{"Physical", "Inorganic", "Organic"}},
		},
	},
	"clerk": {
		Role:           "clerk",
		Title:          "Clerk / Store Keeper",
		TotalQuestions: 50,
		MaxMarks:       200,
		PassMarks:      "80 (32/part)",
		CorrectMark:    4,
		NegMark:        1,
		Subjects: []Subject{
			{Name: "GK & Science", Questions: 10, Marks: 40, Color: "#d97706"},
			{Name: "Maths", Questions: 10, Marks: 40, Color: "#2563eb"},
			{Name: "Computer Science", Questions: 5, Marks: 20, Color: "#4f46e5"},
			{Name: "General English", Questions: 25, Marks: 100, Color: "#059669"},
		},
		Syllabus: []SyllabusSection{
			{Subject: "GK & Science", Topics: []string{"History", "Geography", "Basic Science"}},
			{Subject: "Maths", Topics: []string{"Arithmetic", "Algebra", "Mensuration"}},
			{Subject: "Computer", Topics: []string{"Basic CS", "MS Office", "Input/Output"}},
			{Subject: "English", Topics: []string{"Grammar", "Comprehension", "Vocabulary"}},
		},
	},
}

// Roles returns the known role keys in sorted order
func Roles() []string {
	roles := make([]string, 0, len(catalog))
	for role := range catalog {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	return roles
}

// Lookup returns the pattern for a role key
func Lookup(role string) (Pattern, error) {
	p, ok := catalog[role]
	if !ok {
		return Pattern{}, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
	return p, nil
}

// FirstSubject is the syllabus tab selected when the role is opened
func (p Pattern) FirstSubject() string {
	if len(p.Syllabus) == 0 {
		return ""
	}
	return p.Syllabus[0].Subject
}

// Topics returns the syllabus topics of a subject tab
func (p Pattern) Topics(subject string) ([]string, bool) {
	for _, section := range p.Syllabus {
		if section.Subject == subject {
			return append([]string(nil), section.Topics...), true
		}
	}
	return nil, false
}
