// Package quiz holds the fixed admissions question bank and its grading rules.
package quiz

const (
	CategoryMaths   = "Maths"
	CategoryEnglish = "English"
	CategoryTech    = "Tech"
)

type Question struct {
	ID           string
	Prompt       string
	Options      []string
	CorrectIndex int
	Category     string
}

// PublicQuestion is what the quiz page may see.
type PublicQuestion struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Category string   `json:"category"`
}

var maths = []Question{
	{ID: "m1", Prompt: "What is the value of 2³ × 3²?", Options: []string{"72", "54", "36", "18"}, CorrectIndex: 0},
	{ID: "m2", Prompt: "If x + 5 = 12, what is the value of x?", Options: []string{"5", "7", "12", "17"}, CorrectIndex: 1},
	{ID: "m3", Prompt: "What is the square root of 144?", Options: []string{"10", "12", "14", "16"}, CorrectIndex: 1},
	{
		ID:           "m4",
		Prompt:       "If a triangle has angles of 60°, 60°, and 60°, what type of triangle is it?",
		Options:      []string{"Right triangle", "Equilateral triangle", "Isosceles triangle", "Scalene triangle"},
		CorrectIndex: 1,
	},
	{ID: "m5", Prompt: "What is 15% of 200?", Options: []string{"25", "30", "35", "40"}, CorrectIndex: 1},
}

var english = []Question{
	{
		ID:     "e1",
		Prompt: "Choose the correct sentence:",
		Options: []string{
			"She don't like pizza.",
			"She doesn't like pizza.",
			"She doesn't likes pizza.",
			"She don't likes pizza.",
		},
		CorrectIndex: 1,
	},
	{ID: "e2", Prompt: "What is the synonym of 'Benevolent'?", Options: []string{"Cruel", "Kind", "Angry", "Sad"}, CorrectIndex: 1},
	{
		ID:           "e3",
		Prompt:       "Choose the correct form: 'I have _____ to the store yesterday.'",
		Options:      []string{"went", "go", "gone", "going"},
		CorrectIndex: 0,
	},
	{
		ID:           "e4",
		Prompt:       "What does 'Procrastinate' mean?",
		Options:      []string{"To do immediately", "To delay", "To complete", "To start"},
		CorrectIndex: 1,
	},
	{
		ID:     "e5",
		Prompt: "Identify the error: 'The team are playing well.'",
		Options: []string{
			"No error",
			"'are' should be 'is'",
			"'playing' should be 'play'",
			"'well' should be 'good'",
		},
		CorrectIndex: 1,
	},
}

var tech = []Question{
	{
		ID:     "t1",
		Prompt: "What does HTML stand for?",
		Options: []string{
			"HyperText Markup Language",
			"High-level Text Markup Language",
			"Hyperlink and Text Markup Language",
			"Home Tool Markup Language",
		},
		CorrectIndex: 0,
	},
	{
		ID:           "t2",
		Prompt:       "Which programming language is known as the 'language of the web'?",
		Options:      []string{"Python", "Java", "JavaScript", "C++"},
		CorrectIndex: 2,
	},
	{ID: "t3", Prompt: "What is the output of: console.log(2 + '2')?", Options: []string{"4", "22", "Error", "undefined"}, CorrectIndex: 1},
	{
		ID:     "t4",
		Prompt: "What does CSS stand for?",
		Options: []string{
			"Computer Style Sheets",
			"Creative Style Sheets",
			"Cascading Style Sheets",
			"Colorful Style Sheets",
		},
		CorrectIndex: 2,
	},
	{
		ID:           "t5",
		Prompt:       "Which data structure follows LIFO (Last In First Out) principle?",
		Options:      []string{"Queue", "Stack", "Array", "Linked List"},
		CorrectIndex: 1,
	},
}

// Bank is read-only after construction and safe for concurrent use.
type Bank struct {
	ordered []Question
	byID    map[string]Question
}

// NewBank returns the admissions bank: maths, then english, then tech.
func NewBank() *Bank {
	b := &Bank{byID: make(map[string]Question, len(maths)+len(english)+len(tech))}
	b.add(CategoryMaths, maths)
	b.add(CategoryEnglish, english)
	b.add(CategoryTech, tech)
	return b
}

func (b *Bank) add(category string, questions []Question) {
	for _, q := range questions {
		q.Category = category
		b.ordered = append(b.ordered, q)
		b.byID[q.ID] = q
	}
}

// All returns a copy of the questions in presentation order.
func (b *Bank) All() []Question {
	out := make([]Question, len(b.ordered))
	copy(out, b.ordered)
	return out
}

func (b *Bank) Len() int { return len(b.ordered) }

func (b *Bank) Lookup(id string) (Question, bool) {
	q, ok := b.byID[id]
	return q, ok
}

// ByCategory groups the questions, keeping presentation order inside a group.
func (b *Bank) ByCategory() map[string][]Question {
	out := make(map[string][]Question, 3)
	for _, q := range b.ordered {
		out[q.Category] = append(out[q.Category], q)
	}
	return out
}

func (b *Bank) Public() []PublicQuestion {
	out := make([]PublicQuestion, 0, len(b.ordered))
	for _, q := range b.ordered {
		out = append(out, PublicQuestion{
			ID:       q.ID,
			Question: q.Prompt,
			Options:  append([]string(nil), q.Options...),
			Category: q.Category,
		})
	}
	return out
}
