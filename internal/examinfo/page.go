package examinfo

import "fmt"

// Page is the state of the role information page: the selected role, its
// syllabus tab, the score calculator and the distribution chart.
type Page struct {
	pattern       Pattern
	activeSubject string

	correct int
	wrong   int
	score   *float64

	charts ChartRenderer
}

// NewPage opens the page on the default role
func NewPage() *Page {
	pg := &Page{}
	// The default role is always in the catalog
	_ = pg.SelectRole(DefaultRole)
	return pg
}

// SelectRole switches the page to another role. The syllabus tab moves to the
// role's first subject, the calculator is reset and the chart is redrawn.
func (pg *Page) SelectRole(role string) error {
	p, err := Lookup(role)
	if err != nil {
		return err
	}

	pg.pattern = p
	pg.activeSubject = p.FirstSubject()
	pg.correct, pg.wrong, pg.score = 0, 0, nil
	pg.charts.Render(p)
	return nil
}

func (pg *Page) Pattern() Pattern {
	return pg.pattern
}

func (pg *Page) ActiveSubject() string {
	return pg.activeSubject
}

// SelectSubject switches the syllabus tab
func (pg *Page) SelectSubject(subject string) error {
	if _, ok := pg.pattern.Topics(subject); !ok {
		return fmt.Errorf("%q is not a syllabus subject of %s", subject, pg.pattern.Title)
	}
	pg.activeSubject = subject
	return nil
}

// ActiveTopics returns the topics of the selected syllabus tab
func (pg *Page) ActiveTopics() []string {
	topics, _ := pg.pattern.Topics(pg.activeSubject)
	return topics
}

// Calculate computes the projected score. A rejected input leaves the
// previous result in place.
func (pg *Page) Calculate(correct, wrong int) (float64, error) {
	score, err := pg.pattern.Score(correct, wrong)
	if err != nil {
		return 0, err
	}

	pg.correct, pg.wrong = correct, wrong
	pg.score = &score
	return score, nil
}

// Inputs returns the attempt counts of the last accepted calculation
func (pg *Page) Inputs() (correct, wrong int) {
	return pg.correct, pg.wrong
}

// Result returns the last computed score, if any
func (pg *Page) Result() (float64, bool) {
	if pg.score == nil {
		return 0, false
	}
	return *pg.score, true
}

// Chart returns the live distribution chart
func (pg *Page) Chart() *Chart {
	return pg.charts.Current()
}

// Close releases the chart
func (pg *Page) Close() {
	pg.charts.Close()
}
