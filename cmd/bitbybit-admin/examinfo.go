package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/bitbybit-edu/terraform-provider-bitbybit/internal/examinfo"
)

// openPage opens the info page on a role and syllabus subject
func openPage(role, subject string) (*examinfo.Page, error) {
	page := examinfo.NewPage()
	if err := page.SelectRole(role); err != nil {
		page.Close()
		return nil, fmt.Errorf("%w (known roles: %s)", err, strings.Join(examinfo.Roles(), ", "))
	}
	if subject != "" {
		if err := page.SelectSubject(subject); err != nil {
			page.Close()
			return nil, err
		}
	}
	return page, nil
}

func (cli *commandLine) showPattern(role, subject string) error {
	page, err := openPage(role, subject)
	if err != nil {
		return err
	}
	defer page.Close()

	p := page.Pattern()
	fmt.Fprintf(cli.out, "%s\n", p.Title)
	fmt.Fprintf(cli.out, "questions: %d  max marks: %d  pass marks: %s\n", p.TotalQuestions, p.MaxMarks, p.PassMarks)
	fmt.Fprintf(cli.out, "marking: +%g per correct, -%g per wrong\n\n", p.CorrectMark, p.NegMark)

	chart := page.Chart()
	w := tabwriter.NewWriter(cli.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SUBJECT\tQUESTIONS\tMARKS\tSHARE")
	for i, s := range p.Subjects {
		fmt.Fprintf(w, "%s\t%d\t%d\t%.0f%%\n", s.Name, s.Questions, s.Marks, chart.Share(i)*100)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(cli.out, "\nsyllabus: %s\n", page.ActiveSubject())
	for _, topic := range page.ActiveTopics() {
		fmt.Fprintf(cli.out, "  - %s\n", topic)
	}
	return nil
}

func (cli *commandLine) showScore(role string, correct, wrong int) error {
	page, err := openPage(role, "")
	if err != nil {
		return err
	}
	defer page.Close()

	score, err := page.Calculate(correct, wrong)
	if err != nil {
		return err
	}

	p := page.Pattern()
	fmt.Fprintf(cli.out, "%s: %d correct, %d wrong, %d unattempted\n", p.Title, correct, wrong, p.TotalQuestions-correct-wrong)
	fmt.Fprintf(cli.out, "projected score: %g / %d\n", score, p.MaxMarks)
	return nil
}

func (cli *commandLine) writeChart(role, path string) error {
	page, err := openPage(role, "")
	if err != nil {
		return err
	}
	defer page.Close()

	svg, err := page.Chart().SVG()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(svg), 0o644); err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}

	fmt.Fprintf(cli.out, "chart written to %s\n", path)
	return nil
}
