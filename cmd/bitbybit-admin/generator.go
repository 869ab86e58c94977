package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/bitbybit-edu/terraform-provider-bitbybit/internal/admin"
	"github.com/bitbybit-edu/terraform-provider-bitbybit/internal/bitbybit/models"
)

// draftEditor is the part of the session a draft edit can touch
type draftEditor interface {
	UpdateText(id, text string) error
	UpdateOption(id string, option int, text string) error
	SetCorrect(id string, option int) error
	SetMarks(id string, marks int) error
	Remove(id string) error
}

func (cli *commandLine) listTopics() error {
	topics, err := cli.client.ListTopics(context.Background())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cli.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE")
	for _, t := range topics {
		fmt.Fprintf(w, "%d\t%s\n", t.ID, t.Title)
	}
	return w.Flush()
}

func (cli *commandLine) listExams() error {
	exams, err := cli.client.ListExams(context.Background())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cli.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tDURATION")
	for _, e := range exams {
		fmt.Fprintf(w, "%d\t%s\t%d min\n", e.ID, e.Title, e.DurationMinutes)
	}
	return w.Flush()
}

// openSession restores the saved draft into a fresh generator session
func (cli *commandLine) openSession() (*admin.GeneratorSession, error) {
	draft, err := admin.LoadDraftFile(cli.draftPath)
	if err != nil {
		return nil, err
	}

	session := admin.NewGeneratorSession(cli.client)
	session.Restore(draft)
	return session, nil
}

func (cli *commandLine) saveSession(session *admin.GeneratorSession) error {
	return admin.SaveDraftFile(cli.draftPath, session.Draft())
}

// generate appends a generated batch to the draft
func (cli *commandLine) generate(topicID int64, n int, difficulty models.Difficulty, instructions string) error {
	session, err := cli.openSession()
	if err != nil {
		return err
	}

	added, err := session.Generate(context.Background(), admin.GenerateOptions{
		TopicID:      topicID,
		NumQuestions: n,
		Difficulty:   difficulty,
		Instructions: instructions,
	})
	if err != nil {
		return err
	}

	if err := cli.saveSession(session); err != nil {
		return err
	}

	fmt.Fprintf(cli.out, "generated %d questions\n", len(added))
	cli.printDraft(session)
	return nil
}

func (cli *commandLine) showDraft() error {
	session, err := cli.openSession()
	if err != nil {
		return err
	}
	cli.printDraft(session)
	return nil
}

func (cli *commandLine) addBlankQuestion() error {
	session, err := cli.openSession()
	if err != nil {
		return err
	}
	session.AddBlank()
	if err := cli.saveSession(session); err != nil {
		return err
	}
	cli.printDraft(session)
	return nil
}

func (cli *commandLine) clearDraft() error {
	session, err := cli.openSession()
	if err != nil {
		return err
	}
	session.Clear()
	if err := cli.saveSession(session); err != nil {
		return err
	}
	fmt.Fprintln(cli.out, "draft cleared")
	return nil
}

func (cli *commandLine) setDraftDuration(minutes int) error {
	session, err := cli.openSession()
	if err != nil {
		return err
	}
	if err := session.SetDuration(minutes); err != nil {
		return err
	}
	if err := cli.saveSession(session); err != nil {
		return err
	}
	cli.printDraft(session)
	return nil
}

// editDraft applies an edit to the question at a 1-based position
func (cli *commandLine) editDraft(position int, edit func(e draftEditor, id string) error) error {
	session, err := cli.openSession()
	if err != nil {
		return err
	}

	id, err := session.IDAt(position - 1)
	if err != nil {
		return err
	}
	if err := edit(session, id); err != nil {
		return err
	}

	if err := cli.saveSession(session); err != nil {
		return err
	}
	cli.printDraft(session)
	return nil
}

// publish saves the whole draft into an exam
func (cli *commandLine) publish(examID int64) error {
	session, err := cli.openSession()
	if err != nil {
		return err
	}

	duration := session.Duration()
	resp, err := session.Save(context.Background(), examID)
	if err != nil {
		return err
	}

	// the session is empty after a successful save
	if err := cli.saveSession(session); err != nil {
		return err
	}

	fmt.Fprintf(cli.out, "added %d questions to exam %d\n", resp.Added, examID)
	if resp.DurationUpdated {
		fmt.Fprintf(cli.out, "exam duration set to %d minutes\n", duration)
	}
	return nil
}

func (cli *commandLine) printDraft(session *admin.GeneratorSession) {
	questions := session.Questions()
	if len(questions) == 0 {
		fmt.Fprintln(cli.out, "draft is empty")
		return
	}

	for i, q := range questions {
		fmt.Fprintf(cli.out, "%d. %s [%d marks]\n", i+1, q.QuestionText, q.Marks)
		for j, option := range q.Options {
			marker := " "
			if j == q.CorrectIndex {
				marker = "*"
			}
			fmt.Fprintf(cli.out, "   %s %d) %s\n", marker, j, option)
		}
	}

	suffix := ""
	if session.Duration() != session.SuggestedDuration() {
		suffix = fmt.Sprintf(" (suggested %d)", session.SuggestedDuration())
	}
	fmt.Fprintf(cli.out, "%d questions, duration %d minutes%s\n", len(questions), session.Duration(), suffix)
}
