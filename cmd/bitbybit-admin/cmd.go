package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"syscall"

	"golang.org/x/term"

	"github.com/bitbybit-edu/terraform-provider-bitbybit/internal/bitbybit"
	"github.com/bitbybit-edu/terraform-provider-bitbybit/internal/bitbybit/credentials"
	"github.com/bitbybit-edu/terraform-provider-bitbybit/internal/bitbybit/models"
	"github.com/bitbybit-edu/terraform-provider-bitbybit/internal/examinfo"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	client    *bitbybit.Client
	store     credentials.Store
	draftPath string
	out       io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  token set [-token TOKEN]                  - save the access token (prompted when omitted)")
	fmt.Fprintln(cli.out, "  token show                                - show the saved token and its expiry")
	fmt.Fprintln(cli.out, "  token clear                               - forget the saved token")
	fmt.Fprintln(cli.out, "  banners list                              - list carousel banners")
	fmt.Fprintln(cli.out, "  banners create -title TITLE [...]         - create a banner")
	fmt.Fprintln(cli.out, "  banners delete -id ID                     - delete a banner")
	fmt.Fprintln(cli.out, "  topics                                    - list generator topics")
	fmt.Fprintln(cli.out, "  exams                                     - list exams")
	fmt.Fprintln(cli.out, "  generate -topic ID -n N [...]             - generate questions into the draft")
	fmt.Fprintln(cli.out, "  draft show|add|set-text|set-option|set-correct|set-marks|rm|duration|clear")
	fmt.Fprintln(cli.out, "                                            - review the draft")
	fmt.Fprintln(cli.out, "  publish -exam ID                          - save the draft into an exam")
	fmt.Fprintln(cli.out, "  pattern [-role ROLE] [-subject SUBJECT]   - show an exam pattern")
	fmt.Fprintln(cli.out, "  score [-role ROLE] -correct N -wrong N    - project a score")
	fmt.Fprintln(cli.out, "  chart [-role ROLE] -out FILE              - write the distribution chart as SVG")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	switch args[1] {
	case "token":
		return cli.runToken(args[2:])
	case "banners":
		return cli.runBanners(args[2:])
	case "topics":
		return cli.listTopics()
	case "exams":
		return cli.listExams()
	case "generate":
		return cli.runGenerate(args[2:])
	case "draft":
		return cli.runDraft(args[2:])
	case "publish":
		return cli.runPublish(args[2:])
	case "pattern", "score", "chart":
		return cli.runExamInfo(args[1], args[2:])
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) runToken(args []string) error {
	if len(args) == 0 {
		cli.printUsage()
		return errHelp
	}

	setCmd := flag.NewFlagSet("token set", flag.ContinueOnError)
	setCmd.SetOutput(cli.out)
	setToken := setCmd.String("token", "", "The access token. Prompted when omitted.")

	switch args[0] {
	case "set":
		if err := setCmd.Parse(args[1:]); err != nil {
			return errHelp
		}
		token := *setToken
		if token == "" {
			fmt.Fprint(cli.out, "Enter access token:")
			raw, err := readPasswordFunc(int(syscall.Stdin))
			fmt.Fprintln(cli.out)
			if err != nil {
				return err
			}
			token = string(raw)
		}
		if token == "" {
			setCmd.Usage()
			return errHelp
		}
		return cli.setToken(token)
	case "show":
		return cli.showToken()
	case "clear":
		return cli.clearToken()
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) runBanners(args []string) error {
	if len(args) == 0 {
		cli.printUsage()
		return errHelp
	}

	createCmd := flag.NewFlagSet("banners create", flag.ContinueOnError)
	createCmd.SetOutput(cli.out)
	createTitle := createCmd.String("title", "", "Headline of the banner.")
	createDescription := createCmd.String("description", "", "Body text of the banner.")
	createButton := createCmd.String("button", models.DefaultBannerButtonText, "Label of the call to action button.")
	createLink := createCmd.String("link", models.DefaultBannerLink, "Target of the call to action button.")
	createFrom := createCmd.String("from", models.DefaultBannerGradientFrom, "Start color of the background gradient.")
	createTo := createCmd.String("to", models.DefaultBannerGradientTo, "End color of the background gradient.")

	deleteCmd := flag.NewFlagSet("banners delete", flag.ContinueOnError)
	deleteCmd.SetOutput(cli.out)
	deleteID := deleteCmd.Int64("id", 0, "ID of the banner to delete.")

	switch args[0] {
	case "list":
		return cli.listBanners()
	case "create":
		if err := createCmd.Parse(args[1:]); err != nil {
			return errHelp
		}
		if *createTitle == "" {
			createCmd.Usage()
			return errHelp
		}
		return cli.createBanner(models.Banner{
			Title:          *createTitle,
			Description:    *createDescription,
			ButtonText:     *createButton,
			Link:           *createLink,
			BgGradientFrom: *createFrom,
			BgGradientTo:   *createTo,
		})
	case "delete":
		if err := deleteCmd.Parse(args[1:]); err != nil {
			return errHelp
		}
		if *deleteID == 0 {
			deleteCmd.Usage()
			return errHelp
		}
		return cli.deleteBanner(*deleteID)
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) runGenerate(args []string) error {
	generateCmd := flag.NewFlagSet("generate", flag.ContinueOnError)
	generateCmd.SetOutput(cli.out)
	topic := generateCmd.Int64("topic", 0, "ID of the topic to generate from.")
	count := generateCmd.Int("n", 5, "Number of questions to generate.")
	difficulty := generateCmd.String("difficulty", string(models.DifficultyMedium), "Easy, Medium or Hard.")
	instructions := generateCmd.String("instructions", "", "Free text guidance for the generator.")

	if err := generateCmd.Parse(args); err != nil {
		return errHelp
	}
	if *topic == 0 || *count <= 0 {
		generateCmd.Usage()
		return errHelp
	}
	return cli.generate(*topic, *count, models.Difficulty(*difficulty), *instructions)
}

func (cli *commandLine) runDraft(args []string) error {
	if len(args) == 0 {
		cli.printUsage()
		return errHelp
	}

	fs := flag.NewFlagSet("draft "+args[0], flag.ContinueOnError)
	fs.SetOutput(cli.out)
	position := fs.Int("q", 0, "Position of the question in the draft, starting at 1.")
	option := fs.Int("option", -1, "Option index, starting at 0.")
	text := fs.String("text", "", "New text.")
	marks := fs.Int("marks", -1, "Marks for a correct answer.")
	minutes := fs.Int("minutes", -1, "Exam duration in minutes.")

	if err := fs.Parse(args[1:]); err != nil {
		return errHelp
	}

	switch args[0] {
	case "show":
		return cli.showDraft()
	case "add":
		return cli.addBlankQuestion()
	case "clear":
		return cli.clearDraft()
	case "duration":
		if *minutes < 0 {
			fs.Usage()
			return errHelp
		}
		return cli.setDraftDuration(*minutes)
	case "set-text", "set-option", "set-correct", "set-marks", "rm":
	default:
		cli.printUsage()
		return errHelp
	}

	if *position < 1 {
		fs.Usage()
		return errHelp
	}

	switch args[0] {
	case "set-text":
		return cli.editDraft(*position, func(e draftEditor, id string) error { return e.UpdateText(id, *text) })
	case "set-option":
		if *option < 0 {
			fs.Usage()
			return errHelp
		}
		return cli.editDraft(*position, func(e draftEditor, id string) error { return e.UpdateOption(id, *option, *text) })
	case "set-correct":
		if *option < 0 {
			fs.Usage()
			return errHelp
		}
		return cli.editDraft(*position, func(e draftEditor, id string) error { return e.SetCorrect(id, *option) })
	case "set-marks":
		if *marks < 0 {
			fs.Usage()
			return errHelp
		}
		return cli.editDraft(*position, func(e draftEditor, id string) error { return e.SetMarks(id, *marks) })
	default: // rm
		return cli.editDraft(*position, func(e draftEditor, id string) error { return e.Remove(id) })
	}
}

func (cli *commandLine) runPublish(args []string) error {
	publishCmd := flag.NewFlagSet("publish", flag.ContinueOnError)
	publishCmd.SetOutput(cli.out)
	exam := publishCmd.Int64("exam", 0, "ID of the exam to add the draft to.")

	if err := publishCmd.Parse(args); err != nil {
		return errHelp
	}
	if *exam == 0 {
		publishCmd.Usage()
		return errHelp
	}
	return cli.publish(*exam)
}

func (cli *commandLine) runExamInfo(name string, args []string) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cli.out)
	role := fs.String("role", examinfo.DefaultRole, "Role key.")
	subject := fs.String("subject", "", "Syllabus subject, defaults to the first one.")
	correct := fs.Int("correct", -1, "Number of correct answers.")
	wrong := fs.Int("wrong", -1, "Number of wrong answers.")
	out := fs.String("out", "", "File the SVG chart is written to.")

	if err := fs.Parse(args); err != nil {
		return errHelp
	}

	switch name {
	case "pattern":
		return cli.showPattern(*role, *subject)
	case "score":
		if *correct < 0 || *wrong < 0 {
			fs.Usage()
			return errHelp
		}
		return cli.showScore(*role, *correct, *wrong)
	default: // chart
		if *out == "" {
			fs.Usage()
			return errHelp
		}
		return cli.writeChart(*role, *out)
	}
}
