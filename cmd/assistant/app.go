package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"healthassist/internal/api"
	"healthassist/internal/chat"
	"healthassist/internal/directory"
	"healthassist/internal/models"
	"healthassist/internal/tools"
	"healthassist/internal/tools/nearby"
	"healthassist/internal/triage"
)

// app runs the assistant commands against in/out
type app struct {
	cfg         Config
	log         *slog.Logger
	in          io.Reader
	out         io.Writer
	coordinator *api.SymptomCoordinator
	responder   chat.Responder
	directory   *directory.Directory
}

func newApp(cfg Config, log *slog.Logger, in io.Reader, out io.Writer) (*app, error) {
	dir := directory.Default()

	registry := tools.NewToolRegistry()
	for _, tool := range []tools.Tool{
		nearby.NewPharmacyFinder(dir),
		nearby.NewDoctorFinder(dir),
		nearby.NewHospitalFinder(dir),
	} {
		if err := registry.Register(tool); err != nil {
			return nil, fmt.Errorf("failed to register %s: %w", tool.Name(), err)
		}
	}

	classifier, err := triage.NewRuleBasedClassifier(triage.ClassifierConfig{})
	if err != nil {
		return nil, fmt.Errorf("failed to create classifier: %w", err)
	}

	responder, err := chat.NewRuleBasedResponder(chat.ResponderConfig{})
	if err != nil {
		return nil, fmt.Errorf("failed to create responder: %w", err)
	}

	return &app{
		cfg:         cfg,
		log:         log,
		in:          in,
		out:         out,
		coordinator: api.NewSymptomCoordinator(log, classifier, registry, &api.DefaultSummaryGenerator{}, api.CoordinatorConfig{DefaultTimeout: cfg.Timeout}),
		responder:   responder,
		directory:   dir,
	}, nil
}

func (a *app) dispatch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "check":
		if len(args) < 2 {
			return fmt.Errorf("%w: check needs a symptom description", errUsage)
		}
		return a.check(ctx, strings.Join(args[1:], " "))
	case "chat":
		return a.chat(ctx)
	case "nearby":
		filter := ""
		if len(args) > 1 {
			filter = args[1]
		}
		return a.nearby(filter)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

func (a *app) check(ctx context.Context, symptoms string) error {
	report, err := a.coordinator.CheckSymptoms(ctx, symptoms)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, a.paint(color.New(color.FgYellow), report.Disclaimer))
	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "Symptoms: %s\n\n", report.Symptoms)

	table := newTable(a.out)
	table.SetHeader([]string{"Condition", "Probability", "Severity", "Description"})
	for _, c := range report.Conditions {
		table.Append([]string{c.Name, c.Probability(), a.severity(c.Severity), c.Description})
	}
	table.Render()

	for _, c := range report.Conditions {
		fmt.Fprintf(a.out, "\n%s - suggested remedies:\n", a.paint(color.New(color.OpBold), c.Name))
		for _, remedy := range c.SuggestedRemedies {
			fmt.Fprintf(a.out, "  • %s\n", remedy)
		}
	}

	if len(report.NextSteps) > 0 {
		fmt.Fprintln(a.out, "\nNext steps:")
		for _, step := range report.NextSteps {
			fmt.Fprintf(a.out, "  %s: %s\n", step.ToolName, step.Message)
			for _, l := range step.Locations {
				fmt.Fprintf(a.out, "    %s %s (%s) %s\n", directory.TypeEmoji(l.Type), l.Name, directory.FormatDistance(l.DistanceKm), l.Phone)
			}
		}
	}

	return nil
}

func (a *app) chat(ctx context.Context) error {
	conversation := chat.NewConversation(a.responder, chat.ConversationConfig{TypingDelay: a.cfg.TypingDelay})
	a.printMessage(conversation.Messages()[0])

	if conversation.ShowQuickQuestions() {
		fmt.Fprintln(a.out, "\nQuick questions:")
		for i, q := range conversation.QuickQuestions() {
			fmt.Fprintf(a.out, "  %d. %s\n", i+1, q)
		}
	}
	fmt.Fprintln(a.out, "\nType a message, a quick question number, or \"exit\" to leave.")

	scanner := bufio.NewScanner(a.in)
	for {
		fmt.Fprint(a.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(a.out)
			return scanner.Err()
		}

		text := strings.TrimSpace(scanner.Text())
		if text == "exit" || text == "quit" {
			return nil
		}
		if conversation.ShowQuickQuestions() {
			if n, err := strconv.Atoi(text); err == nil && n >= 1 && n <= len(conversation.QuickQuestions()) {
				text = conversation.QuickQuestions()[n-1]
				fmt.Fprintf(a.out, "%s\n", text)
			}
		}

		if text != "" {
			fmt.Fprintln(a.out, a.paint(color.New(color.FgGray), "Assistant is typing..."))
		}

		reply, err := conversation.Send(ctx, text)
		switch {
		case errors.Is(err, chat.ErrEmptyMessage):
			continue
		case err != nil:
			return err
		}

		a.printMessage(reply)
	}
}

func (a *app) nearby(filter string) error {
	locations, err := a.directory.List(filter)
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	table := newTable(a.out)
	table.SetHeader([]string{"", "Name", "Distance", "Status", "Rating", "Phone", "Address"})
	for _, l := range locations {
		rating := "-"
		if l.Rating != nil {
			rating = strconv.FormatFloat(*l.Rating, 'f', 1, 64)
		}
		table.Append([]string{
			directory.TypeEmoji(l.Type),
			l.Name,
			directory.FormatDistance(l.DistanceKm),
			directory.StatusLabel(l.Status),
			rating,
			l.Phone,
			l.Address,
		})
	}
	table.Render()

	open := lo.CountBy(locations, func(l models.Location) bool { return l.IsOpen() })
	fmt.Fprintf(a.out, "\n%d of %d open now\n", open, len(locations))
	fmt.Fprintln(a.out, a.paint(color.New(color.FgRed, color.OpBold),
		fmt.Sprintf("In an emergency call %s (%s)", directory.EmergencyNumber, directory.EmergencyCallURL())))
	return nil
}

func (a *app) printMessage(m models.ChatMessage) {
	who := "You"
	style := color.New(color.FgCyan)
	if m.IsBot() {
		who = "Assistant"
		style = color.New(color.FgGreen)
	}
	fmt.Fprintf(a.out, "%s [%s]: %s\n", a.paint(style, who), m.CreatedAt.Format("15:04"), m.Text)
}

func (a *app) severity(s models.Severity) string {
	switch s {
	case models.SeverityHigh:
		return a.paint(color.New(color.FgRed), string(s))
	case models.SeverityMedium:
		return a.paint(color.New(color.FgYellow), string(s))
	default:
		return a.paint(color.New(color.FgGreen), string(s))
	}
}

func (a *app) paint(style color.Style, text string) string {
	if !a.cfg.Colours {
		return text
	}
	return style.Render(text)
}

func newTable(out io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}
