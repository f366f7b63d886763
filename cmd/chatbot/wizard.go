package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"chatbot/internal/config"
	"chatbot/internal/domain"
	"chatbot/internal/flow"

	"github.com/spf13/cobra"
)

type choice struct {
	Value string
	Desc  string
}

var knownLanguages = []choice{
	{"", "Detect from the system locale"},
	{"en", "English"},
	{"pt", "Português"},
}

var knownLayouts = []choice{
	{"2006-01-02 15:04:05", "ISO-like (2024-05-17 14:03:09)"},
	{"02/01/2006 15:04:05", "Day first (17/05/2024 14:03:09)"},
	{"01/02/2006 03:04:05 PM", "US (05/17/2024 02:03:09 PM)"},
	{"15:04", "Time only (14:03)"},
}

var knownLevels = []choice{
	{"warn", "Warnings and errors only"},
	{"info", "One line per delivery"},
	{"debug", "Every prompt step and event"},
	{"error", "Errors only"},
}

func wizardCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "wizard",
		Short: "Interactive setup: language → timestamp layout → log level → save config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWizard(cmd.InOrStdin(), cmd.OutOrStdout(), opts.resolveConfigPath())
		},
	}
}

func runWizard(in io.Reader, out io.Writer, cfgPath string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		if _, statErr := os.Stat(config.ExpandPath(cfgPath)); statErr == nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = config.Defaults()
	}

	p := flow.NewLinePrompter(in, out)

	fmt.Fprintln(out, "\n--- Step 1: Language ---")
	lang, err := pick(p, out, knownLanguages, cfg.General.Language)
	if err != nil {
		return err
	}
	cfg.General.Language = lang
	fmt.Fprintf(out, "  Using language: %s\n", describe(knownLanguages, lang))

	fmt.Fprintln(out, "\n--- Step 2: Timestamp layout ---")
	layout, err := pick(p, out, knownLayouts, cfg.Display.TimeLayout)
	if err != nil {
		return err
	}
	cfg.Display.TimeLayout = layout
	fmt.Fprintf(out, "  Using layout: %s\n", layout)

	fmt.Fprintln(out, "\n--- Step 3: Log level ---")
	level, err := pick(p, out, knownLevels, cfg.General.LogLevel)
	if err != nil {
		return err
	}
	cfg.General.LogLevel = level
	fmt.Fprintf(out, "  Using log level: %s\n", level)

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}
	if err := config.Save(cfgPath, cfg); err != nil {
		return err
	}
	fmt.Fprintf(out, "\nConfig saved to %s\n", cfgPath)
	fmt.Fprintln(out, "Next: run 'chatbot' to send a message.")
	return nil
}

// pick prints a numbered list and returns the chosen value. Empty or invalid
// input keeps current (or the first option when current is not listed).
func pick(p domain.Prompter, out io.Writer, options []choice, current string) (string, error) {
	def := 1
	for i, c := range options {
		marker := " "
		if c.Value == current {
			def = i + 1
			marker = "*"
		}
		fmt.Fprintf(out, " %s%d) %s\n", marker, i+1, c.Desc)
	}

	line, err := p.Prompt(fmt.Sprintf("Choose (1–%d) [%d]: ", len(options), def))
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	idx, convErr := strconv.Atoi(strings.TrimSpace(line))
	if convErr != nil || idx < 1 || idx > len(options) {
		idx = def
	}
	return options[idx-1].Value, nil
}

func describe(options []choice, value string) string {
	for _, c := range options {
		if c.Value == value {
			return c.Desc
		}
	}
	return value
}
