package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"chatbot/internal/config"

	"github.com/spf13/cobra"
)

func doctorCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Run diagnostic checks on the chatbot configuration",
		Long: `Verifies that the configuration file loads and validates, that the log file
is writable and shows the language and timestamp format a session will use.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(cmd.OutOrStdout(), opts.resolveConfigPath())
		},
	}
}

func runDoctor(out io.Writer, cfgPath string) error {
	fmt.Fprintf(out, "chatbot doctor v%s\n\n", version)

	passed, warned, failed := 0, 0, 0

	cfg := config.Defaults()
	if _, err := os.Stat(config.ExpandPath(cfgPath)); err != nil {
		printWarn(out, "Config file", fmt.Sprintf("not found at %s, using defaults", cfgPath))
		warned++
	} else if loaded, err := config.Load(cfgPath); err != nil {
		printFail(out, "Config validation", err.Error())
		failed++
	} else {
		printPass(out, "Config file", cfgPath)
		passed++
		cfg = loaded
	}

	if cfg.General.LogFile != "" {
		if err := checkWritable(config.ExpandPath(cfg.General.LogFile)); err != nil {
			printFail(out, "Log file", err.Error())
			failed++
		} else {
			printPass(out, "Log file", cfg.General.LogFile)
			passed++
		}
	}

	lang := config.Language(cfg)
	if cfg.General.Language == "" {
		printPass(out, "Language", lang+" (detected)")
	} else {
		printPass(out, "Language", lang)
	}
	passed++

	printPass(out, "Timestamp", time.Now().Format(cfg.Display.TimeLayout))
	passed++

	fmt.Fprintf(out, "\nResults: %d passed, %d warnings, %d failed\n", passed, warned, failed)
	if failed > 0 {
		return fmt.Errorf("%d check(s) failed", failed)
	}
	return nil
}

func checkWritable(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("not writable: %w", err)
	}
	return f.Close()
}

func printPass(out io.Writer, check, detail string) {
	fmt.Fprintf(out, "  [PASS] %-20s %s\n", check, detail)
}

func printFail(out io.Writer, check, detail string) {
	fmt.Fprintf(out, "  [FAIL] %-20s %s\n", check, detail)
}

func printWarn(out io.Writer, check, detail string) {
	fmt.Fprintf(out, "  [WARN] %-20s %s\n", check, detail)
}
