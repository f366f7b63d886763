package main

import (
	"fmt"
	"os"

	"chatbot/internal/bus"
	"chatbot/internal/channel"
	"chatbot/internal/config"
	"chatbot/internal/flow"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

// options holds the persistent flags shared by every command.
type options struct {
	configPath string // overridable via --config flag
	logLevel   string
	language   string
}

// Signals are left at their default disposition: Ctrl-C at a prompt ends the
// process immediately.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "chatbot",
		Short: "Send a message through a chosen social network",
		Long: `chatbot asks for a social network (WhatsApp, Telegram, Facebook, Instagram, Email),
the destination, a message type (Text, Video, Photo, File) and its fields, then prints
the delivery line. Nothing is transmitted over the network.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, opts)
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to config.json or config.yaml (default: ~/.chatbot/config.json)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override general.logLevel (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&opts.language, "lang", "", "override general.language (en, pt)")

	root.AddCommand(channelsCmd(opts))
	root.AddCommand(typesCmd(opts))
	root.AddCommand(configCmd(opts))
	root.AddCommand(doctorCmd(opts))
	root.AddCommand(versionCmd())

	return root
}

// resolveConfigPath returns the config path from --config flag or default.
func (o *options) resolveConfigPath() string {
	if o.configPath != "" {
		return o.configPath
	}
	return config.DefaultConfigPath()
}

// loadConfig loads the config file, falling back to defaults when it does not
// exist, and applies flag overrides. The returned warning is non-nil when the
// defaults were used.
func (o *options) loadConfig() (cfg *config.Config, warning error, err error) {
	path := o.resolveConfigPath()
	cfg, err = config.Load(path)
	if err != nil {
		if _, statErr := os.Stat(config.ExpandPath(path)); statErr == nil {
			return nil, nil, err
		}
		cfg, warning = config.Defaults(), err
	}
	if o.logLevel != "" {
		cfg.General.LogLevel = o.logLevel
	}
	if o.language != "" {
		cfg.General.Language = o.language
	}
	if err := config.Validate(cfg); err != nil {
		return nil, nil, err
	}
	return cfg, warning, nil
}

func runSession(cmd *cobra.Command, opts *options) error {
	cfg, warning, err := opts.loadConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()
	if warning != nil {
		logger.Info("config not found, using defaults", "path", opts.resolveConfigPath(), "err", warning)
	}

	out := cmd.OutOrStdout()
	events := bus.NewEventBus(logger)
	events.On("*", func(e bus.Event) {
		logger.Debug("event", "type", e.Type, "session_id", e.SessionID, "payload", e.Payload)
	})

	sess := flow.NewSession(flow.Config{
		In:  flow.NewLinePrompter(cmd.InOrStdin(), out),
		Out: out,
		Channels: channel.NewFactory(channel.FactoryConfig{
			Out:        out,
			TimeLayout: cfg.Display.TimeLayout,
			Logger:     logger,
		}),
		Phrases: flow.PhrasesFor(config.Language(cfg)),
		Events:  events,
		Logger:  logger,
	})

	res, err := sess.Run(cmd.Context())
	if err != nil {
		logger.Error("session failed", "session_id", res.SessionID, "err", err)
		return err
	}
	logger.Debug("session finished", "session_id", res.SessionID, "outcome", res.Outcome.String())
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the chatbot version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "chatbot %s\n", version)
		},
	}
}

