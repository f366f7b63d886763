package main

import (
	"fmt"
	"strings"

	"chatbot/internal/channel"
	"chatbot/internal/config"
	"chatbot/internal/flow"
	"chatbot/internal/message"

	"github.com/spf13/cobra"
)

func channelsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "channels",
		Short: "List the social networks and the destination each one asks for",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			phrases, err := opts.phrases()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, kind := range channel.Catalog() {
				fmt.Fprintf(out, "%d. %-10s %s\n", i+1, channel.NetworkName(kind), promptLabel(phrases.Destination[kind]))
			}
			return nil
		},
	}
}

func typesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the message types and the fields each one asks for",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			phrases, err := opts.phrases()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, kind := range message.Catalog() {
				fields, err := message.FieldsFor(kind)
				if err != nil {
					return err
				}
				names := []string{"text"}
				if fields.Attachment {
					names = append(names, "file", "format")
				}
				if fields.Duration {
					names = append(names, "duration")
				}
				fmt.Fprintf(out, "%d. %-6s %s\n", i+1, phrases.MessageLabel[kind], strings.Join(names, ", "))
			}
			return nil
		},
	}
}

func (o *options) phrases() (flow.Phrases, error) {
	cfg, _, err := o.loadConfig()
	if err != nil {
		return flow.Phrases{}, err
	}
	return flow.PhrasesFor(config.Language(cfg)), nil
}

// promptLabel turns "Enter the phone number: " into "Enter the phone number".
func promptLabel(prompt string) string {
	return strings.TrimSuffix(strings.TrimSpace(prompt), ":")
}
