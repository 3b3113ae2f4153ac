package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokidex/internal/orchestrators/assistant"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a single question",
	Long:  `Ask a single question about Pokemon. Unquoted words are joined with spaces.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAsk,
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := newApp(ctx, true)
	if err != nil {
		return err
	}
	defer a.close()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Processing your question...")
	fmt.Fprintln(out)

	resp, err := a.assistant.ProcessQuery(ctx, &assistant.ProcessQueryInput{Query: strings.Join(args, " ")})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Assistant: %s\n", resp.Answer)
	return nil
}
