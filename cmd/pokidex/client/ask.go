package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/KirkDiggler/pokidex/internal/errors"
	v1 "github.com/KirkDiggler/pokidex/internal/handlers/assistant/v1"
)

var showMode bool

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the server a question",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&showMode, "mode", false, "Print how the answer was produced")
}

func runAsk(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createAssistantClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	var header metadata.MD
	resp, err := client.Ask(ctx, wrapperspb.String(strings.Join(args, " ")), grpc.Header(&header))
	if err != nil {
		return errors.FromGRPCError(err)
	}

	out := cmd.OutOrStdout()
	if showMode {
		if mode := header.Get(v1.ModeHeader); len(mode) > 0 {
			fmt.Fprintf(out, "[%s]\n", mode[0])
		}
	}
	fmt.Fprintf(out, "Assistant: %s\n", resp.GetValue())
	return nil
}
