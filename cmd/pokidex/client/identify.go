package client

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/KirkDiggler/pokidex/internal/errors"
)

var identifyCmd = &cobra.Command{
	Use:   "identify <image-path>",
	Short: "Send an image to the server for identification",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func runIdentify(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NotFoundf("image file %s does not exist", args[0])
		}
		return errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to read image file %s", args[0])
	}

	client, cleanup, err := createAssistantClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	resp, err := client.Identify(ctx, wrapperspb.Bytes(data))
	if err != nil {
		return errors.FromGRPCError(err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Assistant: %s\n", resp.GetValue())
	return nil
}
