package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokidex/internal/filepicker"
	"github.com/KirkDiggler/pokidex/internal/orchestrators/assistant"
)

var identifyImageCmd = &cobra.Command{
	Use:   "identify-image <image-path>",
	Short: "Identify a Pokemon from an image and return its specs",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentifyImage,
}

var selectImageCmd = &cobra.Command{
	Use:   "select-image",
	Short: "Open the system file picker and identify a Pokemon image",
	Long:  `Open the system file picker (Finder, File Explorer, zenity or kdialog) and identify the selected Pokemon image.`,
	Args:  cobra.NoArgs,
	RunE:  runSelectImage,
}

func runIdentifyImage(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := newApp(ctx, true)
	if err != nil {
		return err
	}
	defer a.close()

	return identify(ctx, a.assistant, cmd.OutOrStdout(), args[0])
}

func runSelectImage(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	a, err := newApp(ctx, true)
	if err != nil {
		return err
	}
	defer a.close()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Opening file picker...")
	fmt.Fprintln(out)

	path, err := filepicker.New().Pick(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Selected: %s\n", path)

	return identify(ctx, a.assistant, out, path)
}

func identify(ctx context.Context, svc assistant.Service, out io.Writer, path string) error {
	fmt.Fprintln(out, "Analyzing image...")
	fmt.Fprintln(out)

	resp, err := svc.ProcessImageQuery(ctx, &assistant.ProcessImageQueryInput{Path: path})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Assistant: %s\n", resp.Answer)
	return nil
}
