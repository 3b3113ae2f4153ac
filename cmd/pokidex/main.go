// Package main is the entry point for the pokidex CLI
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokidex/cmd/pokidex/client"
	"github.com/KirkDiggler/pokidex/internal/config"
	"github.com/KirkDiggler/pokidex/internal/errors"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

var (
	configFile string
	envFile    string
)

// stdoutReserved is set by commands that speak a protocol on stdout
var stdoutReserved atomic.Bool

var rootCmd = &cobra.Command{
	Use:           "pokidex",
	Short:         "A Pokemon RAG agent powered by Gemini AI and PokéAPI",
	Long:          `pokidex answers questions about Pokemon by letting a language model pick a PokéAPI lookup and answering from the fetched data.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runChat,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML file overlaying non-secret settings")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "dotenv file loaded when present")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(identifyImageCmd)
	rootCmd.AddCommand(selectImageCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(client.ClientCmd)
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	interrupted := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		out := os.Stdout
		if stdoutReserved.Load() {
			out = os.Stderr
		}
		fmt.Fprintln(out, "\nReceived Ctrl-C, exiting...")
		close(interrupted)
		cancel()
	}()

	err := rootCmd.ExecuteContext(ctx)
	cancel()

	select {
	case <-interrupted:
		os.Exit(errors.ExitOK)
	default:
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.ExitCode(err))
	}
}
