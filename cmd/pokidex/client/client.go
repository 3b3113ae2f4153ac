// Package client provides commands that call a running pokidex gRPC server
package client

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	v1 "github.com/KirkDiggler/pokidex/internal/handlers/assistant/v1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Call a running pokidex gRPC server",
	Long:  `Client commands send questions and images to a server started with 'pokidex serve'.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 2*time.Minute, "Request timeout")

	ClientCmd.AddCommand(askCmd)
	ClientCmd.AddCommand(identifyCmd)
}

// createAssistantClient dials the server; call cleanup when done
func createAssistantClient() (v1.AssistantClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1.NewAssistantClient(conn), cleanup, nil
}
