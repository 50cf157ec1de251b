// Package client provides gRPC client commands for the storyteller service
package client

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/rpg-storyteller/internal/errors"
	storytellerv1alpha1 "github.com/KirkDiggler/rpg-storyteller/internal/handlers/storyteller/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
	playerID   string
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the storyteller",
	Long:  `Client commands talk to a running storyteller server over gRPC.`,
}

func init() {
	// Add persistent flags for all client commands
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().StringVar(&playerID, "player", "console_user", "Player ID")

	// Adventure commands
	ClientCmd.AddCommand(startCmd)
	ClientCmd.AddCommand(actCmd)
	ClientCmd.AddCommand(statusCmd)
	ClientCmd.AddCommand(abandonCmd)

	// Investigator and shop commands
	ClientCmd.AddCommand(investigatorCmd)
	ClientCmd.AddCommand(shopCmd)
	ClientCmd.AddCommand(buyCmd)
}

// createClient creates a storyteller service client
func createClient() (storytellerv1alpha1.StorytellerServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return storytellerv1alpha1.NewStorytellerServiceClient(conn), cleanup, nil
}

// describeError renders the server's message, falling back to the raw error
func describeError(err error) error {
	converted := errors.FromGRPCError(err)
	if msg := errors.GetMessage(converted); msg != "" {
		return fmt.Errorf("%s", msg)
	}
	return err
}
