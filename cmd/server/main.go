// Package main is the entry point for the storyteller
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-storyteller/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "storyteller",
	Short: "Storyteller combat server",
	Long:  `Storyteller runs daily investigator adventures against Mythos monsters, over gRPC or in the console.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
