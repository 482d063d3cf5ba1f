// Package main is the entry point for the scorekeeper server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "scorekeeper",
	Short: "Dice scorekeeper server",
	Long:  `Scorekeeper runs a dice table for a small group of local participants: turns, rounds, sessions, game-mode scoring, and a leaderboard, served over HTTP.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
