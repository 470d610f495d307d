package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "farm-api",
	Short: "Kaard Farm Management System backend",
	Long: `Kaard Farm Management System backend.

It provides a REST API over the farm's operational records: crop
inventory, equipment, production records and vehicles with GPS state.

Run 'farm-api serve' to start the server, or 'farm-api import' to
bulk-load crop inventory from a JSON file.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(importCmd)
}
