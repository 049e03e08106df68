package main

import (
	"log"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "recipebox",
	Short:        "recipebox - recipe collection API",
	Long:         `Serves the recipebox JSON API: built-in and user recipes, favorites, ingredient scaling and accounts.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("recipebox: %v", err)
	}
}
