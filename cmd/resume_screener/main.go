// Package main provides the entry point for the resume screening CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_screener",
	Short: "Resume screening and ranking CLI",
	Long:  "Resume Screener scores resume documents (txt, pdf, docx, html) against a job requirement, producing ranked candidates with skill-gap analysis, batch summaries, and CSV/JSON exports.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
