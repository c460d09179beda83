// Package main implements the screener CLI for resume ranking and quality analysis.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "screener",
	Short: "Resume screening and quality advisor",
	Long:  "Screener ranks candidate resumes against a job description using deterministic text embeddings and skill matching, and scores each resume's intrinsic quality with actionable suggestions.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
