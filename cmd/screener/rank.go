package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/types"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank resumes against a job description",
	Long:  "Deterministically ranks a batch of already-extracted resume texts against a job description, producing a RankedMatches JSON sorted by match percentage.",
	RunE:  runRank,
}

var (
	rankJob     string
	rankResumes string
	rankOutput  string
	rankConfig  string
	rankVerbose bool
)

func init() {
	rankCmd.Flags().StringVarP(&rankJob, "job", "j", "", "Path to input JobDescription JSON file (required)")
	rankCmd.Flags().StringVarP(&rankResumes, "resumes", "r", "", "Path to a ResumeRecord JSON array, or a directory of extracted .txt resumes (required)")
	rankCmd.Flags().StringVarP(&rankOutput, "out", "o", "", "Path to output RankedMatches JSON file (stdout if omitted)")
	rankCmd.Flags().StringVarP(&rankConfig, "config", "c", "", "Path to config JSON file")
	rankCmd.Flags().BoolVarP(&rankVerbose, "verbose", "v", false, "Print a formatted ranking summary")

	if err := rankCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}
	if err := rankCmd.MarkFlagRequired("resumes"); err != nil {
		panic(fmt.Sprintf("failed to mark resumes flag as required: %v", err))
	}

	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, _ []string) error {
	engine, cfg, err := buildEngine(rankConfig)
	if err != nil {
		return err
	}
	verbose := rankVerbose || (cfg != nil && cfg.Verbose)

	job, err := loadJobDescription(rankJob)
	if err != nil {
		return err
	}

	resumes, err := loadResumes(rankResumes)
	if err != nil {
		return err
	}

	fmt.Printf("Ranking %d resume(s) against %q...\n", len(resumes), job.Title)
	results, err := engine.RankResumes(cmd.Context(), *job, resumes)
	if err != nil {
		return fmt.Errorf("failed to rank resumes: %w", err)
	}

	if verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintMatchResults(job, results)
	}

	return writeJSON(rankOutput, types.RankedMatches{JobID: job.ID, Results: results})
}
