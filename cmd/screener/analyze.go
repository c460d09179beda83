package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/observability"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a resume's intrinsic quality",
	Long:  "Analyzes a single extracted resume text for structural quality, producing an AdvisorReport JSON with a 0-100 score, priority tier, and ordered improvement suggestions. Optionally checks for gaps against a job's required skills.",
	RunE:  runAnalyze,
}

var (
	analyzeResume  string
	analyzeJob     string
	analyzeOutput  string
	analyzeConfig  string
	analyzeVerbose bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to extracted resume text file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to JobDescription JSON file for skill-gap analysis (optional)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "out", "o", "", "Path to output AdvisorReport JSON file (stdout if omitted)")
	analyzeCmd.Flags().StringVarP(&analyzeConfig, "config", "c", "", "Path to config JSON file")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a formatted report summary")

	if err := analyzeCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	engine, cfg, err := buildEngine(analyzeConfig)
	if err != nil {
		return err
	}
	verbose := analyzeVerbose || (cfg != nil && cfg.Verbose)

	resumeText, err := os.ReadFile(analyzeResume)
	if err != nil {
		return fmt.Errorf("failed to read resume file %s: %w", analyzeResume, err)
	}

	var jobSkills []string
	if analyzeJob != "" {
		job, err := loadJobDescription(analyzeJob)
		if err != nil {
			return err
		}
		jobSkills = job.RequiredSkills
		if jobSkills == nil {
			jobSkills = engine.Extractor().Extract(job.RawText)
		}
	}

	report := engine.AnalyzeQuality(string(resumeText), jobSkills)

	if verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintAdvisorReport(&report)
	}

	return writeJSON(analyzeOutput, report)
}
