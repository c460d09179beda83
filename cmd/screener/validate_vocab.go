package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/schemas"
	"github.com/jonathan/resume-screener/internal/skills"
)

const vocabularySchemaPath = "schemas/vocabulary.schema.json"

var validateVocabCmd = &cobra.Command{
	Use:   "validate-vocab",
	Short: "Validate a skill vocabulary file",
	Long:  "Validates a skill vocabulary JSON file against the vocabulary schema and loads it, so bad vocabulary updates are caught before they reach scoring.",
	RunE:  runValidateVocab,
}

var (
	validateVocabFile    string
	validateVocabVerbose bool
)

func init() {
	validateVocabCmd.Flags().StringVarP(&validateVocabFile, "file", "f", "", "Path to vocabulary JSON file (required)")
	validateVocabCmd.Flags().BoolVarP(&validateVocabVerbose, "verbose", "v", false, "Print a summary of the loaded vocabulary")

	if err := validateVocabCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}

	rootCmd.AddCommand(validateVocabCmd)
}

func runValidateVocab(_ *cobra.Command, _ []string) error {
	// Schema validation first for precise field-level errors, then a real
	// load so struct-level constraints are exercised too.
	if schemaPath := schemas.ResolveSchemaPath(vocabularySchemaPath); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, validateVocabFile); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(os.Stderr, "Warning: vocabulary schema not found, skipping schema validation\n")
	}

	vocab, err := skills.LoadVocabulary(validateVocabFile)
	if err != nil {
		return err
	}

	fmt.Printf("Vocabulary OK: %d skill(s)\n", len(vocab.Skills))
	if validateVocabVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintVocabulary(vocab)
	}
	return nil
}
