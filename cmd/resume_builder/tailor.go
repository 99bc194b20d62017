package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/fetch"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/tailoring"
	"github.com/jonathan/resume-builder/internal/types"
)

var (
	tailorResumePath string
	tailorJobTitle   string
	tailorJobPath    string
	tailorJobURL     string
	tailorOutPath    string
)

var tailorCmd = &cobra.Command{
	Use:   "tailor",
	Short: "Tailor a resume to a job posting",
	Long: `Run the tailoring pipeline against a master resume JSON file and a job
posting, writing the tailored resume JSON to --out (or stdout).

The job posting is read from --job (a text file) or fetched from --job-url.`,
	RunE: runTailor,
}

func init() {
	tailorCmd.Flags().StringVarP(&tailorResumePath, "resume", "r", "", "Path to master resume JSON file (required)")
	tailorCmd.Flags().StringVarP(&tailorJobTitle, "title", "t", "", "Job title (required)")
	tailorCmd.Flags().StringVarP(&tailorJobPath, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	tailorCmd.Flags().StringVar(&tailorJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	tailorCmd.Flags().StringVarP(&tailorOutPath, "out", "o", "", "Output path for tailored resume JSON (default stdout)")
	_ = tailorCmd.MarkFlagRequired("resume")
	_ = tailorCmd.MarkFlagRequired("title")
	rootCmd.AddCommand(tailorCmd)
}

func runTailor(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	if (tailorJobPath == "") == (tailorJobURL == "") {
		return fmt.Errorf("exactly one of --job or --job-url is required")
	}

	raw, err := os.ReadFile(tailorResumePath)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}
	var master types.ResumeDocument
	if err := json.Unmarshal(raw, &master); err != nil {
		return fmt.Errorf("failed to parse resume JSON: %w", err)
	}
	if err := master.Validate(); err != nil {
		return fmt.Errorf("invalid master resume: %w", err)
	}

	var jobDescription string
	if tailorJobPath != "" {
		text, err := os.ReadFile(tailorJobPath)
		if err != nil {
			return fmt.Errorf("failed to read job posting file: %w", err)
		}
		jobDescription = strings.TrimSpace(string(text))
	} else {
		jobDescription, err = fetch.JobPosting(ctx, tailorJobURL)
		if err != nil {
			return fmt.Errorf("failed to fetch job posting: %w", err)
		}
	}
	if jobDescription == "" {
		return fmt.Errorf("job posting is empty")
	}

	genConfig, err := config.NewGenerationConfig()
	if err != nil {
		return err
	}
	llmConfig := llm.DefaultConfig()
	if genConfig.Model != "" {
		llmConfig = llmConfig.WithModel(llm.TierAdvanced, genConfig.Model)
	}
	client, err := llm.NewGeminiClient(ctx, llmConfig, genConfig.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create generation client: %w", err)
	}
	defer func() { _ = client.Close() }()

	tailorer := tailoring.NewTailorer(client, tailoring.Options{
		MaxAttempts: genConfig.MaxAttempts,
		ModelTier:   llm.TierAdvanced,
		Timeout:     genConfig.Timeout,
	})

	result, err := tailorer.TailorResume(ctx, &master, tailorJobTitle, jobDescription)
	if err != nil {
		return fmt.Errorf("tailoring failed: %w", err)
	}

	out, err := json.MarshalIndent(result.Resume, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tailored resume: %w", err)
	}

	if tailorOutPath == "" {
		fmt.Println(string(out))
		return nil
	}
	if err := os.WriteFile(tailorOutPath, append(out, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Printf("Tailored resume written to %s\n", tailorOutPath)
	return nil
}
