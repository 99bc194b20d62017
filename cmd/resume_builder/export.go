package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/types"
)

var (
	exportResumePath   string
	exportTemplatePath string
	exportOutPath      string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a resume JSON file to a .docx document",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportResumePath, "resume", "r", "", "Path to resume JSON file (required)")
	exportCmd.Flags().StringVarP(&exportTemplatePath, "template", "t", export.DefaultTemplatePath, "Path to .docx template")
	exportCmd.Flags().StringVarP(&exportOutPath, "out", "o", "resume_out.docx", "Output .docx path")
	_ = exportCmd.MarkFlagRequired("resume")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	raw, err := os.ReadFile(exportResumePath)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}
	var doc types.ResumeDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("failed to parse resume JSON: %w", err)
	}

	f, err := os.Create(exportOutPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := export.Render(exportTemplatePath, &doc, f); err != nil {
		return fmt.Errorf("failed to export resume: %w", err)
	}

	fmt.Printf("Resume exported to %s\n", exportOutPath)
	return nil
}
