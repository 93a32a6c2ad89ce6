package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Nikhil-4404/ai-exam-planner/internal/core/domain"
)

var (
	syllabusJSON     bool
	watchSkipInitial bool
)

var syllabusCmd = &cobra.Command{
	Use:   "syllabus",
	Short: "Extract topics from syllabus documents",
}

var syllabusExtractCmd = &cobra.Command{
	Use:   "extract FILE",
	Short: "Print the candidate topics found in a syllabus",
	Long: `Print the candidate topics found in a syllabus document.

Topics are read from UNIT, MODULE, CHAPTER and SECTION blocks. When no
block yields topics, every plausible line is considered instead and the
result is marked for review.

Supported formats: PDF (requires pdftotext), DOCX, HTML, Markdown and
plain text.`,
	Args: cobra.ExactArgs(1),
	RunE: runSyllabusExtract,
}

var syllabusWatchCmd = &cobra.Command{
	Use:   "watch DIR",
	Short: "Re-extract syllabus documents as they change",
	Long: `Watch a folder and print candidate topics whenever a document in it is
created or modified. Press Ctrl+C to stop.`,
	Args: cobra.ExactArgs(1),
	RunE: runSyllabusWatch,
}

func init() {
	syllabusExtractCmd.Flags().BoolVar(&syllabusJSON, "json", false, "output as JSON")
	syllabusWatchCmd.Flags().BoolVar(&watchSkipInitial, "skip-existing", false, "do not extract files already in the folder")
	syllabusCmd.AddCommand(syllabusExtractCmd)
	syllabusCmd.AddCommand(syllabusWatchCmd)
	rootCmd.AddCommand(syllabusCmd)
}

func runSyllabusExtract(cmd *cobra.Command, args []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}

	result, err := extractFile(cmd.Context(), s, args[0])
	if err != nil {
		return err
	}

	if syllabusJSON {
		return writeJSON(cmd, result)
	}

	printExtraction(cmd, args[0], result)
	return nil
}

func runSyllabusWatch(cmd *cobra.Command, args []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}
	if s.OpenSource == nil {
		return fmt.Errorf("%w: no syllabus source", errNotConfigured)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dir := args[0]
	source := s.OpenSource(dir)
	defer source.Close()

	changes, err := source.Watch(ctx)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	if !watchSkipInitial {
		paths, err := source.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to list %s: %w", dir, err)
		}
		for _, path := range paths {
			raw, err := source.Read(ctx, path)
			if err != nil {
				cmd.PrintErrf("%s: %v\n", path, err)
				continue
			}
			reportExtraction(ctx, cmd, s, raw)
		}
	}

	cmd.Printf("Watching %s (Ctrl+C to stop)\n", dir)
	for change := range changes {
		if change.Type == domain.ChangeDeleted {
			cmd.Printf("%s: removed\n", filepath.Base(change.Document.URI))
			continue
		}
		doc := change.Document
		reportExtraction(ctx, cmd, s, &doc)
	}
	return nil
}

// reportExtraction prints the outcome for one document. Failures are
// reported and do not stop the caller.
func reportExtraction(ctx context.Context, cmd *cobra.Command, s *Services, raw *domain.RawDocument) {
	result, err := s.Syllabus.ExtractTopics(ctx, raw)
	if err != nil {
		var extractionErr *domain.ExtractionError
		if errors.As(err, &extractionErr) {
			cmd.PrintErrf("%s: %s\n", filepath.Base(raw.URI), extractionErr.Reason)
			return
		}
		cmd.PrintErrf("%s: %v\n", filepath.Base(raw.URI), err)
		return
	}
	printExtraction(cmd, raw.URI, result)
}

func printExtraction(cmd *cobra.Command, path string, result domain.ExtractionResult) {
	cmd.Printf("%s: %d topic(s) (%s)\n", filepath.Base(path), len(result.Topics), result.Strategy)
	for _, topic := range result.Topics {
		cmd.Printf("  - %s\n", topic)
	}
	if result.LowConfidence {
		cmd.Println("  Warning: low confidence, review before importing.")
	}
}
