package cli

import (
	"bufio"
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Nikhil-4404/ai-exam-planner/internal/core/domain"
)

var (
	subjectDifficulty int
	subjectExam       string
	subjectTopics     []string
	subjectJSON       bool
	importYes         bool
	importWeightage   float64
)

var subjectCmd = &cobra.Command{
	Use:   "subject",
	Short: "Manage subjects and their topics",
}

var subjectAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add a subject",
	Long: `Add a subject with its exam date, difficulty and topics.

Topics take an optional weightage after a colon; the default is 1.

Example:
  smartstudy subject add Math --difficulty 6 --exam 2026-11-02 \
    --topic Algebra:2 --topic Geometry`,
	Args: cobra.ExactArgs(1),
	RunE: runSubjectAdd,
}

var subjectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List subjects ordered by exam date",
	Args:  cobra.NoArgs,
	RunE:  runSubjectList,
}

var subjectShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show a subject and its topics",
	Args:  cobra.ExactArgs(1),
	RunE:  runSubjectShow,
}

var subjectDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a subject and its topics",
	Args:  cobra.ExactArgs(1),
	RunE:  runSubjectDelete,
}

var subjectImportCmd = &cobra.Command{
	Use:   "import ID FILE",
	Short: "Import topics from a syllabus document",
	Long: `Extract candidate topics from a syllabus document and add them to a subject.

The candidates are printed for review first. Topics the subject already
has are skipped. Use --yes to accept without a prompt.`,
	Args: cobra.ExactArgs(2),
	RunE: runSubjectImport,
}

func init() {
	subjectAddCmd.Flags().IntVarP(&subjectDifficulty, "difficulty", "d", 5, "difficulty from 0 to 10")
	subjectAddCmd.Flags().StringVarP(&subjectExam, "exam", "e", "", "exam date (YYYY-MM-DD)")
	subjectAddCmd.Flags().StringArrayVarP(&subjectTopics, "topic", "t", nil, "topic as NAME[:WEIGHT] (repeatable)")
	_ = subjectAddCmd.MarkFlagRequired("exam")

	subjectListCmd.Flags().BoolVar(&subjectJSON, "json", false, "output as JSON")
	subjectShowCmd.Flags().BoolVar(&subjectJSON, "json", false, "output as JSON")

	subjectImportCmd.Flags().BoolVarP(&importYes, "yes", "y", false, "add the candidates without prompting")
	subjectImportCmd.Flags().Float64VarP(&importWeightage, "weight", "w", domain.DefaultWeightage, "weightage for imported topics")

	subjectCmd.AddCommand(subjectAddCmd)
	subjectCmd.AddCommand(subjectListCmd)
	subjectCmd.AddCommand(subjectShowCmd)
	subjectCmd.AddCommand(subjectDeleteCmd)
	subjectCmd.AddCommand(subjectImportCmd)
	rootCmd.AddCommand(subjectCmd)
}

func runSubjectAdd(cmd *cobra.Command, args []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}

	examDate, err := domain.ParseDate(subjectExam)
	if err != nil {
		return err
	}

	topics := make([]domain.Topic, 0, len(subjectTopics))
	for _, raw := range subjectTopics {
		topic, err := parseTopicFlag(raw)
		if err != nil {
			return err
		}
		topics = append(topics, topic)
	}

	created, err := s.Subjects.Create(cmd.Context(), domain.Subject{
		Name:       args[0],
		Difficulty: subjectDifficulty,
		ExamDate:   examDate,
		Topics:     topics,
	})
	if err != nil {
		return fmt.Errorf("failed to add subject: %w", err)
	}

	cmd.Printf("Added %s (%s) with %d topic(s)\n", created.Name, created.ID, len(created.Topics))
	return nil
}

// parseTopicFlag splits "Name:2.5" into a topic. A suffix that is not a
// number is kept as part of the name.
func parseTopicFlag(raw string) (domain.Topic, error) {
	name, weight := raw, 0.0
	if i := strings.LastIndex(raw, ":"); i >= 0 {
		if w, err := strconv.ParseFloat(strings.TrimSpace(raw[i+1:]), 64); err == nil {
			name, weight = raw[:i], w
		}
	}
	return domain.NewTopic(name, weight)
}

func runSubjectList(cmd *cobra.Command, _ []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}

	subjects, err := s.Subjects.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list subjects: %w", err)
	}

	if subjectJSON {
		return writeJSON(cmd, subjectViews(subjects))
	}

	if len(subjects) == 0 {
		cmd.Println("No subjects yet. Add one with 'smartstudy subject add'.")
		return nil
	}

	rows := make([][]string, 0, len(subjects))
	for i := range subjects {
		done, total := progress(subjects[i].Topics)
		rows = append(rows, []string{
			subjects[i].ID,
			subjects[i].Name,
			fmt.Sprintf("%d (%s)", subjects[i].Difficulty, domain.BandOf(subjects[i].Difficulty)),
			subjects[i].ExamDate.Format(domain.DateLayout),
			fmt.Sprintf("%d/%d", done, total),
		})
	}

	p := newPalette(cmd.OutOrStdout())
	cmd.Println(p.table([]string{"ID", "Subject", "Difficulty", "Exam", "Done"}, rows, nil))
	return nil
}

func runSubjectShow(cmd *cobra.Command, args []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}

	subject, err := s.Subjects.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get subject: %w", err)
	}

	if subjectJSON {
		return writeJSON(cmd, subjectViews([]domain.Subject{*subject})[0])
	}

	cmd.Printf("%s (%s)\n", subject.Name, subject.ID)
	cmd.Printf("  Exam:       %s\n", subject.ExamDate.Format(domain.DateLayout))
	cmd.Printf("  Difficulty: %d (%s)\n", subject.Difficulty, domain.BandOf(subject.Difficulty))
	cmd.Println()

	if len(subject.Topics) == 0 {
		cmd.Println("No topics.")
		return nil
	}

	rows := make([][]string, 0, len(subject.Topics))
	for _, topic := range subject.Topics {
		status := "pending"
		if topic.Completed {
			status = "done"
		}
		rows = append(rows, []string{topic.ID, topic.Name, strconv.FormatFloat(topic.Weightage, 'f', -1, 64), status})
	}

	p := newPalette(cmd.OutOrStdout())
	cmd.Println(p.table([]string{"ID", "Topic", "Weight", "Status"}, rows, nil))
	return nil
}

func runSubjectDelete(cmd *cobra.Command, args []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}

	if err := s.Subjects.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to delete subject: %w", err)
	}

	cmd.Printf("Deleted subject %s\n", args[0])
	return nil
}

func runSubjectImport(cmd *cobra.Command, args []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	subjectID, path := args[0], args[1]

	subject, err := s.Subjects.Get(ctx, subjectID)
	if err != nil {
		return fmt.Errorf("failed to get subject: %w", err)
	}

	result, err := extractFile(ctx, s, path)
	if err != nil {
		return err
	}

	cmd.Printf("Found %d candidate topic(s) for %s (%s pass):\n", len(result.Topics), subject.Name, result.Strategy)
	for _, topic := range result.Topics {
		marker := " "
		if subject.HasTopic(topic) {
			marker = "="
		}
		cmd.Printf("  %s %s\n", marker, topic)
	}
	if result.LowConfidence {
		cmd.Println("Warning: few topics were found; review the list carefully.")
	}

	if !importYes {
		ok, err := confirm(cmd, "Add these topics?")
		if err != nil {
			return err
		}
		if !ok {
			cmd.Println("Nothing added.")
			return nil
		}
	}

	added, err := s.Subjects.AddTopics(ctx, subjectID, result.Topics, importWeightage)
	if err != nil {
		return fmt.Errorf("failed to add topics: %w", err)
	}

	cmd.Printf("Added %d topic(s) to %s\n", len(added), subject.Name)
	return nil
}

// extractFile reads a syllabus document from disk and extracts its topics.
func extractFile(ctx context.Context, s *Services, path string) (domain.ExtractionResult, error) {
	if s.OpenSource == nil {
		return domain.ExtractionResult{}, fmt.Errorf("%w: no syllabus source", errNotConfigured)
	}

	source := s.OpenSource(filepath.Dir(path))
	defer source.Close()

	raw, err := source.Read(ctx, path)
	if err != nil {
		return domain.ExtractionResult{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return s.Syllabus.ExtractTopics(ctx, raw)
}

// confirm asks a yes/no question on the command's input. Anything other
// than y or yes is a no.
func confirm(cmd *cobra.Command, question string) (bool, error) {
	cmd.Printf("%s [y/N] ", question)

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		cmd.Println()
		return false, nil
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func progress(topics []domain.Topic) (done, total int) {
	for _, topic := range topics {
		if topic.Completed {
			done++
		}
	}
	return done, len(topics)
}

// subjectView is the JSON shape of a subject.
type subjectView struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Difficulty int         `json:"difficulty"`
	Band       string      `json:"difficulty_band"`
	ExamDate   string      `json:"exam_date"`
	Topics     []topicView `json:"topics"`
}

type topicView struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Weightage float64 `json:"weightage"`
	Completed bool    `json:"completed"`
}

func subjectViews(subjects []domain.Subject) []subjectView {
	views := make([]subjectView, 0, len(subjects))
	for i := range subjects {
		topics := make([]topicView, 0, len(subjects[i].Topics))
		for _, t := range subjects[i].Topics {
			topics = append(topics, topicView{ID: t.ID, Name: t.Name, Weightage: t.Weightage, Completed: t.Completed})
		}
		views = append(views, subjectView{
			ID:         subjects[i].ID,
			Name:       subjects[i].Name,
			Difficulty: subjects[i].Difficulty,
			Band:       string(domain.BandOf(subjects[i].Difficulty)),
			ExamDate:   subjects[i].ExamDate.Format(domain.DateLayout),
			Topics:     topics,
		})
	}
	return views
}
