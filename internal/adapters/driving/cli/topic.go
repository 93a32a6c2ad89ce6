package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var topicCmd = &cobra.Command{
	Use:   "topic",
	Short: "Mark topics done or pending",
}

var topicDoneCmd = &cobra.Command{
	Use:   "done ID",
	Short: "Mark a topic completed",
	Long:  `Mark a topic completed. Completed topics are left out of future plans.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTopicSet(true),
}

var topicUndoCmd = &cobra.Command{
	Use:   "undo ID",
	Short: "Mark a topic pending again",
	Args:  cobra.ExactArgs(1),
	RunE:  runTopicSet(false),
}

func init() {
	topicCmd.AddCommand(topicDoneCmd)
	topicCmd.AddCommand(topicUndoCmd)
	rootCmd.AddCommand(topicCmd)
}

func runTopicSet(completed bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := requireServices()
		if err != nil {
			return err
		}

		if err := s.Subjects.SetTopicCompleted(cmd.Context(), args[0], completed); err != nil {
			return fmt.Errorf("failed to update topic: %w", err)
		}

		state := "pending"
		if completed {
			state = "done"
		}
		cmd.Printf("Topic %s marked %s\n", args[0], state)
		return nil
	}
}
