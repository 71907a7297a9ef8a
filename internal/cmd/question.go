package cmd

import (
	"github.com/neighborbank/cli/pkg/prompter"
	"github.com/neighborbank/cli/pkg/service"
	"github.com/spf13/cobra"
)

var (
	draftTitle    string
	draftCategory string
	draftContent  string
	draftFiles    []string
	draftStrict   bool
	answerContent string
	deleteForce   bool
)

var questionCmd = &cobra.Command{
	Use:     "question",
	Aliases: []string{"q"},
	Short:   "Q&A question commands",
	Long:    "View, ask, answer, and manage Q&A questions",
}

var questionViewCmd = &cobra.Command{
	Use:   "view <question-id>",
	Short: "View a question with its answer and comments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID("question-id", args[0])
		if err != nil {
			return err
		}
		questionSvc := service.NewQuestionService()
		return questionSvc.Show(cmd.Context(), id)
	},
}

var questionAskCmd = &cobra.Command{
	Use:   "ask",
	Short: "Ask the bankers of your district a question",
	Example: `  neighborbank question ask --category 예금 --title "적금 중도 해지" --content "이자는 어떻게 되나요?"
  neighborbank question ask --file receipt.png --file statement.jpg`,
	RunE: func(cmd *cobra.Command, args []string) error {
		questionSvc := service.NewQuestionService()
		return questionSvc.New(cmd.Context(), currentDraft(), prompter.IsInteractive())
	},
}

var questionAnswerCmd = &cobra.Command{
	Use:   "answer <question-id>",
	Short: "Answer a question (bankers only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID("question-id", args[0])
		if err != nil {
			return err
		}
		questionSvc := service.NewQuestionService()
		return questionSvc.Answer(cmd.Context(), id, answerContent)
	},
}

var questionEditCmd = &cobra.Command{
	Use:   "edit <question-id>",
	Short: "Edit one of your questions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID("question-id", args[0])
		if err != nil {
			return err
		}
		questionSvc := service.NewQuestionService()
		return questionSvc.Edit(cmd.Context(), id, currentDraft())
	},
}

var questionDeleteCmd = &cobra.Command{
	Use:   "delete <question-id>",
	Short: "Delete one of your questions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID("question-id", args[0])
		if err != nil {
			return err
		}
		questionSvc := service.NewQuestionService()
		return questionSvc.Delete(cmd.Context(), id, deleteForce)
	},
}

var questionScrapCmd = &cobra.Command{
	Use:   "scrap <question-id>",
	Short: "Scrap or unscrap a question",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID("question-id", args[0])
		if err != nil {
			return err
		}
		questionSvc := service.NewQuestionService()
		return questionSvc.Scrap(cmd.Context(), id)
	},
}

func currentDraft() service.Draft {
	return service.Draft{
		Title:    draftTitle,
		Category: draftCategory,
		Content:  draftContent,
		Files:    draftFiles,
		Strict:   draftStrict,
	}
}

// addDraftFlags registers the flags shared by the compose commands.
func addDraftFlags(c *cobra.Command, withFiles bool) {
	c.Flags().StringVar(&draftTitle, "title", "", "Title")
	c.Flags().StringVar(&draftCategory, "category", "", "Category name")
	c.Flags().StringVar(&draftContent, "content", "", "Body text")
	if withFiles {
		c.Flags().StringArrayVar(&draftFiles, "file", nil, "Image to attach (repeatable, up to 5)")
		c.Flags().BoolVar(&draftStrict, "strict", false, "Fail instead of skipping rejected files")
	}
}

func init() {
	addDraftFlags(questionAskCmd, true)
	addDraftFlags(questionEditCmd, false)

	questionAnswerCmd.Flags().StringVar(&answerContent, "content", "", "Answer text (prompted for when omitted)")
	questionDeleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Skip confirmation")

	questionCmd.AddCommand(questionViewCmd)
	questionCmd.AddCommand(questionAskCmd)
	questionCmd.AddCommand(questionAnswerCmd)
	questionCmd.AddCommand(questionEditCmd)
	questionCmd.AddCommand(questionDeleteCmd)
	questionCmd.AddCommand(questionScrapCmd)
}
