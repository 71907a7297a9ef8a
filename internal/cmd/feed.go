package cmd

import (
	"github.com/neighborbank/cli/pkg/content"
	"github.com/neighborbank/cli/pkg/prompter"
	"github.com/neighborbank/cli/pkg/service"
	"github.com/spf13/cobra"
)

var (
	feedCategory string
	feedSort     string
	feedLocation string
	feedPages    int
	feedNoPrompt bool
)

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Browse feeds",
	Long: `Browse the Q&A and community feeds page by page.

In a terminal the feed waits for input after each page: press enter for
more, "c <category>" to switch category, or "q" to quit.`,
}

var feedQnaCmd = &cobra.Command{
	Use:   "qna",
	Short: "Browse the Q&A feed",
	Example: `  neighborbank feed qna
  neighborbank feed qna --category 예금 --sort helpful
  neighborbank feed qna --category 3 --pages 2 --no-prompt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return browse(cmd, content.KindQuestion)
	},
}

var feedCommunityCmd = &cobra.Command{
	Use:   "community",
	Short: "Browse the community feed of a district",
	RunE: func(cmd *cobra.Command, args []string) error {
		return browse(cmd, content.KindCommunity)
	},
}

func browse(cmd *cobra.Command, kind content.Kind) error {
	feedSvc := service.NewFeedService()
	return feedSvc.Browse(cmd.Context(), service.BrowseOptions{
		Kind:        kind,
		Category:    feedCategory,
		Sort:        feedSort,
		Location:    feedLocation,
		Pages:       feedPages,
		Interactive: !feedNoPrompt && prompter.IsInteractive(),
	})
}

func init() {
	for _, c := range []*cobra.Command{feedQnaCmd, feedCommunityCmd} {
		c.Flags().StringVarP(&feedCategory, "category", "c", "", "Category name or id (default: all)")
		c.Flags().StringVar(&feedSort, "sort", "", "Sort order: latest or helpful (default: feed.sort)")
		c.Flags().IntVar(&feedPages, "pages", 1, "Pages to print before prompting")
		c.Flags().BoolVar(&feedNoPrompt, "no-prompt", false, "Never prompt for more pages")
		_ = c.RegisterFlagCompletionFunc("sort", completeSort)
	}
	feedCommunityCmd.Flags().StringVarP(&feedLocation, "location", "l", "", "District (default: your session's)")

	feedCmd.AddCommand(feedQnaCmd)
	feedCmd.AddCommand(feedCommunityCmd)
}
