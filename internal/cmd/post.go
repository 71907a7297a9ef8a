package cmd

import (
	"github.com/neighborbank/cli/pkg/prompter"
	"github.com/neighborbank/cli/pkg/service"
	"github.com/spf13/cobra"
)

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Community post commands",
	Long:  "View, write, and react to community posts",
}

var postViewCmd = &cobra.Command{
	Use:   "view <post-id>",
	Short: "View a post with its comments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID("post-id", args[0])
		if err != nil {
			return err
		}
		postSvc := service.NewPostService()
		return postSvc.Show(cmd.Context(), id)
	},
}

var postWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Write a post in your district",
	RunE: func(cmd *cobra.Command, args []string) error {
		postSvc := service.NewPostService()
		return postSvc.New(cmd.Context(), currentDraft(), prompter.IsInteractive())
	},
}

var postLikeCmd = &cobra.Command{
	Use:   "like <post-id>",
	Short: "Mark or unmark a post as helpful",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID("post-id", args[0])
		if err != nil {
			return err
		}
		postSvc := service.NewPostService()
		return postSvc.Like(cmd.Context(), id)
	},
}

var postScrapCmd = &cobra.Command{
	Use:   "scrap <post-id>",
	Short: "Scrap or unscrap a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID("post-id", args[0])
		if err != nil {
			return err
		}
		postSvc := service.NewPostService()
		return postSvc.Scrap(cmd.Context(), id)
	},
}

var postDeleteCmd = &cobra.Command{
	Use:   "delete <post-id>",
	Short: "Delete one of your posts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID("post-id", args[0])
		if err != nil {
			return err
		}
		postSvc := service.NewPostService()
		return postSvc.Delete(cmd.Context(), id, deleteForce)
	},
}

func init() {
	addDraftFlags(postWriteCmd, true)
	postDeleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Skip confirmation")

	postCmd.AddCommand(postViewCmd)
	postCmd.AddCommand(postWriteCmd)
	postCmd.AddCommand(postLikeCmd)
	postCmd.AddCommand(postScrapCmd)
	postCmd.AddCommand(postDeleteCmd)
}
