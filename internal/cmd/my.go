package cmd

import (
	"fmt"

	"github.com/neighborbank/cli/pkg/prompter"
	"github.com/neighborbank/cli/pkg/service"
	"github.com/spf13/cobra"
)

var (
	profileEdit service.ProfileEdit
	cardEdit    service.CardEdit
)

var myCmd = &cobra.Command{
	Use:   "my",
	Short: "Your own activity",
}

var myScrapsCmd = &cobra.Command{
	Use:       "scraps [qna|post]",
	Short:     "List what you scrapped",
	ValidArgs: []string{"qna", "post"},
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		mySvc := service.NewMyPageService()
		switch optionalArg(args) {
		case "", "qna":
			return mySvc.ScrappedQuestions(cmd.Context())
		case "post":
			return mySvc.ScrappedPosts(cmd.Context())
		}
		return fmt.Errorf("unknown scrap list: %s", args[0])
	},
}

var myQuestionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the questions you asked",
	RunE: func(cmd *cobra.Command, args []string) error {
		mySvc := service.NewMyPageService()
		return mySvc.Questions(cmd.Context())
	},
}

var myProfileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View or edit your account information",
}

var myProfileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your account information",
	RunE: func(cmd *cobra.Command, args []string) error {
		mySvc := service.NewMyPageService()
		return mySvc.Profile(cmd.Context())
	},
}

var myProfileEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Change your account information",
	Long: `Change your account information. A new password is always required;
it is prompted for without echo when --password is not given.

Customers can change nickname, birth date, gender, location and phone.
Bankers can change their branch.`,
	Example: `  neighborbank my profile edit --nickname 새이웃 --phone 010-1234-5678
  neighborbank my profile edit --branch 왕십리지점`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mySvc := service.NewMyPageService()
		return mySvc.EditProfile(cmd.Context(), profileEdit, prompter.IsInteractive())
	},
}

var myProfileCardCmd = &cobra.Command{
	Use:   "card",
	Short: "Edit the profile card customers see (bankers)",
	Example: `  neighborbank my profile card --interest 예금 --interest 대출 --intro "편하게 물어보세요"
  neighborbank my profile card --photo ./me.png`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mySvc := service.NewMyPageService()
		return mySvc.EditCard(cmd.Context(), cardEdit)
	},
}

func init() {
	f := myProfileEditCmd.Flags()
	f.StringVar(&profileEdit.Password, "password", "", "New password (prompted when omitted)")
	f.StringVar(&profileEdit.Nickname, "nickname", "", "New nickname")
	f.StringVar(&profileEdit.BirthDate, "birth-date", "", "Birth date as YYYY-MM-DD")
	f.StringVar(&profileEdit.Gender, "gender", "", "M or F")
	f.StringVar(&profileEdit.Location, "location", "", "Home district")
	f.StringVar(&profileEdit.Phone, "phone", "", "Phone number")
	f.StringVar(&profileEdit.Branch, "branch", "", "Branch name (bankers)")

	f = myProfileCardCmd.Flags()
	f.StringVar(&cardEdit.Name, "name", "", "Display name")
	f.StringArrayVar(&cardEdit.Interests, "interest", nil, "Specialization, repeatable (replaces the list)")
	f.StringVar(&cardEdit.Intro, "intro", "", "Introduction")
	f.StringVar(&cardEdit.Photo, "photo", "", "Profile picture (image, under 2 MiB)")

	_ = myProfileEditCmd.RegisterFlagCompletionFunc("gender", cobra.FixedCompletions([]string{"M", "F"}, cobra.ShellCompDirectiveNoFileComp))
	_ = myProfileCardCmd.MarkFlagFilename("photo", "png", "jpg", "jpeg", "gif", "webp")

	myProfileCmd.AddCommand(myProfileShowCmd)
	myProfileCmd.AddCommand(myProfileEditCmd)
	myProfileCmd.AddCommand(myProfileCardCmd)

	myCmd.AddCommand(myScrapsCmd)
	myCmd.AddCommand(myQuestionsCmd)
	myCmd.AddCommand(myProfileCmd)
}
