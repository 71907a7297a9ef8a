package cmd

import (
	"time"

	"github.com/neighborbank/cli/pkg/service"
	"github.com/spf13/cobra"
)

var (
	authToken     string
	authUserID    int64
	authRole      string
	authNickname  string
	authLocation  string
	authExpiresIn time.Duration
	authForce     bool
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Session commands",
	Long: `Manage the identity the CLI acts as.

Sign in on the web, then hand the access token and your account
details to "auth use". Without a stored session the CLI browses as a guest.`,
}

var authUseCmd = &cobra.Command{
	Use:   "use",
	Short: "Store the identity to act as",
	Example: `  neighborbank auth use --user-id 42 --role C --location 성동구
  neighborbank auth use --user-id 9 --role B --token "$NEIGHBORBANK_TOKEN"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		authSvc := service.NewAuthService()
		return authSvc.Use(service.UseOptions{
			Token:     authToken,
			UserID:    authUserID,
			Role:      authRole,
			Nickname:  authNickname,
			Location:  authLocation,
			ExpiresIn: authExpiresIn,
		})
	},
}

var authShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the stored identity",
	RunE: func(cmd *cobra.Command, args []string) error {
		authSvc := service.NewAuthService()
		return authSvc.Show()
	},
}

var authClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget the stored identity",
	RunE: func(cmd *cobra.Command, args []string) error {
		authSvc := service.NewAuthService()
		return authSvc.Clear(authForce)
	},
}

func init() {
	authUseCmd.Flags().StringVar(&authToken, "token", "", "Access token (prompted for when omitted)")
	authUseCmd.Flags().Int64Var(&authUserID, "user-id", 0, "Customer or banker id")
	authUseCmd.Flags().StringVar(&authRole, "role", "C", "Role: C (customer) or B (banker)")
	authUseCmd.Flags().StringVar(&authNickname, "nickname", "", "Display name")
	authUseCmd.Flags().StringVar(&authLocation, "location", "", "Home district (default: session.default_location)")
	authUseCmd.Flags().DurationVar(&authExpiresIn, "expires-in", 0, "Forget the token after this long (0 keeps it)")
	_ = authUseCmd.MarkFlagRequired("user-id")

	authClearCmd.Flags().BoolVarP(&authForce, "force", "f", false, "Skip confirmation")

	authCmd.AddCommand(authUseCmd)
	authCmd.AddCommand(authShowCmd)
	authCmd.AddCommand(authClearCmd)
}
