package cmd

import (
	"github.com/neighborbank/cli/pkg/service"
	"github.com/spf13/cobra"
)

var districtCmd = &cobra.Command{
	Use:   "district [location]",
	Short: "Show what is happening in a district",
	Long: `Show the newest questions, hot posts, most active neighbors and
trending keywords of a district. Defaults to your session's district.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		districtSvc := service.NewDistrictService()
		return districtSvc.Show(cmd.Context(), optionalArg(args))
	},
}

var districtBankersCmd = &cobra.Command{
	Use:   "bankers [location]",
	Short: "List the bankers serving a district",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		districtSvc := service.NewDistrictService()
		return districtSvc.Bankers(cmd.Context(), optionalArg(args))
	},
}

func optionalArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func init() {
	districtCmd.AddCommand(districtBankersCmd)
}
