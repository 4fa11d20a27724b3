package cli

import (
	"strings"

	"github.com/Vovarama1992/cloudio/internal/domain/views"
	"github.com/spf13/cobra"
)

func searchCMD(a *app) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the backend once",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := views.NewSearchView(a.backend(), a.alerter(), a.log)
			v.Query = strings.Join(args, " ")

			if err := v.Submit(cmd.Context()); err != nil {
				return err
			}

			if jsonOutput {
				return outputJSON(cmd.OutOrStdout(), v.Results)
			}
			outputResults(cmd.OutOrStdout(), v.Results)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")
	return cmd
}
