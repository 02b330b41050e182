package cmd

import (
	"github.com/mushroomsink/mushrooms/internal/config"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:       "browse [companies|research]",
	Short:     "Open the browser on a list page",
	Long:      "Open mushrooms straight on the company directory (default) or the research library.",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{config.PageCompanies, config.PageResearch},
	RunE: func(cmd *cobra.Command, args []string) error {
		page := config.PageCompanies
		if len(args) == 1 {
			page = args[0]
		}
		return runTUI(page)
	},
}
