package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/capital-devs/community/add-meetup/internal/app"
)

var listCmd = &cobra.Command{
	Use:   "list [year]",
	Short: "Print the meetup listing for a year",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		year, err := yearArg(args)
		if err != nil {
			return err
		}
		store, err := app.LoadOrCreateStore(year)
		if err != nil {
			return err
		}
		if len(store.Events) == 0 {
			return fmt.Errorf("no meetups recorded for %d", year)
		}
		fmt.Fprint(cmd.OutOrStdout(), app.RenderListing(store))
		return nil
	},
}
