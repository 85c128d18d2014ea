package commands

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/capital-devs/community/add-meetup/internal/app"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export [year]",
	Short: "Export a year's meetups as ics or csv",
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

		var buf bytes.Buffer
		switch exportFormat {
		case "ics":
			err = app.GenerateICS(&buf, store)
		case "csv":
			err = app.GenerateCSV(&buf, store)
		default:
			return fmt.Errorf("unknown format %q (want ics or csv)", exportFormat)
		}
		if err != nil {
			return err
		}

		if exportOutput == "" {
			_, err = buf.WriteTo(cmd.OutOrStdout())
			return err
		}
		if err := os.WriteFile(exportOutput, buf.Bytes(), app.FilePermissions); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "ics", "export format: ics or csv")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
}

// yearArg resolves the optional positional year, defaulting to the current
// year.
func yearArg(args []string) (int, error) {
	if len(args) == 0 {
		return time.Now().Year(), nil
	}
	year, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid year %q", args[0])
	}
	return year, nil
}
