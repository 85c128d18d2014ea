package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/capital-devs/community/add-meetup/internal/app"
)

var (
	dateFlag string
	timeFlag string
	dirFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "add-meetup [--date yyyy-mm-dd] [--time h:mmam/pm] <topic> <presenter> [<presenter> ...]",
	Short: "Record a meetup event in the year's store",
	Long: `add-meetup appends a meetup event to the year-scoped JSON store and
regenerates the markdown listing derived from it.

When --date is omitted the next first Friday of a month is used; when --time
is omitted the meetup is scheduled for 6:30pm.`,
	Example: `  add-meetup "My crazy topic" "Alex Hart"
  add-meetup "My crazy topic" "Alex Hart" "Michael Go"
  add-meetup --date 2026-05-01 --time 7:00pm "My crazy topic" "Alex Hart"`,
	Args:          cobra.MinimumNArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return app.ResolveDataPath(dirFlag)
	},
	RunE: runAdd,
}

func init() {
	rootCmd.Flags().StringVar(&dateFlag, "date", "", "date of the meetup, yyyy-mm-dd (default: next first Friday)")
	rootCmd.Flags().StringVar(&timeFlag, "time", app.DefaultTime, "time of the meetup, h:mmam/pm")
	rootCmd.PersistentFlags().StringVar(&dirFlag, "dir", "", "data directory (default: $MEETUPS_DIR or the working directory)")
	rootCmd.AddCommand(listCmd, exportCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	topic, presenters := args[0], args[1:]

	var meetupDate time.Time
	if dateFlag != "" {
		d, err := app.ParseDate(dateFlag)
		if err != nil {
			return err
		}
		meetupDate = d
	} else {
		meetupDate = app.NextFirstFriday(time.Now())
		// Keep piped output machine-clean
		if term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintf(cmd.OutOrStdout(), "No date specified. Using next first Friday: %s\n", meetupDate.Format(app.StoreDateLayout))
		}
	}

	timeOfDay, err := app.ParseTime(timeFlag)
	if err != nil {
		return err
	}

	ev, err := app.NewEvent(meetupDate, timeOfDay, topic, presenters)
	if err != nil {
		return err
	}

	store, err := app.LoadOrCreateStore(meetupDate.Year())
	if err != nil {
		return err
	}
	if err := store.Insert(ev); err != nil {
		return err
	}
	if err := store.Persist(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Added meetup on %s at %s: %s\n", ev.Date, ev.Time, ev.Topic)
	fmt.Fprintln(out, app.StorePath(store.Year))
	fmt.Fprintln(out, app.ListingPath(store.Year))
	return nil
}

// Execute runs the command tree, reporting failures on stderr.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
