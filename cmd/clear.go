package cmd

import (
	"fmt"

	"github.com/mediabar/mediabar/icon"
	"github.com/mediabar/mediabar/util"
	"github.com/mediabar/mediabar/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type clearable struct {
	flag, short string
	what        string
	dir         func() string
}

// Sockets are only left behind when an engine was killed; a live instance keeps its own.
var clearables = []clearable{
	{"logs", "l", "log files", where.Logs},
	{"temp", "t", "stale engine sockets", where.Temp},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, c := range clearables {
		clearCmd.Flags().BoolP(c.flag, c.short, false, "remove "+c.what)
	}
	clearCmd.MarkFlagsOneRequired(lo.Map(clearables, func(c clearable, _ int) string {
		return c.flag
	})...)
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove log files and leftover engine sockets",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, c := range clearables {
			if !lo.Must(cmd.Flags().GetBool(c.flag)) {
				continue
			}

			erase := util.PrintErasable(fmt.Sprintf("%s Removing %s...", icon.Get(icon.Progress), c.what))
			removed, err := util.ClearDir(c.dir())
			erase()
			handleErr(err)

			fmt.Printf("%s %s removed\n", icon.Get(icon.Success), util.Quantify(removed, "entry", "entries"))
		}
	},
}
