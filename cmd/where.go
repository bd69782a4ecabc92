package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mediabar/mediabar/color"
	"github.com/mediabar/mediabar/style"
	"github.com/mediabar/mediabar/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

type location struct {
	flag        string
	short       mo.Option[string]
	description string
	resolve     func() string
}

var locations = []location{
	{"config", mo.Some("c"), "configuration directory", where.Config},
	{"logs", mo.Some("l"), "log files", where.Logs},
	{"temp", mo.Some("t"), "engine sockets", where.Temp},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, l := range locations {
		if short, ok := l.short.Get(); ok {
			whereCmd.Flags().BoolP(l.flag, short, false, "print only the "+l.description+" path")
		} else {
			whereCmd.Flags().Bool(l.flag, false, "print only the "+l.description+" path")
		}
	}
	whereCmd.Flags().BoolP("json", "j", false, "print every path as a JSON object")

	whereCmd.MarkFlagsMutuallyExclusive(append(lo.Map(locations, func(l location, _ int) string {
		return l.flag
	}), "json")...)

	whereCmd.SetOut(os.Stdout)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where files are kept",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if selected, ok := lo.Find(locations, func(l location) bool {
			return lo.Must(cmd.Flags().GetBool(l.flag))
		}); ok {
			cmd.Println(selected.resolve())
			return nil
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			paths := lo.SliceToMap(locations, func(l location) (string, string) {
				return l.flag, l.resolve()
			})

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(paths)
		}

		width := lo.Max(lo.Map(locations, func(l location, _ int) int {
			return len(l.flag)
		}))
		name := style.New().Bold(true).Foreground(color.Purple).Render

		for _, l := range locations {
			cmd.Printf("%s  %s\n", name(fmt.Sprintf("%-*s", width, l.flag)), l.resolve())
		}
		return nil
	},
}
