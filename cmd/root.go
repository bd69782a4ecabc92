// Package cmd implements the command-line interface of mediabar.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/mediabar/mediabar/color"
	"github.com/mediabar/mediabar/config"
	"github.com/mediabar/mediabar/constant"
	"github.com/mediabar/mediabar/icon"
	"github.com/mediabar/mediabar/key"
	"github.com/mediabar/mediabar/log"
	"github.com/mediabar/mediabar/style"
	"github.com/mediabar/mediabar/tui"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// flags that override a setting for a single run
var runFlags = []struct {
	name, short, key string
	value           bool
	usage           string
}{
	{"native", "n", key.ControlsNative, false, "let mpv draw its own controls"},
	{"random-heights", "r", key.WaveformRandomHeights, false, "use random bar heights"},
	{"autoplay", "a", key.PlayerAutoplay, true, "start playing at once, --autoplay=false opens paused"},
	{"loop", "L", key.PlayerLoop, false, "restart the media when it ends"},
}

func init() {
	flags := rootCmd.Flags()
	flags.BoolP("version", "v", false, "print the version and exit")
	flags.StringP("title", "t", "", "title shown instead of the file name")

	for _, f := range runFlags {
		flags.BoolP(f.name, f.short, f.value, f.usage)
		lo.Must0(viper.BindPFlag(f.key, flags.Lookup(f.name)))
	}

	rootCmd.PersistentFlags().StringP("icons", "I", "", "icon variant: "+strings.Join(icon.AvailableVariants(), ", "))
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))
}

var rootCmd = &cobra.Command{
	Use:   constant.App + " [file or url]",
	Short: "Play media in mpv with auto-hiding terminal controls",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.Azure).Render("    play media in mpv with auto-hiding terminal controls"),
	Example: strings.Join([]string{
		"  " + constant.App + " ~/Music/track.flac",
		"  " + constant.App + " --title Intro ./clip.mkv",
		"  " + constant.App + " --native https://example.com/video.mp4",
	}, "\n"),
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		switch {
		case lo.Must(cmd.Flags().GetBool("version")):
			versionCmd.Run(versionCmd, nil)
		case len(args) == 0:
			handleErr(cmd.Help())
		default:
			handleErr(play(args[0], lo.Must(cmd.Flags().GetString("title"))))
		}
	},
}

func play(target, title string) error {
	CheckDependencies()

	if err := config.Validate(); err != nil {
		return err
	}

	options, err := tui.NewOptions(target, title)
	if err != nil {
		return err
	}

	log.Infof("playing %s", target)
	return tui.Run(options)
}

// Execute runs the command line. It exits the process on failure.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiBlue + cc.Bold,
			Commands:      cc.HiCyan + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	handleErr(rootCmd.Execute())
}

func handleErr(err error) {
	if err == nil {
		return
	}

	log.Error(err)
	_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", style.Fg(style.ErrorColor)(icon.Get(icon.Fail)), strings.TrimSpace(err.Error()))
	os.Exit(1)
}
