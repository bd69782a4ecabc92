package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mediabar/mediabar/config"
	"github.com/mediabar/mediabar/key"
	"github.com/mediabar/mediabar/tui"
	"github.com/mediabar/mediabar/util"
	"github.com/mediabar/mediabar/waveform"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(barsCmd)
	barsCmd.Flags().IntP("frames", "f", 1, "Number of animation frames to render")
	barsCmd.Flags().IntP("width", "w", 0, "Row width in columns, defaults to the terminal width")
	barsCmd.Flags().BoolP("json", "j", false, "Print the palette and bars as JSON instead of drawing them")
	barsCmd.SetOut(os.Stdout)
}

// barsCmd previews the audio bar row with the configured gradient, without an engine.
var barsCmd = &cobra.Command{
	Use:   "bars",
	Short: "Preview the audio bar row with the configured gradient",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(config.Validate())

		var (
			frames = lo.Must(cmd.Flags().GetInt("frames"))
			width  = lo.Must(cmd.Flags().GetInt("width"))
			asJson = lo.Must(cmd.Flags().GetBool("json"))
		)

		if width <= 0 {
			w, _, err := util.TerminalSize()
			width = lo.Ternary(err == nil && w > 0, w, 80)
		}

		gradient, err := config.Gradient()
		handleErr(err)

		animator := waveform.NewAnimator(gradient, config.Heights())
		animator.Resize(waveform.FitBars(width, viper.GetInt(key.WaveformBarWidth), viper.GetInt(key.WaveformBarGap)))
		animator.SetPlaying(true)

		if asJson {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(newBarsReport(animator)))
			return
		}

		handleErr(drawFrames(cmd.OutOrStdout(), animator, util.Max(frames, 1), config.TickPeriod()))
	},
}

type barsReport struct {
	Population int       `json:"population"`
	Offset     int       `json:"offset"`
	Palette    []string  `json:"palette"`
	Bars       []barJSON `json:"bars"`
}

type barJSON struct {
	Height int    `json:"height"`
	Color  string `json:"color"`
}

func newBarsReport(a *waveform.Animator) barsReport {
	return barsReport{
		Population: a.Population(),
		Offset:     a.Offset(),
		Palette: lo.Map(a.Palette(), func(c waveform.RGB, _ int) string {
			return c.Hex()
		}),
		Bars: lo.Map(a.Bars(), func(b waveform.Bar, _ int) barJSON {
			return barJSON{Height: b.HeightPercent, Color: b.Color.Hex()}
		}),
	}
}

// drawFrames renders frames in place, advancing the animation by one step per frame.
func drawFrames(w io.Writer, a *waveform.Animator, frames int, period time.Duration) error {
	var (
		rows     = viper.GetInt(key.WaveformHeight)
		barWidth = viper.GetInt(key.WaveformBarWidth)
		gap      = viper.GetInt(key.WaveformBarGap)
	)

	// ESC[0A moves up a line, so an empty bar area could never be redrawn in place
	if rows <= 0 {
		return fmt.Errorf("%s must be positive, got %d", key.WaveformHeight, rows)
	}

	for frame := 0; frame < frames; frame++ {
		if frame > 0 {
			time.Sleep(period)
			a.Advance()
			// move back to the first row of the previous frame
			if _, err := fmt.Fprintf(w, "\033[%dA", rows); err != nil {
				return err
			}
		}

		lines := tui.RenderBars(a.Bars(), rows, barWidth, gap)
		if _, err := fmt.Fprintln(w, strings.Join(lines, "\n")); err != nil {
			return err
		}
	}

	return nil
}
