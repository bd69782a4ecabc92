package cmd

import (
	"os"
	"runtime"
	"strings"
	"text/template"

	"github.com/mediabar/mediabar/color"
	"github.com/mediabar/mediabar/constant"
	"github.com/mediabar/mediabar/key"
	"github.com/mediabar/mediabar/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Display only the version string without metadata")
}

// versionCmd displays application version and build metadata.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version and build metadata",
	Long:  "Display the application version, build revision, platform and the detected media engine.",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		engine := viper.GetString(key.Player)
		engineVersion := "not found"
		if _, v, err := inspectEngine(engine); v != "" {
			engineVersion = v
			if err != nil {
				engineVersion += " (unsupported)"
			}
		}

		versionInfo := struct {
			Version       string
			OS            string
			Arch          string
			BuiltAt       string
			BuiltBy       string
			Revision      string
			App           string
			Engine        string
			EngineVersion string
		}{
			Version:       constant.Version,
			App:           constant.App,
			OS:            runtime.GOOS,
			Arch:          runtime.GOARCH,
			BuiltAt:       strings.TrimSpace(constant.BuiltAt),
			BuiltBy:       constant.BuiltBy,
			Revision:      constant.Revision,
			Engine:        engine,
			EngineVersion: engineVersion,
		}

		t, err := template.New("version").Funcs(map[string]any{
			"faint":   style.Faint,
			"bold":    style.Bold,
			"magenta": style.Fg(color.Purple),
			"accent":  style.Fg(color.Azure),
		}).Parse(`{{ accent "▇▇▇" }} {{ magenta .App }}

  {{ faint "Version" }}         {{ bold .Version }}
  {{ faint "Git Commit" }}      {{ bold .Revision }}
  {{ faint "Build Date" }}      {{ bold .BuiltAt }}
  {{ faint "Built By" }}        {{ bold .BuiltBy }}
  {{ faint "Platform" }}        {{ bold .OS }}/{{ bold .Arch }}
  {{ faint "Engine" }}          {{ bold .Engine }} {{ bold .EngineVersion }}
`)
		handleErr(err)
		handleErr(t.Execute(cmd.OutOrStdout(), versionInfo))
	},
}
