package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mediabar/mediabar/constant"
	"github.com/mediabar/mediabar/icon"
	"github.com/mediabar/mediabar/key"
	"github.com/mediabar/mediabar/style"
	"github.com/mediabar/mediabar/util"
	"github.com/mediabar/mediabar/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

// checkCmd reports whether the media engine is installed and recent enough.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that the media engine is installed and supported",
	Run: func(cmd *cobra.Command, args []string) {
		binary := viper.GetString(key.Player)

		erase := util.PrintErasable(fmt.Sprintf("%s Checking %s...", icon.Get(icon.Progress), binary))
		path, v, err := inspectEngine(binary)
		erase()

		if errors.Is(err, exec.ErrNotFound) {
			printMissingDependencyError(binary)
			os.Exit(1)
		}
		handleErr(err)

		fmt.Printf("%s %s %s %s\n", icon.Get(icon.Success), style.Bold(binary), v, style.Faint(path))
	},
}

// CheckDependencies exits with install hints when the configured engine is missing.
func CheckDependencies() {
	binary := viper.GetString(key.Player)
	if _, err := exec.LookPath(binary); err != nil {
		printMissingDependencyError(binary)
		os.Exit(1)
	}
}

// inspectEngine locates the engine and checks its version against constant.MinMPVVersion.
func inspectEngine(binary string) (path, v string, err error) {
	path, err = exec.LookPath(binary)
	if err != nil {
		return "", "", err
	}

	out, err := exec.Command(path, "--version").Output()
	if err != nil {
		return path, "", fmt.Errorf("%s --version: %w", binary, err)
	}

	v, err = version.Engine(string(out))
	if err != nil {
		return path, "", err
	}

	cmp, err := version.Compare(v, constant.MinMPVVersion)
	if err != nil {
		return path, v, err
	}
	if cmp < 0 {
		return path, v, fmt.Errorf("%s %s is too old, at least %s is required", binary, v, constant.MinMPVVersion)
	}

	return path, v, nil
}

func printMissingDependencyError(dep string) {
	installCmd := constant.MPVInstallHints[runtime.GOOS]

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.ErrorColor).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.ErrorColor).Render(fmt.Sprintf("%s Error: Missing Dependency", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(fmt.Sprintf("The media engine '%s' was not found in your PATH.", dep))

	var suggestion strings.Builder
	if installCmd != "" {
		suggestion.WriteString("\n\nTo install it, try:\n  ")
		suggestion.WriteString(style.New().Foreground(style.AccentColor).Bold(true).Render(installCmd))
	}

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion.String(),
		),
	))
}
