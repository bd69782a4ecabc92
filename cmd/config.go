package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mediabar/mediabar/color"
	"github.com/mediabar/mediabar/config"
	"github.com/mediabar/mediabar/constant"
	"github.com/mediabar/mediabar/filesystem"
	"github.com/mediabar/mediabar/icon"
	"github.com/mediabar/mediabar/style"
	"github.com/mediabar/mediabar/util"
	"github.com/mediabar/mediabar/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var errKeyRequired = errors.New("key is required as an argument or --key flag")

func configFile() string {
	return filepath.Join(where.Config(), constant.App+".toml")
}

func success(format string, a ...any) {
	fmt.Printf("%s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), fmt.Sprintf(format, a...))
}

func errUnknownKey(key string) error {
	closest := lo.MinBy(lo.Keys(config.Default), func(a, b string) bool {
		return levenshtein.Distance(key, a) < levenshtein.Distance(key, b)
	})

	return fmt.Errorf(
		"unknown key %s, did you mean %s?",
		style.Fg(color.Red)(key),
		style.Fg(color.Yellow)(closest),
	)
}

// fieldFrom resolves the field named by the first argument, falling back to --key.
func fieldFrom(cmd *cobra.Command, args []string) (config.Field, error) {
	name := lo.Must(cmd.Flags().GetString("key"))
	if len(args) > 0 {
		name = args[0]
	}

	if name == "" {
		return config.Field{}, errKeyRequired
	}

	field, ok := config.Default[name]
	if !ok {
		return config.Field{}, errUnknownKey(name)
	}
	return field, nil
}

// parseValue converts command line input to the type of the field's default.
func parseValue(field config.Field, raw []string) (any, error) {
	switch field.Value.(type) {
	case []string:
		return lo.FlatMap(raw, func(s string, _ int) []string {
			return lo.Map(strings.Split(s, ","), func(part string, _ int) string {
				return strings.TrimSpace(part)
			})
		}), nil
	case int:
		v, err := strconv.Atoi(raw[0])
		if err != nil {
			return nil, fmt.Errorf("%s expects an integer, got %q", field.Key, raw[0])
		}
		return v, nil
	case bool:
		v, err := strconv.ParseBool(raw[0])
		if err != nil {
			return nil, fmt.Errorf("%s expects true or false, got %q", field.Key, raw[0])
		}
		return v, nil
	default:
		if len(field.Enum) > 0 && !lo.Contains(field.Enum, raw[0]) {
			return nil, fmt.Errorf("%s must be one of %s", field.Key, strings.Join(field.Enum, ", "))
		}
		return raw[0], nil
	}
}

func completionConfigKeys(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return lo.Keys(config.Default), cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change settings",
}

func init() {
	configCmd.AddCommand(configInfoCmd)
	configInfoCmd.Flags().StringSliceP("key", "k", []string{}, "only these keys")
	configInfoCmd.Flags().StringP("find", "f", "", "keys fuzzily matching the query, best match first")
	configInfoCmd.Flags().BoolP("json", "j", false, "print as JSON")
	configInfoCmd.MarkFlagsMutuallyExclusive("key", "find")
	_ = configInfoCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)

	configInfoCmd.SetOut(os.Stdout)
}

var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe settings with their current and default values",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			keys   = lo.Must(cmd.Flags().GetStringSlice("key"))
			query  = lo.Must(cmd.Flags().GetString("find"))
			asJson = lo.Must(cmd.Flags().GetBool("json"))
		)

		if query != "" {
			if keys = findKeys(query); len(keys) == 0 {
				handleErr(fmt.Errorf("no key matches %s", style.Fg(color.Red)(query)))
			}
		} else if len(keys) == 0 {
			keys = lo.Keys(config.Default)
			sort.Strings(keys)
		}

		fields := make([]config.Field, 0, len(keys))
		for _, k := range keys {
			field, ok := config.Default[k]
			if !ok {
				handleErr(errUnknownKey(k))
			}
			fields = append(fields, field)
		}

		if asJson {
			lo.Must0(json.NewEncoder(cmd.OutOrStdout()).Encode(fields))
			return
		}

		// ranked results keep their order, everything else is grouped by section
		if query != "" {
			printFields(cmd, fields)
			return
		}

		sections := lo.GroupBy(fields, func(f config.Field) string {
			return strings.SplitN(f.Key, ".", 2)[0]
		})
		names := lo.Keys(sections)
		sort.Strings(names)

		header := style.New().Bold(true).Underline(true).Foreground(color.Azure).Render
		for i, name := range names {
			if i > 0 {
				cmd.Println()
			}
			cmd.Println(header(util.Capitalize(name)))
			cmd.Println()
			printFields(cmd, sections[name])
		}
	},
}

func printFields(cmd *cobra.Command, fields []config.Field) {
	for i, field := range fields {
		if i > 0 {
			cmd.Println()
		}
		cmd.Println(field.Pretty())
	}
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configGetCmd.Flags().StringP("key", "k", "", "key to read")
	_ = configGetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)

	configGetCmd.SetOut(os.Stdout)
}

var configGetCmd = &cobra.Command{
	Use:               "get [key]",
	Short:             "Print the effective value of a setting",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		field, err := fieldFrom(cmd, args)
		handleErr(err)

		switch value := viper.Get(field.Key).(type) {
		case []string:
			cmd.Println(strings.Join(value, ","))
		default:
			cmd.Println(value)
		}
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configSetCmd.Flags().StringP("key", "k", "", "key to change")
	configSetCmd.Flags().StringSliceP("value", "v", []string{}, "new value, repeat or separate by commas for lists")
	_ = configSetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

var configSetCmd = &cobra.Command{
	Use:               "set [key] [value...]",
	Short:             "Change a setting and save it to the config file",
	Example:           "  " + constant.App + " config set controls.hide_delay_ms 2000\n  " + constant.App + " config set player.speeds 0.5,1,1.5,2",
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		field, err := fieldFrom(cmd, args)
		handleErr(err)

		raw := lo.Must(cmd.Flags().GetStringSlice("value"))
		if len(args) > 1 {
			raw = args[1:]
		}
		if len(raw) == 0 {
			handleErr(errors.New("value is required as an argument or --value flag"))
		}

		value, err := parseValue(field, raw)
		handleErr(err)

		previous := viper.Get(field.Key)
		viper.Set(field.Key, value)

		// gradients and speeds only fail once parsed as a whole
		if err := config.Validate(); err != nil {
			viper.Set(field.Key, previous)
			handleErr(err)
		}

		handleErr(writeConfig())
		success("set %s to %s", style.Fg(color.Purple)(field.Key), style.Fg(color.Yellow)(fmt.Sprint(value)))
	},
}

func init() {
	configCmd.AddCommand(configWriteCmd)
	configWriteCmd.Flags().BoolP("force", "f", false, "replace an existing config file")
}

var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Write the effective settings to the config file",
	Run: func(cmd *cobra.Command, args []string) {
		path := configFile()

		if lo.Must(cmd.Flags().GetBool("force")) {
			if err := filesystem.API().Remove(path); err != nil && !os.IsNotExist(err) {
				handleErr(err)
			}
		}

		handleErr(viper.SafeWriteConfigAs(path))
		success("wrote %s", path)
	},
}

func init() {
	configCmd.AddCommand(configDeleteCmd)
}

var configDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Delete the config file",
	Aliases: []string{"remove"},
	Run: func(cmd *cobra.Command, args []string) {
		path := configFile()
		handleErr(filesystem.API().Remove(path))
		success("deleted %s", path)
	},
}

func init() {
	configCmd.AddCommand(configResetCmd)
	configResetCmd.Flags().StringP("key", "k", "", "key to restore")
	configResetCmd.Flags().BoolP("all", "a", false, "restore every setting")
	configResetCmd.Flags().BoolP("yes", "y", false, "do not ask before restoring every setting")
	configResetCmd.MarkFlagsMutuallyExclusive("key", "all")
	configResetCmd.MarkFlagsOneRequired("key", "all")
	_ = configResetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore settings to their defaults",
	Run: func(cmd *cobra.Command, args []string) {
		if !lo.Must(cmd.Flags().GetBool("all")) {
			field, err := fieldFrom(cmd, nil)
			handleErr(err)

			viper.Set(field.Key, field.Value)
			handleErr(writeConfig())
			success("reset %s to %s", style.Fg(color.Purple)(field.Key), style.Fg(color.Yellow)(fmt.Sprint(field.Value)))
			return
		}

		if !lo.Must(cmd.Flags().GetBool("yes")) {
			var confirmed bool
			handleErr(survey.AskOne(&survey.Confirm{
				Message: fmt.Sprintf("Restore all %d settings to their defaults?", len(config.Default)),
			}, &confirmed))

			if !confirmed {
				return
			}
		}

		for _, field := range config.Default {
			viper.Set(field.Key, field.Value)
		}
		handleErr(writeConfig())
		success("reset every setting")
	},
}

func init() {
	configCmd.AddCommand(configSchemaCmd)
	configSchemaCmd.SetOut(os.Stdout)
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	Run: func(cmd *cobra.Command, args []string) {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(config.Schema()))
	},
}

// writeConfig saves into the file viper read, or creates the default one.
func writeConfig() error {
	if viper.ConfigFileUsed() != "" {
		return viper.WriteConfig()
	}
	return viper.WriteConfigAs(configFile())
}

// findKeys ranks the registered keys by fuzzy similarity to query, closest first.
func findKeys(query string) []string {
	ranks := fuzzy.RankFindNormalizedFold(query, lo.Keys(config.Default))
	sort.Sort(ranks)

	return lo.Map(ranks, func(r fuzzy.Rank, _ int) string {
		return r.Target
	})
}
