// Package version compares semantic versions of mediabar and its media engine.
package version

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/samber/lo"
)

var engineVersion = regexp.MustCompile(`^\S+\s+v?(\d+\.\d+(?:\.\d+)?)`)

// ErrUnknownEngineVersion is returned when the engine's version banner cannot be parsed.
var ErrUnknownEngineVersion = errors.New("unknown engine version")

// Compare performs a semantic comparison between two version strings.
// Returns 1 if a > b, -1 if a < b, and 0 if equal.
func Compare(a, b string) (int, error) {
	type version struct {
		major, minor, patch int
	}

	parse := func(s string) (version, error) {
		var v version
		s = strings.TrimPrefix(s, "v")
		if strings.Count(s, ".") == 1 {
			s += ".0"
		}
		_, err := fmt.Sscanf(s, "%d.%d.%d", &v.major, &v.minor, &v.patch)
		return v, err
	}

	av, err := parse(a)
	if err != nil {
		return 0, err
	}

	bv, err := parse(b)
	if err != nil {
		return 0, err
	}

	for _, pair := range []lo.Tuple2[int, int]{
		{A: av.major, B: bv.major},
		{A: av.minor, B: bv.minor},
		{A: av.patch, B: bv.patch},
	} {
		if pair.A > pair.B {
			return 1, nil
		}

		if pair.A < pair.B {
			return -1, nil
		}
	}

	return 0, nil
}

// Engine extracts the version from the first line of `mpv --version` output,
// e.g. "mpv 0.37.0 Copyright © 2000-2023 mpv/MPlayer/mplayer2 projects".
func Engine(output string) (string, error) {
	first, _, _ := strings.Cut(strings.TrimSpace(output), "\n")
	match := engineVersion.FindStringSubmatch(first)
	if match == nil {
		return "", ErrUnknownEngineVersion
	}
	return match[1], nil
}
