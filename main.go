// Package main is the entry point of mediabar.
package main

import (
	"github.com/mediabar/mediabar/cmd"
	"github.com/mediabar/mediabar/config"
	"github.com/mediabar/mediabar/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())
	defer func() { _ = log.Close() }()

	cmd.Execute()
}
