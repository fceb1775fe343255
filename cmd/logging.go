package cmd

import (
	"github.com/df07/go-pathtracer/pkg/logging"
	"github.com/urfave/cli"
)

var logger = logging.New("pathtracer")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		logging.SetLevel(logging.Info)
	}

	if ctx.GlobalBool("vv") {
		logging.SetLevel(logging.Debug)
	}
}
