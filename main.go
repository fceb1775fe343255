package main

import (
	"os"

	"github.com/df07/go-pathtracer/cmd"
	"github.com/df07/go-pathtracer/pkg/logging"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-pathtracer"
	app.Usage = "render sphere scenes using path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame to a PPM image",
			Description: `
Render a built-in scene, or a YAML scene file, with a seeded random source.
The same scene, settings and seed always produce the same image, regardless of
the number of workers.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene",
					Value: "default",
					Usage: "built-in scene name (see the scenes command)",
				},
				cli.StringFlag{
					Name:  "scene-file",
					Usage: "YAML scene file; overrides --scene",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "frame width (defaults to the scene's width)",
				},
				cli.IntFlag{
					Name:  "height",
					Usage: "frame height (defaults to the scene's height)",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel (defaults to the scene's setting)",
				},
				cli.IntFlag{
					Name:  "max-depth",
					Usage: "maximum ray bounces (defaults to the scene's setting)",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 42,
					Usage: "random seed",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: 1,
					Usage: "number of rows rendered in parallel",
				},
				cli.Float64Flag{
					Name:  "gamma",
					Value: 2.0,
					Usage: "output gamma; values <= 1 disable correction",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "-",
					Usage: "PPM output file, - for stdout",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:  "scenes",
			Usage: "list available scenes",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "dir",
					Value: "scenes",
					Usage: "directory searched for YAML scene files",
				},
			},
			Action: cmd.ListScenes,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logging.New("pathtracer").Errorf("%v", err)
		os.Exit(1)
	}
}
