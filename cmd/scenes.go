package cmd

import (
	"os"

	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List built-in scenes and any scene files found in the scenes directory.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	scenes := scene.ListBuiltinScenes()
	files, err := loaders.ListSceneFiles(ctx.String("dir"))
	if err != nil {
		return err
	}
	scenes = append(scenes, files...)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Name", "Type", "Description"})
	for _, info := range scenes {
		id := info.ID
		if info.FilePath != "" {
			id = info.FilePath
		}
		table.Append([]string{id, info.DisplayName, info.Type, info.Description})
	}
	table.Render()

	logger.Infof("found %d scene(s)", len(scenes))
	return nil
}
