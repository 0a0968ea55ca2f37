package cmd

import (
	"bytes"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/mveron/gotracer/pkg/scene"
)

var sceneDescriptions = map[string]string{
	"three-spheres":  "diffuse, metal and glass spheres over a checkered ground",
	"random-spheres": "random field of small spheres around three hero spheres",
	"earth":          "image-mapped sphere",
	"simple-light":   "marble spheres lit by a panel and an emissive sphere",
	"cornell-box":    "classic cornell box with two rotated boxes",
	"cornell-smoke":  "cornell box with volumetric smoke boxes",
}

// ListScenes prints the available built-in scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Description"})
	for _, name := range scene.Names() {
		table.Append([]string{name, sceneDescriptions[name]})
	}
	table.Render()

	logger.Noticef("available scenes\n%s", buf.String())
	return nil
}
