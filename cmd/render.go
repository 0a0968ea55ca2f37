package cmd

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"runtime"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/mveron/gotracer/pkg/renderer"
	"github.com/mveron/gotracer/pkg/scene"
)

// RenderFrame renders a single frame of the selected scene and writes it out
// as a png file.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	width := ctx.Int("width")
	height := ctx.Int("height")
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid frame dimensions %dx%d", width, height)
	}

	builder, err := scene.ByName(ctx.String("scene"))
	if err != nil {
		return err
	}

	aspectRatio := float64(width) / float64(height)
	sc, camera := builder(aspectRatio)

	rt := renderer.NewRayTracer(
		width,
		height,
		ctx.Int("spp"),
		ctx.Int("max-depth"),
		camera,
		sc,
	)
	rt.SetSeed(ctx.Int64("seed"))

	workers := ctx.Int("workers")
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	rt.SetWorkers(workers)

	logger.Noticef("rendering scene %q at %dx%d with %d samples/pixel on %d workers",
		ctx.String("scene"), width, height, ctx.Int("spp"), workers)

	frame, stats := rt.Render()

	outFile := ctx.String("out")
	f, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("create output file: %v", err)
	}
	defer f.Close()

	if err = png.Encode(f, frame); err != nil {
		return fmt.Errorf("encode frame: %v", err)
	}
	logger.Noticef("wrote frame to %s", outFile)

	displayFrameStats(stats)

	return nil
}

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Band", "Rows", "% of frame", "Render time"})
	for _, stat := range stats.Bands {
		table.Append([]string{
			fmt.Sprintf("%d", stat.Band),
			fmt.Sprintf("%d - %d", stat.RowStart, stat.RowEnd),
			fmt.Sprintf("%02.1f %%", stat.FramePercent),
			fmt.Sprintf("%s", stat.RenderTime),
		})
	}
	table.SetFooter([]string{"", "", "TOTAL", fmt.Sprintf("%s", stats.RenderTime)})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
