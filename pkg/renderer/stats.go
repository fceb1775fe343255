package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
)

// WorkerStats tracks the rows rendered by a single worker
type WorkerStats struct {
	ID         int
	Rows       int
	Samples    int
	RenderTime time.Duration
}

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int // Total number of pixels rendered
	TotalSamples    int // Total number of samples taken
	SamplesPerPixel int
	Workers         []WorkerStats
	RenderTime      time.Duration
}

// StatsTable renders the statistics as a text table.
func StatsTable(stats RenderStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Rows", "Samples", "% of frame", "Render time"})
	for _, stat := range stats.Workers {
		var percent float64
		if stats.TotalSamples > 0 {
			percent = 100 * float64(stat.Samples) / float64(stats.TotalSamples)
		}
		table.Append([]string{
			fmt.Sprintf("%d", stat.ID),
			fmt.Sprintf("%d", stat.Rows),
			fmt.Sprintf("%d", stat.Samples),
			fmt.Sprintf("%02.1f %%", percent),
			stat.RenderTime.String(),
		})
	}
	table.SetFooter([]string{"", "", fmt.Sprintf("%d", stats.TotalSamples), "TOTAL", stats.RenderTime.String()})

	table.Render()
	return buf.String()
}
