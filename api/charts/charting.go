/* charting.go
 * Renders a donut chart of a flagger's placement distribution as a PNG to
 * attach to the monthly and all-time stats embeds.
 */

package charts

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/wcharczuk/go-chart/v2"
)

// RenderPlacementChart produces a PNG donut chart of placement counts.
// Each distinct placement becomes one segment labelled with the rank and its
// count; the non-finish marker is labelled "afk/out" and placed last.
// Preconditions: Receives the flagger's placements in submission order
// Postconditions: Returns PNG bytes, or an error for an empty sequence
func RenderPlacementChart(placements []int) ([]byte, error) {
	if len(placements) == 0 {
		return nil, fmt.Errorf("no placements to chart")
	}

	counts := make(map[int]int)
	for _, rank := range placements {
		counts[rank]++
	}

	ranks := make([]int, 0, len(counts))
	for rank := range counts {
		ranks = append(ranks, rank)
	}
	sort.Ints(ranks)

	// Move the non-finish segment to the end so numbered ranks read in order
	if len(ranks) > 0 && ranks[0] == 0 {
		ranks = append(ranks[1:], 0)
	}

	values := make([]chart.Value, 0, len(ranks))
	for _, rank := range ranks {
		label := fmt.Sprintf("%d (%d)", rank, counts[rank])
		if rank == 0 {
			label = fmt.Sprintf("afk/out (%d)", counts[rank])
		}
		values = append(values, chart.Value{
			Value: float64(counts[rank]),
			Label: label,
		})
	}

	graph := chart.DonutChart{
		Title:  fmt.Sprintf("%d races", len(placements)),
		Width:  512,
		Height: 512,
		Values: values,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}
