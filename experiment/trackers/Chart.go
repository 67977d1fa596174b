package trackers

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/stat"

	ts "github.com/samuelfneumann/smartcab/timestep"
)

// Chart tracks the return and length of each trial and saves them as
// an HTML line chart.
type Chart struct {
	returns  *Return
	lengths  *EpisodeLength
	arrivals int
	filename string
}

// NewChart returns a new Chart which renders to filename
func NewChart(filename string) *Chart {
	return &Chart{
		returns:  NewReturn(""),
		lengths:  NewEpisodeLength(""),
		filename: filename,
	}
}

// Track tracks the return and length of the current trial
func (c *Chart) Track(t ts.TimeStep) {
	c.returns.Track(t)
	c.lengths.Track(t)
	if t.Last() && t.EndType() == ts.Arrived {
		c.arrivals++
	}
}

// Save renders the chart to disk
func (c *Chart) Save() error {
	returns := c.returns.Data()
	lengths := c.lengths.Data()

	x := make([]string, len(returns))
	returnData := make([]opts.LineData, len(returns))
	lengthData := make([]opts.LineData, len(lengths))
	for i := range returns {
		x[i] = strconv.Itoa(i + 1)
		returnData[i] = opts.LineData{Value: returns[i]}
		lengthData[i] = opts.LineData{Value: lengths[i]}
	}

	var subtitle string
	if len(returns) > 0 {
		subtitle = fmt.Sprintf("mean return %.2f  |  mean length %.1f  |  "+
			"arrived %d/%d", stat.Mean(returns, nil), stat.Mean(lengths, nil),
			c.arrivals, len(returns))
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Smartcab trials",
			Subtitle: subtitle,
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
	)
	line.SetXAxis(x).
		AddSeries("Return", returnData).
		AddSeries("Length", lengthData)

	file, err := os.Create(c.filename)
	if err != nil {
		return fmt.Errorf("save: could not open chart file: %w", err)
	}
	defer file.Close()

	if err := line.Render(file); err != nil {
		return fmt.Errorf("save: could not render chart: %w", err)
	}
	return nil
}
