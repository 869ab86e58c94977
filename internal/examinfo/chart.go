package examinfo

import (
	"errors"
	"fmt"
	"html"
	"math"
	"strings"
)

var ErrChartDestroyed = errors.New("chart has been destroyed")

const (
	chartSize        = 240.0
	chartOuterRadius = 100.0
	chartInnerRadius = 60.0
	legendRowHeight  = 20.0
)

// Chart is a doughnut chart of the question distribution across subjects
type Chart struct {
	Labels []string
	Values []int
	Colors []string

	destroyed bool
}

// NewDoughnut builds the question-weight chart for a pattern
func NewDoughnut(p Pattern) *Chart {
	c := &Chart{}
	for _, s := range p.Subjects {
		c.Labels = append(c.Labels, s.Name)
		c.Values = append(c.Values, s.Questions)
		c.Colors = append(c.Colors, s.Color)
	}
	return c
}

// Destroy releases the chart; a destroyed chart can no longer be rendered
func (c *Chart) Destroy() {
	c.destroyed = true
}

func (c *Chart) Destroyed() bool {
	return c.destroyed
}

func (c *Chart) total() int {
	total := 0
	for _, v := range c.Values {
		total += v
	}
	return total
}

// Share returns the fraction of questions in slice i
func (c *Chart) Share(i int) float64 {
	total := c.total()
	if total == 0 || i < 0 || i >= len(c.Values) {
		return 0
	}
	return float64(c.Values[i]) / float64(total)
}

// SVG renders the chart with its legend below the doughnut
func (c *Chart) SVG() (string, error) {
	if c.destroyed {
		return "", ErrChartDestroyed
	}

	height := chartSize + legendRowHeight*float64(len(c.Labels)) + 10
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`,
		chartSize, height, chartSize, height)

	cx, cy := chartSize/2, chartSize/2
	start := -math.Pi / 2
	for i := range c.Values {
		share := c.Share(i)
		if share == 0 {
			continue
		}
		end := start + share*2*math.Pi
		if share >= 1 {
			// A full ring cannot be drawn as a single arc
			fmt.Fprintf(&b, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="none" stroke="%s" stroke-width="%.2f"/>`,
				cx, cy, (chartOuterRadius+chartInnerRadius)/2, html.EscapeString(c.Colors[i]), chartOuterRadius-chartInnerRadius)
		} else {
			b.WriteString(slicePath(cx, cy, start, end, html.EscapeString(c.Colors[i])))
		}
		start = end
	}

	for i, label := range c.Labels {
		y := chartSize + float64(i)*legendRowHeight
		fmt.Fprintf(&b, `<rect x="10" y="%.0f" width="12" height="12" fill="%s"/>`, y, html.EscapeString(c.Colors[i]))
		fmt.Fprintf(&b, `<text x="28" y="%.0f" font-size="11">%s (%d)</text>`, y+10, html.EscapeString(label), c.Values[i])
	}

	b.WriteString(`</svg>`)
	return b.String(), nil
}

func slicePath(cx, cy, start, end float64, color string) string {
	largeArc := 0
	if end-start > math.Pi {
		largeArc = 1
	}

	point := func(r, angle float64) (float64, float64) {
		return cx + r*math.Cos(angle), cy + r*math.Sin(angle)
	}
	ox0, oy0 := point(chartOuterRadius, start)
	ox1, oy1 := point(chartOuterRadius, end)
	ix1, iy1 := point(chartInnerRadius, end)
	ix0, iy0 := point(chartInnerRadius, start)

	return fmt.Sprintf(
		`<path d="M %.2f %.2f A %.0f %.0f 0 %d 1 %.2f %.2f L %.2f %.2f A %.0f %.0f 0 %d 0 %.2f %.2f Z" fill="%s" stroke="#ffffff" stroke-width="2"/>`,
		ox0, oy0, chartOuterRadius, chartOuterRadius, largeArc, ox1, oy1,
		ix1, iy1, chartInnerRadius, chartInnerRadius, largeArc, ix0, iy0,
		color,
	)
}

// ChartRenderer owns at most one live chart. Rendering new data always
// destroys the previous chart first.
type ChartRenderer struct {
	current *Chart
}

// Render replaces the current chart with one for p
func (r *ChartRenderer) Render(p Pattern) *Chart {
	r.release()
	r.current = NewDoughnut(p)
	return r.current
}

// Current returns the live chart, or nil
func (r *ChartRenderer) Current() *Chart {
	return r.current
}

// Close destroys the live chart
func (r *ChartRenderer) Close() {
	r.release()
}

func (r *ChartRenderer) release() {
	if r.current != nil {
		r.current.Destroy()
		r.current = nil
	}
}
