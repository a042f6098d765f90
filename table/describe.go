package table

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// Summary is the descriptive statistics for a numeric column. Blank cells are ignored and
// Std is the sample standard deviation (zero for a single value). Quartiles are linearly
// interpolated between the closest ranks, so a column with a single value has Q1, Median
// and Q3 equal to that value.
type Summary struct {
	Column string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// Describe summarises every column that has at least one value and for which all non-blank
// values are numbers. Other columns are skipped.
func Describe(t *Table) ([]Summary, error) {
	summaries := []Summary{}

	for _, h := range t.Header {
		column, err := Column(t, h)
		if err != nil {
			return nil, err
		}

		data, ok := numeric(column)
		if !ok || len(data) == 0 {
			continue
		}

		summary, err := summarise(h, data)
		if err != nil {
			return nil, fmt.Errorf("error summarising column '%v' (%v)", h, err)
		}

		summaries = append(summaries, summary)
	}

	return summaries, nil
}

func summarise(column string, data stats.Float64Data) (Summary, error) {
	summary := Summary{
		Column: column,
		Count:  len(data),
	}

	var err error

	if summary.Mean, err = stats.Mean(data); err != nil {
		return summary, err
	}

	if summary.Min, err = stats.Min(data); err != nil {
		return summary, err
	}

	if summary.Max, err = stats.Max(data); err != nil {
		return summary, err
	}

	if summary.Median, err = stats.Median(data); err != nil {
		return summary, err
	}

	sorted := append([]float64{}, data...)
	sort.Float64s(sorted)

	summary.Q1 = quantile(sorted, 0.25)
	summary.Q3 = quantile(sorted, 0.75)

	if len(data) > 1 {
		summary.Std = stat.StdDev(data, nil)
	}

	return summary, nil
}

// quantile interpolates linearly between the values either side of (n-1)*p in sorted.
func quantile(sorted []float64, p float64) float64 {
	pos := float64(len(sorted)-1) * p
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))

	return sorted[lo] + (pos-float64(lo))*(sorted[hi]-sorted[lo])
}

func numeric(column []string) (stats.Float64Data, bool) {
	data := stats.Float64Data{}

	for _, v := range column {
		s := strings.ReplaceAll(strings.TrimSpace(v), ",", "")
		if s == "" {
			continue
		}

		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, false
		}

		data = append(data, f)
	}

	return data, true
}
