// Package chart assembles the aligned NAV series into an interactive
// ECharts line chart.
package chart

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/sirupsen/logrus"

	"NavChart/internal/calculator"
	"NavChart/internal/model"
)

// Builder turns aligned NAV data into a configured line chart.
type Builder struct {
	MarginRatio float64
	Width       string
	Height      string

	log *logrus.Logger
}

// NewBuilder creates a Builder with the given axis margin and canvas size.
func NewBuilder(marginRatio float64, width, height string, log *logrus.Logger) *Builder {
	return &Builder{MarginRatio: marginRatio, Width: width, Height: height, log: log}
}

// Build renders one line series per configured fund, in config order,
// onto a shared date axis. Funds whose series is entirely empty are
// drawn as a zero line of index length; offsets missing from a partial
// series become gaps. The value axis spans the combined padded range
// of all series so every line stays visible.
func (b *Builder) Build(data *model.AlignedData, funds []model.FundSpec) *charts.Line {
	line := charts.NewLine()

	dates := data.SortedDates()
	n := len(dates)

	var ranges [][2]float64
	type builtSeries struct {
		name string
		data []opts.LineData
	}
	var series []builtSeries

	for _, fund := range funds {
		values := data.Series[fund.Code]
		points := make([]opts.LineData, n)

		if len(values) == 0 {
			b.log.WithFields(logrus.Fields{"fund": fund.Code, "name": fund.Name}).
				Warn("series empty, filling with zeros")
			zeros := make([]float64, n)
			for i := range points {
				points[i] = opts.LineData{Value: 0.0}
			}
			yMax, yMin := calculator.AxisRange(zeros, b.MarginRatio)
			ranges = append(ranges, [2]float64{yMax, yMin})
			series = append(series, builtSeries{fund.Name, points})
			continue
		}

		populated := make([]float64, 0, len(values))
		for i := 0; i < n; i++ {
			if v, ok := values[i]; ok {
				points[i] = opts.LineData{Value: v}
				populated = append(populated, v)
			} else {
				// null renders as a gap in the line
				points[i] = opts.LineData{Value: nil}
			}
		}
		yMax, yMin := calculator.AxisRange(populated, b.MarginRatio)
		ranges = append(ranges, [2]float64{yMax, yMin})
		series = append(series, builtSeries{fund.Name, points})
	}

	subtitle := "no data"
	if n > 0 {
		subtitle = fmt.Sprintf("Data through: %s | %d trading days", dates[n-1], n)
	}

	yAxis := opts.YAxis{
		Name:      "Unit NAV",
		AxisLabel: &opts.AxisLabel{Show: opts.Bool(true), Formatter: "{value}"},
		SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
	}
	if yMax, yMin, ok := calculator.CombinedRange(ranges); ok {
		yAxis.Max = yMax
		yAxis.Min = yMin
	}

	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:     b.Width,
			Height:    b.Height,
			PageTitle: "Fund NAV History",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:         "Fund NAV History",
			Subtitle:      subtitle,
			TitleStyle:    &opts.TextStyle{FontSize: 24},
			SubtitleStyle: &opts.TextStyle{FontSize: 12, Color: "gray"},
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:        opts.Bool(true),
			Trigger:     "axis",
			AxisPointer: &opts.AxisPointer{Type: "cross"},
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
			Type: "scroll",
			Top:  "5%",
			Left: "center",
		}),
		charts.WithDataZoomOpts(
			opts.DataZoom{Type: "inside", Start: 0, End: 100},
			opts.DataZoom{Type: "slider", Start: 0, End: 100},
		),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: opts.Bool(true),
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{Show: opts.Bool(true), Title: "save"},
				DataView:    &opts.ToolBoxFeatureDataView{Show: opts.Bool(true), Title: "data view", Lang: []string{"data view", "close", "refresh"}},
				Restore:     &opts.ToolBoxFeatureRestore{Show: opts.Bool(true), Title: "restore"},
				DataZoom:    &opts.ToolBoxFeatureDataZoom{Show: opts.Bool(true), Title: map[string]string{"zoom": "zoom", "back": "back"}},
			},
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "Date",
			AxisLabel: &opts.AxisLabel{Show: opts.Bool(true), Rotate: 45},
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}),
		charts.WithYAxisOpts(yAxis),
	)

	line.SetXAxis(dates)
	for _, s := range series {
		line.AddSeries(s.name, s.data,
			charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true), ShowSymbol: opts.Bool(true)}),
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}),
			charts.WithMarkPointNameTypeItemOpts(
				opts.MarkPointNameTypeItem{Name: "min", Type: "min"},
				opts.MarkPointNameTypeItem{Name: "max", Type: "max"},
			),
			charts.WithMarkLineNameTypeItemOpts(
				opts.MarkLineNameTypeItem{Name: "avg", Type: "average"},
			),
		)
	}

	return line
}
