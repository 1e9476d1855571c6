// Package aligner batches per-fund NAV fetches and aligns the series
// onto a shared offset→date index.
package aligner

import (
	"strconv"

	"github.com/sirupsen/logrus"

	"NavChart/internal/collector"
	"NavChart/internal/model"
)

// Aligner fetches each configured fund and builds the aligned data set.
type Aligner struct {
	fetcher  collector.Fetcher
	pageSize int
	log      *logrus.Logger
}

// New creates an Aligner.
func New(fetcher collector.Fetcher, pageSize int, log *logrus.Logger) *Aligner {
	return &Aligner{fetcher: fetcher, pageSize: pageSize, log: log}
}

// Align fetches every fund sequentially and aligns the series by
// ordinal offset: records are reversed to chronological order and
// offset 0 is the oldest record in the window. The first fund to
// report a given offset fixes that offset's date; later funds never
// overwrite it. Funds whose trading calendars differ may therefore be
// off by a day at some offsets; this is accepted.
//
// A single fund's failure never aborts the batch: the failure is
// logged and the fund's series stays empty. Unparsable NAV values are
// stored as 0.0 with a warning. Callers must check Empty() on the
// result before building a chart.
func (a *Aligner) Align(funds []model.FundSpec) *model.AlignedData {
	codes := make([]string, len(funds))
	for i, f := range funds {
		codes[i] = f.Code
	}
	data := model.NewAlignedData(codes)

	for _, fund := range funds {
		a.log.WithFields(logrus.Fields{"fund": fund.Code, "name": fund.Name}).Info("fetching NAV history")

		records, err := a.fetcher.FetchNavHistory(fund.Code, a.pageSize)
		if err != nil {
			a.log.WithFields(logrus.Fields{"fund": fund.Code, "name": fund.Name}).
				Warnf("fetch failed, fund skipped: %v", err)
			continue
		}
		if len(records) == 0 {
			a.log.WithField("fund", fund.Code).Warn("no records returned, fund skipped")
			continue
		}

		// Provider returns newest-first; walk backwards so offset 0 is
		// the oldest record.
		for i := 0; i < len(records); i++ {
			rec := records[len(records)-1-i]

			if _, ok := data.Dates[i]; !ok {
				data.Dates[i] = rec.Date
			}

			nav, err := strconv.ParseFloat(rec.UnitNav, 64)
			if err != nil {
				nav = 0.0
				a.log.WithFields(logrus.Fields{"fund": fund.Code, "offset": i}).
					Warnf("unparsable NAV value %q, using 0.0", rec.UnitNav)
			}
			data.Series[fund.Code][i] = nav
		}
	}

	return data
}
