package model

// NavRecord is one historical NAV row as returned by the provider.
// The provider orders records newest-first and encodes values as
// strings; the aligner is responsible for parsing them.
type NavRecord struct {
	Date          string `json:"FSRQ"`
	UnitNav       string `json:"DWJZ"`
	CumulativeNav string `json:"LJJZ"`
}

// AlignedData holds the shared offset→date index and the per-fund
// offset→NAV series built by the aligner. Offset 0 is the oldest
// record in the fetched window; offsets increase forward in time.
//
// Alignment is by ordinal position, not calendar date: the first fund
// to report a given offset fixes that offset's date, so funds with
// misaligned trading calendars may disagree with the index by a day or
// two. This matches the provider-observed behavior and is accepted.
type AlignedData struct {
	Dates  map[int]string
	Series map[string]map[int]float64
}

// NewAlignedData returns an AlignedData with an empty series map entry
// for every given fund code.
func NewAlignedData(codes []string) *AlignedData {
	series := make(map[string]map[int]float64, len(codes))
	for _, code := range codes {
		series[code] = make(map[int]float64)
	}
	return &AlignedData{
		Dates:  make(map[int]string),
		Series: series,
	}
}

// Len returns the number of offsets in the shared date index.
func (a *AlignedData) Len() int { return len(a.Dates) }

// Empty reports whether the batch produced no usable data: either no
// dates were indexed or no fund populated a single value.
func (a *AlignedData) Empty() bool {
	if len(a.Dates) == 0 {
		return true
	}
	for _, s := range a.Series {
		if len(s) > 0 {
			return false
		}
	}
	return true
}

// SortedDates returns the date index as a slice in offset order.
func (a *AlignedData) SortedDates() []string {
	dates := make([]string, a.Len())
	for i := range dates {
		dates[i] = a.Dates[i]
	}
	return dates
}
