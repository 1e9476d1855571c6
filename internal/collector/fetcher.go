package collector

import "NavChart/internal/model"

// Fetcher defines the interface for fetching fund NAV history.
type Fetcher interface {
	// FetchNavHistory returns the fund's NAV records, newest-first as
	// delivered by the provider. Any transport, payload or
	// provider-reported failure comes back as an error; callers decide
	// whether one fund's failure aborts the batch.
	FetchNavHistory(code string, pageSize int) ([]model.NavRecord, error)
	Name() string
}
