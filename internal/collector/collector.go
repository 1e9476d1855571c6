package collector

import (
	"fmt"

	"NavChart/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	// Records maps fund code to canned NAV records, newest-first.
	Records map[string][]model.NavRecord
	// Fail lists fund codes whose fetch should error.
	Fail map[string]bool
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchNavHistory(code string, _ int) ([]model.NavRecord, error) {
	if m.Fail[code] {
		return nil, fmt.Errorf("fund %s: mock failure", code)
	}
	return m.Records[code], nil
}
