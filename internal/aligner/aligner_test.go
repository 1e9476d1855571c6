package aligner

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"NavChart/internal/collector"
	"NavChart/internal/model"
)

var testFunds = []model.FundSpec{
	{Name: "Fund A", Code: "000001"},
	{Name: "Fund B", Code: "000002"},
}

// newestFirst builds provider-ordered records from chronological input.
func newestFirst(dates []string, navs []string) []model.NavRecord {
	records := make([]model.NavRecord, len(dates))
	for i := range dates {
		records[len(dates)-1-i] = model.NavRecord{Date: dates[i], UnitNav: navs[i]}
	}
	return records
}

func warnings(hook *test.Hook) []string {
	var msgs []string
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			msgs = append(msgs, e.Message)
		}
	}
	return msgs
}

func TestAlign_TwoFundsSameDates(t *testing.T) {
	logger, _ := test.NewNullLogger()
	fetcher := &collector.MockFetcher{Records: map[string][]model.NavRecord{
		"000001": newestFirst([]string{"2024-01-01", "2024-01-02", "2024-01-03"}, []string{"1.0", "1.1", "1.2"}),
		"000002": newestFirst([]string{"2024-01-01", "2024-01-02", "2024-01-03"}, []string{"2.0", "2.1", "2.2"}),
	}}

	data := New(fetcher, 20, logger).Align(testFunds)

	if data.Len() != 3 {
		t.Fatalf("expected 3 indexed dates, got %d", data.Len())
	}
	wantDates := []string{"2024-01-01", "2024-01-02", "2024-01-03"}
	for i, want := range wantDates {
		if data.Dates[i] != want {
			t.Errorf("offset %d: expected date %s, got %s", i, want, data.Dates[i])
		}
	}
	if data.Series["000001"][0] != 1.0 || data.Series["000001"][2] != 1.2 {
		t.Errorf("fund A series misaligned: %v", data.Series["000001"])
	}
	if data.Series["000002"][0] != 2.0 || data.Series["000002"][2] != 2.2 {
		t.Errorf("fund B series misaligned: %v", data.Series["000002"])
	}
}

func TestAlign_FirstSeenDateWins(t *testing.T) {
	logger, _ := test.NewNullLogger()
	fetcher := &collector.MockFetcher{Records: map[string][]model.NavRecord{
		"000001": newestFirst([]string{"2024-01-01", "2024-01-02"}, []string{"1.0", "1.1"}),
		"000002": newestFirst([]string{"2024-01-02", "2024-01-03"}, []string{"2.0", "2.1"}),
	}}

	data := New(fetcher, 20, logger).Align(testFunds)

	if data.Dates[0] != "2024-01-01" {
		t.Errorf("expected first fund's date kept at offset 0, got %s", data.Dates[0])
	}
	if data.Series["000002"][0] != 2.0 {
		t.Errorf("fund B should still populate offset 0, got %v", data.Series["000002"])
	}
}

func TestAlign_FetchFailureSkipsFund(t *testing.T) {
	logger, hook := test.NewNullLogger()
	fetcher := &collector.MockFetcher{
		Records: map[string][]model.NavRecord{
			"000001": newestFirst([]string{"2024-01-01", "2024-01-02"}, []string{"1.0", "1.1"}),
		},
		Fail: map[string]bool{"000002": true},
	}

	data := New(fetcher, 20, logger).Align(testFunds)

	if data.Len() != 2 {
		t.Fatalf("expected fund A to populate the index, got %d dates", data.Len())
	}
	if len(data.Series["000002"]) != 0 {
		t.Errorf("expected empty series for failed fund, got %v", data.Series["000002"])
	}
	var named bool
	for _, msg := range warnings(hook) {
		if strings.Contains(msg, "fetch failed") {
			named = true
		}
	}
	if !named {
		t.Error("expected a fetch-failure warning for fund B")
	}
}

func TestAlign_UnparsableNav(t *testing.T) {
	logger, hook := test.NewNullLogger()
	fetcher := &collector.MockFetcher{Records: map[string][]model.NavRecord{
		"000001": newestFirst([]string{"2024-01-01", "2024-01-02", "2024-01-03"}, []string{"1.0", "N/A", "1.2"}),
	}}

	data := New(fetcher, 20, logger).Align(testFunds[:1])

	if got := data.Series["000001"][1]; got != 0.0 {
		t.Errorf("expected 0.0 substitute for unparsable NAV, got %v", got)
	}
	if data.Series["000001"][0] != 1.0 || data.Series["000001"][2] != 1.2 {
		t.Errorf("neighbor values must survive a bad record: %v", data.Series["000001"])
	}

	var navWarnings int
	for _, e := range hook.AllEntries() {
		if e.Level != logrus.WarnLevel || !strings.Contains(e.Message, "unparsable NAV") {
			continue
		}
		navWarnings++
		if e.Data["fund"] != "000001" {
			t.Errorf("warning should name the fund, got fields %v", e.Data)
		}
		if e.Data["offset"] != 1 {
			t.Errorf("warning should name offset 1, got fields %v", e.Data)
		}
	}
	if navWarnings != 1 {
		t.Errorf("expected exactly one NAV warning, got %d", navWarnings)
	}
}

func TestAlign_NavParseRoundTrip(t *testing.T) {
	logger, hook := test.NewNullLogger()

	cases := []struct {
		raw  string
		want float64
	}{
		{"1.0000", 1.0},
		{"0.9985", 0.9985},
		{"2.3456", 2.3456},
		{"3", 3.0},
		{"0.0001", 0.0001},
	}
	dates := make([]string, len(cases))
	navs := make([]string, len(cases))
	for i, c := range cases {
		dates[i] = "2024-01-0" + string(rune('1'+i))
		navs[i] = c.raw
	}
	fetcher := &collector.MockFetcher{Records: map[string][]model.NavRecord{
		"000001": newestFirst(dates, navs),
	}}

	data := New(fetcher, 20, logger).Align(testFunds[:1])

	for i, c := range cases {
		got := data.Series["000001"][i]
		if diff := got - c.want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("NAV %q: parsed %v, want %v", c.raw, got, c.want)
		}
	}
	if len(warnings(hook)) != 0 {
		t.Errorf("valid NAV strings must not warn, got %v", warnings(hook))
	}
}

func TestAlign_AllFundsFail(t *testing.T) {
	logger, _ := test.NewNullLogger()
	fetcher := &collector.MockFetcher{Fail: map[string]bool{"000001": true, "000002": true}}

	data := New(fetcher, 20, logger).Align(testFunds)

	if !data.Empty() {
		t.Fatal("expected Empty() when every fund fails")
	}
}

func TestAlign_EmptyRecordListSkipsFund(t *testing.T) {
	logger, hook := test.NewNullLogger()
	fetcher := &collector.MockFetcher{Records: map[string][]model.NavRecord{"000001": {}}}

	data := New(fetcher, 20, logger).Align(testFunds[:1])

	if !data.Empty() {
		t.Fatal("expected Empty() for a fund with no records")
	}
	if len(warnings(hook)) == 0 {
		t.Error("expected a warning for the empty fund")
	}
}
