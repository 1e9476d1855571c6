package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"NavChart/internal/model"
)

const (
	eastmoneyBaseURL = "http://api.fund.eastmoney.com/f10/lsjz"
	eastmoneyReferer = "http://fundf10.eastmoney.com/"
	// The endpoint degrades requests without a browser-like agent.
	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// EastmoneyFetcher implements Fetcher against the eastmoney f10/lsjz
// JSONP endpoint.
type EastmoneyFetcher struct {
	BaseURL string
	Client  *http.Client

	// now is swappable for deterministic callback names in tests.
	now func() time.Time
}

// NewEastmoneyFetcher creates a fetcher with the given request timeout.
func NewEastmoneyFetcher(timeout time.Duration) *EastmoneyFetcher {
	return &EastmoneyFetcher{
		BaseURL: eastmoneyBaseURL,
		Client:  &http.Client{Timeout: timeout},
		now:     time.Now,
	}
}

func (f *EastmoneyFetcher) Name() string { return "eastmoney" }

// lsjzResponse is the JSON object inside the JSONP wrapper.
type lsjzResponse struct {
	ErrCode int     `json:"ErrCode"`
	ErrMsg  *string `json:"ErrMsg"`
	Data    struct {
		LSJZList []model.NavRecord `json:"LSJZList"`
	} `json:"Data"`
}

// FetchNavHistory performs one GET against the NAV-history endpoint
// and returns the records newest-first. Every failure class is an
// error; no partial results are returned.
func (f *EastmoneyFetcher) FetchNavHistory(code string, pageSize int) ([]model.NavRecord, error) {
	ms := f.now().UnixMilli()
	callback := fmt.Sprintf("jQuery_%d_%d", ms, ms+1000)

	params := url.Values{}
	params.Set("callback", callback)
	params.Set("fundCode", code)
	params.Set("pageIndex", "1")
	params.Set("pageSize", fmt.Sprintf("%d", pageSize))
	params.Set("startDate", "")
	params.Set("endDate", "")
	params.Set("_", fmt.Sprintf("%d", ms))

	req, err := http.NewRequest(http.MethodGet, f.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("fund %s: build request: %w", code, err)
	}
	req.Header.Set("Referer", eastmoneyReferer)
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fund %s: request failed: %w", code, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fund %s: read body: %w", code, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fund %s: status %d", code, resp.StatusCode)
	}

	payload, err := extractJSONP(string(body))
	if err != nil {
		return nil, fmt.Errorf("fund %s: %w", code, err)
	}

	var parsed lsjzResponse
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		return nil, fmt.Errorf("fund %s: decode payload: %w", code, err)
	}
	if parsed.ErrCode != 0 {
		msg := "unknown error"
		if parsed.ErrMsg != nil {
			msg = *parsed.ErrMsg
		}
		return nil, fmt.Errorf("fund %s: provider error %d: %s", code, parsed.ErrCode, msg)
	}

	return parsed.Data.LSJZList, nil
}

// extractJSONP returns the text between the first '(' and the last ')'
// of a JSONP body. Using the last ')' keeps parentheses inside JSON
// strings from truncating the payload.
func extractJSONP(body string) (string, error) {
	open := strings.Index(body, "(")
	end := strings.LastIndex(body, ")")
	if open < 0 || end <= open {
		return "", fmt.Errorf("malformed JSONP wrapper")
	}
	return body[open+1 : end], nil
}
