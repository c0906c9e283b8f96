package elprisetjustnu

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/angas/elpris-go/hours"
	"github.com/angas/elpris-go/slice"
	"github.com/angas/elpris-go/types"
)

const DefaultBaseURL = "https://www.elprisetjustnu.se"

type rawPrice struct {
	SEKPerKWh *float64   `json:"SEK_per_kWh"`
	EURPerKWh float64    `json:"EUR_per_kWh"`
	EXR       float64    `json:"EXR"`
	TimeStart *time.Time `json:"time_start"`
	TimeEnd   *time.Time `json:"time_end"`
}

func (r rawPrice) complete() bool {
	return r.SEKPerKWh != nil && r.TimeStart != nil && r.TimeEnd != nil
}

type ElPrisetJustNu struct {
	logger  *slog.Logger
	baseURL string
	client  *http.Client
}

// New creates a client for the elprisetjustnu.se price API. An empty baseURL
// means the public endpoint.
func New(baseURL string, timeout time.Duration) *ElPrisetJustNu {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &ElPrisetJustNu{
		logger:  slog.Default().With(slog.String("module", "elprisetjustnu")),
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (e *ElPrisetJustNu) URL(date hours.Date, area types.Area) string {
	return fmt.Sprintf("%s/api/v1/prices/%s_%s.json", e.baseURL, date.PathString(), area)
}

// GetPrices fetches the price schedule of one day for one area. It makes a
// single attempt, every failure is returned as a *types.FetchError.
func (e *ElPrisetJustNu) GetPrices(ctx context.Context, date hours.Date, area types.Area) ([]types.HourlyPrice, error) {
	url := e.URL(date, area)
	e.logger.Debug("fetching prices", slog.String("url", url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &types.FetchError{Kind: types.KindNetwork, URL: url, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, &types.FetchError{Kind: types.KindNetwork, URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &types.FetchError{Kind: types.KindHTTPStatus, URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &types.FetchError{Kind: types.KindNetwork, URL: url, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	var rawPrices []rawPrice
	if err := json.Unmarshal(body, &rawPrices); err != nil {
		return nil, &types.FetchError{Kind: types.KindParse, URL: url, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	// A JSON null leaves the slice nil, an empty day is []
	if rawPrices == nil {
		return nil, &types.FetchError{Kind: types.KindParse, URL: url, StatusCode: resp.StatusCode, Err: fmt.Errorf("response is not an array")}
	}

	if !slice.All(rawPrices, rawPrice.complete) {
		return nil, &types.FetchError{Kind: types.KindParse, URL: url, StatusCode: resp.StatusCode, Err: fmt.Errorf("price record is missing time_start, time_end or SEK_per_kWh")}
	}

	prices := slice.Map(rawPrices, func(raw rawPrice) types.HourlyPrice {
		return types.HourlyPrice{
			TimeStart: *raw.TimeStart,
			TimeEnd:   *raw.TimeEnd,
			SEKPerKWh: *raw.SEKPerKWh,
			EURPerKWh: raw.EURPerKWh,
			EXR:       raw.EXR,
		}
	})

	e.logger.Debug("prices fetched", slog.String("area", area.String()), slog.String("date", date.String()), slog.Int("count", len(prices)))
	return prices, nil
}
