package nordpool

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/angas/elpris-go/convert"
	"github.com/angas/elpris-go/hours"
	"github.com/angas/elpris-go/types"
)

const DefaultBaseURL = "https://dataportal-api.nordpoolgroup.com"

type Nordpool struct {
	logger  *slog.Logger
	baseURL string
	client  *http.Client
}

func New(baseURL string, timeout time.Duration) *Nordpool {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Nordpool{
		logger:  slog.Default().With(slog.String("module", "nordpool")),
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (n *Nordpool) URL(date hours.Date, area types.Area) string {
	return fmt.Sprintf("%s/api/DayAheadPrices?date=%s&market=DayAhead&deliveryArea=%s&currency=SEK",
		n.baseURL, date.String(), area)
}

func (n *Nordpool) GetPrices(ctx context.Context, date hours.Date, area types.Area) ([]types.HourlyPrice, error) {
	url := n.URL(date, area)
	n.logger.Debug("fetching prices", slog.String("url", url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &types.FetchError{Kind: types.KindNetwork, URL: url, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	resp, err := n.client.Do(req)
	if err != nil {
		return nil, &types.FetchError{Kind: types.KindNetwork, URL: url, Err: err}
	}
	defer resp.Body.Close()

	// Nord Pool answers 204 when the auction for the day is not published yet
	if resp.StatusCode != http.StatusOK {
		return nil, &types.FetchError{Kind: types.KindHTTPStatus, URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &types.FetchError{Kind: types.KindNetwork, URL: url, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	var data *dayAheadPrices
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, &types.FetchError{Kind: types.KindParse, URL: url, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	if data == nil {
		return nil, &types.FetchError{Kind: types.KindParse, URL: url, StatusCode: resp.StatusCode, Err: fmt.Errorf("response is not an object")}
	}

	prices := make([]types.HourlyPrice, 0, len(data.MultiAreaEntries))
	for _, entry := range data.MultiAreaEntries {
		if entry.DeliveryStart.IsZero() || entry.DeliveryEnd.IsZero() {
			return nil, &types.FetchError{Kind: types.KindParse, URL: url, StatusCode: resp.StatusCode, Err: fmt.Errorf("entry is missing deliveryStart or deliveryEnd")}
		}
		start := hours.LocationStockholm(entry.DeliveryStart)
		if slices.ContainsFunc(prices, func(p types.HourlyPrice) bool { return p.TimeStart.Equal(start) }) {
			continue
		}
		price, ok := entry.EntryPerArea[area.String()]
		if !ok {
			continue
		}
		p := types.HourlyPrice{
			TimeStart: start,
			TimeEnd:   hours.LocationStockholm(entry.DeliveryEnd),
			SEKPerKWh: convert.MWhToKWh(price),
		}
		if data.ExchangeRate > 0 {
			p.EXR = data.ExchangeRate
			p.EURPerKWh = convert.RoundFloat64(p.SEKPerKWh/data.ExchangeRate, 5)
		}
		prices = append(prices, p)
	}

	n.logger.Debug("prices fetched", slog.String("area", area.String()), slog.String("date", date.String()), slog.Int("count", len(prices)))
	return prices, nil
}
