package prices

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

// CoinGeckoSource fetches spot prices from the CoinGecko simple-price API.
type CoinGeckoSource struct {
	client  *http.Client
	baseURL string
	ids     map[string]string // symbol -> coingecko id
}

func NewCoinGeckoSource(client *http.Client) *CoinGeckoSource {
	return &CoinGeckoSource{
		client:  client,
		baseURL: "https://api.coingecko.com/api/v3",
		ids: map[string]string{
			"POL":  "matic-network",
			"USDC": "usd-coin",
			"USDT": "tether",
		},
	}
}

func (s *CoinGeckoSource) TokenPricesUSD(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error) {
	ids := make([]string, 0, len(symbols))
	for _, symbol := range symbols {
		id, ok := s.ids[symbol]
		if !ok {
			return nil, fmt.Errorf("no coingecko id for symbol %q", symbol)
		}
		ids = append(ids, id)
	}

	endpoint := fmt.Sprintf("%s/simple/price?ids=%s&vs_currencies=usd",
		s.baseURL, url.QueryEscape(strings.Join(ids, ",")))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build price request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch prices: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("price api returned status %d", resp.StatusCode)
	}

	var body map[string]struct {
		USD decimal.Decimal `json:"usd"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode price response: %w", err)
	}

	result := make(map[string]decimal.Decimal, len(symbols))
	for _, symbol := range symbols {
		entry, ok := body[s.ids[symbol]]
		if !ok {
			continue
		}
		result[symbol] = entry.USD
	}
	return result, nil
}
