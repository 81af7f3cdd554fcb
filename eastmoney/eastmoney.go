// Package eastmoney implements the totalreturn.MarketData provider against
// the public EastMoney JSON endpoints: unadjusted daily klines, the
// datacenter corporate-action reports, and the F10 page used as a
// textual-only fallback for dividend plans.
package eastmoney

import (
	"net/http"
	"strings"

	"github.com/etnz/totalreturn"
)

// Default endpoint locations. They are fields on the Client so tests can
// point them at a local server.
const (
	defaultHistURL       = "https://push2his.eastmoney.com/api/qt/stock/kline/get"
	defaultQuoteURL      = "https://push2.eastmoney.com/api/qt/stock/get"
	defaultListURL       = "https://push2.eastmoney.com/api/qt/clist/get"
	defaultDatacenterURL = "https://datacenter-web.eastmoney.com/api/data/v1/get"
	defaultF10URL        = "https://emweb.securities.eastmoney.com/PC_F10/BonusFinancing/PageAjax"
)

// Client fetches A-share market data from EastMoney. The zero value is not
// usable, call New.
type Client struct {
	HistURL       string
	QuoteURL      string
	ListURL       string
	DatacenterURL string
	F10URL        string

	// HTTP is the client used for all requests. New installs a client with
	// a daily-expiring disk cache, end-of-day data never changes within a day.
	HTTP *http.Client
}

// New returns a Client against the public EastMoney endpoints.
func New() *Client {
	return &Client{
		HistURL:       defaultHistURL,
		QuoteURL:      defaultQuoteURL,
		ListURL:       defaultListURL,
		DatacenterURL: defaultDatacenterURL,
		F10URL:        defaultF10URL,
		HTTP:          newDailyCachingClient(),
	}
}

var _ totalreturn.MarketData = (*Client)(nil)

// NormalizeSymbol reduces user input like "sh600519" or "600519.SS" to the
// 6-digit numeric code the EastMoney endpoints expect.
func NormalizeSymbol(code string) string {
	code = strings.TrimSpace(code)
	digits := make([]rune, 0, len(code))
	for _, r := range code {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	code = string(digits)
	if len(code) > 6 {
		code = code[len(code)-6:]
	}
	for len(code) < 6 {
		code = "0" + code
	}
	return code
}

// secid is the EastMoney market-qualified id: "1." for Shanghai listings
// (codes starting with 6), "0." for Shenzhen.
func secid(code string) string {
	code = NormalizeSymbol(code)
	if strings.HasPrefix(code, "6") {
		return "1." + code
	}
	return "0." + code
}
