package eastmoney

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/totalreturn"
	"github.com/etnz/totalreturn/date"
	"github.com/shopspring/decimal"
)

// PriceSeries fetches the unadjusted (fqt=0) daily kline history for the
// symbol. Each kline is a comma-separated "date,close" string inside the
// push2his payload.
func (c *Client) PriceSeries(ctx context.Context, symbol string, r date.Range) (*totalreturn.PriceSeries, error) {
	// https://push2his.eastmoney.com/api/qt/stock/kline/get?secid=1.600519&klt=101&fqt=0&...
	// {"data":{"code":"600519","name":"贵州茅台","klines":["2023-06-19,1700.04",...]}}
	addr := fmt.Sprintf("%s?secid=%s&klt=101&fqt=0&beg=%s&end=%s&fields1=f1,f2,f3&fields2=f51,f53",
		c.HistURL, secid(symbol), r.From.Compact(), r.To.Compact())

	var payload any
	if err := jwget(c.HTTP, addr, &payload); err != nil {
		return nil, fmt.Errorf("%w: klines for %s: %v", totalreturn.ErrProviderUnavailable, symbol, err)
	}
	klines, err := jsonpath.Get("$.data.klines", payload)
	if err != nil {
		// A symbol unknown to the endpoint answers {"data":null}: no data.
		return totalreturn.NewPriceSeries(), nil
	}
	list, ok := klines.([]any)
	if !ok {
		return totalreturn.NewPriceSeries(), nil
	}

	series := totalreturn.NewPriceSeries()
	for _, item := range list {
		line, ok := item.(string)
		if !ok {
			continue
		}
		fields := strings.SplitN(line, ",", 3)
		if len(fields) < 2 {
			continue
		}
		on, err := date.Parse(fields[0])
		if err != nil {
			continue
		}
		close, err := decimal.NewFromString(fields[1])
		if err != nil {
			continue
		}
		series.Append(on, close)
	}
	return series, nil
}

// bonusRow is one entry of the datacenter RPT_SHAREBONUS_DET report.
// Ratio fields are quoted per 10 held shares, absent fields decode as nil.
type bonusRow struct {
	ExDate         string           `json:"EX_DIVIDEND_DATE"`
	CashPerTen     *decimal.Decimal `json:"PRETAX_BONUS_RMB"`
	BonusPerTen    *decimal.Decimal `json:"BONUS_RATIO"`
	TransferPerTen *decimal.Decimal `json:"IT_RATIO"`
	Plan           string           `json:"IMPL_PLAN_PROFILE"`
}

// DividendRecords fetches structured distribution rows from the datacenter
// report, the primary source.
func (c *Client) DividendRecords(ctx context.Context, symbol string) ([]totalreturn.DividendRecord, error) {
	// {"result":{"data":[{"EX_DIVIDEND_DATE":"2023-12-20 00:00:00","PRETAX_BONUS_RMB":25.911,...}]}}
	var payload struct {
		Result struct {
			Data []bonusRow `json:"data"`
		} `json:"result"`
	}
	if err := jwget(c.HTTP, c.datacenterQuery("RPT_SHAREBONUS_DET", symbol), &payload); err != nil {
		return nil, fmt.Errorf("%w: dividends for %s: %v", totalreturn.ErrProviderUnavailable, symbol, err)
	}

	records := make([]totalreturn.DividendRecord, 0, len(payload.Result.Data))
	for _, row := range payload.Result.Data {
		on, ok := parseReportDate(row.ExDate)
		if !ok {
			continue
		}
		records = append(records, totalreturn.DividendRecord{
			ExDate:         on,
			CashPerTen:     row.CashPerTen,
			BonusPerTen:    row.BonusPerTen,
			TransferPerTen: row.TransferPerTen,
			PlanText:       row.Plan,
		})
	}
	return records, nil
}

// DividendRecordsFallback fetches the F10 bonus page, which only carries
// the free-text plan description per ex-date.
func (c *Client) DividendRecordsFallback(ctx context.Context, symbol string) ([]totalreturn.DividendRecord, error) {
	// {"fhyx":[{"EX_DIVIDEND_DATE":"2023-12-20","IMPL_PLAN_PROFILE":"10派25.911元(含税)"}]}
	code := NormalizeSymbol(symbol)
	market := "SZ"
	if strings.HasPrefix(code, "6") {
		market = "SH"
	}
	addr := fmt.Sprintf("%s?code=%s%s", c.F10URL, market, code)

	var payload struct {
		Fhyx []struct {
			ExDate string `json:"EX_DIVIDEND_DATE"`
			Plan   string `json:"IMPL_PLAN_PROFILE"`
		} `json:"fhyx"`
	}
	if err := jwget(c.HTTP, addr, &payload); err != nil {
		return nil, fmt.Errorf("%w: dividend plans for %s: %v", totalreturn.ErrProviderUnavailable, symbol, err)
	}

	records := make([]totalreturn.DividendRecord, 0, len(payload.Fhyx))
	for _, row := range payload.Fhyx {
		on, ok := parseReportDate(row.ExDate)
		if !ok {
			continue
		}
		records = append(records, totalreturn.DividendRecord{ExDate: on, PlanText: row.Plan})
	}
	return records, nil
}

// AllotmentRecords fetches rights-issue rows. ALLOT_RATIO is quoted per 10
// held shares.
func (c *Client) AllotmentRecords(ctx context.Context, symbol string) ([]totalreturn.AllotmentRecord, error) {
	var payload struct {
		Result struct {
			Data []struct {
				ExDate      string           `json:"EX_DIVIDEND_DATE"`
				AllotPerTen *decimal.Decimal `json:"ALLOT_RATIO"`
			} `json:"data"`
		} `json:"result"`
	}
	if err := jwget(c.HTTP, c.datacenterQuery("RPT_ALLOTMENT_DET", symbol), &payload); err != nil {
		return nil, fmt.Errorf("%w: allotments for %s: %v", totalreturn.ErrProviderUnavailable, symbol, err)
	}

	records := make([]totalreturn.AllotmentRecord, 0, len(payload.Result.Data))
	for _, row := range payload.Result.Data {
		on, ok := parseReportDate(row.ExDate)
		if !ok {
			continue
		}
		records = append(records, totalreturn.AllotmentRecord{ExDate: on, SharesPerTen: row.AllotPerTen})
	}
	return records, nil
}

// SecurityName resolves the short display name through the realtime quote
// endpoint (field f58).
func (c *Client) SecurityName(ctx context.Context, symbol string) (string, error) {
	addr := fmt.Sprintf("%s?secid=%s&fields=f58", c.QuoteURL, secid(symbol))
	var payload any
	if err := jwget(c.HTTP, addr, &payload); err != nil {
		return "", fmt.Errorf("%w: name of %s: %v", totalreturn.ErrProviderUnavailable, symbol, err)
	}
	name, err := jsonpath.Get("$.data.f58", payload)
	if err != nil {
		return "", fmt.Errorf("no name for %s", symbol)
	}
	str, ok := name.(string)
	if !ok || str == "" {
		return "", fmt.Errorf("no name for %s", symbol)
	}
	return str, nil
}

// datacenterQuery builds a datacenter report URL filtered on one security.
func (c *Client) datacenterQuery(report, symbol string) string {
	filter := fmt.Sprintf("(SECURITY_CODE=%q)", NormalizeSymbol(symbol))
	return fmt.Sprintf("%s?reportName=%s&columns=ALL&pageSize=500&filter=%s", c.DatacenterURL, report, url.QueryEscape(filter))
}

// parseReportDate reads datacenter timestamps like "2023-12-20 00:00:00".
func parseReportDate(s string) (date.Date, bool) {
	if len(s) > 10 {
		s = s[:10]
	}
	on, err := date.Parse(s)
	if err != nil {
		return date.Date{}, false
	}
	return on, true
}
