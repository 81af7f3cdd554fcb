// Package export writes batch results to one-shot CSV and XLSX files.
// Files are timestamped; nothing is ever overwritten or kept in memory
// between queries.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/etnz/totalreturn"
)

// header is the column order of the output row, shared by both formats.
var header = []string{
	"code", "name", "start_trade_date", "end_trade_date",
	"start_close", "end_close",
	"div_sum_per_share", "div_event_count",
	"additional_shares_per_share", "additional_event_count", "additional_value_per_share",
	"bonus_allot_desc",
	"total_return", "annualized_return",
	"total_return_pct", "annualized_return_pct",
	"error",
}

// fields flattens one result row in header order. Failed rows keep only
// code, name and error populated.
func fields(r totalreturn.ReturnResult) []string {
	if r.Failed() {
		row := make([]string, len(header))
		row[0], row[1], row[len(row)-1] = r.Symbol, r.Name, r.Err
		return row
	}
	return []string{
		r.Symbol, r.Name, r.Start.String(), r.End.String(),
		r.StartClose.String(), r.EndClose.String(),
		r.DividendPerShare.String(), strconv.Itoa(r.DividendEvents),
		r.AdditionalShares.String(), strconv.Itoa(r.AdditionalEvents), r.AdditionalValue.String(),
		r.BonusAllotDesc,
		formatFloat(r.TotalReturn), formatFloat(r.AnnualizedReturn),
		formatPct(r.TotalReturnPct()), formatPct(r.AnnualizedReturnPct()),
		"",
	}
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// formatPct rounds the percent columns for display; the raw decimals stay
// in the total_return/annualized_return columns.
func formatPct(v float64) string { return strconv.FormatFloat(v, 'f', 4, 64) }

// timestamped returns dir/summary_<YYYYMMDD_HHMMSS>.<ext>, creating dir.
func timestamped(dir, ext string) (string, error) {
	if dir == "" {
		dir = "output"
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("cannot create output dir %q: %w", dir, err)
	}
	name := fmt.Sprintf("summary_%s.%s", time.Now().Format("20060102_150405"), ext)
	return filepath.Join(dir, name), nil
}

// CSV writes the rows to a timestamped CSV file in dir and returns its path.
func CSV(dir string, rows []totalreturn.ReturnResult) (string, error) {
	path, err := timestamped(dir, "csv")
	if err != nil {
		return "", err
	}
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("cannot create %q: %w", path, err)
	}
	defer f.Close()

	// UTF-8 BOM so that spreadsheet software opens the Chinese text correctly.
	if _, err := f.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return "", err
	}
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return "", err
	}
	for _, r := range rows {
		if err := w.Write(fields(r)); err != nil {
			return "", err
		}
	}
	w.Flush()
	return path, w.Error()
}
