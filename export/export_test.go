package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/totalreturn"
	"github.com/etnz/totalreturn/date"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleRows() []totalreturn.ReturnResult {
	return []totalreturn.ReturnResult{
		{
			Symbol:           "600519",
			Name:             "贵州茅台",
			Start:            date.MustParse("2023-06-19"),
			End:              date.MustParse("2024-06-18"),
			StartClose:       decimal.RequireFromString("100"),
			EndClose:         decimal.RequireFromString("120"),
			DividendPerShare: decimal.RequireFromString("2"),
			DividendEvents:   1,
			AdditionalShares: decimal.RequireFromString("0.05"),
			AdditionalEvents: 1,
			AdditionalValue:  decimal.RequireFromString("6"),
			BonusAllotDesc:   "2023-12-20: 送0.05股/股",
			TotalReturn:      0.28,
			AnnualizedReturn: 0.28,
		},
		{Symbol: "688999", Name: "688999", Err: "window: no resolvable trading window"},
	}
}

func TestCSV(t *testing.T) {
	dir := t.TempDir()
	path, err := CSV(dir, sampleRows())
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(raw, []byte{0xEF, 0xBB, 0xBF}), "missing UTF-8 BOM")

	records, err := csv.NewReader(bytes.NewReader(raw[3:])).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + 2 rows
	assert.Equal(t, header, records[0])

	row := records[1]
	assert.Equal(t, "600519", row[0])
	assert.Equal(t, "贵州茅台", row[1])
	assert.Equal(t, "0.28", row[12])
	assert.Equal(t, "28.0000", row[14]) // pct column
	assert.Empty(t, row[16])

	failed := records[2]
	assert.Equal(t, "688999", failed[0])
	assert.Equal(t, "window: no resolvable trading window", failed[16])
	assert.Empty(t, failed[4], "failed row carries no prices")
}

func TestXLSX(t *testing.T) {
	dir := t.TempDir()
	path, err := XLSX(dir, sampleRows())
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "code", rows[0][0])
	assert.Equal(t, "600519", rows[1][0])
	assert.Equal(t, "0.28", rows[1][12])
}
