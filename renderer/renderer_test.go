package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/totalreturn"
	"github.com/etnz/totalreturn/date"
	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sampleRows() []totalreturn.ReturnResult {
	return []totalreturn.ReturnResult{
		{
			Symbol:           "600519",
			Name:             "贵州茅台",
			Start:            date.MustParse("2023-06-19"),
			End:              date.MustParse("2024-06-18"),
			StartClose:       dec("100"),
			EndClose:         dec("120"),
			DividendPerShare: dec("2"),
			DividendEvents:   1,
			AdditionalShares: dec("0.05"),
			AdditionalEvents: 1,
			AdditionalValue:  dec("6"),
			BonusAllotDesc:   "2023-12-20: 送0.05股/股",
			TotalReturn:      0.28,
			AnnualizedReturn: 0.28,
		},
		{Symbol: "688999", Err: "window: no resolvable trading window"},
	}
}

func TestCNY(t *testing.T) {
	// The currency grapheme and its placement belong to go-money; only the
	// grouping and the two-digit fraction are ours to assert.
	if got := CNY(dec("1700.04")); !strings.Contains(got, "1,700.04") {
		t.Errorf("CNY(1700.04) = %q, want it to contain 1,700.04", got)
	}
	if got := CNY(dec("0.43")); !strings.Contains(got, "0.43") {
		t.Errorf("CNY(0.43) = %q, want it to contain 0.43", got)
	}
}

func TestRenderSummary(t *testing.T) {
	md := RenderSummary(sampleRows())

	for _, want := range []string{
		"600519", "贵州茅台", "100.00", "120.00",
		"+28.0000%", "2023-12-20: 送0.05股/股",
		"688999", "no resolvable trading window",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("summary does not mention %q:\n%s", want, md)
		}
	}
	// Failed rows stay out of the results table.
	if strings.Contains(md, "| 688999 |") {
		t.Errorf("failed row rendered in the table:\n%s", md)
	}
}

// The summary must stay valid GFM: one results table and the two sections.
func TestRenderSummary_StructuredMarkdown(t *testing.T) {
	source := []byte(RenderSummary(sampleRows()))
	parser := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser()
	root := parser.Parse(text.NewReader(source))

	var tables, headings int
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *east.Table:
			tables++
		case *ast.Heading:
			headings++
		}
		return ast.WalkContinue, nil
	})
	if tables != 1 {
		t.Errorf("parsed %d tables, want 1", tables)
	}
	if headings != 3 { // title + share additions + failures
		t.Errorf("parsed %d headings, want 3", headings)
	}
}
