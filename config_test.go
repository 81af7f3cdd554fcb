package totalreturn

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/totalreturn/date"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
stocks: ["600519", "000001"]
start_date: 2023-06-19
end_date: 2024-06-18
names:
  "600519": 贵州茅台
output_dir: out
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	reqs, err := cfg.Requests()
	if err != nil {
		t.Fatalf("Requests() error = %v", err)
	}
	if len(reqs) != 2 {
		t.Fatalf("Requests() returned %d, want 2", len(reqs))
	}
	if reqs[0].Symbol != "600519" || reqs[0].Start != date.MustParse("2023-06-19") || reqs[0].End != date.MustParse("2024-06-18") {
		t.Errorf("reqs[0] = %+v", reqs[0])
	}
	if cfg.Names["600519"] != "贵州茅台" {
		t.Errorf("Names = %v", cfg.Names)
	}
}

func TestLoadConfig_EndDateOptional(t *testing.T) {
	path := writeConfig(t, "stocks: [\"600519\"]\nstart_date: 2023-06-19\n")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	reqs, err := cfg.Requests()
	if err != nil {
		t.Fatalf("Requests() error = %v", err)
	}
	if !reqs[0].End.IsZero() {
		t.Errorf("End = %v, want zero Date for an absent end", reqs[0].End)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{"no stocks", "start_date: 2023-06-19\n"},
		{"no start date", "stocks: [\"600519\"]\n"},
		{"bad date", "stocks: [\"600519\"]\nstart_date: junk\n"},
	}
	for _, tc := range testCases {
		path := writeConfig(t, tc.content)
		if _, err := LoadConfig(path); err == nil {
			t.Errorf("%s: LoadConfig() should fail", tc.name)
		}
	}
}
