package export

import (
	"fmt"

	"github.com/etnz/totalreturn"
	"github.com/xuri/excelize/v2"
)

const sheet = "Summary"

// XLSX writes the rows to a timestamped XLSX file in dir and returns its path.
func XLSX(dir string, rows []totalreturn.ReturnResult) (string, error) {
	path, err := timestamped(dir, "xlsx")
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return "", err
	}

	cells := make([]any, len(header))
	for i, h := range header {
		cells[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &cells); err != nil {
		return "", err
	}
	for i, r := range rows {
		values := fields(r)
		cells := make([]any, len(values))
		for j, v := range values {
			cells[j] = v
		}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &cells); err != nil {
			return "", err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("cannot save %q: %w", path, err)
	}
	return path, nil
}
