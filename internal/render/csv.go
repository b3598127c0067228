package render

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/marketbrief/marketbrief/internal/models"
)

// OpportunitiesCSV renders the opportunity table as CSV with the same column
// set as the Markdown table; sources are joined with "; ".
func OpportunitiesCSV(report models.Report) (string, error) {
	var builder strings.Builder
	writer := csv.NewWriter(&builder)

	if err := writer.Write(opportunityColumns); err != nil {
		return "", fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range report.Opportunities {
		if err := writer.Write(opportunityCells(row)); err != nil {
			return "", fmt.Errorf("write csv row %s: %w", row.Ticker, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}
	return builder.String(), nil
}
