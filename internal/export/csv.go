// Package export renders report rows as CSV for files and the clipboard.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rollcall-app/rollcall/pkg/domain"
)

var reportHeader = []string{
	"Student Name", "Roll Number", "Total Days", "Present", "Absent",
	"Late", "Half Day", "Leave", "Attendance %",
}

// ReportCSV renders rows as a CSV document.
func ReportCSV(rows []domain.ReportRow) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.Write(reportHeader); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			r.StudentName,
			r.RollNumber,
			strconv.Itoa(r.TotalDays),
			strconv.Itoa(r.PresentDays),
			strconv.Itoa(r.AbsentDays),
			strconv.Itoa(r.LateDays),
			strconv.Itoa(r.HalfDays),
			strconv.Itoa(r.LeaveDays),
			fmt.Sprintf("%.1f", r.AttendancePercentage),
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// WriteReportFile writes rows to path as CSV.
func WriteReportFile(path string, rows []domain.ReportRow) error {
	data, err := ReportCSV(rows)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
