package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rollcall-app/rollcall/pkg/domain"
)

// DailyReport returns per-student rows for one class and day.
func (c *Client) DailyReport(ctx context.Context, classID, date string) ([]domain.ReportRow, error) {
	params := url.Values{}
	params.Set("classId", classID)
	params.Set("date", date)
	var rows []domain.ReportRow
	if err := c.get(ctx, "/reports/daily?"+params.Encode(), &rows); err != nil {
		return nil, fmt.Errorf("client.DailyReport: %w", err)
	}
	return rows, nil
}

// WeeklyReport returns rows for the week starting at startDate.
func (c *Client) WeeklyReport(ctx context.Context, classID, startDate string) ([]domain.ReportRow, error) {
	params := url.Values{}
	params.Set("classId", classID)
	params.Set("startDate", startDate)
	var rows []domain.ReportRow
	if err := c.get(ctx, "/reports/weekly?"+params.Encode(), &rows); err != nil {
		return nil, fmt.Errorf("client.WeeklyReport: %w", err)
	}
	return rows, nil
}

// MonthlyReport returns rows for a month given as YYYY-MM.
func (c *Client) MonthlyReport(ctx context.Context, classID, month string) ([]domain.ReportRow, error) {
	params := url.Values{}
	params.Set("classId", classID)
	params.Set("month", month)
	var rows []domain.ReportRow
	if err := c.get(ctx, "/reports/monthly?"+params.Encode(), &rows); err != nil {
		return nil, fmt.Errorf("client.MonthlyReport: %w", err)
	}
	return rows, nil
}

// StudentReport returns one student's summary row, optionally scoped to a month.
func (c *Client) StudentReport(ctx context.Context, studentID, month string) (*domain.ReportRow, error) {
	path := "/reports/student/" + url.PathEscape(studentID)
	if month != "" {
		params := url.Values{}
		params.Set("month", month)
		path += "?" + params.Encode()
	}
	var row domain.ReportRow
	if err := c.get(ctx, path, &row); err != nil {
		return nil, fmt.Errorf("client.StudentReport: %w", err)
	}
	return &row, nil
}
