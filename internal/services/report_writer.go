package services

import (
	"fmt"
	"io"

	apperrors "analytics-assessment/internal/errors"
	"analytics-assessment/internal/models"
)

type reportWriter struct {
	metrics MetricsRecorderInterface
}

func NewReportWriter(metrics MetricsRecorderInterface) ReportWriterInterface {
	return &reportWriter{metrics: metrics}
}

// WriteCategoryReport prints one line per category:
// <category_id>, <sum with two decimal places>, <distinct user count>
func (r *reportWriter) WriteCategoryReport(w io.Writer, aggregates []models.CategoryAggregate) error {
	for _, a := range aggregates {
		if _, err := fmt.Fprintf(w, "%d, %s, %d\n", a.TransactionCategoryID, a.SumAmount.StringFixed(2), a.NumUsers); err != nil {
			return apperrors.Wrap(apperrors.SystemInternalError,
				fmt.Errorf("failed to write category report: %w", err))
		}
	}

	r.metrics.IncrementCounter("report.written", map[string]string{"report": "category"})
	return nil
}

// WriteWindowedCounts prints one line per transaction:
// <transaction_id>, <user_id>, <date>, <count>
func (r *reportWriter) WriteWindowedCounts(w io.Writer, counts []models.WindowedCount) error {
	for _, c := range counts {
		if _, err := fmt.Fprintf(w, "%s, %s, %s, %d\n", c.TransactionID, c.UserID, c.Date.Format("2006-01-02"), c.NoTxnLast7Days); err != nil {
			return apperrors.Wrap(apperrors.SystemInternalError,
				fmt.Errorf("failed to write windowed counts: %w", err))
		}
	}

	r.metrics.IncrementCounter("report.written", map[string]string{"report": "windowed_counts"})
	return nil
}
