// Package metrics exposes the application-level Prometheus metrics.
// HTTP-level metrics live in the http middleware; these counters track
// the reporting operations themselves.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	statementsBuilt = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bizbooks_statements_built_total",
		Help: "Total number of ledger statements built",
	})

	statementEntries = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "bizbooks_statement_entries",
		Help:    "Number of entries per built statement, before pagination",
		Buckets: []float64{0, 10, 50, 100, 500, 1000, 5000, 10000},
	})

	stockReportsBuilt = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bizbooks_stock_reports_built_total",
		Help: "Total number of stock reports built",
	})

	exportsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bizbooks_exports_generated_total",
			Help: "Total number of xlsx exports generated by kind",
		},
		[]string{"kind"},
	)
)

// RecordStatementBuilt counts one built statement and its unpaged size.
func RecordStatementBuilt(entries int) {
	statementsBuilt.Inc()
	statementEntries.Observe(float64(entries))
}

// RecordStockReportBuilt counts one built stock report.
func RecordStockReportBuilt() {
	stockReportsBuilt.Inc()
}

// RecordExport counts one generated export workbook.
func RecordExport(kind string) {
	exportsGenerated.WithLabelValues(kind).Inc()
}
