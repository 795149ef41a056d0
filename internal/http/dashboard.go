package http

import (
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"fintrack/internal/core"
	"fintrack/internal/ledger"
	"fintrack/internal/report"
)

type txRow struct {
	Date        string
	Amount      string
	Category    string
	Description string
}

type dashboardView struct {
	Start string
	End   string
	Rows  []txRow

	TotalIncome  string
	TotalExpense string
	NetSavings   string

	HasExpenses bool
	ChartJSON   template.JS
}

// chartPayload is decoded by the static dashboard script and fed to the
// chart renderer.
type chartPayload struct {
	Labels  []string  `json:"labels"`
	Income  []float64 `json:"income"`
	Expense []float64 `json:"expense"`
	Pie     struct {
		Labels []string  `json:"labels"`
		Values []float64 `json:"values"`
	} `json:"pie"`
}

// handleDashboard renders the dashboard partial for a date range. A reversed
// range is rejected here with a visible error; the store is never called.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	now := time.Now()
	start := core.NewDate(now.Year(), int(now.Month()), 1)
	end := core.DateOf(now)
	if v := r.URL.Query().Get("start"); v != "" {
		d, err := parseInputDate(v)
		if err != nil {
			s.writeDashboardError(w, http.StatusUnprocessableEntity, "Invalid start date")
			return
		}
		start = d
	}
	if v := r.URL.Query().Get("end"); v != "" {
		d, err := parseInputDate(v)
		if err != nil {
			s.writeDashboardError(w, http.StatusUnprocessableEntity, "Invalid end date")
			return
		}
		end = d
	}

	if err := core.ValidateRange(start, end); err != nil {
		slog.WarnContext(r.Context(), "Invalid date range", "start", start.String(), "end", end.String())
		s.writeDashboardError(w, http.StatusUnprocessableEntity, "Start date cannot be after end date")
		return
	}

	txs, err := s.store.Between(r.Context(), start, end)
	if err != nil {
		slog.ErrorContext(r.Context(), "Ledger read error", "error", err, "start", start.String(), "end", end.String())
		var mre *ledger.MalformedRecordError
		switch {
		case errors.As(err, &mre):
			if s.metrics != nil {
				s.metrics.RetrievalErrors.WithLabelValues("malformed_record").Inc()
			}
			s.writeDashboardError(w, http.StatusInternalServerError, "The ledger file contains a malformed record; nothing was loaded")
		case errors.Is(err, ledger.ErrStorageUnavailable):
			if s.metrics != nil {
				s.metrics.RetrievalErrors.WithLabelValues("storage_unavailable").Inc()
			}
			s.writeDashboardError(w, http.StatusInternalServerError, "Ledger storage is unavailable")
		default:
			if s.metrics != nil {
				s.metrics.RetrievalErrors.WithLabelValues("internal").Inc()
			}
			s.writeDashboardError(w, http.StatusInternalServerError, "Could not load transactions")
		}
		return
	}

	if len(txs) == 0 {
		_, _ = w.Write([]byte(`<section id="dashboard" class="dashboard"><div class="placeholder">No transactions found in the selected date range.</div></section>`))
		return
	}

	view := buildDashboardView(start, end, txs)
	if s.templates == nil {
		s.writeDashboardError(w, http.StatusInternalServerError, "Templates not loaded")
		return
	}
	if err := s.templates.ExecuteTemplate(w, "dashboard.html", view); err != nil {
		slog.ErrorContext(r.Context(), "Template execution error", "error", err, "template", "dashboard.html")
		s.writeDashboardError(w, http.StatusInternalServerError, "Dashboard rendering failed")
	}
}

func buildDashboardView(start, end core.Date, txs []core.Transaction) dashboardView {
	sum := report.Summarize(txs)
	series := report.BuildTimeSeries(txs)
	breakdown := report.CategoryBreakdown(txs)

	view := dashboardView{
		Start:        start.String(),
		End:          end.String(),
		TotalIncome:  formatCurrency(sum.TotalIncome),
		TotalExpense: formatCurrency(sum.TotalExpense),
		NetSavings:   formatCurrency(sum.NetSavings),
		HasExpenses:  len(breakdown) > 0,
	}
	for _, t := range txs {
		view.Rows = append(view.Rows, txRow{
			Date:        t.Date.String(),
			Amount:      formatCurrency(t.Amount),
			Category:    string(t.Category),
			Description: t.Description,
		})
	}

	var payload chartPayload
	for i, d := range series.Dates {
		payload.Labels = append(payload.Labels, d.String())
		payload.Income = append(payload.Income, series.Income[i].InexactFloat64())
		payload.Expense = append(payload.Expense, series.Expense[i].InexactFloat64())
	}

	// Stable pie slices: largest expense group first
	names := make([]string, 0, len(breakdown))
	for name := range breakdown {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := breakdown[names[i]], breakdown[names[j]]
		if a.Equal(b) {
			return names[i] < names[j]
		}
		return a.GreaterThan(b)
	})
	for _, name := range names {
		payload.Pie.Labels = append(payload.Pie.Labels, name)
		payload.Pie.Values = append(payload.Pie.Values, breakdown[name].InexactFloat64())
	}

	// json.Marshal escapes <, > and & so the blob is safe to embed
	if raw, err := json.Marshal(payload); err == nil {
		view.ChartJSON = template.JS(raw)
	} else {
		view.ChartJSON = template.JS("{}")
	}
	return view
}

func (s *Server) writeDashboardError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`<section id="dashboard" class="dashboard"><div class="error">` +
		template.HTMLEscapeString(msg) + `</div></section>`))
}
