package http

import (
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"fintrack/internal/core"
)

// isoDateFormat is what HTML date inputs submit.
const isoDateFormat = "2006-01-02"

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded", "url", r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	now := time.Now()
	data := struct {
		Today        string
		FirstOfMonth string
	}{
		Today:        now.Format(isoDateFormat),
		FirstOfMonth: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format(isoDateFormat),
	}

	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Index template execution failed", "error", err, "template", "index.html")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", "error", err, "method", r.Method, "url", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`<div class="error">Invalid request format</div>`))
		return
	}

	date, err := parseInputDate(r.Form.Get("date"))
	if err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="error">Invalid date</div>`))
		return
	}

	amount, err := core.ParseAmount(r.Form.Get("amount"))
	if err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="error">Invalid amount</div>`))
		return
	}

	category, err := core.ParseCategory(r.Form.Get("category"))
	if err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="error">Invalid category</div>`))
		return
	}

	tx := core.Transaction{
		Date:        date,
		Amount:      amount,
		Category:    category,
		Description: sanitizeInput(r.Form.Get("description")),
	}
	if err := tx.Validate(); err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="error">Invalid data: ` + template.HTMLEscapeString(err.Error()) + `</div>`))
		return
	}

	if err := s.store.Append(r.Context(), tx); err != nil {
		slog.ErrorContext(r.Context(), "Transaction append error", "error", err, "description", tx.Description, "amount", tx.Amount.String())
		if s.metrics != nil {
			s.metrics.AppendErrors.Inc()
		}
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<div class="error">Saving failed, please resubmit</div>`))
		return
	}
	if s.metrics != nil {
		s.metrics.TransactionsAppended.WithLabelValues(string(tx.Category)).Inc()
	}

	// Trigger a dashboard refresh on the client
	w.Header().Set("HX-Trigger", "transaction:created")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`<div class="success">Transaction added: ` +
		template.HTMLEscapeString(tx.Description) +
		` — ` + formatCurrency(tx.Amount) +
		` (` + string(tx.Category) + `, ` + tx.Date.String() + `)</div>`))
}

// parseInputDate accepts both the HTML date-input format and the ledger's
// own DD.MM.YYYY format. Empty input defaults to today.
func parseInputDate(v string) (core.Date, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return core.DateOf(time.Now()), nil
	}
	if t, err := time.Parse(isoDateFormat, v); err == nil {
		return core.DateOf(t), nil
	}
	return core.ParseDate(v)
}

// sanitizeInput removes control characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}
