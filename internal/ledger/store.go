// Package ledger implements the CSV-backed ledger store: append-only storage
// of transactions in a single flat file, with inclusive date-range retrieval.
package ledger

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/shopspring/decimal"

	"fintrack/internal/core"
)

// Header is the fixed column layout of the backing file. Any reader of the
// file must match it exactly for compatibility.
var Header = []string{"date", "amount", "category", "description"}

// ErrStorageUnavailable marks failures to create, open or append to the
// backing file (permissions, missing directory, disk failure).
var ErrStorageUnavailable = errors.New("ledger storage unavailable")

// MalformedRecordError reports a stored row that does not parse. It fails
// the entire retrieval rather than skipping the row: silently dropped
// financial records would be a worse failure than a visible error.
type MalformedRecordError struct {
	Line  int
	Field string
	Value string
	Err   error
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record at line %d: field %s value %q: %v", e.Line, e.Field, e.Value, e.Err)
}

func (e *MalformedRecordError) Unwrap() error { return e.Err }

// Store owns the on-disk ledger file. One Store instance is assumed to be
// the only writer of its file; appends within the process serialize on an
// internal mutex, cross-process coordination is explicitly out of scope.
type Store struct {
	mu   sync.Mutex
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Initialize ensures the backing file exists with the fixed header row.
// Idempotent: a pre-existing file is left untouched and its contents are
// not validated.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: stat %s: %v", ErrStorageUnavailable, s.path, err)
	}

	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%w: create directory %s: %v", ErrStorageUnavailable, dir, err)
		}
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", ErrStorageUnavailable, s.path, err)
	}
	w := csv.NewWriter(f)
	werr := w.Write(Header)
	w.Flush()
	if werr == nil {
		werr = w.Error()
	}
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return fmt.Errorf("%w: write header to %s: %v", ErrStorageUnavailable, s.path, werr)
	}

	slog.InfoContext(ctx, "Ledger file created", "path", s.path)
	return nil
}

// Append serializes one transaction in the fixed column order and appends it
// to the file. No validation happens here; callers enforce amount positivity
// and category legality at the input surface.
func (s *Store) Append(ctx context.Context, t core.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("%w: open %s for append: %v", ErrStorageUnavailable, s.path, err)
	}
	w := csv.NewWriter(f)
	werr := w.Write([]string{t.Date.String(), t.Amount.String(), string(t.Category), t.Description})
	w.Flush()
	if werr == nil {
		werr = w.Error()
	}
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return fmt.Errorf("%w: append to %s: %v", ErrStorageUnavailable, s.path, werr)
	}

	slog.InfoContext(ctx, "Transaction appended",
		"date", t.Date.String(),
		"amount", t.Amount.String(),
		"category", string(t.Category),
		"description", t.Description)
	return nil
}

// Between reads the whole file and returns the transactions whose date lies
// in the inclusive day range [start, end], preserving append order. An empty
// result is not an error. Any row that fails to parse fails the whole read;
// there is no partial recovery.
//
// The range itself is not validated here: callers reject start > end before
// calling (a reversed range simply matches nothing).
func (s *Store) Between(ctx context.Context, start, end core.Date) ([]core.Transaction, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrStorageUnavailable, s.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(Header)

	// Header row; a brand-new file has nothing else.
	if _, err := r.Read(); err == io.EOF {
		return nil, nil
	} else if err != nil {
		return nil, &MalformedRecordError{Line: 1, Field: "header", Err: err}
	}

	var out []core.Transaction
	line := 1
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, &MalformedRecordError{Line: line, Field: "row", Err: err}
		}

		date, err := core.ParseDate(rec[0])
		if err != nil {
			return nil, &MalformedRecordError{Line: line, Field: "date", Value: rec[0], Err: err}
		}
		amount, err := decimal.NewFromString(rec[1])
		if err != nil {
			return nil, &MalformedRecordError{Line: line, Field: "amount", Value: rec[1], Err: err}
		}
		category, err := core.ParseCategory(rec[2])
		if err != nil {
			return nil, &MalformedRecordError{Line: line, Field: "category", Value: rec[2], Err: err}
		}

		if date.Before(start.Time) || date.After(end.Time) {
			continue
		}
		out = append(out, core.Transaction{
			Date:        date,
			Amount:      amount,
			Category:    category,
			Description: rec[3],
		})
	}

	slog.DebugContext(ctx, "Ledger range read",
		"path", s.path,
		"start", start.String(),
		"end", end.String(),
		"matched", len(out))
	return out, nil
}
