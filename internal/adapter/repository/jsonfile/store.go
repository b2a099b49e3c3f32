// Package jsonfile persists expenses as a single JSON array on disk.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/iho/goexpense/internal/domain"
)

const filePerm = 0o644

// record is the on-disk shape of an expense.
type record struct {
	Amount      json.Number `json:"amount"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Date        string      `json:"date"`
}

// Store reads and writes the whole expense collection to one file.
type Store struct {
	path string
}

// NewStore creates a new Store backed by path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load returns the stored expenses in insertion order. A missing file is an
// empty store.
func (s *Store) Load(ctx context.Context) ([]domain.Expense, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []domain.Expense{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read expense store: %w", err)
	}

	return s.decode(data)
}

// Save replaces the store file with the given expenses.
func (s *Store) Save(ctx context.Context, expenses []domain.Expense) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	records := make([]record, 0, len(expenses))
	for _, e := range expenses {
		records = append(records, record{
			Amount:      json.Number(e.Amount.String()),
			Description: e.Description,
			Category:    e.Category,
			Date:        e.Date.String(),
		})
	}

	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("encode expenses: %w", err)
	}

	return writeFile(s.path, append(data, '\n'))
}

func (s *Store) decode(data []byte) ([]domain.Expense, error) {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil, s.corrupt(-1, "", errors.New("expected a JSON array, got null"))
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, s.corrupt(-1, "", err)
	}

	expenses := make([]domain.Expense, 0, len(raws))
	for i, raw := range raws {
		e, err := s.decodeRecord(i, raw)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}

	return expenses, nil
}

func (s *Store) decodeRecord(index int, raw json.RawMessage) (domain.Expense, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return domain.Expense{}, s.corrupt(index, "", errors.New("expected a JSON object"))
	}

	amountRaw, ok := fields["amount"]
	if !ok {
		return domain.Expense{}, s.corrupt(index, "amount", errMissing)
	}
	amount, err := decodeAmount(amountRaw)
	if err != nil {
		return domain.Expense{}, s.corrupt(index, "amount", err)
	}

	description, err := stringField(fields, "description")
	if err != nil {
		return domain.Expense{}, s.corrupt(index, "description", err)
	}

	category, err := stringField(fields, "category")
	if err != nil {
		return domain.Expense{}, s.corrupt(index, "category", err)
	}

	rawDate, err := stringField(fields, "date")
	if err != nil {
		return domain.Expense{}, s.corrupt(index, "date", err)
	}
	date, err := domain.ParseDate(rawDate)
	if err != nil {
		return domain.Expense{}, s.corrupt(index, "date", err)
	}

	return domain.Expense{
		Date:        date,
		Amount:      amount,
		Description: description,
		Category:    category,
	}, nil
}

func (s *Store) corrupt(index int, field string, err error) error {
	return &domain.CorruptStoreError{Path: s.path, Index: index, Field: field, Err: err}
}

var (
	errMissing   = errors.New("field is missing")
	errNotNumber = errors.New("expected a JSON number")
	errNotString = errors.New("expected a JSON string")
)

func decodeAmount(raw json.RawMessage) (decimal.Decimal, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || (raw[0] != '-' && (raw[0] < '0' || raw[0] > '9')) {
		return decimal.Zero, errNotNumber
	}

	amount, err := decimal.NewFromString(string(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", errNotNumber, err)
	}

	if err := domain.ValidateAmountMagnitude(amount); err != nil {
		return decimal.Zero, err
	}

	return amount, nil
}

func stringField(fields map[string]json.RawMessage, name string) (string, error) {
	raw, ok := fields[name]
	if !ok {
		return "", errMissing
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '"' {
		return "", errNotString
	}

	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", fmt.Errorf("%w: %v", errNotString, err)
	}

	return value, nil
}

// writeFile writes data to a temporary file next to path and renames it into
// place, so readers never observe a half-written store.
func writeFile(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write expenses: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync expenses: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Chmod(tmp.Name(), filePerm); err != nil {
		return fmt.Errorf("chmod expense store: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace expense store: %w", err)
	}

	return nil
}
