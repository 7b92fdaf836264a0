package gateway

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"mini-ledger/internal/domain"
	applog "mini-ledger/internal/log"
)

// CSVTransactionStore implements the TransactionStore interface on a single CSV file.
// It holds no state besides the path and schema; every call reopens the file.
type CSVTransactionStore struct {
	path   string
	schema domain.Schema
	logger *applog.Logger
}

// NewCSVTransactionStore creates a store for the file at path.
func NewCSVTransactionStore(path string, schema domain.Schema, logger *applog.Logger) *CSVTransactionStore {
	if path == "" {
		path = domain.DefaultDataFile
	}
	if logger == nil {
		logger = applog.Discard()
	}
	return &CSVTransactionStore{
		path:   path,
		schema: schema,
		logger: logger.WithComponent(applog.ComponentStore).With(applog.FieldPath, path),
	}
}

// Path returns the backing file path.
func (s *CSVTransactionStore) Path() string {
	return s.path
}

// Initialize creates the file with just the header row if it does not exist yet.
// An existing file is left alone, whatever it contains.
func (s *CSVTransactionStore) Initialize(ctx context.Context) error {
	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create directory %s: %w", domain.ErrStorage, dir, err)
		}
	}

	file, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: create transaction file %s: %w", domain.ErrStorage, s.path, err)
	}

	writer := csv.NewWriter(file)
	if err := writer.Write(s.schema.Header()); err != nil {
		file.Close()
		return fmt.Errorf("%w: write header to %s: %w", domain.ErrStorage, s.path, err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		file.Close()
		return fmt.Errorf("%w: write header to %s: %w", domain.ErrStorage, s.path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", domain.ErrStorage, s.path, err)
	}

	s.logger.InfoContext(ctx, "Created transaction file", applog.FieldOperation, applog.OpInitialize)
	return nil
}

// Append writes tx as one row at the end of the file.
// The file must already exist; use Initialize first.
func (s *CSVTransactionStore) Append(ctx context.Context, tx domain.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}

	file, err := os.OpenFile(s.path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("%w: open transaction file %s for append: %w", domain.ErrStorage, s.path, err)
	}

	writer := csv.NewWriter(file)
	if err := writer.Write(s.encode(tx)); err != nil {
		file.Close()
		return fmt.Errorf("%w: write record to %s: %w", domain.ErrStorage, s.path, err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		file.Close()
		return fmt.Errorf("%w: write record to %s: %w", domain.ErrStorage, s.path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", domain.ErrStorage, s.path, err)
	}

	s.logger.DebugContext(ctx, "Appended transaction",
		applog.FieldOperation, applog.OpAppend,
		applog.FieldDate, s.schema.FormatDate(tx.Date),
		applog.FieldAmount, tx.Amount.String(),
		applog.FieldCategory, string(tx.Category))
	return nil
}

// GetTransactions reads every record in storage order.
func (s *CSVTransactionStore) GetTransactions(ctx context.Context) ([]domain.Transaction, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: open transaction file %s: %w", domain.ErrStorage, s.path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = len(s.schema.Columns)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: %s has no header row", domain.ErrSchema, s.path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read header from %s: %w", domain.ErrSchema, s.path, err)
	}
	if !s.schema.MatchesHeader(header) {
		return nil, fmt.Errorf("%w: %s has header %v, want %v", domain.ErrSchema, s.path, header, s.schema.Columns)
	}

	var transactions []domain.Transaction
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, fmt.Errorf("%w: %s: %w", domain.ErrParse, s.path, err)
			}
			return nil, fmt.Errorf("%w: error reading record from %s: %w", domain.ErrStorage, s.path, err)
		}

		line, _ := reader.FieldPos(0)
		tx, err := s.decode(record)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", s.path, line, err)
		}
		transactions = append(transactions, tx)
	}

	s.logger.DebugContext(ctx, "Loaded transactions",
		applog.FieldOperation, applog.OpLoad,
		applog.FieldCount, len(transactions))
	return transactions, nil
}

func (s *CSVTransactionStore) encode(tx domain.Transaction) []string {
	return []string{
		s.schema.FormatDate(tx.Date),
		tx.Amount.String(),
		string(tx.Category),
		tx.Description,
	}
}

func (s *CSVTransactionStore) decode(record []string) (domain.Transaction, error) {
	date, err := s.schema.ParseDate(record[0])
	if err != nil {
		return domain.Transaction{}, err
	}

	amount, err := decimal.NewFromString(record[1])
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("%w: could not parse amount '%s': %v", domain.ErrParse, record[1], err)
	}
	if amount.IsNegative() {
		return domain.Transaction{}, fmt.Errorf("%w: amount '%s' is negative", domain.ErrParse, record[1])
	}

	return domain.Transaction{
		Date:        date,
		Amount:      amount,
		Category:    domain.Category(record[2]),
		Description: record[3],
	}, nil
}
