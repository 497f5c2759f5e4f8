package store

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"gym-manager/internal/models"

	"github.com/shopspring/decimal"
)

// Columns is the fixed column order of the backing file. Export uses the
// same order, so exported bytes parse back identically.
var Columns = []string{"ID", "Nom", "Telephone", "Abonnement", "DureeJours", "Montant", "Debut", "Expiration", "Remarques"}

// ErrMalformed marks a backing file that exists but cannot be parsed. Load
// fails fast on it rather than returning partial data.
var ErrMalformed = errors.New("malformed subscriptions file")

// Store persists subscription records to a flat CSV file. It owns an
// in-memory cache of the parsed records; a successful Append replaces the
// cache synchronously, so later Loads observe the new record without
// re-reading the file.
type Store struct {
	path string

	mu      sync.Mutex
	records []models.SubscriptionRecord
	loaded  bool
}

// NewStore returns a store backed by the CSV file at path. The file is read
// lazily on the first Load or Append.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns all records. A missing file yields an empty collection.
func (s *Store) Load() ([]models.SubscriptionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fill(); err != nil {
		return nil, err
	}
	out := make([]models.SubscriptionRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

// Append adds one record and rewrites the whole file. The write goes to a
// temp file which is renamed over the target, so a failed write leaves both
// the previous file contents and the cache untouched.
func (s *Store) Append(rec models.SubscriptionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fill(); err != nil {
		return err
	}

	next := make([]models.SubscriptionRecord, len(s.records), len(s.records)+1)
	copy(next, s.records)
	next = append(next, rec)

	if err := s.writeFile(next); err != nil {
		return err
	}
	s.records = next
	return nil
}

// Export serializes the current collection with the same schema and column
// order as the backing file.
func (s *Store) Export() ([]byte, error) {
	records, err := s.Load()
	if err != nil {
		return nil, err
	}
	return marshalCSV(records)
}

// fill populates the cache from disk if it has not been read yet. Caller
// must hold s.mu.
func (s *Store) fill() error {
	if s.loaded {
		return nil
	}
	records, err := s.readFile()
	if err != nil {
		return err
	}
	s.records = records
	s.loaded = true
	return nil
}

func (s *Store) readFile() ([]models.SubscriptionRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.SubscriptionRecord{}, nil
		}
		return nil, fmt.Errorf("failed to open %s: %w", s.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(Columns)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(rows) == 0 {
		return []models.SubscriptionRecord{}, nil
	}

	// First row is the header.
	records := make([]models.SubscriptionRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrMalformed, i+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseRow(row []string) (models.SubscriptionRecord, error) {
	var rec models.SubscriptionRecord

	rec.ID = row[0]
	rec.Name = row[1]
	rec.Phone = row[2]
	rec.PlanName = row[3]
	rec.Notes = row[8]

	days, err := strconv.Atoi(row[4])
	if err != nil {
		return rec, fmt.Errorf("duration %q: %v", row[4], err)
	}
	rec.DurationDays = days

	amount, err := decimal.NewFromString(row[5])
	if err != nil {
		return rec, fmt.Errorf("amount %q: %v", row[5], err)
	}
	rec.AmountPaid = amount

	start, err := time.Parse(models.DateFormat, row[6])
	if err != nil {
		return rec, fmt.Errorf("start date %q: %v", row[6], err)
	}
	rec.StartDate = start

	expiration, err := time.Parse(models.DateFormat, row[7])
	if err != nil {
		return rec, fmt.Errorf("expiration date %q: %v", row[7], err)
	}
	rec.ExpirationDate = expiration

	return rec, nil
}

func (s *Store) writeFile(records []models.SubscriptionRecord) error {
	data, err := marshalCSV(records)
	if err != nil {
		return err
	}

	// Write to a temp file in the same directory so the rename is atomic.
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}
	return nil
}

func marshalCSV(records []models.SubscriptionRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(Columns); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			rec.ID,
			rec.Name,
			rec.Phone,
			rec.PlanName,
			strconv.Itoa(rec.DurationDays),
			rec.AmountPaid.String(),
			rec.StartDate.Format(models.DateFormat),
			rec.ExpirationDate.Format(models.DateFormat),
			rec.Notes,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write record %s: %w", rec.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
