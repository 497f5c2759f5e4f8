package store

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"gym-manager/internal/models"

	"github.com/shopspring/decimal"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleRecord(id, name string) models.SubscriptionRecord {
	return models.SubscriptionRecord{
		ID:             id,
		Name:           name,
		Phone:          "0555 12 34 56",
		PlanName:       "Mensuel (30j)",
		DurationDays:   30,
		AmountPaid:     decimal.RequireFromString("2500.50"),
		StartDate:      date(2024, time.January, 1),
		ExpirationDate: date(2024, time.January, 31),
		Notes:          "paie en deux fois",
	}
}

func TestLoadMissingFile(t *testing.T) {
	st := NewStore(filepath.Join(t.TempDir(), "abonnements.csv"))

	records, err := st.Load()
	if err != nil {
		t.Fatalf("Load on missing file: %v", err)
	}
	if records == nil || len(records) != 0 {
		t.Fatalf("expected empty collection, got %#v", records)
	}
}

func TestAppendLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "abonnements.csv")

	st := NewStore(path)
	want := sampleRecord("id-1", "Amine Benali")
	if err := st.Append(want); err != nil {
		t.Fatalf("Append: %v", err)
	}

	// A fresh store must parse the file back without drift.
	records, err := NewStore(path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	got := records[0]

	if got.ID != want.ID || got.Name != want.Name || got.Phone != want.Phone ||
		got.PlanName != want.PlanName || got.DurationDays != want.DurationDays ||
		got.Notes != want.Notes {
		t.Fatalf("text fields drifted: %+v", got)
	}
	if !got.AmountPaid.Equal(want.AmountPaid) {
		t.Fatalf("amount drifted: want %s, got %s", want.AmountPaid, got.AmountPaid)
	}
	if !got.StartDate.Equal(want.StartDate) || !got.ExpirationDate.Equal(want.ExpirationDate) {
		t.Fatalf("dates drifted: %+v", got)
	}
}

func TestLoadIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "abonnements.csv")
	st := NewStore(path)
	if err := st.Append(sampleRecord("id-1", "Amine Benali")); err != nil {
		t.Fatalf("Append: %v", err)
	}

	first, err := st.Load()
	if err != nil {
		t.Fatalf("first Load: %v", err)
	}
	second, err := st.Load()
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated Load differs:\n%#v\n%#v", first, second)
	}
}

func TestAppendInvalidatesCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "abonnements.csv")
	st := NewStore(path)

	if records, err := st.Load(); err != nil || len(records) != 0 {
		t.Fatalf("initial Load: %v, %d records", err, len(records))
	}
	if err := st.Append(sampleRecord("id-1", "Amine Benali")); err != nil {
		t.Fatalf("Append: %v", err)
	}

	records, err := st.Load()
	if err != nil {
		t.Fatalf("Load after Append: %v", err)
	}
	if len(records) != 1 || records[0].ID != "id-1" {
		t.Fatalf("Append not observed: %#v", records)
	}
}

func TestExportMatchesPersistedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "abonnements.csv")
	st := NewStore(path)
	if err := st.Append(sampleRecord("id-1", "Amine Benali")); err != nil {
		t.Fatalf("Append: %v", err)
	}

	exported, err := st.Export()
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	persisted, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read persisted file: %v", err)
	}
	if !bytes.Equal(exported, persisted) {
		t.Fatalf("export differs from persisted file:\n%s\n---\n%s", exported, persisted)
	}

	header := strings.SplitN(string(exported), "\n", 2)[0]
	if header != strings.Join(Columns, ",") {
		t.Fatalf("unexpected header: %s", header)
	}
}

func TestLoadMalformedFileFailsFast(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"wrong column count", "ID,Nom\nid-1,Amine\n"},
		{"bad date", strings.Join(Columns, ",") + "\nid-1,Amine,,Mensuel (30j),30,2500,not-a-date,2024-01-31,\n"},
		{"bad amount", strings.Join(Columns, ",") + "\nid-1,Amine,,Mensuel (30j),30,beaucoup,2024-01-01,2024-01-31,\n"},
		{"bad duration", strings.Join(Columns, ",") + "\nid-1,Amine,,Mensuel (30j),trente,2500,2024-01-01,2024-01-31,\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "abonnements.csv")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write fixture: %v", err)
			}

			records, err := NewStore(path).Load()
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("expected ErrMalformed, got %v", err)
			}
			if records != nil {
				t.Fatalf("expected no partial data, got %#v", records)
			}
		})
	}
}

func TestAppendPreservesExistingRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "abonnements.csv")
	st := NewStore(path)
	if err := st.Append(sampleRecord("id-1", "Amine Benali")); err != nil {
		t.Fatalf("first Append: %v", err)
	}
	if err := st.Append(sampleRecord("id-2", "Sara Haddad")); err != nil {
		t.Fatalf("second Append: %v", err)
	}

	records, err := NewStore(path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 2 || records[0].ID != "id-1" || records[1].ID != "id-2" {
		t.Fatalf("unexpected records after rewrite: %#v", records)
	}
}
