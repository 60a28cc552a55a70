package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/parcelworks/labelextract/internal/repository"
)

type fakeRepo struct {
	recs []*repository.Extraction
}

func (f *fakeRepo) Save(ctx context.Context, e *repository.Extraction) error { return nil }
func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*repository.Extraction, error) {
	return nil, nil
}
func (f *fakeRepo) List(ctx context.Context) ([]*repository.Extraction, error) {
	return f.recs, nil
}

func TestExportXLSX(t *testing.T) {
	repo := &fakeRepo{recs: []*repository.Extraction{
		{
			ID:               uuid.New(),
			SourceText:       "zoey dong, 2821 carradale dr",
			RecipientName:    "Zoey Dong",
			RecipientAddress: "2821 Carradale Dr 95661-4047 Roseville Ca",
			CreatedAt:        time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:         uuid.New(),
			SourceText: "illegible",
			CreatedAt:  time.Date(2024, 3, 1, 12, 0, 1, 0, time.UTC),
		},
	}}

	b, err := NewService(repo, nil).ExportXLSX(context.Background())
	if err != nil {
		t.Fatalf("ExportXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Extractions")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2", len(rows))
	}
	if rows[0][1] != "Recipient Name" {
		t.Errorf("header row = %v", rows[0])
	}
	if rows[1][1] != "Zoey Dong" {
		t.Errorf("first data row = %v", rows[1])
	}
	if rows[1][2] != "2821 Carradale Dr 95661-4047 Roseville Ca" {
		t.Errorf("address cell = %q", rows[1][2])
	}
}
