package sqlstore

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestContentVersionStore_MaxVersion(t *testing.T) {
	provider, mock := newMockProvider(t)
	store := NewContentVersionStore(provider)

	mock.ExpectQuery("SELECT COALESCE\\(MAX\\(version\\), 0\\) FROM tga_content_version WHERE appid = (.+) AND page_id =").
		WithArgs("tga", "page-1").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(3))

	max, err := store.MaxVersion(context.Background(), "tga", "page-1")
	if err != nil {
		t.Fatalf("MaxVersion failed: %v", err)
	}
	if max != 3 {
		t.Errorf("Expected max version 3, got %d", max)
	}
}

func TestContentVersionStore_MaxVersion_NoRows(t *testing.T) {
	provider, mock := newMockProvider(t)
	store := NewContentVersionStore(provider)

	mock.ExpectQuery("SELECT COALESCE").
		WithArgs("tga", "page-1").
		WillReturnError(sql.ErrNoRows)

	max, err := store.MaxVersion(context.Background(), "tga", "page-1")
	if err != nil {
		t.Fatalf("MaxVersion failed: %v", err)
	}
	if max != 0 {
		t.Errorf("Expected 0 for empty page, got %d", max)
	}
}

func TestContentVersionStore_UnsetCurrent(t *testing.T) {
	provider, mock := newMockProvider(t)
	store := NewContentVersionStore(provider)

	mock.ExpectExec("UPDATE tga_content_version SET is_current = (.+) WHERE appid = (.+) AND is_current = (.+) AND page_id =").
		WithArgs(false, "tga", true, "page-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := store.UnsetCurrent(context.Background(), "tga", "page-1"); err != nil {
		t.Fatalf("UnsetCurrent failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
