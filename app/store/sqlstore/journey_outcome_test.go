package sqlstore

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/ck123cabz/template-genius-activation-sub001/pkg/types"
)

func TestJourneyOutcomeStore_ArchiveCurrent(t *testing.T) {
	provider, mock := newMockProvider(t)
	store := NewJourneyOutcomeStore(provider)

	mock.ExpectExec("UPDATE tga_journey_outcome SET is_current = (.+) WHERE appid = (.+) AND client_id = (.+) AND is_current =").
		WithArgs(false, "tga", "client-1", true).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := store.ArchiveCurrent(context.Background(), "tga", "client-1"); err != nil {
		t.Fatalf("ArchiveCurrent failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestJourneyOutcomeStore_CountByStatus(t *testing.T) {
	provider, mock := newMockProvider(t)
	store := NewJourneyOutcomeStore(provider)

	mock.ExpectQuery("SELECT status, COUNT(.+) FROM tga_journey_outcome WHERE appid = (.+) AND is_current = (.+) GROUP BY status").
		WithArgs("tga", true).
		WillReturnRows(sqlmock.NewRows([]string{"status", "total"}).
			AddRow("paid", 3).
			AddRow("ghosted", 1))

	counts, err := store.CountByStatus(context.Background(), "tga")
	if err != nil {
		t.Fatalf("CountByStatus failed: %v", err)
	}

	if len(counts) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(counts))
	}
	if counts[0].Status != types.OUTCOME_STATUS_PAID || counts[0].Total != 3 {
		t.Errorf("Unexpected first row: %+v", counts[0])
	}
}

func TestJourneyOutcomeStore_Create(t *testing.T) {
	provider, mock := newMockProvider(t)
	store := NewJourneyOutcomeStore(provider)

	mock.ExpectExec("INSERT INTO tga_journey_outcome").
		WithArgs("outcome-1", "tga", "client-1", "responded", "booked a call", "user-1", true, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := store.Create(context.Background(), types.JourneyOutcome{
		ID:         "outcome-1",
		Appid:      "tga",
		ClientID:   "client-1",
		Status:     types.OUTCOME_STATUS_RESPONDED,
		Note:       "booked a call",
		RecorderID: "user-1",
		IsCurrent:  true,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
