package sqlstore

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/ck123cabz/template-genius-activation-sub001/pkg/types"
)

func TestClientStore_Create(t *testing.T) {
	provider, mock := newMockProvider(t)
	store := NewClientStore(provider)

	mock.ExpectExec("INSERT INTO tga_client").
		WithArgs("client-1", "tga", "Acme", "Jane Doe", "jane@acme.com", "CTO", "$120k", "faster onboarding converts", "G1001", "pending", "admin", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := store.Create(context.Background(), types.Client{
		ID:         "client-1",
		Appid:      "tga",
		Company:    "Acme",
		Contact:    "Jane Doe",
		Email:      "jane@acme.com",
		Position:   "CTO",
		Salary:     "$120k",
		Hypothesis: "faster onboarding converts",
		Token:      "G1001",
		Creator:    "admin",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestClientStore_GetClient(t *testing.T) {
	provider, mock := newMockProvider(t)
	store := NewClientStore(provider)

	columns := []string{"id", "appid", "company", "contact", "email", "position", "salary", "hypothesis", "token", "status", "creator", "updated_at", "created_at"}
	mock.ExpectQuery("SELECT (.+) FROM tga_client WHERE appid = (.+) AND id =").
		WithArgs("tga", "client-1").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("client-1", "tga", "Acme", "Jane Doe", "jane@acme.com", "", "", "", "G1001", "pending", "admin", 1700000000, 1700000000))

	client, err := store.GetClient(context.Background(), "tga", "client-1")
	if err != nil {
		t.Fatalf("GetClient failed: %v", err)
	}

	if client.Token != "G1001" {
		t.Errorf("Expected token G1001, got %s", client.Token)
	}
	if client.Status != types.CLIENT_STATUS_PENDING {
		t.Errorf("Expected status pending, got %s", client.Status)
	}
}

func TestClientStore_GetClient_NotFound(t *testing.T) {
	provider, mock := newMockProvider(t)
	store := NewClientStore(provider)

	mock.ExpectQuery("SELECT (.+) FROM tga_client").
		WithArgs("tga", "missing").
		WillReturnError(sql.ErrNoRows)

	_, err := store.GetClient(context.Background(), "tga", "missing")
	if err != sql.ErrNoRows {
		t.Fatalf("Expected sql.ErrNoRows, got %v", err)
	}
}

func TestClientStore_ExistToken(t *testing.T) {
	provider, mock := newMockProvider(t)
	store := NewClientStore(provider)

	mock.ExpectQuery("SELECT 1 FROM tga_client WHERE appid = (.+) AND token = (.+) LIMIT 1").
		WithArgs("tga", "G1001").
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(true))

	exist, err := store.ExistToken(context.Background(), "tga", "G1001")
	if err != nil {
		t.Fatalf("ExistToken failed: %v", err)
	}
	if !exist {
		t.Error("Expected token to exist")
	}
}

func TestClientStore_ExistToken_Free(t *testing.T) {
	provider, mock := newMockProvider(t)
	store := NewClientStore(provider)

	mock.ExpectQuery("SELECT 1 FROM tga_client WHERE appid = (.+) AND token = (.+) LIMIT 1").
		WithArgs("tga", "G2002").
		WillReturnRows(sqlmock.NewRows([]string{"1"}))

	exist, err := store.ExistToken(context.Background(), "tga", "G2002")
	if err != nil {
		t.Fatalf("ExistToken on free token failed: %v", err)
	}
	if exist {
		t.Error("Expected free token to be reported as not taken")
	}
}

func TestClientStore_ListTokens(t *testing.T) {
	provider, mock := newMockProvider(t)
	store := NewClientStore(provider)

	mock.ExpectQuery("SELECT token FROM tga_client WHERE appid =").
		WithArgs("tga").
		WillReturnRows(sqlmock.NewRows([]string{"token"}).AddRow("G1001").AddRow("G1002"))

	tokens, err := store.ListTokens(context.Background(), "tga")
	if err != nil {
		t.Fatalf("ListTokens failed: %v", err)
	}
	if len(tokens) != 2 || tokens[0] != "G1001" || tokens[1] != "G1002" {
		t.Errorf("Unexpected tokens: %v", tokens)
	}
}

func TestClientStore_UpdateStatus(t *testing.T) {
	provider, mock := newMockProvider(t)
	store := NewClientStore(provider)

	mock.ExpectExec("UPDATE tga_client SET").
		WithArgs("activated", sqlmock.AnyArg(), "tga", "client-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.UpdateStatus(context.Background(), "tga", "client-1", "activated")
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
