package sqlstore

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

type mockSqlProvider struct {
	db *sqlx.DB
}

func (m *mockSqlProvider) GetMaster() *sqlx.DB {
	return m.db
}

func (m *mockSqlProvider) GetReplica() *sqlx.DB {
	return m.db
}

func (m *mockSqlProvider) GetDBName() (string, error) {
	return "tga_test", nil
}

func (m *mockSqlProvider) GetTxFromCtx(ctx context.Context) *sqlx.Tx {
	return nil
}

func newMockProvider(t *testing.T) (*mockSqlProvider, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
	})

	return &mockSqlProvider{db: sqlx.NewDb(db, "sqlmock")}, mock
}
