package v1

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestLazyRolerFromClientID(t *testing.T) {
	c, mock := newTestCore(t)
	info := &_userInfo{
		ctx:  newTestContext("editor-1"),
		core: c,
	}

	mock.ExpectQuery("SELECT (.+) FROM tga_client WHERE appid = (.+) AND id =").
		WithArgs("tga", "client-1").
		WillReturnRows(sqlmock.NewRows(clientColumns).
			AddRow("client-1", "tga", "Acme", "Jane Doe", "jane@acme.com", "", "", "", "G1001", "pending", "owner-9", 1700000000, 1700000000))

	owner, err := info.lazyRolerFromClientID("tga", "client-1").GetUser()
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if owner != "owner-9" {
		t.Errorf("Expected record owner to be its creator, got %s", owner)
	}
}
