package v1

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/ck123cabz/template-genius-activation-sub001/pkg/types"
)

var clientColumns = []string{"id", "appid", "company", "contact", "email", "position", "salary", "hypothesis", "token", "status", "creator", "updated_at", "created_at"}

func expectClientByToken(mock sqlmock.Sqlmock, token, status string) {
	mock.ExpectQuery("SELECT (.+) FROM tga_client WHERE appid = (.+) AND token =").
		WithArgs("tga", token).
		WillReturnRows(sqlmock.NewRows(clientColumns).
			AddRow("client-1", "tga", "Acme", "Jane Doe", "jane@acme.com", "", "", "", token, status, "admin", 1700000000, 1700000000))
}

func TestAcknowledgePage_FirstAckActivates(t *testing.T) {
	c, mock := newTestCore(t)
	logic := NewActivationLogic(newTestContext("admin"), c)

	expectClientByToken(mock, "G1001", types.CLIENT_STATUS_PENDING)
	mock.ExpectExec("UPDATE tga_client SET").
		WithArgs(types.CLIENT_STATUS_ACTIVATED, sqlmock.AnyArg(), "tga", "client-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO tga_journey_event").
		WithArgs("tga", "client-1", string(types.PAGE_TYPE_ACTIVATION), types.JOURNEY_EVENT_ACKNOWLEDGE, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	res, err := logic.AcknowledgePage("G1001", string(types.PAGE_TYPE_ACTIVATION))
	if err != nil {
		t.Fatalf("AcknowledgePage failed: %v", err)
	}
	if res.ClientStatus != types.CLIENT_STATUS_ACTIVATED {
		t.Errorf("Expected client to flip to activated, got %s", res.ClientStatus)
	}
	if res.NextPageType != types.PAGE_TYPE_AGREEMENT {
		t.Errorf("Expected next page agreement, got %s", res.NextPageType)
	}

	// 第二次确认不再改状态，也不应再发 UPDATE
	expectClientByToken(mock, "G1001", types.CLIENT_STATUS_ACTIVATED)
	mock.ExpectExec("INSERT INTO tga_journey_event").
		WithArgs("tga", "client-1", string(types.PAGE_TYPE_ACTIVATION), types.JOURNEY_EVENT_ACKNOWLEDGE, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(2, 1))

	res, err = logic.AcknowledgePage("G1001", string(types.PAGE_TYPE_ACTIVATION))
	if err != nil {
		t.Fatalf("AcknowledgePage on activated client failed: %v", err)
	}
	if res.ClientStatus != types.CLIENT_STATUS_ACTIVATED {
		t.Errorf("Expected status to stay activated, got %s", res.ClientStatus)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestAcknowledgePage_NonActivationPageKeepsStatus(t *testing.T) {
	c, mock := newTestCore(t)
	logic := NewActivationLogic(newTestContext("admin"), c)

	expectClientByToken(mock, "G1002", types.CLIENT_STATUS_PENDING)
	mock.ExpectExec("INSERT INTO tga_journey_event").
		WithArgs("tga", "client-1", string(types.PAGE_TYPE_AGREEMENT), types.JOURNEY_EVENT_ACKNOWLEDGE, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	res, err := logic.AcknowledgePage("G1002", string(types.PAGE_TYPE_AGREEMENT))
	if err != nil {
		t.Fatalf("AcknowledgePage failed: %v", err)
	}
	if res.ClientStatus != types.CLIENT_STATUS_PENDING {
		t.Errorf("Expected pending to survive non-activation ack, got %s", res.ClientStatus)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
