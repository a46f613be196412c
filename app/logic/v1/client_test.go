package v1

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/ck123cabz/template-genius-activation-sub001/pkg/utils"
)

func TestGenClientToken_FreshToken(t *testing.T) {
	c, mock := newTestCore(t)
	logic := NewClientLogic(newTestContext("admin"), c)

	mock.ExpectQuery("SELECT COUNT(.+) FROM tga_client").
		WithArgs("tga").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	// 空结果集代表访问码未被占用
	mock.ExpectQuery("SELECT 1 FROM tga_client").
		WithArgs("tga", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"1"}))

	token, err := logic.genClientToken("tga")
	if err != nil {
		t.Fatalf("genClientToken failed: %v", err)
	}
	if !utils.ValidAccessCode(token) {
		t.Errorf("Expected a valid access code, got %q", token)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGenClientToken_ScanFallback(t *testing.T) {
	c, mock := newTestCore(t)
	logic := NewClientLogic(newTestContext("admin"), c)

	mock.ExpectQuery("SELECT COUNT(.+) FROM tga_client").
		WithArgs("tga").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	// 随机抽取持续碰撞，逼出顺序探测
	for i := 0; i < maxTokenRetries; i++ {
		mock.ExpectQuery("SELECT 1 FROM tga_client").
			WithArgs("tga", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(true))
	}
	mock.ExpectQuery("SELECT token FROM tga_client").
		WithArgs("tga").
		WillReturnRows(sqlmock.NewRows([]string{"token"}).AddRow("G1001").AddRow("G1002"))

	token, err := logic.genClientToken("tga")
	if err != nil {
		t.Fatalf("genClientToken fallback failed: %v", err)
	}
	if !utils.ValidAccessCode(token) {
		t.Errorf("Expected a valid access code, got %q", token)
	}
	if token == "G1001" || token == "G1002" {
		t.Errorf("Fallback handed out a taken code: %s", token)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
