package v1

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

var versionColumns = []string{"id", "appid", "client_id", "page_id", "version", "title", "content", "hypothesis", "editor_id", "is_current", "created_at"}

func TestRestoreVersion_AppendsNewVersion(t *testing.T) {
	c, mock := newTestCore(t)
	logic := NewContentVersionLogic(newTestContext("admin"), c)

	content := `{"blocks":[{"type":"heading","text":"old copy"}]}`

	mock.ExpectQuery("SELECT (.+) FROM tga_content_version WHERE appid = (.+) AND id =").
		WithArgs("tga", "ver-2").
		WillReturnRows(sqlmock.NewRows(versionColumns).
			AddRow("ver-2", "tga", "client-1", "page-1", 2, "Service Agreement", content, "shorter terms convert", "admin", false, 1700000000))

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COALESCE(.+) FROM tga_content_version").
		WithArgs("tga", "page-1").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(5))
	mock.ExpectExec("UPDATE tga_content_version SET is_current").
		WithArgs(false, "tga", true, "page-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO tga_content_version").
		WithArgs(sqlmock.AnyArg(), "tga", "client-1", "page-1", int64(6), "Service Agreement", sqlmock.AnyArg(), "shorter terms convert", "admin", true, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE tga_journey_page SET").
		WithArgs(sqlmock.AnyArg(), "Service Agreement", sqlmock.AnyArg(), "tga", "page-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	restored, err := logic.RestoreVersion("ver-2")
	if err != nil {
		t.Fatalf("RestoreVersion failed: %v", err)
	}

	if restored.ID == "ver-2" {
		t.Error("Expected restore to mint a new version record, got the source id")
	}
	if restored.Version != 6 {
		t.Errorf("Expected version 6, got %d", restored.Version)
	}
	if !restored.IsCurrent {
		t.Error("Expected restored version to become current")
	}
	if string(restored.Content) != content {
		t.Errorf("Expected restored content to match source, got %s", restored.Content)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
