package errors

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("Logic.GetClient", "error.notfound", fmt.Errorf("sql: no rows in result set"))

	if err.GetCode() != http.StatusInternalServerError {
		t.Errorf("Expected default code 500, got %d", err.GetCode())
	}

	err.Code(http.StatusNotFound)
	if err.GetCode() != http.StatusNotFound {
		t.Errorf("Expected code 404 after Code(), got %d", err.GetCode())
	}

	if err.Message() != "error.notfound" {
		t.Errorf("Expected message key, got %s", err.Message())
	}
}

func TestTrace(t *testing.T) {
	inner := New("Store.Get", "error.internal", fmt.Errorf("boom")).Code(http.StatusInternalServerError)
	outer := Trace("Logic.Get", inner)

	if outer != inner {
		t.Fatal("Trace should append to the same CustomizedError")
	}

	if !strings.Contains(outer.Error(), "Store.Get->Logic.Get") {
		t.Errorf("Expected trace chain in error output, got %s", outer.Error())
	}
}

func TestTrace_PlainError(t *testing.T) {
	err := Trace("Logic.Get", fmt.Errorf("plain failure"))

	if err.Message() != "plain failure" {
		t.Errorf("Expected wrapped plain error message, got %s", err.Message())
	}
}

func TestMessage_FallbackToCause(t *testing.T) {
	err := New("Logic.Get", "", fmt.Errorf("underlying cause"))

	if err.Message() != "underlying cause" {
		t.Errorf("Expected cause as message, got %s", err.Message())
	}
}
