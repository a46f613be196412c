package queue

import (
	"encoding/json"
	"testing"

	"github.com/hibiken/asynq"
)

func TestParseJourneyEventTask(t *testing.T) {
	event := JourneyEventTask{
		Appid:     "tga",
		ClientID:  "client-1",
		PageType:  "activation",
		Kind:      "view",
		CreatedAt: 1700000000,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("marshal event failed: %v", err)
	}

	task := asynq.NewTask(TaskTypeJourneyEvent, payload)

	got, err := ParseJourneyEventTask(task)
	if err != nil {
		t.Fatalf("ParseJourneyEventTask failed: %v", err)
	}

	if got != event {
		t.Errorf("ParseJourneyEventTask() = %+v, want %+v", got, event)
	}
}

func TestParseJourneyEventTask_InvalidPayload(t *testing.T) {
	task := asynq.NewTask(TaskTypeJourneyEvent, []byte("not-json"))

	if _, err := ParseJourneyEventTask(task); err == nil {
		t.Fatal("ParseJourneyEventTask expected error for invalid payload")
	}
}

func TestNewJourneyQueueWithClient_DefaultPrefix(t *testing.T) {
	q := NewJourneyQueueWithClient("", nil)
	if q.keyPrefix != "tga" {
		t.Errorf("Expected default keyPrefix %q, got %q", "tga", q.keyPrefix)
	}

	q = NewJourneyQueueWithClient("custom", nil)
	if q.keyPrefix != "custom" {
		t.Errorf("Expected keyPrefix %q, got %q", "custom", q.keyPrefix)
	}
}
