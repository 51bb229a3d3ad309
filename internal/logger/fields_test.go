package logger

import (
	"testing"

	"go.uber.org/zap"
)

func TestStringFieldsSkipsEmptyEntries(t *testing.T) {
	fields := StringFields(
		StringField{Key: "provider", Value: "gemini"},
		StringField{Key: "  ", Value: "ignored"},
		StringField{Key: "model", Value: "   "},
		StringField{Key: " trimmed ", Value: " value "},
	)

	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d: %v", len(fields), fields)
	}
	if fields[0].Key != "provider" || fields[0].String != "gemini" {
		t.Fatalf("unexpected first field: %+v", fields[0])
	}
	if fields[1].Key != "trimmed" || fields[1].String != "value" {
		t.Fatalf("unexpected second field: %+v", fields[1])
	}
}

func TestWithFieldsNilLogger(t *testing.T) {
	log := WithFields(nil)
	if log == nil {
		t.Fatalf("expected a usable logger for nil input")
	}

	// Must not panic on a nil input logger with fields.
	log = WithFields(nil, zap.String("k", "v"))
	log.Info("message")
}

func TestSessionFields(t *testing.T) {
	fields := SessionFields("abc-123", "technical")
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}
	if fields[0].Key != FieldSession || fields[1].Key != FieldCategory {
		t.Fatalf("unexpected keys: %q, %q", fields[0].Key, fields[1].Key)
	}

	fields = SessionFields("abc-123", "")
	if len(fields) != 1 {
		t.Fatalf("expected empty category to be dropped, got %d fields", len(fields))
	}
}

func TestBackendFields(t *testing.T) {
	fields := BackendFields("gemini", "gemini-2.5-flash")
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}
	if fields[0].Key != FieldProvider || fields[1].Key != FieldModel {
		t.Fatalf("unexpected keys: %q, %q", fields[0].Key, fields[1].Key)
	}
}
