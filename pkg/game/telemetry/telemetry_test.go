package telemetry

import (
	"context"
	"testing"
)

func TestTracer_RecordsNothingBeforeSetup(t *testing.T) {
	ctx, span := Tracer("gameplay").Start(context.Background(), "gameplay.intent")
	defer span.End()

	if span.IsRecording() {
		t.Error("span is recording without a tracer provider")
	}
	if span.SpanContext().IsValid() {
		t.Errorf("span context = %v, want an invalid context", span.SpanContext())
	}
	if ctx == nil {
		t.Error("Start returned a nil context")
	}
}

func TestHostname_NeverEmpty(t *testing.T) {
	if hostname() == "" {
		t.Error("hostname() returned an empty string")
	}
}
