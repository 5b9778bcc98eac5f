package ctxutil

import (
	"context"
	"testing"
)

func TestWithCaller_And_CallerFromCtx(t *testing.T) {
	t.Parallel()

	ctx := WithCaller(context.Background(), "bot")

	got, ok := CallerFromCtx(ctx)
	if !ok {
		t.Fatal("expected ok=true for non-empty caller")
	}
	if got != "bot" {
		t.Fatalf("expected bot, got %s", got)
	}
}

func TestCallerFromCtx_EmptyContext(t *testing.T) {
	t.Parallel()

	got, ok := CallerFromCtx(context.Background())
	if ok {
		t.Fatal("expected ok=false for empty context")
	}
	if got != "" {
		t.Fatalf("expected empty string, got %s", got)
	}
}

func TestCallerFromCtx_EmptyCaller(t *testing.T) {
	t.Parallel()

	ctx := WithCaller(context.Background(), "")

	_, ok := CallerFromCtx(ctx)
	if ok {
		t.Fatal("expected ok=false for empty caller")
	}
}

func TestCallerFromCtx_WrongType(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), ctxKey("caller"), 42)

	_, ok := CallerFromCtx(ctx)
	if ok {
		t.Fatal("expected ok=false for wrong type")
	}
}

func TestWithRequestID_And_RequestIDFromCtx(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req-123")

	got := RequestIDFromCtx(ctx)
	if got != "req-123" {
		t.Fatalf("expected req-123, got %s", got)
	}
}

func TestRequestIDFromCtx_EmptyContext(t *testing.T) {
	t.Parallel()

	got := RequestIDFromCtx(context.Background())
	if got != "" {
		t.Fatalf("expected empty string, got %s", got)
	}
}

func TestRequestIDFromCtx_WrongType(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), ctxKey("request_id"), 12345)

	got := RequestIDFromCtx(ctx)
	if got != "" {
		t.Fatalf("expected empty string, got %s", got)
	}
}
