package ctxutil

import (
	"context"
	"testing"
	"time"
)

func TestRequestID(t *testing.T) {
	ctx := context.Background()
	if _, ok := RequestID(ctx); ok {
		t.Fatalf("empty context must not carry a request id")
	}
	ctx = WithRequestID(ctx, "abc")
	if id, ok := RequestID(ctx); !ok || id != "abc" {
		t.Fatalf("RequestID = (%q, %v)", id, ok)
	}
	if _, ok := RequestID(WithRequestID(context.Background(), "")); ok {
		t.Fatalf("blank id must be reported as missing")
	}
}

func TestOp(t *testing.T) {
	ctx := WithOp(context.Background(), "create_booking")
	if op, ok := Op(ctx); !ok || op != "create_booking" {
		t.Fatalf("Op = (%q, %v)", op, ok)
	}
}

func TestWithDBTimeoutKeepsShorterParentDeadline(t *testing.T) {
	parent, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	ctx, cancel2 := WithDBTimeout(parent)
	defer cancel2()

	dl, ok := ctx.Deadline()
	if !ok {
		t.Fatalf("expected deadline")
	}
	if time.Until(dl) > 50*time.Millisecond {
		t.Fatalf("deadline extended beyond parent: %v", time.Until(dl))
	}
}

func TestWithDBTimeoutDefault(t *testing.T) {
	ctx, cancel := WithDBTimeout(context.Background())
	defer cancel()
	dl, ok := ctx.Deadline()
	if !ok || time.Until(dl) > DefaultDBTimeout {
		t.Fatalf("unexpected deadline %v (ok=%v)", dl, ok)
	}
}
