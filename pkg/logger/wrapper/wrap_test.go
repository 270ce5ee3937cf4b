package wrap

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestError_WrapsSentinel(t *testing.T) {
	sentinel := errors.New("not found")
	ctx := WithAction(context.Background(), "get_schedule")

	wrapped := Error(ctx, sentinel)
	if !errors.Is(wrapped, sentinel) {
		t.Fatal("wrapped error must match the sentinel")
	}
	if wrapped.Error() != sentinel.Error() {
		t.Fatalf("message changed: %q", wrapped.Error())
	}
}

func TestError_NilPassthrough(t *testing.T) {
	if Error(context.Background(), nil) != nil {
		t.Fatal("nil must stay nil")
	}
}

// Service code wraps in an inner closure and again at the call site, so a
// second Error on an already-wrapped chain must not point Unwrap back at the
// wrapper itself. A cycle here makes errors.Is spin forever.
func TestError_DoubleWrapKeepsChainFinite(t *testing.T) {
	sentinel := errors.New("not found")
	ctx := WithAction(context.Background(), "update_schedule_times")

	inner := Error(ctx, fmt.Errorf("repo: %w", sentinel))
	outer := Error(WithAction(ctx, "outer"), inner)

	for depth, err := 0, outer; err != nil; depth, err = depth+1, errors.Unwrap(err) {
		if depth > 10 {
			t.Fatal("Unwrap chain does not terminate")
		}
	}

	if !errors.Is(outer, sentinel) {
		t.Fatal("double-wrapped error must still match the sentinel")
	}
}

func TestError_RewrapUpdatesLogCtx(t *testing.T) {
	sentinel := errors.New("boom")

	inner := Error(WithAction(context.Background(), "first"), sentinel)
	outer := Error(WithAction(context.Background(), "second"), inner)

	got := ErrorCtx(context.Background(), outer)
	lc, ok := got.Value(LogCtxKey).(LogCtx)
	if !ok {
		t.Fatal("expected a LogCtx on the extracted context")
	}
	if lc.Action != "second" {
		t.Fatalf("rewrap must carry the latest action, got %q", lc.Action)
	}
}
