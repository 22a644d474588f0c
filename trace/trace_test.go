package trace

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestStage(t *testing.T) {
	var out bytes.Buffer
	if err := Init(&out, true); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	ctx := context.Background()

	if err := Stage(ctx, "load", func(context.Context) error { return nil }); err != nil {
		t.Errorf("Stage(load) error = %v", err)
	}
	boom := errors.New("boom")
	if err := Stage(ctx, "aggregate", func(context.Context) error { return boom }); !errors.Is(err, boom) {
		t.Errorf("Stage(aggregate) error = %v, want %v", err, boom)
	}
	if err := Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}

	got := out.String()
	for _, want := range []string{`"Name": "load"`, `"Name": "aggregate"`, `"Description": "boom"`, `"tj"`} {
		if !strings.Contains(got, want) {
			t.Errorf("trace output is missing %s:\n%s", want, got)
		}
	}
	if Enabled() {
		t.Error("Enabled() = true after Shutdown()")
	}
}

func TestStage_Disabled(t *testing.T) {
	var out bytes.Buffer
	if err := Init(&out, false); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	called := false
	Stage(context.Background(), "load", func(context.Context) error { called = true; return nil })
	if !called {
		t.Error("Stage() did not run f")
	}
	if out.Len() != 0 {
		t.Errorf("disabled tracing wrote %q", out.String())
	}
}
