package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestRunCallsFnImmediatelyAndOnWrite(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(file, []byte("v1"), 0o644); err != nil {
		t.Fatal(err)
	}

	calls := make(chan struct{}, 8)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	go func() {
		Run(ctx, file, func() error {
			calls <- struct{}{}
			return nil
		}, func(error) {})
	}()

	select {
	case <-calls:
	case <-time.After(time.Second):
		t.Fatal("expected an immediate call to fn")
	}

	time.Sleep(50 * time.Millisecond)
	if err := os.WriteFile(file, []byte("v2"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-calls:
	case <-time.After(time.Second):
		t.Fatal("expected a second call to fn after the file changed")
	}
}

func TestRunReportsFnErrorsWithoutStopping(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(file, []byte("v1"), 0o644); err != nil {
		t.Fatal(err)
	}

	errs := make(chan error, 8)
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, file, func() error {
			return errTest
		}, func(err error) { errs <- err })
	}()

	select {
	case err := <-errs:
		if err == nil {
			t.Fatal("expected a non-nil error")
		}
	case <-time.After(time.Second):
		t.Fatal("expected fn's error to be reported")
	}

	if err := <-done; err != nil {
		t.Fatalf("expected Run to return nil on context cancellation, got %v", err)
	}
}

var errTest = &testError{"boom"}

type testError struct{ msg string }

func (e *testError) Error() string { return e.msg }
