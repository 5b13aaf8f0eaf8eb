package juggler

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestCleanupRunsInReverseOrderOnce(t *testing.T) {
	cm := NewCleanupManager(time.Second)

	var mu sync.Mutex
	var order []string
	record := func(name string) func() error {
		return func() error {
			mu.Lock()
			defer mu.Unlock()
			order = append(order, name)
			return nil
		}
	}

	cm.RegisterFunc("first", record("first"))
	cm.RegisterFunc("second", record("second"))
	cm.RegisterFunc("third", record("third"))

	if err := cm.Execute(); err != nil {
		t.Fatalf("Execute() = %v, want nil", err)
	}

	mu.Lock()
	got := strings.Join(order, ",")
	mu.Unlock()
	if got != "third,second,first" {
		t.Errorf("cleanup order = %s, want third,second,first", got)
	}

	if err := cm.Execute(); err != nil {
		t.Errorf("second Execute() = %v, want nil", err)
	}
	mu.Lock()
	count := len(order)
	mu.Unlock()
	if count != 3 {
		t.Errorf("resources ran %d times total, want 3", count)
	}
}

func TestCleanupEmptyIsNil(t *testing.T) {
	cm := NewCleanupManager(time.Second)
	if err := cm.Execute(); err != nil {
		t.Errorf("Execute() with no resources = %v, want nil", err)
	}
}

func TestCleanupJoinsErrors(t *testing.T) {
	cm := NewCleanupManager(time.Second)

	sentinel := errors.New("listener teardown failed")
	cm.RegisterFunc("listener", func() error { return sentinel })
	cm.RegisterFunc("session", func() error { return errors.New("session teardown failed") })

	err := cm.Execute()
	if err == nil {
		t.Fatal("Execute() = nil, want joined errors")
	}
	if !errors.Is(err, sentinel) {
		t.Errorf("Execute() error does not wrap the resource error: %v", err)
	}
	for _, want := range []string{"listener", "session"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Execute() error %q does not name %q", err, want)
		}
	}
}

func TestCleanupRecoversPanic(t *testing.T) {
	cm := NewCleanupManager(time.Second)

	ran := false
	cm.RegisterFunc("steady", func() error {
		ran = true
		return nil
	})
	cm.RegisterFunc("bomb", func() error { panic("boom") })

	err := cm.Execute()
	if err == nil {
		t.Fatal("Execute() = nil, want panic error")
	}
	if !strings.Contains(err.Error(), "panic") {
		t.Errorf("Execute() error %q does not mention the panic", err)
	}
	if !ran {
		t.Error("resource after the panicking one never ran")
	}
}

func TestCleanupTimeout(t *testing.T) {
	cm := NewCleanupManager(100 * time.Millisecond)
	release := make(chan struct{})
	defer close(release)
	cm.RegisterFunc("stuck", func() error {
		<-release
		return nil
	})

	start := time.Now()
	err := cm.Execute()
	elapsed := time.Since(start)

	if err == nil {
		t.Fatal("Execute() = nil, want timeout error")
	}
	if !strings.Contains(err.Error(), "timed out") {
		t.Errorf("Execute() error %q does not mention the timeout", err)
	}
	if elapsed > time.Second {
		t.Errorf("Execute() blocked for %v, want about the 100ms timeout", elapsed)
	}
}

func TestCleanupClear(t *testing.T) {
	cm := NewCleanupManager(time.Second)
	ran := false
	cm.RegisterFunc("dropped", func() error {
		ran = true
		return nil
	})
	cm.Clear()

	if err := cm.Execute(); err != nil {
		t.Fatalf("Execute() = %v, want nil", err)
	}
	if ran {
		t.Error("cleared resource still ran")
	}
}
