package juggler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"
)

// CleanupResource is anything that must be torn down on exit.
type CleanupResource interface {
	Cleanup() error
	Name() string
}

// CleanupFunc adapts a plain function to CleanupResource.
type CleanupFunc struct {
	name string
	fn   func() error
}

func (c *CleanupFunc) Cleanup() error { return c.fn() }
func (c *CleanupFunc) Name() string   { return c.name }

// CleanupManager tears down registered resources exactly once, in
// reverse registration order, bounded by a timeout and shielded from
// panicking resources.
type CleanupManager struct {
	mu        sync.Mutex
	resources []CleanupResource
	timeout   time.Duration
	once      sync.Once
}

// NewCleanupManager returns a manager that bounds teardown by the
// given timeout.
func NewCleanupManager(timeout time.Duration) *CleanupManager {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &CleanupManager{timeout: timeout}
}

// Register adds a resource to tear down on Execute.
func (cm *CleanupManager) Register(resource CleanupResource) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.resources = append(cm.resources, resource)
}

// RegisterFunc registers a named cleanup function.
func (cm *CleanupManager) RegisterFunc(name string, fn func() error) {
	cm.Register(&CleanupFunc{name: name, fn: fn})
}

// Clear drops all registered resources without running them.
func (cm *CleanupManager) Clear() {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.resources = cm.resources[:0]
}

// Execute runs every registered cleanup, exactly once across all
// calls. Later registrations clean up first. Returns the joined
// errors, including a timeout error when the deadline was exceeded.
func (cm *CleanupManager) Execute() error {
	var err error
	cm.once.Do(func() {
		err = cm.executeWithTimeout()
	})
	return err
}

func (cm *CleanupManager) executeWithTimeout() error {
	cm.mu.Lock()
	resources := make([]CleanupResource, len(cm.resources))
	copy(resources, cm.resources)
	cm.mu.Unlock()

	if len(resources) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), cm.timeout)
	defer cancel()

	done := make(chan struct{})
	var mu sync.Mutex
	var errs []error

	go func() {
		defer close(done)
		for i := len(resources) - 1; i >= 0; i-- {
			if err := runCleanup(resources[i]); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}
	}()

	select {
	case <-done:
	case <-ctx.Done():
		log.Printf("cleanup: timed out after %v, some resources skipped", cm.timeout)
		mu.Lock()
		errs = append(errs, fmt.Errorf("cleanup timed out after %v", cm.timeout))
		mu.Unlock()
	}

	mu.Lock()
	defer mu.Unlock()
	return errors.Join(errs...)
}

// runCleanup invokes one resource's cleanup, converting a panic into
// an error so one bad resource cannot block process exit.
func runCleanup(r CleanupResource) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%s: panic: %v", r.Name(), p)
			log.Printf("cleanup: panic in %s: %v", r.Name(), p)
		}
	}()
	if err := r.Cleanup(); err != nil {
		log.Printf("cleanup: %s failed: %v", r.Name(), err)
		return fmt.Errorf("%s: %w", r.Name(), err)
	}
	log.Printf("cleanup: %s done", r.Name())
	return nil
}
