package platform

import (
	"testing"
)

type stubPlatform struct{ name string }

func (s stubPlatform) Name() string              { return s.name }
func (s stubPlatform) InitVideo() (Video, error) { return nil, nil }

func TestRegistry(t *testing.T) {
	Register("stub-a", func() Platform { return stubPlatform{"stub-a"} })
	Register("stub-b", func() Platform { return stubPlatform{"stub-b"} })

	if !Exists("stub-a") {
		t.Error("Expected stub-a to be registered")
	}
	if Exists("missing") {
		t.Error("Expected missing backend to be absent")
	}

	p, err := Create("stub-b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if p.Name() != "stub-b" {
		t.Errorf("Expected stub-b, got %s", p.Name())
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Expected error for unknown backend")
	}

	names := List()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("List() not sorted: %v", names)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Platform { return stubPlatform{"stub-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("Expected panic on duplicate registration")
		}
	}()
	Register("stub-dup", func() Platform { return stubPlatform{"stub-dup"} })
}

func TestErrorUnwrap(t *testing.T) {
	inner := &Error{Op: "create window", Err: errTest}
	if inner.Unwrap() != errTest {
		t.Error("Expected Unwrap to return the wrapped error")
	}
	if inner.Error() != "platform: create window: test" {
		t.Errorf("Unexpected message: %q", inner.Error())
	}
}

type testErr string

func (e testErr) Error() string { return string(e) }

var errTest = testErr("test")
