package app

import (
	"errors"
	"sync"
	"testing"
)

func TestSharedReleaseRunsOnce(t *testing.T) {
	calls := 0
	s := NewShared("value", func(string) error {
		calls++
		return nil
	})

	s.Retain()
	s.Retain()
	if s.Refs() != 3 {
		t.Errorf("Expected 3 refs, got %d", s.Refs())
	}

	for i := 0; i < 3; i++ {
		if err := s.Release(); err != nil {
			t.Fatalf("Release() failed: %v", err)
		}
	}

	if calls != 1 {
		t.Errorf("Expected release func to run once, ran %d times", calls)
	}
	if err := s.Release(); !errors.Is(err, ErrReleased) {
		t.Errorf("Expected ErrReleased, got %v", err)
	}
	if s.Get() != "value" {
		t.Errorf("Expected Get to return the value, got %q", s.Get())
	}
}

func TestSharedReleaseError(t *testing.T) {
	boom := errors.New("boom")
	s := NewShared(1, func(int) error { return boom })

	if err := s.Release(); !errors.Is(err, boom) {
		t.Errorf("Expected release error, got %v", err)
	}
}

func TestSharedRetainAfterReleasePanics(t *testing.T) {
	s := NewShared(1, nil)
	s.Release()

	defer func() {
		if recover() == nil {
			t.Error("Expected panic on Retain after release")
		}
	}()
	s.Retain()
}

func TestSharedConcurrent(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	s := NewShared(0, func(int) error {
		mu.Lock()
		calls++
		mu.Unlock()
		return nil
	})

	const n = 64
	for i := 0; i < n; i++ {
		s.Retain()
	}

	var wg sync.WaitGroup
	for i := 0; i < n+1; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Release()
		}()
	}
	wg.Wait()

	if calls != 1 {
		t.Errorf("Expected release func to run once, ran %d times", calls)
	}
	if s.Refs() != 0 {
		t.Errorf("Expected 0 refs, got %d", s.Refs())
	}
}
