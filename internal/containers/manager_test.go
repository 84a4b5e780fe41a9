package containers

import (
	"sync"
	"testing"
)

func TestNewManager_Default(t *testing.T) {
	m := NewManager()
	if got := m.MaxLookupRadius(); got != DefaultMaxLookupRadius {
		t.Errorf("expected default radius %v, got %v", DefaultMaxLookupRadius, got)
	}
}

func TestManager_SetMaxLookupRadius(t *testing.T) {
	m := NewManager()
	m.SetMaxLookupRadius(12345)
	if got := m.MaxLookupRadius(); got != 12345 {
		t.Errorf("expected radius 12345, got %v", got)
	}
}

func TestManager_ConcurrentReaders(t *testing.T) {
	m := NewManager()
	m.SetMaxLookupRadius(500)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := m.MaxLookupRadius(); got != 500 {
				t.Errorf("expected radius 500, got %v", got)
			}
		}()
	}
	wg.Wait()
}
