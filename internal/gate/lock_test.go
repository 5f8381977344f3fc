package gate

import "testing"

func TestRunLock(t *testing.T) {
	dir := t.TempDir()

	first := NewRunLock(dir)
	if err := first.Acquire(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second := NewRunLock(dir)
	ok, err := second.TryAcquire()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("second lock acquired while first still held")
	}

	if err := first.Release(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ok, err = second.TryAcquire()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("lock not acquirable after release")
	}
	if err := second.Release(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
