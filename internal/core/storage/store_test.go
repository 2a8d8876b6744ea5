package storage

import (
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func TestStore(t *testing.T) {
	store, err := Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	// Absent key
	if _, ok, err := store.GetItem("recentScans"); err != nil || ok {
		t.Fatalf("expected absent key, got ok=%v err=%v", ok, err)
	}

	if err := store.SetItem("recentScans", "[]"); err != nil {
		t.Fatal(err)
	}
	v, ok, err := store.GetItem("recentScans")
	if err != nil {
		t.Fatal(err)
	}
	if !ok || v != "[]" {
		t.Errorf("got (%q, %v), want (\"[]\", true)", v, ok)
	}

	// Overwrite
	if err := store.SetItem("recentScans", `[{"url":"a"}]`); err != nil {
		t.Fatal(err)
	}
	v, _, _ = store.GetItem("recentScans")
	if v != `[{"url":"a"}]` {
		t.Errorf("overwrite: got %q", v)
	}

	// Remove
	if err := store.RemoveItem("recentScans"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := store.GetItem("recentScans"); ok {
		t.Error("expected key removed")
	}
	if err := store.RemoveItem("recentScans"); err != nil {
		t.Errorf("removing absent key: %v", err)
	}
}

func TestStore_Update(t *testing.T) {
	store, err := Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	err = store.Update("counter", func(old string, ok bool) (string, error) {
		if ok {
			t.Errorf("expected absent key on first update, got %q", old)
		}
		return "1", nil
	})
	if err != nil {
		t.Fatal(err)
	}

	err = store.Update("counter", func(old string, ok bool) (string, error) {
		if !ok || old != "1" {
			t.Errorf("got (%q, %v), want (\"1\", true)", old, ok)
		}
		return old + "2", nil
	})
	if err != nil {
		t.Fatal(err)
	}

	v, _, _ := store.GetItem("counter")
	if v != "12" {
		t.Errorf("got %q, want 12", v)
	}
}

func TestStore_UpdateErrorWritesNothing(t *testing.T) {
	store, err := Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	store.SetItem("k", "before")

	boom := errors.New("boom")
	err = store.Update("k", func(string, bool) (string, error) {
		return "after", boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	v, _, _ := store.GetItem("k")
	if v != "before" {
		t.Errorf("value changed on failed update: %q", v)
	}
}

func TestStore_PersistsToDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "storage.db")

	store, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.SetItem("k", "v"); err != nil {
		t.Fatal(err)
	}
	store.Close()

	reopened, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()

	v, ok, err := reopened.GetItem("k")
	if err != nil {
		t.Fatal(err)
	}
	if !ok || v != "v" {
		t.Errorf("got (%q, %v) after reopen, want (\"v\", true)", v, ok)
	}
}

func TestOpen_FilePragmas(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "storage.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	var mode string
	if err := store.db.QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatal(err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want wal", mode)
	}

	var timeout int
	if err := store.db.QueryRow("PRAGMA busy_timeout").Scan(&timeout); err != nil {
		t.Fatal(err)
	}
	if timeout != busyTimeoutMS {
		t.Errorf("busy_timeout = %d, want %d", timeout, busyTimeoutMS)
	}
}

func TestStore_UpdateWaitsForOtherWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.db")

	tui, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer tui.Close()
	cli, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer cli.Close()

	locked := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- tui.Update("k", func(old string, ok bool) (string, error) {
			close(locked)
			<-release
			return old + "a", nil
		})
	}()

	<-locked
	time.AfterFunc(200*time.Millisecond, func() { close(release) })

	err = cli.Update("k", func(old string, ok bool) (string, error) {
		return old + "b", nil
	})
	if err != nil {
		t.Fatalf("second writer failed instead of waiting: %v", err)
	}
	if err := <-done; err != nil {
		t.Fatalf("first writer failed: %v", err)
	}

	v, _, err := cli.GetItem("k")
	if err != nil {
		t.Fatal(err)
	}
	if v != "ab" {
		t.Errorf("value = %q, want both writes applied in order", v)
	}
}
