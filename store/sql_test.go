package store

import (
	"context"
	"testing"

	_ "modernc.org/sqlite"
)

func openTestStore(t *testing.T) *SQLStore {
	t.Helper()
	st, err := OpenSQL("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("OpenSQL failed: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestSQLStoreGetAbsent(t *testing.T) {
	st := openTestStore(t)

	_, ok, err := st.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("Expected absent key to report ok=false")
	}
}

func TestSQLStoreSetGet(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	if err := st.Set(ctx, BoardKey, `[{"id":"column-1"}]`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, ok, err := st.Get(ctx, BoardKey)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok || got != `[{"id":"column-1"}]` {
		t.Errorf("Expected stored value back, got %q (ok=%v)", got, ok)
	}
}

func TestSQLStoreOverwrite(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	if err := st.Set(ctx, NextColumnIDKey, "1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := st.Set(ctx, NextColumnIDKey, "7"); err != nil {
		t.Fatalf("Second Set failed: %v", err)
	}
	got, _, err := st.Get(ctx, NextColumnIDKey)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != "7" {
		t.Errorf("Expected overwritten value '7', got %q", got)
	}
}

func TestSQLStoreKeysIndependent(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	st.Set(ctx, BoardKey, "[]")
	st.Set(ctx, NextColumnIDKey, "3")

	board, _, _ := st.Get(ctx, BoardKey)
	counter, _, _ := st.Get(ctx, NextColumnIDKey)
	if board != "[]" || counter != "3" {
		t.Errorf("Keys bled into each other: board=%q counter=%q", board, counter)
	}
}
