package store

import (
	"path/filepath"
	"testing"
)

func testKV(t *testing.T, kv KV) {
	t.Helper()

	if _, ok, err := kv.Get("surveys"); err != nil || ok {
		t.Fatalf("Get on empty store = ok %v, err %v; want absent", ok, err)
	}

	if err := kv.Set("surveys", `[{"id":"1"}]`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	value, ok, err := kv.Get("surveys")
	if err != nil || !ok {
		t.Fatalf("Get after Set = ok %v, err %v", ok, err)
	}
	if value != `[{"id":"1"}]` {
		t.Errorf("Get = %q, want stored value", value)
	}

	// whole-value replace
	if err := kv.Set("surveys", `[]`); err != nil {
		t.Fatalf("Set replace failed: %v", err)
	}
	value, _, _ = kv.Get("surveys")
	if value != `[]` {
		t.Errorf("Get after replace = %q, want %q", value, `[]`)
	}

	if err := kv.Delete("surveys"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok, _ := kv.Get("surveys"); ok {
		t.Error("key still present after Delete")
	}

	// deleting an absent key is not an error
	if err := kv.Delete("responses_missing"); err != nil {
		t.Errorf("Delete of absent key failed: %v", err)
	}
}

func TestMemory(t *testing.T) {
	testKV(t, NewMemory())
}

func TestSQLite(t *testing.T) {
	kv, err := Open(filepath.Join(t.TempDir(), "test.sqlite"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer kv.Close()

	testKV(t, kv)
}

func TestSQLiteSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.sqlite")

	kv, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := kv.Set("surveys", `["persisted"]`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	kv.Close()

	kv, err = Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer kv.Close()

	value, ok, err := kv.Get("surveys")
	if err != nil || !ok {
		t.Fatalf("Get after reopen = ok %v, err %v", ok, err)
	}
	if value != `["persisted"]` {
		t.Errorf("Get after reopen = %q", value)
	}
}
