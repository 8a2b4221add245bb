package store

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func exerciseKV(t *testing.T, kv KV) {
	t.Helper()
	if _, err := kv.Get(KeyLanguage); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := kv.Set(KeyLanguage, []byte("fr")); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := kv.Get(KeyLanguage)
	if err != nil || string(got) != "fr" {
		t.Fatalf("expected fr, got %q %v", got, err)
	}
	if err := kv.Set(KeyLanguage, []byte("de")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if got, _ := kv.Get(KeyLanguage); string(got) != "de" {
		t.Fatalf("expected overwrite, got %q", got)
	}
	if err := kv.Remove(KeyLanguage); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := kv.Get(KeyLanguage); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after remove, got %v", err)
	}
	if err := kv.Remove(KeyLanguage); err != nil {
		t.Fatalf("removing an absent key should be a no-op: %v", err)
	}
}

func TestMemoryKV(t *testing.T) {
	exerciseKV(t, NewMemory(nil))
}

func TestMemoryKVCopiesValues(t *testing.T) {
	m := NewMemory(map[string]string{KeyTheme: "dark"})
	v, _ := m.Get(KeyTheme)
	v[0] = 'X'
	if again, _ := m.Get(KeyTheme); string(again) != "dark" {
		t.Fatalf("stored value aliased: %q", again)
	}
}

func TestDiskKV(t *testing.T) {
	base := filepath.Join(t.TempDir(), "nested", "db")
	s, err := Open(testConfig{path: base})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	exerciseKV(t, s)

	if err := s.Set(KeyTasks, []byte("[]")); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set(KeyCategories, []byte("[]")); err != nil {
		t.Fatalf("set: %v", err)
	}
	keys := s.Keys()
	sort.Strings(keys)
	if len(keys) != 2 || keys[0] != KeyCategories || keys[1] != KeyTasks {
		t.Fatalf("unexpected keys %v", keys)
	}
	if _, err := os.Stat(filepath.Join(base, KeyTasks)); err != nil {
		t.Fatalf("expected one file per key: %v", err)
	}
}

func TestDiskSeesWritesFromAnotherHandle(t *testing.T) {
	base := t.TempDir()
	a, err := Open(testConfig{path: base})
	if err != nil {
		t.Fatalf("open a: %v", err)
	}
	b, err := Open(testConfig{path: base})
	if err != nil {
		t.Fatalf("open b: %v", err)
	}

	if err := a.Set(KeyTasks, []byte("[]")); err != nil {
		t.Fatalf("set a: %v", err)
	}
	if got, _ := a.Get(KeyTasks); string(got) != "[]" {
		t.Fatalf("a: unexpected %q", got)
	}
	if err := b.Set(KeyTasks, []byte(`[{"id":"x"}]`)); err != nil {
		t.Fatalf("set b: %v", err)
	}
	if got, _ := a.Get(KeyTasks); string(got) != `[{"id":"x"}]` {
		t.Fatalf("a read stale value %q after b wrote", got)
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open(testConfig{}); err == nil {
		t.Fatalf("expected error for empty base path")
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	cfg := "path: " + filepath.Join(dir, "db") + "\nlanguage: es\nlog:\n  level: debug\n"
	if err := os.WriteFile(filepath.Join(dir, ".planner.yaml"), []byte(cfg), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("PLANNER_CONFIG_PATH", dir)

	s, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if s.BasePath() != filepath.Join(dir, "db") {
		t.Fatalf("unexpected path %q", s.BasePath())
	}
	if s.Language != "es" || s.LogLevel != "debug" {
		t.Fatalf("unexpected settings %+v", s)
	}
}
