package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
)

func TestStore_LoadMissingReturnsDefault(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(filepath.Join(dir, "config.json"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	cfg, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Version != CurrentVersion {
		t.Fatalf("Version=%d want %d", cfg.Version, CurrentVersion)
	}
}

func TestStore_SaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(filepath.Join(dir, "config.json"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	in := Config{
		Version:       CurrentVersion,
		RunsDir:       "/data/runs",
		ScenarioTitle: "Pick scenarios",
	}

	if err := store.Save(in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out.Version != CurrentVersion {
		t.Fatalf("Version=%d want %d", out.Version, CurrentVersion)
	}
	if out != in {
		t.Fatalf("round trip mismatch: %#v", out)
	}
	info, err := os.Stat(store.Path())
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if runtime.GOOS != "windows" && info.Mode().Perm() != 0o600 {
		t.Fatalf("mode=%v want 0600", info.Mode().Perm())
	}
}

func TestStore_UpdateIsSerialized(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(filepath.Join(dir, "config.json"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	const n = 25
	var wg sync.WaitGroup
	errCh := make(chan error, n)
	wg.Add(n)
	for i := 0; i < n; i++ {
		i := i
		go func() {
			defer wg.Done()
			errCh <- store.Update(func(cfg *Config) error {
				cfg.RunTitle += fmt.Sprintf("%02d;", i)
				return nil
			})
		}()
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
	}

	cfg, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := strings.Count(cfg.RunTitle, ";"); got != n {
		t.Fatalf("updates applied=%d want %d", got, n)
	}
}

func TestStore_ErrorPaths(t *testing.T) {
	t.Run("Load rejects invalid JSON", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.json")
		if err := os.WriteFile(path, []byte("{"), 0o600); err != nil {
			t.Fatalf("write config: %v", err)
		}
		store, err := NewStore(path)
		if err != nil {
			t.Fatalf("NewStore: %v", err)
		}
		if _, err := store.Load(); err == nil {
			t.Fatalf("expected parse error")
		}
	})

	t.Run("Load rejects unsupported version", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.json")
		if err := os.WriteFile(path, []byte(`{"version":999}`), 0o600); err != nil {
			t.Fatalf("write config: %v", err)
		}
		store, err := NewStore(path)
		if err != nil {
			t.Fatalf("NewStore: %v", err)
		}
		if _, err := store.Load(); err == nil {
			t.Fatalf("expected version error")
		}
	})

	t.Run("Save rejects unsupported version", func(t *testing.T) {
		dir := t.TempDir()
		store, err := NewStore(filepath.Join(dir, "config.json"))
		if err != nil {
			t.Fatalf("NewStore: %v", err)
		}
		if err := store.Save(Config{Version: CurrentVersion + 1}); err == nil {
			t.Fatalf("expected save version error")
		}
	})

	t.Run("Update propagates callback error", func(t *testing.T) {
		dir := t.TempDir()
		store, err := NewStore(filepath.Join(dir, "config.json"))
		if err != nil {
			t.Fatalf("NewStore: %v", err)
		}
		if err := store.Update(func(cfg *Config) error {
			cfg.Version = CurrentVersion
			return fmt.Errorf("boom")
		}); err == nil {
			t.Fatalf("expected callback error")
		}
	})
}

func TestNewStoreDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvConfigPath, "")
	switch runtime.GOOS {
	case "windows":
		t.Setenv("APPDATA", dir)
	case "darwin":
		t.Setenv("HOME", dir)
	default:
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	base, err := os.UserConfigDir()
	if err != nil {
		t.Fatalf("UserConfigDir error: %v", err)
	}
	store, err := NewStore("")
	if err != nil {
		t.Fatalf("NewStore error: %v", err)
	}
	want := filepath.Join(base, "skill-eval", "config.json")
	if store.Path() != want {
		t.Fatalf("expected path %q, got %q", want, store.Path())
	}
}

func TestNewStoreEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom", "cfg.json")
	t.Setenv(EnvConfigPath, path)
	store, err := NewStore("")
	if err != nil {
		t.Fatalf("NewStore error: %v", err)
	}
	if store.Path() != path {
		t.Fatalf("expected path %q, got %q", path, store.Path())
	}
}

func TestStore_LoadMissingLeavesNoFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	store, err := NewStore(filepath.Join(dir, "config.json"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if _, err := store.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Fatalf("expected config dir to stay absent, got %v", err)
	}
}

func TestStore_SetCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	store, err := NewStore(path)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if err := store.Set(KeyScenariosDir, "/data/scenarios"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Set("bogus", "x"); err == nil {
		t.Fatalf("expected unknown key error")
	}
	cfg, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ScenariosDir != "/data/scenarios" {
		t.Fatalf("ScenariosDir=%q", cfg.ScenariosDir)
	}
}
