package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/pnladl/internal/domain"
)

func mkdirs(t *testing.T, dirs ...string) {
	t.Helper()
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", d, err)
		}
	}
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("pnladl: {}\n"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestFindRoot(t *testing.T) {
	t.Setenv(EnvWorkspace, "")

	cases := []struct {
		name   string
		marker string
		start  string
	}{
		{"yaml marker from nested dir", "pnladl.yaml", "messages/inbox"},
		{"yml marker", "pnladl.yml", "flights"},
		{"start is a file", "pnladl.yaml", "messages/sample.pnl"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			root := filepath.Join(t.TempDir(), "ws")
			mkdirs(t, filepath.Join(root, "messages", "inbox"), filepath.Join(root, "flights"))
			touch(t, filepath.Join(root, c.marker))
			touch(t, filepath.Join(root, "messages", "sample.pnl"))

			got, err := NewFinder().FindRoot(filepath.Join(root, c.start))
			if err != nil {
				t.Fatalf("FindRoot error: %v", err)
			}
			if got != root {
				t.Fatalf("expected root=%s, got=%s", root, got)
			}
		})
	}
}

func TestFindRoot_SkipsDirectoryNamedLikeConfig(t *testing.T) {
	t.Setenv(EnvWorkspace, "")
	root := filepath.Join(t.TempDir(), "ws")
	nested := filepath.Join(root, "team")
	mkdirs(t, filepath.Join(nested, "pnladl.yaml"))
	touch(t, filepath.Join(root, "pnladl.yaml"))

	got, err := NewFinder().FindRoot(nested)
	if err != nil {
		t.Fatalf("FindRoot error: %v", err)
	}
	if got != root {
		t.Fatalf("expected outer root=%s, got=%s", root, got)
	}
}

func TestFindRoot_NotFoundCarriesStartDir(t *testing.T) {
	t.Setenv(EnvWorkspace, "")
	start := filepath.Join(t.TempDir(), "a", "b")
	mkdirs(t, start)

	_, err := NewFinder().FindRoot(start)
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got: %v", err)
	}
	var oe *domain.OpError
	if !errors.As(err, &oe) || oe.Path != start {
		t.Fatalf("expected start dir in error, got: %v", err)
	}
}

func TestFindRoot_EnvPinsWorkspace(t *testing.T) {
	pinned := t.TempDir()
	touch(t, filepath.Join(pinned, "pnladl.yaml"))
	t.Setenv(EnvWorkspace, pinned)

	got, err := NewFinder().FindRoot(t.TempDir())
	if err != nil {
		t.Fatalf("FindRoot error: %v", err)
	}
	if got != pinned {
		t.Fatalf("expected pinned root=%s, got=%s", pinned, got)
	}

	t.Setenv(EnvWorkspace, t.TempDir())
	if _, err := NewFinder().FindRoot(pinned); !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound for pinned dir without config, got: %v", err)
	}
}

func TestConfigPath_PrefersYAML(t *testing.T) {
	root := t.TempDir()
	if _, ok := ConfigPath(root); ok {
		t.Fatalf("expected no config in empty dir")
	}
	touch(t, filepath.Join(root, "pnladl.yml"))
	touch(t, filepath.Join(root, "pnladl.yaml"))

	p, ok := ConfigPath(root)
	if !ok || filepath.Base(p) != "pnladl.yaml" {
		t.Fatalf("expected pnladl.yaml, got %q ok=%v", p, ok)
	}
}
