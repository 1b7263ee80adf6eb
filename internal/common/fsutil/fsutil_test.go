package fsutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	if got, err := ExpandHome("/tmp"); err != nil || got != "/tmp" {
		t.Fatalf("got %q err=%v", got, err)
	}
	if got, err := ExpandHome(""); err != nil || got != "" {
		t.Fatalf("got %q err=%v", got, err)
	}
	if got, err := ExpandHome("~"); err != nil || got != home {
		t.Fatalf("got %q err=%v", got, err)
	}
	if got, err := ExpandHome("~/policy.yaml"); err != nil || got != filepath.Join(home, "policy.yaml") {
		t.Fatalf("got %q err=%v", got, err)
	}
}

func TestResolve(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	dir := t.TempDir()

	if got, _ := Resolve(dir, "policy.yaml"); got != filepath.Join(dir, "policy.yaml") {
		t.Fatalf("relative: %q", got)
	}
	abs := filepath.Join(dir, "abs.yaml")
	if got, _ := Resolve("/elsewhere", abs); got != abs {
		t.Fatalf("absolute: %q", got)
	}
	if got, _ := Resolve(dir, "~/p.toml"); got != filepath.Join(home, "p.toml") {
		t.Fatalf("home: %q", got)
	}
	if got, _ := Resolve("", "p.json"); got != "p.json" {
		t.Fatalf("no dir: %q", got)
	}
	if got, _ := Resolve(dir, ""); got != "" {
		t.Fatalf("empty: %q", got)
	}
}

func TestIsFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "f")
	if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !IsFile(p) || IsFile(dir) || IsFile(filepath.Join(dir, "missing")) {
		t.Fatalf("IsFile mismatch")
	}
	if !IsDir(dir) || IsDir(p) || IsDir(filepath.Join(dir, "missing")) {
		t.Fatalf("IsDir mismatch")
	}
	_, err := os.Stat(filepath.Join(dir, "missing"))
	if !IsNotExist(err) || IsNotExist(errors.New("other")) {
		t.Fatalf("IsNotExist mismatch")
	}
}
