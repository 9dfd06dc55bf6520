package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jizpi-library/fondctl/internal/util"
)

func TestEnsureDir(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b", "c")
	if err := util.EnsureDir(nested); err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}
	fi, err := os.Stat(nested)
	if err != nil {
		t.Fatalf("Stat after EnsureDir: %v", err)
	}
	if !fi.IsDir() {
		t.Error("EnsureDir path is not a directory")
	}
}

func TestEnsureDir_Existing(t *testing.T) {
	dir := t.TempDir()
	if err := util.EnsureDir(dir); err != nil {
		t.Errorf("EnsureDir on existing dir: %v", err)
	}
}
