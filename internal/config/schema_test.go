package config_test

import (
	"testing"

	"github.com/jizpi-library/fondctl/internal/config"
)

func TestHasStaff_Found(t *testing.T) {
	cfg := &config.Config{Staff: []string{"Dilnoza Qodirova", "Nodir Ergashev"}}
	if !cfg.HasStaff("Nodir Ergashev") {
		t.Error("HasStaff returned false for rostered staff")
	}
}

func TestHasStaff_NotFound(t *testing.T) {
	cfg := &config.Config{Staff: []string{"Dilnoza Qodirova"}}
	if cfg.HasStaff("kimdir boshqa") {
		t.Error("HasStaff returned true for unknown name")
	}
}

func TestHasStaff_Empty(t *testing.T) {
	cfg := &config.Config{}
	if cfg.HasStaff("any") {
		t.Error("HasStaff should return false with no roster")
	}
}

func TestExpandHome_Passthrough(t *testing.T) {
	if got := config.ExpandHome("/var/lib/fondctl"); got != "/var/lib/fondctl" {
		t.Errorf("ExpandHome = %q", got)
	}
}
