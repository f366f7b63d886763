package config

import "testing"

func TestGetByPath(t *testing.T) {
	cfg := Defaults()

	val, err := GetByPath(cfg, "display.timeLayout")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if val != "2006-01-02 15:04:05" {
		t.Errorf("got %v", val)
	}

	if _, err := GetByPath(cfg, "display.missing"); err == nil {
		t.Error("expected error for unknown key")
	}
	if _, err := GetByPath(cfg, "general.logLevel.deeper"); err == nil {
		t.Error("expected error when traversing into a value")
	}
}

func TestSetByPath(t *testing.T) {
	cfg := Defaults()

	if err := SetByPath(cfg, "general.language", "pt"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if cfg.General.Language != "pt" {
		t.Errorf("language = %q", cfg.General.Language)
	}

	// Numeric-looking input stays a string for string fields.
	if err := SetByPath(cfg, "display.timeLayout", "15:04"); err != nil {
		t.Fatalf("set layout: %v", err)
	}
	if cfg.Display.TimeLayout != "15:04" {
		t.Errorf("timeLayout = %q", cfg.Display.TimeLayout)
	}

	if err := SetByPath(cfg, "general.logFile", "/tmp/chatbot.log"); err != nil {
		t.Fatalf("set optional: %v", err)
	}
	if cfg.General.LogFile != "/tmp/chatbot.log" {
		t.Errorf("logFile = %q", cfg.General.LogFile)
	}
}

func TestSetByPath_Rejects(t *testing.T) {
	tests := []struct {
		path  string
		value string
	}{
		{"general.unknown", "x"},
		{"nosuch.section", "x"},
		{"general", "x"},
		{"general.language", "de"},
	}
	for _, tt := range tests {
		cfg := Defaults()
		if err := SetByPath(cfg, tt.path, tt.value); err == nil {
			t.Errorf("SetByPath(%q, %q): expected error", tt.path, tt.value)
		}
		if *cfg != *Defaults() {
			t.Errorf("SetByPath(%q) modified config on failure", tt.path)
		}
	}
}

func TestListPaths(t *testing.T) {
	paths := ListPaths(Defaults())
	for _, key := range []string{"general.logLevel", "general.language", "display.timeLayout"} {
		if _, ok := paths[key]; !ok {
			t.Errorf("missing path %s in %v", key, paths)
		}
	}
}
