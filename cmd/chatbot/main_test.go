package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"chatbot/internal/config"
)

// execute runs the root command with args and stdin, returning stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func tempConfig(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "config.json")
}

func TestRoot_SendsText(t *testing.T) {
	out, _, err := execute(t, "1\n5511999999999\n1\nhello\n", "--config", tempConfig(t), "--lang", "en")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "Sending message to 5511999999999 via WhatsApp: hello (") {
		t.Fatalf("missing send line:\n%s", out)
	}
}

func TestRoot_MissingConfigNotice(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		shown bool
	}{
		{"default level stays quiet", nil, false},
		{"info level reports it", []string{"--log-level", "info"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--config", tempConfig(t), "--lang", "en"}, tt.args...)
			_, stderr, err := execute(t, "9\n", args...)
			if err != nil {
				t.Fatalf("execute: %v", err)
			}
			if got := strings.Contains(stderr, "config not found"); got != tt.shown {
				t.Errorf("notice shown = %v, want %v; stderr %q", got, tt.shown, stderr)
			}
		})
	}
}

func TestRoot_InvalidSelectionExitsCleanly(t *testing.T) {
	out, _, err := execute(t, "6\n", "--config", tempConfig(t), "--lang", "en")
	if err != nil {
		t.Fatalf("invalid selection must not be an error: %v", err)
	}
	if !strings.HasSuffix(out, "Invalid social network choice.\n") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestRoot_UsesConfiguredLayoutAndLanguage(t *testing.T) {
	path := tempConfig(t)
	cfg := config.Defaults()
	cfg.General.Language = "pt"
	cfg.Display.TimeLayout = "2006"
	if err := config.Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	out, _, err := execute(t, "2\nalice\n3\nsunset\nsun.jpg\njpg\n", "--config", path)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "Escolha a rede social:") {
		t.Errorf("expected Portuguese menu:\n%s", out)
	}
	if !strings.Contains(out, "Sending message to @alice via Telegram: Photo: sun.jpg (jpg) (") {
		t.Errorf("missing send line:\n%s", out)
	}
}

func TestRoot_InvalidConfigFails(t *testing.T) {
	path := tempConfig(t)
	os.WriteFile(path, []byte(`{"general":{"logLevel":"shout"}}`), 0o644)

	if _, _, err := execute(t, "", "--config", path); err == nil {
		t.Fatal("expected error for invalid config")
	}
}

func TestRoot_LogLevelFlagValidated(t *testing.T) {
	if _, _, err := execute(t, "", "--config", tempConfig(t), "--log-level", "chatty"); err == nil {
		t.Fatal("expected error for invalid --log-level")
	}
}

func TestChannelsCmd(t *testing.T) {
	out, _, err := execute(t, "", "channels", "--config", tempConfig(t), "--lang", "en")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 channels, got %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[1], "2. Telegram") || !strings.HasSuffix(lines[1], "Enter the username") {
		t.Errorf("unexpected telegram line %q", lines[1])
	}
}

func TestTypesCmd(t *testing.T) {
	out, _, err := execute(t, "", "types", "--config", tempConfig(t), "--lang", "en")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "2. Video  text, file, format, duration") {
		t.Errorf("unexpected types output:\n%s", out)
	}
	if !strings.Contains(out, "1. Text   text\n") {
		t.Errorf("unexpected types output:\n%s", out)
	}
}

func TestConfigCmd_InitSetGet(t *testing.T) {
	path := tempConfig(t)

	if _, _, err := execute(t, "", "config", "init", "--config", path); err != nil {
		t.Fatalf("init: %v", err)
	}
	if _, _, err := execute(t, "", "config", "init", "--config", path); err == nil {
		t.Error("second init should refuse to overwrite")
	}
	if _, _, err := execute(t, "", "config", "set", "general.language", "pt", "--config", path); err != nil {
		t.Fatalf("set: %v", err)
	}
	out, _, err := execute(t, "", "config", "get", "general.language", "--config", path)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if strings.TrimSpace(out) != `"pt"` {
		t.Errorf("get = %q", out)
	}
	if _, _, err := execute(t, "", "config", "set", "general.language", "xx", "--config", path); err == nil {
		t.Error("expected validation error")
	}

	out, _, err = execute(t, "", "config", "list", "--config", path)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "general.language = pt\n") {
		t.Errorf("list output:\n%s", out)
	}
}

func TestConfigCmd_Path(t *testing.T) {
	path := tempConfig(t)
	out, _, err := execute(t, "", "config", "path", "--config", path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != path {
		t.Errorf("path = %q, want %q", out, path)
	}
}

func TestVersionCmd(t *testing.T) {
	out, _, err := execute(t, "", "version")
	if err != nil {
		t.Fatal(err)
	}
	if out != "chatbot "+version+"\n" {
		t.Errorf("version output %q", out)
	}
}
