package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}

func TestConfigInitWritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	out, err := runCLI(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read sample config: %v", err)
	}
	requireContains(t, string(data), "[translator]")
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(target, []byte("# keep"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := runCLI(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error when target exists")
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "# keep" {
		t.Fatalf("existing file was overwritten: %q", string(data))
	}
}

func TestConfigValidateHonorsConfigFlag(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	writeMinimalConfig(t, configPath)

	out, err := runCLI(t, "--config", configPath, "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, configPath)
	requireContains(t, out, "Configuration valid")
}

func TestConfigValidateReportsBadConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	body := "[captions]\nstrategy = \"telepathy\"\n"
	if err := os.WriteFile(configPath, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := runCLI(t, "--config", configPath, "config", "validate")
	if err == nil {
		t.Fatal("expected error for invalid strategy")
	}
	if !strings.Contains(err.Error(), "captions.strategy") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLanguagesListsSupportedCodes(t *testing.T) {
	out, err := runCLI(t, "languages")
	if err != nil {
		t.Fatalf("languages: %v", err)
	}
	requireContains(t, out, "es")
	requireContains(t, out, "Spanish")
	requireContains(t, out, "zh-CN")
}

func TestGenerateRejectsBadVideoReference(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	writeMinimalConfig(t, configPath)

	_, err := runCLI(t, "--config", configPath, "generate", "--video", "not a video", "--language", "es")
	if err == nil {
		t.Fatal("expected error for unparseable video reference")
	}
	if !strings.Contains(err.Error(), "unrecognized video reference") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGenerateRejectsUnknownMode(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	writeMinimalConfig(t, configPath)

	_, err := runCLI(t, "--config", configPath, "generate",
		"--video", "dQw4w9WgXcQ", "--language", "es", "--mode", "interpretive-dance")
	if err == nil {
		t.Fatal("expected error for unknown mode")
	}
	if !strings.Contains(err.Error(), "unknown mode") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRenderTableAlignsColumns(t *testing.T) {
	out := renderTable(
		[]string{"Code", "Cues"},
		[][]string{{"es", "5"}, {"pt-BR", "12"}},
		[]columnAlignment{alignLeft, alignRight},
	)
	requireContains(t, out, "pt-BR")
	requireContains(t, out, "12")
}

func writeMinimalConfig(t *testing.T, path string) {
	t.Helper()

	base := filepath.Dir(path)
	content := strings.Join([]string{
		"[server]",
		"lock_path = \"\"",
		"[translator]",
		"api_key = \"test-key\"",
		"[history]",
		"enabled = false",
		"path = \"" + filepath.ToSlash(filepath.Join(base, "history.db")) + "\"",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
