package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/muurk/multispin/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "config.yaml")))
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestReplayKeys(t *testing.T) {
	reg := config.NewRegistry()
	preset, err := reg.Preset("time")
	if err != nil {
		t.Fatalf("Preset(time) error = %v", err)
	}
	box, err := newBox(reg, preset, "", true)
	if err != nil {
		t.Fatalf("newBox() error = %v", err)
	}

	var lines []string
	err = replayKeys(box, "up up tab 3 0 enter", false, func(line string) {
		lines = append(lines, line)
	})
	if err != nil {
		t.Fatalf("replayKeys() error = %v", err)
	}

	want := []string{
		"  values changed [1 0 0]",
		`up         "1:0:0"`,
		"  values changed [2 0 0]",
		`up         "2:0:0"`,
		`tab        "2:0:0"`,
		"  values changed [2 3 0]",
		`3          "2:3:0"`,
		"  values changed [2 30 0]",
		`0          "2:30:0"`,
		"  editing finished",
		`enter      "2:30:0"`,
	}
	if strings.Join(lines, "\n") != strings.Join(want, "\n") {
		t.Errorf("replayKeys() lines =\n%s\nwant\n%s", strings.Join(lines, "\n"), strings.Join(want, "\n"))
	}
}

func TestReplayKeysWithoutTracking(t *testing.T) {
	reg := config.NewRegistry()
	preset, _ := reg.Preset("rgb")
	box, err := newBox(reg, preset, "", false)
	if err != nil {
		t.Fatalf("newBox() error = %v", err)
	}

	var notes []string
	err = replayKeys(box, "4 2", true, func(line string) {
		if strings.HasPrefix(line, "  ") {
			notes = append(notes, line)
		}
	})
	if err != nil {
		t.Fatalf("replayKeys() error = %v", err)
	}

	want := []string{"  values changed [42 0 0]", "  editing finished"}
	if strings.Join(notes, "|") != strings.Join(want, "|") {
		t.Errorf("notifications = %q, want %q", notes, want)
	}
}

func TestReplayKeysRejectsUnknownKey(t *testing.T) {
	reg := config.NewRegistry()
	preset, _ := reg.Preset("default")
	box, err := newBox(reg, preset, "", true)
	if err != nil {
		t.Fatalf("newBox() error = %v", err)
	}

	if err := replayKeys(box, "up warp", false, func(string) {}); err == nil {
		t.Error("replayKeys() with unknown key succeeded, want error")
	}
	if box.Text() != "0.00" {
		t.Errorf("text = %q after rejected script, want untouched %q", box.Text(), "0.00")
	}
}

func TestResolvePreset(t *testing.T) {
	reg := config.NewRegistry()

	name, _, err := resolvePreset(reg, "")
	if err != nil || name != "default" {
		t.Errorf("resolvePreset(\"\") = %q, %v; want default", name, err)
	}

	reg.Preferences.DefaultPreset = "rgb"
	name, _, err = resolvePreset(reg, "")
	if err != nil || name != "rgb" {
		t.Errorf("resolvePreset(\"\") = %q, %v; want rgb", name, err)
	}

	if _, _, err := resolvePreset(reg, "nope"); !config.IsNotFoundError(err) {
		t.Errorf("resolvePreset(nope) error = %v, want not found", err)
	}
}

func TestFormatValues(t *testing.T) {
	if got := formatValues([]float64{12, 34.5, -0.25}); got != "[12 34.5 -0.25]" {
		t.Errorf("formatValues() = %q", got)
	}
	if got := formatValues(nil); got != "[]" {
		t.Errorf("formatValues(nil) = %q", got)
	}
}

func TestFormatCommand(t *testing.T) {
	out, err := execute(t, "format", "6789.125", "--decimals", "2", "--group", "--locale", "de-DE")
	if err != nil {
		t.Fatalf("format error = %v", err)
	}
	if !strings.Contains(out, "text: 6.789,13\n") {
		t.Errorf("format output = %q", out)
	}
}

func TestParseCommand(t *testing.T) {
	out, err := execute(t, "parse", "6.789,5", "--locale", "de-DE")
	if err != nil {
		t.Fatalf("parse error = %v", err)
	}
	if !strings.Contains(out, "value: 6789.5\n") {
		t.Errorf("parse output = %q", out)
	}

	out, err = execute(t, "parse", "abc", "--locale", "")
	if err == nil || !isReported(err) {
		t.Errorf("parse abc error = %v, want reported error", err)
	}
	if !strings.Contains(out, "error: Parse failed") {
		t.Errorf("parse abc output = %q", out)
	}
}

func TestPresetsShowCommand(t *testing.T) {
	out, err := execute(t, "presets", "show", "time")
	if err != nil {
		t.Fatalf("presets show error = %v", err)
	}
	if !strings.Contains(out, "text: 0:0:0\n") {
		t.Errorf("presets show output = %q", out)
	}

	_, err = execute(t, "presets", "show", "nope")
	if !config.IsNotFoundError(err) {
		t.Errorf("presets show nope error = %v, want not found", err)
	}
}
