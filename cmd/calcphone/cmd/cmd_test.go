package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/calcphone/pkg/calc"
)

type result struct {
	stdout, stderr string
	err            error
}

func runCLI(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	var out, errOut bytes.Buffer
	env := &Env{Stdin: strings.NewReader(stdin), Stdout: &out, Stderr: &errOut}
	err := ExecuteArgs(args, env)
	return result{stdout: out.String(), stderr: errOut.String(), err: err}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "calcphone.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestEval(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"chain", []string{"2", "+", "3", "x", "4", "="}, "20\n"},
		{"number words", []string{"12.5", "*", "2", "="}, "25\n"},
		{"one argument", []string{"0.1 + 0.2 ="}, "0.3\n"},
		{"percent", []string{"50", "%"}, "0.5\n"},
		{"dash separator", []string{"--", "9", "-", "12", "="}, "-3\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := runCLI(t, "", append([]string{"eval"}, tt.args...)...)
			if r.err != nil {
				t.Fatalf("eval: %v (stderr %q)", r.err, r.stderr)
			}
			if r.stdout != tt.want {
				t.Errorf("stdout = %q, want %q", r.stdout, tt.want)
			}
		})
	}
}

func TestEvalTrace(t *testing.T) {
	r := runCLI(t, "", "eval", "--trace", "5", "/", "0", "=", "7")
	if r.err != nil {
		t.Fatal(r.err)
	}
	want := "5   5\n÷   5\n0   0\n=   Error\n7   7\n"
	if r.stdout != want {
		t.Errorf("stdout = %q, want %q", r.stdout, want)
	}
	if !strings.Contains(r.stderr, "[calc error] calc.Equals: division by zero") {
		t.Errorf("stderr = %q, want the division by zero report", r.stderr)
	}
}

func TestEvalVerboseReport(t *testing.T) {
	r := runCLI(t, "", "--verbose", "eval", "1", "/", "0", "=")
	if r.err != nil {
		t.Fatal(r.err)
	}
	if !strings.Contains(r.stderr, "[arithmetic]") {
		t.Errorf("stderr = %q, want verbose report", r.stderr)
	}
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"unknown key", []string{"eval", "1", "sqrt"}, `cannot parse "sqrt"`},
		{"no keys", []string{"eval"}, "no keys given"},
		{"only trace", []string{"eval", "--trace"}, "no keys given"},
		{"signed number", []string{"eval", "-5"}, `cannot parse "-5"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := runCLI(t, "", tt.args...)
			if r.err == nil || !strings.Contains(r.err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want containing %q", r.err, tt.wantErr)
			}
			if !strings.HasPrefix(r.stderr, "Error: ") {
				t.Errorf("stderr = %q, want an Error: line", r.stderr)
			}
			if r.stdout != "" {
				t.Errorf("stdout = %q, want nothing", r.stdout)
			}
		})
	}
}

func TestEvalWithConfig(t *testing.T) {
	path := writeConfig(t, "engine:\n  error_marker: Hiba\n")
	r := runCLI(t, "", "--config", path, "eval", "1", "÷", "0", "=")
	if r.err != nil {
		t.Fatal(r.err)
	}
	if r.stdout != "Hiba\n" {
		t.Errorf("stdout = %q, want %q", r.stdout, "Hiba\n")
	}

	r = runCLI(t, "", "--config="+path, "eval", "7")
	if r.err != nil || r.stdout != "7\n" {
		t.Errorf("--config= form: stdout %q, err %v", r.stdout, r.err)
	}
}

func TestEvalBadConfig(t *testing.T) {
	path := writeConfig(t, "engine:\n  error_marker: \"12\"\n")
	r := runCLI(t, "", "--config", path, "eval", "1")
	if r.err == nil || !strings.Contains(r.err.Error(), "failed to load config") {
		t.Errorf("error = %v, want config failure", r.err)
	}
}

func TestRun(t *testing.T) {
	stdin := "2 + 3\n× 4 =\nbogus 1\n\nQ\n9\n"
	r := runCLI(t, stdin, "run")
	if r.err != nil {
		t.Fatal(r.err)
	}
	if r.stdout != "3\n20\n" {
		t.Errorf("stdout = %q, want %q", r.stdout, "3\n20\n")
	}
	if !strings.Contains(r.stderr, `cannot parse "bogus"`) {
		t.Errorf("stderr = %q, want rejected line", r.stderr)
	}
}

func TestRunUntilEOF(t *testing.T) {
	r := runCLI(t, "1 .\n5 %\n", "run")
	if r.err != nil {
		t.Fatal(r.err)
	}
	if r.stdout != "1.\n0.015\n" {
		t.Errorf("stdout = %q", r.stdout)
	}
}

func TestRunRejectsArguments(t *testing.T) {
	if r := runCLI(t, "", "run", "extra"); r.err == nil {
		t.Error("run with arguments should fail")
	}
}

func TestKeys(t *testing.T) {
	r := runCLI(t, "", "keys")
	if r.err != nil {
		t.Fatal(r.err)
	}
	lines := strings.Split(strings.TrimSuffix(r.stdout, "\n"), "\n")
	if len(lines) != len(calc.Keypad()) {
		t.Fatalf("got %d lines, want %d", len(lines), len(calc.Keypad()))
	}
	if want := "[ AC ][ ±  ][ %  ][ ÷  ]"; lines[0] != want {
		t.Errorf("first row = %q, want %q", lines[0], want)
	}
	if want := "[ 0  ][ .  ][ =  ]"; lines[4] != want {
		t.Errorf("last row = %q, want %q", lines[4], want)
	}
}

func TestInfo(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/pocket\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "calcphone.yaml")
	if err := os.WriteFile(path, []byte("app:\n  version: \"2.0\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := runCLI(t, "", "info", "--config", path)
	if r.err != nil {
		t.Fatal(r.err)
	}
	want := "App:          pocket (com.example.pocket)\n" +
		"Version:      2.0\n" +
		"Module:       example.com/pocket\n" +
		"Error marker: Error\n"
	if r.stdout != want {
		t.Errorf("stdout = %q, want %q", r.stdout, want)
	}
}

func TestGlobalFlags(t *testing.T) {
	r := runCLI(t, "", "--version")
	if r.err != nil || !strings.HasPrefix(r.stdout, "calcphone version "+Version) {
		t.Errorf("--version: stdout %q, err %v", r.stdout, r.err)
	}

	r = runCLI(t, "")
	if r.err != nil || !strings.Contains(r.stdout, "Commands:") {
		t.Errorf("no args: stdout %q, err %v", r.stdout, r.err)
	}
	for _, name := range []string{"eval", "run", "keys", "info"} {
		if !strings.Contains(r.stdout, "  "+name+" ") {
			t.Errorf("help should list %q", name)
		}
	}

	r = runCLI(t, "", "eval", "--help")
	if r.err != nil || !strings.Contains(r.stdout, "calcphone eval [--trace] KEY...") {
		t.Errorf("eval --help: stdout %q, err %v", r.stdout, r.err)
	}

	r = runCLI(t, "", "--config")
	if r.err == nil || !strings.Contains(r.err.Error(), "requires a file path") {
		t.Errorf("--config without value: err %v", r.err)
	}
}

func TestUnknownCommand(t *testing.T) {
	r := runCLI(t, "", "launch")
	if r.err == nil || r.err.Error() != "unknown command: launch" {
		t.Errorf("error = %v", r.err)
	}
	if !strings.Contains(r.stderr, "Usage:") {
		t.Errorf("stderr should include usage, got %q", r.stderr)
	}
}

func TestParseInput(t *testing.T) {
	events, err := parseInput([]string{"12.5", "+/-", "3 ="})
	if err != nil {
		t.Fatal(err)
	}
	var labels []string
	for _, ev := range events {
		labels = append(labels, ev.Label())
	}
	if got, want := strings.Join(labels, " "), "1 2 . 5 ± 3 ="; got != want {
		t.Errorf("labels = %q, want %q", got, want)
	}
}
