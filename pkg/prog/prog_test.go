package prog

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"src.conslist.dev/pkg/logutil"
	"src.conslist.dev/pkg/must"
)

type result struct {
	exit           int
	stdout, stderr string
}

// runProg runs the program with the given stdin and arguments, not including
// the program name.
func runProg(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	in := openStdin(t, stdin)
	r1, w1 := must.Pipe()
	r2, w2 := must.Pipe()
	exit := Run([3]*os.File{in, w1, w2}, append([]string{"conslist"}, args...))
	w1.Close()
	w2.Close()
	stdout := string(must.OK1(io.ReadAll(r1)))
	stderr := string(must.OK1(io.ReadAll(r2)))
	r1.Close()
	r2.Close()
	return result{exit, stdout, stderr}
}

// openStdin returns a file with the given content, closed when the test
// finishes.
func openStdin(t *testing.T, content string) *os.File {
	t.Helper()
	name := filepath.Join(t.TempDir(), "stdin")
	must.OK(os.WriteFile(name, []byte(content), 0600))
	in := must.OK1(os.Open(name))
	t.Cleanup(func() { in.Close() })
	return in
}

func TestRun_Ops(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"no op", "[1, 2, 3]", nil, "[1 2 3]\n"},
		{"empty input", "", nil, "[]\n"},
		{"null input", "null", nil, "[]\n"},
		{"block sequence", "- a\n- b\n", nil, "[a b]\n"},
		{"reverse", "[1, 2, 3, 4, 5]", []string{"reverse"}, "[5 4 3 2 1]\n"},
		{"pop", "[1, 2, 3, 4, 5]", []string{"pop"}, "[2 3 4 5]\n"},
		{"pop on empty", "[]", []string{"pop", "pop"}, "[]\n"},
		{"tail", "[1, 2, 3]", []string{"tail"}, "[2 3]\n"},
		{"tail on empty", "[]", []string{"tail"}, "[]\n"},
		{"next", "[1, 2, 3]", []string{"next", "next"}, "[3]\n"},
		{"prepend", "[2, 3]", []string{"prepend:1"}, "[1 2 3]\n"},
		{"prepend string", "[]", []string{"prepend:foo", "prepend:bar"}, "[bar foo]\n"},
		{"chain", "[a, b, c]", []string{"pop", "prepend:z", "reverse"}, "[c b z]\n"},
		{"strings", "[a, b]", nil, "[a b]\n"},
		{"string with space", "[]", []string{`prepend:"a b"`}, "[\"a b\"]\n"},
		{"empty string", "['', x]", nil, "[\"\" x]\n"},
		{"null element", "[]", []string{"prepend:~"}, "[<nil>]\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := runProg(t, test.stdin, test.args...)
			if r.exit != 0 {
				t.Errorf("exit %d, stderr %q", r.exit, r.stderr)
			}
			if r.stdout != test.want {
				t.Errorf("stdout %q, want %q", r.stdout, test.want)
			}
		})
	}
}

func TestRun_OutputFormats(t *testing.T) {
	r := runProg(t, "[1, two, {k: v}]", "-json", "reverse")
	if want := `[{"k":"v"},"two",1]` + "\n"; r.stdout != want {
		t.Errorf("-json: stdout %q, want %q", r.stdout, want)
	}

	r = runProg(t, "[1, 2]", "-yaml", "prepend:0")
	if want := "- 0\n- 1\n- 2\n"; r.stdout != want {
		t.Errorf("-yaml: stdout %q, want %q", r.stdout, want)
	}

	r = runProg(t, "[]", "-json")
	if want := "[]\n"; r.stdout != want {
		t.Errorf("-json on empty list: stdout %q, want %q", r.stdout, want)
	}
}

func TestRun_JSONInput(t *testing.T) {
	r := runProg(t, `["a", "b", "c"]`, "-json", "tail")
	if want := `["b","c"]` + "\n"; r.stdout != want {
		t.Errorf("stdout %q, want %q", r.stdout, want)
	}
}

func TestRun_BadUsage(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantStderr string
	}{
		{"bad flag", []string{"-bad-flag"}, "flag provided but not defined: -bad-flag\nUsage:"},
		{"-h", []string{"-h"}, "flag provided but not defined: -h\nUsage:"},
		{"unknown op", []string{"sort"}, "unknown op \"sort\"\nUsage:"},
		{"missing argument", []string{"prepend"}, "op prepend requires an argument"},
		{"extra argument", []string{"pop:1"}, "op pop takes no argument"},
		{"both formats", []string{"-json", "-yaml"}, "mutually exclusive"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := runProg(t, "[1]", test.args...)
			if r.exit != 2 {
				t.Errorf("exit %d, want 2", r.exit)
			}
			if !strings.Contains(r.stderr, test.wantStderr) {
				t.Errorf("stderr %q, want it to contain %q", r.stderr, test.wantStderr)
			}
			if r.stdout != "" {
				t.Errorf("stdout %q, want empty", r.stdout)
			}
		})
	}
}

func TestRun_BadInput(t *testing.T) {
	for _, stdin := range []string{"a: 1", "42", "[1, [2"} {
		r := runProg(t, stdin)
		if r.exit != 2 {
			t.Errorf("input %q: exit %d, want 2", stdin, r.exit)
		}
		if !strings.HasPrefix(r.stderr, "cannot read input: ") {
			t.Errorf("input %q: stderr %q", stdin, r.stderr)
		}
		if strings.Contains(r.stderr, "Usage:") {
			t.Errorf("input %q: stderr contains usage", stdin)
		}
	}
}

func TestRun_BadPrependValue(t *testing.T) {
	r := runProg(t, "[]", "prepend:[unterminated")
	if r.exit != 2 || !strings.Contains(r.stderr, "prepend: bad value") {
		t.Errorf("got exit %d, stderr %q", r.exit, r.stderr)
	}
}

func TestRun_EmptyPrependValue(t *testing.T) {
	for _, arg := range []string{"prepend:", "prepend:  "} {
		r := runProg(t, "[1]", arg)
		if r.exit != 2 || !strings.Contains(r.stderr, "prepend: empty value") {
			t.Errorf("%s: got exit %d, stderr %q", arg, r.exit, r.stderr)
		}
		if r.stdout != "" {
			t.Errorf("%s: stdout %q, want empty", arg, r.stdout)
		}
	}
}

func TestRun_Help(t *testing.T) {
	r := runProg(t, "", "-help")
	if r.exit != 0 {
		t.Errorf("exit %d, want 0", r.exit)
	}
	for _, want := range []string{"Usage: conslist [flags] op...", "prepend:VALUE", "-json"} {
		if !strings.Contains(r.stdout, want) {
			t.Errorf("stdout %q doesn't contain %q", r.stdout, want)
		}
	}
}

func TestRun_Log(t *testing.T) {
	t.Cleanup(func() { logutil.SetOutput(io.Discard) })
	logName := filepath.Join(t.TempDir(), "log")

	r := runProg(t, "[1, 2]", "-log", logName, "pop", "pop", "pop")
	if r.exit != 0 {
		t.Fatalf("exit %d, stderr %q", r.exit, r.stderr)
	}
	logged := string(must.OK1(os.ReadFile(logName)))
	for _, want := range []string{"[prog] ", "read list of 2 elements", "popped 1", "popped 2", "pop on empty list"} {
		if !strings.Contains(logged, want) {
			t.Errorf("log %q doesn't contain %q", logged, want)
		}
	}
}
