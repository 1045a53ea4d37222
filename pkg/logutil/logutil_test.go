package logutil

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"src.conslist.dev/pkg/must"
)

func TestSetOutput(t *testing.T) {
	t.Cleanup(func() { SetOutput(io.Discard) })
	logger := GetLogger("[test] ")
	logger.Println("dropped")

	var buf bytes.Buffer
	SetOutput(&buf)
	logger.Println("kept")
	GetLogger("[late] ").Println("also kept")

	got := buf.String()
	if strings.Contains(got, "dropped") {
		t.Errorf("output contains message logged before SetOutput: %q", got)
	}
	for _, want := range []string{"[test] ", "kept", "[late] ", "also kept"} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q doesn't contain %q", got, want)
		}
	}
}

func TestSetOutputFile(t *testing.T) {
	t.Cleanup(func() { SetOutput(io.Discard) })
	fname := filepath.Join(t.TempDir(), "log")
	logger := GetLogger("[file] ")

	must.OK(SetOutputFile(fname))
	logger.Println("to file")
	must.OK(SetOutputFile(""))
	logger.Println("discarded")

	got := string(must.OK1(os.ReadFile(fname)))
	if !strings.Contains(got, "[file] ") || !strings.Contains(got, "to file") {
		t.Errorf("log file contains %q, want the logged message", got)
	}
	if strings.Contains(got, "discarded") {
		t.Errorf("log file contains message logged after SetOutputFile(\"\")")
	}
}

func TestSetOutputFile_Error(t *testing.T) {
	err := SetOutputFile(filepath.Join(t.TempDir(), "no", "such", "dir", "log"))
	if err == nil {
		t.Errorf("SetOutputFile to a nonexistent directory returned nil error")
	}
}
