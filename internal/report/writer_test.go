package report

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileCreatesDirsAndContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "sleeper_log.html")

	if err := WriteFile(path, "<html>report</html>"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected file to exist, got %v", err)
	}
	if string(content) != "<html>report</html>" {
		t.Fatalf("unexpected content %q", content)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatal("expected temp file to be renamed away")
	}
}

func TestWriteFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")

	if err := WriteFile(path, "first"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := WriteFile(path, "second"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	content, _ := os.ReadFile(path)
	if string(content) != "second" {
		t.Fatalf("expected overwrite, got %q", content)
	}
}

func TestWriteFileRequiresPath(t *testing.T) {
	if err := WriteFile("", "content"); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestTextPathFor(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"sleeper_log.html", "sleeper_log.txt"},
		{"out/report.html", "out/report.txt"},
		{"report", "report.txt"},
	}

	for _, tc := range cases {
		if got := TextPathFor(tc.in); got != tc.want {
			t.Fatalf("TextPathFor(%q): expected %q, got %q", tc.in, got, tc.want)
		}
	}
}
