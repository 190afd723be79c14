package toggl

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadProjects(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	data := `[
		{"name": "Backend", "client_name": "Acme"},
		{"name": "Website", "client_name": "Globex"},
		{"name": "Internal"},
		{"client_name": "Nameless"}
	]`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := LoadProjects(path)
	if err != nil {
		t.Fatalf("LoadProjects: %v", err)
	}
	if len(m) != 3 {
		t.Errorf("got %d mappings, want 3 (nameless project dropped)", len(m))
	}
	if m.Client("Backend") != "Acme" {
		t.Errorf("Backend -> %q, want Acme", m.Client("Backend"))
	}
	if m.Client("Internal") != "" {
		t.Errorf("project without client_name should map to empty, got %q", m.Client("Internal"))
	}
}

func TestLoadProjectsMissingFile(t *testing.T) {
	if _, err := LoadProjects(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadProjectsBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	if err := os.WriteFile(path, []byte("{not an array}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadProjects(path); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
