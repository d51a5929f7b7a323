package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetAdd(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("en.xml", []byte("<ldml/>"), 0)
	if id1 != 0 {
		t.Errorf("expected first FileID to be 0, got %d", id1)
	}

	id2 := fs.Add("fr.xml", []byte("<ldml/>"), 0)
	if id2 != 1 {
		t.Errorf("expected second FileID to be 1, got %d", id2)
	}

	f := fs.Get(id1)
	if string(f.Content) != "<ldml/>" {
		t.Errorf("unexpected content: %q", f.Content)
	}
	if f.Hash == [32]byte{} {
		t.Error("expected content hash to be computed")
	}
	if fs.Len() != 2 {
		t.Errorf("Len() = %d, want 2", fs.Len())
	}
}

func TestFileSetLoadNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "en_GB.xml")
	raw := "\xEF\xBB\xBF<ldml>\r\n</ldml>\r\n"
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)

	if string(f.Content) != "<ldml>\n</ldml>\n" {
		t.Errorf("content not normalized: %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 {
		t.Error("expected FileHadBOM flag")
	}
	if f.Flags&FileNormalizedCRLF == 0 {
		t.Error("expected FileNormalizedCRLF flag")
	}
}

func TestFileBundleName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"en.xml", "en"},
		{"common/main/en_GB.xml", "en_GB"},
		{"sr_Latn_RS.xml", "sr_Latn_RS"},
		{"root.xml", "root"},
	}
	for _, tt := range tests {
		fs := NewFileSet()
		id := fs.Add(tt.path, []byte("x"), 0)
		if got := fs.Get(id).BundleName(); got != tt.want {
			t.Errorf("BundleName(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestFileSetResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.Add("en.xml", []byte("line one\nline two\n"), 0)

	start, end := fs.Resolve(Span{File: id, Start: 9, End: 13})
	if start.Line != 2 || start.Col != 1 {
		t.Errorf("start = %d:%d, want 2:1", start.Line, start.Col)
	}
	if end.Line != 2 || end.Col != 5 {
		t.Errorf("end = %d:%d, want 2:5", end.Line, end.Col)
	}
}

func TestListXMLFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"fr.xml", "en.xml", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "de.xml"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	files, err := ListXMLFiles(dir)
	if err != nil {
		t.Fatalf("ListXMLFiles: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("got %d files, want 3: %v", len(files), files)
	}
	// sorted, recursive, xml only
	want := []string{
		filepath.Join(dir, "en.xml"),
		filepath.Join(dir, "fr.xml"),
		filepath.Join(sub, "de.xml"),
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}
