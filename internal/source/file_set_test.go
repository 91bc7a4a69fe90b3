package source

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestFileSetLoadSplitsLinesAndSetsFlags(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "doc.txt")
	if err := os.WriteFile(path, []byte("\xEF\xBB\xBFfirst\r\nsecond\r\n"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	fileSet := NewFileSetWithBase(tmp)
	id, err := fileSet.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	file := fileSet.Get(id)
	if !reflect.DeepEqual(file.Lines, []string{"first", "second"}) {
		t.Fatalf("unexpected lines: %#v", file.Lines)
	}
	if file.Flags&FileHadBOM == 0 {
		t.Error("expected FileHadBOM flag")
	}
	if file.Flags&FileNormalizedCRLF == 0 {
		t.Error("expected FileNormalizedCRLF flag")
	}
	if file.LineCount() != 2 {
		t.Errorf("expected 2 lines, got %d", file.LineCount())
	}
}

func TestFileSetLoadMissingFile(t *testing.T) {
	fileSet := NewFileSet()
	_, err := fileSet.Load(filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
	if fileSet.Len() != 0 {
		t.Fatalf("failed load must not register a file, len=%d", fileSet.Len())
	}
}

func TestFileSetDigestTracksContent(t *testing.T) {
	fileSet := NewFileSet()
	a := fileSet.AddVirtual("a", []byte("same"))
	b := fileSet.AddVirtual("b", []byte("same"))
	c := fileSet.AddVirtual("c", []byte("different"))

	if fileSet.Get(a).Hash != fileSet.Get(b).Hash {
		t.Error("identical content must share the digest")
	}
	if fileSet.Get(a).Hash == fileSet.Get(c).Hash {
		t.Error("different content must not share the digest")
	}
	if fileSet.Get(a).Flags&FileVirtual == 0 {
		t.Error("AddVirtual must set FileVirtual")
	}
}

func TestFileSetGetByPath(t *testing.T) {
	fileSet := NewFileSet()
	fileSet.AddVirtual("dir/x.txt", []byte("hi"))

	if _, ok := fileSet.GetByPath("dir/x.txt"); !ok {
		t.Fatal("expected to find file by path")
	}
	if _, ok := fileSet.GetByPath("dir/y.txt"); ok {
		t.Fatal("unexpected hit for unknown path")
	}
}
