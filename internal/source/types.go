package source

type (
	// FileID uniquely identifies a text file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about how a file was loaded.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin).
	FileVirtual FileFlags = 1 << iota
	// FileHadBOM indicates a UTF-8 BOM was stripped on load.
	FileHadBOM
	// FileNormalizedCRLF indicates CRLF terminators were folded to LF.
	FileNormalizedCRLF
)

// Digest is the sha256 of a file's (already line-ending-normalized) content.
// Ключ дискового кэша.
type Digest [32]byte

// File captures one loaded text file, split into lines for checking.
type File struct {
	ID    FileID
	Path  string
	Lines []string // without terminators; index 0 is line 1
	Hash  Digest
	Flags FileFlags
}

// LineCount returns the number of logical lines in the file.
func (f *File) LineCount() int {
	return len(f.Lines)
}
