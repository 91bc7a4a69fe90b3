package reportfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto chooses a path relative to the scan base.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
)

// PrettyOpts configures human-readable output.
type PrettyOpts struct {
	Color       bool
	PathMode    PathMode
	MaxDetailed int // issues rendered in full per file, остальное сводкой; 0 = дефолт 10
	ShowHex     bool
}

// JSONOpts configures JSON output.
type JSONOpts struct {
	PathMode       PathMode
	IncludeChanges bool // per-position differences, не только строки
	IncludeTimings bool
}

// defaultMaxDetailed ограничивает подробный вывод первыми 10 issues.
const defaultMaxDetailed = 10

func (o PrettyOpts) maxDetailed() int {
	if o.MaxDetailed <= 0 {
		return defaultMaxDetailed
	}
	return o.MaxDetailed
}
