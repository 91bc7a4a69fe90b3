// Package driver orchestrates checking and rewriting: it owns file loading,
// the per-line normalization loop, the parallel directory walk, and the disk
// cache. Весь вывод в консоль остаётся на стороне cmd.
package driver

import (
	"context"
	"fmt"

	"unifix/internal/norm"
	"unifix/internal/observ"
	"unifix/internal/report"
	"unifix/internal/source"
)

// Options configures a check or normalize run.
type Options struct {
	Form            norm.Form
	MaxIssues       int      // cap per file bag
	Extensions      []string // file suffixes scanned in directory mode
	EnableTimings   bool
	EnableDiskCache bool
}

// DefaultExtensions are the suffixes scanned when nothing is configured.
var DefaultExtensions = []string{".txt", ".md"}

func (o *Options) extensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions
	}
	return o.Extensions
}

func (o *Options) maxIssues() int {
	if o.MaxIssues <= 0 {
		return 100
	}
	return o.MaxIssues
}

// LineError records a line that could not be checked (malformed UTF-8).
// Файл при этом проверяется дальше.
type LineError struct {
	Line int
	Err  error
}

// FileResult holds everything the renderer needs about one checked file.
type FileResult struct {
	Path       string
	FileID     source.FileID
	Bag        *report.Bag
	LineErrors []LineError
	LoadErr    error // file could not be read at all
	FromCache  bool  // clean verdict came from the disk cache
	Timing     *observ.Report
}

// HasIssues reports whether the file needs normalization.
func (r *FileResult) HasIssues() bool {
	return r.Bag != nil && r.Bag.HasIssues()
}

// Failed reports whether the file could not be fully checked.
func (r *FileResult) Failed() bool {
	return r.LoadErr != nil || len(r.LineErrors) > 0
}

// CheckFile loads one file and checks every line against the selected form.
// Возвращает ошибку только при отмене контекста; ошибка чтения файла
// записывается в результат.
func CheckFile(ctx context.Context, path string, opts Options) (*source.FileSet, *FileResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSet()

	var timer *observ.Timer
	if opts.EnableTimings {
		timer = observ.NewTimer()
	}

	var cache *DiskCache
	if opts.EnableDiskCache {
		// кэш опциональный: не смогли открыть — просто работаем без него
		cache, _ = OpenDiskCache("unifix")
	}

	result := loadAndCheck(fileSet, path, opts, timer, cache)
	return fileSet, result, nil
}

// loadAndCheck загружает файл в fileSet и проверяет его строки.
func loadAndCheck(fileSet *source.FileSet, path string, opts Options, timer *observ.Timer, cache *DiskCache) *FileResult {
	result := &FileResult{Path: path, Bag: report.NewBag(opts.maxIssues())}

	var doneLoad func(string)
	if timer != nil {
		doneLoad = timer.Phase("load")
	}
	fileID, err := fileSet.Load(path)
	if err != nil {
		if doneLoad != nil {
			doneLoad("failed")
		}
		result.LoadErr = err
		return result
	}
	result.FileID = fileID
	if doneLoad != nil {
		doneLoad(fmt.Sprintf("%d lines", fileSet.Get(fileID).LineCount()))
	}

	checkLines(fileSet.Get(fileID), opts, timer, cache, result)
	return result
}

// checkLines прогоняет CheckLine по строкам уже загруженного файла.
func checkLines(file *source.File, opts Options, timer *observ.Timer, cache *DiskCache, result *FileResult) {
	var doneCheck func(string)
	if timer != nil {
		doneCheck = timer.Phase("check")
	}

	if cache.LookupClean(file.Hash, opts.Form) {
		result.FromCache = true
		if doneCheck != nil {
			doneCheck("clean (cached)")
		}
		finishTiming(timer, result)
		return
	}

	normalizer := norm.New(opts.Form)
	for i, line := range file.Lines {
		issue, err := normalizer.CheckLine(i+1, line)
		if err != nil {
			result.LineErrors = append(result.LineErrors, LineError{Line: i + 1, Err: err})
			continue
		}
		if issue == nil {
			continue
		}
		if !result.Bag.Add(*issue) {
			// лимит bag достигнут, дальше строки не записываем
			break
		}
	}

	if !result.Bag.HasIssues() && len(result.LineErrors) == 0 {
		// только чистые файлы попадают в кэш: для проблемных нужны детали
		_ = cache.StoreClean(file.Hash, opts.Form, file.Path)
	}

	if doneCheck != nil {
		doneCheck(fmt.Sprintf("%d issues", result.Bag.Len()))
	}
	finishTiming(timer, result)
}

func finishTiming(timer *observ.Timer, result *FileResult) {
	if timer != nil {
		rep := timer.Report()
		result.Timing = &rep
	}
}
