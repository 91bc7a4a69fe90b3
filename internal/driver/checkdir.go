package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"unifix/internal/observ"
	"unifix/internal/report"
	"unifix/internal/source"
)

// listTextFiles возвращает отсортированный список файлов с подходящими
// расширениями внутри директории.
func listTextFiles(dir string, extensions []string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		for _, ext := range extensions {
			if strings.HasSuffix(path, ext) {
				files = append(files, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// ListTargets returns the sorted list of files a directory check would scan.
// Нужен UI, чтобы показать строки до старта сканера.
func ListTargets(dir string, opts Options) ([]string, error) {
	return listTextFiles(dir, opts.extensions())
}

// CheckDir checks every matching file under dir in parallel. jobs limits the
// worker count (0 = GOMAXPROCS). Results come back in sorted file order
// regardless of completion order; per-file load errors are recorded in the
// results, not returned.
func CheckDir(ctx context.Context, dir string, opts Options, jobs int, sink EventSink) (*source.FileSet, []*FileResult, error) {
	files, err := listTextFiles(dir, opts.extensions())
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	var cache *DiskCache
	if opts.EnableDiskCache {
		cache, _ = OpenDiskCache("unifix")
	}

	// FileSet не потокобезопасен: все файлы загружаем до запуска воркеров.
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]*FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			// Проверка отмены
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			result := &FileResult{Path: path, Bag: report.NewBag(opts.maxIssues())}
			results[i] = result

			if loadErr, hadError := loadErrors[path]; hadError {
				result.LoadErr = loadErr
				if sink != nil {
					sink.Send(eventFor(result))
				}
				return nil
			}

			var timer *observ.Timer
			if opts.EnableTimings {
				timer = observ.NewTimer()
			}

			fileID := fileIDs[path]
			result.FileID = fileID
			checkLines(fileSet.Get(fileID), opts, timer, cache, result)

			if sink != nil {
				sink.Send(eventFor(result))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

func eventFor(r *FileResult) Event {
	switch {
	case r.Failed():
		return Event{Path: r.Path, Status: StatusError, Issues: r.Bag.Len()}
	case r.HasIssues():
		return Event{Path: r.Path, Status: StatusIssues, Issues: r.Bag.Len()}
	default:
		return Event{Path: r.Path, Status: StatusClean}
	}
}
