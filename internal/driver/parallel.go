package driver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"cfront/internal/diag"
	"cfront/internal/source"
	"cfront/internal/trace"
)

// sourceExts — расширения, которые собирает ListSources
var sourceExts = map[string]bool{".c": true, ".h": true}

// BatchResult holds per-file results in input order plus every scan
// failure collected into one bag.
type BatchResult struct {
	Results []*TokenizeResult
	Bag     *diag.Bag
}

// Failed returns the number of files that produced no tokens.
func (b *BatchResult) Failed() int {
	n := 0
	for _, r := range b.Results {
		if r.Failed() {
			n++
		}
	}
	return n
}

// ListSources возвращает отсортированный список всех *.c и *.h файлов в директории
func ListSources(fsys afero.Fs, dir string) ([]string, error) {
	var files []string

	err := afero.Walk(fsys, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && sourceExts[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
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

// ExpandInputs turns CLI arguments into file paths: directories expand to
// their sources, files are kept as given. Duplicates are dropped, first
// occurrence wins.
func ExpandInputs(fsys afero.Fs, args []string) ([]string, error) {
	seen := make(map[string]bool, len(args))
	var out []string
	add := func(p string) {
		key := filepath.Clean(p)
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, p)
	}
	for _, arg := range args {
		info, err := fsys.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", arg, err)
		}
		if !info.IsDir() {
			add(arg)
			continue
		}
		files, err := ListSources(fsys, arg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", arg, err)
		}
		for _, f := range files {
			add(f)
		}
	}
	return out, nil
}

// TokenizeFiles tokenizes paths in parallel. Each worker runs its own
// lexer; only the immutable token tables are shared. Per-file I/O errors
// and scan failures do not stop the batch; the error return is the
// context's error when the batch was cancelled.
func TokenizeFiles(ctx context.Context, fsys afero.Fs, paths []string, opts Options) (*BatchResult, error) {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeDriver, "tokenize_files", trace.ParentFromContext(ctx)).
		WithExtra("files", strconv.Itoa(len(paths)))
	defer span.End("")
	ctx = trace.WithParent(ctx, span)

	batch := &BatchResult{
		Results: make([]*TokenizeResult, len(paths)),
		Bag:     diag.NewBag(opts.MaxDiagnostics),
	}
	if len(paths) == 0 {
		return batch, nil
	}

	for _, path := range paths {
		emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusQueued})
	}

	// Настраиваем параллелизм
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	fileSet := source.NewFileSetFS(fsys)
	reporter := diag.BagReporter{Bag: batch.Bag}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			// Проверка отмены
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			res := tokenizeFile(gctx, fileSet, path, opts)
			if res.Diag != nil {
				reporter.Report(res.Diag)
			}
			// Сохраняем результат (мьютекс не нужен — индекс i уникален)
			batch.Results[i] = res
			return nil
		})
	}

	// Ждём завершения всех горутин
	if err := g.Wait(); err != nil {
		return batch, err
	}

	batch.Bag.Sort()
	return batch, nil
}
