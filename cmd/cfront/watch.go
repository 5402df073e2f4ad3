package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"cfront/internal/driver"
	"cfront/internal/trace"
)

const watchDebounce = 150 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch [flags] <file|dir>...",
	Short: "Re-check C sources whenever they change",
	Long:  `Watch runs check once, then re-scans every *.c or *.h file that is written or created under the given paths until interrupted.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().String("format", "pretty", "diagnostics format (pretty|json)")
	addBatchFlags(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	st, err := loadSettings(cmd, osFs)
	if err != nil {
		return err
	}
	if err := checkFormat(st.format, "pretty", "json"); err != nil {
		return err
	}
	// прогресс-бар в режиме наблюдения только мешает
	st.ui = uiModeOff

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dirs, err := watchDirs(args)
	if err != nil {
		return err
	}
	scope, err := newWatchScope(args)
	if err != nil {
		return err
	}
	for _, d := range dirs {
		if err := watcher.Add(d); err != nil {
			return fmt.Errorf("watch %s: %w", d, err)
		}
	}

	if batch, err := runBatch(cmd, st, "watch", args); err == nil {
		printWatchReport(cmd, st, batch)
	} else {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "watching %d directories, press Ctrl-C to stop\n", len(dirs))

	return watchLoop(cmd.Context(), watcher, scope.includes, func(paths []string) {
		opts, err := driverOptions(st)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return
		}
		batch, err := driver.TokenizeFiles(cmd.Context(), osFs, paths, opts)
		if err != nil {
			return
		}
		printWatchReport(cmd, st, batch)
	})
}

// watchLoop collects changed source paths accepted by accept and flushes
// them to onChange after a quiet period. It returns when ctx is done.
func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, accept func(string) bool, onChange func([]string)) error {
	tracer := trace.FromContext(ctx)
	pending := make(map[string]bool)
	timer := time.NewTimer(watchDebounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isSourcePath(ev.Name) || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			if accept != nil && !accept(ev.Name) {
				continue
			}
			trace.Point(tracer, trace.ScopeFile, "watch_event", ev.String())
			pending[ev.Name] = true
			timer.Reset(watchDebounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			trace.Failure(tracer, trace.ScopeDriver, "watch", err.Error())
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		case <-timer.C:
			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}
			clear(pending)
			sort.Strings(paths)
			onChange(paths)
		}
	}
}

func printWatchReport(cmd *cobra.Command, st *settings, batch *driver.BatchResult) {
	if err := reportFailures(os.Stderr, st, batch); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	stamp := time.Now().Format("15:04:05")
	fmt.Fprintf(cmd.OutOrStdout(), "[%s] %d files checked, %d failed\n", stamp, len(batch.Results), batch.Failed())
}

// watchDirs returns every directory to subscribe to: the parents of file
// arguments and each directory argument with its subdirectories.
func watchDirs(args []string) ([]string, error) {
	seen := make(map[string]bool)
	var dirs []string
	add := func(d string) {
		d = filepath.Clean(d)
		if !seen[d] {
			seen[d] = true
			dirs = append(dirs, d)
		}
	}
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			add(filepath.Dir(arg))
			continue
		}
		err = filepath.WalkDir(arg, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Strings(dirs)
	return dirs, nil
}

// watchScope decides which changed files belong to the watched arguments.
// A file argument shares its parent directory's subscription with its
// siblings, so only the named file itself is in scope; a directory
// argument covers everything beneath it.
type watchScope struct {
	files map[string]bool
	dirs  []string
}

func newWatchScope(args []string) (*watchScope, error) {
	scope := &watchScope{files: make(map[string]bool)}
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		abs, err := filepath.Abs(arg)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			scope.dirs = append(scope.dirs, abs)
		} else {
			scope.files[abs] = true
		}
	}
	return scope, nil
}

func (s *watchScope) includes(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	if s.files[abs] {
		return true
	}
	for _, dir := range s.dirs {
		rel, err := filepath.Rel(dir, abs)
		if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func isSourcePath(p string) bool {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".c", ".h":
		return true
	default:
		return false
	}
}
