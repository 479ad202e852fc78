package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"tenet/internal/diag"
	"tenet/internal/ruleset"
	"tenet/internal/source"
)

// Options tunes a directory-wide run.
type Options struct {
	MaxDiagnostics int
	Jobs           int        // 0 means GOMAXPROCS
	Cache          *DiskCache // nil disables caching
}

// listCFiles returns every *.c and *.h file under dir, sorted so runs
// are deterministic.
func listCFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(path, ".c") || strings.HasSuffix(path, ".h") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// CheckDir runs the pipeline over every C file under dir. Files are
// loaded up front on one goroutine; checking fans out over an errgroup.
// Each worker writes only its own results slot, so no locking is needed
// beyond the group itself. Results come back in listing order.
func CheckDir(ctx context.Context, dir string, rs *ruleset.Ruleset, opts Options) (*source.FileSet, []CheckResult, error) {
	files, err := listCFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSet()
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	maxDiagnostics := opts.MaxDiagnostics
	if maxDiagnostics <= 0 {
		maxDiagnostics = DefaultMaxDiagnostics
	}

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

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	policy := rs.Hash()
	results := make([]CheckResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if loadErr, failed := loadErrors[path]; failed {
				bag := diag.NewBag(maxDiagnostics)
				bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{},
					"failed to load file: "+loadErr.Error()))
				results[i] = CheckResult{Path: path, Bag: bag}
				return nil
			}

			fileID := fileIDs[path]
			file := fileSet.Get(fileID)
			key := ruleset.Combine(file.Hash, policy)

			if opts.Cache != nil {
				var payload DiskPayload
				if ok, err := opts.Cache.Get(key, &payload); err == nil && ok &&
					payload.Schema == diskCacheSchemaVersion {
					results[i] = CheckResult{
						Path:   path,
						FileID: fileID,
						Bag:    payload.toBag(fileID, maxDiagnostics),
						Cached: true,
					}
					return nil
				}
			}

			res := checkLoaded(fileSet, fileID, path, rs, maxDiagnostics)
			results[i] = res

			if opts.Cache != nil {
				// Cache write failures lose only speed, never findings.
				_ = opts.Cache.Put(key, payloadFromBag(path, file.Hash, policy, res.Bag))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
