package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultExcludeDirs are skipped in every scan of a front-end/back-end project
var DefaultExcludeDirs = []string{"node_modules", "target", "dist", "build"}

// ScanOptions configures the directory scanning behavior
type ScanOptions struct {
	// Extensions is a list of file extensions to include (e.g., ".ts", ".rs")
	Extensions []string
	// Recursive enables recursive directory scanning
	Recursive bool
	// ExcludeDirs is a list of directory names to exclude
	ExcludeDirs []string
	// MaxDepth limits recursion depth (0 = unlimited, 1 = current dir only)
	MaxDepth int
}

// ScanResult contains the results of a directory scan
type ScanResult struct {
	// Files contains the absolute paths of all matched files
	Files []string
	// Errors contains any errors encountered during scanning
	Errors []error
}

func (o ScanOptions) extensionSet() map[string]bool {
	set := make(map[string]bool, len(o.Extensions))
	for _, ext := range o.Extensions {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[strings.ToLower(ext)] = true
	}
	return set
}

// ScanDirectory scans a directory for files matching the provided options
func ScanDirectory(dir string, opts ScanOptions) (*ScanResult, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", dir)
	}

	result := &ScanResult{
		Files:  make([]string, 0),
		Errors: make([]error, 0),
	}

	extMap := opts.extensionSet()
	excludeMap := make(map[string]bool)
	for _, name := range opts.ExcludeDirs {
		excludeMap[name] = true
	}

	err = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("error accessing %s: %w", path, err))
			return nil // Continue walking
		}

		if path == dir {
			return nil
		}

		if d.IsDir() {
			if excludeMap[d.Name()] || strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			if !opts.Recursive {
				return filepath.SkipDir
			}
			if opts.MaxDepth > 0 {
				relPath, _ := filepath.Rel(dir, path)
				depth := strings.Count(relPath, string(filepath.Separator)) + 1
				if depth >= opts.MaxDepth {
					return filepath.SkipDir
				}
			}
			return nil
		}

		if len(extMap) > 0 && !extMap[strings.ToLower(filepath.Ext(d.Name()))] {
			return nil
		}

		absPath, err := filepath.Abs(path)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("failed to resolve path %s: %w", path, err))
			return nil
		}

		result.Files = append(result.Files, absPath)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	sort.Strings(result.Files)
	return result, nil
}

// ExpandPaths turns file and directory arguments into a sorted, de-duplicated
// list of absolute file paths. Explicit files are kept regardless of their
// extension so the caller can report them. Unreadable arguments are returned
// as errors and skipped.
func ExpandPaths(paths []string, opts ScanOptions) ([]string, []error) {
	seen := make(map[string]bool)
	var files []string
	var errs []error

	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			files = append(files, p)
		}
	}

	for _, p := range paths {
		absPath, err := filepath.Abs(p)
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to get absolute path for %s: %w", p, err))
			continue
		}

		info, err := os.Stat(absPath)
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to access path %s: %w", p, err))
			continue
		}

		if !info.IsDir() {
			add(absPath)
			continue
		}

		result, err := ScanDirectory(absPath, opts)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		errs = append(errs, result.Errors...)
		for _, f := range result.Files {
			add(f)
		}
	}

	sort.Strings(files)
	return files, errs
}
