// Package fileutil finds source files for the lint command.
//
// ExpandPaths accepts a mix of files and directories. Files are kept as
// given; directories are walked by ScanDirectory and filtered by extension:
//
//	files, errs := fileutil.ExpandPaths(args, fileutil.ScanOptions{
//	    Extensions:  dialect.AllExtensions(),
//	    Recursive:   true,
//	    ExcludeDirs: fileutil.DefaultExcludeDirs,
//	})
//
// Build output and dependency directories (node_modules, target, dist) and
// dot-directories are never descended into. Results are absolute, sorted
// and de-duplicated so repeated runs print files in the same order.
package fileutil
