package source

import (
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// DefaultCandidates are the log locations tried when none is
// configured: the stock WinCNC install path, then the working
// directory.
var DefaultCandidates = []string{
	`C:\WinCNC\WINCNC.CSV`,
	`WINCNC.CSV`,
}

// LocateLog resolves the log file to parse: the configured path if
// set, otherwise the first existing default candidate. The returned
// error wraps fs.ErrNotExist and names every path tried.
func LocateLog(configured string) (string, error) {
	paths := make([]string, 0, len(DefaultCandidates)+1)
	if configured != "" {
		paths = append(paths, configured)
	}
	paths = append(paths, DefaultCandidates...)

	for _, p := range paths {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", fmt.Errorf("no WinCNC log found, tried %s: %w",
		strings.Join(paths, ", "), fs.ErrNotExist)
}
