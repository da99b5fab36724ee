package hwmon

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"unicode/utf8"

	"github.com/markusressel/hwtemp/internal/ui"
)

// DefaultPatterns covers the direct hwmon attribute layout, the device-relative
// layout of older kernels, and the platform specific coretemp layout.
var DefaultPatterns = []string{
	"/sys/class/hwmon/hwmon*/temp*_*",
	"/sys/class/hwmon/hwmon*/device/temp*_*",
	"/sys/devices/platform/coretemp.*/hwmon/hwmon*/temp*_*",
}

// ValidatePattern returns an error if the given glob pattern is malformed.
func ValidatePattern(pattern string) error {
	if len(pattern) <= 0 {
		return errors.New("pattern is empty")
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		return err
	}
	// Match stops checking at the first chunk that does not match,
	// so every segment is matched against itself as well
	for _, segment := range strings.Split(pattern, string(filepath.Separator)) {
		if _, err := filepath.Match(segment, segment); err != nil {
			return err
		}
	}
	return nil
}

// Discover expands all given glob patterns and returns the unique sensor bases of all matches.
// Errors on individual paths are logged and skipped, a malformed pattern panics.
func Discover(patterns []string) BaseSet {
	bases := BaseSet{}
	for _, pattern := range patterns {
		if err := ValidatePattern(pattern); err != nil {
			panic(fmt.Errorf("invalid sensor pattern %q: %w", pattern, err))
		}

		for _, path := range expand(pattern) {
			if !utf8.ValidString(path) {
				ui.Warning("Ignoring path %q because it is not valid UTF-8", path)
				continue
			}

			base, ok := BaseOf(path)
			if !ok {
				ui.Debug("Ignoring path without attribute suffix: %s", path)
				continue
			}
			bases.Add(base)
		}
	}
	return bases
}

// BaseOf cuts the file name of path at its first '_', f.ex.
// ".../hwmon0/temp1_input" -> ".../hwmon0/temp1"
func BaseOf(path string) (Base, bool) {
	dir, file := filepath.Split(path)
	idx := strings.IndexByte(file, '_')
	if idx <= 0 {
		return "", false
	}
	return Base(dir + file[:idx]), true
}

// expand matches pattern one path segment at a time, so that unreadable
// directories can be reported instead of silently dropped.
func expand(pattern string) []string {
	root := "."
	if filepath.IsAbs(pattern) {
		root = string(filepath.Separator)
	}
	segments := strings.Split(strings.Trim(filepath.Clean(pattern), string(filepath.Separator)), string(filepath.Separator))

	candidates := []string{root}
	for _, segment := range segments {
		if len(segment) <= 0 {
			continue
		}

		var next []string
		for _, dir := range candidates {
			if !hasMeta(segment) {
				path := filepath.Join(dir, segment)
				if _, err := os.Stat(path); err != nil {
					if !errors.Is(err, fs.ErrNotExist) && !errors.Is(err, syscall.ENOTDIR) {
						ui.Warning("Ignoring due to error: %v", err)
					}
					continue
				}
				next = append(next, path)
				continue
			}

			entries, err := os.ReadDir(dir)
			if err != nil {
				if !errors.Is(err, fs.ErrNotExist) && !errors.Is(err, syscall.ENOTDIR) {
					ui.Warning("Ignoring due to error: %v", err)
				}
				continue
			}
			for _, entry := range entries {
				matched, err := filepath.Match(segment, entry.Name())
				if err != nil {
					panic(fmt.Errorf("invalid sensor pattern segment %q: %w", segment, err))
				}
				if matched {
					next = append(next, filepath.Join(dir, entry.Name()))
				}
			}
		}
		candidates = next
	}
	return candidates
}

func hasMeta(segment string) bool {
	return strings.ContainsAny(segment, `*?[\`)
}
