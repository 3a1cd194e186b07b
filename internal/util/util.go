//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package util bundles the small, dependency-light helpers shared across
// corvid's packages: branchless numeric helpers used on the search hot
// path, process/GC introspection for UCI debug output, and config-file
// path resolution. Keeping path resolution here (rather than its own
// package, as in some lineages of this engine) avoids a second tiny
// package whose only client is internal/config.
package util

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer formats the locale-sensitive diagnostic strings below (thousands
// separators on node counts and byte totals read better than raw digits).
var printer = message.NewPrinter(language.German)

// verbosePathLookup turns on step-by-step logging of where ResolveFile and
// ResolveFolder looked; left off by default since it fires on every engine
// start while searching for config.toml.
var verbosePathLookup = false

// intBits is the width of Go's int on the platforms corvid targets (amd64,
// arm64 are both 64-bit); Abs's shift amount is pinned to that width rather
// than the 32-bit shift older non-branching tricks assume, which only
// produces a correct sign mask for values under 2^32.
const intBits = 64

// Abs returns the absolute value of n without a conditional branch.
func Abs(n int) int {
	mask := n >> (intBits - 1)
	return (n ^ mask) - mask
}

// Abs16 is Abs for int16.
func Abs16(n int16) int16 {
	mask := n >> 15
	return (n ^ mask) - mask
}

// Abs64 is Abs for int64.
func Abs64(n int64) int64 {
	mask := n >> 63
	return (n ^ mask) - mask
}

// Min returns the lesser of x and y.
func Min(x, y int) int {
	if y < x {
		return y
	}
	return x
}

// Min64 is Min for int64, used when comparing node counts and durations.
func Min64(x, y int64) int64 {
	if y < x {
		return y
	}
	return x
}

// Max returns the greater of x and y.
func Max(x, y int) int {
	if y > x {
		return y
	}
	return x
}

// Max64 is Max for int64.
func Max64(x, y int64) int64 {
	if y > x {
		return y
	}
	return x
}

// TimeTrack logs how long has elapsed since start under the given label.
// Usage: defer util.TimeTrack(time.Now(), "perft depth 6")
func TimeTrack(start time.Time, label string) {
	_, _ = printer.Printf("%s took %d ns\n", label, time.Since(start).Nanoseconds())
}

// Nps converts a node count and the duration it took into nodes per second,
// nudging a zero duration up by one nanosecond so the division never traps.
func Nps(nodes uint64, duration time.Duration) uint64 {
	elapsed := duration.Nanoseconds() + 1
	return uint64(int64(nodes) * time.Second.Nanoseconds() / elapsed)
}

// MemStat reports current heap usage and GC cycle count for UCI "info
// string" debug output.
func MemStat() string {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	return printer.Sprintf("Alloc: %d TotalAlloc: %d HeapAlloc: %d HeapObjects: %d NumGC: %d",
		mem.Alloc, mem.TotalAlloc, mem.HeapAlloc, mem.HeapObjects, mem.NumGC)
}

// GcWithStats forces a garbage-collection cycle and reports memory stats
// from immediately before and after it.
func GcWithStats() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Mem stats before: %s ", MemStat())
	start := time.Now()
	runtime.GC()
	fmt.Fprintf(&b, "GC took: %d ms ", time.Since(start).Milliseconds())
	fmt.Fprintf(&b, "Mem stats after: %s", MemStat())
	return b.String()
}

// ResolveFile locates file and returns an absolute path to it.
//
// An absolute input path is returned unchanged if it exists, otherwise an
// error. A relative path is tried, in order, against the current working
// directory, the directory holding the running executable, and the user's
// home directory; the first hit wins. This is how corvid finds config.toml
// without requiring callers to pass an absolute path on the command line.
func ResolveFile(file string) (string, error) {
	return resolve(file, fileExists)
}

// ResolveFolder is ResolveFile for directories; it never creates anything.
func ResolveFolder(folder string) (string, error) {
	return resolve(folder, dirExists)
}

func resolve(target string, exists func(string) bool) (string, error) {
	target = filepath.Clean(target)

	if filepath.IsAbs(target) {
		if exists(target) {
			return target, nil
		}
		return target, fmt.Errorf("not found: %s", target)
	}

	for _, base := range candidateDirs() {
		if candidate := filepath.Join(base, target); exists(candidate) {
			if verbosePathLookup {
				log.Printf("util: resolved %s to %s (base %s)", target, candidate, base)
			}
			return filepath.Clean(candidate), nil
		}
	}
	return target, fmt.Errorf("not found in cwd, executable dir, or home dir: %s", target)
}

// candidateDirs returns the search bases for resolve, in priority order,
// skipping any that errored out (e.g. no home directory in a minimal
// container).
func candidateDirs() []string {
	var dirs []string
	if cwd, err := os.Getwd(); err == nil {
		dirs = append(dirs, cwd)
	}
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, home)
	}
	return dirs
}

// ResolveCreateFolder resolves folderPath the same way as ResolveFolder,
// and if it cannot be found, creates a directory named after its last path
// element — first in the working directory, falling back to the OS temp
// directory if that isn't writable.
func ResolveCreateFolder(folderPath string) (string, error) {
	folderPath = filepath.Clean(folderPath)

	if filepath.IsAbs(folderPath) {
		if dirExists(folderPath) {
			return folderPath, nil
		}
		return folderPath, os.Mkdir(folderPath, 0755)
	}

	base := filepath.Base(folderPath)

	if cwd, err := os.Getwd(); err == nil {
		candidate := filepath.Join(cwd, base)
		if dirExists(candidate) {
			return candidate, nil
		}
		if err := os.Mkdir(candidate, 0755); err == nil {
			return candidate, nil
		}
	}

	candidate := filepath.Join(os.TempDir(), base)
	if dirExists(candidate) {
		return candidate, nil
	}
	return candidate, os.Mkdir(candidate, 0755)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
