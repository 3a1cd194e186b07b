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

package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveFileAbsolute(t *testing.T) {
	abs, err := filepath.Abs("internal/util/util.go")
	assert.NoError(t, err)

	resolved, err := ResolveFile(abs)
	assert.NoError(t, err)
	assert.Equal(t, filepath.Clean(abs), resolved)

	_, err = ResolveFile(abs + ".does-not-exist")
	assert.Error(t, err)
}

func TestResolveFileRelativeToCwd(t *testing.T) {
	resolved, err := ResolveFile("internal/util/util.go")
	assert.NoError(t, err)
	assert.True(t, filepath.IsAbs(resolved))
	assert.Equal(t, "util.go", filepath.Base(resolved))
}

func TestResolveFileNotFound(t *testing.T) {
	_, err := ResolveFile("no-such-file-anywhere.toml")
	assert.Error(t, err)
}

func TestResolveFolder(t *testing.T) {
	resolved, err := ResolveFolder(".")
	assert.NoError(t, err)
	assert.True(t, filepath.IsAbs(resolved))
}

func TestResolveCreateFolder(t *testing.T) {
	name := "corvid-pathresolv-test-dir"
	defer os.RemoveAll(filepath.Join(os.TempDir(), name))
	defer os.RemoveAll(name)

	resolved, err := ResolveCreateFolder(name)
	assert.NoError(t, err)
	info, statErr := os.Stat(resolved)
	assert.NoError(t, statErr)
	assert.True(t, info.IsDir())

	// Resolving again should find the now-existing directory rather than
	// erroring on a second Mkdir.
	resolvedAgain, err := ResolveCreateFolder(name)
	assert.NoError(t, err)
	assert.Equal(t, resolved, resolvedAgain)
}
