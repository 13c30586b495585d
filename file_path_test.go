package skynet

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namedFile string

func (f namedFile) Name() string { return string(f) }

type pathFile struct {
	name string
	path string
}

func (f pathFile) Name() string { return f.name }
func (f pathFile) Path() string { return f.path }

type browserFile struct {
	pathFile
	relativePath string
}

func (f browserFile) RelativePath() string { return f.relativePath }

func TestFilePathLookupOrder(t *testing.T) {
	cases := []struct {
		file File
		want string
	}{
		{browserFile{pathFile{"c.txt", "/abs/x/c.txt"}, "a/b/c.txt"}, "a/b/c.txt"},
		{browserFile{pathFile{"c.txt", "/abs/x/c.txt"}, ""}, "/abs/x/c.txt"},
		{browserFile{pathFile{"c.txt", ""}, ""}, "c.txt"},
		{pathFile{"c.txt", "dir/c.txt"}, "dir/c.txt"},
		{pathFile{"c.txt", ""}, "c.txt"},
		{namedFile("dir/c.txt"), "dir/c.txt"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, filePath(c.file))
	}
}

func TestGetRelativeFilePathAndRootDirectory(t *testing.T) {
	cases := []struct {
		file     File
		relative string
		root     string
	}{
		{browserFile{pathFile{"c.txt", "/abs/x/c.txt"}, "a/b/c.txt"}, "b/c.txt", "a"},
		{browserFile{pathFile{"c.txt", "/abs/x/c.txt"}, ""}, "x/c.txt", "abs"},
		{pathFile{"c.txt", ""}, "c.txt", "."},
		{namedFile("dir/c.txt"), "c.txt", "dir"},
		{namedFile("/dir/c.txt"), "c.txt", "dir"},
		{namedFile("a/b/c/d.txt"), "b/c/d.txt", "a"},
		{namedFile("a//b/./c.txt"), "b/c.txt", "a"},
		{namedFile("a/b/"), "b", "a"},
		{namedFile("/c.txt"), "c.txt", ""},
	}

	for _, c := range cases {
		assert.Equal(t, c.relative, GetRelativeFilePath(c.file), "relative path of %q", filePath(c.file))
		assert.Equal(t, c.root, GetRootDirectory(c.file), "root directory of %q", filePath(c.file))
	}
}

func TestRootDirectoryOfOSFile(t *testing.T) {
	file, err := os.CreateTemp(t.TempDir(), "skyfile-")
	require.NoError(t, err)
	defer func() {
		_ = file.Close()
	}()

	name := filepath.ToSlash(file.Name())
	segments := strings.Split(strings.TrimPrefix(name, "/"), "/")

	assert.Equal(t, segments[0], GetRootDirectory(file))
	assert.Equal(t, strings.Join(segments[1:], "/"), GetRelativeFilePath(file))
}
