package skynet

import (
	"path"
	"strings"
)

// File is a file-like value, *os.File satisfies it
type File interface {
	Name() string
}

// RelativePather is implemented by files which know their path relative to the directory that was selected for upload
type RelativePather interface {
	RelativePath() string
}

// Pather is implemented by files which carry a full path next to their base name
type Pather interface {
	Path() string
}

// filePathLookups are tried in order, the first non-empty path wins
var filePathLookups = []func(File) string{
	func(f File) string {
		if rp, ok := f.(RelativePather); ok {
			return rp.RelativePath()
		}
		return ""
	},
	func(f File) string {
		if p, ok := f.(Pather); ok {
			return p.Path()
		}
		return ""
	},
	File.Name,
}

// GetRelativeFilePath returns the path of the file without its first directory
func GetRelativeFilePath(f File) string {
	root, dir, base := parsePath(filePath(f))
	segments := strings.Split(path.Clean(dir)[len(root):], "/")

	return path.Join(append(segments[1:], base)...)
}

// GetRootDirectory returns the first directory in the path of the file
func GetRootDirectory(f File) string {
	root, dir, _ := parsePath(filePath(f))
	return strings.Split(path.Clean(dir)[len(root):], "/")[0]
}

func filePath(f File) string {
	for _, lookup := range filePathLookups {
		if p := lookup(f); p != "" {
			return p
		}
	}
	return ""
}

// parsePath splits a slash separated path into its root, directory and base name
func parsePath(p string) (root, dir, base string) {
	if strings.HasPrefix(p, "/") {
		root = "/"
	}

	trimmed := strings.TrimRight(p, "/")
	idx := strings.LastIndex(trimmed, "/")
	switch {
	case trimmed == "":
		return root, root, ""
	case idx < 0:
		return root, "", trimmed
	case idx == 0:
		return root, root, trimmed[1:]
	}
	return root, trimmed[:idx], trimmed[idx+1:]
}
