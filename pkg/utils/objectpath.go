package utils

import (
	"errors"
	"strings"
)

var (
	ErrEmptyPath   = errors.New("blob path is empty")
	ErrInvalidPath = errors.New("blob path contains invalid segments")
)

// CleanObjectPath normalizes a client-supplied blob path into the canonical
// object-key form: forward slashes, no leading/trailing slash, no empty
// segments. Relative segments ("." and "..") and backslashes are rejected so
// a path can never escape its container.
func CleanObjectPath(path string) (string, error) {
	if strings.ContainsRune(path, '\\') {
		return "", ErrInvalidPath
	}

	parts := strings.Split(path, "/")
	cleaned := make([]string, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if part == "." || part == ".." {
			return "", ErrInvalidPath
		}
		cleaned = append(cleaned, part)
	}

	if len(cleaned) == 0 {
		return "", ErrEmptyPath
	}

	return strings.Join(cleaned, "/"), nil
}

// JoinObjectPath builds an object key from a directory prefix and a blob
// name. An empty directory places the blob at the container root.
func JoinObjectPath(directory, name string) (string, error) {
	if directory == "" {
		return CleanObjectPath(name)
	}

	return CleanObjectPath(directory + "/" + name)
}

// SplitObjectPath splits a canonical object key into its directory prefix and
// blob name. The directory is empty for root-level blobs.
func SplitObjectPath(path string) (directory, name string) {
	idx := strings.LastIndex(path, "/")
	if idx < 0 {
		return "", path
	}

	return path[:idx], path[idx+1:]
}
