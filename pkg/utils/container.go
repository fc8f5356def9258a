package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// containerNameRegexp follows the S3 bucket naming rules MinIO enforces:
// 3 to 63 lowercase letters, digits, dots and hyphens, starting and ending
// with a letter or digit.
var containerNameRegexp = regexp.MustCompile(`^[a-z0-9][a-z0-9.-]{1,61}[a-z0-9]$`)

// ValidContainerName reports whether name can be used as a storage container.
func ValidContainerName(name string) bool {
	return containerNameRegexp.MatchString(name)
}

// BlobURL builds the public address of a stored blob.
func BlobURL(publicAddress, container, path string) string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(publicAddress, "/"), container, path)
}
