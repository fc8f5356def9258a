package blobd

import "fmt"

// These values describe the current release and are the single place the
// version is bumped.
var (
	major = 0
	minor = 2
	patch = 0

	meta = ""
)

// Version contains the semantic version components of the running binary.
type Version struct {
	Major int
	Minor int
	Patch int
	Meta  string
}

func CurrentVersion() Version {
	return Version{
		Major: major,
		Minor: minor,
		Patch: patch,
		Meta:  meta,
	}
}

// StringVersion returns the version in semver text form, e.g. "0.2.0".
func StringVersion() string {
	v := fmt.Sprintf("%d.%d.%d", major, minor, patch)

	if meta != "" {
		v += "-" + meta
	}

	return v
}
