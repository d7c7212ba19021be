// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package version

import (
	"bytes"
	"fmt"
	"time"
)

var (
	// BuildDate is the time of the git commit used to build the program,
	// in RFC3339 format. It is filled in by the compiler via makefile.
	BuildDate string

	// GitCommit and GitDescribe are filled by the compiler using ldflags to
	// provide useful Git information.
	GitCommit   string
	GitDescribe string

	// Version is the semantic version number of the module.
	Version = "0.1.0"

	// VersionPrerelease designates whether the current version is within a
	// prerelease phase, such as "dev", "beta.1" or "rc.1".
	VersionPrerelease = "dev"

	// VersionMetadata is appended to the version after a "+".
	VersionMetadata = ""
)

// VersionInfo describes the build of the running binary.
type VersionInfo struct {
	BuildDate         time.Time
	Revision          string
	Version           string
	VersionPrerelease string
	VersionMetadata   string
}

// GetVersion returns the version of the running binary, preferring the git
// description when one was linked in.
func GetVersion() *VersionInfo {
	ver := Version
	rel := VersionPrerelease
	if GitDescribe != "" {
		ver = GitDescribe
		rel = ""
	}

	// on parse error, will be zero value time.Time{}
	built, _ := time.Parse(time.RFC3339, BuildDate)

	return &VersionInfo{
		BuildDate:         built,
		Revision:          GitCommit,
		Version:           ver,
		VersionPrerelease: rel,
		VersionMetadata:   VersionMetadata,
	}
}

func (c *VersionInfo) VersionNumber() string {
	version := c.Version

	if c.VersionPrerelease != "" {
		version = fmt.Sprintf("%s-%s", version, c.VersionPrerelease)
	}

	if c.VersionMetadata != "" {
		version = fmt.Sprintf("%s+%s", version, c.VersionMetadata)
	}

	return version
}

// FullVersionNumber prefixes the version number with name and, when known,
// adds the build date and the git revision on their own lines.
func (c *VersionInfo) FullVersionNumber(name string, rev bool) string {
	var versionString bytes.Buffer

	fmt.Fprintf(&versionString, "%s v%s", name, c.VersionNumber())

	if !c.BuildDate.IsZero() {
		fmt.Fprintf(&versionString, "\nBuildDate %s", c.BuildDate.Format(time.RFC3339))
	}

	if rev && c.Revision != "" {
		fmt.Fprintf(&versionString, "\nRevision %s", c.Revision)
	}

	return versionString.String()
}
