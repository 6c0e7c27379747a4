package amalgamate

import (
	"path/filepath"
	"strings"
)

// Config holds the settings for one generation run.
type Config struct {
	Root       string // Library root directory.
	IncludeDir string // Name of the header directory under Root.
	Entry      string // Entry header the expansion starts from.
	Output     string // Destination path for the generated single header.
	Project    string // Project name stamped into the banner.
	Release    string // Version string stamped into the banner.
	Guard      string // Include guard macro wrapped around the body.
}

// withDefaults fills every unset field from the conventional library
// layout. Pure path arithmetic, no I/O; a missing entry header surfaces
// later as an open failure in the inliner.
func (c Config) withDefaults() Config {
	if c.Root == "" {
		c.Root = "."
	}
	if c.IncludeDir == "" {
		c.IncludeDir = "include"
	}
	if c.Project == "" {
		if abs, err := filepath.Abs(c.Root); err == nil {
			c.Project = filepath.Base(abs)
		} else {
			c.Project = filepath.Base(c.Root)
		}
	}
	if c.Release == "" {
		c.Release = "0.1.0"
	}
	if c.Entry == "" {
		c.Entry = strings.ToLower(c.Project) + ".h"
	}
	if c.Output == "" {
		c.Output = filepath.Join(c.Root, "single_include", c.Entry)
	}
	if c.Guard == "" {
		c.Guard = guardMacro(c.Project)
	}
	return c
}

// includeRoot is the fallback directory for include resolution.
func (c Config) includeRoot() string {
	return filepath.Join(c.Root, c.IncludeDir)
}

// guardMacro derives the include guard macro from a project name,
// e.g. "OpenEcs" becomes "OPENECS_SINGLE_INCLUDE_H".
func guardMacro(project string) string {
	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, project)
	return strings.ToUpper(clean) + "_SINGLE_INCLUDE_H"
}
