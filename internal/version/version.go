// Package version formats the version line printed by CLI tools.
package version

import (
	"runtime/debug"
	"strings"
)

// String builds a one-line version string from ldflags-injected values,
// falling back to Go module build info when they are unset placeholders.
func String(version, commit, date string) string {
	v := strings.TrimSpace(version)
	c := strings.TrimSpace(commit)
	d := strings.TrimSpace(date)

	if info, ok := debug.ReadBuildInfo(); ok {
		if v == "" || v == "dev" || v == "(devel)" {
			if mv := strings.TrimSpace(info.Main.Version); mv != "" && mv != "(devel)" {
				v = mv
			}
		}
		if c == "" || c == "unknown" {
			c = vcsSetting(info, "vcs.revision")
		}
		if d == "" || d == "unknown" {
			d = vcsSetting(info, "vcs.time")
		}
	}

	out := v
	if out == "" {
		out = "dev"
	}
	if c != "" && c != "unknown" {
		out += " (" + c + ")"
	}
	if d != "" && d != "unknown" {
		out += " " + d
	}
	return out
}

func vcsSetting(info *debug.BuildInfo, key string) string {
	for _, s := range info.Settings {
		if s.Key == key {
			return s.Value
		}
	}
	return ""
}
