// Command sessionctl stores, inspects and removes ephemeral webmail sessions
// through the session API, and carries operator tools for the session cache.
package main

import (
	"fmt"
	"os"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := newRootCmd(defaultDeps()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func versionString() string {
	v, d, c := buildVersion, buildDate, buildCommit
	if v == "" {
		v = "N/A"
	}
	if d == "" {
		d = "N/A"
	}
	if c == "" {
		c = "N/A"
	}
	return fmt.Sprintf("%s (built %s, commit %s)", v, d, c)
}
