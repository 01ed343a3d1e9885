// Package buildinfo exposes version metadata stamped at link time via
// -ldflags "-X playcenter-console/internal/buildinfo.Version=... ".
package buildinfo

import (
	"fmt"
	"io"
)

var (
	Version   = "N/A"
	BuildDate = "N/A"
	Commit    = "N/A"
)

// PrintBuildData writes the stamped build metadata to w.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", Version)
	fmt.Fprintf(w, "Build date: %s\n", BuildDate)
	fmt.Fprintf(w, "Build commit: %s\n", Commit)
}
