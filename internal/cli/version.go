package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"

	"github.com/pkg/errors"
)

// Version information. CommitSHA and BuildDate are overridden at
// build time via -ldflags.
var (
	Version   = "0.4.0"
	BuildDate = "unknown"
	CommitSHA = "unknown"
)

// VersionInfo is the structured form of the version report.
type VersionInfo struct {
	Version   string `json:"version"`
	BuildDate string `json:"build_date,omitempty"`
	CommitSHA string `json:"commit_sha,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetVersionInfo collects version and build information.
func GetVersionInfo() VersionInfo {
	info := VersionInfo{
		Version:   Version,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if BuildDate != "unknown" {
		info.BuildDate = BuildDate
	}
	if CommitSHA != "unknown" {
		info.CommitSHA = CommitSHA
	}
	return info
}

// PrintVersion writes the version report, as indented JSON when
// jsonOutput is set.
func PrintVersion(w io.Writer, jsonOutput bool) error {
	info := GetVersionInfo()
	if jsonOutput {
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return errors.Wrap(err, "marshal version info")
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
	fmt.Fprintf(w, "kyanite v%s\n", info.Version)
	if info.BuildDate != "" {
		fmt.Fprintf(w, "Build Date: %s\n", info.BuildDate)
	}
	if info.CommitSHA != "" {
		fmt.Fprintf(w, "Commit: %s\n", info.CommitSHA)
	}
	fmt.Fprintf(w, "Go Version: %s\n", info.GoVersion)
	fmt.Fprintf(w, "Platform: %s\n", info.Platform)
	return nil
}
