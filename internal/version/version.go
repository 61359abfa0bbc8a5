package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Заполняются через -ldflags "-X github.com/FreddyWordingham/GOAP/internal/version.Version=..."
var (
	Version   string
	BuildDate string // YYYY-MM-DD (UTC)
	Commit    string
)

// VersionInfo describes the build metadata in structured form.
type VersionInfo struct {
	Version   string `json:"version"`
	BuildDate string `json:"buildDate,omitempty"`
	Commit    string `json:"commit,omitempty"`
	GoVersion string `json:"goVersion,omitempty"`
	Modified  bool   `json:"modified,omitempty"`
	Error     string `json:"error,omitempty"`
}

// readBuildInfo подменяется в тестах
var readBuildInfo = debug.ReadBuildInfo

// Info returns structured version information.
// Значения из ldflags приоритетнее данных VCS, встроенных компилятором.
func Info() VersionInfo {
	info := VersionInfo{
		Version:   coalesce(Version, "dev"),
		BuildDate: BuildDate,
		Commit:    Commit,
	}

	if bi, ok := readBuildInfo(); ok {
		info.GoVersion = bi.GoVersion
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.Commit == "" {
					info.Commit = shortRevision(s.Value)
				}
			case "vcs.time":
				if info.BuildDate == "" && len(s.Value) >= len("2006-01-02") {
					info.BuildDate = s.Value[:len("2006-01-02")]
				}
			case "vcs.modified":
				info.Modified = s.Value == "true"
			}
		}
	}

	if info.BuildDate != "" {
		if _, err := time.ParseInLocation("2006-01-02", info.BuildDate, time.UTC); err != nil {
			info.Error = fmt.Sprintf("invalid BuildDate %q", info.BuildDate)
		}
	}
	return info
}

// String returns a human-readable build string.
func String() string {
	info := Info()

	s := fmt.Sprintf("GOAP planner %s (%s) commit[%s]",
		info.Version,
		coalesce(info.BuildDate, "unknown date"),
		coalesce(info.Commit, "unknown"),
	)
	if info.Modified {
		s += " dirty"
	}
	return s
}

func shortRevision(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}

func coalesce(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
