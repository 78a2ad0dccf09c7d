package project

import (
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// GitInfo holds the git metadata collected for one project.
type GitInfo struct {
	Branch     string     // "" when detached or lookup failed
	Dirty      bool       // false when status could not be read
	LastCommit *time.Time // nil when the log could not be read or parsed
}

// InspectGit queries a working directory for its current branch, dirty
// state, and last commit time. Every failure degrades to an absent or
// clean value: a single corrupted or locked repository must not block
// discovery of the rest.
func InspectGit(path string) GitInfo {
	var info GitInfo

	info.Branch = runGit(path, "branch", "--show-current")

	// Dirty iff porcelain status produces any output. Command failure
	// reads as clean.
	if out, err := gitCommand(path, "status", "--porcelain").Output(); err == nil {
		info.Dirty = len(out) > 0
	}

	if ct := runGit(path, "log", "-1", "--format=%ct"); ct != "" {
		if secs, err := strconv.ParseInt(ct, 10, 64); err == nil {
			t := time.Unix(secs, 0)
			info.LastCommit = &t
		}
	}

	return info
}

func gitCommand(path string, args ...string) *exec.Cmd {
	cmd := exec.Command("git", args...)
	cmd.Dir = path
	return cmd
}

// runGit runs a git command in path and returns its trimmed stdout, or
// "" on any failure.
func runGit(path string, args ...string) string {
	out, err := gitCommand(path, args...).Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}
