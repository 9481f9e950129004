package core

import "time"

// Config holds the values read from cfg.txt.
type Config struct {
	RetainCount int    // files to keep
	TargetPath  string // folder to prune, not recursed into
	Pattern     string // base-name filter, "*" when unset
}

// FileEntry is one regular file found in the target folder.
type FileEntry struct {
	Name    string
	ModTime time.Time
	Size    int64
}

// SkipReason tells why a prune deleted nothing.
type SkipReason string

const (
	SkipDirInvalid  SkipReason = "dir_invalid"
	SkipEmpty       SkipReason = "empty"
	SkipNothingToDo SkipReason = "nothing_to_do"
)

// PruneResult summarises one prune.
type PruneResult struct {
	Found      int
	Retained   int
	Deleted    []string
	SpaceFreed int64
	Skipped    SkipReason
}
