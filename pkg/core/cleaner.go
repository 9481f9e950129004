package core

import (
	"fmt"
	"io"
	"path/filepath"
	"slices"

	"github.com/IGLOU-EU/go-wildcard"
	"github.com/L-JANUSZ/BackupBuffer/pkg/constants"
	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
)

// Pruner deletes the oldest files of a folder beyond a retention count.
type Pruner struct {
	fs      afero.Fs
	logger  *Logger
	out     io.Writer
	pattern string
}

// NewPruner returns a Pruner that prints progress to out. An empty pattern
// matches every file.
func NewPruner(fs afero.Fs, logger *Logger, out io.Writer, pattern string) *Pruner {
	if pattern == "" {
		pattern = constants.DefaultPattern
	}
	return &Pruner{
		fs:      fs,
		logger:  logger,
		out:     out,
		pattern: pattern,
	}
}

// Prune keeps the retain most recently modified regular files directly in
// targetPath and deletes the rest, oldest first.
//
// A missing or non-directory targetPath is reported and skipped without error.
// The first failed removal stops the loop; the returned result lists what was
// deleted before it and the error is a *DeleteError.
func (p *Pruner) Prune(targetPath string, retain int) (PruneResult, error) {
	var result PruneResult

	info, err := p.fs.Stat(targetPath)
	if err != nil || !info.IsDir() {
		p.printf("Folder %s does not exist or is not a folder.\n", targetPath)
		p.logger.Warn("Folder %s does not exist or is not a folder", targetPath)
		result.Skipped = SkipDirInvalid
		return result, nil
	}

	files, err := p.listFiles(targetPath)
	if err != nil {
		return result, fmt.Errorf("list %s: %w", targetPath, err)
	}
	result.Found = len(files)

	if len(files) == 0 {
		p.printf("Folder is empty.\n")
		p.logger.Info("Folder %s is empty", targetPath)
		result.Skipped = SkipEmpty
		return result, nil
	}

	p.printf("Found %d files in folder.\n", len(files))
	p.printf("%d files are to be kept.\n", retain)
	p.logger.Debug("Found %d files in %s, keeping %d", len(files), targetPath, retain)

	excess := len(files) - retain
	if excess <= 0 {
		p.printf("No files need deleting. The folder holds %d files.\n", len(files))
		p.logger.Info("Nothing to delete in %s (%d files)", targetPath, len(files))
		result.Retained = len(files)
		result.Skipped = SkipNothingToDo
		return result, nil
	}

	slices.SortStableFunc(files, func(a, b FileEntry) int {
		return a.ModTime.Compare(b.ModTime)
	})

	p.printf("\nDeleting %d oldest files:\n", excess)
	for _, file := range files[:excess] {
		p.printf("  - %s\n", file.Name)
		if err := p.fs.Remove(filepath.Join(targetPath, file.Name)); err != nil {
			result.Retained = len(files) - len(result.Deleted)
			p.logger.Error("Failed to delete %s: %v", file.Name, err)
			return result, &DeleteError{Name: file.Name, Deleted: len(result.Deleted), Err: err}
		}
		result.Deleted = append(result.Deleted, file.Name)
		result.SpaceFreed += file.Size
		p.logger.Info("Deleted file: %s", file.Name)
	}

	result.Retained = len(files) - len(result.Deleted)
	p.printf("\nDeleted %d files (%s freed). %d files remain in the folder.\n",
		len(result.Deleted), humanize.Bytes(uint64(result.SpaceFreed)), result.Retained)
	p.logger.Info("Deleted %d files from %s, %d remain, %s freed",
		len(result.Deleted), targetPath, result.Retained, humanize.Bytes(uint64(result.SpaceFreed)))
	return result, nil
}

// listFiles returns the regular files directly in dir whose names match the
// pattern, in directory listing order.
func (p *Pruner) listFiles(dir string) ([]FileEntry, error) {
	infos, err := afero.ReadDir(p.fs, dir)
	if err != nil {
		return nil, err
	}

	var files []FileEntry
	for _, info := range infos {
		if !info.Mode().IsRegular() {
			continue
		}
		if !wildcard.Match(p.pattern, info.Name()) {
			continue
		}
		files = append(files, FileEntry{
			Name:    info.Name(),
			ModTime: info.ModTime(),
			Size:    info.Size(),
		})
	}
	return files, nil
}

func (p *Pruner) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}
