package core

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/L-JANUSZ/BackupBuffer/pkg/constants"
	"github.com/spf13/afero"
)

const quoteChars = `"`

// ParseConfig reads the retention settings from path.
//
// Recognised lines:
//
//	Number of files = 5
//	Path: "D:\Backups"
//	Pattern: "*.bak"
//
// Quotes are optional. Anything else is ignored and a repeated key keeps its
// last value.
func ParseConfig(fs afero.Fs, path string) (*Config, error) {
	file, err := fs.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &ConfigError{Kind: ConfigMissing, Path: path, Err: err}
		}
		return nil, &ConfigError{Kind: ConfigUnreadable, Path: path, Err: err}
	}
	defer file.Close()

	var (
		retain    int
		retainSet bool
		target    string
		targetSet bool
	)
	config := &Config{Pattern: constants.DefaultPattern}

	scanner := bufio.NewScanner(file)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, "\uFEFF")
			first = false
		}
		line = strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(line, constants.RetainDirective):
			parts := strings.SplitN(line, "=", 2)
			if len(parts) != 2 {
				return nil, &ConfigError{Kind: ConfigParseError, Path: path,
					Detail: fmt.Sprintf("missing '=' in %q", line)}
			}
			value := unquote(parts[1])
			n, err := strconv.Atoi(value)
			if err != nil {
				return nil, &ConfigError{Kind: ConfigParseError, Path: path,
					Detail: fmt.Sprintf("%s %q", constants.RetainDirective, value), Err: err}
			}
			if n < 0 {
				return nil, &ConfigError{Kind: ConfigParseError, Path: path,
					Detail: fmt.Sprintf("%s must not be negative, got %d", constants.RetainDirective, n)}
			}
			retain, retainSet = n, true
		case strings.HasPrefix(line, constants.PathDirective):
			target, targetSet = unquote(strings.SplitN(line, ":", 2)[1]), true
		case strings.HasPrefix(line, constants.PatternDirective):
			if p := unquote(strings.SplitN(line, ":", 2)[1]); p != "" {
				config.Pattern = p
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &ConfigError{Kind: ConfigUnreadable, Path: path, Err: err}
	}

	var missing []string
	if !retainSet {
		missing = append(missing, constants.RetainDirective)
	}
	if !targetSet || target == "" {
		missing = append(missing, constants.PathDirective)
	}
	if len(missing) > 0 {
		return nil, &ConfigError{Kind: ConfigIncomplete, Path: path,
			Detail: "missing " + strings.Join(missing, ", ")}
	}

	config.RetainCount = retain
	config.TargetPath = target
	return config, nil
}

func unquote(s string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(s), quoteChars))
}
