package watcher

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gobwas/glob"

	"lookout/internal/app/errors"
	"lookout/internal/config"
)

// Matcher decides whether a file name belongs to a task log
type Matcher interface {
	Match(name string) bool
}

type matcher struct {
	pattern string
	glob    glob.Glob
}

// NewTaskMatcher compiles a log file pattern with the {id} placeholder replaced by taskID
func NewTaskMatcher(pattern string, taskID int) (Matcher, error) {
	expanded := strings.ReplaceAll(pattern, config.TaskIDPlaceholder, strconv.Itoa(taskID))

	g, err := glob.Compile(expanded, '/')
	if err != nil {
		return nil, fmt.Errorf("%w: '%s': %w", errors.ErrInvalidGlobPattern, pattern, err)
	}

	return &matcher{pattern: expanded, glob: g}, nil
}

// Match checks the base name only, logs directories are not searched recursively
func (m *matcher) Match(name string) bool {
	return m.glob.Match(filepath.Base(filepath.ToSlash(name)))
}

func (m *matcher) String() string {
	return m.pattern
}
