package logs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"lookout/internal/app/api"
	"lookout/internal/app/errors"
	"lookout/internal/app/watcher"
	"lookout/internal/config"
	"lookout/internal/config/logger"
)

type fileSource struct {
	dir       string
	pattern   string
	chunkSize int
	log       logger.Logger
}

// NewFileSource reads task logs straight from the monitor's log directory
func NewFileSource(cfg *config.Config, log logger.Logger) (Source, error) {
	if _, err := watcher.NewTaskMatcher(cfg.Logs.Pattern, 0); err != nil {
		return nil, err
	}

	return &fileSource{
		dir:       cfg.Logs.Dir,
		pattern:   cfg.Logs.Pattern,
		chunkSize: config.LogTailChunkSize,
		log:       log.WithComponent("FILES"),
	}, nil
}

// locate returns the most recently modified file for the task, or "" when there is none
func (s *fileSource) locate(taskID int) (string, error) {
	matcher, err := watcher.NewTaskMatcher(s.pattern, taskID)
	if err != nil {
		return "", err
	}

	entries, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return "", nil
	}

	if err != nil {
		return "", fmt.Errorf("%w: %w", errors.ErrFailedToReadLog, err)
	}

	var (
		path   string
		newest int64
	)

	for _, entry := range entries {
		if entry.IsDir() || !matcher.Match(entry.Name()) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		if path == "" || info.ModTime().UnixNano() > newest {
			path = filepath.Join(s.dir, entry.Name())
			newest = info.ModTime().UnixNano()
		}
	}

	return path, nil
}

// Fetch returns bytes from fromPos to the end of the file; the cursor is the file size
func (s *fileSource) Fetch(ctx context.Context, taskID int, fromPos int64) (*api.LogIncrement, error) {
	path, err := s.locate(taskID)
	if err != nil {
		return nil, err
	}

	if path == "" {
		return &api.LogIncrement{}, nil
	}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return &api.LogIncrement{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToOpenLog, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToReadLog, err)
	}

	size := info.Size()
	if fromPos < 0 {
		fromPos = 0
	}

	if fromPos >= size {
		return &api.LogIncrement{NewPos: size}, nil
	}

	data, err := io.ReadAll(io.NewSectionReader(f, fromPos, size-fromPos))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToReadLog, err)
	}

	return &api.LogIncrement{
		NewContent: strings.ToValidUTF8(string(data), "\uFFFD"),
		NewPos:     size,
	}, nil
}

// Tail returns limitLines lines ending offsetLines lines before the end of the file
func (s *fileSource) Tail(ctx context.Context, taskID, offsetLines, limitLines int) (*api.LogPage, error) {
	offsetLines = max(0, offsetLines)

	path, err := s.locate(taskID)
	if err != nil {
		return nil, err
	}

	if path == "" {
		return &api.LogPage{NextOffset: offsetLines}, nil
	}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return &api.LogPage{NextOffset: offsetLines}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToOpenLog, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToReadLog, err)
	}

	lines, hasMore, err := readTailLines(ctx, f, info.Size(), offsetLines, limitLines, s.chunkSize)
	if err != nil {
		return nil, err
	}

	return &api.LogPage{
		Content:    strings.Join(lines, "\n"),
		HasMore:    hasMore,
		NextOffset: offsetLines + len(lines),
		NewPos:     info.Size(),
	}, nil
}

// Clear truncates the task's log file; a missing file is already clear
func (s *fileSource) Clear(ctx context.Context, taskID int) error {
	path, err := s.locate(taskID)
	if err != nil || path == "" {
		return err
	}

	if err := os.Truncate(path, 0); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: %w", errors.ErrFailedToClearLog, err)
	}

	s.log.Info().Str("path", path).Msg("Log file truncated")

	return nil
}

// readTailLines reads backwards in chunks until one line more than needed is buffered,
// so a line cut by the chunk boundary is never returned
func readTailLines(ctx context.Context, r io.ReaderAt, size int64, offset, limit, chunkSize int) ([]string, bool, error) {
	if size == 0 || limit <= 0 {
		return nil, false, nil
	}

	needed := offset + limit
	pos := size

	var (
		buf   []byte
		lines []string
	)

	for pos > 0 && len(lines) <= needed {
		if err := ctx.Err(); err != nil {
			return nil, false, err
		}

		readSize := min(int64(chunkSize), pos)
		pos -= readSize

		chunk := make([]byte, readSize)
		if _, err := r.ReadAt(chunk, pos); err != nil && err != io.EOF {
			return nil, false, fmt.Errorf("%w: %w", errors.ErrFailedToReadLog, err)
		}

		buf = append(chunk, buf...)
		lines = splitLines(buf)
	}

	start := max(0, len(lines)-needed)
	end := max(0, len(lines)-offset)

	var selected []string
	if end > start {
		selected = make([]string, 0, end-start)
		for _, line := range lines[start:end] {
			selected = append(selected, strings.ToValidUTF8(line, "\uFFFD"))
		}
	}

	hasMore := pos > 0 || len(lines) > needed

	return selected, hasMore, nil
}

// splitLines splits on \n and \r\n; a trailing newline does not produce an empty last line
func splitLines(buf []byte) []string {
	if len(buf) == 0 {
		return nil
	}

	text := strings.TrimSuffix(string(buf), "\n")
	lines := strings.Split(text, "\n")

	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}
