package logtail

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Tail returns the last n lines of the session log at path. A missing log
// yields no lines; n <= 0 returns everything.
func Tail(path string, n int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
		if n > 0 && len(lines) > 2*n {
			lines = append(lines[:0], lines[len(lines)-n:]...)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	if n > 0 && len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines, nil
}

// Render writes lines to w. JSON log events are reformatted for reading
// unless raw is set; anything that is not a log event passes through.
func Render(w io.Writer, lines []string, raw bool) error {
	if raw {
		for _, line := range lines {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	}

	console := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.DateTime,
	}
	for _, line := range lines {
		trimmed := bytes.TrimSpace([]byte(line))
		if len(trimmed) > 0 && trimmed[0] == '{' {
			if _, err := console.Write(trimmed); err == nil {
				continue
			}
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
