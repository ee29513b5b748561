package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
)

// Read returns at most maxLines from the end of the file at path. A missing
// file yields no lines; a non-positive maxLines returns every line.
func Read(path string, maxLines int) ([]string, error) {
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
		if maxLines > 0 && len(lines) > 2*maxLines {
			lines = append(lines[:0], lines[len(lines)-maxLines:]...)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	return lines, nil
}

// Entry is one decoded log line.
type Entry struct {
	Time    time.Time // zero when the line carried no timestamp
	Level   string
	Message string
	Fields  map[string]string
}

// reserved keys written by zap's JSON encoder.
var reserved = map[string]bool{
	"ts": true, "level": true, "msg": true, "caller": true, "logger": true, "stacktrace": true,
}

// Parse decodes a zap JSON line. Anything else comes back as a bare message.
func Parse(line string) Entry {
	line = strings.TrimSpace(line)
	var raw map[string]any
	if !strings.HasPrefix(line, "{") || json.Unmarshal([]byte(line), &raw) != nil {
		return Entry{Message: line}
	}

	e := Entry{Fields: make(map[string]string)}
	if ts, ok := raw["ts"].(float64); ok {
		sec := int64(ts)
		e.Time = time.Unix(sec, int64((ts-float64(sec))*float64(time.Second)))
	}
	if level, ok := raw["level"].(string); ok {
		e.Level = strings.ToUpper(level)
	}
	if msg, ok := raw["msg"].(string); ok {
		e.Message = msg
	}
	for k, v := range raw {
		if reserved[k] {
			continue
		}
		e.Fields[k] = fmt.Sprint(v)
	}
	return e
}

// String renders the entry as "15:04:05 INFO message key=value ...", with
// fields in key order.
func (e Entry) String() string {
	var b strings.Builder
	if !e.Time.IsZero() {
		b.WriteString(e.Time.Format("15:04:05"))
		b.WriteByte(' ')
	}
	if e.Level != "" {
		fmt.Fprintf(&b, "%-5s ", e.Level)
	}
	b.WriteString(e.Message)

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%s", k, e.Fields[k])
	}
	return b.String()
}

// Tail reads the last maxLines of path and decodes them.
func Tail(path string, maxLines int) ([]Entry, error) {
	lines, err := Read(path, maxLines)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		entries = append(entries, Parse(line))
	}
	return entries, nil
}
