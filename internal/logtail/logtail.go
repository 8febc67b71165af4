package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Read returns at most maxLines lines from the end of the file at path.
// A non-positive maxLines returns every line. A missing file is empty.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Record is one decoded slog JSON line.
type Record struct {
	Time    time.Time
	Level   slog.Level
	Message string
	Attrs   []Attr
}

// Attr is a record attribute other than time, level and msg.
type Attr struct {
	Key   string
	Value string
}

// Parse decodes a line written by slog's JSON handler. Lines that are not
// JSON objects report false.
func Parse(line string) (Record, bool) {
	var raw map[string]any
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return Record{}, false
	}

	var rec Record
	if s, ok := raw[slog.TimeKey].(string); ok {
		rec.Time, _ = time.Parse(time.RFC3339Nano, s)
	}
	if s, ok := raw[slog.LevelKey].(string); ok {
		_ = rec.Level.UnmarshalText([]byte(s))
	}
	rec.Message, _ = raw[slog.MessageKey].(string)

	for key, value := range raw {
		switch key {
		case slog.TimeKey, slog.LevelKey, slog.MessageKey:
			continue
		}
		rec.Attrs = append(rec.Attrs, Attr{Key: key, Value: formatValue(value)})
	}
	sort.Slice(rec.Attrs, func(i, j int) bool { return rec.Attrs[i].Key < rec.Attrs[j].Key })
	return rec, true
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		if strings.ContainsAny(val, " \t\"") {
			return fmt.Sprintf("%q", val)
		}
		return val
	case float64:
		return fmt.Sprintf("%g", val)
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(data)
	}
}

var (
	timeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#87AFFF"))
	levelStyle = map[slog.Level]lipgloss.Style{
		slog.LevelDebug: lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB")).Bold(true),
		slog.LevelInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD75F")).Bold(true),
		slog.LevelWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
		slog.LevelError: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
	}
)

// Format renders a record on one line: time, level, message, then
// attributes in key order.
func (r Record) Format() string {
	var b strings.Builder
	if !r.Time.IsZero() {
		b.WriteString(timeStyle.Render(r.Time.Local().Format("2006-01-02 15:04:05")))
		b.WriteString(" ")
	}
	style, ok := levelStyle[r.Level]
	if !ok {
		style = lipgloss.NewStyle().Bold(true)
	}
	b.WriteString(style.Render(fmt.Sprintf("%-5s", r.Level.String())))
	b.WriteString(" ")
	b.WriteString(r.Message)
	for _, attr := range r.Attrs {
		b.WriteString(" ")
		b.WriteString(keyStyle.Render(attr.Key + "="))
		b.WriteString(attr.Value)
	}
	return b.String()
}

// FormatLines parses and formats lines, dropping records below minLevel.
// Lines that are not JSON are passed through unchanged.
func FormatLines(lines []string, minLevel slog.Level) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, ok := Parse(line)
		if !ok {
			out = append(out, line)
			continue
		}
		if rec.Level < minLevel {
			continue
		}
		out = append(out, rec.Format())
	}
	return out
}
