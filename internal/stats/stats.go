// Package stats tracks timings and counts of a run. Each phase (scanning for
// files, extracting matches, rendering the result) records its start and end,
// and memory usage is captured when the last phase ends.
package stats

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
)

// Stats holds performance metrics for one run.
type Stats struct {
	// Timing for each phase
	ScanStart    time.Time
	ScanEnd      time.Time
	ExtractStart time.Time
	ExtractEnd   time.Time
	RenderStart  time.Time
	RenderEnd    time.Time

	// Counts
	FilesScanned   int
	MatchesFound   int
	UniqueMatches  int
	Ignored        int
	FilesRewritten int

	// Memory stats (captured at end)
	HeapAlloc    uint64
	TotalAlloc   uint64
	NumGC        uint32
	NumGoroutine int
}

// New creates a new Stats instance.
func New() *Stats {
	return &Stats{}
}

// StartScan marks the beginning of the file scanning phase.
func (s *Stats) StartScan() {
	s.ScanStart = time.Now()
}

// EndScan marks the end of the file scanning phase.
func (s *Stats) EndScan(filesFound int) {
	s.ScanEnd = time.Now()
	s.FilesScanned = filesFound
}

// StartExtract marks the beginning of match extraction.
func (s *Stats) StartExtract() {
	s.ExtractStart = time.Now()
}

// EndExtract marks the end of match extraction.
func (s *Stats) EndExtract(found, unique, ignored int) {
	s.ExtractEnd = time.Now()
	s.MatchesFound = found
	s.UniqueMatches = unique
	s.Ignored = ignored
}

// StartRender marks the beginning of the render phase: formatting a report
// or rewriting files.
func (s *Stats) StartRender() {
	s.RenderStart = time.Now()
}

// EndRender marks the end of the render phase and captures memory stats.
func (s *Stats) EndRender(filesRewritten int) {
	s.RenderEnd = time.Now()
	s.FilesRewritten = filesRewritten
	s.captureMemoryStats()
}

func (s *Stats) captureMemoryStats() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	s.HeapAlloc = m.HeapAlloc
	s.TotalAlloc = m.TotalAlloc
	s.NumGC = m.NumGC
	s.NumGoroutine = runtime.NumGoroutine()
}

func span(start, end time.Time) time.Duration {
	if end.IsZero() || start.IsZero() {
		return 0
	}
	return end.Sub(start)
}

// ScanDuration returns the time spent scanning for files.
func (s *Stats) ScanDuration() time.Duration {
	return span(s.ScanStart, s.ScanEnd)
}

// ExtractDuration returns the time spent extracting matches.
func (s *Stats) ExtractDuration() time.Duration {
	return span(s.ExtractStart, s.ExtractEnd)
}

// RenderDuration returns the time spent rendering.
func (s *Stats) RenderDuration() time.Duration {
	return span(s.RenderStart, s.RenderEnd)
}

// TotalDuration returns the time from scan start to the end of the last
// finished phase.
func (s *Stats) TotalDuration() time.Duration {
	for _, end := range []time.Time{s.RenderEnd, s.ExtractEnd, s.ScanEnd} {
		if !end.IsZero() {
			return span(s.ScanStart, end)
		}
	}
	return 0
}

// MatchesPerSecond returns the extraction throughput.
func (s *Stats) MatchesPerSecond() float64 {
	d := s.ExtractDuration()
	if d == 0 || s.MatchesFound == 0 {
		return 0
	}
	return float64(s.MatchesFound) / d.Seconds()
}

// AvgFileTime returns the average extraction time per file.
func (s *Stats) AvgFileTime() time.Duration {
	if s.FilesScanned == 0 {
		return 0
	}
	return s.ExtractDuration() / time.Duration(s.FilesScanned)
}

// FormatDuration formats a duration for display.
func FormatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	return fmt.Sprintf("%dm%.1fs", int(d.Minutes()), d.Seconds()-float64(int(d.Minutes())*60))
}

// FormatBytes formats bytes for human-readable display.
func FormatBytes(bytes uint64) string {
	const (
		kb = 1024
		mb = kb * 1024
		gb = mb * 1024
	)

	switch {
	case bytes >= gb:
		return fmt.Sprintf("%.1f GB", float64(bytes)/gb)
	case bytes >= mb:
		return fmt.Sprintf("%.1f MB", float64(bytes)/mb)
	case bytes >= kb:
		return fmt.Sprintf("%.1f KB", float64(bytes)/kb)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// String returns a formatted string representation of the stats.
func (s *Stats) String() string {
	var b strings.Builder

	total := s.TotalDuration()
	phase := func(label string, d time.Duration) {
		fmt.Fprintf(&b, "  %-15s%8s", label, FormatDuration(d))
		if total > 0 {
			fmt.Fprintf(&b, "  (%4.1f%%)", float64(d)/float64(total)*100)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n=== Performance Statistics ===\n\n")

	b.WriteString("Timing:\n")
	phase("Scan files:", s.ScanDuration())
	phase("Extract:", s.ExtractDuration())
	phase("Render:", s.RenderDuration())
	b.WriteString("  ─────────────────────────\n")
	fmt.Fprintf(&b, "  Total:         %8s\n", FormatDuration(total))

	b.WriteString("\nThroughput:\n")
	fmt.Fprintf(&b, "  Files scanned:     %5d\n", s.FilesScanned)
	fmt.Fprintf(&b, "  Matches found:     %5d\n", s.MatchesFound)
	fmt.Fprintf(&b, "  Unique matches:    %5d\n", s.UniqueMatches)
	if s.Ignored > 0 {
		fmt.Fprintf(&b, "  Ignored:           %5d\n", s.Ignored)
	}
	if s.FilesRewritten > 0 {
		fmt.Fprintf(&b, "  Files rewritten:   %5d\n", s.FilesRewritten)
	}
	fmt.Fprintf(&b, "  Matches/second:  %7.1f\n", s.MatchesPerSecond())
	fmt.Fprintf(&b, "  Avg per file:    %7s\n", FormatDuration(s.AvgFileTime()))

	b.WriteString("\nMemory:\n")
	fmt.Fprintf(&b, "  Heap in use:   %8s\n", FormatBytes(s.HeapAlloc))
	fmt.Fprintf(&b, "  Total alloc:   %8s\n", FormatBytes(s.TotalAlloc))
	fmt.Fprintf(&b, "  GC cycles:     %8d\n", s.NumGC)
	fmt.Fprintf(&b, "  Goroutines:    %8d\n", s.NumGoroutine)

	return b.String()
}

// ToJSON returns a map suitable for JSON serialization.
func (s *Stats) ToJSON() map[string]any {
	return map[string]any{
		"timing": map[string]any{
			"scan_ms":    s.ScanDuration().Milliseconds(),
			"extract_ms": s.ExtractDuration().Milliseconds(),
			"render_ms":  s.RenderDuration().Milliseconds(),
			"total_ms":   s.TotalDuration().Milliseconds(),
		},
		"throughput": map[string]any{
			"files_scanned":      s.FilesScanned,
			"matches_found":      s.MatchesFound,
			"unique_matches":     s.UniqueMatches,
			"ignored":            s.Ignored,
			"files_rewritten":    s.FilesRewritten,
			"matches_per_second": s.MatchesPerSecond(),
		},
		"memory": map[string]any{
			"heap_bytes":  s.HeapAlloc,
			"total_bytes": s.TotalAlloc,
			"gc_cycles":   s.NumGC,
			"goroutines":  s.NumGoroutine,
		},
	}
}

// MarshalLogObject lets the stats be logged with zap.Object.
func (s *Stats) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddDuration("scan", s.ScanDuration())
	enc.AddDuration("extract", s.ExtractDuration())
	enc.AddDuration("render", s.RenderDuration())
	enc.AddDuration("total", s.TotalDuration())
	enc.AddInt("files", s.FilesScanned)
	enc.AddInt("matches", s.MatchesFound)
	enc.AddInt("unique", s.UniqueMatches)
	enc.AddInt("ignored", s.Ignored)
	if s.FilesRewritten > 0 {
		enc.AddInt("rewritten", s.FilesRewritten)
	}
	return nil
}
