package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gerunddev/wordcraft/internal/config"
	"github.com/gerunddev/wordcraft/internal/document"
	"github.com/gerunddev/wordcraft/internal/goals"
	"github.com/gerunddev/wordcraft/internal/logger"
	"github.com/gerunddev/wordcraft/internal/state"
	"github.com/sahilm/fuzzy"
)

// Scanner counts every manuscript file under a directory
type Scanner struct {
	config *config.Config
	state  *state.State
	log    *logger.Logger
	now    func() time.Time
}

// NewScanner creates a new scanner instance
func NewScanner(cfg *config.Config, st *state.State) *Scanner {
	return &Scanner{
		config: cfg,
		state:  st,
		log:    logger.Discard(),
		now:    time.Now,
	}
}

// SetLogger sets the logger used while scanning
func (s *Scanner) SetLogger(l *logger.Logger) {
	s.log = l
}

// FileCount is the result for one file
type FileCount struct {
	Path     string // relative to the scan root
	Title    string
	Words    int
	Today    int
	Cached   bool
	Modified time.Time
	Progress goals.Progress
}

// ScanResult represents the result of a scan
type ScanResult struct {
	Root      string
	Files     []FileCount
	Total     int
	Today     int
	Forgotten int // tracked files under Root that no longer exist
	Errors    []error
	StartTime time.Time
	EndTime   time.Time
}

// Scan walks root, counts every matching file and records the counts in state
func (s *Scanner) Scan(root string) (*ScanResult, error) {
	result := &ScanResult{
		Root:      root,
		StartTime: s.now(),
	}
	s.log.ScanStarted(root)

	paths, err := ScanDirectory(root, s.config.Extensions)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	for _, path := range paths {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		if excluded(rel, s.config.ExcludePatterns) {
			s.log.Skipped(path, "excluded")
			continue
		}

		fc, err := s.countFile(path)
		if err != nil {
			s.log.FileError(path, err)
			result.Errors = append(result.Errors, fmt.Errorf("%s: %w", rel, err))
			continue
		}
		fc.Path = rel

		result.Files = append(result.Files, fc)
		result.Total += fc.Words
		result.Today += fc.Today
	}

	result.Forgotten = s.forgetVanished(root)

	sort.Slice(result.Files, func(i, j int) bool {
		return result.Files[i].Path < result.Files[j].Path
	})

	result.EndTime = s.now()
	s.log.ScanCompleted(len(result.Files), result.Total, len(result.Errors), result.EndTime.Sub(result.StartTime))
	return result, nil
}

// countFile counts one file, reusing the recorded count when it is unchanged
func (s *Scanner) countFile(path string) (FileCount, error) {
	started := time.Now()

	doc, err := document.Load(path)
	if err != nil {
		return FileCount{}, err
	}
	fc := FileCount{Title: doc.Title()}

	changed, err := s.state.HasChanged(path)
	if err != nil {
		return FileCount{}, err
	}

	words, known := s.state.Words(path)
	if changed || !known {
		words = doc.Words()
		if err := s.state.Record(path, words, s.now()); err != nil {
			return FileCount{}, err
		}
		s.log.DocumentCounted(path, words, time.Since(started))
	} else {
		fc.Cached = true
	}

	fc.Words = words
	fc.Modified = s.state.GetMTime(path)
	fc.Today = s.state.WrittenOn(path, s.now())
	fc.Progress = goals.Evaluate(doc.Goal(goals.Goal{}), words)
	return fc, nil
}

// forgetVanished drops tracked files under root that no longer exist
func (s *Scanner) forgetVanished(root string) int {
	forgotten := 0
	for path := range s.state.Files {
		rel, err := filepath.Rel(root, path)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			s.state.Forget(path)
			s.log.FileForgotten(path)
			forgotten++
		}
	}
	return forgotten
}

// excluded matches rel and its base name against the exclude patterns
func excluded(rel string, patterns []string) bool {
	base := filepath.Base(rel)
	for _, pattern := range patterns {
		if ok, _ := filepath.Match(pattern, rel); ok {
			return true
		}
		if ok, _ := filepath.Match(pattern, base); ok {
			return true
		}
	}
	return false
}

// ScanDirectory scans a directory for files with any of the given extensions.
// Hidden directories are skipped.
func ScanDirectory(dir string, exts []string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		for _, e := range exts {
			if ext == strings.ToLower(e) {
				files = append(files, path)
				break
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return files, nil
}

// String returns a human-readable summary of the scan result
func (r *ScanResult) String() string {
	duration := r.EndTime.Sub(r.StartTime)
	return fmt.Sprintf(
		"Scan complete: %d files, %d words, %+d today, %d errors (took %v)",
		len(r.Files),
		r.Total,
		r.Today,
		len(r.Errors),
		duration.Round(time.Millisecond),
	)
}

// Filter keeps the files whose path fuzzy-matches query, best match first,
// and recomputes the totals. An empty query keeps everything.
func (r *ScanResult) Filter(query string) *ScanResult {
	if query == "" {
		return r
	}

	paths := make([]string, len(r.Files))
	for i, f := range r.Files {
		paths[i] = f.Path
	}

	out := *r
	out.Files = nil
	out.Total, out.Today = 0, 0
	for _, match := range fuzzy.Find(query, paths) {
		f := r.Files[match.Index]
		out.Files = append(out.Files, f)
		out.Total += f.Words
		out.Today += f.Today
	}
	return &out
}
