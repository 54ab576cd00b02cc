package state

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// HistoryDays is how many days of history are kept per file
const HistoryDays = 90

const dateFormat = "2006-01-02"

// Day is the word count of a file over one calendar day
type Day struct {
	Date  string `json:"date"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Written returns the net words written that day
func (d Day) Written() int {
	return d.End - d.Start
}

// FileState represents the state of a single file
type FileState struct {
	MTime   int64  `json:"mtime"`
	Hash    string `json:"hash"`
	Words   int    `json:"words"`
	History []Day  `json:"history,omitempty"`
}

// State represents the word-count history of every tracked file
type State struct {
	Files map[string]*FileState `json:"files"`
}

// NewState creates a new empty state
func NewState() *State {
	return &State{
		Files: make(map[string]*FileState),
	}
}

// Load reads state from the state file
func Load(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewState(), nil
		}
		return nil, err
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse state: %w", err)
	}

	if state.Files == nil {
		state.Files = make(map[string]*FileState)
	}

	return &state, nil
}

// Save writes state to the state file
func (s *State) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}

	return nil
}

// ComputeHash computes SHA256 hash of a file
func ComputeHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("sha256:%x", h.Sum(nil)), nil
}

// HasChanged checks if a file has changed since it was last recorded
// Uses hybrid mtime + hash approach
func (s *State) HasChanged(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}

	fileState, exists := s.Files[path]
	if !exists {
		// New file
		return true, nil
	}

	// Fast path: check mtime first
	if info.ModTime().Unix() == fileState.MTime {
		return false, nil
	}

	// mtime changed, compute hash to check for actual content changes
	hash, err := ComputeHash(path)
	if err != nil {
		return false, err
	}

	return hash != fileState.Hash, nil
}

// Record stores the current word count of a file and folds it into today's
// history entry
func (s *State) Record(path string, words int, now time.Time) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	hash, err := ComputeHash(path)
	if err != nil {
		return err
	}

	fileState, exists := s.Files[path]
	if !exists {
		fileState = &FileState{}
		s.Files[path] = fileState
	}
	fileState.MTime = info.ModTime().Unix()
	fileState.Hash = hash

	today := now.Format(dateFormat)
	n := len(fileState.History)
	switch {
	case n > 0 && fileState.History[n-1].Date == today:
		fileState.History[n-1].End = words
	case exists:
		// New day starts where the last recorded count left off
		fileState.History = append(fileState.History, Day{Date: today, Start: fileState.Words, End: words})
	default:
		// First sighting, existing text was not written today
		fileState.History = append(fileState.History, Day{Date: today, Start: words, End: words})
	}
	fileState.Words = words

	if len(fileState.History) > HistoryDays {
		fileState.History = fileState.History[len(fileState.History)-HistoryDays:]
	}

	return nil
}

// Words returns the last recorded word count of a file
func (s *State) Words(path string) (int, bool) {
	fileState, exists := s.Files[path]
	if !exists {
		return 0, false
	}
	return fileState.Words, true
}

// WrittenOn returns the net words written to a file on the given day
func (s *State) WrittenOn(path string, day time.Time) int {
	fileState, exists := s.Files[path]
	if !exists {
		return 0
	}
	date := day.Format(dateFormat)
	for i := len(fileState.History) - 1; i >= 0; i-- {
		if fileState.History[i].Date == date {
			return fileState.History[i].Written()
		}
	}
	return 0
}

// WrittenToday returns the net words written to a file today
func (s *State) WrittenToday(path string) int {
	return s.WrittenOn(path, time.Now())
}

// TotalWrittenOn sums WrittenOn across every tracked file
func (s *State) TotalWrittenOn(day time.Time) int {
	total := 0
	for path := range s.Files {
		total += s.WrittenOn(path, day)
	}
	return total
}

// GetMTime returns the recorded modification time for a file
func (s *State) GetMTime(path string) time.Time {
	if fileState, exists := s.Files[path]; exists {
		return time.Unix(fileState.MTime, 0)
	}
	return time.Time{}
}

// Forget drops a file from the state
func (s *State) Forget(path string) {
	delete(s.Files, path)
}
