// Package activitylog provides the JSONL-backed cache of fetched activities,
// partitioned by sport type.
package activitylog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"runchart/internal/tracker"

	"github.com/rs/zerolog/log"
)

// Store provides thread-safe, chronological storage for activities.
type Store struct {
	mu   sync.RWMutex
	logs map[string][]tracker.Activity // partitioned by sport type
}

// NewStore creates a new empty Store.
func NewStore() *Store {
	return &Store{
		logs: make(map[string][]tracker.Activity),
	}
}

// Append adds activities to the log for a sport, deduplicating by identity
// and keeping chronological order.
func (s *Store) Append(sport string, activities []tracker.Activity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.logs[sport]

	// 1. Identity map of existing entries for deduplication
	existing := make(map[string]bool)
	for _, a := range entries {
		existing[identity(a)] = true
	}

	// 2. Filter new activities
	newCount := 0
	for _, a := range activities {
		if !existing[identity(a)] {
			entries = append(entries, a)
			existing[identity(a)] = true
			newCount++
		}
	}

	if newCount == 0 {
		return
	}

	// 3. Sort by start date, then ID for deterministic ordering
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].StartDateLocal != entries[j].StartDateLocal {
			return entries[i].StartDateLocal < entries[j].StartDateLocal
		}
		return entries[i].ID < entries[j].ID
	})

	s.logs[sport] = entries
}

// Load reads activities from a JSONL cache file for the given sport.
func (s *Store) Load(cacheDir string, sport string) error {
	path := filepath.Join(cacheDir, fmt.Sprintf("%s.jsonl", sport))
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // No cache yet, not an error
		}
		return fmt.Errorf("failed to open cache: %w", err)
	}
	defer file.Close()

	var activities []tracker.Activity
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var a tracker.Activity
		if err := json.Unmarshal(scanner.Bytes(), &a); err != nil {
			log.Warn().Err(err).Str("sport", sport).Msg("Skipping invalid JSON line in cache")
			continue
		}
		activities = append(activities, a)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading cache: %w", err)
	}

	log.Info().Str("sport", sport).Int("count", len(activities)).Msg("Loaded activities from cache")
	s.Append(sport, activities)
	return nil
}

// Save persists activities for the given sport to a JSONL cache file,
// writing through a temp file and an atomic rename.
func (s *Store) Save(cacheDir string, sport string) error {
	s.mu.RLock()
	entries, ok := s.logs[sport]
	s.mu.RUnlock()

	if !ok || len(entries) == 0 {
		return nil
	}

	path := filepath.Join(cacheDir, fmt.Sprintf("%s.jsonl", sport))
	tmpPath := path + ".tmp"

	file, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create temp cache file: %w", err)
	}

	writer := bufio.NewWriter(file)
	encoder := json.NewEncoder(writer)

	for _, a := range entries {
		if err := encoder.Encode(a); err != nil {
			file.Close()
			os.Remove(tmpPath)
			return fmt.Errorf("failed to encode activity: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		file.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to flush writer: %w", err)
	}

	if err := file.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename cache file: %w", err)
	}

	log.Info().Str("sport", sport).Int("count", len(entries)).Msg("Activities saved to cache")
	return nil
}

// All returns a copy of the activities stored for a sport, oldest first.
func (s *Store) All(sport string) []tracker.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.logs[sport]
	out := make([]tracker.Activity, len(entries))
	copy(out, entries)
	return out
}

// Count returns the number of cached activities for a sport.
func (s *Store) Count(sport string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.logs[sport])
}

// LatestStart returns the start date of the most recent activity for a
// sport, for use as an incremental sync cursor. Zero when the cache is
// empty.
func (s *Store) LatestStart(sport string) time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.logs[sport]
	if len(entries) == 0 {
		return time.Time{}
	}

	// Entries are sorted, so the last one is the latest.
	d, err := entries[len(entries)-1].LocalDate()
	if err != nil {
		return time.Time{}
	}
	return d
}

// identity computes a unique string identifier for an activity to aid
// deduplication.
func identity(a tracker.Activity) string {
	return fmt.Sprintf("%d|%s", a.ID, a.StartDateLocal)
}
