// Package score persists the high score as a small JSON file. Failures are
// logged and swallowed: the game keeps playing with its in-memory value.
package score

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// EnvPath overrides the high-score file location (useful for tests and
// portable installs).
const EnvPath = "SERPENT_HIGHSCORE"

const fileName = "highscore.json"

// fileData is the on-disk format, keyed by a fixed identifier.
type fileData struct {
	HighScore int `json:"high_score"`
}

// Store reads the high score at startup and writes it fire-and-forget when
// beaten. It implements sim.Store.
type Store struct {
	path string
	log  zerolog.Logger

	mu sync.Mutex // serializes overlapping async writes
	wg sync.WaitGroup
}

// NewStore resolves the default file location: $SERPENT_HIGHSCORE if set,
// else the user config dir, else the working directory.
func NewStore(log zerolog.Logger) *Store {
	if p := os.Getenv(EnvPath); p != "" {
		return NewStoreAt(p, log)
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		log.Warn().Err(err).Msg("no user config dir, saving high score beside the binary")
		return NewStoreAt(fileName, log)
	}
	return NewStoreAt(filepath.Join(dir, "serpent", fileName), log)
}

// NewStoreAt uses an explicit file path.
func NewStoreAt(path string, log zerolog.Logger) *Store {
	return &Store{path: path, log: log}
}

// HighScore loads the stored value. A missing file means no high score yet;
// unreadable or corrupt files are logged and treated the same way.
func (s *Store) HighScore() int {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn().Err(err).Str("path", s.path).Msg("high score unreadable")
		}
		return 0
	}
	var d fileData
	if err := json.Unmarshal(b, &d); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("high score corrupt")
		return 0
	}
	if d.HighScore < 0 {
		return 0
	}
	return d.HighScore
}

// SaveHighScore writes asynchronously. The caller never waits and never
// sees an error; write failures are logged.
func (s *Store) SaveHighScore(v int) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.mu.Lock()
		defer s.mu.Unlock()
		if err := s.write(v); err != nil {
			s.log.Warn().Err(err).Int("high_score", v).Msg("high score not saved")
			return
		}
		s.log.Info().Int("high_score", v).Msg("high score saved")
	}()
}

// Flush waits for in-flight writes. Front ends call it on shutdown.
func (s *Store) Flush() {
	s.wg.Wait()
}

func (s *Store) write(v int) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	b, err := json.Marshal(fileData{HighScore: v})
	if err != nil {
		return err
	}
	// Temp file + rename so a crash mid-write can't truncate the old score.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
