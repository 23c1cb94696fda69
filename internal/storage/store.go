package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/san-kum/invdyn/internal/analysis"
	"github.com/san-kum/invdyn/internal/config"
	"github.com/san-kum/invdyn/internal/mdp"
)

const (
	metadataFile = "metadata.json"
	dynamicsFile = "dynamics.csv"
)

var ErrCorruptRun = errors.New("storage: corrupt run data")

var csvHeader = []string{"state", "action", "next_state", "reward", "probability"}

type Store struct {
	baseDir string
	clock   quartz.Clock
	logger  *log.Logger
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, clock: quartz.NewReal(), logger: log.Default()}
}

// WithClock replaces the clock used for run ids and timestamps.
func (s *Store) WithClock(c quartz.Clock) *Store {
	s.clock = c
	return s
}

func (s *Store) WithLogger(l *log.Logger) *Store {
	s.logger = l
	return s
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string           `json:"id"`
	Timestamp time.Time        `json:"timestamp"`
	Config    config.Config    `json:"config"`
	Summary   analysis.Summary `json:"summary"`
}

// Save writes dyn and its scenario to a new run directory and returns the
// run id.
func (s *Store) Save(cfg *config.Config, dyn mdp.Dynamics) (string, error) {
	now := s.clock.Now()
	runID, runDir, err := s.newRunDir(cfg.Name, now)
	if err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: now,
		Config:    *cfg,
		Summary:   analysis.Summarize(dyn),
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, dynamicsFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := WriteCSV(csvFile, dyn); err != nil {
		return "", err
	}

	s.logger.Debug("saved run", "id", runID, "pairs", meta.Summary.Pairs, "outcomes", meta.Summary.Outcomes)
	return runID, nil
}

func (s *Store) newRunDir(name string, now time.Time) (string, string, error) {
	if name == "" {
		name = "run"
	}
	base := fmt.Sprintf("%s_%d", strings.NewReplacer("/", "-", string(filepath.Separator), "-").Replace(name), now.Unix())

	for i := 0; ; i++ {
		runID := base
		if i > 0 {
			runID = fmt.Sprintf("%s_%d", base, i)
		}
		runDir := filepath.Join(s.baseDir, runID)
		err := os.Mkdir(runDir, 0755)
		if err == nil {
			return runID, runDir, nil
		}
		if !os.IsExist(err) {
			return "", "", err
		}
	}
}

// WriteCSV writes one row per outcome in pair order. A pair without
// outcomes is written as a row with empty outcome columns so it survives
// a round trip.
func WriteCSV(out io.Writer, dyn mdp.Dynamics) error {
	w := csv.NewWriter(out)

	if err := w.Write(csvHeader); err != nil {
		return err
	}

	for _, pair := range dyn.Pairs() {
		s := strconv.Itoa(pair.State)
		a := strconv.Itoa(pair.Action)

		trans := dyn[pair]
		if len(trans) == 0 {
			if err := w.Write([]string{s, a, "", "", ""}); err != nil {
				return err
			}
			continue
		}

		for _, o := range trans.Outcomes() {
			row := []string{
				s, a,
				strconv.Itoa(o.Next),
				strconv.FormatFloat(o.Reward, 'g', -1, 64),
				strconv.FormatFloat(trans[o], 'g', -1, 64),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}

	w.Flush()
	return w.Error()
}

// ReadCSV parses the format written by WriteCSV.
func ReadCSV(in io.Reader) (mdp.Dynamics, error) {
	r := csv.NewReader(in)
	r.FieldsPerRecord = len(csvHeader)

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptRun, err)
	}

	dyn := make(mdp.Dynamics)
	for i, record := range records {
		if i == 0 {
			continue
		}

		pair, err := parsePair(record)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrCorruptRun, i+1, err)
		}
		trans, ok := dyn[pair]
		if !ok {
			trans = make(mdp.Transitions)
			dyn[pair] = trans
		}

		if record[2] == "" {
			continue
		}

		next, err := strconv.Atoi(record[2])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrCorruptRun, i+1, err)
		}
		reward, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrCorruptRun, i+1, err)
		}
		prob, err := strconv.ParseFloat(record[4], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrCorruptRun, i+1, err)
		}
		trans[mdp.Outcome{Next: next, Reward: reward}] = prob
	}

	return dyn, nil
}

func parsePair(record []string) (mdp.Pair, error) {
	s, err := strconv.Atoi(record[0])
	if err != nil {
		return mdp.Pair{}, err
	}
	a, err := strconv.Atoi(record[1])
	if err != nil {
		return mdp.Pair{}, err
	}
	return mdp.Pair{State: s, Action: a}, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			s.logger.Warn("skipping unreadable run", "dir", entry.Name(), "err", err)
			continue
		}

		runs = append(runs, *meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptRun, err)
	}

	return &meta, nil
}

func (s *Store) LoadDynamics(runID string) (mdp.Dynamics, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, dynamicsFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ReadCSV(file)
}
