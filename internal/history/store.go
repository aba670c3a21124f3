// Package history keeps a record of every finished run in sqlite.
package history

import (
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"time"

	"git.lost.host/meutraa/nota/internal/game"
	"git.lost.host/meutraa/nota/internal/score"
	_ "github.com/mattn/go-sqlite3"
)

// Run is one play through a chart.
type Run struct {
	Sum      string
	PlayedAt time.Time
	Score    int
	Accuracy float64
	Outcome  score.Outcome
	Autoplay bool
	Inputs   []game.Input
}

// LaneInputs is every press of one lane, in the order they happened.
type LaneInputs struct {
	Lane  string
	Times []float64
}

type Store struct {
	Log *log.Logger

	db *sql.DB
}

func compactInputs(inputs []game.Input, lanes []string) []LaneInputs {
	index := map[string]int{}
	ins := make([]LaneInputs, 0, len(lanes))
	for _, l := range lanes {
		index[l] = len(ins)
		ins = append(ins, LaneInputs{Lane: l, Times: []float64{}})
	}
	for _, i := range inputs {
		idx, ok := index[i.Lane]
		if !ok {
			idx = len(ins)
			index[i.Lane] = idx
			ins = append(ins, LaneInputs{Lane: i.Lane})
		}
		ins[idx].Times = append(ins[idx].Times, i.Time)
	}
	return ins
}

func uncompactInputs(inputs []LaneInputs) []game.Input {
	ins := []game.Input{}
	for _, i := range inputs {
		for _, t := range i.Times {
			ins = append(ins, game.Input{Lane: i.Lane, Time: t})
		}
	}
	sort.SliceStable(ins, func(a, b int) bool {
		return ins[a].Time < ins[b].Time
	})
	return ins
}

// Open creates the runs table in the database at path if needed.
func Open(path string, logger *log.Logger) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("unable to open %v: %w", path, err)
	}

	initStatement := `
	create table if not exists runs
	  (
		  id integer not null primary key,
		  sum text,
		  played_at integer,
		  score integer,
		  accuracy real,
		  outcome integer,
		  autoplay integer,
		  inputs bytearray
	  );
	`
	if _, err = db.Exec(initStatement); nil != err {
		db.Close()
		return nil, fmt.Errorf("unable to create runs table: %w", err)
	}
	return &Store{Log: logger, db: db}, nil
}

func (s *Store) Close() error {
	if nil == s.db {
		return nil
	}
	return s.db.Close()
}

// HashChart identifies a chart by its events, whatever file it came from.
func HashChart(c *game.Chart) string {
	h := sha256.New()
	for _, e := range c.Events {
		fmt.Fprintf(h, "%v %v %v\n", e.Name, e.Time, e.Duration)
	}
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

func (s *Store) Save(c *game.Chart, lanes []string, run Run) error {
	data, err := json.Marshal(compactInputs(run.Inputs, lanes))
	if nil != err {
		return fmt.Errorf("unable to marshal inputs: %w", err)
	}
	if run.PlayedAt.IsZero() {
		run.PlayedAt = time.Now()
	}
	_, err = s.db.Exec(
		"insert into runs(sum, played_at, score, accuracy, outcome, autoplay, inputs) values(?, ?, ?, ?, ?, ?, ?)",
		HashChart(c), run.PlayedAt.Unix(), run.Score, run.Accuracy, int(run.Outcome), run.Autoplay, data,
	)
	if nil != err {
		return fmt.Errorf("unable to save run: %w", err)
	}
	return nil
}

// Load returns every run of c, oldest first. Unreadable rows are skipped.
func (s *Store) Load(c *game.Chart) ([]Run, error) {
	runs := []Run{}
	rows, err := s.db.Query(
		"select sum, played_at, score, accuracy, outcome, autoplay, inputs from runs where sum = ? order by played_at, id",
		HashChart(c),
	)
	if nil != err {
		return runs, fmt.Errorf("unable to load runs: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var run Run
		var playedAt int64
		var outcome int
		var data []byte
		if err := rows.Scan(&run.Sum, &playedAt, &run.Score, &run.Accuracy, &outcome, &run.Autoplay, &data); nil != err {
			s.Log.Println("unable to read run", err)
			continue
		}
		var ins []LaneInputs
		if err := json.Unmarshal(data, &ins); nil != err {
			s.Log.Println("unable to unmarshal input history", err)
			continue
		}
		run.PlayedAt = time.Unix(playedAt, 0)
		run.Outcome = score.Outcome(outcome)
		run.Inputs = uncompactInputs(ins)
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Best is the highest scoring run of c, if there is one.
func (s *Store) Best(c *game.Chart) (Run, bool) {
	runs, err := s.Load(c)
	if nil != err {
		s.Log.Println(err)
	}
	best, found := Run{}, false
	for _, r := range runs {
		if !found || r.Score > best.Score {
			best, found = r, true
		}
	}
	return best, found
}
