// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bench

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fxamacker/cbor/v2"
	_ "modernc.org/sqlite"

	"github.com/ajroetker/hwyshade/internal/shader"
)

// ErrNoHistory is returned by Recent when the history holds no runs.
var ErrNoHistory = errors.New("no recorded runs")

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("bench: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// Record is one benchmark run as stored in the history.
type Record struct {
	ID        int64
	StartedAt time.Time
	Dispatch  string // SIMD level the run was detected with
	Lanes     int
	Config    shader.Config
	Result    Result
}

// History is an append-only SQLite log of benchmark runs. The renderer
// configuration of each run is stored as canonical CBOR.
type History struct {
	db     *sql.DB
	dbPath string
}

// OpenHistory opens (creating if needed) the history database at dbPath.
func OpenHistory(dbPath string) (*History, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		started_at INTEGER NOT NULL,
		dispatch   TEXT    NOT NULL,
		lanes      INTEGER NOT NULL,
		config     BLOB    NOT NULL,
		frames     INTEGER NOT NULL,
		total_ns   INTEGER NOT NULL,
		fastest_ns INTEGER NOT NULL,
		slowest_ns INTEGER NOT NULL,
		checksum   TEXT    NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating table: %w", err)
	}

	return &History{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection.
func (h *History) Close() error {
	if h.db != nil {
		return h.db.Close()
	}
	return nil
}

// Add appends rec and returns its assigned ID. rec.ID is ignored.
func (h *History) Add(ctx context.Context, rec Record) (int64, error) {
	cfg, err := cborEncMode.Marshal(rec.Config)
	if err != nil {
		return 0, fmt.Errorf("encoding config: %w", err)
	}

	res, err := h.db.ExecContext(ctx,
		`INSERT INTO runs (started_at, dispatch, lanes, config, frames, total_ns, fastest_ns, slowest_ns, checksum)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.StartedAt.UnixNano(), rec.Dispatch, rec.Lanes, cfg,
		rec.Result.Frames, int64(rec.Result.Total), int64(rec.Result.Fastest), int64(rec.Result.Slowest),
		fmt.Sprintf("%016x", rec.Result.Checksum),
	)
	if err != nil {
		return 0, fmt.Errorf("saving run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("saving run: %w", err)
	}
	log.Debugf("recorded run %d in %s", id, h.dbPath)
	return id, nil
}

// Recent returns up to n runs, newest first.
func (h *History) Recent(ctx context.Context, n int) ([]Record, error) {
	rows, err := h.db.QueryContext(ctx,
		`SELECT id, started_at, dispatch, lanes, config, frames, total_ns, fastest_ns, slowest_ns, checksum
		 FROM runs ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var recs []Record
	for rows.Next() {
		var (
			rec                     Record
			startedAt               int64
			cfg                     []byte
			total, fastest, slowest int64
			checksum                string
		)
		if err := rows.Scan(&rec.ID, &startedAt, &rec.Dispatch, &rec.Lanes, &cfg,
			&rec.Result.Frames, &total, &fastest, &slowest, &checksum); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if err := cbor.Unmarshal(cfg, &rec.Config); err != nil {
			return nil, fmt.Errorf("decoding config of run %d: %w", rec.ID, err)
		}
		if _, err := fmt.Sscanf(checksum, "%x", &rec.Result.Checksum); err != nil {
			return nil, fmt.Errorf("decoding checksum of run %d: %w", rec.ID, err)
		}
		rec.StartedAt = time.Unix(0, startedAt)
		rec.Result.Total = time.Duration(total)
		rec.Result.Fastest = time.Duration(fastest)
		rec.Result.Slowest = time.Duration(slowest)
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	if len(recs) == 0 {
		return nil, ErrNoHistory
	}
	return recs, nil
}
