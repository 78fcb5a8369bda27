package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/roach88/relcheck/internal/ir"
)

// ErrRunNotFound is returned by ReadRun for an unknown ID.
var ErrRunNotFound = errors.New("run not found")

// MinRelationPrefix is the shortest relation hash prefix ReadRunsByRelation
// accepts.
const MinRelationPrefix = 6

// Run is one recorded analysis.
type Run struct {
	ID            string    `json:"id"`
	Seq           int64     `json:"seq"`
	Source        string    `json:"source"`
	RelationHash  string    `json:"relation_hash"`
	ResultHash    string    `json:"result_hash"`
	Elements      int       `json:"elements"`
	Pairs         int       `json:"pairs"`
	Result        ir.Result `json:"result"`
	IRVersion     string    `json:"ir_version"`
	EngineVersion string    `json:"engine_version"`
}

// NewRun builds a Run for rel and res, computing both content hashes.
// Seq is assigned by WriteRun.
func NewRun(id, source string, rel ir.Relation, res ir.Result) (Run, error) {
	relHash, err := ir.RelationHash(rel)
	if err != nil {
		return Run{}, fmt.Errorf("new run: %w", err)
	}
	resHash, err := ir.ResultHash(res)
	if err != nil {
		return Run{}, fmt.Errorf("new run: %w", err)
	}
	return Run{
		ID:            id,
		Source:        source,
		RelationHash:  relHash,
		ResultHash:    resHash,
		Elements:      rel.Size(),
		Pairs:         rel.Matrix.Count(),
		Result:        res,
		IRVersion:     ir.IRVersion,
		EngineVersion: ir.EngineVersion,
	}, nil
}

// RecordRun generates an ID, builds the run and writes it.
func (s *Store) RecordRun(ctx context.Context, gen IDGenerator, source string, rel ir.Relation, res ir.Result) (Run, error) {
	run, err := NewRun(gen.Generate(), source, rel, res)
	if err != nil {
		return Run{}, err
	}
	return s.WriteRun(ctx, run)
}

// WriteRun appends a run and returns it with its assigned seq.
// Uses ON CONFLICT(id) DO NOTHING for idempotency: writing an existing ID
// returns the stored run unchanged.
func (s *Store) WriteRun(ctx context.Context, run Run) (Run, error) {
	if run.ID == "" {
		return Run{}, fmt.Errorf("write run: id is required")
	}

	resultJSON, err := marshalResult(run.Result)
	if err != nil {
		return Run{}, fmt.Errorf("write run: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs
		(id, seq, source, relation_hash, result_hash, elements, pairs, result, ir_version, engine_version)
		VALUES (?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM runs), ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		run.ID,
		run.Source,
		run.RelationHash,
		run.ResultHash,
		run.Elements,
		run.Pairs,
		resultJSON,
		run.IRVersion,
		run.EngineVersion,
	)
	if err != nil {
		return Run{}, fmt.Errorf("write run: %w", err)
	}

	return s.ReadRun(ctx, run.ID)
}

const selectRuns = `
	SELECT id, seq, source, relation_hash, result_hash, elements, pairs, result, ir_version, engine_version
	FROM runs
`

// ReadRun returns the run with the given ID, or ErrRunNotFound.
func (s *Store) ReadRun(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx, selectRuns+` WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("read run %s: %w", id, ErrRunNotFound)
	}
	if err != nil {
		return Run{}, fmt.Errorf("read run %s: %w", id, err)
	}
	return run, nil
}

// ReadRuns returns runs in seq order. limit <= 0 returns all runs; a
// positive limit returns the most recent limit runs, still in seq order.
//
// Returns an empty slice (not nil) if no runs exist.
func (s *Store) ReadRuns(ctx context.Context, limit int) ([]Run, error) {
	query := selectRuns + ` ORDER BY seq ASC, id COLLATE BINARY ASC`
	args := []any{}
	if limit > 0 {
		query = `SELECT * FROM (` + selectRuns + ` ORDER BY seq DESC LIMIT ?) ORDER BY seq ASC, id COLLATE BINARY ASC`
		args = append(args, limit)
	}
	return s.queryRuns(ctx, query, args...)
}

// ReadRunsByRelation returns every run whose relation hash starts with
// prefix. The full hash and the shortened form shown by history both match.
// Prefixes shorter than MinRelationPrefix are rejected.
func (s *Store) ReadRunsByRelation(ctx context.Context, prefix string) ([]Run, error) {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if len(prefix) < MinRelationPrefix {
		return nil, fmt.Errorf("relation hash prefix %q: need at least %d characters", prefix, MinRelationPrefix)
	}
	return s.queryRuns(ctx,
		selectRuns+` WHERE substr(relation_hash, 1, length(?)) = ? ORDER BY seq ASC, id COLLATE BINARY ASC`,
		prefix, prefix,
	)
}

func (s *Store) queryRuns(ctx context.Context, query string, args ...any) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var run Run
	var resultJSON string
	err := sc.Scan(
		&run.ID,
		&run.Seq,
		&run.Source,
		&run.RelationHash,
		&run.ResultHash,
		&run.Elements,
		&run.Pairs,
		&resultJSON,
		&run.IRVersion,
		&run.EngineVersion,
	)
	if err != nil {
		return Run{}, err
	}
	run.Result, err = unmarshalResult(resultJSON)
	if err != nil {
		return Run{}, err
	}
	return run, nil
}
