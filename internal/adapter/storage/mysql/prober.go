package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"dbprobe/config"
	"dbprobe/internal/core/domain"
	"dbprobe/pkg/apperror"

	"github.com/rs/zerolog"
)

const (
	// ServiceQuery is run by the HTTP probe.
	ServiceQuery = "SELECT 1"
	// CheckQuery is run by the console check.
	CheckQuery = "SELECT VERSION();"
)

// Prober implements ports.Prober against MySQL. Each Probe opens and closes
// its own connection; nothing is shared between calls except the connector.
type Prober struct {
	target string
	query  string
	shape  domain.RowShape
	open   func() (*sql.DB, error)
	log    zerolog.Logger
}

// NewProber creates a prober for cfg that runs query on every call.
func NewProber(cfg config.DatabaseConfig, query string, log zerolog.Logger) (*Prober, error) {
	shape, err := domain.ParseRowShape(cfg.RowShape)
	if err != nil {
		return nil, fmt.Errorf("probe config: %w", err)
	}

	connector, err := newConnector(cfg)
	if err != nil {
		return nil, err
	}

	open := func() (*sql.DB, error) {
		db := sql.OpenDB(connector)
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(0)
		return db, nil
	}

	log.Info().
		Str("addr", cfg.Addr()).
		Str("dbname", cfg.DBName).
		Str("user", cfg.User).
		Str("query", query).
		Dur("connect_timeout", cfg.ConnectTimeout).
		Msg("MySQL prober configured")

	return newProber(cfg.Host, query, shape, open, log), nil
}

func newProber(target, query string, shape domain.RowShape, open func() (*sql.DB, error), log zerolog.Logger) *Prober {
	return &Prober{
		target: target,
		query:  query,
		shape:  shape,
		open:   open,
		log:    log,
	}
}

// Target returns the probed host.
func (p *Prober) Target() string {
	return p.target
}

// Probe runs one connect-query-disconnect cycle.
func (p *Prober) Probe(ctx context.Context) domain.ProbeResult {
	start := time.Now()
	row, err := p.run(ctx)
	took := time.Since(start)

	if err != nil {
		appErr := apperror.ErrProbeFailed(err)
		p.log.Warn().
			Err(err).
			Str("error_code", appErr.Code).
			Str("target", p.target).
			Dur("took", took).
			Msg("database probe failed")
		return domain.Failed(p.target, p.query, appErr, took)
	}

	var data any
	if row != nil {
		data = row.Shape(p.shape)
	}
	p.log.Debug().
		Str("target", p.target).
		Dur("took", took).
		Msg("database probe succeeded")
	return domain.Succeeded(p.target, p.query, data, took)
}

// run returns driver errors unwrapped; their text becomes the probe message.
func (p *Prober) run(ctx context.Context) (*domain.Row, error) {
	db, err := p.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	conn, err := db.Conn(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, p.query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return firstRow(rows)
}

// firstRow reads at most one row. A query with no rows yields nil.
func firstRow(rows *sql.Rows) (*domain.Row, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, rows.Err()
	}

	raw := make([]any, len(cols))
	dest := make([]any, len(cols))
	for i := range raw {
		dest[i] = &raw[i]
	}
	if err := rows.Scan(dest...); err != nil {
		return nil, err
	}

	values := make([]any, len(cols))
	for i, v := range raw {
		values[i] = normalizeValue(v, types[i].DatabaseTypeName())
	}
	return &domain.Row{Columns: cols, Values: values}, nil
}
