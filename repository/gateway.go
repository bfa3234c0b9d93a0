package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"

	"youwilldrive/domain"
)

// Row is one record as the database returns it.
type Row = map[string]interface{}

// Gateway exposes the query primitives every workflow runs on. There
// is no transaction primitive: every multi-step workflow is a sequence
// of independent round-trips, and the gateway never retries.
type Gateway interface {
	// Query runs one or more statements and returns the result set of
	// each, in order.
	Query(ctx context.Context, sql string, vars map[string]interface{}) ([][]interface{}, error)
	Create(ctx context.Context, table string, data map[string]interface{}) (Row, error)
	// Select returns nil without error when the record is absent.
	Select(ctx context.Context, id models.RecordID) (Row, error)
	SelectAll(ctx context.Context, table string) ([]Row, error)
	Merge(ctx context.Context, id models.RecordID, data map[string]interface{}) error
	Delete(ctx context.Context, id models.RecordID) error
}

type surrealGateway struct {
	url       string
	namespace string
	database  string
	username  string
	password  string

	mu   sync.Mutex
	conn *surrealdb.DB
}

// NewGateway builds the SurrealDB-backed gateway. The connection is
// established lazily on first use; a failed attempt leaves the gateway
// unconnected so the next call retries.
func NewGateway(url, namespace, database, username, password string) Gateway {
	return &surrealGateway{
		url:       url,
		namespace: namespace,
		database:  database,
		username:  username,
		password:  password,
	}
}

func (g *surrealGateway) ensure() (*surrealdb.DB, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.conn != nil {
		return g.conn, nil
	}

	db, err := surrealdb.New(g.url)
	if err != nil {
		return nil, &domain.TransportError{Op: "connect", Err: err}
	}
	if err := db.Use(g.namespace, g.database); err != nil {
		return nil, &domain.TransportError{Op: "use", Err: err}
	}
	if _, err := db.SignIn(&surrealdb.Auth{Username: g.username, Password: g.password}); err != nil {
		return nil, &domain.TransportError{Op: "signin", Err: err}
	}

	g.conn = db
	log.Info().Str("url", g.url).Msg("connected to SurrealDB")
	return db, nil
}

func (g *surrealGateway) Query(ctx context.Context, sql string, vars map[string]interface{}) ([][]interface{}, error) {
	db, err := g.ensure()
	if err != nil {
		return nil, err
	}

	res, err := surrealdb.Query[[]interface{}](db, sql, vars)
	if err != nil {
		return nil, &domain.QueryError{Op: "query", Err: err}
	}

	out := make([][]interface{}, 0, len(*res))
	for _, stmt := range *res {
		if stmt.Status != "OK" {
			return nil, &domain.QueryError{Op: "query", Err: fmt.Errorf("statement returned status %s", stmt.Status)}
		}
		out = append(out, stmt.Result)
	}
	return out, nil
}

func (g *surrealGateway) Create(ctx context.Context, table string, data map[string]interface{}) (Row, error) {
	db, err := g.ensure()
	if err != nil {
		return nil, err
	}

	created, err := surrealdb.Create[Row](db, models.Table(table), data)
	if err != nil {
		return nil, &domain.QueryError{Op: "create " + table, Err: err}
	}
	if created == nil {
		return nil, &domain.QueryError{Op: "create " + table, Err: fmt.Errorf("empty create result")}
	}
	return *created, nil
}

func (g *surrealGateway) Select(ctx context.Context, id models.RecordID) (Row, error) {
	db, err := g.ensure()
	if err != nil {
		return nil, err
	}

	record, err := surrealdb.Select[Row](db, id)
	if err != nil {
		return nil, &domain.QueryError{Op: "select " + id.String(), Err: err}
	}
	if record == nil || len(*record) == 0 {
		return nil, nil
	}
	return *record, nil
}

func (g *surrealGateway) SelectAll(ctx context.Context, table string) ([]Row, error) {
	db, err := g.ensure()
	if err != nil {
		return nil, err
	}

	records, err := surrealdb.Select[[]Row](db, models.Table(table))
	if err != nil {
		return nil, &domain.QueryError{Op: "select " + table, Err: err}
	}
	if records == nil {
		return nil, nil
	}
	return *records, nil
}

func (g *surrealGateway) Merge(ctx context.Context, id models.RecordID, data map[string]interface{}) error {
	db, err := g.ensure()
	if err != nil {
		return err
	}

	if _, err := surrealdb.Merge[Row](db, id, data); err != nil {
		return &domain.QueryError{Op: "merge " + id.String(), Err: err}
	}
	return nil
}

func (g *surrealGateway) Delete(ctx context.Context, id models.RecordID) error {
	db, err := g.ensure()
	if err != nil {
		return err
	}

	if _, err := surrealdb.Delete[Row](db, id); err != nil {
		return &domain.QueryError{Op: "delete " + id.String(), Err: err}
	}
	return nil
}
