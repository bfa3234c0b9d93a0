package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// gwOp records one gateway round-trip for order assertions.
type gwOp struct {
	kind string
	sql  string
	name string
	vars map[string]interface{}
	data map[string]interface{}
}

// fakeGateway scripts gateway behavior per test through handler fields
// and records every round-trip in order.
type fakeGateway struct {
	ops []gwOp

	onQuery     func(sql string, vars map[string]interface{}) ([][]interface{}, error)
	onCreate    func(table string, data map[string]interface{}) (Row, error)
	onSelect    func(id models.RecordID) (Row, error)
	onSelectAll func(table string) ([]Row, error)
	onMerge     func(id models.RecordID, data map[string]interface{}) error
	onDelete    func(id models.RecordID) error
}

func (f *fakeGateway) Query(_ context.Context, sql string, vars map[string]interface{}) ([][]interface{}, error) {
	f.ops = append(f.ops, gwOp{kind: "query", sql: sql, vars: vars})
	if f.onQuery != nil {
		return f.onQuery(sql, vars)
	}
	return [][]interface{}{{}}, nil
}

func (f *fakeGateway) Create(_ context.Context, table string, data map[string]interface{}) (Row, error) {
	f.ops = append(f.ops, gwOp{kind: "create", name: table, data: data})
	if f.onCreate != nil {
		return f.onCreate(table, data)
	}
	row := Row{"id": models.NewRecordID(table, "generated")}
	for k, v := range data {
		row[k] = v
	}
	return row, nil
}

func (f *fakeGateway) Select(_ context.Context, id models.RecordID) (Row, error) {
	f.ops = append(f.ops, gwOp{kind: "select", name: id.String()})
	if f.onSelect != nil {
		return f.onSelect(id)
	}
	return nil, nil
}

func (f *fakeGateway) SelectAll(_ context.Context, table string) ([]Row, error) {
	f.ops = append(f.ops, gwOp{kind: "selectAll", name: table})
	if f.onSelectAll != nil {
		return f.onSelectAll(table)
	}
	return nil, nil
}

func (f *fakeGateway) Merge(_ context.Context, id models.RecordID, data map[string]interface{}) error {
	f.ops = append(f.ops, gwOp{kind: "merge", name: id.String(), data: data})
	if f.onMerge != nil {
		return f.onMerge(id, data)
	}
	return nil
}

func (f *fakeGateway) Delete(_ context.Context, id models.RecordID) error {
	f.ops = append(f.ops, gwOp{kind: "delete", name: id.String()})
	if f.onDelete != nil {
		return f.onDelete(id)
	}
	return nil
}

// opTrace renders the recorded round-trips compactly, queries by their
// first keyword phrase.
func (f *fakeGateway) opTrace() []string {
	out := make([]string, 0, len(f.ops))
	for _, op := range f.ops {
		switch op.kind {
		case "query":
			fields := strings.Fields(op.sql)
			n := len(fields)
			if n > 3 {
				n = 3
			}
			out = append(out, "query "+strings.Join(fields[:n], " "))
		default:
			out = append(out, op.kind+" "+op.name)
		}
	}
	return out
}

// stmtResult wraps rows as one statement's result set.
func stmtResult(rows ...Row) []interface{} {
	out := make([]interface{}, 0, len(rows))
	for _, r := range rows {
		out = append(out, r)
	}
	return out
}

// scripted dispatches queries by substring match, in registration order.
type scripted struct {
	steps []scriptStep
}

type scriptStep struct {
	contains string
	result   [][]interface{}
	err      error
}

func (s *scripted) on(substr string, result [][]interface{}) *scripted {
	s.steps = append(s.steps, scriptStep{contains: substr, result: result})
	return s
}

func (s *scripted) onErr(substr string, err error) *scripted {
	s.steps = append(s.steps, scriptStep{contains: substr, err: err})
	return s
}

func (s *scripted) handle(sql string, _ map[string]interface{}) ([][]interface{}, error) {
	for _, step := range s.steps {
		if strings.Contains(sql, step.contains) {
			return step.result, step.err
		}
	}
	return nil, fmt.Errorf("unscripted query: %s", sql)
}
