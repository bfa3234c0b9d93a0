package repository

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/surrealdb/surrealdb.go/pkg/models"

	"youwilldrive/domain"
)

// ParseRecordID splits a "table:id" reference coming from the API into
// a record id. Malformed references are a caller error.
func ParseRecordID(s string) (models.RecordID, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return models.RecordID{}, &domain.ValidationError{Message: "Некорректный идентификатор записи"}
	}
	return models.NewRecordID(parts[0], parts[1]), nil
}

// asRecordID extracts a record id from a decoded row value.
func asRecordID(v interface{}) (models.RecordID, bool) {
	switch id := v.(type) {
	case models.RecordID:
		return id, true
	case *models.RecordID:
		if id != nil {
			return *id, true
		}
	}
	return models.RecordID{}, false
}

// idString renders a row value holding a record reference as the
// "table:id" form the API speaks.
func idString(v interface{}) string {
	if id, ok := asRecordID(v); ok {
		return id.String()
	}
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// asRow normalizes a decoded value into a Row. The CBOR decoder may
// yield either string-keyed or interface-keyed maps depending on
// nesting depth.
func asRow(v interface{}) Row {
	switch m := v.(type) {
	case Row:
		return m
	case map[interface{}]interface{}:
		out := make(Row, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out
	}
	return nil
}

func asRows(v interface{}) []Row {
	list, ok := v.([]interface{})
	if !ok {
		if r := asRow(v); r != nil {
			return []Row{r}
		}
		return nil
	}
	out := make([]Row, 0, len(list))
	for _, item := range list {
		if r := asRow(item); r != nil {
			out = append(out, r)
		}
	}
	return out
}

// rowsOf returns statement i of a query result as rows.
func rowsOf(results [][]interface{}, i int) []Row {
	if i >= len(results) {
		return nil
	}
	out := make([]Row, 0, len(results[i]))
	for _, v := range results[i] {
		if r := asRow(v); r != nil {
			out = append(out, r)
		}
	}
	return out
}

// firstOf returns the first raw value of statement i, or nil.
func firstOf(results [][]interface{}, i int) interface{} {
	if i >= len(results) || len(results[i]) == 0 {
		return nil
	}
	return results[i][0]
}

func str(row Row, key string) string {
	if row == nil {
		return ""
	}
	if s, ok := row[key].(string); ok {
		return s
	}
	return ""
}

func num(row Row, key string) float64 {
	if row == nil {
		return 0
	}
	switch n := row[key].(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case uint64:
		return float64(n)
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return f
		}
	}
	return 0
}

// timeValue decodes the datetime representations the driver produces.
func timeValue(v interface{}) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case models.CustomDateTime:
		return t.Time, true
	case *models.CustomDateTime:
		if t != nil {
			return t.Time, true
		}
	case string:
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// userFromRow maps a users row (with optional resolved role) onto the
// domain type.
func userFromRow(row Row) domain.User {
	return domain.User{
		ID:         idString(row["id"]),
		Name:       str(row, "name"),
		Surname:    str(row, "surname"),
		Patronymic: str(row, "patronymic"),
		Phone:      str(row, "phone"),
		Email:      str(row, "email"),
		Avatar:     str(row, "avatar"),
		Role:       str(row, "role"),
	}
}
