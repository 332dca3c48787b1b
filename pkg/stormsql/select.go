// Package stormsql translates a subset of SQL SELECT statements into storm queries.
package stormsql

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/araddon/dateparse"
	"github.com/asdine/storm/v3"
	"github.com/asdine/storm/v3/q"
	"github.com/pkg/errors"
	"github.com/xwb1989/sqlparser"
)

// A SelectClause contains all the parsed SQL data.
type SelectClause struct {
	SelectedFields  []string
	Count           bool
	Tablename       string
	Matcher         q.Matcher
	Skip            int
	Limit           int
	OrderBy         []string
	OrderByReversed bool
}

// ParseSelect parses the given SELECT statement.
func ParseSelect(sql string) (*SelectClause, error) {
	stmt, err := sqlparser.Parse(strings.TrimRight(strings.TrimSpace(sql), ";"))
	if err != nil {
		return nil, errors.Wrap(err, "could not parse SQL")
	}

	s, ok := stmt.(*sqlparser.Select)
	if !ok {
		return nil, errors.New("not a select statement")
	}

	var sc SelectClause

	// SELECT * ...
	// SELECT ID,Description ...
	for _, se := range s.SelectExprs {
		switch v := se.(type) {
		case *sqlparser.StarExpr:
			sc.SelectedFields = []string{}
		case *sqlparser.AliasedExpr:
			switch v := v.Expr.(type) {
			case *sqlparser.ColName:
				sc.SelectedFields = append(sc.SelectedFields, v.Name.String())
			case *sqlparser.FuncExpr:
				if v.Name.Lowered() != "count" {
					return nil, errors.Errorf("unsupported function %s", v.Name.String())
				}
				sc.SelectedFields = []string{}
				sc.Count = true
			default:
				return nil, errors.New("unsupported select expression")
			}
		default:
			return nil, errors.New("unsupported select expression")
		}
	}

	// FROM todos
	if len(s.From) != 1 {
		return nil, errors.New("only one table is supported")
	}
	table, ok := s.From[0].(*sqlparser.AliasedTableExpr)
	if !ok {
		return nil, errors.New("unsupported table expression")
	}
	sc.Tablename = sqlparser.GetTableName(table.Expr).String()

	// WHERE
	sc.Matcher = q.And()
	if s.Where != nil {
		if sc.Matcher, err = parseWhereExpr(s.Where.Expr); err != nil {
			return nil, err
		}
	}

	// LIMIT 5
	// LIMIT 2,5
	if s.Limit != nil {
		if s.Limit.Offset != nil {
			if sc.Skip, err = parseInt(s.Limit.Offset); err != nil {
				return nil, errors.Wrap(err, "offset")
			}
		}
		if sc.Limit, err = parseInt(s.Limit.Rowcount); err != nil {
			return nil, errors.Wrap(err, "limit")
		}
	}

	// ORDER BY Position
	// ORDER BY Position DESC
	// ORDER BY Position DESC, ID ASC     => All will be DESC due to storm limitation
	for _, ob := range s.OrderBy {
		col, ok := ob.Expr.(*sqlparser.ColName)
		if !ok {
			return nil, errors.New("unsupported order by expression")
		}
		if ob.Direction == sqlparser.DescScr {
			sc.OrderByReversed = true
		}
		sc.OrderBy = append(sc.OrderBy, col.Name.String())
	}

	return &sc, nil
}

// Query builds the storm query of the clause on the given node.
func (sc *SelectClause) Query(node storm.Node) storm.Query {
	query := node.Select(sc.Matcher)
	if sc.Skip > 0 {
		query.Skip(sc.Skip)
	}
	if sc.Limit > 0 {
		query.Limit(sc.Limit)
	}
	if len(sc.OrderBy) > 0 {
		query.OrderBy(sc.OrderBy...)
		if sc.OrderByReversed {
			query.Reverse()
		}
	}
	return query
}

func parseWhereExpr(expr sqlparser.Expr) (q.Matcher, error) {
	switch v := expr.(type) {
	//
	//
	//
	case *sqlparser.ComparisonExpr:
		col, ok := v.Left.(*sqlparser.ColName)
		if !ok {
			return nil, errors.New("left operand must be a column")
		}
		field := col.Name.String()
		var value any

		// Parse value
		switch sqlvalue := v.Right.(type) {
		case sqlparser.BoolVal:
			value = bool(sqlvalue)
		case sqlparser.ValTuple:
			var tuple []any
			for _, t := range sqlvalue {
				sv, ok := t.(*sqlparser.SQLVal)
				if !ok {
					return nil, errors.Errorf("unsupported tuple value %s", sqlparser.String(t))
				}
				tv, err := parseSQLVal(sv, field)
				if err != nil {
					return nil, err
				}
				tuple = append(tuple, tv)
			}
			value = tuple
		case *sqlparser.SQLVal:
			var err error
			if value, err = parseSQLVal(sqlvalue, field); err != nil {
				return nil, err
			}
		default:
			return nil, errors.Errorf("unsupported value %s", sqlparser.String(v.Right))
		}

		// Parse operator
		switch v.Operator {
		case sqlparser.EqualStr:
			return q.Eq(field, value), nil
		case sqlparser.NotEqualStr:
			return q.Not(q.Eq(field, value)), nil
		case sqlparser.GreaterThanStr:
			return q.Gt(field, value), nil
		case sqlparser.GreaterEqualStr:
			return q.Gte(field, value), nil
		case sqlparser.InStr:
			return q.In(field, value), nil
		case sqlparser.NotInStr:
			return q.Not(q.In(field, value)), nil
		case sqlparser.LessThanStr:
			return q.Lt(field, value), nil
		case sqlparser.LessEqualStr:
			return q.Lte(field, value), nil
		case sqlparser.LikeStr:
			return q.Re(field, like(value)), nil
		case sqlparser.NotLikeStr:
			return q.Not(q.Re(field, like(value))), nil
		default:
			return nil, errors.Errorf("unsupported operator %s", v.Operator)
		}
		//
		//
		//
	case *sqlparser.IsExpr:
		col, ok := v.Expr.(*sqlparser.ColName)
		if !ok {
			return nil, errors.New("operand must be a column")
		}
		field := col.Name.String()

		switch v.Operator {
		case sqlparser.IsNullStr:
			return q.Eq(field, nil), nil
		case sqlparser.IsNotNullStr:
			return q.Not(q.Eq(field, nil)), nil
		case sqlparser.IsTrueStr:
			return q.Eq(field, true), nil
		case sqlparser.IsFalseStr:
			return q.Eq(field, false), nil
		default:
			return nil, errors.Errorf("unsupported operator %s", v.Operator)
		}
		//
		//
		//
	case *sqlparser.AndExpr:
		left, err := parseWhereExpr(v.Left)
		if err != nil {
			return nil, err
		}
		right, err := parseWhereExpr(v.Right)
		if err != nil {
			return nil, err
		}
		return q.And(left, right), nil
		//
		//
		//
	case *sqlparser.OrExpr:
		left, err := parseWhereExpr(v.Left)
		if err != nil {
			return nil, err
		}
		right, err := parseWhereExpr(v.Right)
		if err != nil {
			return nil, err
		}
		return q.Or(left, right), nil
		//
		//
		//
	case *sqlparser.ParenExpr:
		return parseWhereExpr(v.Expr)
	default:
		return nil, errors.Errorf("unsupported where expression %s", sqlparser.String(expr))
	}
}

// like converts a LIKE pattern into an anchored regular expression.
func like(pattern any) string {
	var re strings.Builder
	re.WriteString("^")
	for _, r := range fmt.Sprintf("%v", pattern) {
		switch r {
		case '%':
			re.WriteString(".*")
		case '_':
			re.WriteString(".")
		default:
			re.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	re.WriteString("$")
	return re.String()
}

func parseInt(expr sqlparser.Expr) (int, error) {
	sv, ok := expr.(*sqlparser.SQLVal)
	if !ok || sv.Type != sqlparser.IntVal {
		return 0, errors.Errorf("not an integer: %s", sqlparser.String(expr))
	}
	return strconv.Atoi(string(sv.Val))
}

// parseSQLVal returns the Go value of v.
// Strings compared to a timestamp field (e.g. CreatedAt) are parsed as dates.
func parseSQLVal(v *sqlparser.SQLVal, field string) (value any, err error) {
	switch v.Type {
	case sqlparser.StrVal:
		value = string(v.Val)

		if strings.HasSuffix(field, "At") {
			if t, err := dateparse.ParseAny(string(v.Val)); err == nil {
				value = t.UTC()
			}
		}
	case sqlparser.IntVal:
		value, err = strconv.Atoi(string(v.Val))
	case sqlparser.FloatVal:
		value, err = strconv.ParseFloat(string(v.Val), 64)
	case sqlparser.HexNum:
		value, err = strconv.ParseInt(strings.TrimPrefix(strings.ToLower(string(v.Val)), "0x"), 16, 64)
	case sqlparser.HexVal:
		value, err = v.HexDecode()
	case sqlparser.BitVal:
		value = len(v.Val) > 0 && v.Val[0] == '1'
	default:
		return nil, errors.New("unsupported value type")
	}

	return value, errors.Wrap(err, "could not parse value")
}
