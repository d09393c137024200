package table

import (
	"fmt"
	"math"
	"strings"
)

// AggFunc - функция агрегации группы
type AggFunc string

const (
	Sum   AggFunc = "sum"
	Mean  AggFunc = "mean"
	Count AggFunc = "count"
	Min   AggFunc = "min"
	Max   AggFunc = "max"
	First AggFunc = "first"
	Last  AggFunc = "last"
)

// ParseAggFunc разбирает имя функции агрегации
func ParseAggFunc(s string) (AggFunc, bool) {
	switch f := AggFunc(strings.ToLower(strings.TrimSpace(s))); f {
	case Sum, Mean, Count, Min, Max, First, Last:
		return f, true
	}
	return "", false
}

// Agg описывает одну агрегируемую колонку; As - имя результирующей колонки (по умолчанию Column)
type Agg struct {
	Column string
	Func   AggFunc
	As     string
}

func (a Agg) name() string {
	if a.As != "" {
		return a.As
	}
	return a.Column
}

// Grouped - строки таблицы, разбитые по ключевым колонкам в порядке первого появления ключа
type Grouped struct {
	frame  *Frame
	keys   []string
	groups [][]int
}

const keySeparator = "\x1f"

// GroupBy группирует строки по значениям ключевых колонок
func (f *Frame) GroupBy(keys ...string) (*Grouped, error) {
	keyCols := make([][]interface{}, len(keys))
	for i, k := range keys {
		col, err := f.col(k)
		if err != nil {
			return nil, err
		}
		keyCols[i] = col
	}

	positions := make(map[string]int)
	var groups [][]int
	parts := make([]string, len(keys))
	for row := 0; row < f.rows; row++ {
		for i, col := range keyCols {
			parts[i] = FormatValue(col[row])
		}
		key := strings.Join(parts, keySeparator)
		pos, ok := positions[key]
		if !ok {
			pos = len(groups)
			positions[key] = pos
			groups = append(groups, nil)
		}
		groups[pos] = append(groups[pos], row)
	}

	return &Grouped{
		frame:  f,
		keys:   append([]string(nil), keys...),
		groups: groups,
	}, nil
}

// Len возвращает число групп
func (g *Grouped) Len() int {
	return len(g.groups)
}

// Agg считает агрегаты по группам. Результат: ключевые колонки, затем колонки агрегатов.
// sum/mean/min/max требуют числовую колонку и возвращают float64, count - int.
func (g *Grouped) Agg(aggs ...Agg) (*Frame, error) {
	columns := append([]string(nil), g.keys...)
	sources := make([][]interface{}, len(aggs))
	for i, a := range aggs {
		col, err := g.frame.col(a.Column)
		if err != nil {
			return nil, err
		}
		if _, ok := ParseAggFunc(string(a.Func)); !ok {
			return nil, fmt.Errorf("unknown aggregation %q", a.Func)
		}
		sources[i] = col
		columns = append(columns, a.name())
	}

	out := newFrame(columns)
	for _, rows := range g.groups {
		vals := make([]interface{}, 0, len(columns))
		for _, k := range g.keys {
			vals = append(vals, g.frame.values[g.frame.index[k]][rows[0]])
		}
		for i, a := range aggs {
			v, err := aggregate(a.Func, sources[i], rows)
			if err != nil {
				return nil, fmt.Errorf("%s(%s): %w", a.Func, a.Column, err)
			}
			vals = append(vals, v)
		}
		out.appendRow(vals)
	}
	return out, nil
}

func aggregate(fn AggFunc, col []interface{}, rows []int) (interface{}, error) {
	switch fn {
	case Count:
		n := 0
		for _, r := range rows {
			if col[r] != nil {
				n++
			}
		}
		return n, nil
	case First:
		return col[rows[0]], nil
	case Last:
		return col[rows[len(rows)-1]], nil
	}

	nums := make([]float64, 0, len(rows))
	for _, r := range rows {
		if col[r] == nil {
			continue
		}
		x, ok := toFloat(col[r])
		if !ok {
			return nil, ErrNotNumeric
		}
		nums = append(nums, x)
	}
	if len(nums) == 0 {
		return nil, nil
	}

	switch fn {
	case Sum, Mean:
		var s float64
		for _, x := range nums {
			s += x
		}
		if fn == Mean {
			return s / float64(len(nums)), nil
		}
		return s, nil
	case Min:
		m := math.Inf(1)
		for _, x := range nums {
			m = math.Min(m, x)
		}
		return m, nil
	default:
		m := math.Inf(-1)
		for _, x := range nums {
			m = math.Max(m, x)
		}
		return m, nil
	}
}
