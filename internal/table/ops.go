package table

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// take возвращает таблицу из строк с указанными индексами
func (f *Frame) take(indices []int) *Frame {
	out := newFrame(f.columns)
	for _, i := range indices {
		out.appendRow(f.rowValues(i))
	}
	return out
}

// Select оставляет только указанные колонки в указанном порядке
func (f *Frame) Select(columns ...string) (*Frame, error) {
	out := newFrame(columns)
	for i, c := range columns {
		values, err := f.col(c)
		if err != nil {
			return nil, err
		}
		out.values[i] = append([]interface{}(nil), values...)
	}
	out.rows = f.rows
	return out, nil
}

// Filter оставляет строки, для которых pred возвращает true
func (f *Frame) Filter(pred func(Row) bool) *Frame {
	var indices []int
	for i := 0; i < f.rows; i++ {
		if pred(f.Row(i)) {
			indices = append(indices, i)
		}
	}
	return f.take(indices)
}

// FilterIn оставляет строки, где значение колонки входит в набор (сравнение по FormatValue,
// без учета регистра). Пустой набор не фильтрует.
func (f *Frame) FilterIn(column string, values ...string) (*Frame, error) {
	col, err := f.col(column)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return f.take(allIndices(f.rows)), nil
	}

	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[strings.ToLower(v)] = struct{}{}
	}

	var indices []int
	for i, v := range col {
		if _, ok := set[strings.ToLower(FormatValue(v))]; ok {
			indices = append(indices, i)
		}
	}
	return f.take(indices), nil
}

// SortBy стабильно сортирует строки по колонке
func (f *Frame) SortBy(column string, desc bool) (*Frame, error) {
	col, err := f.col(column)
	if err != nil {
		return nil, err
	}

	indices := allIndices(f.rows)
	sort.SliceStable(indices, func(a, b int) bool {
		cmp := compareValues(col[indices[a]], col[indices[b]])
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
	return f.take(indices), nil
}

// Head возвращает первые n строк
func (f *Frame) Head(n int) *Frame {
	if n < 0 {
		n = 0
	}
	if n > f.rows {
		n = f.rows
	}
	return f.take(allIndices(n))
}

// Tail возвращает последние n строк
func (f *Frame) Tail(n int) *Frame {
	if n < 0 {
		n = 0
	}
	if n > f.rows {
		n = f.rows
	}
	indices := make([]int, n)
	for i := range indices {
		indices[i] = f.rows - n + i
	}
	return f.take(indices)
}

// WithColumn возвращает таблицу с добавленной (или замененной) колонкой
func (f *Frame) WithColumn(name string, values []interface{}) (*Frame, error) {
	if len(values) != f.rows {
		return nil, fmt.Errorf("%w: %s has %d values, expected %d", ErrLengthMismatch, name, len(values), f.rows)
	}

	columns := f.Columns()
	if !f.Has(name) {
		columns = append(columns, name)
	}
	out := newFrame(columns)
	for i, c := range columns {
		if c == name {
			out.values[i] = append([]interface{}(nil), values...)
			continue
		}
		out.values[i] = append([]interface{}(nil), f.values[f.index[c]]...)
	}
	out.rows = f.rows
	return out, nil
}

func allIndices(n int) []int {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	return indices
}

// compareValues: nil меньше всего, числа сравниваются как числа, время по времени, остальное как строки
func compareValues(a, b interface{}) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	if x, ok := toFloat(a); ok {
		if y, ok := toFloat(b); ok {
			switch {
			case x < y:
				return -1
			case x > y:
				return 1
			default:
				return 0
			}
		}
	}

	if x, ok := a.(time.Time); ok {
		if y, ok := b.(time.Time); ok {
			return x.Compare(y)
		}
	}

	return strings.Compare(FormatValue(a), FormatValue(b))
}
