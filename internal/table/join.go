package table

// JoinSuffix добавляется к колонкам правой таблицы, имена которых уже есть в левой
const JoinSuffix = "_right"

// Join - внутреннее соединение по равенству leftOn и rightOn (сравнение по FormatValue).
// Ключевая колонка правой таблицы в результат не попадает. Порядок строк - по левой таблице.
func (f *Frame) Join(right *Frame, leftOn, rightOn string) (*Frame, error) {
	leftKeys, err := f.col(leftOn)
	if err != nil {
		return nil, err
	}
	rightKeys, err := right.col(rightOn)
	if err != nil {
		return nil, err
	}

	matches := make(map[string][]int)
	for i, v := range rightKeys {
		key := FormatValue(v)
		matches[key] = append(matches[key], i)
	}

	columns := f.Columns()
	var rightCols []int
	for i, c := range right.columns {
		if c == rightOn {
			continue
		}
		name := c
		if f.Has(name) {
			name += JoinSuffix
		}
		columns = append(columns, name)
		rightCols = append(rightCols, i)
	}

	out := newFrame(columns)
	for i := 0; i < f.rows; i++ {
		for _, j := range matches[FormatValue(leftKeys[i])] {
			vals := f.rowValues(i)
			for _, c := range rightCols {
				vals = append(vals, right.values[c][j])
			}
			out.appendRow(vals)
		}
	}
	return out, nil
}
