package table

import "fmt"

const (
	DefaultVarName   = "variable"
	DefaultValueName = "value"
)

// Melt переводит таблицу из широкого формата в длинный: для каждой колонки из valueVars
// и каждой строки получается строка (idVars..., varName, valueName).
// Пустой valueVars означает все колонки кроме idVars.
func (f *Frame) Melt(idVars, valueVars []string, varName, valueName string) (*Frame, error) {
	if varName == "" {
		varName = DefaultVarName
	}
	if valueName == "" {
		valueName = DefaultValueName
	}

	ids := make(map[string]bool, len(idVars))
	for _, id := range idVars {
		if !f.Has(id) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, id)
		}
		ids[id] = true
	}

	if len(valueVars) == 0 {
		for _, c := range f.columns {
			if !ids[c] {
				valueVars = append(valueVars, c)
			}
		}
	}
	for _, v := range valueVars {
		if !f.Has(v) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, v)
		}
	}

	columns := append(append([]string(nil), idVars...), varName, valueName)
	out := newFrame(columns)
	for _, v := range valueVars {
		values := f.values[f.index[v]]
		for row := 0; row < f.rows; row++ {
			vals := make([]interface{}, 0, len(columns))
			for _, id := range idVars {
				vals = append(vals, f.values[f.index[id]][row])
			}
			vals = append(vals, v, values[row])
			out.appendRow(vals)
		}
	}
	return out, nil
}

// Pivot - обратная к Melt операция: уникальные значения index становятся строками,
// уникальные значения columns - колонками, ячейки берутся из values (последнее значение
// при повторах, nil при отсутствии).
func (f *Frame) Pivot(index, columns, values string) (*Frame, error) {
	indexCol, err := f.col(index)
	if err != nil {
		return nil, err
	}
	nameCol, err := f.col(columns)
	if err != nil {
		return nil, err
	}
	valueCol, err := f.col(values)
	if err != nil {
		return nil, err
	}

	rowPos := make(map[string]int)
	var rowKeys []interface{}
	colPos := make(map[string]int)
	var colNames []string
	cells := make(map[[2]int]interface{})

	for i := 0; i < f.rows; i++ {
		rk := FormatValue(indexCol[i])
		r, ok := rowPos[rk]
		if !ok {
			r = len(rowKeys)
			rowPos[rk] = r
			rowKeys = append(rowKeys, indexCol[i])
		}
		ck := FormatValue(nameCol[i])
		c, ok := colPos[ck]
		if !ok {
			c = len(colNames)
			colPos[ck] = c
			colNames = append(colNames, ck)
		}
		cells[[2]int{r, c}] = valueCol[i]
	}

	out := newFrame(append([]string{index}, colNames...))
	for r, key := range rowKeys {
		vals := make([]interface{}, 0, len(colNames)+1)
		vals = append(vals, key)
		for c := range colNames {
			vals = append(vals, cells[[2]int{r, c}])
		}
		out.appendRow(vals)
	}
	return out, nil
}
