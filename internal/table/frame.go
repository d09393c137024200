// Package table - колоночная таблица (data frame) поверх сгенерированных записей:
// имя колонки -> однородная последовательность значений, выровненная по строкам.
// Значения нормализуются к string, int, float64, bool или time.Time.
package table

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"
)

var (
	ErrUnknownColumn  = errors.New("unknown column")
	ErrNotNumeric     = errors.New("column is not numeric")
	ErrLengthMismatch = errors.New("column length mismatch")
	ErrNotStruct      = errors.New("records must be structs")
)

var timeType = reflect.TypeOf(time.Time{})

// Row - одна строка таблицы
type Row map[string]interface{}

// Frame - неизменяемая после построения таблица. Операции возвращают новые таблицы.
type Frame struct {
	columns []string
	index   map[string]int
	values  [][]interface{}
	rows    int
}

func newFrame(columns []string) *Frame {
	f := &Frame{
		columns: append([]string(nil), columns...),
		index:   make(map[string]int, len(columns)),
		values:  make([][]interface{}, len(columns)),
	}
	for i, c := range columns {
		f.index[c] = i
	}
	return f
}

func (f *Frame) appendRow(vals []interface{}) {
	for i := range f.columns {
		f.values[i] = append(f.values[i], vals[i])
	}
	f.rows++
}

// New создает пустую таблицу с заданными колонками
func New(columns ...string) *Frame {
	return newFrame(columns)
}

// FromColumns собирает таблицу из колонок одинаковой длины
func FromColumns(columns []string, data map[string][]interface{}) (*Frame, error) {
	f := newFrame(columns)
	for i, c := range columns {
		col, ok := data[c]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, c)
		}
		if i > 0 && len(col) != f.rows {
			return nil, fmt.Errorf("%w: %s has %d values, expected %d", ErrLengthMismatch, c, len(col), f.rows)
		}
		f.rows = len(col)
		f.values[i] = make([]interface{}, len(col))
		for j, v := range col {
			f.values[i][j] = normalize(reflect.ValueOf(v))
		}
	}
	return f, nil
}

// FromRecords строит таблицу из среза структур. Имена колонок берутся из json-тегов полей,
// поэтому схема таблицы совпадает с JSON-представлением записи. Пустой срез дает таблицу без строк
// с полной схемой.
func FromRecords[T any](records []T) (*Frame, error) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: got %s", ErrNotStruct, t.Kind())
	}

	columns, fields := structColumns(t)
	f := newFrame(columns)

	for _, rec := range records {
		v := reflect.ValueOf(rec)
		if v.Kind() == reflect.Ptr {
			if v.IsNil() {
				continue
			}
			v = v.Elem()
		}
		row := make([]interface{}, len(fields))
		for i, idx := range fields {
			row[i] = normalize(v.Field(idx))
		}
		f.appendRow(row)
	}
	return f, nil
}

// Schema возвращает имена колонок записи типа T
func Schema[T any]() []string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	columns, _ := structColumns(t)
	return columns
}

func structColumns(t reflect.Type) ([]string, []int) {
	var columns []string
	var fields []int
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name := field.Name
		if tag, ok := field.Tag.Lookup("json"); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}
		columns = append(columns, name)
		fields = append(fields, i)
	}
	return columns, fields
}

// normalize приводит значение к одному из базовых типов таблицы
func normalize(v reflect.Value) interface{} {
	if !v.IsValid() {
		return nil
	}
	if v.Type() == timeType {
		return v.Interface()
	}
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(v.Uint())
	case reflect.Float32, reflect.Float64:
		return v.Float()
	case reflect.Bool:
		return v.Bool()
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return normalize(v.Elem())
	default:
		return v.Interface()
	}
}

// Columns возвращает имена колонок в порядке схемы
func (f *Frame) Columns() []string {
	return append([]string(nil), f.columns...)
}

// Len возвращает число строк
func (f *Frame) Len() int {
	return f.rows
}

// Has проверяет наличие колонки
func (f *Frame) Has(column string) bool {
	_, ok := f.index[column]
	return ok
}

func (f *Frame) col(column string) ([]interface{}, error) {
	i, ok := f.index[column]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, column)
	}
	return f.values[i], nil
}

// Column возвращает копию значений колонки
func (f *Frame) Column(column string) ([]interface{}, error) {
	values, err := f.col(column)
	if err != nil {
		return nil, err
	}
	return append([]interface{}(nil), values...), nil
}

// Floats возвращает числовую колонку как []float64
func (f *Frame) Floats(column string) ([]float64, error) {
	values, err := f.col(column)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(values))
	for i, v := range values {
		x, ok := toFloat(v)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNotNumeric, column)
		}
		out[i] = x
	}
	return out, nil
}

// Strings возвращает колонку в строковом представлении
func (f *Frame) Strings(column string) ([]string, error) {
	values, err := f.col(column)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = FormatValue(v)
	}
	return out, nil
}

// Value возвращает значение ячейки
func (f *Frame) Value(row int, column string) (interface{}, error) {
	values, err := f.col(column)
	if err != nil {
		return nil, err
	}
	if row < 0 || row >= f.rows {
		return nil, fmt.Errorf("row %d out of range [0, %d)", row, f.rows)
	}
	return values[row], nil
}

// Row возвращает строку i; выход за границы дает nil
func (f *Frame) Row(i int) Row {
	if i < 0 || i >= f.rows {
		return nil
	}
	row := make(Row, len(f.columns))
	for c, name := range f.columns {
		row[name] = f.values[c][i]
	}
	return row
}

// Records возвращает все строки
func (f *Frame) Records() []Row {
	rows := make([]Row, f.rows)
	for i := range rows {
		rows[i] = f.Row(i)
	}
	return rows
}

// rowValues возвращает значения строки i в порядке колонок
func (f *Frame) rowValues(i int) []interface{} {
	vals := make([]interface{}, len(f.columns))
	for c := range f.columns {
		vals[c] = f.values[c][i]
	}
	return vals
}

type frameJSON struct {
	Columns []string                 `json:"columns"`
	Length  int                      `json:"length"`
	Data    map[string][]interface{} `json:"data"`
}

// MarshalJSON кодирует таблицу по колонкам: {"columns": [...], "length": n, "data": {col: [...]}}
func (f *Frame) MarshalJSON() ([]byte, error) {
	data := make(map[string][]interface{}, len(f.columns))
	for i, c := range f.columns {
		values := f.values[i]
		if values == nil {
			values = []interface{}{}
		}
		data[c] = values
	}
	return json.Marshal(frameJSON{
		Columns: f.columns,
		Length:  f.rows,
		Data:    data,
	})
}

func toFloat(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// FormatValue - строковое представление значения ячейки для CSV, ключей группировки и имен колонок
func FormatValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		v = v.UTC()
		if v.Hour() == 0 && v.Minute() == 0 && v.Second() == 0 && v.Nanosecond() == 0 {
			return v.Format(time.DateOnly)
		}
		return v.Format(time.RFC3339)
	case fmt.Stringer:
		return v.String()
	case float64:
		return fmt.Sprintf("%g", v)
	case int:
		return fmt.Sprintf("%d", v)
	default:
		return fmt.Sprint(v)
	}
}
