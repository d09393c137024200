package generator

import (
	"math"

	"github.com/broadband-analytics/internal/domain"
)

// Lookup - явная тотальная функция поиска: возвращает значение по ключу либо def.
// Все справочные таблицы модели читаются только через неё.
func Lookup[K comparable, V any](table map[K]V, key K, def V) V {
	if v, ok := table[key]; ok {
		return v
	}
	return def
}

// regionValue ищет значение региона, для неизвестного региона берется значение DefaultRegion
func regionValue[V any](table map[domain.Region]V, region domain.Region) V {
	return Lookup(table, region, table[DefaultRegion])
}

// clamp приводит значение к [lo, hi]
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// roundInt округляет произведение населения на долю до целого
func roundInt(population int, share float64) int {
	return int(math.Round(float64(population) * share))
}

// round1 округляет до одного знака после запятой
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// normalize делит вектор на его сумму; нулевой вектор превращается в равномерный
func normalize(v []float64) []float64 {
	var sum float64
	for _, x := range v {
		sum += x
	}
	out := make([]float64, len(v))
	if sum <= 0 {
		for i := range out {
			out[i] = 1 / float64(len(v))
		}
		return out
	}
	for i, x := range v {
		out[i] = x / sum
	}
	return out
}
