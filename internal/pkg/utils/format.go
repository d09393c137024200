package utils

import (
	"fmt"
	"math"
)

// FormatLargeNumber форматирует число в индийской нотации: Cr (10^7), L (10^5), K (10^3)
func FormatLargeNumber(n float64) string {
	abs := math.Abs(n)
	switch {
	case abs >= 1e7:
		return fmt.Sprintf("%.2f Cr", n/1e7)
	case abs >= 1e5:
		return fmt.Sprintf("%.2f L", n/1e5)
	case abs >= 1e3:
		return fmt.Sprintf("%.1f K", n/1e3)
	default:
		return fmt.Sprintf("%.0f", n)
	}
}

// FormatPercentage форматирует долю 0-1 как процент с одним знаком
func FormatPercentage(share float64) string {
	return fmt.Sprintf("%.1f%%", share*100)
}

// GrowthRate - среднегодовой темп роста (CAGR) от first до last за years лет.
// Неположительные first или years дают 0.
func GrowthRate(first, last, years float64) float64 {
	if first <= 0 || years <= 0 || last < 0 {
		return 0
	}
	return math.Pow(last/first, 1/years) - 1
}

// PercentChange - относительное изменение от prev к cur; при prev == 0 возвращает 0
func PercentChange(prev, cur float64) float64 {
	if prev == 0 {
		return 0
	}
	return (cur - prev) / prev
}
