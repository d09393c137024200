package generator

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/broadband-analytics/internal/domain"
)

// Priority генерирует таблицу штатов и считает по ней приоритет развития
func (e *Engine) Priority(rng *Rand) []domain.PriorityRecord {
	return Prioritize(e.States(rng), e.params.Priority)
}

// Prioritize - чистая функция: потенциальный эффект (0-10) для каждого штата.
// Больше население, ниже проникновенность и слабее развитие региона - выше приоритет.
func Prioritize(states []domain.StateRecord, p PriorityParams) []domain.PriorityRecord {
	records := make([]domain.PriorityRecord, 0, len(states))
	for _, state := range states {
		popFactor := safeRatio(math.Min(safeRatio(float64(state.Population), p.PopulationScale), p.PopulationCap), p.PopulationCap)
		penFactor := math.Max(0, 1-safeRatio(state.BroadbandPenetration, p.PenetrationCeiling))
		devFactor := regionValue(p.DevelopmentFactors, state.Region)

		score := p.PopulationWeight*popFactor + p.PenetrationWeight*penFactor + p.DevelopmentWeight*devFactor

		records = append(records, domain.PriorityRecord{
			State:              state.StateName,
			StateCode:          StateCode(state.StateName),
			Region:             state.Region,
			Population:         state.Population,
			CurrentPenetration: state.BroadbandPenetration,
			PotentialImpact:    round1(clamp(score*10, 0, 10)),
		})
	}
	return records
}

// StateCode возвращает короткий код штата: две первые буквы для однословных названий,
// первые буквы слов для составных ("Tamil Nadu" -> "TN", "Jammu and Kashmir" -> "JaK")
func StateCode(name string) string {
	words := strings.Fields(name)
	switch len(words) {
	case 0:
		return ""
	case 1:
		if utf8.RuneCountInString(words[0]) <= 2 {
			return words[0]
		}
		return string([]rune(words[0])[:2])
	}

	var b strings.Builder
	for _, w := range words {
		r, _ := utf8.DecodeRuneInString(w)
		b.WriteRune(r)
	}
	return b.String()
}
