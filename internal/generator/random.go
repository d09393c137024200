package generator

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/distuv"
)

// pcgStream - второе слово состояния PCG, фиксировано чтобы seed однозначно задавал поток
const pcgStream = 0x9e3779b97f4a7c15

// Rand - явный источник псевдослучайных чисел, передаваемый в каждый генератор.
// Один seed определяет все таблицы, построенные на этом источнике.
// Не безопасен для конкурентного использования: каждый вызов генератора получает свой Rand.
type Rand struct {
	src  *rand.PCG
	rng  *rand.Rand
	seed uint64
}

// NewRand создает детерминированный источник
func NewRand(seed uint64) *Rand {
	src := rand.NewPCG(seed, pcgStream)
	return &Rand{
		src:  src,
		rng:  rand.New(src),
		seed: seed,
	}
}

// NewRandomRand создает источник со случайным seed
func NewRandomRand() *Rand {
	return NewRand(rand.Uint64())
}

// Seed возвращает seed, которым инициализирован источник
func (r *Rand) Seed() uint64 {
	return r.seed
}

// Float64 возвращает число из [0, 1)
func (r *Rand) Float64() float64 {
	return r.rng.Float64()
}

// IntN возвращает число из [0, n)
func (r *Rand) IntN(n int) int {
	if n <= 1 {
		return 0
	}
	return r.rng.IntN(n)
}

// IntRange возвращает число из [lo, hi] включительно
func (r *Rand) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.rng.IntN(hi-lo+1)
}

// Uniform возвращает число из [lo, hi)
func (r *Rand) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*r.rng.Float64()
}

// UniformBand возвращает число из полосы
func (r *Rand) UniformBand(b Band) float64 {
	return r.Uniform(b.Min, b.Max)
}

// Normal - нормальное распределение
func (r *Rand) Normal(mu, sigma float64) float64 {
	if sigma <= 0 {
		return mu
	}
	return distuv.Normal{Mu: mu, Sigma: sigma, Src: r.src}.Rand()
}

// Beta - бета-распределение
func (r *Rand) Beta(alpha, beta float64) float64 {
	return distuv.Beta{Alpha: alpha, Beta: beta, Src: r.src}.Rand()
}

// Dirichlet - симметричное распределение Дирихле размерности n, доли в сумме дают 1
func (r *Rand) Dirichlet(n int, alpha float64) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{1}
	}
	concentration := make([]float64, n)
	for i := range concentration {
		concentration[i] = alpha
	}
	return distmv.NewDirichlet(concentration, r.src).Rand(nil)
}
