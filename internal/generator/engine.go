package generator

// Engine - движок генерации синтетических таблиц.
// Каждый метод генерации сам вызывает States с переданным источником и не делит
// случайное состояние с другими вызовами. Повторные вызовы без общего seed дают разные таблицы.
type Engine struct {
	catalog *Catalog
	params  *Params
}

// NewEngine создает движок; nil-аргументы заменяются каноническими значениями
func NewEngine(catalog *Catalog, params *Params) *Engine {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	if params == nil {
		params = DefaultParams()
	}
	return &Engine{
		catalog: catalog,
		params:  params,
	}
}

// Catalog возвращает справочник штатов движка
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// Params возвращает параметры моделей
func (e *Engine) Params() *Params {
	return e.params
}

// Version возвращает версию параметров, она входит в ключи кеша
func (e *Engine) Version() string {
	return e.params.Version
}

// safeRatio делит a на b, для неположительного знаменателя возвращает 0
func safeRatio(a, b float64) float64 {
	if b <= 0 {
		return 0
	}
	return a / b
}
