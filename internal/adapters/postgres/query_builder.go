package postgres

import (
	"fmt"
	"land-catalog/internal/core/domain"
	"strings"
)

type queryBuilder struct {
	conditions []string
	args       []interface{}
	argId      int
}

func newQueryBuilder() *queryBuilder {
	return &queryBuilder{
		argId:      1,
		conditions: []string{"p.is_visible = true"},
		args:       make([]interface{}, 0),
	}
}

func (qb *queryBuilder) addCondition(condition string, fieldName string, arg interface{}) {
	qb.conditions = append(qb.conditions, fmt.Sprintf(condition, fieldName, qb.argId))
	qb.args = append(qb.args, arg)
	qb.argId++
}

// AddFloatFilter добавляет включительные границы диапазона
func (qb *queryBuilder) AddFloatFilter(fieldName string, min *float64, max *float64) {
	if min != nil {
		qb.addCondition("%s >= $%d", fieldName, *min)
	}
	if max != nil {
		qb.addCondition("%s <= $%d", fieldName, *max)
	}
}

// addSearch ищет подстроку в названии или в любом из кадастровых номеров
func (qb *queryBuilder) addSearch(term string) {
	condition := fmt.Sprintf(
		"(p.title ILIKE $%d OR EXISTS (SELECT 1 FROM unnest(p.cadastral_numbers) AS cn WHERE cn ILIKE $%d))",
		qb.argId, qb.argId,
	)
	qb.conditions = append(qb.conditions, condition)
	qb.args = append(qb.args, "%"+escapeLike(term)+"%")
	qb.argId++
}

// build создает WHERE и список аргументов
func (qb *queryBuilder) build() (string, []interface{}) {
	return "WHERE " + strings.Join(qb.conditions, " AND "), qb.args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike экранирует спецсимволы LIKE, чтобы поиск был буквальным
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// applyFilters разбирает фильтры каталога в WHERE-условие
func applyFilters(filters domain.PlotFilters) (string, []interface{}) {
	qb := newQueryBuilder()

	if search := strings.TrimSpace(filters.Search); search != "" {
		qb.addSearch(search)
	}

	if filters.Region != "" {
		qb.addCondition("%s = $%d", "p.region", filters.Region)
	}
	if filters.Location != "" {
		qb.addCondition("%s = $%d", "p.location", filters.Location)
	}
	if filters.LandCategory != "" {
		qb.addCondition("%s = $%d", "p.land_category", filters.LandCategory)
	}
	if filters.Status != nil {
		qb.addCondition("%s = $%d", "p.status", string(*filters.Status))
	}

	qb.AddFloatFilter("p.price", filters.PriceMin, filters.PriceMax)
	qb.AddFloatFilter("p.area", filters.AreaMin, filters.AreaMax)

	return qb.build()
}

// orderByClause - порядок выдачи; id в том же направлении делает его полным
func orderByClause(sort domain.SortOrder) string {
	switch sort {
	case domain.SortOldest:
		return "ORDER BY p.created_at ASC, p.id ASC"
	case domain.SortPriceAsc:
		return "ORDER BY p.price ASC, p.id ASC"
	case domain.SortPriceDesc:
		return "ORDER BY p.price DESC, p.id DESC"
	default:
		return "ORDER BY p.created_at DESC, p.id DESC"
	}
}
