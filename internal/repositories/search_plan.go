package repositories

import (
	"strings"

	"campusmarket/internal/domain"
)

// SearchPlan is a deterministic, parameterized query plan: WHERE
// fragments plus their bind values in matching order. The count query
// shares the same predicates, so totals and rows always agree on what
// "matching" means.
type SearchPlan struct {
	Where   []string
	Args    []any
	OrderBy string
}

// sortColumns is the allow-list of sort keys. Anything outside it is
// never forwarded into the query.
var sortColumns = map[string]string{
	"price_asc":  "l.price ASC",
	"price_desc": "l.price DESC",
	"name_asc":   "l.name ASC",
	"name_desc":  "l.name DESC",
	"newest":     "l.id DESC",
}

const defaultOrder = "l.id ASC"

// BuildSearchPlan translates a SearchRequest into predicates and bind
// values. Absent facets contribute nothing; present ones are ANDed.
// Every user-supplied value is bound, never spliced into SQL text.
func BuildSearchPlan(req domain.SearchRequest) SearchPlan {
	plan := SearchPlan{OrderBy: defaultOrder}

	// public catalog only: Active and Ended share visibility
	plan.and("l.status IN (?, ?)", string(domain.StatusActive), string(domain.StatusEnded))

	if kw := strings.TrimSpace(req.Keyword); kw != "" {
		plan.and("LOWER(l.name) LIKE ?", likeArg(kw))
	}
	if req.CategoryID > 0 {
		plan.and("l.category_id = ?", req.CategoryID)
	}
	if min := strings.TrimSpace(req.PriceMin); min != "" {
		plan.and("l.price >= ?", min)
	}
	if max := strings.TrimSpace(req.PriceMax); max != "" {
		plan.and("l.price <= ?", max)
	}
	if cond := strings.TrimSpace(req.Condition); cond != "" {
		plan.and("l.item_condition = ?", cond)
	}

	if order, ok := sortColumns[strings.TrimSpace(req.Sort)]; ok {
		plan.OrderBy = order
	}

	return plan
}

// BuildSuggestionPlan matches a partial keyword over name and
// description, again restricted to the public catalog.
func BuildSuggestionPlan(keyword string) SearchPlan {
	plan := SearchPlan{OrderBy: "l.name ASC"}
	plan.and("l.status IN (?, ?)", string(domain.StatusActive), string(domain.StatusEnded))
	kw := likeArg(strings.TrimSpace(keyword))
	plan.and("(LOWER(l.name) LIKE ? OR LOWER(l.description) LIKE ?)", kw, kw)
	return plan
}

func (p *SearchPlan) and(fragment string, args ...any) {
	p.Where = append(p.Where, fragment)
	p.Args = append(p.Args, args...)
}

// WhereClause joins all predicates with AND.
func (p SearchPlan) WhereClause() string {
	if len(p.Where) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(p.Where, " AND ")
}

func likeArg(keyword string) string {
	return "%" + strings.ToLower(keyword) + "%"
}
