package services

import (
	"fmt"
	"strings"

	"campusmarket/internal/domain"
	"campusmarket/internal/repositories"
	"campusmarket/internal/utils"
)

const suggestionLimit = 20

// SearchService runs one catalog query end to end: build the plan,
// count, paginate, fetch, decorate. Count and row fetch are separate
// statements, so under concurrent writes they may observe slightly
// different snapshots; that gap is accepted, the worst case being a
// page count off by a row for one render.
type SearchService struct {
	Listings   repositories.ListingRepository
	Categories repositories.CategoryRepository
	PageLimit  int
	RequestID  string
}

func (s SearchService) limit() int {
	if s.PageLimit > 0 {
		return s.PageLimit
	}
	return 10
}

// Search answers a catalog query. ErrPageOutOfRange propagates to the
// handler, which redirects to the default view.
func (s SearchService) Search(req domain.SearchRequest) (domain.SearchResult, error) {
	plan := repositories.BuildSearchPlan(req)

	total, err := s.Listings.Count(plan)
	if err != nil {
		return domain.SearchResult{}, domain.InternalError{Msg: "search count failed", Err: err}
	}

	page, err := Paginate(total, req.Page, s.limit())
	if err != nil {
		return domain.SearchResult{}, err
	}

	rows, err := s.Listings.Search(plan, page.Limit, page.Offset)
	if err != nil {
		return domain.SearchResult{}, domain.InternalError{Msg: "search query failed", Err: err}
	}

	result := domain.SearchResult{
		Items:       rows,
		Total:       total,
		TotalPages:  page.Total,
		CurrentPage: page.Current,
		PageLimit:   page.Limit,
	}

	if req.CategoryID > 0 {
		name, err := s.Categories.NameOf(req.CategoryID)
		if err != nil {
			return domain.SearchResult{}, domain.InternalError{Msg: "category lookup failed", Err: err}
		}
		result.SelectedCategoryName = name
	}

	utils.LogEvent(s.RequestID, "search", "query",
		fmt.Sprintf("keyword=%q category=%d page=%d total=%d",
			strings.TrimSpace(req.Keyword), req.CategoryID, page.Current, total))

	return result, nil
}

// Suggestions returns public listing names matching a partial keyword.
func (s SearchService) Suggestions(keyword string) ([]string, error) {
	names, err := s.Listings.Suggestions(keyword, suggestionLimit)
	if err != nil {
		return nil, domain.InternalError{Msg: "suggestion query failed", Err: err}
	}
	return names, nil
}
