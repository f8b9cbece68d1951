package application

import (
	"fmt"
	"strings"

	"github.com/ngobridge/platform-go/internal/domain/search"
	"github.com/ngobridge/platform-go/internal/repository"
)

type SavedSearchService struct {
	Repos *repository.Repos
}

func NewSavedSearchService(repos *repository.Repos) *SavedSearchService {
	return &SavedSearchService{Repos: repos}
}

func (s *SavedSearchService) Create(userID uint, input search.CreateSavedSearchInput) (*search.SavedSearch, error) {
	if !search.ValidSearchType(input.SearchType) {
		return nil, ErrInvalidSearchType
	}
	if strings.TrimSpace(input.Keywords) == "" && len(input.Filters) == 0 {
		return nil, ErrSearchCriteriaEmpty
	}

	name := strings.TrimSpace(input.SearchName)
	if name == "" {
		name = defaultSearchName(input)
	}

	ss := &search.SavedSearch{
		UserID:     userID,
		SearchType: search.SearchType(input.SearchType),
		Keywords:   input.Keywords,
		SearchName: name,
		Filters:    input.Filters,
	}
	if err := s.Repos.SavedSearch.Create(ss); err != nil {
		return nil, err
	}
	return ss, nil
}

func (s *SavedSearchService) List(userID uint) ([]search.SavedSearch, error) {
	return s.Repos.SavedSearch.FindByUser(userID)
}

func (s *SavedSearchService) Delete(id, userID uint) error {
	if _, err := s.Repos.SavedSearch.FindOwned(id, userID); err != nil {
		return err
	}
	return s.Repos.SavedSearch.Delete(id)
}

// defaultSearchName mirrors the name shown in the UI when the user saves a
// search without naming it, e.g. `Search (funding) for "water" [Tags: rural]`.
func defaultSearchName(input search.CreateSavedSearchInput) string {
	name := fmt.Sprintf("Search (%s)", input.SearchType)
	if kw := strings.TrimSpace(input.Keywords); kw != "" {
		name += fmt.Sprintf(" for %q", kw)
	}
	if tags := filterValue(input.Filters, "tags"); tags != "" {
		name += fmt.Sprintf(" [Tags: %s]", tags)
	}
	if cats := filterValue(input.Filters, "categories"); cats != "" {
		name += fmt.Sprintf(" [Categories: %s]", cats)
	}
	return name
}

func filterValue(filters map[string]interface{}, key string) string {
	v, ok := filters[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case []interface{}:
		parts := make([]string, 0, len(t))
		for _, e := range t {
			parts = append(parts, fmt.Sprint(e))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(t)
	}
}
