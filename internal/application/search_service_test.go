package application

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/ngobridge/platform-go/internal/domain/search"
	"github.com/ngobridge/platform-go/internal/repository"
	"github.com/ngobridge/platform-go/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupSearchServiceMocks(t *testing.T) (*SavedSearchService, *mock.MockSavedSearchRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockSearch := mock.NewMockSavedSearchRepo(ctrl)
	repos := &repository.Repos{
		SavedSearch: mockSearch,
	}
	return NewSavedSearchService(repos), mockSearch
}

func TestSavedSearchCreate_InvalidType(t *testing.T) {
	svc, _ := setupSearchServiceMocks(t)

	_, err := svc.Create(5, search.CreateSavedSearchInput{SearchType: "jobs", Keywords: "x"})
	assert.ErrorIs(t, err, ErrInvalidSearchType)
}

func TestSavedSearchCreate_EmptyCriteria(t *testing.T) {
	svc, _ := setupSearchServiceMocks(t)

	_, err := svc.Create(5, search.CreateSavedSearchInput{SearchType: "funding", Keywords: "   "})
	assert.ErrorIs(t, err, ErrSearchCriteriaEmpty)
}

func TestSavedSearchCreate_FiltersAloneAreEnough(t *testing.T) {
	svc, mockSearch := setupSearchServiceMocks(t)

	mockSearch.EXPECT().Create(gomock.Any()).Return(nil)

	ss, err := svc.Create(5, search.CreateSavedSearchInput{
		SearchType: "discounts",
		Filters:    map[string]interface{}{"categories": "software"},
	})
	assert.NoError(t, err)
	assert.Equal(t, search.SearchTypeDiscounts, ss.SearchType)
	assert.Equal(t, uint(5), ss.UserID)
}

func TestSavedSearchCreate_DefaultName(t *testing.T) {
	svc, mockSearch := setupSearchServiceMocks(t)

	mockSearch.EXPECT().Create(gomock.Any()).Return(nil).Times(2)

	ss, err := svc.Create(5, search.CreateSavedSearchInput{
		SearchType: "funding",
		Keywords:   "water",
		Filters:    map[string]interface{}{"tags": "rural"},
	})
	assert.NoError(t, err)
	assert.Equal(t, `Search (funding) for "water" [Tags: rural]`, ss.SearchName)

	ss, err = svc.Create(5, search.CreateSavedSearchInput{
		SearchType: "discounts",
		Keywords:   "crm",
		Filters:    map[string]interface{}{"categories": []interface{}{"software", "legal"}},
	})
	assert.NoError(t, err)
	assert.Equal(t, `Search (discounts) for "crm" [Categories: software, legal]`, ss.SearchName)
}

func TestSavedSearchCreate_ExplicitNameKept(t *testing.T) {
	svc, mockSearch := setupSearchServiceMocks(t)

	mockSearch.EXPECT().Create(gomock.Any()).Return(nil)

	ss, err := svc.Create(5, search.CreateSavedSearchInput{
		SearchType: "funding",
		Keywords:   "water",
		SearchName: "My weekly check",
	})
	assert.NoError(t, err)
	assert.Equal(t, "My weekly check", ss.SearchName)
}

func TestSavedSearchDelete_OwnershipEnforced(t *testing.T) {
	svc, mockSearch := setupSearchServiceMocks(t)

	mockSearch.EXPECT().FindOwned(uint(9), uint(5)).
		Return(search.SavedSearch{}, gorm.ErrRecordNotFound)

	err := svc.Delete(9, 5)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSavedSearchDelete_Success(t *testing.T) {
	svc, mockSearch := setupSearchServiceMocks(t)

	mockSearch.EXPECT().FindOwned(uint(9), uint(5)).
		Return(search.SavedSearch{ID: 9, UserID: 5}, nil)
	mockSearch.EXPECT().Delete(uint(9)).Return(nil)

	assert.NoError(t, svc.Delete(9, 5))
}
