package application

import (
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/ngobridge/platform-go/internal/domain/opportunity"
	"github.com/ngobridge/platform-go/internal/domain/profile"
	"github.com/ngobridge/platform-go/internal/repository"
	"github.com/ngobridge/platform-go/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type opportunityMocks struct {
	opportunity *mock.MockOpportunityRepo
	submission  *mock.MockSubmissionRepo
	profile     *mock.MockProfileRepo
}

func setupOpportunityServiceMocks(t *testing.T) (*OpportunityService, opportunityMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := opportunityMocks{
		opportunity: mock.NewMockOpportunityRepo(ctrl),
		submission:  mock.NewMockSubmissionRepo(ctrl),
		profile:     mock.NewMockProfileRepo(ctrl),
	}
	repos := &repository.Repos{
		Opportunity: m.opportunity,
		Submission:  m.submission,
		Profile:     m.profile,
	}
	return NewOpportunityService(repos), m
}

func ownedOpportunity(id, funderID uint) opportunity.FundingOpportunity {
	funder := funderID
	return opportunity.FundingOpportunity{
		ID:           id,
		Title:        "Clean Water Grant",
		Description:  "Grants for water projects",
		FunderUserID: &funder,
	}
}

// --------------------- Create ---------------------

func TestCreateByFunder_ProfileNameWins(t *testing.T) {
	svc, m := setupOpportunityServiceMocks(t)

	m.profile.EXPECT().GetFunderProfileByUserID(uint(2)).
		Return(profile.FunderProfile{UserID: 2, OrganizationName: "Aqua Foundation"}, nil)

	var created *opportunity.FundingOpportunity
	m.opportunity.EXPECT().Create(gomock.Any()).
		DoAndReturn(func(o *opportunity.FundingOpportunity) error {
			created = o
			return nil
		})

	input := opportunity.CreateOpportunityInput{
		Title:           "Clean Water Grant",
		FunderName:      "Typed By Hand",
		Description:     "Grants for water projects",
		ApplicationLink: "https://aqua.org/apply",
	}
	o, err := svc.CreateByFunder(2, input)
	assert.NoError(t, err)
	assert.Equal(t, "Aqua Foundation", o.FunderName)
	assert.Equal(t, uint(2), *created.FunderUserID)
	assert.Nil(t, created.PostedByAdminID)
}

func TestCreateByFunder_NoNameAnywhere(t *testing.T) {
	svc, m := setupOpportunityServiceMocks(t)

	m.profile.EXPECT().GetFunderProfileByUserID(uint(2)).
		Return(profile.FunderProfile{}, gorm.ErrRecordNotFound)

	input := opportunity.CreateOpportunityInput{
		Title:           "Grant",
		Description:     "desc",
		ApplicationLink: "https://x",
	}
	_, err := svc.CreateByFunder(2, input)
	assert.ErrorIs(t, err, ErrFunderNameRequired)
}

func TestCreateByFunder_SchemaStored(t *testing.T) {
	svc, m := setupOpportunityServiceMocks(t)

	m.profile.EXPECT().GetFunderProfileByUserID(uint(2)).
		Return(profile.FunderProfile{OrganizationName: "Aqua"}, nil)

	var created *opportunity.FundingOpportunity
	m.opportunity.EXPECT().Create(gomock.Any()).
		DoAndReturn(func(o *opportunity.FundingOpportunity) error {
			created = o
			return nil
		})

	input := opportunity.CreateOpportunityInput{
		Title:                "Grant",
		Description:          "desc",
		ApplicationLink:      "https://x",
		AcceptsIntegratedApp: true,
		IntegratedAppFields:  json.RawMessage(`[{"label": "Budget", "required": true}]`),
	}
	_, err := svc.CreateByFunder(2, input)
	assert.NoError(t, err)

	fields, err := created.Fields()
	assert.NoError(t, err)
	assert.Len(t, fields, 1)
	assert.Equal(t, "Budget", fields[0].Label)
	assert.True(t, fields[0].Required)
}

func TestCreateByFunder_BadSchemaRejected(t *testing.T) {
	svc, m := setupOpportunityServiceMocks(t)

	m.profile.EXPECT().GetFunderProfileByUserID(uint(2)).
		Return(profile.FunderProfile{OrganizationName: "Aqua"}, nil)

	input := opportunity.CreateOpportunityInput{
		Title:                "Grant",
		Description:          "desc",
		ApplicationLink:      "https://x",
		AcceptsIntegratedApp: true,
		IntegratedAppFields:  json.RawMessage(`[{"label": ""}]`),
	}
	_, err := svc.CreateByFunder(2, input)
	var serr *opportunity.SchemaError
	assert.ErrorAs(t, err, &serr)
}

func TestCreateByFunder_InvalidDeadline(t *testing.T) {
	svc, m := setupOpportunityServiceMocks(t)

	m.profile.EXPECT().GetFunderProfileByUserID(uint(2)).
		Return(profile.FunderProfile{OrganizationName: "Aqua"}, nil)

	bad := "12/31/2026"
	input := opportunity.CreateOpportunityInput{
		Title:               "Grant",
		Description:         "desc",
		ApplicationLink:     "https://x",
		ApplicationDeadline: &bad,
	}
	_, err := svc.CreateByFunder(2, input)
	assert.ErrorIs(t, err, ErrInvalidDeadline)
}

func TestCreateByAdmin_RequiresFunderName(t *testing.T) {
	svc, _ := setupOpportunityServiceMocks(t)

	_, err := svc.CreateByAdmin(1, opportunity.CreateOpportunityInput{
		Title:           "Grant",
		Description:     "desc",
		ApplicationLink: "https://x",
	})
	assert.ErrorIs(t, err, ErrFunderNameRequired)
}

// --------------------- Update ---------------------

func TestUpdate_DisablingIntegratedAppClearsSchema(t *testing.T) {
	svc, m := setupOpportunityServiceMocks(t)

	opp := ownedOpportunity(10, 2)
	opp.AcceptsIntegratedApp = true
	assert.NoError(t, opp.SetFields([]opportunity.FieldDefinition{{Label: "Budget", Required: true}}))

	m.opportunity.EXPECT().FindByID(uint(10)).Return(opp, nil)

	var saved *opportunity.FundingOpportunity
	m.opportunity.EXPECT().Save(gomock.Any()).
		DoAndReturn(func(o *opportunity.FundingOpportunity) error {
			saved = o
			return nil
		})

	// schema payload arrives alongside the disable; it must still clear
	input := opportunity.UpdateOpportunityInput{
		AcceptsIntegratedApp: false,
		IntegratedAppFields:  json.RawMessage(`[{"label": "Budget"}]`),
	}
	o, err := svc.UpdateOwned(10, 2, input)
	assert.NoError(t, err)
	assert.False(t, o.AcceptsIntegratedApp)
	assert.Nil(t, saved.IntegratedAppFields)
}

func TestUpdate_KeepsTitleWhenOmitted(t *testing.T) {
	svc, m := setupOpportunityServiceMocks(t)

	opp := ownedOpportunity(10, 2)
	m.opportunity.EXPECT().FindByID(uint(10)).Return(opp, nil)
	m.opportunity.EXPECT().Save(gomock.Any()).Return(nil)

	o, err := svc.UpdateOwned(10, 2, opportunity.UpdateOpportunityInput{Tags: "water,africa"})
	assert.NoError(t, err)
	assert.Equal(t, "Clean Water Grant", o.Title)
	assert.Equal(t, "water,africa", o.Tags)
}

func TestUpdateOwned_ForeignOpportunityHidden(t *testing.T) {
	svc, m := setupOpportunityServiceMocks(t)

	m.opportunity.EXPECT().FindByID(uint(10)).Return(ownedOpportunity(10, 2), nil)

	_, err := svc.UpdateOwned(10, 99, opportunity.UpdateOpportunityInput{Title: "Hijacked"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

// --------------------- Delete ---------------------

func TestDeleteOwned_RefusedWhileApplicationsExist(t *testing.T) {
	svc, m := setupOpportunityServiceMocks(t)

	m.opportunity.EXPECT().FindByID(uint(10)).Return(ownedOpportunity(10, 2), nil)
	m.submission.EXPECT().CountByOpportunity(uint(10)).Return(int64(3), nil)

	err := svc.DeleteOwned(10, 2)
	assert.ErrorIs(t, err, ErrHasSubmissions)
}

func TestDeleteOwned_Success(t *testing.T) {
	svc, m := setupOpportunityServiceMocks(t)

	m.opportunity.EXPECT().FindByID(uint(10)).Return(ownedOpportunity(10, 2), nil)
	m.submission.EXPECT().CountByOpportunity(uint(10)).Return(int64(0), nil)
	m.opportunity.EXPECT().Delete(uint(10)).Return(nil)

	assert.NoError(t, svc.DeleteOwned(10, 2))
}

func TestDeleteOwned_NotOwner(t *testing.T) {
	svc, m := setupOpportunityServiceMocks(t)

	m.opportunity.EXPECT().FindByID(uint(10)).Return(ownedOpportunity(10, 2), nil)

	err := svc.DeleteOwned(10, 99)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
