package application

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/ngobridge/platform-go/internal/domain/opportunity"
	"github.com/ngobridge/platform-go/internal/domain/profile"
	"github.com/ngobridge/platform-go/internal/domain/submission"
	"github.com/ngobridge/platform-go/internal/domain/user"
	"github.com/ngobridge/platform-go/internal/notify"
	"github.com/ngobridge/platform-go/internal/repository"
	"github.com/ngobridge/platform-go/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// recorderNotifier captures published events so tests can assert on the
// exact fan-out without a running dispatcher.
type recorderNotifier struct {
	events []notify.Event
}

func (r *recorderNotifier) Publish(e notify.Event) {
	r.events = append(r.events, e)
}

type submissionMocks struct {
	opportunity *mock.MockOpportunityRepo
	submission  *mock.MockSubmissionRepo
	profile     *mock.MockProfileRepo
	user        *mock.MockUserRepo
	notifier    *recorderNotifier
}

func setupSubmissionServiceMocks(t *testing.T) (*SubmissionService, submissionMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := submissionMocks{
		opportunity: mock.NewMockOpportunityRepo(ctrl),
		submission:  mock.NewMockSubmissionRepo(ctrl),
		profile:     mock.NewMockProfileRepo(ctrl),
		user:        mock.NewMockUserRepo(ctrl),
		notifier:    &recorderNotifier{},
	}
	repos := &repository.Repos{
		Opportunity: m.opportunity,
		Submission:  m.submission,
		Profile:     m.profile,
		User:        m.user,
	}
	return NewSubmissionService(repos, m.notifier), m
}

func integratedOpportunity(t *testing.T, id, funderID uint) opportunity.FundingOpportunity {
	funder := funderID
	opp := opportunity.FundingOpportunity{
		ID:                   id,
		Title:                "Clean Water Grant",
		FunderName:           "Aqua Foundation",
		FunderUserID:         &funder,
		AcceptsIntegratedApp: true,
	}
	err := opp.SetFields([]opportunity.FieldDefinition{
		{Label: "Project Budget", Type: opportunity.FieldTypeNumber, Required: true},
		{Label: "Notes", Type: opportunity.FieldTypeTextarea},
	})
	assert.NoError(t, err)
	return opp
}

// --------------------- Submit ---------------------

func TestSubmit_Success(t *testing.T) {
	svc, m := setupSubmissionServiceMocks(t)

	opp := integratedOpportunity(t, 10, 2)
	m.opportunity.EXPECT().FindByID(uint(10)).Return(opp, nil)
	m.profile.EXPECT().GetNgoProfileByUserID(uint(5)).
		Return(profile.NgoProfile{ID: 7, UserID: 5, NgoName: "Hope Org"}, nil)
	m.submission.EXPECT().FindByPair(uint(10), uint(5)).
		Return(submission.Submission{}, gorm.ErrRecordNotFound)
	m.submission.EXPECT().Create(gomock.Any()).Return(nil)
	m.user.EXPECT().GetUserByID(uint(2)).
		Return(user.User{ID: 2, Email: "funder@aqua.org"}, nil)

	answers := map[string]interface{}{"Project Budget": "5000", "Notes": "phase 1"}
	sub, err := svc.Submit(10, 5, answers)
	assert.NoError(t, err)
	assert.Equal(t, submission.StatusSubmitted, sub.Status)
	assert.Equal(t, uint(10), sub.FundingOpportunityID)
	assert.Equal(t, uint(5), sub.NgoUserID)
	assert.Equal(t, uint(7), sub.NgoProfileID)
	assert.NotEmpty(t, sub.Reference)
	assert.False(t, sub.SubmittedAt.IsZero())

	// the funder gets exactly one notification, with the email attached
	assert.Len(t, m.notifier.events, 1)
	e := m.notifier.events[0]
	assert.Equal(t, uint(2), e.UserID)
	assert.Contains(t, e.Message, "Hope Org")
	assert.Contains(t, e.Message, "Clean Water Grant")
	assert.Equal(t, "/funder/funding/10/applications", e.Link)
	assert.Equal(t, "funder@aqua.org", e.Email)
}

func TestSubmit_MissingRequiredField(t *testing.T) {
	svc, m := setupSubmissionServiceMocks(t)

	m.opportunity.EXPECT().FindByID(uint(10)).Return(integratedOpportunity(t, 10, 2), nil)
	m.profile.EXPECT().GetNgoProfileByUserID(uint(5)).
		Return(profile.NgoProfile{ID: 7, UserID: 5, NgoName: "Hope Org"}, nil)

	_, err := svc.Submit(10, 5, map[string]interface{}{"Notes": "no budget given"})
	var missing *submission.MissingFieldError
	assert.ErrorAs(t, err, &missing)
	assert.Equal(t, "Project Budget", missing.Label)
	assert.Empty(t, m.notifier.events)
}

func TestSubmit_BlankRequiredAnswer(t *testing.T) {
	svc, m := setupSubmissionServiceMocks(t)

	m.opportunity.EXPECT().FindByID(uint(10)).Return(integratedOpportunity(t, 10, 2), nil)
	m.profile.EXPECT().GetNgoProfileByUserID(uint(5)).
		Return(profile.NgoProfile{ID: 7}, nil)

	_, err := svc.Submit(10, 5, map[string]interface{}{"Project Budget": "   "})
	var missing *submission.MissingFieldError
	assert.ErrorAs(t, err, &missing)
}

func TestSubmit_NotIntegrated(t *testing.T) {
	svc, m := setupSubmissionServiceMocks(t)

	opp := integratedOpportunity(t, 10, 2)
	opp.AcceptsIntegratedApp = false
	m.opportunity.EXPECT().FindByID(uint(10)).Return(opp, nil)

	_, err := svc.Submit(10, 5, map[string]interface{}{})
	assert.ErrorIs(t, err, ErrNotIntegrated)
}

func TestSubmit_ProfileRequired(t *testing.T) {
	svc, m := setupSubmissionServiceMocks(t)

	m.opportunity.EXPECT().FindByID(uint(10)).Return(integratedOpportunity(t, 10, 2), nil)
	m.profile.EXPECT().GetNgoProfileByUserID(uint(5)).
		Return(profile.NgoProfile{}, gorm.ErrRecordNotFound)

	_, err := svc.Submit(10, 5, map[string]interface{}{"Project Budget": "5000"})
	assert.ErrorIs(t, err, ErrProfileRequired)
}

func TestSubmit_DuplicateFastPath(t *testing.T) {
	svc, m := setupSubmissionServiceMocks(t)

	m.opportunity.EXPECT().FindByID(uint(10)).Return(integratedOpportunity(t, 10, 2), nil)
	m.profile.EXPECT().GetNgoProfileByUserID(uint(5)).
		Return(profile.NgoProfile{ID: 7}, nil)
	m.submission.EXPECT().FindByPair(uint(10), uint(5)).
		Return(submission.Submission{ID: 99}, nil)

	_, err := svc.Submit(10, 5, map[string]interface{}{"Project Budget": "5000"})
	assert.ErrorIs(t, err, ErrDuplicateApplication)
	assert.Empty(t, m.notifier.events)
}

func TestSubmit_DuplicateOnInsert(t *testing.T) {
	svc, m := setupSubmissionServiceMocks(t)

	m.opportunity.EXPECT().FindByID(uint(10)).Return(integratedOpportunity(t, 10, 2), nil)
	m.profile.EXPECT().GetNgoProfileByUserID(uint(5)).
		Return(profile.NgoProfile{ID: 7}, nil)
	m.submission.EXPECT().FindByPair(uint(10), uint(5)).
		Return(submission.Submission{}, gorm.ErrRecordNotFound)
	// a concurrent submit won the race; the unique index reports it
	m.submission.EXPECT().Create(gomock.Any()).Return(gorm.ErrDuplicatedKey)

	_, err := svc.Submit(10, 5, map[string]interface{}{"Project Budget": "5000"})
	assert.ErrorIs(t, err, ErrDuplicateApplication)
	assert.Empty(t, m.notifier.events)
}

func TestSubmit_OpportunityNotFound(t *testing.T) {
	svc, m := setupSubmissionServiceMocks(t)

	m.opportunity.EXPECT().FindByID(uint(404)).
		Return(opportunity.FundingOpportunity{}, gorm.ErrRecordNotFound)

	_, err := svc.Submit(404, 5, nil)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

// --------------------- ListByOpportunity ---------------------

func TestListByOpportunity_OwnerOnly(t *testing.T) {
	svc, m := setupSubmissionServiceMocks(t)

	opp := integratedOpportunity(t, 10, 2)
	m.opportunity.EXPECT().FindByID(uint(10)).Return(opp, nil)

	_, err := svc.ListByOpportunity(10, 99)
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestListByOpportunity_Success(t *testing.T) {
	svc, m := setupSubmissionServiceMocks(t)

	opp := integratedOpportunity(t, 10, 2)
	m.opportunity.EXPECT().FindByID(uint(10)).Return(opp, nil)
	m.submission.EXPECT().ListByOpportunity(uint(10)).
		Return([]submission.ReviewView{{NgoName: "Hope Org"}}, nil)

	views, err := svc.ListByOpportunity(10, 2)
	assert.NoError(t, err)
	assert.Len(t, views, 1)
}

// --------------------- UpdateStatus ---------------------

func TestUpdateStatus_SuccessNotifiesApplicant(t *testing.T) {
	svc, m := setupSubmissionServiceMocks(t)

	opp := integratedOpportunity(t, 10, 2)
	sub := submission.Submission{
		ID:                   33,
		FundingOpportunityID: 10,
		NgoUserID:            5,
		Status:               submission.StatusSubmitted,
	}
	m.submission.EXPECT().FindByID(uint(33)).Return(sub, nil)
	m.opportunity.EXPECT().FindByID(uint(10)).Return(opp, nil)
	m.submission.EXPECT().Save(gomock.Any()).Return(nil)
	m.user.EXPECT().GetUserByID(uint(5)).
		Return(user.User{ID: 5, Email: "ngo@hope.org"}, nil)

	updated, err := svc.UpdateStatus(33, 2, "approved")
	assert.NoError(t, err)
	assert.Equal(t, submission.StatusApproved, updated.Status)

	assert.Len(t, m.notifier.events, 1)
	e := m.notifier.events[0]
	assert.Equal(t, uint(5), e.UserID)
	assert.Contains(t, e.Message, "approved")
	assert.Equal(t, "/my-applications", e.Link)
	assert.Equal(t, "ngo@hope.org", e.Email)
}

func TestUpdateStatus_NoOpDoesNotNotify(t *testing.T) {
	svc, m := setupSubmissionServiceMocks(t)

	opp := integratedOpportunity(t, 10, 2)
	sub := submission.Submission{
		ID:                   33,
		FundingOpportunityID: 10,
		NgoUserID:            5,
		Status:               submission.StatusUnderReview,
	}
	m.submission.EXPECT().FindByID(uint(33)).Return(sub, nil)
	m.opportunity.EXPECT().FindByID(uint(10)).Return(opp, nil)
	m.submission.EXPECT().Save(gomock.Any()).Return(nil)

	updated, err := svc.UpdateStatus(33, 2, "under_review")
	assert.NoError(t, err)
	assert.Equal(t, submission.StatusUnderReview, updated.Status)
	assert.Empty(t, m.notifier.events)
}

func TestUpdateStatus_BackwardsTransitionAllowed(t *testing.T) {
	svc, m := setupSubmissionServiceMocks(t)

	opp := integratedOpportunity(t, 10, 2)
	sub := submission.Submission{
		ID:                   33,
		FundingOpportunityID: 10,
		NgoUserID:            5,
		Status:               submission.StatusApproved,
	}
	m.submission.EXPECT().FindByID(uint(33)).Return(sub, nil)
	m.opportunity.EXPECT().FindByID(uint(10)).Return(opp, nil)
	m.submission.EXPECT().Save(gomock.Any()).Return(nil)
	m.user.EXPECT().GetUserByID(uint(5)).Return(user.User{ID: 5}, nil)

	updated, err := svc.UpdateStatus(33, 2, "submitted")
	assert.NoError(t, err)
	assert.Equal(t, submission.StatusSubmitted, updated.Status)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	svc, _ := setupSubmissionServiceMocks(t)

	_, err := svc.UpdateStatus(33, 2, "archived")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_NotOwner(t *testing.T) {
	svc, m := setupSubmissionServiceMocks(t)

	opp := integratedOpportunity(t, 10, 2)
	sub := submission.Submission{ID: 33, FundingOpportunityID: 10, NgoUserID: 5}
	m.submission.EXPECT().FindByID(uint(33)).Return(sub, nil)
	m.opportunity.EXPECT().FindByID(uint(10)).Return(opp, nil)

	_, err := svc.UpdateStatus(33, 99, "approved")
	assert.ErrorIs(t, err, ErrNotOwner)
	assert.Empty(t, m.notifier.events)
}
