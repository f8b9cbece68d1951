package application

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ngobridge/platform-go/internal/config"
	"github.com/ngobridge/platform-go/internal/domain/opportunity"
	"github.com/ngobridge/platform-go/internal/domain/submission"
	"github.com/ngobridge/platform-go/internal/notify"
	"github.com/ngobridge/platform-go/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SubmissionService drives the integrated application workflow: validating
// NGO answer sets against funder-defined field schemas, storing submissions,
// and moving them through the review status lifecycle. Notifications and
// email are published to the dispatcher and never awaited.
type SubmissionService struct {
	Repos    *repository.Repos
	notifier Notifier
}

func NewSubmissionService(repos *repository.Repos, notifier Notifier) *SubmissionService {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &SubmissionService{Repos: repos, notifier: notifier}
}

// Submit validates and stores one application. The applicant's profile is
// referenced as a point-in-time snapshot for the reviewing funder. The
// duplicate check runs twice: a read for a friendly fast path, and the
// composite unique index for the concurrent case, which surfaces as
// gorm.ErrDuplicatedKey and maps to the same error.
func (s *SubmissionService) Submit(opportunityID, ngoUserID uint, answers map[string]interface{}) (*submission.Submission, error) {
	opp, err := s.Repos.Opportunity.FindByID(opportunityID)
	if err != nil {
		return nil, err
	}
	if !opp.AcceptsIntegratedApp {
		return nil, ErrNotIntegrated
	}

	prof, err := s.Repos.Profile.GetNgoProfileByUserID(ngoUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileRequired
		}
		return nil, err
	}

	fields, err := opp.Fields()
	if err != nil {
		return nil, err
	}
	if err := submission.ValidateAnswers(fields, answers); err != nil {
		return nil, err
	}

	if _, err := s.Repos.Submission.FindByPair(opportunityID, ngoUserID); err == nil {
		return nil, ErrDuplicateApplication
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	sub := &submission.Submission{
		Reference:            uuid.NewString(),
		FundingOpportunityID: opportunityID,
		NgoUserID:            ngoUserID,
		NgoProfileID:         prof.ID,
		Answers:              datatypes.JSONMap(answers),
		Status:               submission.StatusSubmitted,
		SubmittedAt:          time.Now(),
	}
	if err := s.Repos.Submission.Create(sub); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateApplication
		}
		return nil, err
	}

	s.notifyFunderOfSubmission(&opp, prof.NgoName)

	return sub, nil
}

func (s *SubmissionService) ListByApplicant(ngoUserID uint) ([]submission.ApplicantView, error) {
	return s.Repos.Submission.ListByApplicant(ngoUserID)
}

// ListByOpportunity is the funder's review queue, oldest submission first.
func (s *SubmissionService) ListByOpportunity(opportunityID, funderUserID uint) ([]submission.ReviewView, error) {
	opp, err := s.Repos.Opportunity.FindByID(opportunityID)
	if err != nil {
		return nil, err
	}
	if !opp.OwnedBy(funderUserID) {
		return nil, ErrNotOwner
	}
	return s.Repos.Submission.ListByOpportunity(opportunityID)
}

// UpdateStatus moves a submission to a new review status. Every status is
// currently reachable from every other. Repeating the current status is a
// successful no-op and must not notify the applicant again.
func (s *SubmissionService) UpdateStatus(submissionID, funderUserID uint, newStatus string) (*submission.Submission, error) {
	if !submission.ValidStatus(newStatus) {
		return nil, ErrInvalidStatus
	}

	sub, err := s.Repos.Submission.FindByID(submissionID)
	if err != nil {
		return nil, err
	}

	opp, err := s.Repos.Opportunity.FindByID(sub.FundingOpportunityID)
	if err != nil {
		return nil, err
	}
	if !opp.OwnedBy(funderUserID) {
		return nil, ErrNotOwner
	}

	prev := sub.Status
	target := submission.Status(newStatus)
	if !submission.CanTransition(prev, target) {
		return nil, ErrInvalidStatus
	}

	sub.Status = target
	if err := s.Repos.Submission.Save(&sub); err != nil {
		return nil, err
	}

	if prev != target {
		s.notifyApplicantOfStatus(&sub, opp.Title, target)
	}

	return &sub, nil
}

func (s *SubmissionService) notifyFunderOfSubmission(opp *opportunity.FundingOpportunity, ngoName string) {
	if opp.FunderUserID == nil {
		return
	}
	if ngoName == "" {
		ngoName = "an NGO"
	}

	link := fmt.Sprintf("/funder/funding/%d/applications", opp.ID)
	e := notify.Event{
		UserID:  *opp.FunderUserID,
		Message: fmt.Sprintf("New application received from %s for %q.", ngoName, opp.Title),
		Link:    link,
	}

	if funder, err := s.Repos.User.GetUserByID(*opp.FunderUserID); err == nil {
		e.Email = funder.Email
		e.Subject = fmt.Sprintf("New Application Received for %q", opp.Title)
		e.Text = fmt.Sprintf(
			"Hi,\n\nYou have received a new application from %s for your funding opportunity %q.\n\nView applications here: %s%s",
			ngoName, opp.Title, config.AppBaseURL, link,
		)
		e.HTML = fmt.Sprintf(
			"<p>Hi,</p><p>You have received a new application from <strong>%s</strong> for your funding opportunity \"<strong>%s</strong>\".</p><p><a href=%q>View Applications</a></p>",
			ngoName, opp.Title, config.AppBaseURL+link,
		)
	}

	s.notifier.Publish(e)
}

func (s *SubmissionService) notifyApplicantOfStatus(sub *submission.Submission, oppTitle string, status submission.Status) {
	const link = "/my-applications"

	e := notify.Event{
		UserID:  sub.NgoUserID,
		Message: fmt.Sprintf("Status for your application to %q updated to: %s.", oppTitle, status),
		Link:    link,
	}

	if applicant, err := s.Repos.User.GetUserByID(sub.NgoUserID); err == nil {
		e.Email = applicant.Email
		e.Subject = fmt.Sprintf("Application Status Update for %q", oppTitle)
		e.Text = fmt.Sprintf(
			"Hi,\n\nThe status for your application to the funding opportunity %q has been updated to: %s.\n\nYou can view your applications here: %s%s",
			oppTitle, status, config.AppBaseURL, link,
		)
		e.HTML = fmt.Sprintf(
			"<p>Hi,</p><p>The status for your application to the funding opportunity \"<strong>%s</strong>\" has been updated to: <strong>%s</strong>.</p><p><a href=%q>View My Applications</a></p>",
			oppTitle, status, config.AppBaseURL+link,
		)
	}

	s.notifier.Publish(e)
}
