package application

import (
	"encoding/json"
	"time"

	"github.com/ngobridge/platform-go/internal/domain/opportunity"
	"github.com/ngobridge/platform-go/internal/repository"
	"gorm.io/gorm"
)

type OpportunityService struct {
	Repos *repository.Repos
}

func NewOpportunityService(repos *repository.Repos) *OpportunityService {
	return &OpportunityService{Repos: repos}
}

// CreateByFunder posts an opportunity under the funder's organization name,
// taken from their profile when present.
func (s *OpportunityService) CreateByFunder(funderUserID uint, input opportunity.CreateOpportunityInput) (*opportunity.FundingOpportunity, error) {
	funderName := input.FunderName
	if p, err := s.Repos.Profile.GetFunderProfileByUserID(funderUserID); err == nil {
		funderName = p.OrganizationName
	}
	if funderName == "" {
		return nil, ErrFunderNameRequired
	}

	o := &opportunity.FundingOpportunity{
		Title:                input.Title,
		FunderName:           funderName,
		Description:          input.Description,
		FundingAmountRange:   input.FundingAmountRange,
		EligibilityCriteria:  input.EligibilityCriteria,
		ApplicationLink:      input.ApplicationLink,
		Tags:                 input.Tags,
		FunderUserID:         &funderUserID,
		AcceptsIntegratedApp: input.AcceptsIntegratedApp,
	}

	deadline, err := parseDate(input.ApplicationDeadline, ErrInvalidDeadline)
	if err != nil {
		return nil, err
	}
	o.ApplicationDeadline = deadline

	if err := applySchema(o, input.AcceptsIntegratedApp, input.IntegratedAppFields); err != nil {
		return nil, err
	}

	if err := s.Repos.Opportunity.Create(o); err != nil {
		return nil, err
	}
	return o, nil
}

// CreateByAdmin posts an opportunity on behalf of an unregistered funder;
// the funder name must be supplied explicitly.
func (s *OpportunityService) CreateByAdmin(adminUserID uint, input opportunity.CreateOpportunityInput) (*opportunity.FundingOpportunity, error) {
	if input.FunderName == "" {
		return nil, ErrFunderNameRequired
	}

	o := &opportunity.FundingOpportunity{
		Title:                input.Title,
		FunderName:           input.FunderName,
		Description:          input.Description,
		FundingAmountRange:   input.FundingAmountRange,
		EligibilityCriteria:  input.EligibilityCriteria,
		ApplicationLink:      input.ApplicationLink,
		Tags:                 input.Tags,
		PostedByAdminID:      &adminUserID,
		AcceptsIntegratedApp: input.AcceptsIntegratedApp,
	}

	deadline, err := parseDate(input.ApplicationDeadline, ErrInvalidDeadline)
	if err != nil {
		return nil, err
	}
	o.ApplicationDeadline = deadline

	if err := applySchema(o, input.AcceptsIntegratedApp, input.IntegratedAppFields); err != nil {
		return nil, err
	}

	if err := s.Repos.Opportunity.Create(o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *OpportunityService) ListByFunder(funderUserID uint) ([]opportunity.FundingOpportunity, error) {
	return s.Repos.Opportunity.FindByFunder(funderUserID)
}

// GetOwned returns gorm.ErrRecordNotFound for both missing and foreign
// opportunities so callers cannot probe what exists.
func (s *OpportunityService) GetOwned(id, funderUserID uint) (*opportunity.FundingOpportunity, error) {
	o, err := s.Repos.Opportunity.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !o.OwnedBy(funderUserID) {
		return nil, gorm.ErrRecordNotFound
	}
	return &o, nil
}

func (s *OpportunityService) UpdateOwned(id, funderUserID uint, input opportunity.UpdateOpportunityInput) (*opportunity.FundingOpportunity, error) {
	o, err := s.GetOwned(id, funderUserID)
	if err != nil {
		return nil, err
	}
	return s.update(o, input)
}

func (s *OpportunityService) UpdateByAdmin(id uint, input opportunity.UpdateOpportunityInput) (*opportunity.FundingOpportunity, error) {
	o, err := s.Repos.Opportunity.FindByID(id)
	if err != nil {
		return nil, err
	}
	return s.update(&o, input)
}

// update applies partial edits. Title, description and link keep their old
// value when omitted; the remaining text fields may be cleared. The schema
// invariant is unconditional: a disabled integrated app always clears the
// stored fields, even if a schema arrived in the same request.
func (s *OpportunityService) update(o *opportunity.FundingOpportunity, input opportunity.UpdateOpportunityInput) (*opportunity.FundingOpportunity, error) {
	if input.Title != "" {
		o.Title = input.Title
	}
	if input.Description != "" {
		o.Description = input.Description
	}
	if input.ApplicationLink != "" {
		o.ApplicationLink = input.ApplicationLink
	}
	if input.FunderName != "" {
		o.FunderName = input.FunderName
	}
	o.FundingAmountRange = input.FundingAmountRange
	o.EligibilityCriteria = input.EligibilityCriteria
	o.Tags = input.Tags

	deadline, err := parseDate(input.ApplicationDeadline, ErrInvalidDeadline)
	if err != nil {
		return nil, err
	}
	o.ApplicationDeadline = deadline

	o.AcceptsIntegratedApp = input.AcceptsIntegratedApp
	if err := applySchema(o, input.AcceptsIntegratedApp, input.IntegratedAppFields); err != nil {
		return nil, err
	}

	if err := s.Repos.Opportunity.Save(o); err != nil {
		return nil, err
	}
	return o, nil
}

// DeleteOwned refuses to delete an opportunity that has integrated
// applications: the funder's review queue and the applicants' history both
// reference it.
func (s *OpportunityService) DeleteOwned(id, funderUserID uint) error {
	if _, err := s.GetOwned(id, funderUserID); err != nil {
		return err
	}
	return s.delete(id)
}

func (s *OpportunityService) DeleteByAdmin(id uint) error {
	if _, err := s.Repos.Opportunity.FindByID(id); err != nil {
		return err
	}
	return s.delete(id)
}

// delete runs the submissions count and the delete in one transaction so a
// concurrent application cannot slip in between the check and the removal.
func (s *OpportunityService) delete(id uint) error {
	return s.Repos.ExecTx(func(tx *repository.Repos) error {
		n, err := tx.Submission.CountByOpportunity(id)
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrHasSubmissions
		}
		return tx.Opportunity.Delete(id)
	})
}

func (s *OpportunityService) ListAll() ([]opportunity.FundingOpportunity, error) {
	return s.Repos.Opportunity.FindAll()
}

func (s *OpportunityService) GetByID(id uint) (*opportunity.FundingOpportunity, error) {
	o, err := s.Repos.Opportunity.FindByID(id)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *OpportunityService) ListPublic(q opportunity.ListQuery) ([]opportunity.FundingOpportunity, int64, error) {
	return s.Repos.Opportunity.ListPublic(q)
}

// applySchema enforces the integrated-app invariant on o.
func applySchema(o *opportunity.FundingOpportunity, accepts bool, raw json.RawMessage) error {
	if !accepts || len(raw) == 0 {
		return o.SetFields(nil)
	}
	fields, err := opportunity.ParseFieldSchema(raw)
	if err != nil {
		return err
	}
	return o.SetFields(fields)
}

func parseDate(s *string, invalid error) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, invalid
	}
	return &t, nil
}
