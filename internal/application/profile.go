package application

import (
	"errors"

	"github.com/ngobridge/platform-go/internal/domain/profile"
	"github.com/ngobridge/platform-go/internal/repository"
	"gorm.io/gorm"
)

type ProfileService struct {
	Repos *repository.Repos
}

func NewProfileService(repos *repository.Repos) *ProfileService {
	return &ProfileService{Repos: repos}
}

// GetNgoProfile returns nil without error when no profile exists yet; the
// frontend treats that as "not created".
func (s *ProfileService) GetNgoProfile(userID uint) (*profile.NgoProfile, error) {
	p, err := s.Repos.Profile.GetNgoProfileByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (s *ProfileService) UpsertNgoProfile(userID uint, input profile.NgoProfileInput) (profile.NgoProfile, error) {
	p, err := s.Repos.Profile.GetNgoProfileByUserID(userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return profile.NgoProfile{}, err
	}

	p.UserID = userID
	p.NgoName = input.NgoName
	p.Location = input.Location
	p.ContactEmail = input.ContactEmail
	p.Website = input.Website
	p.Mission = input.Mission
	p.Vision = input.Vision
	p.ImpactAreas = input.ImpactAreas
	p.RegistrationDetails = input.RegistrationDetails
	p.TeamSize = input.TeamSize
	p.BudgetRange = input.BudgetRange

	if err := s.Repos.Profile.SaveNgoProfile(&p); err != nil {
		return profile.NgoProfile{}, err
	}
	return p, nil
}

func (s *ProfileService) GetFunderProfile(userID uint) (*profile.FunderProfile, error) {
	p, err := s.Repos.Profile.GetFunderProfileByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (s *ProfileService) UpsertFunderProfile(userID uint, input profile.FunderProfileInput) (profile.FunderProfile, error) {
	p, err := s.Repos.Profile.GetFunderProfileByUserID(userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return profile.FunderProfile{}, err
	}

	p.UserID = userID
	p.OrganizationName = input.OrganizationName
	p.FunderType = input.FunderType
	p.Website = input.Website
	p.ContactEmail = input.ContactEmail
	p.FundingAreas = input.FundingAreas
	p.GrantSizeRange = input.GrantSizeRange
	p.EligibilitySummary = input.EligibilitySummary
	p.ApplicationPortalLink = input.ApplicationPortalLink

	if err := s.Repos.Profile.SaveFunderProfile(&p); err != nil {
		return profile.FunderProfile{}, err
	}
	return p, nil
}

func (s *ProfileService) GetProviderProfile(userID uint) (*profile.ProviderProfile, error) {
	p, err := s.Repos.Profile.GetProviderProfileByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (s *ProfileService) UpsertProviderProfile(userID uint, input profile.ProviderProfileInput) (profile.ProviderProfile, error) {
	p, err := s.Repos.Profile.GetProviderProfileByUserID(userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return profile.ProviderProfile{}, err
	}

	p.UserID = userID
	p.CompanyName = input.CompanyName
	p.ServiceType = input.ServiceType
	p.Website = input.Website
	p.ContactEmail = input.ContactEmail
	p.Description = input.Description

	if err := s.Repos.Profile.SaveProviderProfile(&p); err != nil {
		return profile.ProviderProfile{}, err
	}
	return p, nil
}
