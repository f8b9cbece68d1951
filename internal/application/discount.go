package application

import (
	"github.com/ngobridge/platform-go/internal/domain/discount"
	"github.com/ngobridge/platform-go/internal/repository"
	"gorm.io/gorm"
)

type DiscountService struct {
	Repos *repository.Repos
}

func NewDiscountService(repos *repository.Repos) *DiscountService {
	return &DiscountService{Repos: repos}
}

func (s *DiscountService) CreateByProvider(providerUserID uint, input discount.OfferInput) (*discount.DiscountOffer, error) {
	providerName := input.ProviderName
	if p, err := s.Repos.Profile.GetProviderProfileByUserID(providerUserID); err == nil {
		providerName = p.CompanyName
	}
	if providerName == "" {
		return nil, ErrProviderNameRequired
	}

	d := &discount.DiscountOffer{
		ProductServiceName: input.ProductServiceName,
		ProviderName:       providerName,
		Description:        input.Description,
		DiscountDetails:    input.DiscountDetails,
		RedemptionInfo:     input.RedemptionInfo,
		Category:           input.Category,
		ProviderUserID:     &providerUserID,
	}

	expiry, err := parseDate(input.ExpiryDate, ErrInvalidExpiryDate)
	if err != nil {
		return nil, err
	}
	d.ExpiryDate = expiry

	if err := s.Repos.Discount.Create(d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *DiscountService) CreateByAdmin(adminUserID uint, input discount.OfferInput) (*discount.DiscountOffer, error) {
	if input.ProviderName == "" {
		return nil, ErrProviderNameRequired
	}

	d := &discount.DiscountOffer{
		ProductServiceName: input.ProductServiceName,
		ProviderName:       input.ProviderName,
		Description:        input.Description,
		DiscountDetails:    input.DiscountDetails,
		RedemptionInfo:     input.RedemptionInfo,
		Category:           input.Category,
		PostedByAdminID:    &adminUserID,
	}

	expiry, err := parseDate(input.ExpiryDate, ErrInvalidExpiryDate)
	if err != nil {
		return nil, err
	}
	d.ExpiryDate = expiry

	if err := s.Repos.Discount.Create(d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *DiscountService) ListByProvider(providerUserID uint) ([]discount.DiscountOffer, error) {
	return s.Repos.Discount.FindByProvider(providerUserID)
}

func (s *DiscountService) GetOwned(id, providerUserID uint) (*discount.DiscountOffer, error) {
	d, err := s.Repos.Discount.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !d.OwnedBy(providerUserID) {
		return nil, gorm.ErrRecordNotFound
	}
	return &d, nil
}

func (s *DiscountService) UpdateOwned(id, providerUserID uint, input discount.OfferInput) (*discount.DiscountOffer, error) {
	d, err := s.GetOwned(id, providerUserID)
	if err != nil {
		return nil, err
	}
	return s.update(d, input)
}

func (s *DiscountService) UpdateByAdmin(id uint, input discount.OfferInput) (*discount.DiscountOffer, error) {
	d, err := s.Repos.Discount.FindByID(id)
	if err != nil {
		return nil, err
	}
	return s.update(&d, input)
}

func (s *DiscountService) update(d *discount.DiscountOffer, input discount.OfferInput) (*discount.DiscountOffer, error) {
	if input.ProductServiceName != "" {
		d.ProductServiceName = input.ProductServiceName
	}
	if input.Description != "" {
		d.Description = input.Description
	}
	if input.DiscountDetails != "" {
		d.DiscountDetails = input.DiscountDetails
	}
	if input.RedemptionInfo != "" {
		d.RedemptionInfo = input.RedemptionInfo
	}
	d.Category = input.Category

	expiry, err := parseDate(input.ExpiryDate, ErrInvalidExpiryDate)
	if err != nil {
		return nil, err
	}
	d.ExpiryDate = expiry

	if err := s.Repos.Discount.Save(d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *DiscountService) DeleteOwned(id, providerUserID uint) error {
	if _, err := s.GetOwned(id, providerUserID); err != nil {
		return err
	}
	return s.Repos.Discount.Delete(id)
}

func (s *DiscountService) DeleteByAdmin(id uint) error {
	if _, err := s.Repos.Discount.FindByID(id); err != nil {
		return err
	}
	return s.Repos.Discount.Delete(id)
}

func (s *DiscountService) ListAll() ([]discount.DiscountOffer, error) {
	return s.Repos.Discount.FindAll()
}

func (s *DiscountService) GetByID(id uint) (*discount.DiscountOffer, error) {
	d, err := s.Repos.Discount.FindByID(id)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *DiscountService) ListPublic(q discount.ListQuery) ([]discount.DiscountOffer, int64, error) {
	return s.Repos.Discount.ListPublic(q)
}
