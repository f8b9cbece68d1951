package application

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/ngobridge/platform-go/internal/domain/discount"
	"github.com/ngobridge/platform-go/internal/domain/profile"
	"github.com/ngobridge/platform-go/internal/repository"
	"github.com/ngobridge/platform-go/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type discountMocks struct {
	discount *mock.MockDiscountRepo
	profile  *mock.MockProfileRepo
}

func setupDiscountServiceMocks(t *testing.T) (*DiscountService, discountMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := discountMocks{
		discount: mock.NewMockDiscountRepo(ctrl),
		profile:  mock.NewMockProfileRepo(ctrl),
	}
	repos := &repository.Repos{
		Discount: m.discount,
		Profile:  m.profile,
	}
	return NewDiscountService(repos), m
}

func TestDiscountCreateByProvider_ProfileNameWins(t *testing.T) {
	svc, m := setupDiscountServiceMocks(t)

	m.profile.EXPECT().GetProviderProfileByUserID(uint(3)).
		Return(profile.ProviderProfile{UserID: 3, CompanyName: "CloudSoft"}, nil)

	var created *discount.DiscountOffer
	m.discount.EXPECT().Create(gomock.Any()).
		DoAndReturn(func(d *discount.DiscountOffer) error {
			created = d
			return nil
		})

	input := discount.OfferInput{
		ProductServiceName: "CRM Suite",
		ProviderName:       "Typed By Hand",
		Description:        "50% off for NGOs",
		DiscountDetails:    "50% off first year",
		RedemptionInfo:     "Use code NGO50",
	}
	d, err := svc.CreateByProvider(3, input)
	assert.NoError(t, err)
	assert.Equal(t, "CloudSoft", d.ProviderName)
	assert.Equal(t, uint(3), *created.ProviderUserID)
}

func TestDiscountCreateByProvider_NoName(t *testing.T) {
	svc, m := setupDiscountServiceMocks(t)

	m.profile.EXPECT().GetProviderProfileByUserID(uint(3)).
		Return(profile.ProviderProfile{}, gorm.ErrRecordNotFound)

	_, err := svc.CreateByProvider(3, discount.OfferInput{
		ProductServiceName: "CRM Suite",
		Description:        "desc",
		DiscountDetails:    "deal",
		RedemptionInfo:     "code",
	})
	assert.ErrorIs(t, err, ErrProviderNameRequired)
}

func TestDiscountCreateByProvider_InvalidExpiry(t *testing.T) {
	svc, m := setupDiscountServiceMocks(t)

	m.profile.EXPECT().GetProviderProfileByUserID(uint(3)).
		Return(profile.ProviderProfile{CompanyName: "CloudSoft"}, nil)

	bad := "next year"
	_, err := svc.CreateByProvider(3, discount.OfferInput{
		ProductServiceName: "CRM Suite",
		Description:        "desc",
		DiscountDetails:    "deal",
		RedemptionInfo:     "code",
		ExpiryDate:         &bad,
	})
	assert.ErrorIs(t, err, ErrInvalidExpiryDate)
}

func TestDiscountGetOwned_ForeignOfferHidden(t *testing.T) {
	svc, m := setupDiscountServiceMocks(t)

	owner := uint(3)
	m.discount.EXPECT().FindByID(uint(8)).
		Return(discount.DiscountOffer{ID: 8, ProviderUserID: &owner}, nil)

	_, err := svc.GetOwned(8, 99)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
