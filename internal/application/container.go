package application

import (
	"github.com/ngobridge/platform-go/internal/repository"
)

type Services struct {
	User         *UserService
	Profile      *ProfileService
	Opportunity  *OpportunityService
	Submission   *SubmissionService
	Discount     *DiscountService
	SavedSearch  *SavedSearchService
	Notification *NotificationService
	Admin        *AdminService
}

func New(repos *repository.Repos, notifier Notifier) *Services {
	return &Services{
		User:         NewUserService(repos),
		Profile:      NewProfileService(repos),
		Opportunity:  NewOpportunityService(repos),
		Submission:   NewSubmissionService(repos, notifier),
		Discount:     NewDiscountService(repos),
		SavedSearch:  NewSavedSearchService(repos),
		Notification: NewNotificationService(repos),
		Admin:        NewAdminService(repos, notifier),
	}
}
