package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	User         UserRepo
	Profile      ProfileRepo
	Opportunity  OpportunityRepo
	Submission   SubmissionRepo
	Discount     DiscountRepo
	SavedSearch  SavedSearchRepo
	Notification NotificationRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		User:         NewUserRepo(db),
		Profile:      NewProfileRepo(db),
		Opportunity:  NewOpportunityRepo(db),
		Submission:   NewSubmissionRepo(db),
		Discount:     NewDiscountRepo(db),
		SavedSearch:  NewSavedSearchRepo(db),
		Notification: NewNotificationRepo(db),
		db:           db,
	}
}

func (r *Repos) Begin() *gorm.DB {
	return r.db.Begin()
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:         r.User.WithTx(tx),
		Profile:      r.Profile.WithTx(tx),
		Opportunity:  r.Opportunity.WithTx(tx),
		Submission:   r.Submission.WithTx(tx),
		Discount:     r.Discount.WithTx(tx),
		SavedSearch:  r.SavedSearch.WithTx(tx),
		Notification: r.Notification.WithTx(tx),
		db:           tx,
	}
}

// ExecTx runs fn with every repo bound to a single transaction; fn returning
// an error rolls the whole transaction back. A container assembled without a
// db handle (unit tests wiring mocks directly) runs fn against itself.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}
