package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ngobridge/platform-go/internal/application"
	"github.com/ngobridge/platform-go/internal/ws"
)

type Handlers struct {
	User         *UserHandler
	Profile      *ProfileHandler
	Opportunity  *OpportunityHandler
	Submission   *SubmissionHandler
	Discount     *DiscountHandler
	Search       *SearchHandler
	Notification *NotificationHandler
	Admin        *AdminHandler
	Ws           *WsHandler
	Router       *gin.Engine
}

func New(svc *application.Services, hub *ws.Hub, router *gin.Engine) *Handlers {
	return &Handlers{
		User:         NewUserHandler(svc.User),
		Profile:      NewProfileHandler(svc.Profile),
		Opportunity:  NewOpportunityHandler(svc.Opportunity),
		Submission:   NewSubmissionHandler(svc.Submission),
		Discount:     NewDiscountHandler(svc.Discount),
		Search:       NewSearchHandler(svc.SavedSearch),
		Notification: NewNotificationHandler(svc.Notification),
		Admin:        NewAdminHandler(svc.Admin),
		Ws:           NewWsHandler(hub),
		Router:       router,
	}
}
