package testutils

import (
	"github.com/gin-gonic/gin"
	"github.com/ngobridge/platform-go/internal/api/routes"
	"github.com/ngobridge/platform-go/internal/application"
	"github.com/ngobridge/platform-go/internal/ws"
)

func SetupRouter(services *application.Services) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.RegisterRoutes(r, services, ws.NewHub())
	return r
}
