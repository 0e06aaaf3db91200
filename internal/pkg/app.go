package pkg

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"lexforge/internal/app/config"
	"lexforge/internal/app/handler"
	"lexforge/internal/app/middleware"
)

type Application struct {
	Config  *config.Config
	Router  *gin.Engine
	Handler *handler.Handler
}

func NewApp(c *config.Config, r *gin.Engine, h *handler.Handler) *Application {
	return &Application{
		Config:  c,
		Router:  r,
		Handler: h,
	}
}

// NewRouter gin с восстановлением после паники, логом запросов и CORS
func NewRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(), cors.New(corsConfig(cfg.CORS)))
	return router
}

func corsConfig(c config.CORSConfig) cors.Config {
	cc := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.AnonymousHeader},
		ExposeHeaders: []string{"Content-Disposition", "X-Archive-Key"},
	}
	for _, origin := range c.AllowOrigins {
		if origin == "*" {
			cc.AllowAllOrigins = true
			return cc
		}
	}
	cc.AllowOrigins = c.AllowOrigins
	if len(cc.AllowOrigins) == 0 {
		cc.AllowAllOrigins = true
	}
	return cc
}

// Routes регистрирует маршруты и валидаторы
func (a *Application) Routes() (*gin.Engine, error) {
	if err := handler.RegisterValidators(); err != nil {
		return nil, err
	}
	a.Handler.RegisterAPIRoutes(a.Router)
	return a.Router, nil
}

func (a *Application) RunApp() error {
	logrus.Info("Server start up")

	if _, err := a.Routes(); err != nil {
		return err
	}

	serverAddress := fmt.Sprintf("%s:%d", a.Config.ServiceHost, a.Config.ServicePort)
	logrus.Infof("Starting server on %s", serverAddress)

	if err := a.Router.Run(serverAddress); err != nil {
		return err
	}

	logrus.Info("Server down")
	return nil
}
