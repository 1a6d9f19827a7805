package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	tollbooth_gin "github.com/didip/tollbooth_gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nandomoreu/mercadillo/internal/handler/http/middleware"
	"github.com/nandomoreu/mercadillo/internal/infrastructure/jwt"
	usecasecontract "github.com/nandomoreu/mercadillo/internal/usecase/contract"
)

type Router struct {
	accountHandler *AccountHandler
	articleHandler *ArticleHandler
	jwtManager     *jwt.Manager
}

func NewRouter(accountUsecase usecasecontract.IAccountUseCase, articleUsecase usecasecontract.IArticleUseCase, jwtManager *jwt.Manager) *Router {
	return &Router{
		accountHandler: NewAccountHandler(accountUsecase),
		articleHandler: NewArticleHandler(articleUsecase),
		jwtManager:     jwtManager,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// rate limiter configuration
	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(tollbooth_gin.LimitHandler(lmt))

	router.Use(middleware.Metrics())
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")

	// Public routes (no authentication required)
	accounts := v1.Group("/accounts")
	{
		accounts.POST("/register", r.accountHandler.Register)
		accounts.GET("/activate", r.accountHandler.Activate)
	}
	v1.GET("/articles", r.articleHandler.ListArticles)

	// Protected routes (authentication required)
	protected := v1.Group("/")
	protected.Use(middleware.Auth(r.jwtManager))
	{
		protected.PUT("/accounts/me", r.accountHandler.UpdateAccount)
		protected.DELETE("/articles/:articleID", r.articleHandler.DeleteArticle)
	}
}
