package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/time/rate"

	httpapi "github.com/devfolio/portfolio-backend/internal/api/http"
	"github.com/devfolio/portfolio-backend/internal/api/http/middleware"
	"github.com/devfolio/portfolio-backend/internal/auth"
	authmw "github.com/devfolio/portfolio-backend/internal/auth/middleware"
	commentshttp "github.com/devfolio/portfolio-backend/internal/comments/http"
	projectshttp "github.com/devfolio/portfolio-backend/internal/projects/http"
	projectsrepo "github.com/devfolio/portfolio-backend/internal/projects/repository"
	projectssvc "github.com/devfolio/portfolio-backend/internal/projects/service"
)

type CommentsRouterDeps struct {
	ServiceName string
	Version     string
	Mongo       *mongo.Client
	Verifier    *auth.Verifier
	Comments    commentshttp.CommentService
}

func BuildCommentsRouter(dep CommentsRouterDeps) *gin.Engine {
	r := newEngine()

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Mongo)
	healthHandler.RegisterRoutes(r)

	requireUser := authmw.RequireUser(dep.Verifier)
	// 10 comments a minute per caller is plenty for a guestbook
	createLimit := middleware.PerClientLimit(rate.Every(6*time.Second), 3)

	handler := commentshttp.New(dep.Comments)
	handler.Register(r.Group("/comments"), requireUser, createLimit)

	return r
}

type ProjectsRouterDeps struct {
	ServiceName      string
	Version          string
	Mongo            *mongo.Client
	Database         string
	Verifier         *auth.Verifier
	AuthorizedUserID string
}

func BuildProjectsRouter(dep ProjectsRouterDeps) *gin.Engine {
	r := newEngine()

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Mongo)
	healthHandler.RegisterRoutes(r)

	repo := projectsrepo.NewMongoProjectRepository(dep.Mongo.Database(dep.Database).Collection("projects"))
	svc := projectssvc.NewProjectService(repo)

	requireUser := authmw.RequireUser(dep.Verifier)
	requireAdmin := authmw.RequireAdmin(dep.AuthorizedUserID)

	handler := projectshttp.New(svc, dep.AuthorizedUserID)
	handler.Register(r.Group("/projects"), requireUser, requireAdmin)

	return r
}

func newEngine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	return r
}
