package server

import (
	"fmt"
	"net/http"
	"time"

	"portfolio/internal/auth"
	"portfolio/internal/config"
	"portfolio/internal/handlers"
	"portfolio/internal/middleware"
	"portfolio/internal/web"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

const sessionName = "portfolio_session"

// Store is everything the HTTP layer reads or writes.
type Store interface {
	handlers.ContentStore
	middleware.IdentityStore
}

type Deps struct {
	Config *config.Config
	Store  Store
	Auth   *auth.Authenticator
	Tokens *auth.Tokens
	Log    zerolog.Logger
}

func NewRouter(d Deps) (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(d.Log))

	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(web.Static()))

	store := cookie.NewStore([]byte(d.Config.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(d.Config.SessionMaxAge / time.Second),
		HttpOnly: true,
		Secure:   d.Config.SessionSecure,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(sessionName, store))
	r.Use(middleware.Identify(d.Store, d.Tokens, d.Log))

	h := handlers.New(d.Store, d.Auth, d.Tokens, d.Log)

	r.GET("/", h.IndexPage)
	r.GET("/health", h.Health)

	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)

	api := r.Group("/api")
	{
		api.GET("/about", h.GetAbout)
		api.GET("/skills", h.GetSkills)
		api.GET("/education", h.GetEducation)
		api.GET("/experience", h.GetExperience)
		api.GET("/projects", h.GetProjects)
		api.GET("/thesis", h.GetThesis)
		api.POST("/contact", h.SubmitContact)
		api.POST("/login", h.APILogin)
	}

	authed := r.Group("/")
	authed.Use(middleware.RequireAuth())
	{
		authed.GET("/logout", h.Logout)
		authed.GET("/dashboard", h.Dashboard)
		authed.GET("/admin", h.Dashboard)
		authed.POST("/api/message/read/:id", h.MarkMessageRead)

		for _, res := range h.Resources() {
			authed.POST("/add/"+res.Kind, res.Add)
			authed.POST("/edit/"+res.Kind+"/:id", res.Edit)
			authed.GET("/delete/"+res.Kind+"/:id", res.Delete)
		}
		authed.POST("/update/about", h.UpdateAbout)
	}

	return r, nil
}

// NewHandler wraps the router with the CORS policy for the public API.
func NewHandler(cfg *config.Config, engine http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	})
	return c.Handler(engine)
}

func NewHTTPServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
