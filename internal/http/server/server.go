package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"librarycatalog/internal/config"
	"librarycatalog/internal/domain/models"
	"librarycatalog/internal/http/handlers/author/create_author"
	"librarycatalog/internal/http/handlers/author/delete_author"
	"librarycatalog/internal/http/handlers/author/get_author"
	"librarycatalog/internal/http/handlers/author/list_author_books"
	"librarycatalog/internal/http/handlers/author/list_authors"
	"librarycatalog/internal/http/handlers/book/create_book"
	"librarycatalog/internal/http/handlers/book/delete_book"
	"librarycatalog/internal/http/handlers/book/list_books"
	"librarycatalog/internal/http/handlers/middlewares/auth"
	"librarycatalog/internal/http/handlers/middlewares/compressor"
	"librarycatalog/internal/http/handlers/middlewares/logger"
	"librarycatalog/internal/http/handlers/middlewares/metrics"
	"librarycatalog/internal/http/handlers/session/login"
	"librarycatalog/internal/http/handlers/session/logout"
	"librarycatalog/internal/http/handlers/session/token"
	"librarycatalog/internal/http/handlers/system/ping"
	"librarycatalog/internal/http/handlers/user/create_user"
	"librarycatalog/internal/http/handlers/user/me"
	"librarycatalog/internal/http/httputils"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

type Authentication interface {
	Register(ctx context.Context, login, password, rights string) (models.User, error)
	Login(ctx context.Context, login, password string) (string, time.Time, error)
	ResolveCurrentUser(ctx context.Context, token string) (models.User, error)
}

type Catalog interface {
	CreateAuthor(ctx context.Context, name string) (models.Author, error)
	GetAuthor(ctx context.Context, id int64) (models.Author, error)
	ListAuthors(ctx context.Context, skip, limit int) ([]models.Author, error)
	DeleteAuthor(ctx context.Context, id int64) (bool, error)
	CreateBook(ctx context.Context, title string, pages int, authorID int64) (models.Book, error)
	ListBooks(ctx context.Context, skip, limit int) ([]models.Book, error)
	ListBooksByAuthor(ctx context.Context, authorID int64) ([]models.Book, error)
	DeleteBook(ctx context.Context, title string, authorID int64) (bool, error)
	Ping(ctx context.Context) error
}

type Server struct {
	httpServer  *http.Server
	router      *mux.Router
	registry    *prometheus.Registry
	log         *zerolog.Logger
	catalog     Catalog
	authService Authentication
	cfg         config.Config
}

func NewServer(log *zerolog.Logger, cfg config.Config, catalog Catalog, authService Authentication) (*Server, error) {
	if cfg.ServerAddress == "" {
		return nil, errors.New("server address cannot be empty")
	}
	if log == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if catalog == nil {
		return nil, errors.New("catalog service cannot be nil")
	}
	if authService == nil {
		return nil, errors.New("auth service cannot be nil")
	}

	s := &Server{
		router:      mux.NewRouter(),
		registry:    prometheus.NewRegistry(),
		cfg:         cfg,
		log:         log,
		catalog:     catalog,
		authService: authService,
	}

	s.registry.MustRegister(collectors.NewGoCollector())
	s.registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	s.httpServer = &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           s.router,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	m := metrics.NewMetrics(s.registry)

	s.router.Use(logger.MiddlewareLogging(s.log))
	s.router.Use(m.MiddlewareMetrics())
	s.router.Use(compressor.MiddlewareCompressing())

	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httputils.WriteJSONError(w, http.StatusNotFound, "not found")
	})
	s.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httputils.WriteJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	requireAuth := auth.MiddlewareAuth(s.authService)

	/*
		Public routes (without auth)
	*/
	s.router.HandleFunc("/ping", ping.HandlerPing(s.catalog)).Methods(http.MethodGet)
	s.router.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	s.router.HandleFunc("/login", login.HandlerLogin(s.authService, s.cfg.CookieSecure)).Methods(http.MethodPost)
	s.router.HandleFunc("/token", token.HandlerToken(s.authService)).Methods(http.MethodPost)
	s.router.HandleFunc("/logout", logout.HandlerLogout(s.cfg.CookieSecure)).Methods(http.MethodPost)
	s.router.HandleFunc("/users/", create_user.HandlerCreateUser(s.authService)).Methods(http.MethodPost) // 201

	s.router.HandleFunc("/authors/", list_authors.HandlerListAuthors(s.catalog)).Methods(http.MethodGet)
	s.router.HandleFunc("/authors/{id:[0-9]+}", get_author.HandlerGetAuthor(s.catalog)).Methods(http.MethodGet)
	s.router.HandleFunc("/authors/{id:[0-9]+}/books", list_author_books.HandlerListAuthorBooks(s.catalog)).Methods(http.MethodGet)
	s.router.HandleFunc("/books/", list_books.HandlerListBooks(s.catalog)).Methods(http.MethodGet)

	/*
		Protected routes (with auth)
	*/
	s.router.Handle("/users/me", requireAuth(me.HandlerMe())).Methods(http.MethodGet)

	createAuthor := requireAuth(create_author.HandlerCreateAuthor(s.catalog))
	s.router.Handle("/authors/", createAuthor).Methods(http.MethodPost)       // 201
	s.router.Handle("/create_author/", createAuthor).Methods(http.MethodPost) // HTML-форма

	s.router.Handle("/authors/{id:[0-9]+}/books/", requireAuth(create_book.HandlerCreateBook(s.catalog))).Methods(http.MethodPost) // 201
	s.router.Handle("/delete_book/{author_id:[0-9]+}/{title}", requireAuth(delete_book.HandlerDeleteBook(s.catalog))).Methods(http.MethodPost)
	s.router.Handle("/delete_author/{author_id:[0-9]+}", requireAuth(delete_author.HandlerDeleteAuthor(s.catalog))).Methods(http.MethodPost)
}

// Handler отдает корневой роутер со всеми middleware, нужен тестам
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start(ctx context.Context) error {
	s.log.Info().Str("address", s.cfg.ServerAddress).Msg("Starting server")
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
