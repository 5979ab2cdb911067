// Package server wires the board controllers into a fiber application.
package server

import (
	"net"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/controller"
	"github.com/lgbarn/chessrules-go/internal/middleware"
	"github.com/lgbarn/chessrules-go/internal/session"
)

// Server is the HTTP and websocket front end of a session store.
type Server struct {
	cfg   *config.Config
	store *session.Store
	app   *fiber.App
}

// New builds the fiber application and registers every route.
func New(cfg *config.Config, store *session.Store) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "chessd",
		DisableStartupMessage: true,
		IdleTimeout:           cfg.Server.IdleTimeout,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, DELETE, OPTIONS",
	}))
	app.Use(middleware.RequestLogger(cfg))

	boardController := controller.NewBoardController(store, cfg)
	wsController := controller.NewWebSocketController(cfg)

	// Set up WebSocket routes
	app.Get("/ws/boards/:id",
		middleware.WebSocketUpgrade(),
		middleware.LoadSession(store),
		websocket.New(wsController.HandleConnection, websocket.Config{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			Origins:         splitOrigins(cfg.Server.AllowOrigins),
		}))

	// Set up REST routes
	api := app.Group("/api")
	api.Get("/health", boardController.Health)

	boards := api.Group("/boards")
	boards.Post("/", boardController.CreateBoard)
	boards.Get("/:id", middleware.LoadSession(store), boardController.GetBoard)
	boards.Get("/:id/moves", middleware.LoadSession(store), boardController.GetMoves)
	boards.Post("/:id/move", middleware.LoadSession(store), boardController.MakeMove)
	boards.Delete("/:id", boardController.DeleteBoard)

	return &Server{cfg: cfg, store: store, app: app}
}

// App returns the underlying fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on the configured address until Shutdown.
func (s *Server) Listen() error {
	s.cfg.Logf(1, "listening on %s", s.cfg.Server.Address)
	return s.app.Listen(s.cfg.Server.Address)
}

// Serve serves on an existing listener until Shutdown.
func (s *Server) Serve(ln net.Listener) error {
	s.cfg.Logf(1, "listening on %s", ln.Addr())
	return s.app.Listener(ln)
}

// Shutdown stops the server and drops every session.
func (s *Server) Shutdown() error {
	s.store.Close()
	return s.app.Shutdown()
}

func splitOrigins(origins string) []string {
	var out []string
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
