package server

import (
	"fmt"
	"io"
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/mdouchement/todolist/internal/database"
	"github.com/mdouchement/todolist/internal/position"
	"github.com/mdouchement/todolist/internal/server/middlewares"
	"github.com/mdouchement/todolist/internal/server/service"
	"github.com/sirupsen/logrus"
)

// An IOC is an Inversion Of Control pattern used to init the server package.
type IOC struct {
	Version  string
	Database database.Client
	Logger   logrus.FieldLogger
	// Todo params
	DefaultColor  string
	BatchSize     int
	ReorderPolicy position.Policy
}

// EchoEngine instantiates the web server.
func EchoEngine(ctrl IOC) *echo.Echo {
	if ctrl.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		ctrl.Logger = l
	}

	engine := echo.New()
	engine.HideBanner = true
	engine.HidePort = true
	engine.Use(middleware.Recover())
	engine.Use(middleware.Secure())
	engine.Use(middleware.BodyLimit("2M"))
	engine.Use(middleware.Gzip())
	engine.Use(middlewares.Logger(ctrl.Logger))
	engine.Binder = middlewares.NewBinder()
	// Error handler
	engine.HTTPErrorHandler = middlewares.HTTPErrorHandler(ctrl.Logger)

	engine.Pre(middleware.Rewrite(map[string]string{
		"/": "/version",
	}))

	////////////
	// Router //
	////////////

	router := engine.Group("")

	// generic handlers
	//
	router.GET("/version", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"version": ctrl.Version,
		})
	})

	//
	// todo handlers
	//
	todo := &todo{
		service: service.NewTodo(ctrl.Database, service.Options{
			DefaultColor: ctrl.DefaultColor,
			BatchSize:    ctrl.BatchSize,
			Policy:       ctrl.ReorderPolicy,
			Logger:       ctrl.Logger,
		}),
	}
	todos := router.Group("/todos")
	todos.GET("", todo.List)
	todos.POST("", todo.Create)
	todos.PUT("/update-positions", todo.UpdatePositions)
	todos.PUT("/done/:id", todo.MarkDone)
	todos.PUT("/color/:id", todo.UpdateColor)
	todos.PUT("/:id", todo.Update)
	todos.DELETE("/:id", todo.Delete)

	return engine
}

// PrintRoutes prints the routes exposed by the Echo engine.
func PrintRoutes(w io.Writer, e *echo.Echo) {
	ignored := map[string]bool{
		"":   true,
		".":  true,
		"/*": true,
	}

	routes := e.Routes()
	sort.Slice(routes, func(i int, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})

	fmt.Fprintln(w, "Routes:")
	for _, route := range routes {
		if ignored[route.Path] {
			continue
		}
		fmt.Fprintf(w, "%6s %s\n", route.Method, route.Path)
	}
}
