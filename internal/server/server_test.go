package server_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/appleboy/gofight/v2"
	"github.com/labstack/echo/v4"
	"github.com/mdouchement/todolist/internal/database"
	"github.com/mdouchement/todolist/internal/model"
	"github.com/mdouchement/todolist/internal/position"
	"github.com/mdouchement/todolist/internal/server"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestRequestHome(t *testing.T) {
	engine, _, _, cleanup := setup()
	defer cleanup()

	// The rewrite matches on RequestURI, which is only set on server-side requests.
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"version":"test"}`, w.Body.String())
}

func TestRequestVersion(t *testing.T) {
	engine, _, r, cleanup := setup()
	defer cleanup()

	r.GET("/version").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)
		assert.JSONEq(t, `{"version":"test"}`, r.Body.String())
	})
}

func TestRequestUnknownRoute(t *testing.T) {
	engine, _, r, cleanup := setup()
	defer cleanup()

	r.GET("/nowhere").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusNotFound, r.Code)
		assert.JSONEq(t, `{"status":"error","message":"Not Found"}`, r.Body.String())
	})

	r.GET("/todos/list/all").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusMethodNotAllowed, r.Code)
		assert.JSONEq(t, `{"status":"error","message":"Method Not Allowed"}`, r.Body.String())
	})
}

func TestPrintRoutes(t *testing.T) {
	engine, _, _, cleanup := setup()
	defer cleanup()

	var buf bytes.Buffer
	server.PrintRoutes(&buf, engine)

	assert.Equal(t, `Routes:
   GET /todos
  POST /todos
DELETE /todos/:id
   PUT /todos/:id
   PUT /todos/color/:id
   PUT /todos/done/:id
   PUT /todos/update-positions
   GET /version
`, buf.String())
}

func setup() (engine *echo.Echo, ioc server.IOC, r *gofight.RequestConfig, cleanup func()) {
	return setupWithPolicy(position.PolicyRepair)
}

func setupWithPolicy(policy position.Policy) (engine *echo.Echo, ioc server.IOC, r *gofight.RequestConfig, cleanup func()) {
	tmpfile, err := os.CreateTemp("", "todolist.*.db")
	if err != nil {
		panic(err)
	}
	filename := tmpfile.Name()
	tmpfile.Close()

	db, err := database.StormOpen(filename, database.Options{})
	if err != nil {
		panic(err)
	}

	log, _ := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	ioc = server.IOC{
		Version:       "test",
		Database:      db,
		Logger:        log,
		DefaultColor:  model.DefaultColor,
		BatchSize:     2,
		ReorderPolicy: policy,
	}
	engine = server.EchoEngine(ioc)

	return engine, ioc, gofight.New(), func() {
		db.Close()
		os.RemoveAll(filename)
	}
}

func createItem(ioc server.IOC, description string) *model.Item {
	max, err := ioc.Database.MaxPosition()
	if err != nil {
		panic(err)
	}

	item := model.NewItem(description, model.DefaultColor)
	item.Position = max + 1
	if err = ioc.Database.Save(item); err != nil {
		panic(err)
	}
	return item
}

func positions(ioc server.IOC) map[int]int {
	items, err := ioc.Database.FindItems()
	if err != nil {
		panic(err)
	}

	m := map[int]int{}
	for _, item := range items {
		m[item.ID] = item.Position
	}
	return m
}
