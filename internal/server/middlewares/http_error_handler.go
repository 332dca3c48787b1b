package middlewares

import (
	"fmt"
	"net/http"

	"github.com/gofrs/uuid"
	"github.com/labstack/echo/v4"
	"github.com/mdouchement/todolist/internal/server/serializer"
	"github.com/mdouchement/todolist/internal/todoerr"
	"github.com/sirupsen/logrus"
)

// HTTPErrorHandler returns a middleware that renders errors as envelopes.
// Server-side errors are logged with a reference id that is sent to the client.
func HTTPErrorHandler(log logrus.FieldLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		switch e := err.(type) {
		case *echo.HTTPError:
			if e.Internal != nil {
				log.WithError(e.Internal).Warnf("Error [ECHO]: %v", e.Message)
			}
			if e.Code >= 500 {
				internal(log, err, "Unexpected error", c)
				return
			}
			_ = c.JSON(e.Code, serializer.Failure(fmt.Sprint(e.Message)))
		case *todoerr.Error:
			status := todoerr.StatusCode(e)
			if status < 500 {
				_ = c.JSON(status, serializer.Failure(e.Message))
				return
			}

			internal(log, err, e.Message, c)
		default:
			internal(log, err, "Unexpected error", c)
		}
	}
}

func internal(log logrus.FieldLogger, err error, message string, c echo.Context) {
	id := uuid.Must(uuid.NewV4()).String()
	log.WithFields(logrus.Fields{
		"reference": id,
		"method":    c.Request().Method,
		"uri":       c.Request().RequestURI,
	}).Errorf("Error: %+v", err)

	_ = c.JSON(http.StatusInternalServerError, serializer.Failure(fmt.Sprintf("%s (id: %s)", message, id)))
}
