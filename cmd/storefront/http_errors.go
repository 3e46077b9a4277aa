package main

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func httpStatusFromError(err error) (int, string, string) {
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		return http.StatusInternalServerError, "INTERNAL", "internal error"
	}

	msg := http.StatusText(he.Code)
	if s, ok := he.Message.(string); ok && s != "" {
		msg = s
	}

	switch he.Code {
	case http.StatusBadRequest:
		return he.Code, "INVALID_ARGUMENT", msg
	case http.StatusNotFound:
		return he.Code, "NOT_FOUND", msg
	case http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return http.StatusServiceUnavailable, "UNAVAILABLE", msg
	case http.StatusInternalServerError:
		return he.Code, "INTERNAL", "internal error"
	}
	return he.Code, strings.ToUpper(strings.ReplaceAll(http.StatusText(he.Code), " ", "_")), msg
}

func errorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, code, msg := httpStatusFromError(err)
		if status >= http.StatusInternalServerError {
			log.Error("request failed",
				slog.String("method", c.Request().Method),
				slog.String("path", c.Path()),
				slog.Int("status", status),
				slog.Any("err", err))
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, errorBody{Code: code, Message: msg})
		}
		if err != nil {
			log.Error("write error response", slog.Any("err", err))
		}
	}
}
