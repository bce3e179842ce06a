package handler

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

func parseIDParam(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

func idToString(id int64) string {
	return strconv.FormatInt(id, 10)
}

func idPtrToString(id *int64) *string {
	if id == nil {
		return nil
	}
	s := idToString(*id)
	return &s
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
