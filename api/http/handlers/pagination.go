package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type page struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// parsePage reads ?limit and ?offset, ignoring values that are out of range.
func parsePage(c *fiber.Ctx) page {
	p := page{Limit: defaultPageSize}
	if v := strings.TrimSpace(c.Query("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= maxPageSize {
			p.Limit = n
		}
	}
	if v := strings.TrimSpace(c.Query("offset")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			p.Offset = n
		}
	}
	return p
}

type pageResponse[T any] struct {
	Items []T `json:"items"`
	page
}
