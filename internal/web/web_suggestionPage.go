// Package web provides the HTTP server and web interface for go-things-to-check
package web

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-while/go-things-to-check/internal/models"
)

// suggestionPage handles "/": one thing to check, rendered as HTML.
// With an `item` query parameter the result is fixed (the item-th entry in
// the list); without it a random entry is chosen. Responses are marked
// no-store so the random path is never cached by intermediaries.
func (s *WebServer) suggestionPage(c *gin.Context) {
	var (
		thing *models.Suggestion
		found bool
	)
	if itemParam := c.Query("item"); itemParam != "" {
		item, err := strconv.Atoi(itemParam)
		if err != nil || item < 0 {
			s.renderError(c, http.StatusBadRequest, "Bad Request", fmt.Sprintf("invalid item parameter: %q", itemParam))
			return
		}
		thing, found = s.Things.Pick(item)
	} else {
		thing, found = s.Things.Random()
	}
	if !found {
		s.renderError(c, http.StatusNotFound, "Not Found", "no such suggestion")
		return
	}

	suggest, err := suggestURL(c)
	if err != nil {
		s.renderError(c, http.StatusInternalServerError, "Internal Server Error", err.Error())
		return
	}
	share, err := shareURL(c, thing.Index)
	if err != nil {
		s.renderError(c, http.StatusInternalServerError, "Internal Server Error", err.Error())
		return
	}

	data := SuggestionPageData{
		TemplateData: s.getBaseTemplateData("Things To Check"),
		Suggestion:   thing,
		SuggestURL:   suggest,
		ShareURL:     share,
	}

	c.Header("Cache-Control", "no-store")
	s.renderTemplate(c, "index.html", data)
}
