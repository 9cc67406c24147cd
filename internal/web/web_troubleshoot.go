// Package web provides the HTTP server and web interface for go-things-to-check
package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SlackMessage is the slash-command reply format Slack expects.
// See https://api.slack.com/interactivity/slash-commands
type SlackMessage struct {
	ResponseType string `json:"response_type"`
	Text         string `json:"text"`
}

// troubleshoot handles the chat integration endpoint: a random suggestion
// as a Slack-compatible message, printed to the channel where the
// /troubleshoot command was invoked.
//
// The request body and Slack's signing headers are ignored on purpose:
// nothing secret is stored by or returned from this service, so there is
// nothing worth validating. Text is the raw markdown entry; the chat client
// does its own rendering.
func (s *WebServer) troubleshoot(c *gin.Context) {
	thing, found := s.Things.Random()
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "no suggestions available"})
		return
	}

	c.JSON(http.StatusOK, SlackMessage{
		ResponseType: "in_channel",
		Text:         thing.Markdown,
	})
}
