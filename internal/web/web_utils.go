// Package web provides the HTTP server and web interface for go-things-to-check
package web

import (
	"errors"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-while/go-things-to-check/internal/config"
)

// GetPort returns the listening port from the config
func (s *WebServer) GetPort() int {
	return s.Config.ListenPort
}

// getBaseTemplateData creates a TemplateData struct with common information
func (s *WebServer) getBaseTemplateData(title string) TemplateData {
	return TemplateData{
		Title:      title,
		AppVersion: config.AppVersion,
	}
}

// requestBaseURL reconstructs the scheme and host the client used to reach
// us, after ReverseProxyMiddleware has applied any X-Forwarded headers.
// Fails if the request carries no usable host.
func requestBaseURL(c *gin.Context) (*url.URL, error) {
	host := c.Request.Host
	if host == "" {
		return nil, errors.New("unable to generate URL: request has no host")
	}
	scheme := "http"
	if c.Request.TLS != nil || c.Request.URL.Scheme == "https" {
		scheme = "https"
	}
	return &url.URL{Scheme: scheme, Host: host, Path: "/"}, nil
}

// suggestURL builds a link back to / with no item parameter
func suggestURL(c *gin.Context) (string, error) {
	u, err := requestBaseURL(c)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

// shareURL builds a link to / pinned to the given suggestion index
func shareURL(c *gin.Context, item int) (string, error) {
	u, err := requestBaseURL(c)
	if err != nil {
		return "", err
	}
	query := url.Values{}
	query.Set("item", strconv.Itoa(item))
	u.RawQuery = query.Encode()
	return u.String(), nil
}

// renderError renders an error page
func (s *WebServer) renderError(c *gin.Context, statusCode int, message string, errstring string) {
	errorData := struct {
		TemplateData
		Error      string
		StatusCode int
	}{
		TemplateData: s.getBaseTemplateData("Error"),
		Error:        message,
		StatusCode:   statusCode,
	}
	log.Printf("[WEB]: Error %d: %s - %s", statusCode, message, errstring)

	// Load template individually to avoid template name conflicts
	tmpl := template.Must(template.ParseFS(embeddedTemplatesFS, "templates/base.html", "templates/error.html"))
	c.Header("Content-Type", "text/html")
	c.Status(statusCode)
	err := tmpl.ExecuteTemplate(c.Writer, "base.html", errorData)
	if err != nil {
		log.Printf("Error rendering error template: %v", err)
		c.String(statusCode, "Error: %s - %s", message, errstring)
	}
}

// renderTemplate renders a template with base template data
func (s *WebServer) renderTemplate(c *gin.Context, templateName string, data interface{}) {
	// Load template individually to avoid template name conflicts
	tmpl := template.Must(template.ParseFS(embeddedTemplatesFS, "templates/base.html", "templates/"+templateName))
	c.Header("Content-Type", "text/html")
	err := tmpl.ExecuteTemplate(c.Writer, "base.html", data)
	if err != nil {
		log.Printf("Error rendering template %s: %v", templateName, err)
		s.renderError(c, http.StatusInternalServerError, "Template error", err.Error())
	}
}
