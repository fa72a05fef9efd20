package server

import (
	"embed"
	"html/template"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// renderTemplate executes the named page template into a buffer first so a
// mid-render failure never sends a half-written page.
func (s *Server) renderTemplate(c *gin.Context, name string, status int, data any) {
	var buf strings.Builder
	if err := pageTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		log.Printf("[server] rendering template %s: %v", name, err)
		c.String(http.StatusInternalServerError, "rendering %s failed", name)
		return
	}
	c.Data(status, "text/html; charset=utf-8", []byte(buf.String()))
}

func (s *Server) renderUnavailable(c *gin.Context, err error) {
	log.Printf("[server] model unavailable: %v", err)
	s.renderTemplate(c, "unavailable.html", http.StatusInternalServerError, struct {
		Error string
	}{Error: err.Error()})
}
