package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// PageHandlers serves the HTML demo pages. The router must have the
// templates of the web package loaded.
type PageHandlers struct{}

func NewPageHandlers() *PageHandlers {
	return &PageHandlers{}
}

// IndexHandler godoc
// @Summary      Landing page
// @Description  Renders the HTML landing page showing protocol, host, path, method and user agent of the current request, with forms for the DNS lookup and the HTTP playground.
// @Tags         Pages
// @Produce      html
// @Success      200 {string} string "HTML page"
// @Router       / [get]
func (h *PageHandlers) IndexHandler(c *gin.Context) {
	userAgent := c.Request.UserAgent()
	if userAgent == "" {
		userAgent = "Unknown"
	}
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Scheme":    requestScheme(c.Request),
		"Host":      c.Request.Host,
		"Path":      c.Request.URL.Path,
		"Method":    c.Request.Method,
		"UserAgent": userAgent,
	})
}

// RenderDemoHandler godoc
// @Summary      Rendering process demo
// @Description  Renders a page that logs the browser's parsing, styling and painting events as they happen.
// @Tags         Pages
// @Produce      html
// @Success      200 {string} string "HTML page"
// @Router       /render-demo [get]
func (h *PageHandlers) RenderDemoHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "render-demo.html", nil)
}

// requestScheme prefers the TLS state of the connection, then a proxy's X-Forwarded-Proto.
func requestScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		proto, _, _ = strings.Cut(proto, ",")
		return strings.ToLower(strings.TrimSpace(proto))
	}
	return "http"
}
