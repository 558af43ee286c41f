package handlers

import (
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vit0-9/http_playground/models"
)

// allowedStatusCodes are answered with themselves by StatusCodeHandler.
// Anything else falls back to 200.
var allowedStatusCodes = map[int]struct{}{
	http.StatusOK:                  {},
	http.StatusCreated:             {},
	http.StatusNoContent:           {},
	http.StatusBadRequest:          {},
	http.StatusUnauthorized:        {},
	http.StatusForbidden:           {},
	http.StatusNotFound:            {},
	http.StatusInternalServerError: {},
	http.StatusBadGateway:          {},
	http.StatusServiceUnavailable:  {},
}

// HTTPPlaygroundHandlers groups the request/response demonstration endpoints
type HTTPPlaygroundHandlers struct {
	echoDelay time.Duration
}

// NewHTTPPlaygroundHandlers creates the handlers. echoDelay slows down GET /echo
// so the browser's pending state can be observed; zero disables it.
func NewHTTPPlaygroundHandlers(echoDelay time.Duration) *HTTPPlaygroundHandlers {
	return &HTTPPlaygroundHandlers{echoDelay: echoDelay}
}

// EchoHandler godoc
// @Summary      Echo the request
// @Description  Returns method, path, headers and query string of the request. Header names are lowercased and sorted by name; repeated headers appear once per value. body is always null.
// @Tags         HTTP Playground
// @Produce      json
// @Success      200 {object} models.RequestDetails
// @Router       /echo [get]
// @Router       /echo [delete]
func (h *HTTPPlaygroundHandlers) EchoHandler(c *gin.Context) {
	if c.Request.Method == http.MethodGet && h.echoDelay > 0 {
		timer := time.NewTimer(h.echoDelay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-c.Request.Context().Done():
			c.Abort()
			return
		}
	}
	c.JSON(http.StatusOK, newRequestDetails(c.Request, nil))
}

// EchoWithBodyHandler godoc
// @Summary      Echo the request and its message
// @Description  Like GET /echo, with body set to the message of the JSON payload.
// @Tags         HTTP Playground
// @Accept       json
// @Produce      json
// @Param        echoRequest body models.EchoRequest true "Message to echo"
// @Success      200 {object} models.RequestDetails
// @Failure      400 {object} models.APIErrorResponse "Error: Invalid request payload"
// @Router       /echo [post]
// @Router       /echo [put]
func (h *HTTPPlaygroundHandlers) EchoWithBodyHandler(c *gin.Context) {
	var req models.EchoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, models.ErrCodeInvalidPayload, "Invalid request payload", err)
		return
	}
	c.JSON(http.StatusOK, newRequestDetails(c.Request, req.Message))
}

// StatusCodeHandler godoc
// @Summary      Respond with a chosen status code
// @Description  Responds with the requested status when it is one of 200, 201, 204, 400, 401, 403, 404, 500, 502, 503 and with 200 otherwise. The body names the requested code either way (204 carries no body).
// @Tags         HTTP Playground
// @Produce      plain
// @Param        code path int true "Status code to return"
// @Success      200 {string} string "Returned status code: 200"
// @Failure      404 {string} string "Path segment is not a status code"
// @Router       /status/{code} [get]
func (h *HTTPPlaygroundHandlers) StatusCodeHandler(c *gin.Context) {
	code, err := strconv.ParseUint(c.Param("code"), 10, 16)
	if err != nil {
		c.String(http.StatusNotFound, "404 page not found")
		return
	}

	status := http.StatusOK
	if _, ok := allowedStatusCodes[int(code)]; ok {
		status = int(code)
	}
	c.String(status, "Returned status code: %d", code)
}

func newRequestDetails(r *http.Request, body *string) models.RequestDetails {
	return models.RequestDetails{
		Method:      r.Method,
		Path:        r.URL.Path,
		Headers:     collectHeaders(r),
		QueryString: r.URL.RawQuery,
		Body:        body,
	}
}

// collectHeaders flattens the request headers into lowercased name/value
// pairs ordered by name. net/http drops the Host header from r.Header, so it
// is put back from r.Host.
func collectHeaders(r *http.Request) []models.HeaderPair {
	pairs := make([]models.HeaderPair, 0, len(r.Header)+1)
	if r.Host != "" {
		pairs = append(pairs, models.HeaderPair{Name: "host", Value: r.Host})
	}
	for name, values := range r.Header {
		lower := strings.ToLower(name)
		for _, v := range values {
			pairs = append(pairs, models.HeaderPair{Name: lower, Value: v})
		}
	}
	slices.SortStableFunc(pairs, func(a, b models.HeaderPair) int {
		return strings.Compare(a.Name, b.Name)
	})
	return pairs
}
