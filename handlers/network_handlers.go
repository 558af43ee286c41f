package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/vit0-9/http_playground/models"
	"github.com/vit0-9/http_playground/pkg/resolver"
	"github.com/vit0-9/http_playground/pkg/utils"
)

// DomainResolver resolves a domain name into its addresses.
type DomainResolver interface {
	Resolve(ctx context.Context, domain string) (*resolver.LookupResult, error)
}

// IPInspector describes an IP address.
type IPInspector interface {
	Inspect(ctx context.Context, ip string) utils.IPInfoData
}

// NetworkIntelligenceHandlers groups network and domain related utilities
type NetworkIntelligenceHandlers struct {
	resolver      DomainResolver
	inspector     IPInspector
	lookupTimeout time.Duration
	logger        logrus.FieldLogger
}

// NewNetworkIntelligenceHandlers wires the handlers to their collaborators.
// lookupTimeout bounds every DNS lookup; zero leaves it to the client.
func NewNetworkIntelligenceHandlers(r DomainResolver, in IPInspector, lookupTimeout time.Duration, logger logrus.FieldLogger) *NetworkIntelligenceHandlers {
	return &NetworkIntelligenceHandlers{
		resolver:      r,
		inspector:     in,
		lookupTimeout: lookupTimeout,
		logger:        logger,
	}
}

// DNSLookupHandler godoc
// @Summary      Resolve a domain to IP addresses
// @Description  Resolves all A and AAAA records of a domain with the configured resolver and reports how long the lookup took.
// @Tags         Network & Domain Intelligence
// @Produce      json
// @Produce      plain
// @Param        domain query string true "Domain to lookup"
// @Success      200 {object} resolver.LookupResult
// @Failure      400 {object} models.APIErrorResponse "Error: missing domain"
// @Failure      500 {string} string "Resolution error description"
// @Router       /dns-lookup [get]
func (h *NetworkIntelligenceHandlers) DNSLookupHandler(c *gin.Context) {
	domain, ok := c.GetQuery("domain")
	if !ok {
		respondBadRequest(c, models.ErrCodeMissingParam, "domain query parameter is required", nil)
		return
	}
	h.lookup(c, domain)
}

// DNSLookupPostHandler godoc
// @Summary      Resolve a domain to IP addresses
// @Description  Same as GET /dns-lookup with the domain taken from a JSON body.
// @Tags         Network & Domain Intelligence
// @Accept       json
// @Produce      json
// @Produce      plain
// @Param        lookupRequest body models.DNSLookupRequest true "Domain to lookup"
// @Success      200 {object} resolver.LookupResult
// @Failure      400 {object} models.APIErrorResponse "Error: Invalid request payload"
// @Failure      500 {string} string "Resolution error description"
// @Router       /dns-lookup [post]
func (h *NetworkIntelligenceHandlers) DNSLookupPostHandler(c *gin.Context) {
	var req models.DNSLookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, models.ErrCodeInvalidPayload, "Invalid request payload", err)
		return
	}
	h.lookup(c, *req.Domain)
}

func (h *NetworkIntelligenceHandlers) lookup(c *gin.Context, domain string) {
	ctx := c.Request.Context()
	if h.lookupTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.lookupTimeout)
		defer cancel()
	}

	result, err := h.resolver.Resolve(ctx, domain)
	if err != nil {
		h.logger.WithError(err).WithField("domain", domain).Warn("DNS lookup failed")
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	h.logger.WithFields(logrus.Fields{
		"domain":         domain,
		"addresses":      len(result.IPAddresses),
		"lookup_time_ms": result.LookupTimeMs,
	}).Debug("DNS lookup finished")
	c.JSON(http.StatusOK, result)
}

// IPInfoHandler godoc
// @Summary      Get detailed information about an IP address
// @Description  Provides validation, type classification, reverse DNS, and GeoIP/ASN information for an IP. Without the ip parameter the caller's own address is described.
// @Tags         Network & Domain Intelligence
// @Produce      json
// @Param        ip query string false "IP Address to get info for (defaults to the client address)"
// @Success      200 {object} models.IPInfoResponse "Successfully retrieved IP information"
// @Router       /ip-info [get]
func (h *NetworkIntelligenceHandlers) IPInfoHandler(c *gin.Context) {
	ipAddress, source := c.Query("ip"), models.IPSourceQuery
	if ipAddress == "" {
		ipAddress, source = c.ClientIP(), models.IPSourceClient
	}

	ctx := c.Request.Context()
	if h.lookupTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.lookupTimeout)
		defer cancel()
	}
	c.JSON(http.StatusOK, models.NewIPInfoResponse(h.inspector.Inspect(ctx, ipAddress), source))
}
