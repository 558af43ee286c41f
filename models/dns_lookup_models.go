package models

// DNSLookupRequest is the JSON body accepted by POST /dns-lookup.
type DNSLookupRequest struct {
	Domain *string `json:"domain" binding:"required" example:"example.com"`
}
