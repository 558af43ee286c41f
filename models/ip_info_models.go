package models

import "github.com/vit0-9/http_playground/pkg/utils"

// Where the inspected address of an IPInfoResponse came from.
const (
	IPSourceQuery  = "query"  // the ip query parameter
	IPSourceClient = "client" // the caller's own address, when ip is omitted
)

// IPInfoResponse describes one address as seen by /ip-info.
//
// Classification fields are always set for a valid address. GeoIP and ASN
// fields stay empty unless the matching MaxMind database is configured;
// GeoError then says why.
type IPInfoResponse struct {
	IPAddress string `json:"ip_address" example:"192.0.2.1"`
	Source    string `json:"source" enums:"query,client" example:"client"`
	IsValid   bool   `json:"is_valid"`
	// Set instead of the other fields when ip_address does not parse.
	Error   string `json:"error,omitempty"`
	Version string `json:"version,omitempty" enums:"IPv4,IPv6"`

	IsLoopback         bool `json:"is_loopback"`
	IsPrivate          bool `json:"is_private"`
	IsMulticast        bool `json:"is_multicast"`
	IsLinkLocalUnicast bool `json:"is_link_local_unicast"`
	IsGlobalUnicast    bool `json:"is_global_unicast"`

	// PTR names without the trailing dot.
	ReverseDNSNames []string `json:"reverse_dns_names,omitempty"`

	// GeoLite2-City
	CountryCode string  `json:"country_code,omitempty" example:"NL"`
	CountryName string  `json:"country_name,omitempty"`
	CityName    string  `json:"city_name,omitempty"`
	PostalCode  string  `json:"postal_code,omitempty"`
	Latitude    float64 `json:"latitude,omitempty"`
	Longitude   float64 `json:"longitude,omitempty"`
	TimeZone    string  `json:"time_zone,omitempty" example:"Europe/Amsterdam"`

	// GeoLite2-ASN
	ASN            uint   `json:"asn,omitempty"`
	ASOrganization string `json:"as_organization,omitempty"`

	GeoError string `json:"geo_error,omitempty"`
}

// NewIPInfoResponse converts an inspection result. source is IPSourceQuery
// or IPSourceClient.
func NewIPInfoResponse(data utils.IPInfoData, source string) IPInfoResponse {
	return IPInfoResponse{
		IPAddress:          data.IPAddress,
		Source:             source,
		IsValid:            data.IsValid,
		Error:              data.Error,
		Version:            data.Version,
		IsLoopback:         data.IsLoopback,
		IsPrivate:          data.IsPrivate,
		IsMulticast:        data.IsMulticast,
		IsLinkLocalUnicast: data.IsLinkLocalUnicast,
		IsGlobalUnicast:    data.IsGlobalUnicast,
		ReverseDNSNames:    data.ReverseDNSNames,
		CountryCode:        data.CountryCode,
		CountryName:        data.CountryName,
		CityName:           data.CityName,
		PostalCode:         data.PostalCode,
		Latitude:           data.Latitude,
		Longitude:          data.Longitude,
		TimeZone:           data.TimeZone,
		ASN:                data.ASN,
		ASOrganization:     data.ASOrganization,
		GeoError:           data.GeoError,
	}
}
