package utils

import (
	"context"
	"fmt"
	"net"
	"strings"

	"github.com/oschwald/geoip2-golang"
	"github.com/sirupsen/logrus"
)

// IPInfoData holds everything IPInspector knows about one address.
type IPInfoData struct {
	IPAddress          string
	IsValid            bool
	Version            string
	IsLoopback         bool
	IsPrivate          bool
	IsMulticast        bool
	IsLinkLocalUnicast bool
	IsGlobalUnicast    bool
	ReverseDNSNames    []string
	Error              string

	CountryCode    string
	CountryName    string
	CityName       string
	PostalCode     string
	Latitude       float64
	Longitude      float64
	TimeZone       string
	ASN            uint
	ASOrganization string
	GeoError       string
}

// IPInspector classifies addresses and enriches them from optional MaxMind databases.
type IPInspector struct {
	cityDB      *geoip2.Reader
	asnDB       *geoip2.Reader
	cityLoadErr error
	asnLoadErr  error
	resolver    *net.Resolver
	logger      logrus.FieldLogger
}

// NewIPInspector opens the GeoLite2 City and ASN databases. A missing or
// broken database only disables that part of the lookup.
func NewIPInspector(cityDBPath, asnDBPath string, logger logrus.FieldLogger) *IPInspector {
	in := &IPInspector{resolver: net.DefaultResolver, logger: logger}

	in.cityDB, in.cityLoadErr = openMaxMindDB("GeoLite2-City", cityDBPath, logger)
	in.asnDB, in.asnLoadErr = openMaxMindDB("GeoLite2-ASN", asnDBPath, logger)
	return in
}

func openMaxMindDB(name, path string, logger logrus.FieldLogger) (*geoip2.Reader, error) {
	if path == "" {
		logger.Debugf("%s database path not provided, lookups disabled", name)
		return nil, fmt.Errorf("%s path not provided", name)
	}
	db, err := geoip2.Open(path)
	if err != nil {
		logger.WithError(err).WithField("path", path).Warnf("Could not open %s database, lookups disabled", name)
		return nil, err
	}
	logger.WithField("path", path).Infof("Loaded %s database", name)
	return db, nil
}

// Close releases the database readers.
func (in *IPInspector) Close() {
	for name, db := range map[string]*geoip2.Reader{"GeoLite2-City": in.cityDB, "GeoLite2-ASN": in.asnDB} {
		if db == nil {
			continue
		}
		if err := db.Close(); err != nil {
			in.logger.WithError(err).Errorf("Error closing %s database", name)
		} else {
			in.logger.Debugf("%s database closed", name)
		}
	}
}

// Inspect retrieves basic, reverse DNS and GeoIP information about ipStr.
func (in *IPInspector) Inspect(ctx context.Context, ipStr string) IPInfoData {
	data := IPInfoData{IPAddress: ipStr}
	parsedIP := net.ParseIP(ipStr)

	if parsedIP == nil {
		data.Error = "Invalid IP address format"
		return data
	}

	data.IsValid = true
	if parsedIP.To4() != nil {
		data.Version = "IPv4"
	} else {
		data.Version = "IPv6"
	}

	data.IsLoopback = parsedIP.IsLoopback()
	data.IsPrivate = parsedIP.IsPrivate()
	data.IsMulticast = parsedIP.IsMulticast()
	data.IsLinkLocalUnicast = parsedIP.IsLinkLocalUnicast()
	data.IsGlobalUnicast = parsedIP.IsGlobalUnicast()

	names, _ := in.resolver.LookupAddr(ctx, ipStr)
	for _, name := range names {
		data.ReverseDNSNames = append(data.ReverseDNSNames, strings.TrimSuffix(name, "."))
	}

	var geoErrs []string

	if in.cityDB != nil {
		cityRecord, err := in.cityDB.City(parsedIP)
		if err != nil {
			geoErrs = append(geoErrs, fmt.Sprintf("City/Country lookup error: %v", err))
		} else {
			data.CountryCode = cityRecord.Country.IsoCode
			data.CountryName = cityRecord.Country.Names["en"]
			data.CityName = cityRecord.City.Names["en"]
			data.PostalCode = cityRecord.Postal.Code
			data.Latitude = cityRecord.Location.Latitude
			data.Longitude = cityRecord.Location.Longitude
			data.TimeZone = cityRecord.Location.TimeZone
		}
	} else if in.cityLoadErr != nil {
		geoErrs = append(geoErrs, fmt.Sprintf("City/Country DB not loaded: %v", in.cityLoadErr))
	}

	if in.asnDB != nil {
		asnRecord, err := in.asnDB.ASN(parsedIP)
		if err != nil {
			geoErrs = append(geoErrs, fmt.Sprintf("ASN lookup error: %v", err))
		} else {
			data.ASN = asnRecord.AutonomousSystemNumber
			data.ASOrganization = asnRecord.AutonomousSystemOrganization
		}
	} else if in.asnLoadErr != nil {
		geoErrs = append(geoErrs, fmt.Sprintf("ASN DB not loaded: %v", in.asnLoadErr))
	}

	if len(geoErrs) > 0 {
		data.GeoError = strings.Join(geoErrs, "; ")
	}
	return data
}
