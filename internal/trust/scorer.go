package trust

import (
	"net/url"
	"perfumefinder/internal/models"
	"perfumefinder/internal/structures"
	"strings"
)

const (
	WarningInvalidURL    = "Invalid URL format"
	WarningNoHTTPS       = "Website does not use HTTPS - your data may not be secure"
	WarningUnverified    = "This shop is not in our verified trusted list"
	WarningSuspiciousTLD = "Domain uses a potentially suspicious extension"
)

var suspiciousTLDs = []string{".tk", ".ml", ".ga", ".cf", ".gq", ".xyz", ".top"}

// Schemes that must carry a host, following the WHATWG URL rules browsers use.
var hostSchemes = map[string]bool{"http": true, "https": true, "ws": true, "wss": true, "ftp": true}

type ScorerInterface interface {
	Check(rawURL string) models.SafetyResult
}

type Scorer struct {
	trustedDomains []string
}

func NewScorer(conf *structures.Config) ScorerInterface {
	return NewScorerWithDomains(conf.Trust.TrustedDomains)
}

func NewScorerWithDomains(domains []string) *Scorer {
	trusted := make([]string, 0, len(domains))
	for _, d := range domains {
		d = strings.ToLower(strings.TrimSpace(d))
		if d != "" {
			trusted = append(trusted, d)
		}
	}
	return &Scorer{trustedDomains: trusted}
}

// Check scores a shop URL. The HTTPS check runs first and forces critical;
// every later step only raises the tier, so a plain-http URL always ends
// critical whatever its domain looks like.
func (s *Scorer) Check(rawURL string) models.SafetyResult {
	scheme, host, ok := parseShopURL(rawURL)
	if !ok {
		return result(models.SeverityHigh, []string{WarningInvalidURL})
	}

	warnings := make([]string, 0)
	severity := models.SeveritySafe

	if scheme != "https" {
		warnings = append(warnings, WarningNoHTTPS)
		severity = models.SeverityCritical
	}

	domain := strings.TrimPrefix(host, "www.")

	if !s.isTrusted(domain) {
		warnings = append(warnings, WarningUnverified)
		severity = severity.AtLeast(models.SeverityLow)
	}

	if hasSuspiciousTLD(domain) {
		warnings = append(warnings, WarningSuspiciousTLD)
		severity = severity.AtLeast(models.SeverityMedium)
	}

	return result(severity, warnings)
}

// parseShopURL returns the lowercase scheme and hostname. Web schemes written
// without slashes ("https:shop.com") are read as "https://shop.com"; other
// schemes such as mailto may have no host at all.
func parseShopURL(rawURL string) (scheme, host string, ok bool) {
	raw := strings.TrimSpace(rawURL)
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		return "", "", false
	}
	scheme = u.Scheme
	host = u.Hostname()
	if host == "" && hostSchemes[scheme] {
		rest := strings.TrimLeft(raw[len(scheme)+1:], "/\\")
		if rest == "" {
			return "", "", false
		}
		u, err = url.Parse(scheme + "://" + rest)
		if err != nil || u.Hostname() == "" {
			return "", "", false
		}
		host = u.Hostname()
	}
	return scheme, strings.ToLower(host), true
}

func (s *Scorer) isTrusted(domain string) bool {
	for _, trusted := range s.trustedDomains {
		if strings.Contains(domain, trusted) {
			return true
		}
	}
	return false
}

func hasSuspiciousTLD(domain string) bool {
	for _, tld := range suspiciousTLDs {
		if strings.HasSuffix(domain, tld) {
			return true
		}
	}
	return false
}

func result(severity models.Severity, warnings []string) models.SafetyResult {
	return models.SafetyResult{
		IsSafe:   len(warnings) == 0 || severity == models.SeverityLow,
		Warnings: warnings,
		Severity: severity,
		Label:    severity.Label(),
	}
}
