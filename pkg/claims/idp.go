package claims

import (
	"encoding/json"
	"strings"
)

// IdpType classifies the external identity provider that authenticated the
// user
type IdpType string

const (
	IdpOkta    IdpType = "OKTA"
	IdpAzureAD IdpType = "AZURE_AD"
	IdpGoogle  IdpType = "GOOGLE"
	IdpSAML    IdpType = "SAML"
	IdpOIDC    IdpType = "OIDC"
)

// identitiesAttribute carries the federated identity links as a JSON array
const identitiesAttribute = "identities"

// identityLink is one entry of the identities attribute
type identityLink struct {
	ProviderName string `json:"providerName"`
	UserID       string `json:"userId"`
}

// DetectIdp classifies the identity provider from claim shape. Known provider
// names in the identities link array win, then a saml: attribute prefix, then
// the OIDC default. Malformed identity JSON is treated as absent.
func DetectIdp(attrs map[string]string) IdpType {
	if raw, ok := attrs[identitiesAttribute]; ok && raw != "" {
		var links []identityLink
		if err := json.Unmarshal([]byte(raw), &links); err == nil {
			for _, link := range links {
				if idp, ok := classifyProviderName(link.ProviderName); ok {
					return idp
				}
			}
		}
	}

	for name := range attrs {
		if strings.HasPrefix(name, "saml:") {
			return IdpSAML
		}
	}

	return IdpOIDC
}

// classifyProviderName maps known provider-name substrings, case-insensitive
func classifyProviderName(name string) (IdpType, bool) {
	name = strings.ToLower(name)
	switch {
	case strings.Contains(name, "okta"):
		return IdpOkta, true
	case strings.Contains(name, "azuread"), strings.Contains(name, "azure ad"):
		return IdpAzureAD, true
	case strings.Contains(name, "google"):
		return IdpGoogle, true
	}
	return "", false
}
