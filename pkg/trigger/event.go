package trigger

// PreTokenEvent is the pre-token-generation trigger payload. The shape
// mirrors the Cognito wire format; unrecognized fields round-trip through
// the raw JSON untouched because the handler only ever writes into
// Response.ClaimsOverrideDetails.
type PreTokenEvent struct {
	Version       string           `json:"version,omitempty"`
	TriggerSource string           `json:"triggerSource"`
	Region        string           `json:"region,omitempty"`
	UserPoolID    string           `json:"userPoolId,omitempty"`
	UserName      string           `json:"userName,omitempty"`
	Request       PreTokenRequest  `json:"request"`
	Response      PreTokenResponse `json:"response"`
}

// PreTokenRequest carries the user attributes and caller-supplied metadata
type PreTokenRequest struct {
	UserAttributes map[string]string `json:"userAttributes"`
	ClientMetadata map[string]string `json:"clientMetadata,omitempty"`
}

// PreTokenResponse holds the claim overrides to apply to the issued tokens
type PreTokenResponse struct {
	ClaimsOverrideDetails *ClaimsOverrideDetails `json:"claimsOverrideDetails,omitempty"`
}

// ClaimsOverrideDetails is the claims-to-add section of the response. The
// top-level map is the V1 shape; the per-token sections mirror it for pools
// configured with the newer response format.
type ClaimsOverrideDetails struct {
	ClaimsToAddOrOverride map[string]string `json:"claimsToAddOrOverride,omitempty"`
	IDTokenGeneration     *TokenOverride    `json:"idTokenGeneration,omitempty"`
	AccessTokenGeneration *TokenOverride    `json:"accessTokenGeneration,omitempty"`
}

// TokenOverride is the per-token-type claim override section
type TokenOverride struct {
	ClaimsToAddOrOverride map[string]string `json:"claimsToAddOrOverride,omitempty"`
}

// InstallOverride installs the claim map into the response, mirrored across
// the top-level section and both per-token sections. The section is installed
// even for an empty map; absent claims are simply omitted from it.
func (e *PreTokenEvent) InstallOverride(override map[string]string) {
	e.Response.ClaimsOverrideDetails = &ClaimsOverrideDetails{
		ClaimsToAddOrOverride: override,
		IDTokenGeneration:     &TokenOverride{ClaimsToAddOrOverride: override},
		AccessTokenGeneration: &TokenOverride{ClaimsToAddOrOverride: override},
	}
}

// PostConfirmationEvent is the post-confirmation trigger payload
type PostConfirmationEvent struct {
	Version       string                  `json:"version,omitempty"`
	TriggerSource string                  `json:"triggerSource"`
	Region        string                  `json:"region,omitempty"`
	UserPoolID    string                  `json:"userPoolId,omitempty"`
	UserName      string                  `json:"userName,omitempty"`
	Request       PostConfirmationRequest `json:"request"`
	Response      map[string]interface{}  `json:"response"`
}

// PostConfirmationRequest carries the confirmed user's attributes and
// caller-supplied metadata
type PostConfirmationRequest struct {
	UserAttributes map[string]string `json:"userAttributes"`
	ClientMetadata map[string]string `json:"clientMetadata,omitempty"`
}
