package cognito

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
)

// TenantAttributeName is the custom attribute stamped onto confirmed users
const TenantAttributeName = "custom:tenantId"

// AdminAPI is the slice of the Cognito identity provider API the client uses
type AdminAPI interface {
	AdminUpdateUserAttributes(ctx context.Context, params *cognitoidentityprovider.AdminUpdateUserAttributesInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminUpdateUserAttributesOutput, error)
}

// Client performs admin writes against a Cognito user pool
type Client struct {
	api AdminAPI
}

// NewClient builds a client from the default AWS configuration chain
func NewClient(ctx context.Context) (*Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &Client{api: cognitoidentityprovider.NewFromConfig(cfg)}, nil
}

// NewClientWithAPI wires a client to an explicit API implementation
func NewClientWithAPI(api AdminAPI) *Client {
	return &Client{api: api}
}

// SetTenantAttribute writes the tenant identifier onto the user record
func (c *Client) SetTenantAttribute(ctx context.Context, userPoolID, username, tenantID string) error {
	_, err := c.api.AdminUpdateUserAttributes(ctx, &cognitoidentityprovider.AdminUpdateUserAttributesInput{
		UserPoolId: aws.String(userPoolID),
		Username:   aws.String(username),
		UserAttributes: []types.AttributeType{
			{
				Name:  aws.String(TenantAttributeName),
				Value: aws.String(tenantID),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to update user attributes: %w", err)
	}
	return nil
}
