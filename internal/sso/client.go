package sso

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awssso "github.com/aws/aws-sdk-go-v2/service/sso"
	ssotypes "github.com/aws/aws-sdk-go-v2/service/sso/types"
	"github.com/aws/aws-sdk-go-v2/service/ssooidc"
	oidctypes "github.com/aws/aws-sdk-go-v2/service/ssooidc/types"

	"github.com/ryansb/arsd/models"
)

const deviceGrantType = "urn:ietf:params:oauth:grant-type:device_code"

// Client implements OIDCClient and DirectoryClient against the AWS SSO
// OIDC and SSO directory services for one region.
type Client struct {
	oidc *ssooidc.Client
	sso  *awssso.Client
}

// NewClient builds SDK clients for the partition's SSO region.
func NewClient(ctx context.Context, region string) (*Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}
	return &Client{
		oidc: ssooidc.NewFromConfig(cfg),
		sso:  awssso.NewFromConfig(cfg),
	}, nil
}

func (c *Client) RegisterClient(ctx context.Context, clientName string) (*RegisterOutput, error) {
	resp, err := c.oidc.RegisterClient(ctx, &ssooidc.RegisterClientInput{
		ClientName: aws.String(clientName),
		ClientType: aws.String("public"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register client: %w", err)
	}
	return &RegisterOutput{
		ClientID:     aws.ToString(resp.ClientId),
		ClientSecret: aws.ToString(resp.ClientSecret),
		IssuedAt:     time.Unix(resp.ClientIdIssuedAt, 0),
		ExpiresAt:    time.Unix(resp.ClientSecretExpiresAt, 0),
	}, nil
}

func (c *Client) StartDeviceAuthorization(ctx context.Context, clientID, clientSecret, startURL string) (*DeviceAuthorization, error) {
	resp, err := c.oidc.StartDeviceAuthorization(ctx, &ssooidc.StartDeviceAuthorizationInput{
		ClientId:     aws.String(clientID),
		ClientSecret: aws.String(clientSecret),
		StartUrl:     aws.String(startURL),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start device authorization: %w", err)
	}
	return &DeviceAuthorization{
		UserCode:                aws.ToString(resp.UserCode),
		DeviceCode:              aws.ToString(resp.DeviceCode),
		VerificationURIComplete: aws.ToString(resp.VerificationUriComplete),
		ExpiresIn:               resp.ExpiresIn,
		Interval:                resp.Interval,
	}, nil
}

func (c *Client) CreateToken(ctx context.Context, clientID, clientSecret, deviceCode string) (*TokenOutput, error) {
	resp, err := c.oidc.CreateToken(ctx, &ssooidc.CreateTokenInput{
		ClientId:     aws.String(clientID),
		ClientSecret: aws.String(clientSecret),
		DeviceCode:   aws.String(deviceCode),
		GrantType:    aws.String(deviceGrantType),
	})
	if err != nil {
		return nil, err
	}
	return &TokenOutput{
		AccessToken: aws.ToString(resp.AccessToken),
		TokenType:   aws.ToString(resp.TokenType),
		ExpiresIn:   resp.ExpiresIn,
	}, nil
}

func (c *Client) ListAccounts(ctx context.Context, accessToken string) ([]models.Account, error) {
	var accounts []models.Account
	paginator := awssso.NewListAccountsPaginator(c.sso, &awssso.ListAccountsInput{
		AccessToken: aws.String(accessToken),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list accounts: %w", err)
		}
		for _, a := range page.AccountList {
			accounts = append(accounts, models.Account{
				AccountID:    aws.ToString(a.AccountId),
				AccountName:  aws.ToString(a.AccountName),
				EmailAddress: aws.ToString(a.EmailAddress),
			})
		}
	}
	return accounts, nil
}

func (c *Client) ListAccountRoles(ctx context.Context, accessToken, accountID string) ([]models.Role, error) {
	var roles []models.Role
	paginator := awssso.NewListAccountRolesPaginator(c.sso, &awssso.ListAccountRolesInput{
		AccessToken: aws.String(accessToken),
		AccountId:   aws.String(accountID),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, r := range page.RoleList {
			roles = append(roles, models.Role{
				AccountID: aws.ToString(r.AccountId),
				RoleName:  aws.ToString(r.RoleName),
			})
		}
	}
	return roles, nil
}

func (c *Client) GetRoleCredentials(ctx context.Context, accessToken, accountID, roleName string) (*models.Credentials, error) {
	resp, err := c.sso.GetRoleCredentials(ctx, &awssso.GetRoleCredentialsInput{
		AccessToken: aws.String(accessToken),
		AccountId:   aws.String(accountID),
		RoleName:    aws.String(roleName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get role credentials: %w", err)
	}
	creds := resp.RoleCredentials
	if creds == nil {
		return nil, fmt.Errorf("provider returned no credentials for %s/%s", accountID, roleName)
	}
	return &models.Credentials{
		AccessKeyID:     aws.ToString(creds.AccessKeyId),
		SecretAccessKey: aws.ToString(creds.SecretAccessKey),
		SessionToken:    aws.ToString(creds.SessionToken),
		// The provider reports expiration as epoch milliseconds.
		ExpiresAt: time.UnixMilli(creds.Expiration),
	}, nil
}

// IsAuthorizationPending reports whether a token exchange failed because
// the user has not yet approved the device.
func IsAuthorizationPending(err error) bool {
	var pending *oidctypes.AuthorizationPendingException
	return errors.As(err, &pending)
}

// IsSlowDown reports whether the provider asked the poller to back off.
func IsSlowDown(err error) bool {
	var slow *oidctypes.SlowDownException
	return errors.As(err, &slow)
}

// IsRateLimited reports whether a directory call was throttled.
func IsRateLimited(err error) bool {
	var tooMany *ssotypes.TooManyRequestsException
	return errors.As(err, &tooMany)
}
