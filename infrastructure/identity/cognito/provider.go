package cognito

import (
	"context"
	"errors"

	"muzac-backend/application/ports"
	apperrors "muzac-backend/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/aws/smithy-go"
	"go.uber.org/zap"
)

// Provider implements the identity port against a Cognito user pool. All
// credential and token handling stays on the provider side; this adapter only
// reshapes calls and errors.
type Provider struct {
	client   *cognitoidentityprovider.Client
	clientID string
	logger   *zap.Logger
}

// NewProvider creates a new Cognito identity provider
func NewProvider(client *cognitoidentityprovider.Client, clientID string, logger *zap.Logger) ports.IdentityProvider {
	return &Provider{
		client:   client,
		clientID: clientID,
		logger:   logger,
	}
}

// Login exchanges credentials for an access token via USER_PASSWORD_AUTH.
func (p *Provider) Login(ctx context.Context, email, password string) (string, error) {
	out, err := p.client.InitiateAuth(ctx, &cognitoidentityprovider.InitiateAuthInput{
		AuthFlow: types.AuthFlowTypeUserPasswordAuth,
		ClientId: aws.String(p.clientID),
		AuthParameters: map[string]string{
			"USERNAME": email,
			"PASSWORD": password,
		},
	})
	if err != nil {
		var notAuthorized *types.NotAuthorizedException
		var userNotFound *types.UserNotFoundException
		if errors.As(err, &notAuthorized) || errors.As(err, &userNotFound) {
			return "", ports.ErrInvalidCredentials
		}
		return "", p.providerError(err)
	}
	if out.AuthenticationResult == nil || out.AuthenticationResult.AccessToken == nil {
		// A challenge response instead of a token; the app does not do MFA.
		return "", ports.ErrInvalidCredentials
	}
	return *out.AuthenticationResult.AccessToken, nil
}

// Register signs up a new user with the email attribute set.
func (p *Provider) Register(ctx context.Context, email, password string) error {
	_, err := p.client.SignUp(ctx, &cognitoidentityprovider.SignUpInput{
		ClientId: aws.String(p.clientID),
		Username: aws.String(email),
		Password: aws.String(password),
		UserAttributes: []types.AttributeType{
			{Name: aws.String("email"), Value: aws.String(email)},
		},
	})
	if err != nil {
		var exists *types.UsernameExistsException
		if errors.As(err, &exists) {
			return ports.ErrUserAlreadyExists
		}
		return p.providerError(err)
	}
	return nil
}

// ConfirmSignUp confirms a registration with the emailed code.
func (p *Provider) ConfirmSignUp(ctx context.Context, email, code string) error {
	_, err := p.client.ConfirmSignUp(ctx, &cognitoidentityprovider.ConfirmSignUpInput{
		ClientId:         aws.String(p.clientID),
		Username:         aws.String(email),
		ConfirmationCode: aws.String(code),
	})
	if err != nil {
		return p.providerError(err)
	}
	return nil
}

// ResendConfirmationCode re-sends the registration confirmation code.
func (p *Provider) ResendConfirmationCode(ctx context.Context, email string) error {
	_, err := p.client.ResendConfirmationCode(ctx, &cognitoidentityprovider.ResendConfirmationCodeInput{
		ClientId: aws.String(p.clientID),
		Username: aws.String(email),
	})
	if err != nil {
		return p.providerError(err)
	}
	return nil
}

// GetUser resolves an access token to its user. Any provider failure means
// the token does not verify.
func (p *Provider) GetUser(ctx context.Context, accessToken string) (ports.User, error) {
	out, err := p.client.GetUser(ctx, &cognitoidentityprovider.GetUserInput{
		AccessToken: aws.String(accessToken),
	})
	if err != nil {
		return ports.User{}, ports.ErrInvalidToken
	}

	user := ports.User{Sub: aws.ToString(out.Username)}
	for _, attr := range out.UserAttributes {
		if aws.ToString(attr.Name) == "email" {
			user.Email = aws.ToString(attr.Value)
			break
		}
	}
	if user.Email == "" {
		user.Email = user.Sub
	}
	return user, nil
}

// providerError surfaces the provider's own message as a validation failure
// so the frontend can show it, matching the pass-through contract.
func (p *Provider) providerError(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		p.logger.Warn("Identity provider call failed",
			zap.String("code", apiErr.ErrorCode()),
			zap.String("message", apiErr.ErrorMessage()),
		)
		return apperrors.NewValidationError(apiErr.ErrorMessage()).WithCause(err)
	}
	return err
}
