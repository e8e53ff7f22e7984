package http

import (
	"github.com/orris-inc/casedesk/internal/application/employee/usecases"
	"github.com/orris-inc/casedesk/internal/infrastructure/auth"
)

// tokenIssuerAdapter adapts auth.JWTService to usecases.TokenIssuer.
type tokenIssuerAdapter struct {
	*auth.JWTService
}

func (a *tokenIssuerAdapter) Issue(employeeID uint, name, performanceNumber string) (*usecases.AccessToken, error) {
	token, err := a.JWTService.Generate(employeeID, name, performanceNumber)
	if err != nil {
		return nil, err
	}
	return &usecases.AccessToken{
		Token:     token.AccessToken,
		ExpiresIn: token.ExpiresIn,
	}, nil
}
