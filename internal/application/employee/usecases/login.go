package usecases

import (
	"context"
	"strings"

	"github.com/orris-inc/casedesk/internal/application/employee/dto"
	"github.com/orris-inc/casedesk/internal/domain/employee"
	"github.com/orris-inc/casedesk/internal/shared/errors"
	"github.com/orris-inc/casedesk/internal/shared/logger"
)

type AccessToken struct {
	Token     string
	ExpiresIn int64
}

type TokenIssuer interface {
	Issue(employeeID uint, name, performanceNumber string) (*AccessToken, error)
}

type LoginCommand struct {
	PerformanceNumber string
}

type LoginResult struct {
	Employee    *dto.EmployeeDTO `json:"employee"`
	AccessToken string           `json:"access_token"`
	TokenType   string           `json:"token_type"`
	ExpiresIn   int64            `json:"expires_in"`
}

// LoginUseCase signs an active employee in by performance number.
type LoginUseCase struct {
	employeeRepo employee.Repository
	tokens       TokenIssuer
	logger       logger.Interface
}

func NewLoginUseCase(employeeRepo employee.Repository, tokens TokenIssuer, logger logger.Interface) *LoginUseCase {
	return &LoginUseCase{
		employeeRepo: employeeRepo,
		tokens:       tokens,
		logger:       logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	number := strings.TrimSpace(cmd.PerformanceNumber)
	if number == "" {
		return nil, errors.NewValidationError("performance number is required")
	}

	e, err := uc.employeeRepo.GetActiveByPerformanceNumber(ctx, number)
	if err != nil {
		uc.logger.Errorw("failed to look up employee", "error", err)
		return nil, errors.WrapPersistence(err, "failed to look up employee")
	}
	if e == nil {
		uc.logger.Warnw("login rejected", "performance_number", number)
		return nil, errors.NewUnauthorizedError("invalid performance number")
	}

	token, err := uc.tokens.Issue(e.ID(), e.Name(), e.PerformanceNumber())
	if err != nil {
		uc.logger.Errorw("failed to issue access token", "employee_id", e.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue access token")
	}

	uc.logger.Infow("employee logged in", "employee_id", e.ID())
	return &LoginResult{
		Employee:    dto.ToEmployeeDTO(e),
		AccessToken: token.Token,
		TokenType:   "Bearer",
		ExpiresIn:   token.ExpiresIn,
	}, nil
}
