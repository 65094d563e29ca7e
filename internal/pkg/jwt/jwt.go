package jwt

import (
	"errors"
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/auth"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const tokenTypeAccess = "access"

type Service interface {
	GenerateAccessToken(subject string, role auth.Role, employeeID *string) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) GenerateAccessToken(subject string, role auth.Role, employeeID *string) (token string, expiresAt int64, err error) {
	if !role.IsValid() {
		return "", 0, errors.New("unknown role " + string(role))
	}

	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"sub":  subject,
		"role": string(role),
		"type": tokenTypeAccess,
		"exp":  expiresAt,
	}
	if employeeID != nil {
		claims["employee_id"] = *employeeID
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// PrincipalFromClaims reads the identity of a verified access token.
func PrincipalFromClaims(claims map[string]interface{}) (auth.Principal, error) {
	tokenType, _ := claims["type"].(string)
	if tokenType != tokenTypeAccess {
		return auth.Principal{}, auth.ErrInvalidToken
	}

	role, _ := claims["role"].(string)
	if !auth.Role(role).IsValid() {
		return auth.Principal{}, auth.ErrInvalidToken
	}

	p := auth.Principal{Role: auth.Role(role)}
	p.Subject, _ = claims["sub"].(string)
	p.EmployeeID, _ = claims["employee_id"].(string)

	if p.Role == auth.RoleEmployee && p.EmployeeID == "" {
		return auth.Principal{}, auth.ErrEmployeeClaimEmpty
	}
	return p, nil
}
