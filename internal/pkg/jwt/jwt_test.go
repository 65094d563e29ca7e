package jwt

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_GenerateAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret-key-for-jwt", "1h")
	employeeID := "0b7c3a8e-2f7d-4c41-9a53-6a0d1f0c2e11"

	token, expiresAt, err := svc.GenerateAccessToken("user-1", auth.RoleEmployee, &employeeID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotZero(t, expiresAt)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)

	p, err := PrincipalFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, "user-1", p.Subject)
	assert.Equal(t, auth.RoleEmployee, p.Role)
	assert.Equal(t, employeeID, p.EmployeeID)
	assert.True(t, p.CanActFor(employeeID))
	assert.False(t, p.CanActFor("someone-else"))
}

func TestJWTService_GenerateAccessToken_Errors(t *testing.T) {
	_, _, err := NewJWTService("secret", "1h").GenerateAccessToken("u", auth.Role("owner"), nil)
	assert.Error(t, err)

	_, _, err = NewJWTService("secret", "soon").GenerateAccessToken("u", auth.RoleAdmin, nil)
	assert.Error(t, err)
}

func TestPrincipalFromClaims(t *testing.T) {
	tests := []struct {
		name    string
		claims  map[string]interface{}
		wantErr error
	}{
		{"admin", map[string]interface{}{"type": "access", "role": "admin", "sub": "a"}, nil},
		{"refresh token", map[string]interface{}{"type": "refresh", "role": "admin"}, auth.ErrInvalidToken},
		{"unknown role", map[string]interface{}{"type": "access", "role": "owner"}, auth.ErrInvalidToken},
		{"employee without id", map[string]interface{}{"type": "access", "role": "employee"}, auth.ErrEmployeeClaimEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PrincipalFromClaims(tt.claims)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
