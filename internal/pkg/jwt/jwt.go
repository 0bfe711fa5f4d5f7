package jwt

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/teamready/readiness-backend-go/internal/domain/member"
)

// Identity is the caller identity carried by a verified access token.
// Session issuance lives in the identity provider; this service only
// verifies bearer tokens and extracts claims.
type Identity struct {
	UserID    string
	CompanyID string
	TeamID    *string
	Role      member.Role
}

type Service interface {
	// GenerateAccessToken mints a token for tooling and tests; production
	// tokens come from the identity provider sharing the same secret.
	GenerateAccessToken(userID, companyID string, teamID *string, role member.Role) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey        string
	accessExpiration string
	tokenAuth        *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, accessExpiration string) Service {
	return &JWTService{
		secretKey:        secretKey,
		accessExpiration: accessExpiration,
		tokenAuth:        jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(userID, companyID string, teamID *string, role member.Role) (string, int64, error) {
	expDuration, err := time.ParseDuration(j.accessExpiration)
	if err != nil {
		return "", 0, err
	}
	expiresAt := time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"user_id":    userID,
		"company_id": companyID,
		"role":       string(role),
		"type":       "access",
		"exp":        expiresAt,
	}
	if teamID != nil {
		claims["team_id"] = *teamID
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// IdentityFromContext resolves the caller identity from the verified token
// in ctx. Resolved once per request and threaded explicitly; handlers and
// services never read raw claims.
func IdentityFromContext(ctx context.Context) (Identity, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Identity{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return Identity{}, fmt.Errorf("user_id claim is missing or invalid")
	}
	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return Identity{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	roleStr, ok := claims["role"].(string)
	if !ok || roleStr == "" {
		return Identity{}, fmt.Errorf("role claim is missing or invalid")
	}

	ident := Identity{
		UserID:    userID,
		CompanyID: companyID,
		Role:      member.Role(roleStr),
	}
	if teamID, ok := claims["team_id"].(string); ok && teamID != "" {
		ident.TeamID = &teamID
	}
	return ident, nil
}
