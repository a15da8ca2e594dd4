package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/jvictorino/briefly/internal/dto"
)

// OperatorEmailKey is the gin context key holding the authenticated
// operator's email inside admin handlers.
const OperatorEmailKey = "operator_email"

type OperatorClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// SignOperatorToken issues a short-lived HS256 token for the dashboard.
func SignOperatorToken(secret []byte, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := OperatorClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ParseOperatorToken(secret []byte, tok string) (*OperatorClaims, error) {
	t, err := jwt.ParseWithClaims(tok, &OperatorClaims{}, func(token *jwt.Token) (interface{}, error) { return secret, nil })
	if err != nil {
		return nil, err
	}
	if c, ok := t.Claims.(*OperatorClaims); ok && t.Valid {
		return c, nil
	}
	return nil, errors.New("invalid token")
}

// RequireOperator rejects requests without a valid bearer token. The public
// respondent surface never passes through here.
func RequireOperator(secret []byte) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing bearer token"})
			return
		}
		tok := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		claims, err := ParseOperatorToken(secret, tok)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid or expired token"})
			return
		}
		ctx.Set(OperatorEmailKey, claims.Email)
		ctx.Next()
	}
}
