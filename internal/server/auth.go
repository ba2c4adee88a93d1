package server

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/teepha/More-Recipes/internal/middleware"
	"github.com/teepha/More-Recipes/internal/models"
)

const (
	tokenIssuer   = "more-recipes-api"
	tokenAudience = "more-recipes-client"
)

// tokenTTL is how long issued tokens stay valid.
func (s *Server) tokenTTL() time.Duration {
	if s.config.JWTTTLHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(s.config.JWTTTLHours) * time.Hour
}

// generateToken creates a JWT token for the given user ID and username
func (s *Server) generateToken(userID uint, username string) (string, error) {
	if s.config.JWTSecret == "" {
		return "", errors.New("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      strconv.FormatUint(uint64(userID), 10),
		"username": username,
		"iss":      tokenIssuer,
		"aud":      tokenAudience,
		"exp":      now.Add(s.tokenTTL()).Unix(),
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
		"jti":      uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// AuthRequired returns the authentication middleware. It accepts a Bearer
// token, checks signature, issuer, audience and expiry, and rejects revoked
// tokens.
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := bearerToken(c.Get(fiber.HeaderAuthorization))
		if tokenString == "" {
			return respondError(c, models.NewUnauthorizedError("Authorization required"))
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
			return []byte(s.config.JWTSecret), nil
		},
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(tokenIssuer),
			jwt.WithAudience(tokenAudience),
			jwt.WithExpirationRequired(),
		)
		if err != nil || !token.Valid {
			return respondError(c, models.NewUnauthorizedError("Invalid or expired token"))
		}

		sub, err := claims.GetSubject()
		if err != nil {
			return respondError(c, models.NewUnauthorizedError("Invalid subject claim"))
		}
		userID, err := strconv.ParseUint(sub, 10, 32)
		if err != nil || userID == 0 {
			return respondError(c, models.NewUnauthorizedError("Invalid user ID in token"))
		}

		jti, _ := claims["jti"].(string)
		revoked, err := s.revocations.IsRevoked(c.UserContext(), jti)
		if err != nil {
			middleware.Logger.WarnContext(c.UserContext(), "token revocation check failed",
				slog.String("error", err.Error()))
		}
		if revoked {
			return respondError(c, models.NewUnauthorizedError("Token has been revoked"))
		}

		c.Locals(localUserID, uint(userID))
		c.Locals(localTokenID, jti)
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			c.Locals(localTokenExpiry, exp.Time)
		}
		// Sync to UserContext for logging and downstream services
		ctx := context.WithValue(c.UserContext(), middleware.UserIDKey, uint(userID))
		c.SetUserContext(ctx)

		return c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
