package middleware

import (
	"strings"

	"github.com/ecofinds/marketplace-service/pkg/errs"
	"github.com/ecofinds/marketplace-service/pkg/response"
	"github.com/ecofinds/marketplace-service/pkg/utils"
	"github.com/labstack/echo/v4"
)

const userIDContextKey = "userID"

// Auth gates a route behind a bearer access token and stores the resolved
// user ID on the request context.
func Auth(jwtSecretKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := ExtractBearerToken(c)
			if token == "" {
				return response.WriteErrorResponse(c, errs.ErrUnauthorized, nil)
			}

			userID, err := utils.VerifyJWTToken(token, jwtSecretKey, utils.TokenTypeAccess)
			if err != nil {
				return response.WriteErrorResponse(c, errs.ErrUnauthorized, nil)
			}

			c.Set(userIDContextKey, userID)

			return next(c)
		}
	}
}

func ExtractBearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return parts[1]
}

func ExtractUserID(c echo.Context) int64 {
	userID, _ := c.Get(userIDContextKey).(int64)
	return userID
}
