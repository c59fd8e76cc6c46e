package helper

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"shkola_backend/internals/configs"
)

// Срок жизни токена фиксированный, как в мобильном/веб-клиенте
const TokenTTL = 24 * time.Hour

// SignPrincipalToken выпускает HS256-токен ровно с одним identity-claim
// (adminId / teacherId / studentId) и exp.
func SignPrincipalToken(claimKey string, id uint) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		claimKey: id,
		"iat":    now.Unix(),
		"exp":    now.Add(TokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(configs.JWTSecret))
}

// GetBearerToken достаёт raw-токен из Authorization: Bearer <token>.
func GetBearerToken(c *fiber.Ctx) string {
	const p = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):])
	}
	return ""
}

// ParseToken верифицирует подпись и exp, возвращает claims.
func ParseToken(raw string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(configs.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// ClaimUint достаёт числовой claim (jwt отдаёт числа как float64).
func ClaimUint(claims jwt.MapClaims, key string) (uint, bool) {
	v, ok := claims[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		if n < 0 {
			return 0, false
		}
		return uint(n), true
	case int:
		if n < 0 {
			return 0, false
		}
		return uint(n), true
	}
	return 0, false
}
