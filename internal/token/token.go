package token

import (
    "github.com/gofiber/fiber/v2"
    "github.com/golang-jwt/jwt/v4"
)

const cookieName = "access-token"

// Claims — полезная нагрузка access-токена.
type Claims struct {
    jwt.RegisteredClaims
    ID   int `json:"id"`
    Role int `json:"role"`
}

// FromRequest достаёт токен из cookie и декодирует его без проверки
// подписи. При отсутствии cookie или некорректном токене возвращает
// nil — вызывающий обязан трактовать nil как «не аутентифицирован».
func FromRequest(c *fiber.Ctx) *Claims {
    raw := c.Cookies(cookieName)
    if raw == "" {
        return nil
    }
    claims := &Claims{}
    if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
        return nil
    }
    return claims
}
