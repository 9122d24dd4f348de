package permissions

import (
    "github.com/gofiber/fiber/v2"

    "sport-club-api/internal/token"
)

// Role — целочисленный тег роли в токене.
type Role int

const (
    Admin      Role = 1
    User       Role = 2
    Manager    Role = 3
    Accountant Role = 4
    Coach      Role = 5
)

// Фиксированные наборы ролей для групп эндпоинтов.
var (
    UserEndpoint       = []Role{Admin, User}
    AdminEndpoint      = []Role{Admin}
    ManagerEndpoint    = []Role{Admin, Manager}
    AccountantEndpoint = []Role{Admin, Accountant}
    CoachEndpoint      = []Role{Admin, Coach}
)

const claimsKey = "claims"

// Allowed проверяет, входит ли роль из токена в требуемый набор.
func Allowed(permRoles []Role, claims *token.Claims) bool {
    if claims == nil {
        return false
    }
    for _, role := range permRoles {
        if Role(claims.Role) == role {
            return true
        }
    }
    return false
}

// Require — middleware-гейт: при отказе отдаёт 403 и прерывает цепочку,
// до обработчика запрос не доходит. При допуске кладёт claims в Locals,
// чтобы обработчики не декодировали токен повторно.
func Require(permRoles []Role) fiber.Handler {
    return func(c *fiber.Ctx) error {
        claims := token.FromRequest(c)
        if !Allowed(permRoles, claims) {
            return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Недостаточно прав"})
        }
        c.Locals(claimsKey, claims)
        return c.Next()
    }
}

// ClaimsFromCtx возвращает claims, сохранённые гейтом.
func ClaimsFromCtx(c *fiber.Ctx) *token.Claims {
    claims, _ := c.Locals(claimsKey).(*token.Claims)
    return claims
}
