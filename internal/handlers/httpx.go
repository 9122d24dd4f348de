package handlers

import (
    "log"

    "github.com/gofiber/fiber/v2"
)

// jsonError — единый ответ об ошибке: наружу уходит только публичное
// сообщение, полная ошибка остаётся в логе.
func jsonError(c *fiber.Ctx, status int, publicMsg string, err error) error {
    if err != nil {
        log.Printf("handler error: %v", err)
    }
    if publicMsg == "" {
        publicMsg = fiber.ErrInternalServerError.Message
    }
    return c.Status(status).JSON(fiber.Map{"error": publicMsg})
}

// internalError — сокращение для ответа 500.
func internalError(c *fiber.Ctx, err error) error {
    return jsonError(c, fiber.StatusInternalServerError, "Internal server error", err)
}
