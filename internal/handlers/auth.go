package handlers

import (
    "database/sql"

    "github.com/gofiber/fiber/v2"
)

// Auth — вход по номеру телефона и паролю. Пароли в таблице clients
// хранятся открытым текстом, сравнение идёт по точному равенству.
func (h *Handler) Auth(c *fiber.Ctx) error {
    type authForm struct {
        Phone    string `json:"phone"`
        Password string `json:"password"`
    }

    var form authForm
    if err := c.BodyParser(&form); err != nil {
        return jsonError(c, fiber.StatusBadRequest, "phone and password required", err)
    }
    if form.Phone == "" || form.Password == "" {
        return jsonError(c, fiber.StatusBadRequest, "phone and password required", nil)
    }

    ctx, cancel := withDBTimeout()
    defer cancel()

    var (
        id   int
        name string
    )
    err := h.db.QueryRowContext(ctx,
        `SELECT id, name FROM clients WHERE phone_number = $1 AND password = $2`,
        form.Phone, form.Password,
    ).Scan(&id, &name)
    if err == sql.ErrNoRows {
        return jsonError(c, fiber.StatusUnauthorized, "Invalid credentials", nil)
    }
    if err != nil {
        return internalError(c, err)
    }

    return c.JSON(fiber.Map{"id": id, "name": name})
}
