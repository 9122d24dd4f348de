package handlers

import (
    "github.com/gofiber/fiber/v2"

    "sport-club-api/internal/models"
)

// ListArticles — все промо-статьи.
func (h *Handler) ListArticles(c *fiber.Ctx) error {
    ctx, cancel := withDBTimeout()
    defer cancel()

    rows, err := h.db.QueryContext(ctx, `SELECT id, name, created, description, image FROM promo`)
    if err != nil {
        return internalError(c, err)
    }
    defer rows.Close()

    articles := []models.Article{}
    for rows.Next() {
        var a models.Article
        if err := rows.Scan(&a.ID, &a.Name, &a.Created, &a.Description, &a.Image); err != nil {
            return internalError(c, err)
        }
        articles = append(articles, a)
    }
    if err := rows.Err(); err != nil {
        return internalError(c, err)
    }

    return c.JSON(fiber.Map{"articles": articles})
}

// CreateArticle — новая промо-статья, все четыре поля обязательны.
func (h *Handler) CreateArticle(c *fiber.Ctx) error {
    type articleForm struct {
        Name        string `json:"name"`
        Created     string `json:"created"`
        Description string `json:"description"`
        Image       string `json:"image"`
    }

    var form articleForm
    if err := c.BodyParser(&form); err != nil {
        return jsonError(c, fiber.StatusBadRequest, "Все поля обязательны: name, created, description, image", err)
    }
    if form.Name == "" || form.Created == "" || form.Description == "" || form.Image == "" {
        return jsonError(c, fiber.StatusBadRequest, "Все поля обязательны: name, created, description, image", nil)
    }

    ctx, cancel := withDBTimeout()
    defer cancel()

    var id int
    err := h.db.QueryRowContext(ctx, `
        INSERT INTO promo ("name", created, description, image)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `, form.Name, form.Created, form.Description, form.Image).Scan(&id)
    if err != nil {
        return internalError(c, err)
    }

    return c.Status(fiber.StatusCreated).JSON(fiber.Map{
        "message": "Статья создана и опубликована!",
        "id":      id,
    })
}

// UpdateArticle — правка промо-статьи по id.
func (h *Handler) UpdateArticle(c *fiber.Ctx) error {
    type articleForm struct {
        ID          int    `json:"id"`
        Name        string `json:"name"`
        Created     string `json:"created"`
        Description string `json:"description"`
        Image       string `json:"image"`
    }

    var form articleForm
    if err := c.BodyParser(&form); err != nil {
        return jsonError(c, fiber.StatusBadRequest, "Все поля обязательны: id, name, created, description, image", err)
    }
    if form.ID == 0 || form.Name == "" || form.Created == "" || form.Description == "" || form.Image == "" {
        return jsonError(c, fiber.StatusBadRequest, "Все поля обязательны: id, name, created, description, image", nil)
    }

    ctx, cancel := withDBTimeout()
    defer cancel()

    result, err := h.db.ExecContext(ctx, `
        UPDATE promo
        SET "name" = $1, created = $2, description = $3, image = $4
        WHERE id = $5
    `, form.Name, form.Created, form.Description, form.Image, form.ID)
    if err != nil {
        return internalError(c, err)
    }

    rowsAffected, _ := result.RowsAffected()
    if rowsAffected == 0 {
        return jsonError(c, fiber.StatusNotFound, "Статья не найдена", nil)
    }

    return c.JSON(fiber.Map{"message": "Статья изменена"})
}

// DeleteArticle — удаление промо-статьи по id.
func (h *Handler) DeleteArticle(c *fiber.Ctx) error {
    type deleteForm struct {
        ID int `json:"id"`
    }

    var form deleteForm
    if err := c.BodyParser(&form); err != nil {
        return jsonError(c, fiber.StatusBadRequest, "id обязателен", err)
    }
    if form.ID == 0 {
        return jsonError(c, fiber.StatusBadRequest, "id обязателен", nil)
    }

    ctx, cancel := withDBTimeout()
    defer cancel()

    result, err := h.db.ExecContext(ctx, `DELETE FROM promo WHERE id = $1`, form.ID)
    if err != nil {
        return internalError(c, err)
    }

    rowsAffected, _ := result.RowsAffected()
    if rowsAffected == 0 {
        return jsonError(c, fiber.StatusNotFound, "Статья не найдена", nil)
    }

    return c.JSON(fiber.Map{"message": "Статья удалена"})
}

// ManagerFeedbacks — все отзывы, включая скрытые, с флагом видимости.
func (h *Handler) ManagerFeedbacks(c *fiber.Ctx) error {
    ctx, cancel := withDBTimeout()
    defer cancel()

    rows, err := h.db.QueryContext(ctx, `
        SELECT
            f.id,
            f.name,
            c.id,
            c.name,
            f.created_at,
            f.comment,
            f.rating,
            f.is_visible
        FROM feedbacks f
        JOIN clients c ON f.client_id = c.id
    `)
    if err != nil {
        return internalError(c, err)
    }
    defer rows.Close()

    feedbacks := []models.Feedback{}
    for rows.Next() {
        var (
            f         models.Feedback
            isVisible bool
        )
        if err := rows.Scan(&f.ID, &f.Name, &f.ClientID, &f.ClientName, &f.Created, &f.Comment, &f.Rating, &isVisible); err != nil {
            return internalError(c, err)
        }
        f.IsVisible = &isVisible
        feedbacks = append(feedbacks, f)
    }
    if err := rows.Err(); err != nil {
        return internalError(c, err)
    }

    return c.JSON(fiber.Map{"feedbacks": feedbacks})
}

// PublishFeedback — сделать отзыв видимым для пользователей.
func (h *Handler) PublishFeedback(c *fiber.Ctx) error {
    type publishForm struct {
        ID int `json:"id"`
    }

    var form publishForm
    if err := c.BodyParser(&form); err != nil {
        return jsonError(c, fiber.StatusBadRequest, "id обязателен", err)
    }
    if form.ID == 0 {
        return jsonError(c, fiber.StatusBadRequest, "id обязателен", nil)
    }

    ctx, cancel := withDBTimeout()
    defer cancel()

    result, err := h.db.ExecContext(ctx, `UPDATE feedbacks SET is_visible = true WHERE id = $1`, form.ID)
    if err != nil {
        return internalError(c, err)
    }

    rowsAffected, _ := result.RowsAffected()
    if rowsAffected == 0 {
        return jsonError(c, fiber.StatusNotFound, "Отзыв не найден", nil)
    }

    return c.JSON(fiber.Map{"message": "Отзыв опубликован"})
}

// DeleteFeedback — удаление отзыва по id.
func (h *Handler) DeleteFeedback(c *fiber.Ctx) error {
    type deleteForm struct {
        ID int `json:"id"`
    }

    var form deleteForm
    if err := c.BodyParser(&form); err != nil {
        return jsonError(c, fiber.StatusBadRequest, "id обязателен", err)
    }
    if form.ID == 0 {
        return jsonError(c, fiber.StatusBadRequest, "id обязателен", nil)
    }

    ctx, cancel := withDBTimeout()
    defer cancel()

    result, err := h.db.ExecContext(ctx, `DELETE FROM feedbacks WHERE id = $1`, form.ID)
    if err != nil {
        return internalError(c, err)
    }

    rowsAffected, _ := result.RowsAffected()
    if rowsAffected == 0 {
        return jsonError(c, fiber.StatusNotFound, "Отзыв не найден", nil)
    }

    return c.JSON(fiber.Map{"message": "Отзыв удален"})
}
