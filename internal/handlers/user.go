package handlers

import (
    "database/sql"

    "github.com/gofiber/fiber/v2"

    "sport-club-api/internal/models"
    "sport-club-api/internal/permissions"
)

// UserArticles — промо-статьи для витрины пользователя.
func (h *Handler) UserArticles(c *fiber.Ctx) error {
    return h.ListArticles(c)
}

// UserSports — список видов спорта.
func (h *Handler) UserSports(c *fiber.Ctx) error {
    ctx, cancel := withDBTimeout()
    defer cancel()

    rows, err := h.db.QueryContext(ctx, `SELECT id, name, image FROM kinds_of_sport`)
    if err != nil {
        return internalError(c, err)
    }
    defer rows.Close()

    sports := []models.Sport{}
    for rows.Next() {
        var s models.Sport
        if err := rows.Scan(&s.ID, &s.Name, &s.Image); err != nil {
            return internalError(c, err)
        }
        sports = append(sports, s)
    }
    if err := rows.Err(); err != nil {
        return internalError(c, err)
    }

    return c.JSON(fiber.Map{"sports": sports})
}

// UserSections — группы выбранного вида спорта, куда клиент может
// записаться: его возраст (полных лет от даты рождения) попадает в
// [min_age, max_age] и в группе остались места
// (clients_count − записанные > 0).
func (h *Handler) UserSections(c *fiber.Ctx) error {
    claims := permissions.ClaimsFromCtx(c)
    sportID := c.Query("sportId")
    if sportID == "" || claims == nil || claims.ID == 0 {
        return jsonError(c, fiber.StatusBadRequest, "sportId и clientId обязательны", nil)
    }
    clientID := claims.ID

    ctx, cancel := withDBTimeout()
    defer cancel()

    rows, err := h.db.QueryContext(ctx, `
        SELECT
            g.id,
            g.name,
            c.name,
            c.qualify,
            g.min_age,
            g.max_age,
            g.clients_count - COUNT(cg.id)
        FROM groups g
        JOIN kinds_of_sport kos ON kos.id = g.kind_of_sport_id
        JOIN couches c ON g.couch_id = c.id
        LEFT JOIN clients_groups cg ON g.id = cg.group_id
        JOIN (
            SELECT
                id,
                EXTRACT(YEAR FROM AGE(current_date, date_of_birth)) AS age
            FROM clients
            WHERE id = $2
        ) cl ON cl.age BETWEEN g.min_age AND g.max_age
        WHERE g.kind_of_sport_id = $1
        GROUP BY g.id, kos.name, c.name, c.qualify, g.name, g.min_age, g.max_age, g.clients_count
        HAVING g.clients_count - COUNT(cg.id) > 0
    `, sportID, clientID)
    if err != nil {
        return internalError(c, err)
    }
    defer rows.Close()

    groups := []models.SectionGroup{}
    for rows.Next() {
        var g models.SectionGroup
        if err := rows.Scan(&g.ID, &g.Name, &g.CoachName, &g.CoachQualify, &g.MinAge, &g.MaxAge, &g.SpotsLeft); err != nil {
            return internalError(c, err)
        }
        groups = append(groups, g)
    }
    if err := rows.Err(); err != nil {
        return internalError(c, err)
    }

    return c.JSON(fiber.Map{"groups": groups})
}

// EnrollSection — запись клиента в группу. Проверки вместимости на
// вставке нет: свободные места фильтрует только выдача UserSections.
func (h *Handler) EnrollSection(c *fiber.Ctx) error {
    type enrollForm struct {
        GroupID int `json:"groupId"`
    }

    claims := permissions.ClaimsFromCtx(c)
    var form enrollForm
    if err := c.BodyParser(&form); err != nil {
        return jsonError(c, fiber.StatusBadRequest, "groupId и clientId обязательны", err)
    }
    if form.GroupID == 0 || claims == nil || claims.ID == 0 {
        return jsonError(c, fiber.StatusBadRequest, "groupId и clientId обязательны", nil)
    }

    ctx, cancel := withDBTimeout()
    defer cancel()

    _, err := h.db.ExecContext(ctx,
        `INSERT INTO clients_groups (client_id, group_id) VALUES ($1, $2)`,
        claims.ID, form.GroupID)
    if err != nil {
        return internalError(c, err)
    }

    return c.JSON(fiber.Map{
        "message": "Вы записались в новую секцию. Информация о расписании секции появилась у вас в календаре. При первом посещении необходимо оплатить абонемент.",
    })
}

// UserSchedule — расписание занятий групп, в которые записан клиент.
func (h *Handler) UserSchedule(c *fiber.Ctx) error {
    claims := permissions.ClaimsFromCtx(c)
    if claims == nil || claims.ID == 0 {
        return jsonError(c, fiber.StatusBadRequest, "clientId обязателен", nil)
    }

    ctx, cancel := withDBTimeout()
    defer cancel()

    rows, err := h.db.QueryContext(ctx, `
        SELECT
            g.kind_of_sport_id,
            kos.name,
            cl.place_id,
            p.name,
            cl.date_time,
            cl.group_id,
            g.name,
            cl.duration
        FROM classes cl
        JOIN place p ON cl.place_id = p.id
        JOIN groups g ON cl.group_id = g.id
        JOIN kinds_of_sport kos ON g.kind_of_sport_id = kos.id
        JOIN clients_groups cg ON cg.group_id = g.id
        WHERE cg.client_id = $1
            AND cl.group_id IS NOT NULL
        ORDER BY cl.date_time
    `, claims.ID)
    if err != nil {
        return internalError(c, err)
    }
    defer rows.Close()

    classes := []models.ScheduleClass{}
    for rows.Next() {
        var class models.ScheduleClass
        if err := rows.Scan(
            &class.SportID,
            &class.SportName,
            &class.PlaceID,
            &class.PlaceName,
            &class.Timestamp,
            &class.GroupID,
            &class.GroupName,
            &class.Duration,
        ); err != nil {
            return internalError(c, err)
        }
        classes = append(classes, class)
    }
    if err := rows.Err(); err != nil {
        return internalError(c, err)
    }

    return c.JSON(fiber.Map{"classes": classes})
}

// UserMain — главная страница клиента: его данные и группы.
func (h *Handler) UserMain(c *fiber.Ctx) error {
    claims := permissions.ClaimsFromCtx(c)
    if claims == nil || claims.ID == 0 {
        return jsonError(c, fiber.StatusBadRequest, "id обязателен", nil)
    }

    ctx, cancel := withDBTimeout()
    defer cancel()

    var (
        name, phoneNumber, size string
        dateOfBirth             sql.NullTime
    )
    err := h.db.QueryRowContext(ctx,
        `SELECT name, phone_number, date_of_birth, size FROM clients WHERE id = $1`,
        claims.ID,
    ).Scan(&name, &phoneNumber, &dateOfBirth, &size)
    if err == sql.ErrNoRows {
        return jsonError(c, fiber.StatusNotFound, "Пользователь не найден", nil)
    }
    if err != nil {
        return internalError(c, err)
    }

    rows, err := h.db.QueryContext(ctx, `
        SELECT g.id, g.name, g.min_age, g.max_age, g.kind_of_sport_id, kos.name, g.couch_id, c.name, c.qualify
        FROM groups g
        JOIN clients_groups cg ON cg.group_id = g.id
        JOIN kinds_of_sport kos ON kos.id = g.kind_of_sport_id
        JOIN couches c ON c.id = g.couch_id
        WHERE cg.client_id = $1
    `, claims.ID)
    if err != nil {
        return internalError(c, err)
    }
    defer rows.Close()

    groups := []models.UserGroup{}
    for rows.Next() {
        var g models.UserGroup
        if err := rows.Scan(&g.ID, &g.Name, &g.MinAge, &g.MaxAge, &g.SportID, &g.SportName, &g.CoachID, &g.CoachName, &g.CoachQualify); err != nil {
            return internalError(c, err)
        }
        groups = append(groups, g)
    }
    if err := rows.Err(); err != nil {
        return internalError(c, err)
    }

    var birth any
    if dateOfBirth.Valid {
        birth = dateOfBirth.Time
    }

    return c.JSON(fiber.Map{
        "name":        name,
        "phoneNumber": phoneNumber,
        "dateOfBirth": birth,
        "size":        size,
        "groups":      groups,
    })
}

// UserFeedbacks — только опубликованные отзывы.
func (h *Handler) UserFeedbacks(c *fiber.Ctx) error {
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
            f.rating
        FROM feedbacks f
        JOIN clients c ON f.client_id = c.id
        WHERE f.is_visible = true
    `)
    if err != nil {
        return internalError(c, err)
    }
    defer rows.Close()

    feedbacks := []models.Feedback{}
    for rows.Next() {
        var f models.Feedback
        if err := rows.Scan(&f.ID, &f.Name, &f.ClientID, &f.ClientName, &f.Created, &f.Comment, &f.Rating); err != nil {
            return internalError(c, err)
        }
        feedbacks = append(feedbacks, f)
    }
    if err := rows.Err(); err != nil {
        return internalError(c, err)
    }

    return c.JSON(fiber.Map{"feedbacks": feedbacks})
}
