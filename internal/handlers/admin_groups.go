package handlers

import (
    "database/sql"
    "encoding/json"

    "github.com/gofiber/fiber/v2"

    "sport-club-api/internal/models"
)

// AdminGroups — список групп с заполненностью и именами клиентов.
// Ответ — массив верхнего уровня (так исторически ждёт фронт).
func (h *Handler) AdminGroups(c *fiber.Ctx) error {
    ctx, cancel := withDBTimeout()
    defer cancel()

    rows, err := h.db.QueryContext(ctx, `
        SELECT
            g.id,
            g.name,
            ks.name,
            co.name,
            g.clients_count,
            (
                SELECT COUNT(*)
                FROM clients_groups cg
                WHERE cg.group_id = g.id
            ),
            COALESCE(
                (
                    SELECT json_agg(c.name ORDER BY c.name)
                    FROM clients_groups cg
                    JOIN clients c ON c.id = cg.client_id
                    WHERE cg.group_id = g.id
                ),
                '[]'::json
            )
        FROM groups g
        LEFT JOIN kinds_of_sport ks ON ks.id = g.kind_of_sport_id
        LEFT JOIN couches co ON co.id = g.couch_id
        ORDER BY g.id
    `)
    if err != nil {
        return internalError(c, err)
    }
    defer rows.Close()

    groups := []models.AdminGroup{}
    for rows.Next() {
        var (
            group                  models.AdminGroup
            kindOfSport, coachName sql.NullString
            clientsRaw             []byte
        )
        if err := rows.Scan(
            &group.ID,
            &group.GroupTitle,
            &kindOfSport,
            &coachName,
            &group.MaxClients,
            &group.ClientsCount,
            &clientsRaw,
        ); err != nil {
            return internalError(c, err)
        }
        if kindOfSport.Valid {
            group.KindOfSport = &kindOfSport.String
        }
        if coachName.Valid {
            group.CoachName = &coachName.String
        }
        group.Clients = []string{}
        if err := json.Unmarshal(clientsRaw, &group.Clients); err != nil {
            return internalError(c, err)
        }
        groups = append(groups, group)
    }
    if err := rows.Err(); err != nil {
        return internalError(c, err)
    }

    return c.JSON(groups)
}

// AdminGroupAddData — справочники для формы добавления группы.
func (h *Handler) AdminGroupAddData(c *fiber.Ctx) error {
    ctx, cancel := withDBTimeout()
    defer cancel()

    coaches := []models.CoachOption{}
    rows, err := h.db.QueryContext(ctx, `SELECT id, name, kind_of_sport_id FROM public.couches ORDER BY id`)
    if err != nil {
        return internalError(c, err)
    }
    for rows.Next() {
        var co models.CoachOption
        if err := rows.Scan(&co.ID, &co.Name, &co.SportID); err != nil {
            rows.Close()
            return internalError(c, err)
        }
        coaches = append(coaches, co)
    }
    if err := rows.Err(); err != nil {
        rows.Close()
        return internalError(c, err)
    }
    rows.Close()

    sports := []models.SelectItem{}
    rows, err = h.db.QueryContext(ctx, `SELECT id, name FROM public.kinds_of_sport ORDER BY id`)
    if err != nil {
        return internalError(c, err)
    }
    for rows.Next() {
        var s models.SelectItem
        if err := rows.Scan(&s.ID, &s.Name); err != nil {
            rows.Close()
            return internalError(c, err)
        }
        sports = append(sports, s)
    }
    if err := rows.Err(); err != nil {
        rows.Close()
        return internalError(c, err)
    }
    rows.Close()

    return c.JSON(fiber.Map{
        "coaches": coaches,
        "sports":  sports,
    })
}

// AdminCreateGroup — новая группа.
func (h *Handler) AdminCreateGroup(c *fiber.Ctx) error {
    type groupForm struct {
        CouchID      int    `json:"couchId"`
        SportID      int    `json:"sportId"`
        Name         string `json:"name"`
        MinAge       int    `json:"minAge"`
        MaxAge       int    `json:"maxAge"`
        ClientsCount int    `json:"clientsCount"`
    }

    var form groupForm
    if err := c.BodyParser(&form); err != nil {
        return jsonError(c, fiber.StatusBadRequest, "Все поля обязательны: couchId, sportId, name, minAge, maxAge, clientsCount", err)
    }
    if form.CouchID == 0 || form.SportID == 0 || form.Name == "" ||
        form.MinAge == 0 || form.MaxAge == 0 || form.ClientsCount == 0 {
        return jsonError(c, fiber.StatusBadRequest, "Все поля обязательны: couchId, sportId, name, minAge, maxAge, clientsCount", nil)
    }

    ctx, cancel := withDBTimeout()
    defer cancel()

    _, err := h.db.ExecContext(ctx, `
        INSERT INTO public.groups (
            couch_id,
            kind_of_sport_id,
            name,
            min_age,
            max_age,
            clients_count
        )
        VALUES ($1, $2, $3, $4, $5, $6)
    `, form.CouchID, form.SportID, form.Name, form.MinAge, form.MaxAge, form.ClientsCount)
    if err != nil {
        return internalError(c, err)
    }

    return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Группа добавлена"})
}
