package handlers

import (
    "database/sql"

    "github.com/gofiber/fiber/v2"

    "sport-club-api/internal/models"
)

// AdminSchedule — полное расписание, включая занятия без группы.
func (h *Handler) AdminSchedule(c *fiber.Ctx) error {
    ctx, cancel := withDBTimeout()
    defer cancel()

    rows, err := h.db.QueryContext(ctx, `
        SELECT
            cl.id,
            ch.name,
            ks.id,
            ks.name,
            pl.id,
            pl.name,
            cl.date_time,
            gr.id,
            gr.name,
            cl.duration
        FROM public.classes cl
        JOIN public.place pl ON cl.place_id = pl.id
        LEFT JOIN public."groups" gr ON cl.group_id = gr.id
        LEFT JOIN public.couches ch ON gr.couch_id = ch.id
        LEFT JOIN public.kinds_of_sport ks ON gr.kind_of_sport_id = ks.id
        ORDER BY cl.date_time
    `)
    if err != nil {
        return internalError(c, err)
    }
    defer rows.Close()

    classes := []models.AdminClass{}
    for rows.Next() {
        var (
            class                           models.AdminClass
            coachName, sportName, groupName sql.NullString
            sportID, groupID                sql.NullInt64
        )
        if err := rows.Scan(
            &class.ClassID,
            &coachName,
            &sportID,
            &sportName,
            &class.PlaceID,
            &class.PlaceName,
            &class.Timestamp,
            &groupID,
            &groupName,
            &class.Duration,
        ); err != nil {
            return internalError(c, err)
        }
        if coachName.Valid {
            class.CoachName = &coachName.String
        }
        if sportID.Valid {
            id := int(sportID.Int64)
            class.SportID = &id
        }
        if sportName.Valid {
            class.SportName = &sportName.String
        }
        if groupID.Valid {
            id := int(groupID.Int64)
            class.GroupID = &id
        }
        if groupName.Valid {
            class.GroupName = &groupName.String
        }
        classes = append(classes, class)
    }
    if err := rows.Err(); err != nil {
        return internalError(c, err)
    }

    return c.JSON(fiber.Map{"classes": classes})
}

// AdminDeleteClass — удаление занятия из расписания.
func (h *Handler) AdminDeleteClass(c *fiber.Ctx) error {
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

    result, err := h.db.ExecContext(ctx, `DELETE FROM public.classes WHERE id = $1`, form.ID)
    if err != nil {
        return internalError(c, err)
    }

    rowsAffected, _ := result.RowsAffected()
    if rowsAffected == 0 {
        return jsonError(c, fiber.StatusNotFound, "Занятие не найдено", nil)
    }

    return c.JSON(fiber.Map{"message": "Занятие удалено"})
}

// AdminScheduleAddData — справочники для формы добавления занятия.
func (h *Handler) AdminScheduleAddData(c *fiber.Ctx) error {
    ctx, cancel := withDBTimeout()
    defer cancel()

    sports := []models.SelectItem{}
    rows, err := h.db.QueryContext(ctx, `SELECT ks.id, ks.name FROM public.kinds_of_sport ks ORDER BY ks.id`)
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

    coaches := []models.CoachOption{}
    rows, err = h.db.QueryContext(ctx, `SELECT ch.id, ch.name, ch.kind_of_sport_id FROM public.couches ch ORDER BY ch.id`)
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

    places := []models.SelectItem{}
    rows, err = h.db.QueryContext(ctx, `SELECT pl.id, pl.name FROM public.place pl ORDER BY pl.id`)
    if err != nil {
        return internalError(c, err)
    }
    for rows.Next() {
        var p models.SelectItem
        if err := rows.Scan(&p.ID, &p.Name); err != nil {
            rows.Close()
            return internalError(c, err)
        }
        places = append(places, p)
    }
    if err := rows.Err(); err != nil {
        rows.Close()
        return internalError(c, err)
    }
    rows.Close()

    groups := []models.GroupOption{}
    rows, err = h.db.QueryContext(ctx, `SELECT gr.id, gr.name, gr.couch_id, gr.kind_of_sport_id FROM public."groups" gr ORDER BY gr.id`)
    if err != nil {
        return internalError(c, err)
    }
    for rows.Next() {
        var g models.GroupOption
        if err := rows.Scan(&g.ID, &g.Name, &g.CoachID, &g.SportID); err != nil {
            rows.Close()
            return internalError(c, err)
        }
        groups = append(groups, g)
    }
    if err := rows.Err(); err != nil {
        rows.Close()
        return internalError(c, err)
    }
    rows.Close()

    return c.JSON(fiber.Map{
        "sports":  sports,
        "coaches": coaches,
        "places":  places,
        "groups":  groups,
    })
}

// AdminCreateClass — новое занятие в расписании.
func (h *Handler) AdminCreateClass(c *fiber.Ctx) error {
    type classForm struct {
        PlaceID   int    `json:"placeId"`
        GroupID   int    `json:"groupId"`
        Timestamp string `json:"timestamp"`
        Duration  string `json:"duration"`
    }

    var form classForm
    if err := c.BodyParser(&form); err != nil {
        return jsonError(c, fiber.StatusBadRequest, "Все поля обязательны: placeId, groupId, timestamp, duration", err)
    }
    if form.PlaceID == 0 || form.GroupID == 0 || form.Timestamp == "" || form.Duration == "" {
        return jsonError(c, fiber.StatusBadRequest, "Все поля обязательны: placeId, groupId, timestamp, duration", nil)
    }

    ctx, cancel := withDBTimeout()
    defer cancel()

    _, err := h.db.ExecContext(ctx, `
        INSERT INTO public.classes (place_id, group_id, date_time, duration)
        VALUES ($1, $2, $3, $4)
    `, form.PlaceID, form.GroupID, form.Timestamp, form.Duration)
    if err != nil {
        return internalError(c, err)
    }

    return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Новое занятие добавлено"})
}
