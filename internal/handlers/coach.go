package handlers

import (
    "database/sql"

    "github.com/gofiber/fiber/v2"

    "sport-club-api/internal/models"
    "sport-club-api/internal/permissions"
)

// CoachMain — главная страница тренера: его данные и группы со списками
// записанных клиентов. Вместо пообъектных запросов на каждую группу —
// один JOIN, который сворачивается в вложенную структуру.
func (h *Handler) CoachMain(c *fiber.Ctx) error {
    claims := permissions.ClaimsFromCtx(c)
    if claims == nil || claims.ID == 0 {
        return jsonError(c, fiber.StatusBadRequest, "id is required", nil)
    }
    coachID := claims.ID

    ctx, cancel := withDBTimeout()
    defer cancel()

    var name, qualify, phoneNumber, kindOfSport string
    err := h.db.QueryRowContext(ctx, `
        SELECT c.name, c.qualify, c.phone_number, kos.name
        FROM couches c
        JOIN kinds_of_sport kos ON kos.id = c.kind_of_sport_id
        WHERE c.id = $1
    `, coachID).Scan(&name, &qualify, &phoneNumber, &kindOfSport)
    if err == sql.ErrNoRows {
        return jsonError(c, fiber.StatusNotFound, "Coach not found", nil)
    }
    if err != nil {
        return internalError(c, err)
    }

    rows, err := h.db.QueryContext(ctx, `
        SELECT g.id, g.name, g.min_age, g.max_age, cl.name
        FROM groups g
        LEFT JOIN clients_groups cg ON cg.group_id = g.id
        LEFT JOIN clients cl ON cl.id = cg.client_id
        WHERE g.couch_id = $1
        ORDER BY g.id
    `, coachID)
    if err != nil {
        return internalError(c, err)
    }
    defer rows.Close()

    groups := []*models.CoachGroup{}
    byID := map[int]*models.CoachGroup{}
    for rows.Next() {
        var (
            groupID, minAge, maxAge int
            groupName               string
            clientName              sql.NullString
        )
        if err := rows.Scan(&groupID, &groupName, &minAge, &maxAge, &clientName); err != nil {
            return internalError(c, err)
        }
        group, ok := byID[groupID]
        if !ok {
            group = &models.CoachGroup{
                GroupID:   groupID,
                GroupName: groupName,
                MinAge:    minAge,
                MaxAge:    maxAge,
                Clients:   []string{},
            }
            byID[groupID] = group
            groups = append(groups, group)
        }
        if clientName.Valid {
            group.Clients = append(group.Clients, clientName.String)
        }
    }
    if err := rows.Err(); err != nil {
        return internalError(c, err)
    }

    return c.JSON(fiber.Map{
        "coachName":        name,
        "coachQualify":     qualify,
        "coachPhoneNumber": phoneNumber,
        "kindOfSport":      kindOfSport,
        "groups":           groups,
    })
}

// CoachSchedule — расписание занятий групп тренера.
func (h *Handler) CoachSchedule(c *fiber.Ctx) error {
    claims := permissions.ClaimsFromCtx(c)
    if claims == nil || claims.ID == 0 {
        return jsonError(c, fiber.StatusBadRequest, "id is required", nil)
    }
    coachID := claims.ID

    ctx, cancel := withDBTimeout()
    defer cancel()

    var coachName string
    err := h.db.QueryRowContext(ctx, `SELECT name FROM couches WHERE id = $1`, coachID).Scan(&coachName)
    if err == sql.ErrNoRows {
        return jsonError(c, fiber.StatusNotFound, "Coach not found", nil)
    }
    if err != nil {
        return internalError(c, err)
    }

    rows, err := h.db.QueryContext(ctx, `
        SELECT
            kos.id,
            kos.name,
            p.id,
            p.name,
            cl.date_time,
            g.id,
            g.name,
            cl.duration
        FROM classes cl
        JOIN groups g ON g.id = cl.group_id
        JOIN place p ON p.id = cl.place_id
        JOIN kinds_of_sport kos ON g.kind_of_sport_id = kos.id
        WHERE g.couch_id = $1
    `, coachID)
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

    return c.JSON(fiber.Map{
        "coachName": coachName,
        "classes":   classes,
    })
}
