package handlers

import (
    "database/sql"
    "strings"

    "github.com/gofiber/fiber/v2"

    "sport-club-api/internal/models"
)

// AdminCoaches — список тренеров; названия их групп агрегируются в БД
// строкой и разбираются в массив на границе сканирования.
func (h *Handler) AdminCoaches(c *fiber.Ctx) error {
    ctx, cancel := withDBTimeout()
    defer cancel()

    rows, err := h.db.QueryContext(ctx, `
        SELECT
            ch.id,
            ch.name,
            ch.phone_number,
            ch.date_of_birth,
            ch.qualify,
            ks.name,
            STRING_AGG(gr.name, ', ')
        FROM public.couches ch
        JOIN public.kinds_of_sport ks ON ch.kind_of_sport_id = ks.id
        LEFT JOIN public."groups" gr ON gr.couch_id = ch.id
        GROUP BY
            ch.id, ch.name, ch.phone_number, ch.date_of_birth, ch.qualify, ks.name
        ORDER BY ch.id
    `)
    if err != nil {
        return internalError(c, err)
    }
    defer rows.Close()

    coaches := []models.AdminCoach{}
    for rows.Next() {
        var (
            coach      models.AdminCoach
            groupNames sql.NullString
        )
        if err := rows.Scan(
            &coach.ID,
            &coach.Name,
            &coach.PhoneNumber,
            &coach.DateOfBirth,
            &coach.Qualify,
            &coach.SportName,
            &groupNames,
        ); err != nil {
            return internalError(c, err)
        }
        coach.GroupNames = []string{}
        if groupNames.Valid && groupNames.String != "" {
            coach.GroupNames = strings.Split(groupNames.String, ", ")
        }
        coaches = append(coaches, coach)
    }
    if err := rows.Err(); err != nil {
        return internalError(c, err)
    }

    return c.JSON(fiber.Map{"coaches": coaches})
}

// AdminCoachAddData — справочники для формы добавления тренера:
// виды спорта и квалификации (разряды из таблицы зарплат).
func (h *Handler) AdminCoachAddData(c *fiber.Ctx) error {
    ctx, cancel := withDBTimeout()
    defer cancel()

    sports := []models.SelectItem{}
    rows, err := h.db.QueryContext(ctx, `SELECT id, name FROM public.kinds_of_sport`)
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

    qualify := []models.SelectItem{}
    rows, err = h.db.QueryContext(ctx, `SELECT id, rank FROM public.coaches_salary WHERE rank IS NOT NULL`)
    if err != nil {
        return internalError(c, err)
    }
    for rows.Next() {
        var q models.SelectItem
        if err := rows.Scan(&q.ID, &q.Name); err != nil {
            rows.Close()
            return internalError(c, err)
        }
        qualify = append(qualify, q)
    }
    if err := rows.Err(); err != nil {
        rows.Close()
        return internalError(c, err)
    }
    rows.Close()

    return c.JSON(fiber.Map{
        "sports":  sports,
        "qualify": qualify,
    })
}

// AdminCreateCoach — новый тренер; разряд и зарплатная ставка берутся из
// coaches_salary по qualifyId.
func (h *Handler) AdminCreateCoach(c *fiber.Ctx) error {
    type coachForm struct {
        Name        string `json:"name"`
        PhoneNumber string `json:"phoneNumber"`
        DateOfBirth string `json:"dateOfBirth"`
        QualifyID   int    `json:"qualifyId"`
        SportID     int    `json:"sportId"`
        Password    string `json:"password"`
    }

    var form coachForm
    if err := c.BodyParser(&form); err != nil {
        return jsonError(c, fiber.StatusBadRequest, "Все поля обязательны: name, phoneNumber, dateOfBirth, qualifyId, sportId, password", err)
    }
    if form.Name == "" || form.PhoneNumber == "" || form.DateOfBirth == "" ||
        form.QualifyID == 0 || form.SportID == 0 || form.Password == "" {
        return jsonError(c, fiber.StatusBadRequest, "Все поля обязательны: name, phoneNumber, dateOfBirth, qualifyId, sportId, password", nil)
    }

    ctx, cancel := withDBTimeout()
    defer cancel()

    _, err := h.db.ExecContext(ctx, `
        INSERT INTO public.couches (
            name,
            phone_number,
            date_of_birth,
            kind_of_sport_id,
            password,
            salary_id,
            qualify
        )
        SELECT
            $1,
            $2,
            $3::timestamp,
            $4,
            $5,
            cs.id,
            cs.rank
        FROM public.coaches_salary cs
        WHERE cs.id = $6
    `, form.Name, form.PhoneNumber, form.DateOfBirth, form.SportID, form.Password, form.QualifyID)
    if err != nil {
        return internalError(c, err)
    }

    return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Тренер добавлен"})
}
