package handlers

import (
    "encoding/json"

    "github.com/gofiber/fiber/v2"

    "sport-club-api/internal/models"
)

// AdminUsers — список клиентов с группами и абонементами. Абонементы
// помечаются «оплачен»/«не оплачен» по наличию платежа. Агрегаты
// приходят из БД как json_agg и декодируются в массивы при сканировании.
func (h *Handler) AdminUsers(c *fiber.Ctx) error {
    ctx, cancel := withDBTimeout()
    defer cancel()

    rows, err := h.db.QueryContext(ctx, `
        SELECT
            c.id,
            c.name,
            c.phone_number,
            TO_CHAR(c.date_of_birth, 'YYYY-MM-DD'),
            c.size,
            COALESCE(
                json_agg(DISTINCT g.name) FILTER (WHERE g.name IS NOT NULL),
                '[]'::json
            ),
            COALESCE(
                json_agg(DISTINCT
                    CASE
                        WHEN p.id IS NOT NULL THEN a.name || ' - оплачен'
                        ELSE a.name || ' - не оплачен'
                    END
                ) FILTER (WHERE a.id IS NOT NULL),
                '[]'::json
            )
        FROM public.clients c
        LEFT JOIN public.clients_groups ctg ON ctg.client_id = c.id
        LEFT JOIN public.groups g ON g.id = ctg.group_id
        LEFT JOIN public.abonements a ON a.kind_of_sport_id IN (
            SELECT g2.kind_of_sport_id
            FROM public.clients_groups ctg2
            JOIN public.groups g2 ON ctg2.group_id = g2.id
            WHERE ctg2.client_id = c.id
        )
        LEFT JOIN public.payments p ON p.client_id = c.id AND p.abonement_id = a.id
        GROUP BY c.id, c.name, c.phone_number, c.date_of_birth, c.size
        ORDER BY c.id
    `)
    if err != nil {
        return internalError(c, err)
    }
    defer rows.Close()

    users := []models.AdminUser{}
    for rows.Next() {
        var (
            user                  models.AdminUser
            groupsRaw, abonemsRaw []byte
        )
        if err := rows.Scan(&user.ID, &user.Name, &user.PhoneNumber, &user.DateOfBirth, &user.Size, &groupsRaw, &abonemsRaw); err != nil {
            return internalError(c, err)
        }
        user.Groups = []string{}
        user.Abonements = []string{}
        if err := json.Unmarshal(groupsRaw, &user.Groups); err != nil {
            return internalError(c, err)
        }
        if err := json.Unmarshal(abonemsRaw, &user.Abonements); err != nil {
            return internalError(c, err)
        }
        users = append(users, user)
    }
    if err := rows.Err(); err != nil {
        return internalError(c, err)
    }

    return c.JSON(fiber.Map{"users": users})
}

// AdminDeleteUser — удаление клиента. Четыре шага в одной транзакции:
// отвязка от групп, обнуление client_id в платежах, удаление отзывов,
// удаление самой записи. Любая ошибка или отсутствие клиента откатывает
// всё целиком.
func (h *Handler) AdminDeleteUser(c *fiber.Ctx) error {
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

    tx, err := h.db.BeginTx(ctx, nil)
    if err != nil {
        return internalError(c, err)
    }
    defer tx.Rollback()

    if _, err := tx.ExecContext(ctx, `DELETE FROM public.clients_groups WHERE client_id = $1`, form.ID); err != nil {
        return internalError(c, err)
    }

    if _, err := tx.ExecContext(ctx, `UPDATE public.payments SET client_id = NULL WHERE client_id = $1`, form.ID); err != nil {
        return internalError(c, err)
    }

    if _, err := tx.ExecContext(ctx, `DELETE FROM public.feedbacks WHERE client_id = $1`, form.ID); err != nil {
        return internalError(c, err)
    }

    result, err := tx.ExecContext(ctx, `DELETE FROM public.clients WHERE id = $1`, form.ID)
    if err != nil {
        return internalError(c, err)
    }

    rowsAffected, _ := result.RowsAffected()
    if rowsAffected == 0 {
        return jsonError(c, fiber.StatusNotFound, "Пользователь не найден", nil)
    }

    if err := tx.Commit(); err != nil {
        return internalError(c, err)
    }

    return c.JSON(fiber.Map{"message": "Пользователь удален"})
}
