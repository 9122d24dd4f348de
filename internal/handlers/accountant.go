package handlers

import (
    "math"
    "time"

    "github.com/gofiber/fiber/v2"

    "sport-club-api/internal/reports"
)

// grossRate — фиксированная надбавка налогов и взносов при пересчёте
// выплаты «на руки» в ГРОСС.
const grossRate = 1.149425

var paymentsColumns = []reports.Column{
    {Header: "Дата платежа", Width: 20},
    {Header: "Клиент", Width: 20},
    {Header: "Номер телефона клиента", Width: 20},
    {Header: "Название абонемента", Width: 20},
    {Header: "Тип абонемента", Width: 20},
    {Header: "Сумма платежа", Width: 15},
}

var salaryColumns = []reports.Column{
    {Header: "Тренер", Width: 20},
    {Header: "Квалификация", Width: 20},
    {Header: "Стоимость одного занятия", Width: 20},
    {Header: "Количество занятий за выбранный период", Width: 25},
    {Header: "К выплате на руки", Width: 20},
    {Header: "К выплате в ГРОСС", Width: 20},
}

// PaymentsReport — отчёт по платежам за период в виде xlsx в base64.
func (h *Handler) PaymentsReport(c *fiber.Ctx) error {
    startDate := c.Query("startDate")
    endDate := c.Query("endDate")
    if startDate == "" || endDate == "" {
        return jsonError(c, fiber.StatusBadRequest, "startDate and endDate are required", nil)
    }

    ctx, cancel := withDBTimeout()
    defer cancel()

    rows, err := h.db.QueryContext(ctx, `
        SELECT
            p.date,
            c.name,
            c.phone_number,
            a.name,
            at.name,
            at.cost
        FROM public.payments p
        JOIN public.clients c ON p.client_id = c.id
        JOIN public.abonements a ON p.abonement_id = a.id
        JOIN public.abonement_types at ON a.type_id = at.id
        WHERE p.date BETWEEN $1 AND $2
        ORDER BY p.date DESC
    `, startDate, endDate)
    if err != nil {
        return internalError(c, err)
    }
    defer rows.Close()

    var records [][]any
    for rows.Next() {
        var (
            date                               time.Time
            client, phone, abonement, abonType string
            cost                               float64
        )
        if err := rows.Scan(&date, &client, &phone, &abonement, &abonType, &cost); err != nil {
            return internalError(c, err)
        }
        records = append(records, []any{date, client, phone, abonement, abonType, cost})
    }
    if err := rows.Err(); err != nil {
        return internalError(c, err)
    }

    fileData, err := reports.Render("Платежи", paymentsColumns, records)
    if err != nil {
        return internalError(c, err)
    }

    return c.JSON(fiber.Map{
        "fileName": reports.PaymentsFileName(startDate, endDate),
        "fileData": fileData,
    })
}

// SalaryReport — отчёт по тренерским зарплатам за период: количество
// проведённых занятий × ставка за занятие, плюс пересчёт в ГРОСС.
func (h *Handler) SalaryReport(c *fiber.Ctx) error {
    startDate := c.Query("startDate")
    endDate := c.Query("endDate")
    if startDate == "" || endDate == "" {
        return jsonError(c, fiber.StatusBadRequest, "startDate and endDate are required", nil)
    }

    ctx, cancel := withDBTimeout()
    defer cancel()

    rows, err := h.db.QueryContext(ctx, `
        SELECT
            c.name,
            cs.rank,
            cs.class_cost,
            COUNT(cl.id)
        FROM public.classes cl
        JOIN public."groups" g ON cl.group_id = g.id
        JOIN public.couches c ON g.couch_id = c.id
        JOIN public.coaches_salary cs ON c.salary_id = cs.id
            AND cl.date_time BETWEEN $1 AND $2
        GROUP BY c.id, c.name, cs.rank, cs.class_cost
        ORDER BY COUNT(cl.id) * cs.class_cost DESC
    `, startDate, endDate)
    if err != nil {
        return internalError(c, err)
    }
    defer rows.Close()

    var records [][]any
    for rows.Next() {
        var (
            name, rank string
            classCost  float64
            classes    int
        )
        if err := rows.Scan(&name, &rank, &classCost, &classes); err != nil {
            return internalError(c, err)
        }
        net := netPay(classes, classCost)
        records = append(records, []any{name, rank, classCost, classes, net, grossPay(net)})
    }
    if err := rows.Err(); err != nil {
        return internalError(c, err)
    }

    fileData, err := reports.Render("Зарплаты", salaryColumns, records)
    if err != nil {
        return internalError(c, err)
    }

    return c.JSON(fiber.Map{
        "fileName": reports.SalaryFileName(startDate, endDate),
        "fileData": fileData,
    })
}

// netPay — выплата «на руки»: занятия за период × ставка.
func netPay(classes int, classCost float64) float64 {
    return float64(classes) * classCost
}

// grossPay — выплата в ГРОСС, округлённая до копеек.
func grossPay(net float64) float64 {
    return math.Round(net*grossRate*100) / 100
}
