package handlers

import (
    "errors"
    "net/http"
    "regexp"
    "testing"

    "github.com/DATA-DOG/go-sqlmock"

    "sport-club-api/internal/models"
    "sport-club-api/internal/permissions"
)

func TestAdminDeleteUser(t *testing.T) {
    app, h, mock := newTestApp(t)
    app.Delete("/admin/user", h.AdminDeleteUser)

    mock.ExpectBegin()
    mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM public.clients_groups WHERE client_id = $1`)).
        WithArgs(7).WillReturnResult(sqlmock.NewResult(0, 2))
    mock.ExpectExec(regexp.QuoteMeta(`UPDATE public.payments SET client_id = NULL WHERE client_id = $1`)).
        WithArgs(7).WillReturnResult(sqlmock.NewResult(0, 1))
    mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM public.feedbacks WHERE client_id = $1`)).
        WithArgs(7).WillReturnResult(sqlmock.NewResult(0, 3))
    mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM public.clients WHERE id = $1`)).
        WithArgs(7).WillReturnResult(sqlmock.NewResult(0, 1))
    mock.ExpectCommit()

    resp, err := app.Test(jsonRequest(t, http.MethodDelete, "/admin/user", map[string]int{"id": 7}))
    if err != nil {
        t.Fatalf("app.Test: %v", err)
    }
    if resp.StatusCode != http.StatusOK {
        t.Fatalf("status = %d, want 200", resp.StatusCode)
    }
    checkExpectations(t, mock)
}

// Клиента нет: все четыре шага откатываются, в ответе 404.
func TestAdminDeleteUserNotFound(t *testing.T) {
    app, h, mock := newTestApp(t)
    app.Delete("/admin/user", h.AdminDeleteUser)

    mock.ExpectBegin()
    mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM public.clients_groups WHERE client_id = $1`)).
        WithArgs(99).WillReturnResult(sqlmock.NewResult(0, 0))
    mock.ExpectExec(regexp.QuoteMeta(`UPDATE public.payments SET client_id = NULL WHERE client_id = $1`)).
        WithArgs(99).WillReturnResult(sqlmock.NewResult(0, 0))
    mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM public.feedbacks WHERE client_id = $1`)).
        WithArgs(99).WillReturnResult(sqlmock.NewResult(0, 0))
    mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM public.clients WHERE id = $1`)).
        WithArgs(99).WillReturnResult(sqlmock.NewResult(0, 0))
    mock.ExpectRollback()

    resp, err := app.Test(jsonRequest(t, http.MethodDelete, "/admin/user", map[string]int{"id": 99}))
    if err != nil {
        t.Fatalf("app.Test: %v", err)
    }
    if resp.StatusCode != http.StatusNotFound {
        t.Fatalf("status = %d, want 404", resp.StatusCode)
    }
    checkExpectations(t, mock)
}

// Сбой на втором шаге: транзакция откатывается целиком, наружу 500.
func TestAdminDeleteUserRollbackMidway(t *testing.T) {
    app, h, mock := newTestApp(t)
    app.Delete("/admin/user", h.AdminDeleteUser)

    mock.ExpectBegin()
    mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM public.clients_groups WHERE client_id = $1`)).
        WithArgs(7).WillReturnResult(sqlmock.NewResult(0, 2))
    mock.ExpectExec(regexp.QuoteMeta(`UPDATE public.payments SET client_id = NULL WHERE client_id = $1`)).
        WithArgs(7).WillReturnError(errors.New("connection reset"))
    mock.ExpectRollback()

    resp, err := app.Test(jsonRequest(t, http.MethodDelete, "/admin/user", map[string]int{"id": 7}))
    if err != nil {
        t.Fatalf("app.Test: %v", err)
    }
    if resp.StatusCode != http.StatusInternalServerError {
        t.Fatalf("status = %d, want 500", resp.StatusCode)
    }
    var body map[string]any
    decodeBody(t, resp, &body)
    if body["error"] != "Internal server error" {
        t.Errorf("error = %v, want generic message", body["error"])
    }
    checkExpectations(t, mock)
}

// Запрос с чужой ролью получает 403 и не порождает ни одного запроса
// к БД.
func TestAdminEndpointsRejectForeignRole(t *testing.T) {
    app, h, mock := newTestApp(t)
    admin := app.Group("/admin", permissions.Require(permissions.AdminEndpoint))
    admin.Get("/users", h.AdminUsers)
    admin.Delete("/user", h.AdminDeleteUser)

    for _, target := range []struct {
        method, path string
    }{
        {http.MethodGet, "/admin/users"},
        {http.MethodDelete, "/admin/user"},
    } {
        req := withToken(jsonRequest(t, target.method, target.path, map[string]int{"id": 1}), makeToken(t, 7, permissions.User))
        resp, err := app.Test(req)
        if err != nil {
            t.Fatalf("app.Test: %v", err)
        }
        if resp.StatusCode != http.StatusForbidden {
            t.Errorf("%s %s: status = %d, want 403", target.method, target.path, resp.StatusCode)
        }
    }
    // ни одно ожидание не задано: любой запрос к БД провалил бы тест
    checkExpectations(t, mock)
}

func TestAdminCoachesSplitsGroupNames(t *testing.T) {
    app, h, mock := newTestApp(t)
    app.Get("/admin/coaches", h.AdminCoaches)

    mock.ExpectQuery(`STRING_AGG`).
        WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone_number", "date_of_birth", "qualify", "sport_name", "group_names"}).
            AddRow(1, "Сидоров А.А.", "+79990001122", parseDate(t, "1985-06-01"), "Мастер спорта", "Плавание", "Юниоры, Взрослые").
            AddRow(2, "Кузнецова Е.В.", "+79990002233", parseDate(t, "1990-02-15"), "КМС", "Бокс", nil))

    resp, err := app.Test(jsonRequest(t, http.MethodGet, "/admin/coaches", nil))
    if err != nil {
        t.Fatalf("app.Test: %v", err)
    }
    var body struct {
        Coaches []models.AdminCoach `json:"coaches"`
    }
    decodeBody(t, resp, &body)
    if len(body.Coaches) != 2 {
        t.Fatalf("coaches = %d, want 2", len(body.Coaches))
    }
    if got := body.Coaches[0].GroupNames; len(got) != 2 || got[0] != "Юниоры" || got[1] != "Взрослые" {
        t.Errorf("groupNames = %v", got)
    }
    if got := body.Coaches[1].GroupNames; len(got) != 0 {
        t.Errorf("groupNames for coach without groups = %v, want empty", got)
    }
    checkExpectations(t, mock)
}

func TestAdminGroupsDecodesClients(t *testing.T) {
    app, h, mock := newTestApp(t)
    app.Get("/admin/groups", h.AdminGroups)

    mock.ExpectQuery(`FROM groups g`).
        WillReturnRows(sqlmock.NewRows([]string{"id", "group_title", "kind_of_sport", "coach_name", "max_clients", "clients_count", "clients"}).
            AddRow(4, "Юниоры", "Плавание", "Сидоров А.А.", 12, 2, []byte(`["Иван Петров","Мария Иванова"]`)).
            AddRow(5, "Новички", nil, nil, 8, 0, []byte(`[]`)))

    resp, err := app.Test(jsonRequest(t, http.MethodGet, "/admin/groups", nil))
    if err != nil {
        t.Fatalf("app.Test: %v", err)
    }
    var groups []models.AdminGroup
    decodeBody(t, resp, &groups)
    if len(groups) != 2 {
        t.Fatalf("groups = %d, want 2", len(groups))
    }
    if len(groups[0].Clients) != 2 || groups[0].Clients[0] != "Иван Петров" {
        t.Errorf("clients = %v", groups[0].Clients)
    }
    if groups[1].KindOfSport != nil || groups[1].CoachName != nil {
        t.Errorf("nullable fields should stay null: %+v", groups[1])
    }
    if len(groups[1].Clients) != 0 {
        t.Errorf("empty group clients = %v", groups[1].Clients)
    }
    checkExpectations(t, mock)
}

// Обрыв чтения посреди выборки не должен давать 200 с усечённым списком.
func TestAdminCoachAddDataIterationError(t *testing.T) {
    app, h, mock := newTestApp(t)
    app.Get("/admin/coachAddData", h.AdminCoachAddData)

    mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name FROM public.kinds_of_sport`)).
        WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
            AddRow(1, "Плавание").
            AddRow(2, "Бокс").
            RowError(1, errors.New("connection reset")))

    resp, err := app.Test(jsonRequest(t, http.MethodGet, "/admin/coachAddData", nil))
    if err != nil {
        t.Fatalf("app.Test: %v", err)
    }
    if resp.StatusCode != http.StatusInternalServerError {
        t.Fatalf("status = %d, want 500", resp.StatusCode)
    }
    checkExpectations(t, mock)
}

func TestAdminScheduleAddDataIterationError(t *testing.T) {
    app, h, mock := newTestApp(t)
    app.Get("/admin/scheduleAddData", h.AdminScheduleAddData)

    mock.ExpectQuery(regexp.QuoteMeta(`SELECT ks.id, ks.name FROM public.kinds_of_sport ks ORDER BY ks.id`)).
        WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
            AddRow(1, "Плавание").
            RowError(0, errors.New("connection reset")))

    resp, err := app.Test(jsonRequest(t, http.MethodGet, "/admin/scheduleAddData", nil))
    if err != nil {
        t.Fatalf("app.Test: %v", err)
    }
    if resp.StatusCode != http.StatusInternalServerError {
        t.Fatalf("status = %d, want 500", resp.StatusCode)
    }
    checkExpectations(t, mock)
}

func TestAdminGroupAddDataIterationError(t *testing.T) {
    app, h, mock := newTestApp(t)
    app.Get("/admin/groupAddData", h.AdminGroupAddData)

    mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, kind_of_sport_id FROM public.couches ORDER BY id`)).
        WillReturnRows(sqlmock.NewRows([]string{"id", "name", "kind_of_sport_id"}).
            AddRow(1, "Сидоров А.А.", 2).
            RowError(0, errors.New("connection reset")))

    resp, err := app.Test(jsonRequest(t, http.MethodGet, "/admin/groupAddData", nil))
    if err != nil {
        t.Fatalf("app.Test: %v", err)
    }
    if resp.StatusCode != http.StatusInternalServerError {
        t.Fatalf("status = %d, want 500", resp.StatusCode)
    }
    checkExpectations(t, mock)
}

func TestAdminUsersAggregates(t *testing.T) {
    app, h, mock := newTestApp(t)
    app.Get("/admin/users", h.AdminUsers)

    mock.ExpectQuery(`FROM public\.clients c`).
        WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone_number", "date_of_birth", "size", "groups", "abonements"}).
            AddRow(7, "Иван Петров", "+79990001122", "2010-04-01", "M",
                []byte(`["Юниоры"]`), []byte(`["Плавание детский - оплачен","Бокс - не оплачен"]`)))

    resp, err := app.Test(jsonRequest(t, http.MethodGet, "/admin/users", nil))
    if err != nil {
        t.Fatalf("app.Test: %v", err)
    }
    var body struct {
        Users []models.AdminUser `json:"users"`
    }
    decodeBody(t, resp, &body)
    if len(body.Users) != 1 {
        t.Fatalf("users = %d, want 1", len(body.Users))
    }
    u := body.Users[0]
    if u.DateOfBirth != "2010-04-01" || len(u.Groups) != 1 || len(u.Abonements) != 2 {
        t.Errorf("user = %+v", u)
    }
    if u.Abonements[0] != "Плавание детский - оплачен" {
        t.Errorf("abonements = %v", u.Abonements)
    }
    checkExpectations(t, mock)
}
