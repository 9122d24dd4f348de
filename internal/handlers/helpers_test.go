package handlers

import (
    "bytes"
    "encoding/json"
    "io"
    "net/http"
    "net/http/httptest"
    "testing"
    "time"

    "github.com/DATA-DOG/go-sqlmock"
    "github.com/gofiber/fiber/v2"
    "github.com/golang-jwt/jwt/v4"

    "sport-club-api/internal/permissions"
    "sport-club-api/internal/token"
)

// newTestApp поднимает приложение с замоканным пулом. Маршруты —
// боевые, из setupRoutes-подобной таблицы каждого теста.
func newTestApp(t *testing.T) (*fiber.App, *Handler, sqlmock.Sqlmock) {
    t.Helper()
    db, mock, err := sqlmock.New()
    if err != nil {
        t.Fatalf("sqlmock: %v", err)
    }
    t.Cleanup(func() { db.Close() })
    return fiber.New(), New(db), mock
}

// makeToken собирает подписанный произвольным ключом JWT: сервис подпись
// не проверяет, достаточно корректной структуры.
func makeToken(t *testing.T, id int, role permissions.Role) string {
    t.Helper()
    claims := &token.Claims{ID: id, Role: int(role)}
    signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("irrelevant"))
    if err != nil {
        t.Fatalf("sign token: %v", err)
    }
    return signed
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
    t.Helper()
    var reader io.Reader
    if body != nil {
        raw, err := json.Marshal(body)
        if err != nil {
            t.Fatalf("marshal body: %v", err)
        }
        reader = bytes.NewReader(raw)
    }
    req := httptest.NewRequest(method, target, reader)
    if body != nil {
        req.Header.Set("Content-Type", "application/json")
    }
    return req
}

func withToken(req *http.Request, tok string) *http.Request {
    req.AddCookie(&http.Cookie{Name: "access-token", Value: tok})
    return req
}

func decodeBody(t *testing.T, resp *http.Response, dst any) {
    t.Helper()
    defer resp.Body.Close()
    if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
        t.Fatalf("decode response: %v", err)
    }
}

func parseDate(t *testing.T, value string) time.Time {
    t.Helper()
    parsed, err := time.Parse("2006-01-02", value)
    if err != nil {
        t.Fatalf("parse date %q: %v", value, err)
    }
    return parsed
}

func checkExpectations(t *testing.T, mock sqlmock.Sqlmock) {
    t.Helper()
    if err := mock.ExpectationsWereMet(); err != nil {
        t.Errorf("unmet db expectations: %v", err)
    }
}
