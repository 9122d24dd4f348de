package handlers

import "database/sql"

// Handler держит пул соединений. Пул внедряется снаружи (в тестах его
// заменяет sqlmock).
type Handler struct {
    db *sql.DB
}

func New(db *sql.DB) *Handler {
    return &Handler{db: db}
}
