package database

import (
    "database/sql"
    "fmt"
    "time"

    "sport-club-api/internal/config"

    _ "github.com/lib/pq"
)

// Connect открывает пул соединений к PostgreSQL.
// Пул передаётся обработчикам явно, без глобального синглтона,
// чтобы в тестах его можно было подменить моком.
func Connect(cfg *config.Config) (*sql.DB, error) {
    dbConfig := cfg.Database

    connectionStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
        dbConfig.Host,
        dbConfig.Port,
        dbConfig.User,
        dbConfig.Password,
        dbConfig.DBName,
        dbConfig.SSLMode)

    db, err := sql.Open("postgres", connectionStr)
    if err != nil {
        return nil, fmt.Errorf("ошибка подключения к БД: %w", err)
    }

    if err = db.Ping(); err != nil {
        return nil, fmt.Errorf("ошибка ping БД: %w", err)
    }

    db.SetMaxOpenConns(25)
    db.SetMaxIdleConns(25)
    db.SetConnMaxLifetime(5 * time.Minute)

    return db, nil
}
