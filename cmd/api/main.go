package main

import (
    "log"
    "time"

    "sport-club-api/internal/config"
    "sport-club-api/internal/database"
    "sport-club-api/internal/handlers"
    "sport-club-api/internal/permissions"

    "github.com/gofiber/fiber/v2"
    "github.com/gofiber/fiber/v2/middleware/compress"
    "github.com/gofiber/fiber/v2/middleware/helmet"
    "github.com/gofiber/fiber/v2/middleware/limiter"
    "github.com/gofiber/fiber/v2/middleware/logger"
    "github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
    // Загрузка конфигурации
    cfg := config.LoadConfig()

    // Инициализация базы данных
    db, err := database.Connect(cfg)
    if err != nil {
        log.Fatal(err)
    }
    defer db.Close()

    h := handlers.New(db)

    app := fiber.New(fiber.Config{
        AppName: "SportClubAPI",
    })

    // -------------------------------
    // Middleware: безопасность и логика
    // -------------------------------

    app.Use(recover.New())  // Перехватывает паники, возвращает 500 вместо краша
    app.Use(helmet.New())   // Добавляет HTTP security-заголовки
    app.Use(compress.New()) // Сжимает ответы gzip/br
    app.Use(logger.New())   // Логи запросов
    app.Use(limiter.New(limiter.Config{
        Max:        120,         // 120 запросов
        Expiration: time.Minute, // за минуту
        LimitReached: func(c *fiber.Ctx) error {
            return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "Слишком много запросов. Попробуйте позже."})
        },
    }))

    setupRoutes(app, h)

    log.Printf("🚀 Сервер запущен на http://localhost%s", cfg.Server.Port)

    log.Fatal(app.Listen(cfg.Server.Port))
}

// setupRoutes — маршруты приложения. Каждая группа закрыта своим набором
// ролей; запрос без подходящей роли получает 403 и до обработчика не
// доходит.
func setupRoutes(app *fiber.App, h *handlers.Handler) {
    // аутентификация
    app.Post("/auth", h.Auth)

    // бухгалтер: отчёты
    accountant := app.Group("/accountant", permissions.Require(permissions.AccountantEndpoint))
    accountant.Get("/payments", h.PaymentsReport)
    accountant.Get("/salary", h.SalaryReport)

    // тренер
    coach := app.Group("/coach", permissions.Require(permissions.CoachEndpoint))
    coach.Get("/main", h.CoachMain)
    coach.Get("/schedule", h.CoachSchedule)

    // менеджер: статьи и отзывы
    manager := app.Group("/manager", permissions.Require(permissions.ManagerEndpoint))
    manager.Get("/article", h.ListArticles)
    manager.Post("/article", h.CreateArticle)
    manager.Put("/article", h.UpdateArticle)
    manager.Delete("/article", h.DeleteArticle)
    manager.Get("/feedback", h.ManagerFeedbacks)
    manager.Patch("/feedback", h.PublishFeedback)
    manager.Delete("/feedback", h.DeleteFeedback)

    // пользователь
    user := app.Group("/user", permissions.Require(permissions.UserEndpoint))
    user.Get("/article", h.UserArticles)
    user.Get("/sports", h.UserSports)
    user.Get("/sections", h.UserSections)
    user.Post("/sections", h.EnrollSection)
    user.Get("/schedule", h.UserSchedule)
    user.Get("/main", h.UserMain)
    user.Get("/feedback", h.UserFeedbacks)

    // администратор
    admin := app.Group("/admin", permissions.Require(permissions.AdminEndpoint))
    admin.Get("/schedule", h.AdminSchedule)
    admin.Post("/schedule", h.AdminCreateClass)
    admin.Delete("/schedule", h.AdminDeleteClass)
    admin.Get("/scheduleAddData", h.AdminScheduleAddData)
    admin.Get("/coaches", h.AdminCoaches)
    admin.Get("/coachAddData", h.AdminCoachAddData)
    admin.Post("/coach", h.AdminCreateCoach)
    admin.Get("/users", h.AdminUsers)
    admin.Delete("/user", h.AdminDeleteUser)
    admin.Get("/groups", h.AdminGroups)
    admin.Get("/groupAddData", h.AdminGroupAddData)
    admin.Post("/group", h.AdminCreateGroup)
}
