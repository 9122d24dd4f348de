package models

import "time"

// SelectItem — элемент справочника для выпадающих списков (id + название).
type SelectItem struct {
    ID   int    `json:"id"`
    Name string `json:"name"`
}

// CoachOption — тренер в справочнике добавления занятия/группы.
type CoachOption struct {
    ID      int    `json:"id"`
    Name    string `json:"name"`
    SportID int    `json:"sportId"`
}

// GroupOption — группа в справочнике добавления занятия.
type GroupOption struct {
    ID      int    `json:"id"`
    Name    string `json:"name"`
    CoachID int    `json:"coachId"`
    SportID int    `json:"sportId"`
}

// Article — промо-статья.
type Article struct {
    ID          int       `json:"id"`
    Name        string    `json:"name"`
    Created     time.Time `json:"created"`
    Description string    `json:"description"`
    Image       string    `json:"image"`
}

// Feedback — отзыв клиента. IsVisible отдаётся только менеджеру.
type Feedback struct {
    ID         int       `json:"id"`
    Name       string    `json:"name"`
    ClientID   int       `json:"clientId"`
    ClientName string    `json:"clientName"`
    Created    time.Time `json:"created"`
    Comment    string    `json:"comment"`
    Rating     int       `json:"rating"`
    IsVisible  *bool     `json:"isVisible,omitempty"`
}

// Sport — вид спорта с картинкой для пользовательской витрины.
type Sport struct {
    ID    int    `json:"id"`
    Name  string `json:"name"`
    Image string `json:"image"`
}

// ScheduleClass — занятие в расписании пользователя или тренера.
type ScheduleClass struct {
    SportID   int       `json:"sportId"`
    SportName string    `json:"sportName"`
    PlaceID   int       `json:"placeId"`
    PlaceName string    `json:"placeName"`
    Timestamp time.Time `json:"timestamp"`
    GroupID   int       `json:"groupId"`
    GroupName string    `json:"groupName"`
    Duration  string    `json:"duration"`
}

// AdminClass — занятие в админском расписании. Группа может отсутствовать
// (нераспределённое занятие), тогда связанные поля null.
type AdminClass struct {
    ClassID   int       `json:"classId"`
    CoachName *string   `json:"coachName"`
    SportID   *int      `json:"sportId"`
    SportName *string   `json:"sportName"`
    PlaceID   int       `json:"placeId"`
    PlaceName string    `json:"placeName"`
    Timestamp time.Time `json:"timestamp"`
    GroupID   *int      `json:"groupId"`
    GroupName *string   `json:"groupName"`
    Duration  string    `json:"duration"`
}

// CoachGroup — группа тренера с именами записанных клиентов.
type CoachGroup struct {
    GroupID   int      `json:"groupId"`
    GroupName string   `json:"groupName"`
    MinAge    int      `json:"minAge"`
    MaxAge    int      `json:"maxAge"`
    Clients   []string `json:"clients"`
}

// SectionGroup — кандидат для записи: возраст клиента попадает в
// диапазон группы и остались свободные места.
type SectionGroup struct {
    ID           int    `json:"id"`
    Name         string `json:"name"`
    CoachName    string `json:"coachName"`
    CoachQualify string `json:"coachQualify"`
    MinAge       int    `json:"minAge"`
    MaxAge       int    `json:"maxAge"`
    SpotsLeft    int    `json:"spotsLeft"`
}

// UserGroup — группа на главной странице клиента.
type UserGroup struct {
    ID           int    `json:"id"`
    Name         string `json:"name"`
    MinAge       int    `json:"minAge"`
    MaxAge       int    `json:"maxAge"`
    SportID      int    `json:"sportId"`
    SportName    string `json:"sportName"`
    CoachID      int    `json:"coachId"`
    CoachName    string `json:"coachName"`
    CoachQualify string `json:"coachQualify"`
}

// AdminCoach — тренер в админском списке; названия групп собраны в массив.
type AdminCoach struct {
    ID          int       `json:"id"`
    Name        string    `json:"name"`
    PhoneNumber string    `json:"phoneNumber"`
    DateOfBirth time.Time `json:"dateOfBirth"`
    Qualify     string    `json:"qualify"`
    SportName   string    `json:"sportName"`
    GroupNames  []string  `json:"groupNames"`
}

// AdminUser — клиент в админском списке; группы и абонементы с отметкой
// об оплате собраны в массивы.
type AdminUser struct {
    ID          int      `json:"id"`
    Name        string   `json:"name"`
    PhoneNumber string   `json:"phoneNumber"`
    DateOfBirth string   `json:"dateOfBirth"`
    Size        string   `json:"size"`
    Groups      []string `json:"groups"`
    Abonements  []string `json:"abonements"`
}

// AdminGroup — группа в админском списке с именами клиентов.
type AdminGroup struct {
    ID           int      `json:"id"`
    GroupTitle   string   `json:"groupTitle"`
    KindOfSport  *string  `json:"kindOfSport"`
    CoachName    *string  `json:"coachName"`
    MaxClients   int      `json:"maxClients"`
    ClientsCount int      `json:"clientsCount"`
    Clients      []string `json:"clients"`
}
