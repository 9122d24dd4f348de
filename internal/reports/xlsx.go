package reports

import (
    "encoding/base64"
    "fmt"

    "github.com/xuri/excelize/v2"
)

// Column — колонка отчёта: локализованный заголовок и ширина.
type Column struct {
    Header string
    Width  float64
}

// Render собирает книгу с одним листом: строка заголовков и по строке на
// запись, сериализует в xlsx и кодирует в base64 для вставки в JSON.
// Весь результат материализуется в памяти — потоковой записи нет.
func Render(sheetName string, columns []Column, rows [][]any) (string, error) {
    f := excelize.NewFile()
    defer f.Close()

    if err := f.SetSheetName("Sheet1", sheetName); err != nil {
        return "", err
    }

    headers := make([]any, len(columns))
    for i, col := range columns {
        headers[i] = col.Header
        name, err := excelize.ColumnNumberToName(i + 1)
        if err != nil {
            return "", err
        }
        if err := f.SetColWidth(sheetName, name, name, col.Width); err != nil {
            return "", err
        }
    }
    if err := f.SetSheetRow(sheetName, "A1", &headers); err != nil {
        return "", err
    }

    for i, row := range rows {
        cell, err := excelize.CoordinatesToCellName(1, i+2)
        if err != nil {
            return "", err
        }
        if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
            return "", err
        }
    }

    buf, err := f.WriteToBuffer()
    if err != nil {
        return "", err
    }
    return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// PaymentsFileName — имя файла отчёта по платежам за период.
func PaymentsFileName(startDate, endDate string) string {
    return fmt.Sprintf("Платежи %s - %s.xlsx", startDate, endDate)
}

// SalaryFileName — имя файла отчёта по тренерским зарплатам за период.
func SalaryFileName(startDate, endDate string) string {
    return fmt.Sprintf("Тренерские зарплаты %s - %s.xlsx", startDate, endDate)
}
