package report

import (
	"strconv"
	"strings"
	"time"

	"github.com/SilvaLimaAdvogados/legal-office-api/internal/models"
)

// Relatório financeiro em CSV, no layout que a contabilidade já
// consome: descrição e categoria entre aspas, valor numérico sem aspas,
// data em DD/MM/YYYY.

const csvHeader = "Descrição,Valor,Tipo,Categoria,Data"

func Filename(now time.Time) string {
	return "relatorio-financeiro-" + now.Format("2006-01-02") + ".csv"
}

func FinancialCSV(records []models.FinancialRecord) string {
	var b strings.Builder

	b.WriteString(csvHeader)
	b.WriteByte('\n')

	for _, rec := range records {
		row := []string{
			quote(rec.Description),
			strconv.FormatFloat(rec.Amount, 'f', -1, 64),
			rec.RecordType,
			quote(rec.Category),
			rec.RecordDate.Format("02/01/2006"),
		}
		b.WriteString(strings.Join(row, ","))
		b.WriteByte('\n')
	}

	return b.String()
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
