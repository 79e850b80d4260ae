package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SilvaLimaAdvogados/legal-office-api/internal/models"
)

func TestFinancialCSV(t *testing.T) {
	records := []models.FinancialRecord{
		{
			Description: "Honorários processo 123",
			Amount:      1500.5,
			RecordType:  models.RecordTypeRevenue,
			Category:    "Honorários",
			RecordDate:  time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC),
		},
		{
			Description: "Aluguel da sala",
			Amount:      980,
			RecordType:  models.RecordTypeExpense,
			Category:    "",
			RecordDate:  time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	csv := FinancialCSV(records)
	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")

	// uma linha por registro, mais o cabeçalho
	require.Len(t, lines, 3)

	assert.Equal(t, "Descrição,Valor,Tipo,Categoria,Data", lines[0])
	assert.Equal(t, `"Honorários processo 123",1500.5,receita,"Honorários",07/03/2025`, lines[1])
	assert.Equal(t, `"Aluguel da sala",980,despesa,"",01/03/2025`, lines[2])
}

func TestFinancialCSVEscapesQuotes(t *testing.T) {
	records := []models.FinancialRecord{
		{
			Description: `Parecer "urgente"`,
			Amount:      300,
			RecordType:  models.RecordTypeRevenue,
			RecordDate:  time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	csv := FinancialCSV(records)
	assert.Contains(t, csv, `"Parecer ""urgente"""`)
}

func TestFinancialCSVEmpty(t *testing.T) {
	csv := FinancialCSV(nil)
	assert.Equal(t, "Descrição,Valor,Tipo,Categoria,Data\n", csv)
}

func TestFilename(t *testing.T) {
	now := time.Date(2025, time.August, 9, 17, 45, 0, 0, time.UTC)
	assert.Equal(t, "relatorio-financeiro-2025-08-09.csv", Filename(now))
}
