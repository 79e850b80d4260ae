package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SilvaLimaAdvogados/legal-office-api/internal/models"
)

func TestBuildSummary(t *testing.T) {
	records := []models.FinancialRecord{
		{RecordType: models.RecordTypeRevenue, Amount: 1000},
		{RecordType: models.RecordTypeRevenue, Amount: 500},
		{RecordType: models.RecordTypeExpense, Amount: 300},
		{RecordType: "outro", Amount: 999}, // tipo desconhecido é ignorado
	}

	s := BuildSummary(records, 3)

	assert.Equal(t, 1500.0, s.TotalRevenue)
	assert.Equal(t, 300.0, s.TotalExpenses)
	assert.Equal(t, 1200.0, s.Balance)
	assert.Equal(t, int64(3), s.ClientsCount)
	assert.Equal(t, 500.0, s.AverageValue)
}

func TestBuildSummaryWithoutClients(t *testing.T) {
	records := []models.FinancialRecord{
		{RecordType: models.RecordTypeRevenue, Amount: 100},
	}

	s := BuildSummary(records, 0)
	assert.Zero(t, s.AverageValue)
}

func TestBuildSummaryEmpty(t *testing.T) {
	s := BuildSummary(nil, 5)

	assert.Zero(t, s.TotalRevenue)
	assert.Zero(t, s.TotalExpenses)
	assert.Zero(t, s.Balance)
	assert.Zero(t, s.AverageValue)
	assert.Equal(t, int64(5), s.ClientsCount)
}
