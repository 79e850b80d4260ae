package report

import "github.com/SilvaLimaAdvogados/legal-office-api/internal/models"

type Summary struct {
	TotalRevenue  float64 `json:"total_revenue"`
	TotalExpenses float64 `json:"total_expenses"`
	Balance       float64 `json:"balance"`
	ClientsCount  int64   `json:"clients_count"`
	AverageValue  float64 `json:"average_value"`
}

// BuildSummary agrega o financeiro como o painel fazia: somas por tipo,
// saldo e receita média por cliente cadastrado.
func BuildSummary(records []models.FinancialRecord, clientsCount int64) Summary {
	var revenue, expenses float64

	for _, rec := range records {
		switch rec.RecordType {
		case models.RecordTypeRevenue:
			revenue += rec.Amount
		case models.RecordTypeExpense:
			expenses += rec.Amount
		}
	}

	var avg float64
	if clientsCount > 0 && revenue > 0 {
		avg = revenue / float64(clientsCount)
	}

	return Summary{
		TotalRevenue:  revenue,
		TotalExpenses: expenses,
		Balance:       revenue - expenses,
		ClientsCount:  clientsCount,
		AverageValue:  avg,
	}
}
