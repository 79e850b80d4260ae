package appointment

import "time"

// Hora fixa das consultas agendadas pelo formulário público.
const IntakeHour = 14

// NextBusinessDay devolve o próximo dia útil às 14:00 no fuso de `now`:
// fixa a hora em 14:00:00.000, avança um dia e aplica uma única correção
// de fim de semana (sábado → +2, domingo → +1). Um passo de um dia nunca
// cruza mais de um fim de semana, então uma correção basta.
func NextBusinessDay(now time.Time) time.Time {
	date := time.Date(
		now.Year(), now.Month(), now.Day(),
		IntakeHour, 0, 0, 0,
		now.Location(),
	)

	date = date.AddDate(0, 0, 1)

	switch date.Weekday() {
	case time.Saturday:
		date = date.AddDate(0, 0, 2)
	case time.Sunday:
		date = date.AddDate(0, 0, 1)
	}

	return date
}
