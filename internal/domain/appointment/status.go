package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

// InitialStatus é o status de toda consulta recém-criada pelo site.
func InitialStatus() Status {
	return StatusPending
}

// IsValid aceita apenas os quatro estados do ciclo de vida. Transições
// entre eles são livres: o painel administrativo pode mover qualquer
// consulta para qualquer estado.
func IsValid(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}
