package domain

import (
	"time"
)

// ReportDispatchConfig define um destinatário de relatório periódico.
// ClienteID nulo significa relatório consolidado de toda a carteira.
type ReportDispatchConfig struct {
	ID         string     `json:"id"`
	ClienteID  *string    `json:"cliente_id"`
	Email      string     `json:"email"`
	Periodo    string     `json:"periodo"`
	Ativo      bool       `json:"ativo"`
	LastSentAt *time.Time `json:"last_sent_at"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
