package domain

import (
	"time"
)

// Cliente representa o cliente da agência dono de uma ou mais contas
type Cliente struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	CNPJ      *string   `json:"cnpj"`
	Telefone  *string   `json:"telefone"`
	Email     *string   `json:"email"`
	Instagram *string   `json:"instagram"`
	Site      *string   `json:"site"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Manager representa um gestor de tráfego da agência
type Manager struct {
	ID    string `json:"id"`
	Nome  string `json:"nome"`
	Ativo bool   `json:"ativo"`
}
