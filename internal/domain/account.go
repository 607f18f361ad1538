package domain

import (
	"fmt"
	"time"
)

type AccountStatus string

const (
	AccountStatusAtivo     AccountStatus = "Ativo"
	AccountStatusPausado   AccountStatus = "Pausado"
	AccountStatusArquivado AccountStatus = "Arquivado"
)

// ParseAccountStatus valida um status vindo de fora (query string,
// payload) contra o conjunto conhecido
func ParseAccountStatus(raw string) (AccountStatus, error) {
	switch AccountStatus(raw) {
	case AccountStatusAtivo, AccountStatusPausado, AccountStatusArquivado:
		return AccountStatus(raw), nil
	}
	return "", fmt.Errorf("status de conta inválido: %q", raw)
}

// Channel identifica um canal de mídia paga vinculado a uma conta
type Channel string

const (
	ChannelMeta   Channel = "Meta"
	ChannelGoogle Channel = "Google"
)

// Account representa uma conta de anúncios gerenciada pela agência.
// Valores monetários (saldo e budgets) são armazenados em centavos.
type Account struct {
	ID                 string        `json:"id"`
	Nome               string        `json:"nome"`
	Empresa            string        `json:"empresa"`
	Telefone           string        `json:"telefone"`
	Email              string        `json:"email"`
	ClienteID          *string       `json:"cliente_id"`
	GestorID           *string       `json:"gestor_id"`
	Status             AccountStatus `json:"status"`
	UsaMetaAds         bool          `json:"usa_meta_ads"`
	UsaGoogleAds       bool          `json:"usa_google_ads"`
	Canais             []string      `json:"canais"`
	MetaAccountID      *string       `json:"meta_account_id"`
	GoogleAdsID        *string       `json:"google_ads_id"`
	SaldoMeta          int64         `json:"saldo_meta"`
	BudgetMensalMeta   int64         `json:"budget_mensal_meta"`
	BudgetMensalGoogle int64         `json:"budget_mensal_google"`
	TrackingAtivo      bool          `json:"tracking_ativo"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

// ChannelSet é o conjunto canônico de canais de uma conta, normalizado
// uma única vez no join. Todo o restante do código lê apenas este
// conjunto, nunca as flags ou o array canais diretamente.
type ChannelSet map[Channel]struct{}

func (s ChannelSet) Has(c Channel) bool {
	_, ok := s[c]
	return ok
}

func (s ChannelSet) Add(c Channel) {
	s[c] = struct{}{}
}

// Sorted devolve os canais em ordem estável para serialização
func (s ChannelSet) Sorted() []Channel {
	out := make([]Channel, 0, len(s))
	for _, c := range []Channel{ChannelGoogle, ChannelMeta} {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// NormalizeChannels resolve a dupla sinalização de canal (flag booleana
// e pertencimento ao array canais) com semântica de OU inclusivo: a
// conta pertence ao canal se qualquer uma das fontes indicar.
func NormalizeChannels(acc *Account) ChannelSet {
	set := make(ChannelSet, 2)

	if acc.UsaMetaAds {
		set.Add(ChannelMeta)
	}
	if acc.UsaGoogleAds {
		set.Add(ChannelGoogle)
	}

	for _, canal := range acc.Canais {
		switch Channel(canal) {
		case ChannelMeta:
			set.Add(ChannelMeta)
		case ChannelGoogle:
			set.Add(ChannelGoogle)
		}
	}

	return set
}
