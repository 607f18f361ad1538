package account

import "github.com/pkg/errors"

var (
	// ErrAccountNotFound indica que a conta não existe no repositório
	ErrAccountNotFound = errors.New("conta não encontrada")

	// ErrAccountWithoutMeta indica que a conta não tem ID do Meta
	// vinculado e portanto não tem campanhas para consultar
	ErrAccountWithoutMeta = errors.New("conta sem conta de anúncios Meta vinculada")
)
