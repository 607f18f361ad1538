package domain

// LeadsStats consolida os números de leads de uma conta. ValorConversao
// é armazenado em centavos, como todo valor monetário vindo do banco.
type LeadsStats struct {
	AccountID        string `json:"account_id"`
	TotalLeads       int    `json:"total_leads"`
	LeadsConvertidos int    `json:"leads_convertidos"`
	ValorConversao   int64  `json:"valor_conversao"`
}
