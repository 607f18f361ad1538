package metadomain

import (
	"strconv"

	"github.com/sirupsen/logrus"
)

// Campaign é o formato de campanha devolvido pela Graph API. Budgets
// vêm como string em centavos; insights aninhados sob um envelope data.
type Campaign struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Objective      string           `json:"objective"`
	Status         string           `json:"status"`
	DailyBudget    string           `json:"daily_budget"`
	LifetimeBudget string           `json:"lifetime_budget"`
	Insights       InsightsEnvelope `json:"insights"`
}

type InsightsEnvelope struct {
	Data []Insight `json:"data"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
}

type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// Insight são os contadores de uma campanha como a API os devolve:
// todos os campos numéricos chegam como string.
type Insight struct {
	Spend       string   `json:"spend"`
	Impressions string   `json:"impressions"`
	Reach       string   `json:"reach"`
	Clicks      string   `json:"clicks"`
	CTR         string   `json:"ctr"`
	CPC         string   `json:"cpc"`
	CPM         string   `json:"cpm"`
	Actions     []Action `json:"actions"`
	DateStart   string   `json:"date_start"`
	DateStop    string   `json:"date_stop"`
}

// GetLeads extrai a contagem de leads da lista de ações
func (i *Insight) GetLeads() int {
	for _, action := range i.Actions {
		if action.ActionType != "lead" {
			continue
		}

		value, err := strconv.Atoi(action.Value)
		if err != nil {
			logrus.WithError(err).Error("Erro ao converter valor da ação de lead")
			return 0
		}

		return value
	}

	return 0
}

// ParseInt converte um contador string da API; campo ausente ou
// malformado degrada para zero, nunca para erro
func ParseInt(raw string) int {
	if raw == "" {
		return 0
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		logrus.WithField("value", raw).Warn("Campo numérico inválido na resposta da API")
		return 0
	}

	return value
}

func ParseFloat(raw string) float64 {
	if raw == "" {
		return 0
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		logrus.WithField("value", raw).Warn("Campo decimal inválido na resposta da API")
		return 0
	}

	return value
}
