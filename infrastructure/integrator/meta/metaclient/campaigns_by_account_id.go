package metaclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"

	metadomain "github.com/lupamkt/backoffice-api/infrastructure/integrator/meta/domain"
)

type ResponseCampaigns struct {
	Data   []metadomain.Campaign `json:"data"`
	Paging metadomain.Paging     `json:"paging"`
}

const campaignInsightFields = "spend,impressions,reach,clicks,ctr,cpc,cpm,actions"

// TODO adicionar loop para pegar todas as páginas
func (c *MetaClient) GetCampaignsWithInsightsByAccountID(accountID string, datePreset string) ([]metadomain.Campaign, error) {
	// Garantir que o token seja válido antes de fazer a requisição
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	if datePreset == "" {
		datePreset = "last_30d"
	}

	baseURL := fmt.Sprintf("%s/act_%s/campaigns", c.Cfg.Meta.URL, accountID)

	params := url.Values{}
	params.Add("fields", fmt.Sprintf(
		"id,name,objective,status,daily_budget,lifetime_budget,insights.date_preset(%s){%s}",
		datePreset,
		campaignInsightFields,
	))
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	requestURL := baseURL + "?" + params.Encode()

	req, err := http.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	// O manipulador verifica tokens expirados e renova quando possível
	body, err := c.HandleResponse(resp)
	if err != nil {
		if err.Error() == errTokenRenewed {
			return c.GetCampaignsWithInsightsByAccountID(accountID, datePreset)
		}
		return nil, err
	}

	var response ResponseCampaigns
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar a resposta de campanhas")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"campaigns":  len(response.Data),
	}).Debug("Campanhas recebidas da Graph API")

	return response.Data, nil
}
