package api

import "github.com/ekorolkova/famhealth/internal/shared/models"

// Family запрашивает семью текущего пользователя.
//
// Сервер создаёт семью при первом обращении, поэтому метод всегда
// возвращает семью для валидного токена.
func (c *Client) Family(accessToken string) (models.Family, error) {
	var resp models.FamilyResponse
	err := c.GetJSON("/api/family", &resp, accessToken)
	return resp.Family, err
}
