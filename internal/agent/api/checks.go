// В этом файле описаны методы клиента для работы с проверками здоровья.
package api

import "github.com/ekorolkova/famhealth/internal/shared/models"

// AddHealthCheckRequest описывает тело запроса записи проверки здоровья.
type AddHealthCheckRequest struct {
	MemberID *string `json:"memberId,omitempty"`
	Status   *string `json:"status,omitempty"`
	Note     *string `json:"note,omitempty"`
}

// AddHealthCheck записывает проверку здоровья.
//
// Метод отправляет POST запрос на /api/health-checks и возвращает идентификатор записи.
func (c *Client) AddHealthCheck(memberID, status, note *string, accessToken string) (models.CreatedHealthCheck, error) {
	var resp models.HealthCheckResponse
	err := c.PostJSON("/api/health-checks", AddHealthCheckRequest{MemberID: memberID, Status: status, Note: note}, &resp, accessToken)
	return resp.HealthCheck, err
}

// ListHealthChecks возвращает проверки здоровья указанного члена семьи.
func (c *Client) ListHealthChecks(memberID, accessToken string) ([]models.HealthCheck, error) {
	var resp models.HealthChecksResponse
	err := c.GetJSON("/api/health-checks/"+memberID, &resp, accessToken)
	return resp.HealthChecks, err
}
