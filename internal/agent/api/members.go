// В этом файле описаны методы клиента для работы с членами семьи:
// добавление, получение списка и удаление.
package api

import "github.com/ekorolkova/famhealth/internal/shared/models"

// AddMemberRequest описывает тело запроса добавления члена семьи.
type AddMemberRequest struct {
	Name         *string `json:"name,omitempty"`
	Relationship *string `json:"relationship,omitempty"`
}

// AddMember добавляет члена семьи.
//
// Метод отправляет POST запрос на /api/members и возвращает созданную запись.
func (c *Client) AddMember(name, relationship *string, accessToken string) (models.CreatedMember, error) {
	var resp models.MemberResponse
	err := c.PostJSON("/api/members", AddMemberRequest{Name: name, Relationship: relationship}, &resp, accessToken)
	return resp.Member, err
}

// ListMembers возвращает список членов семьи текущего пользователя.
func (c *Client) ListMembers(accessToken string) ([]models.Member, error) {
	var resp models.MembersResponse
	err := c.GetJSON("/api/members", &resp, accessToken)
	return resp.Members, err
}

// DeleteMember удаляет члена семьи по идентификатору.
//
// Сервер отвечает успехом и для несуществующего идентификатора.
func (c *Client) DeleteMember(id, accessToken string) error {
	return c.DeleteJSON("/api/members/"+id, nil, accessToken)
}
