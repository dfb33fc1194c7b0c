// Package api содержит HTTP-клиент для взаимодействия с сервером FamHealth.
//
// Клиент инкапсулирует базовый URL сервера и настроенный http.Client,
// предоставляя удобные методы для отправки JSON-запросов (POST/GET/DELETE)
// с авторизацией через Bearer токен.
//
// Особенности:
//   - baseURL нормализуется (обрезаются завершающие "/").
//   - По умолчанию добавляется заголовок Accept: application/json.
//   - Заголовок Content-Type: application/json добавляется только при наличии тела запроса.
//   - При ответах 204 No Content тело не читается и это считается успехом.
//   - Пустое тело ответа (EOF при декодировании) не считается ошибкой.
//   - При ошибочных ответах (не 2xx) возвращается ошибка с текстом поля "detail"
//     из тела ответа (если тело пустое — используется res.Status).
//
// ВНИМАНИЕ: NewClient включает InsecureSkipVerify=true (TLS сертификат не проверяется).
// Это допустимо только для разработки и локального окружения. Для production следует
// включать проверку сертификата и/или использовать доверенный CA/сертификаты.
package api

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client реализует HTTP-клиент для общения с сервером FamHealth.
//
// Поля:
//   - baseURL: базовый адрес сервера без завершающего слэша.
//   - http: настроенный http.Client (таймаут, транспорт, TLS).
//
// Client предоставляет методы PostJSON/GetJSON/DeleteJSON,
// которые отправляют HTTP-запросы и (при необходимости) декодируют JSON-ответ.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient создаёт новый HTTP-клиент для общения с сервером.
//
// Параметры:
//   - baseURL: базовый адрес сервера (например: "http://127.0.0.1:8000").
//
// Поведение:
//   - обрезает завершающий "/" у baseURL;
//   - создаёт http.Client с таймаутом 10 секунд.
//
// ВНИМАНИЕ: InsecureSkipVerify=true отключает проверку сертификата и делает TLS
// уязвимым для MITM. Использовать только для локальной разработки/тестов.
func NewClient(baseURL string) *Client {
	tr := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, // только для dev
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   10 * time.Second,
			Transport: tr,
		},
	}
}

// readAPIErrorBody читает тело ответа сервера и возвращает ошибку с его текстом.
//
// Используется в случае HTTP-ошибок (не 2xx).
//
// Поведение:
//   - читает res.Body полностью;
//   - если тело — JSON вида {"detail": "..."}, возвращает error с текстом detail;
//   - если тело непустое, но не JSON — возвращает error с этим текстом (trim пробелов);
//   - если тело пустое — возвращает error со строкой res.Status.
func readAPIErrorBody(res *http.Response) error {
	raw, _ := io.ReadAll(res.Body)

	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Detail != "" {
		return errors.New(body.Detail)
	}

	msg := strings.TrimSpace(string(raw))
	if msg == "" {
		msg = res.Status
	}
	return errors.New(msg)
}

// decodeJSONOrOK декодирует JSON из r в resp.
//
// Параметры:
//   - r: источник данных (обычно res.Body);
//   - resp: указатель на структуру/объект для декодирования.
//     Если resp == nil — функция ничего не делает и возвращает nil.
//
// Особенность:
//   - Если тело ответа пустое и json.Decoder вернул io.EOF,
//     это НЕ считается ошибкой и возвращается nil.
func decodeJSONOrOK(r io.Reader, resp any) error {
	if resp == nil {
		return nil
	}
	err := json.NewDecoder(r).Decode(resp)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// do выполняет HTTP-запрос с JSON-телом и разбирает JSON-ответ.
//
// Общая механика для PostJSON/GetJSON/DeleteJSON:
//   - всегда ставит Accept: application/json;
//   - Content-Type ставится только если req != nil;
//   - при непустом authToken добавляет Authorization: Bearer <token>;
//   - 2xx — успех (204 — успех без декодирования тела);
//   - не 2xx — ошибка с текстом detail из тела (или res.Status).
func (c *Client) do(method, path string, req any, resp any, authToken string) error {
	var buf bytes.Buffer
	if req != nil {
		if err := json.NewEncoder(&buf).Encode(req); err != nil {
			return err
		}
	}

	r, err := http.NewRequest(method, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	r.Header.Set("Accept", "application/json")
	if req != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	if authToken != "" {
		r.Header.Set("Authorization", "Bearer "+authToken)
	}

	res, err := c.http.Do(r)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return readAPIErrorBody(res)
	}

	// 204/пустое тело — ок
	if res.StatusCode == http.StatusNoContent {
		return nil
	}

	return decodeJSONOrOK(res.Body, resp)
}

// PostJSON выполняет POST-запрос к серверу, сериализуя req в JSON.
//
// Параметры:
//   - path: путь относительно baseURL (например: "/api/auth/login").
//   - req: объект для сериализации в JSON. Если req == nil, тело не отправляется
//     и Content-Type не устанавливается.
//   - resp: указатель на структуру/объект для декодирования JSON-ответа.
//     Если resp == nil, тело ответа не декодируется.
//   - authToken: access токен. Если непустой, добавляется заголовок:
//     Authorization: Bearer <token>.
func (c *Client) PostJSON(path string, req any, resp any, authToken string) error {
	return c.do(http.MethodPost, path, req, resp, authToken)
}

// GetJSON выполняет GET-запрос к серверу и (опционально) декодирует JSON-ответ.
//
// Параметры:
//   - path: путь относительно baseURL (например: "/api/members").
//   - resp: указатель на структуру/объект для декодирования JSON-ответа.
//     Если resp == nil, тело ответа не декодируется.
//   - authToken: access токен. Если непустой, добавляется заголовок:
//     Authorization: Bearer <token>.
func (c *Client) GetJSON(path string, resp any, authToken string) error {
	return c.do(http.MethodGet, path, nil, resp, authToken)
}

// DeleteJSON выполняет DELETE-запрос к серверу и (опционально) декодирует JSON-ответ.
//
// Параметры:
//   - path: путь относительно baseURL (например: "/api/members/{id}").
//   - resp: указатель на структуру/объект для декодирования JSON-ответа.
//     Если resp == nil, тело ответа не декодируется.
//   - authToken: access токен. Если непустой, добавляется заголовок:
//     Authorization: Bearer <token>.
func (c *Client) DeleteJSON(path string, resp any, authToken string) error {
	return c.do(http.MethodDelete, path, nil, resp, authToken)
}
