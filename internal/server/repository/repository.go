// Package repository содержит реализации слоя доступа к данным (Repository layer).
//
// Репозитории инкапсулируют работу с MongoDB и не содержат бизнес-логики.
// Все ошибки приводятся к доменным ошибкам из internal/shared/errors.
//
// Ownership scoping: каждый метод репозитория (кроме users) обязан получить
// userID владельца и сам подставляет его в bson-фильтр. Пути к данным
// без такого фильтра в этом пакете нет — забыть его невозможно.
package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	serr "github.com/ekorolkova/famhealth/internal/shared/errors"
)

// storeErr приводит ошибки драйвера MongoDB к доменным ошибкам.
//
// Сетевые проблемы и таймауты считаются недоступностью хранилища (503),
// duplicate key — конфликтом уникальности, остальное — внутренней ошибкой.
func storeErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return serr.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return serr.ErrAlreadyExists
	case mongo.IsNetworkError(err), mongo.IsTimeout(err):
		return serr.ErrStoreUnavailable
	default:
		return serr.ErrInternal
	}
}
