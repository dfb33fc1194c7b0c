// Package config содержит инициализацию подключения к MongoDB
// и доступ к глобальному экземпляру *mongo.Database.
//
// Пакет выполняет:
//   - подключение к MongoDB с таймаутами из конфига;
//   - проверку доступности базы (Ping);
//   - создание индексов при старте сервера.
//
// Примечание: пакет использует глобальную переменную DB. Инициализация должна
// выполняться один раз при запуске сервера. Если Init завершился ошибкой,
// DB остаётся nil — хендлеры в этом случае отвечают 503, сервер продолжает работать.
package config

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/ekorolkova/famhealth/internal/shared/logger"
)

// DB — глобальный экземпляр базы данных.
//
// Инициализируется функцией Init и используется другими пакетами через GetDB.
var DB *mongo.Database

// client — подключение к MongoDB, закрывается через Close.
var client *mongo.Client

// Init подключается к MongoDB, проверяет доступность базы
// и создаёт индексы.
//
// cfg — настройки подключения (URI, имя базы, таймауты).
// Таймауты (connect/socket/server selection) задаются один раз здесь
// и дальше приложением не контролируются.
func Init(ctx context.Context, cfg DBConfig) error {
	customLog := logger.NewHTTPLogger().Logger.Sugar()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout).
		SetSocketTimeout(cfg.SocketTimeout)

	var err error
	client, err = mongo.Connect(ctx, opts)
	if err != nil {
		customLog.Errorf("error to connect db: %v", err)
		return err
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		customLog.Errorf("error check db connection: %v", err)
		return err
	}

	DB = client.Database(cfg.Database)

	// Создание индексов
	if err := EnsureIndexes(ctx, DB); err != nil {
		customLog.Errorf("error creating indexes: %v", err)
		return err
	}

	customLog.Info("mongodb connected successfully")
	return nil
}

// EnsureIndexes создаёт индексы коллекций.
//
// Уникальный индекс на users.email закрывает гонку двух одновременных
// регистраций с одинаковым email: второй insert упадёт с duplicate key.
// Остальные индексы ускоряют выборки по владельцу.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	ownerIdx := mongo.IndexModel{Keys: bson.D{{Key: "user_id", Value: 1}}}
	for _, name := range []string{"families", "members", "health_checks", "notes"} {
		if _, err := db.Collection(name).Indexes().CreateOne(ctx, ownerIdx); err != nil {
			return err
		}
	}
	return nil
}

// GetDB возвращает текущий глобальный экземпляр *mongo.Database.
//
// Возвращаемое значение может быть nil, если Init ещё не вызывался
// или завершился ошибкой.
func GetDB() *mongo.Database {
	return DB
}

// Close закрывает подключение к MongoDB.
func Close(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}
