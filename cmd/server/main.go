// @title           FamHealth API
// @version         1.0
// @description     Family health tracking backend.
// @description     Provides user authentication and per-user family, member,
// @description     health check and note collections.

// @host      localhost:8000
// @BasePath  /
// @schemes http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
//
// Package main содержит точку входа серверного приложения FamHealth.
//
// Пакет отвечает за инициализацию и жизненный цикл HTTP-сервера, а именно:
//   - загрузку переменных окружения из файла .env (если он присутствует);
//   - загрузку конфигурации сервера из файла ./configs/server.yaml;
//   - инициализацию подключения к MongoDB и управление его жизненным циклом
//     (недоступность базы на старте не фатальна: сервер поднимается и отвечает
//     503, пока база не появится после рестарта процесса);
//   - создание репозиториев, сервисов, middleware и HTTP-обработчиков;
//   - настройку и запуск HTTP(S)-сервера с заданными таймаутами;
//   - обработку системных сигналов завершения (SIGINT, SIGTERM, SIGQUIT);
//   - корректное (graceful) завершение работы сервера с таймаутом.
//
// Пакет не содержит бизнес-логики и не предназначен для unit-тестирования.
// HTTP API сервера реализовано в пакете internal/server/api и документируется с помощью OpenAPI (Swagger).
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/ekorolkova/famhealth/internal/server/api"
	"github.com/ekorolkova/famhealth/internal/server/config"
	"github.com/ekorolkova/famhealth/internal/server/middleware"
	h "github.com/ekorolkova/famhealth/internal/server/net/http"
	"github.com/ekorolkova/famhealth/internal/server/repository"
	"github.com/ekorolkova/famhealth/internal/server/service"
	"github.com/ekorolkova/famhealth/internal/shared/logger"

	_ "github.com/ekorolkova/famhealth/swagger/docs"
)

func main() {
	httpLogger := logger.NewHTTPLogger()
	sugar := httpLogger.Sugar()

	if err := godotenv.Load(); err != nil {
		sugar.Warnf("no .env file loaded, error: %v", err)
	}

	cfg, err := config.Load("./configs/server.yaml")
	if err != nil {
		sugar.Fatal(err)
	}

	// подключаем MongoDB; ошибка не фатальна — хендлеры ответят 503
	if err := config.Init(context.Background(), cfg.DB); err != nil {
		sugar.Errorf("mongodb connection failed: %v", err)
	}

	// возвращаем указатель на db (может быть nil)
	db := config.GetDB()
	// отложенное закрытие подключения
	defer func() {
		if err := config.Close(context.Background()); err != nil {
			sugar.Errorf("mongodb disconnect failed: %v", err)
		}
	}()

	// создаём репы
	repos := service.Repositories{
		Users:        repository.NewUsersRepository(db),
		Families:     repository.NewFamiliesRepository(db),
		Members:      repository.NewMembersRepository(db),
		HealthChecks: repository.NewHealthChecksRepository(db),
		Notes:        repository.NewNotesRepository(db),
	}
	// создаём сервис
	svc := service.NewServices(repos, cfg)
	// создаём jwt
	verifier := middleware.NewJWTVerifier(
		cfg.Auth.JWT.SigningKey,
		cfg.Auth.Issuer,
		cfg.Auth.Audience,
	)
	// создаём хандлер
	handler := api.NewHandler(svc, httpLogger, verifier)
	// создаём роутер
	router := h.NewRouter(handler, cfg.CORS.AllowedOrigins, func() bool {
		return config.GetDB() != nil
	})
	// создаём сервер
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// создаём контекст и errgroup
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// запускаем сервер
	g.Go(func() error {
		sugar.Infof("server started on %s", addr)

		var err error
		if cfg.TLS.Enabled {
			err = server.ListenAndServeTLS(cfg.TLS.CertFile, cfg.TLS.KeyFile)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// graceful shutdown с таймаутом из конфига
	g.Go(func() error {
		<-ctx.Done()

		sugar.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			cfg.Server.ShutdownTimeout,
		)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	// ожидание и единая обработка ошибок
	if err := g.Wait(); err != nil {
		sugar.Fatalf("server stopped with error: %v", err)
	}
	sugar.Info("server gracefully stopped")
}
