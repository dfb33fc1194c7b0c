// Package cli реализует командный интерфейс (CLI) клиентского приложения FamHealth.
//
// Пакет отвечает за:
//   - определение root-команды и набора подкоманд;
//   - разбор аргументов и флагов командной строки;
//   - загрузку локального access токена из конфигурационного файла;
//   - выполнение команд и вывод результата пользователю.
//
// Точка входа пакета — функция Execute.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ekorolkova/famhealth/internal/agent/config"
)

// App содержит состояние CLI-приложения, разделяемое между командами.
//
// В структуре хранятся параметры подключения к серверу и загруженные учётные данные.
// Экземпляр App создаётся при построении root-команды и передаётся в подкоманды.
type App struct {
	// ServerURL — базовый URL сервера FamHealth (например, "http://127.0.0.1:8000").
	ServerURL string

	// CredsPath — путь к файлу с сохранённым access токеном.
	CredsPath string
	// Creds — загруженные учётные данные из файла конфигурации.
	// Может быть nil, если загрузка не выполнялась или завершилась ошибкой.
	Creds *config.Credentials
}

// NewRootCmd создаёт root-команду CLI и регистрирует подкоманды.
//
// buildVersion и buildDate используются для вывода информации о сборке (команда version).
// В PersistentPreRunE выполняется инициализация состояния приложения:
// определяется путь к файлу учётных данных и загружается сохранённый токен.
func NewRootCmd(buildVersion, buildDate string) *cobra.Command {
	app := &App{
		ServerURL: "http://127.0.0.1:8000",
	}

	cmd := &cobra.Command{
		Use:   "famhealth",
		Short: "FamHealth CLI — журнал здоровья семьи",
		Long: `FamHealth CLI.

Команды:
  register  Регистрация нового пользователя
  login     Логин (получить access токен)
  me        Профиль текущего пользователя
  family    Показать семью (создаётся при первом запросе)
  member    Члены семьи: add / list / rm
  check     Проверки здоровья: add / list
  note      Заметки: add / list
  version   Версия и дата сборки

Примеры:

Регистрация:
  famhealth register --email test@example.com --name "Test User"
  (пароль запрашивается интерактивно, либо флагом --password)

Логин:
  famhealth login --email test@example.com
  (сохраняет access токен в локальном конфиге)

Члены семьи:
  famhealth member add --name "Бабушка" --relationship "grandmother"
  famhealth member list
  famhealth member rm <id>

Проверки здоровья:
  famhealth check add --member <id> --status ok --note "температура в норме"
  famhealth check list <memberId>
`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			p, err := config.DefaultPath()
			if err != nil {
				return err
			}
			app.CredsPath = p

			creds, err := config.Load(app.CredsPath)
			if err != nil {
				return err
			}
			app.Creds = creds
			return nil
		},
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().StringVar(&app.ServerURL, "server", "http://127.0.0.1:8000", "server base URL")

	cmd.AddCommand(NewRegisterCmd(app))
	cmd.AddCommand(NewLoginCmd(app))
	cmd.AddCommand(NewMeCmd(app))
	cmd.AddCommand(NewFamilyCmd(app))
	cmd.AddCommand(NewMemberCmd(app))
	cmd.AddCommand(NewCheckCmd(app))
	cmd.AddCommand(NewNoteCmd(app))
	cmd.AddCommand(NewVersionCmd(buildVersion, buildDate))

	return cmd
}

// Execute запускает обработку CLI-команд.
//
// При ошибке выполнения команды сообщение выводится в stderr, после чего процесс
// завершается с кодом 1 (os.Exit(1)).
func Execute(buildVersion, buildDate string) {
	if err := NewRootCmd(buildVersion, buildDate).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
