package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
// До вызова Init это логгер logrus по умолчанию (stderr, info).
var Log = logrus.New()

// Init инициализирует глобальный логгер из окружения и пишет в stderr.
// Эта функция должна быть вызвана один раз при старте приложения в main.go.
func Init() {
	InitWithOutput(os.Stderr)
}

// InitWithOutput делает то же, что Init, но с произвольным выводом.
// stdout занят планом, поэтому логи по умолчанию уходят в stderr.
func InitWithOutput(out io.Writer) {
	Log = logrus.New()

	// 1. Уровень из LOG_LEVEL. По умолчанию - "info". Для трассировки поиска - "debug".
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	// 2. Форматтер из LOG_FORMAT: "json" - для сбора логов, иначе текст.
	logFormat := strings.ToLower(os.Getenv("LOG_FORMAT"))
	if logFormat == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	Log.SetOutput(out)
}
