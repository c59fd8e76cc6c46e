package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// JWTSecret доступен и без LoadEnv (тесты, утилиты)
var JWTSecret = GetEnv("JWT_SECRET", "your_jwt_secret_key")

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env не найден, используем ENV системы")
	} else {
		log.Println("✅ .env загружен")
	}

	JWTSecret = GetEnv("JWT_SECRET", "your_jwt_secret_key")
	if os.Getenv("JWT_SECRET") == "" {
		log.Println("⚠️ JWT_SECRET не задан, используется значение по умолчанию")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
