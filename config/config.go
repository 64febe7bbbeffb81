package config

import (
	"os"

	"planetarium/internal/util"
)

type Config struct {
	DatabaseDSN string
	Addr        string
	CacheURL    string
	MQURL       string
	JWTSecret   string
}

func LoadConfig() (*Config, error) {
	if err := util.LoadEnv(); err != nil {
		return nil, err
	}
	databaseDSN := os.Getenv("DATABASE_DSN")
	addr := os.Getenv("ADDR")
	cacheURL := os.Getenv("CACHE_URL")
	mqURL := os.Getenv("RABBIT_MQ_URL")
	jwtSecret := os.Getenv("JWT_SECRET")
	return &Config{
		DatabaseDSN: databaseDSN,
		Addr:        addr,
		CacheURL:    cacheURL,
		MQURL:       mqURL,
		JWTSecret:   jwtSecret,
	}, nil
}
