package config

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
)

func New() Config {
	return Config{
		BasePath: requireEnv("BASE_PATH"),
		Hostname: requireEnv("HOSTNAME"),
		Postgresql: Postgresql{
			Host:         requireEnv("DATABASE_HOST"),
			Port:         requireEnvAsInt("DATABASE_PORT"),
			Username:     requireEnv("DATABASE_USERNAME"),
			Password:     requireEnv("DATABASE_PASSWORD"),
			DatabaseName: requireEnv("DATABASE_NAME"),
		},
		Redis: Redis{
			Host: requireEnv("REDIS_HOST"),
			Port: requireEnvAsInt("REDIS_PORT"),
		},
		ObjectStore: ObjectStore{
			Endpoint:  requireEnv("OBJECT_STORE_ENDPOINT"),
			AccessKey: requireEnv("OBJECT_STORE_ACCESS_KEY"),
			SecretKey: requireEnv("OBJECT_STORE_SECRET_KEY"),
			Bucket:    requireEnv("OBJECT_STORE_BUCKET"),
			PublicURL: requireEnv("OBJECT_STORE_PUBLIC_URL"),
			UseSSL:    os.Getenv("OBJECT_STORE_USE_SSL") == "true",
		},
		SMTP: SMTP{
			Host:     requireEnv("SMTP_HOST"),
			Port:     requireEnvAsInt("SMTP_PORT"),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     requireEnv("SMTP_FROM"),
		},
		Authentication: Authentication{
			Keys: Keys{
				PrivateKey: requireEnv("PRIVATE_KEY"),
			},
			RefreshTokenSecretKey:                   requireEnv("REFRESH_TOKEN_SECRET_KEY"),
			AccessTokenExpirationSeconds:            requireEnvAsInt("ACCESS_TOKEN_EXPIRATION_IN_SECONDS"),
			RefreshTokenExpirationSeconds:           requireEnvAsInt("REFRESH_TOKEN_EXPIRATION_IN_SECONDS"),
			RefreshTokenRememberMeExpirationSeconds: requireEnvAsInt("REFRESH_TOKEN_REMEMBER_ME_EXPIRATION_IN_SECONDS"),
		},
	}
}

type Config struct {
	BasePath       string
	Hostname       string
	Postgresql     Postgresql
	Redis          Redis
	ObjectStore    ObjectStore
	SMTP           SMTP
	Authentication Authentication
}

type Postgresql struct {
	Host         string
	Port         int
	Username     string
	Password     string
	DatabaseName string
}

type Redis struct {
	Host string
	Port int
}

// ObjectStore configures the MinIO backend holding event images and company
// logos. PublicURL is the externally reachable base used to rehydrate stored
// object keys into absolute URLs at read time.
type ObjectStore struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	PublicURL string
	UseSSL    bool
}

type SMTP struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type Authentication struct {
	Keys                                    Keys
	RefreshTokenSecretKey                   string
	AccessTokenExpirationSeconds            int
	RefreshTokenExpirationSeconds           int
	RefreshTokenRememberMeExpirationSeconds int
}

type Keys struct {
	PrivateKey string
}

func (k Keys) GetPrivateKey() (*rsa.PrivateKey, error) {
	block, _ := pem.Decode([]byte(k.PrivateKey))
	if block == nil {
		return nil, errors.New("failed to decode PEM block containing private key")
	}

	key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err == nil {
		return key, nil
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %v", err)
	}
	rsaKey, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, errors.New("private key is not an RSA key")
	}
	return rsaKey, nil
}

func requireEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("Can't find environment variable: %s\n", key)
	}
	return value
}

func requireEnvAsInt(key string) int {
	valueStr := requireEnv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("Can't parse value as integer: %s", err.Error())
	}
	return value
}
