package main

import (
	"os"
	"strconv"
)

type Config struct {
	MongoURI string
	MongoDB  string

	// Empty bucket disables photo uploads.
	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3PathStyle bool

	// Empty API key disables care-tip generation.
	GeminiAPIURL string
	GeminiAPIKey string
	GeminiModel  string

	MaxImageBytes int64
	Port          string
}

func mustConfig() Config {
	cfg := Config{
		MongoURI:      getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:       getenv("MONGO_DB", "sporelia"),
		S3Bucket:      getenv("S3_BUCKET", ""),
		S3Region:      getenv("S3_REGION", "us-east-1"),
		S3Endpoint:    getenv("S3_ENDPOINT", ""),
		S3PathStyle:   getenv("S3_PATH_STYLE", "") == "true",
		GeminiAPIURL:  getenv("GEMINI_API_URL", ""),
		GeminiAPIKey:  getenv("GEMINI_API_KEY", ""),
		GeminiModel:   getenv("GEMINI_MODEL", ""),
		MaxImageBytes: getenvInt64("MAX_IMAGE_BYTES", 0),
		Port:          getenv("PORT", "8080"),
	}

	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt64(k string, def int64) int64 {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}
