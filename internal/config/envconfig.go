package config

import (
	"os"
	"strconv"
)

type envConfig struct {
	LogLevel              string
	ServerPort            int
	Version               string
	PersonioAPIURI        string
	AuthTokenFileLocation string
	XlsFileLocation       string
	ReportFileLocation    string
	EmailTo               string
	EmailFrom             string
	AWSRegion             string
}

func NewEnvironmentConfig() *envConfig {
	return &envConfig{
		LogLevel:              getEnvString("LOG_LEVEL", "INFO"),
		ServerPort:            getEnvInt("SERVER_PORT", 8080),
		Version:               getEnvString("VERSION", "v1"),
		PersonioAPIURI:        getEnvString("PERSONIO_API_URI", "https://api.personio.de/v1"),
		AuthTokenFileLocation: getEnvString("AUTH_TOKEN_FILE_LOCATION", "/tmp/personio-token.json"),
		XlsFileLocation:       getEnvString("XLS_FILE_LOCATION", "/tmp/absence-balances.xlsx"),
		ReportFileLocation:    getEnvString("REPORT_FILE_LOCATION", "/tmp/absence-report.xlsx"),
		EmailTo:               getEnvString("EMAIL_TO", ""),
		EmailFrom:             getEnvString("EMAIL_FROM", ""),
		AWSRegion:             getEnvString("AWS_REGION", "ap-southeast-2"),
	}
}

// helper function to read an environment or return a default value
func getEnvString(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}

// helper function to read an environment or return a default value
func getEnvInt(key string, defaultVal int) int {
	val, err := strconv.Atoi(getEnvString(key, strconv.Itoa(defaultVal)))
	if err == nil {
		return val
	}

	return defaultVal
}
