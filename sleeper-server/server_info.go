package main

import (
	"os"
	"runtime"
	"time"
)

// ServerInfoResult is the output of the get_server_info tool.
type ServerInfoResult struct {
	ServerName  string `json:"server_name"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
	GoVersion   string `json:"go_version"`
	Description string `json:"description"`
}

// HealthResult is the output of the health_check tool.
type HealthResult struct {
	Status    string `json:"status"`
	Server    string `json:"server"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

func buildServerInfo() *ServerInfoResult {
	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		env = "development"
	}
	return &ServerInfoResult{
		ServerName:  serverName,
		Version:     serverVersion,
		Environment: env,
		GoVersion:   runtime.Version(),
		Description: "MCP server for the Sleeper Fantasy Football API",
	}
}

func buildHealth() *HealthResult {
	return &HealthResult{
		Status:    "healthy",
		Server:    serverName,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   serverVersion,
	}
}
