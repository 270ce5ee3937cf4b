package config

import (
	"flag"
	"fmt"
)

const HelpMessage = `
Vahanex driving institute backend.

Usage:
  vahanex [flags]

Flags:
  -config-path string   Path to the config yaml file (default "config.yaml")
  -help                 Show this help message

Configuration is read from the yaml file and can be overridden with
environment variables (SERVER_PORT, DATABASE_HOST, REDIS_HOST,
RABBITMQ_HOST, AUTH_JWT_SECRET and friends).
`

func PrintHelp() {
	if HelpMessage != "" {
		fmt.Printf("%s", HelpMessage)
	} else {
		flag.Usage()
	}
}

// PrintConfig dumps the resolved configuration without secrets.
func PrintConfig(cfg *Config) {
	if cfg == nil {
		return
	}
	fmt.Printf("server:    %s\n", cfg.Server.Addr())
	fmt.Printf("database:  %s:%s/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.Database)
	fmt.Printf("redis:     %s\n", cfg.Redis.Addr())
	fmt.Printf("rabbitmq:  %s:%s\n", cfg.RabbitMQ.Host, cfg.RabbitMQ.Port)
	fmt.Printf("stats ttl: %s\n", cfg.Cache.StatsTTL)
}
