package env

import (
	"log"
	"os"

	"moodcasino/internal/config"
)

const (
	addrEnvName = "HTTP_ADDR"
	defaultAddr = ":8080"
)

type httpConfig struct {
	addr string
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	addr := os.Getenv(addrEnvName)
	if len(addr) == 0 {
		log.Printf("%s not set, using %s", addrEnvName, defaultAddr)
		addr = defaultAddr
	}

	return &httpConfig{
		addr: addr,
	}, nil
}

func (cfg *httpConfig) Address() string {
	return cfg.addr
}
