package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/caarlos0/env/v11"

	"github.com/ferreirogomes/quinhao/handlers"
	"github.com/ferreirogomes/quinhao/services"
)

type config struct {
	Addr string `env:"ADDR" envDefault:":8080"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to parse configuration: %v", err)
	}

	engine := services.NewEngine()
	router := handlers.NewRouter(engine)

	fmt.Printf("quinhao listening on %s...\n", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, router))
}
