package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"FinPlanSaas/internal/appmanager"
)

func main() {
	// Load .env for local dev (ignored in hosted environments)
	_ = godotenv.Load("../.env")

	manager := appmanager.NewAppManager()

	// Load service configs from YAML
	servicesPath := os.Getenv("SERVICES_CONFIG")
	if servicesPath == "" {
		servicesPath = "../services.yaml"
	}
	servicesCfg, err := appmanager.LoadServiceSequence(servicesPath)
	if err != nil {
		log.Fatal("failed to load service sequence:", err)
	}

	// Automatically register all services
	manager.AutoRegisterServices(servicesCfg)

	// Start all services
	if err := manager.StartAll(); err != nil {
		log.Fatal("failed to start:", err)
	}

	// Graceful shutdown handling
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs

	// Stop all services
	if err := manager.StopAll(); err != nil {
		log.Fatal("failed to stop:", err)
	}
}
