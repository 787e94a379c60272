package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/chargepilot/chargepilot/backend/internal/adapters/store"
	"github.com/chargepilot/chargepilot/backend/internal/domain/entities"
	"github.com/chargepilot/chargepilot/backend/internal/infrastructure/clients/jsonfile"
	"github.com/chargepilot/chargepilot/backend/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if os.Getenv("RESET_STORE") == "true" {
		log.Println("RESET_STORE=true detected, removing store file before seeding")
		if err := os.Remove(cfg.Store.Path); err != nil && !os.IsNotExist(err) {
			log.Fatalf("Failed to remove store file: %v", err)
		}
	}

	storeClient, err := jsonfile.NewClient(cfg.Store.Path)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}

	userRepo := store.NewUserAdapter(storeClient)
	stationRepo := store.NewStationAdapter(storeClient)

	ctx := context.Background()
	now := time.Now().UTC()

	// 1. Seed admin account
	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}
	admin := &entities.User{
		ID:           uuid.New().String(),
		Name:         "Admin",
		Email:        "admin@chargepilot.local",
		PasswordHash: string(hash),
		Role:         entities.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		log.Printf("Failed to create admin user: %v", err)
	} else {
		log.Printf("Created admin user %s", admin.Email)
	}

	// 2. Seed stations along the Mumbai-Bangalore corridor
	stations := []*entities.Station{
		{Name: "Pune Supercharge Hub", Location: entities.Coordinates{Latitude: 18.5204, Longitude: 73.8567}, PowerKW: 120, Connectors: []string{"CCS2", "Type2"}, Pricing: "18 INR/kWh"},
		{Name: "Satara Highway Charge", Location: entities.Coordinates{Latitude: 17.6805, Longitude: 74.0183}, PowerKW: 60, Connectors: []string{"CCS2"}, Pricing: "16 INR/kWh"},
		{Name: "Kolhapur Green Point", Location: entities.Coordinates{Latitude: 16.7050, Longitude: 74.2433}, PowerKW: 50, Connectors: []string{"CCS2", "CHAdeMO"}, Pricing: "15 INR/kWh"},
		{Name: "Belgaum City Charge", Location: entities.Coordinates{Latitude: 15.8497, Longitude: 74.4977}, PowerKW: 30, Connectors: []string{"Type2"}, Pricing: "14 INR/kWh"},
		{Name: "Hubli Fast Charge", Location: entities.Coordinates{Latitude: 15.3647, Longitude: 75.1240}, PowerKW: 100, Connectors: []string{"CCS2"}, Pricing: "17 INR/kWh"},
		{Name: "Chitradurga Power Stop", Location: entities.Coordinates{Latitude: 14.2251, Longitude: 76.3980}, PowerKW: 60, Connectors: []string{"CCS2", "Type2"}, Pricing: "15 INR/kWh"},
		{Name: "Tumkur Charge Plaza", Location: entities.Coordinates{Latitude: 13.3392, Longitude: 77.1010}, PowerKW: 50, Connectors: []string{"CCS2"}, Pricing: "15 INR/kWh"},
	}

	for _, s := range stations {
		s.ID = uuid.New().String()
		s.HealthScore = 100
		s.Active = true
		s.CreatedAt = now
		s.UpdatedAt = now
		if err := stationRepo.Create(ctx, s); err != nil {
			log.Printf("Failed to create station %s: %v", s.Name, err)
		}
	}

	log.Printf("Seeded %d stations into %s", len(stations), cfg.Store.Path)
}
