// seed_catalog carga en PostgreSQL el catálogo de demostración y los clientes de prueba
// usados por el verificador de identidad (BINDING_VERIFIER=postgres).
//
// Uso: go run ./cmd/seed_catalog
// Lee la misma configuración que la API (DATABASE_URL o DB_HOST, DB_PORT, ...).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/nongyiding-api/internal/domain/entity"
	"github.com/jhoicas/nongyiding-api/internal/infrastructure/memory"
	"github.com/jhoicas/nongyiding-api/internal/infrastructure/postgres"
	"github.com/jhoicas/nongyiding-api/pkg/config"
	"github.com/jhoicas/nongyiding-api/pkg/logger"
)

type demoCustomer struct {
	id    string
	phone string
	name  string
	role  entity.Role
}

var demoCustomers = []demoCustomer{
	{id: "CUST001", phone: "0912345678", name: "王小明老闆", role: entity.RoleCustomer},
	{id: "ADMIN-VIP", phone: "0912345678", name: "陳經理", role: entity.RoleAdmin},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if !cfg.DB.Enabled() {
		fmt.Fprintln(os.Stderr, "Defina DATABASE_URL o DB_HOST")
		os.Exit(1)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.Level})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	products := memory.SeedProducts()
	err = postgres.NewTxRunner(pool).Run(ctx, func(catalog *postgres.CatalogRepo, customers *postgres.CustomerRegistry) error {
		for i, p := range products {
			if err := catalog.Upsert(ctx, p, i+1); err != nil {
				return err
			}
		}
		for _, c := range demoCustomers {
			if err := customers.Register(ctx, c.id, c.phone, c.name, c.role); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal().Err(err).Msg("sembrar catálogo")
	}

	log.Info().
		Int("products", len(products)).
		Int("customers", len(demoCustomers)).
		Msg("catálogo y clientes de prueba cargados")
}
