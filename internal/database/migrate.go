// Package database provê a conexão com o banco e a gestão de migrações.
package database

import (
	"embed"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// NewMigrator cria a instância do migrate para executar migrações.
// databaseURL é a URL de conexão com o PostgreSQL.
func NewMigrator(databaseURL string) (*migrate.Migrate, error) {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("falha ao criar a fonte de migrações: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("falha ao criar o migrator: %w", err)
	}

	return m, nil
}

// RunMigrations aplica todas as migrações pendentes.
// Retorna sem erro quando o esquema já está atualizado.
func RunMigrations(databaseURL string) error {
	m, err := NewMigrator(databaseURL)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("falha ao executar as migrações: %w", err)
	}

	return nil
}
