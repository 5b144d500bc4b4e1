package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// PostgresLocalStore implementa LocalStore sobre a tabela local_store.
type PostgresLocalStore struct {
	db *sql.DB
}

// NewPostgresLocalStore cria um PostgresLocalStore.
func NewPostgresLocalStore(db *sql.DB) *PostgresLocalStore {
	return &PostgresLocalStore{db: db}
}

// Get retorna o valor JSON da chave. Retorna nil quando a chave não existe.
func (s *PostgresLocalStore) Get(ctx context.Context, usuarioID, chave string) ([]byte, error) {
	var valor []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT valor FROM local_store WHERE usuario_id = $1 AND chave = $2`,
		usuarioID, chave,
	).Scan(&valor)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("falha ao ler a chave %q: %w", chave, err)
	}

	return valor, nil
}

// Set grava o valor JSON da chave, sobrescrevendo o anterior por inteiro.
func (s *PostgresLocalStore) Set(ctx context.Context, usuarioID, chave string, valor []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO local_store (usuario_id, chave, valor, atualizado_em)
		 VALUES ($1, $2, $3, now())
		 ON CONFLICT (usuario_id, chave)
		 DO UPDATE SET valor = EXCLUDED.valor, atualizado_em = now()`,
		usuarioID, chave, valor,
	)
	if err != nil {
		return fmt.Errorf("falha ao gravar a chave %q: %w", chave, err)
	}
	return nil
}

// Delete remove a chave. Não é erro remover chave inexistente.
func (s *PostgresLocalStore) Delete(ctx context.Context, usuarioID, chave string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM local_store WHERE usuario_id = $1 AND chave = $2`,
		usuarioID, chave,
	)
	if err != nil {
		return fmt.Errorf("falha ao remover a chave %q: %w", chave, err)
	}
	return nil
}

// ListUsuariosComChave retorna os usuários que possuem a chave gravada.
func (s *PostgresLocalStore) ListUsuariosComChave(ctx context.Context, chave string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT usuario_id FROM local_store WHERE chave = $1 ORDER BY usuario_id`,
		chave,
	)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar usuários da chave %q: %w", chave, err)
	}
	defer rows.Close()

	var usuarios []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("falha ao ler usuário da chave %q: %w", chave, err)
		}
		usuarios = append(usuarios, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("falha ao percorrer usuários da chave %q: %w", chave, err)
	}

	return usuarios, nil
}
