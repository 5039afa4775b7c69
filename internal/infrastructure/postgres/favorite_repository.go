package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.FavoriteRepository = (*FavoriteRepo)(nil)

// FavoriteRepo implementación del puerto FavoriteRepository sobre PostgreSQL (usable con pool o tx).
type FavoriteRepo struct {
	q Querier
}

// NewFavoriteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFavoriteRepository(q Querier) *FavoriteRepo {
	return &FavoriteRepo{q: q}
}

// Create persiste un favorito. Devuelve ErrDuplicate si el par (user, product) ya existe.
func (r *FavoriteRepo) Create(favorite *entity.Favorite) error {
	query := `
		INSERT INTO favorites (id, user_id, product_id, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		favorite.ID, favorite.UserID, favorite.ProductID, favorite.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert favorite: %w", err)
	}
	return nil
}

// GetByID obtiene un favorito por ID.
func (r *FavoriteRepo) GetByID(id string) (*entity.Favorite, error) {
	return r.getOne(`WHERE id = $1`, id)
}

// GetByUserAndProduct obtiene el favorito de un usuario sobre un producto, si existe.
func (r *FavoriteRepo) GetByUserAndProduct(userID, productID string) (*entity.Favorite, error) {
	query := `
		SELECT id, user_id, product_id, created_at
		FROM favorites WHERE user_id = $1 AND product_id = $2`
	var f entity.Favorite
	err := r.q.QueryRow(context.Background(), query, userID, productID).Scan(
		&f.ID, &f.UserID, &f.ProductID, &f.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get favorite: %w", err)
	}
	return &f, nil
}

func (r *FavoriteRepo) getOne(where string, arg any) (*entity.Favorite, error) {
	query := `SELECT id, user_id, product_id, created_at FROM favorites ` + where
	var f entity.Favorite
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&f.ID, &f.UserID, &f.ProductID, &f.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get favorite: %w", err)
	}
	return &f, nil
}

// ListByUser lista los favoritos de un usuario, más reciente primero.
func (r *FavoriteRepo) ListByUser(userID string) ([]*entity.Favorite, error) {
	query := `
		SELECT id, user_id, product_id, created_at
		FROM favorites WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	defer rows.Close()

	var list []*entity.Favorite
	for rows.Next() {
		var f entity.Favorite
		if err := rows.Scan(&f.ID, &f.UserID, &f.ProductID, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan favorite: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// CountByUser cuenta los favoritos de un usuario.
func (r *FavoriteRepo) CountByUser(userID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM favorites WHERE user_id = $1`, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count favorites: %w", err)
	}
	return n, nil
}

// Delete elimina un favorito por ID. Devuelve ErrNotFound si ya no existe.
func (r *FavoriteRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM favorites WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
