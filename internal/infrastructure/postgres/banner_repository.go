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

var _ repository.BannerRepository = (*BannerRepo)(nil)

var bannerSortable = map[string]string{
	"title":     "title",
	"sort":      "sort",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

// BannerRepo implementación del puerto BannerRepository sobre PostgreSQL (usable con pool o tx).
type BannerRepo struct {
	q Querier
}

// NewBannerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBannerRepository(q Querier) *BannerRepo {
	return &BannerRepo{q: q}
}

// Create persiste un nuevo banner.
func (r *BannerRepo) Create(banner *entity.Banner) error {
	query := `
		INSERT INTO banners (id, title, image, link, sort, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		banner.ID, banner.Title, banner.Image, banner.Link, banner.Sort, banner.Status,
		banner.CreatedAt, banner.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert banner: %w", err)
	}
	return nil
}

// GetByID obtiene un banner por ID.
func (r *BannerRepo) GetByID(id string) (*entity.Banner, error) {
	query := `
		SELECT id, title, image, link, sort, status, created_at, updated_at
		FROM banners WHERE id = $1`
	var b entity.Banner
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.Title, &b.Image, &b.Link, &b.Sort, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get banner: %w", err)
	}
	return &b, nil
}

// Update actualiza un banner existente.
func (r *BannerRepo) Update(banner *entity.Banner) error {
	query := `
		UPDATE banners SET title = $2, image = $3, link = $4, sort = $5, status = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		banner.ID, banner.Title, banner.Image, banner.Link, banner.Sort, banner.Status, banner.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update banner: %w", err)
	}
	return nil
}

// List lista banners con paginación y orden del lado del servidor.
func (r *BannerRepo) List(params repository.ListParams) ([]*entity.Banner, int, error) {
	var total int
	if err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM banners`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count banners: %w", err)
	}

	query := `
		SELECT id, title, image, link, sort, status, created_at, updated_at
		FROM banners ` + orderClause(params, bannerSortable) + ` LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list banners: %w", err)
	}
	defer rows.Close()
	return scanBanners(rows, total)
}

// ListActive devuelve los banners visibles de la portada, ordenados por sort.
func (r *BannerRepo) ListActive() ([]*entity.Banner, error) {
	query := `
		SELECT id, title, image, link, sort, status, created_at, updated_at
		FROM banners WHERE status = true ORDER BY sort ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list active banners: %w", err)
	}
	defer rows.Close()
	list, _, err := scanBanners(rows, 0)
	return list, err
}

func scanBanners(rows pgx.Rows, total int) ([]*entity.Banner, int, error) {
	var list []*entity.Banner
	for rows.Next() {
		var b entity.Banner
		if err := rows.Scan(&b.ID, &b.Title, &b.Image, &b.Link, &b.Sort, &b.Status,
			&b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan banner: %w", err)
		}
		list = append(list, &b)
	}
	return list, total, rows.Err()
}

// Delete elimina un banner por ID. Devuelve ErrNotFound si ya no existe.
func (r *BannerRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM banners WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete banner: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteMany elimina los banners con los IDs dados y devuelve cuántos borró.
func (r *BannerRepo) DeleteMany(ids []string) (int64, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM banners WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, fmt.Errorf("delete banners: %w", err)
	}
	return cmd.RowsAffected(), nil
}
