package usecase_test

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia. Conservan el orden de
// inserción para que los listados sean deterministas.

type fakeCategoryRepo struct {
	items []*entity.Category
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error {
	r.items = append(r.items, c)
	return nil
}

func (r *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	for _, c := range r.items {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) Update(c *entity.Category) error {
	for i, it := range r.items {
		if it.ID == c.ID {
			r.items[i] = c
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeCategoryRepo) List(params repository.ListParams) ([]*entity.Category, int, error) {
	return page(r.items, params), len(r.items), nil
}

func (r *fakeCategoryRepo) Delete(id string) error {
	for i, it := range r.items {
		if it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeCategoryRepo) DeleteMany(ids []string) (int64, error) {
	var deleted int64
	for _, id := range ids {
		if err := r.Delete(id); err == nil {
			deleted++
		}
	}
	return deleted, nil
}

type fakeProductRepo struct {
	items []*entity.Product
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.items = append(r.items, p)
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range r.items {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	for i, it := range r.items {
		if it.ID == p.ID {
			r.items[i] = p
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeProductRepo) List(filter repository.ProductFilter, params repository.ListParams) ([]*entity.Product, int, error) {
	var matched []*entity.Product
	for _, p := range r.items {
		if filter.CategoryID != "" && p.CategoryID != filter.CategoryID {
			continue
		}
		if filter.OnlyActive && !p.Status {
			continue
		}
		matched = append(matched, p)
	}
	return page(matched, params), len(matched), nil
}

func (r *fakeProductRepo) Delete(id string) error {
	for i, it := range r.items {
		if it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeProductRepo) DeleteMany(ids []string) (int64, error) {
	var deleted int64
	for _, id := range ids {
		if err := r.Delete(id); err == nil {
			deleted++
		}
	}
	return deleted, nil
}

type fakeFavoriteRepo struct {
	items []*entity.Favorite
}

func (r *fakeFavoriteRepo) Create(f *entity.Favorite) error {
	for _, it := range r.items {
		if it.UserID == f.UserID && it.ProductID == f.ProductID {
			return domain.ErrDuplicate
		}
	}
	r.items = append(r.items, f)
	return nil
}

func (r *fakeFavoriteRepo) GetByID(id string) (*entity.Favorite, error) {
	for _, f := range r.items {
		if f.ID == id {
			return f, nil
		}
	}
	return nil, nil
}

func (r *fakeFavoriteRepo) GetByUserAndProduct(userID, productID string) (*entity.Favorite, error) {
	for _, f := range r.items {
		if f.UserID == userID && f.ProductID == productID {
			return f, nil
		}
	}
	return nil, nil
}

func (r *fakeFavoriteRepo) ListByUser(userID string) ([]*entity.Favorite, error) {
	var out []*entity.Favorite
	for _, f := range r.items {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeFavoriteRepo) CountByUser(userID string) (int, error) {
	list, _ := r.ListByUser(userID)
	return len(list), nil
}

func (r *fakeFavoriteRepo) Delete(id string) error {
	for i, f := range r.items {
		if f.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeOrderRepo struct {
	items []*entity.Order
}

func (r *fakeOrderRepo) Create(o *entity.Order) error {
	r.items = append(r.items, o)
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	for _, o := range r.items {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) UpdateStatus(id, status string) error {
	for _, o := range r.items {
		if o.ID == id {
			o.Status = status
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeOrderRepo) List(filter repository.OrderFilter, params repository.ListParams) ([]*entity.Order, int, error) {
	var matched []*entity.Order
	for _, o := range r.items {
		if filter.UserID != "" && o.UserID != filter.UserID {
			continue
		}
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		matched = append(matched, o)
	}
	return page(matched, params), len(matched), nil
}

func (r *fakeOrderRepo) CountByStatus(userID string) (map[string]int, error) {
	out := make(map[string]int)
	for _, o := range r.items {
		if o.UserID == userID {
			out[o.Status]++
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) Delete(id string) error {
	for i, o := range r.items {
		if o.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeOrderRepo) DeleteMany(ids []string) (int64, error) {
	var deleted int64
	for _, id := range ids {
		if err := r.Delete(id); err == nil {
			deleted++
		}
	}
	return deleted, nil
}

type fakeUserRepo struct {
	items []*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, it := range r.items {
		if it.Phone == u.Phone {
			return domain.ErrPhoneAlreadyExists
		}
	}
	r.items = append(r.items, u)
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.items {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByPhone(phone string) (*entity.User, error) {
	for _, u := range r.items {
		if u.Phone == phone {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	for i, it := range r.items {
		if it.ID == u.ID {
			r.items[i] = u
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeUserRepo) List(params repository.ListParams) ([]*entity.User, int, error) {
	return page(r.items, params), len(r.items), nil
}

func (r *fakeUserRepo) Delete(id string) error {
	for i, u := range r.items {
		if u.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeUserRepo) DeleteMany(ids []string) (int64, error) {
	var deleted int64
	for _, id := range ids {
		if err := r.Delete(id); err == nil {
			deleted++
		}
	}
	return deleted, nil
}

type fakeLogRepo struct {
	items []*entity.OperationLog
}

func (r *fakeLogRepo) Create(l *entity.OperationLog) error {
	r.items = append(r.items, l)
	return nil
}

func (r *fakeLogRepo) List(params repository.ListParams) ([]*entity.OperationLog, int, error) {
	return page(r.items, params), len(r.items), nil
}

func (r *fakeLogRepo) DeleteMany(ids []string) (int64, error) {
	var deleted int64
	for _, id := range ids {
		for i, l := range r.items {
			if l.ID == id {
				r.items = append(r.items[:i], r.items[i+1:]...)
				deleted++
				break
			}
		}
	}
	return deleted, nil
}

// fakeTxRunner ejecuta el callback directamente sobre los fakes, sin
// transacción real.
type fakeTxRunner struct {
	orders   *fakeOrderRepo
	products *fakeProductRepo
	logs     *fakeLogRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	logRepo repository.OperationLogRepository,
) error) error {
	return fn(r.orders, r.products, r.logs)
}

// fakeReceiptGen devuelve bytes fijos en lugar de un PDF real.
type fakeReceiptGen struct{}

func (fakeReceiptGen) GenerateOrderReceipt(*entity.Order, *entity.Product, *entity.User) ([]byte, error) {
	return []byte("%PDF-fake"), nil
}

// page aplica offset y límite de ListParams a un slice.
func page[T any](items []T, params repository.ListParams) []T {
	offset := params.Offset()
	if offset >= len(items) {
		return nil
	}
	end := offset + params.PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
