package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// TxRunner puerto para ejecutar escrituras atómicas (orden + registro de operación).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
		logRepo repository.OperationLogRepository,
	) error) error
}

// ReceiptGenerator puerto para generar el comprobante PDF de una orden.
type ReceiptGenerator interface {
	GenerateOrderReceipt(order *entity.Order, product *entity.Product, buyer *entity.User) ([]byte, error)
}

// OrderUseCase casos de uso de órdenes: colocación, seguimiento, transición
// de estados y comprobante.
type OrderUseCase struct {
	orderRepo repository.OrderRepository
	prodRepo  repository.ProductRepository
	userRepo  repository.UserRepository
	tx        TxRunner
	receipts  ReceiptGenerator
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	prodRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	tx TxRunner,
	receipts ReceiptGenerator,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo: orderRepo,
		prodRepo:  prodRepo,
		userRepo:  userRepo,
		tx:        tx,
		receipts:  receipts,
	}
}

// Place coloca una orden para el usuario de la sesión. La orden nace en PAID
// y se escribe junto con su registro de operación en una sola transacción.
func (uc *OrderUseCase) Place(userID, userName string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.Quantity < 1 {
		return nil, fmt.Errorf("%w: la cantidad debe ser al menos 1", domain.ErrInvalidInput)
	}

	now := time.Now()
	order := &entity.Order{
		ID:        uuid.New().String(),
		UserID:    userID,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Status:    entity.OrderPaid,
		Remark:    in.Remark,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := uc.tx.Run(context.Background(), func(
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
		logRepo repository.OperationLogRepository,
	) error {
		product, err := productRepo.GetByID(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil || !product.Status {
			return fmt.Errorf("%w: producto no disponible", domain.ErrNotFound)
		}
		order.Amount = product.Price.Mul(decimal.NewFromInt(int64(in.Quantity)))

		if err := orderRepo.Create(order); err != nil {
			return err
		}
		return logRepo.Create(&entity.OperationLog{
			ID:        uuid.New().String(),
			UserID:    userID,
			UserName:  userName,
			Method:    "POST",
			Path:      "/api/orders",
			Status:    201,
			Detail:    fmt.Sprintf("orden %s: %s x%d", order.ID, product.Name, in.Quantity),
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetByID obtiene una orden. Un comprador solo puede ver las suyas;
// requesterID vacío omite esa verificación (back office).
func (uc *OrderUseCase) GetByID(id, requesterID string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	if requesterID != "" && order.UserID != requesterID {
		return nil, domain.ErrForbidden
	}
	return toOrderResponse(order), nil
}

// List lista órdenes con filtros, paginación y orden del lado del servidor.
// userID vacío lista las de todos los usuarios (back office).
func (uc *OrderUseCase) List(userID string, in dto.OrderListRequest) (*dto.OrderListResponse, error) {
	in.Defaults()
	filter := repository.OrderFilter{UserID: userID, Status: in.Status}
	list, total, err := uc.orderRepo.List(filter, listParams(in.PageRequest))
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Data:       items,
		Pagination: dto.NewPageResponse(in.Page, in.PageSize, total),
	}, nil
}

// UpdateStatus cambia el estado de una orden validando la transición.
func (uc *OrderUseCase) UpdateStatus(id string, in dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	if !entity.CanTransition(order.Status, in.Status) {
		return nil, fmt.Errorf("%w: transición %s -> %s no permitida", domain.ErrConflict, order.Status, in.Status)
	}
	if err := uc.orderRepo.UpdateStatus(id, in.Status); err != nil {
		return nil, err
	}
	order.Status = in.Status
	order.UpdatedAt = time.Now()
	return toOrderResponse(order), nil
}

// Receipt genera el comprobante PDF de una orden. Aplica la misma regla de
// propiedad que GetByID.
func (uc *OrderUseCase) Receipt(id, requesterID string) ([]byte, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if requesterID != "" && order.UserID != requesterID {
		return nil, domain.ErrForbidden
	}
	product, err := uc.prodRepo.GetByID(order.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		product = &entity.Product{ID: order.ProductID, Name: "(producto eliminado)"}
	}
	buyer, err := uc.userRepo.GetByID(order.UserID)
	if err != nil {
		return nil, err
	}
	if buyer == nil {
		return nil, domain.ErrUserNotFound
	}
	return uc.receipts.GenerateOrderReceipt(order, product, buyer)
}

// Delete elimina una orden por ID. ErrNotFound si ya no existe.
func (uc *OrderUseCase) Delete(id string) error {
	return uc.orderRepo.Delete(id)
}

// DeleteMany elimina las órdenes seleccionadas y devuelve cuántas borró.
func (uc *OrderUseCase) DeleteMany(ids []string) (int64, error) {
	return uc.orderRepo.DeleteMany(ids)
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	return &dto.OrderResponse{
		ID:        o.ID,
		UserID:    o.UserID,
		ProductID: o.ProductID,
		Quantity:  o.Quantity,
		Amount:    o.Amount,
		Status:    o.Status,
		Remark:    o.Remark,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
