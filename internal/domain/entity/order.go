package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de Order. El flujo normal es PAID -> CHECKED -> DELIVERED -> COMPLETED;
// CANCELLED solo es alcanzable desde PAID o CHECKED.
const (
	OrderPaid      = "PAID"
	OrderChecked   = "CHECKED"
	OrderDelivered = "DELIVERED"
	OrderCompleted = "COMPLETED"
	OrderCancelled = "CANCELLED"
)

// OrderStatuses conjunto cerrado de estados, en orden de flujo.
var OrderStatuses = []string{OrderPaid, OrderChecked, OrderDelivered, OrderCompleted, OrderCancelled}

// CanTransition valida una transición de estado de la orden.
func CanTransition(from, to string) bool {
	switch to {
	case OrderChecked:
		return from == OrderPaid
	case OrderDelivered:
		return from == OrderChecked
	case OrderCompleted:
		return from == OrderDelivered
	case OrderCancelled:
		return from == OrderPaid || from == OrderChecked
	}
	return false
}

// Order representa un pedido de un producto por un usuario.
// Las ediciones concurrentes se resuelven last-write-wins en la DB.
type Order struct {
	ID        string
	UserID    string
	ProductID string
	Quantity  int
	Amount    decimal.Decimal // precio unitario * cantidad al momento de la compra
	Status    string
	Remark    string // nota del comprador
	CreatedAt time.Time
	UpdatedAt time.Time
}
