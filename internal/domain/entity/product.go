package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Images es una lista de URLs serializada como JSON en la DB.
type Product struct {
	ID          string
	CategoryID  string
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta
	Images      json.RawMessage // ["url", ...]
	Status      bool            // false = oculto en la tienda
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
