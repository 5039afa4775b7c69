package entity

import "time"

// OperationLog registra una mutación hecha desde el back office:
// quién, qué ruta, con qué resultado.
type OperationLog struct {
	ID        string
	UserID    string
	UserName  string
	Method    string // POST, PUT, DELETE
	Path      string
	Status    int // código HTTP de la respuesta
	Detail    string
	CreatedAt time.Time
}
