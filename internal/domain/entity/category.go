package entity

import "time"

// Category representa una categoría de productos (ej: Boissons, Alimentaire).
// El nombre es único por boutique.
type Category struct {
	ID           string
	ShopID       string
	Name         string
	Description  string
	IsActive     bool // visible en la página de inicio de la tienda
	DisplayOrder int  // orden ascendente
	CreatedAt    time.Time
}
