package entity

import (
	"fmt"
	"time"
)

var _ Item[StockRecord] = StockRecord{}

// StockRecord registro simple de inventario con fecha de ingreso (bitácora exportable a archivo).
type StockRecord struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	DateAdded time.Time `json:"date_added"`
}

// NewStockRecord construye un registro.
func NewStockRecord(id int, name string, quantity int, dateAdded time.Time) StockRecord {
	return StockRecord{ID: id, Name: name, Quantity: quantity, DateAdded: dateAdded}
}

func (r StockRecord) ItemID() int       { return r.ID }
func (r StockRecord) ItemName() string  { return r.Name }
func (r StockRecord) ItemQuantity() int { return r.Quantity }
func (r StockRecord) Kind() string      { return KindRecord }

// WithQuantity devuelve una copia con la nueva cantidad.
func (r StockRecord) WithQuantity(quantity int) StockRecord {
	r.Quantity = quantity
	return r
}

func (r StockRecord) String() string {
	return fmt.Sprintf("ID: %d, Name: %s, Quantity: %d, Date Added: %s",
		r.ID, r.Name, r.Quantity, r.DateAdded.Format(time.DateTime))
}
