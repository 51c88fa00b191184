package models

import "time"

// MaxCartQuantity is the largest quantity a single cart line may hold.
const MaxCartQuantity = 99

// CartItem is a product a user has selected but not yet ordered.
// Brand, model, price and image are copied from the product when it is added.
type CartItem struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"user_id" gorm:"index;type:varchar(36)"`
	ProductID string    `json:"product_id" gorm:"type:varchar(36)"`
	Brand     string    `json:"brand"`
	Model     string    `json:"model"`
	Price     float64   `json:"price"`
	Image     string    `json:"image"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderItem converts the cart line into the snapshot stored on an order.
func (i CartItem) OrderItem() OrderItem {
	return OrderItem{
		ProductID: i.ProductID,
		Name:      i.Brand + " " + i.Model,
		Brand:     i.Brand,
		Model:     i.Model,
		ImageURL:  i.Image,
		Price:     i.Price,
		Quantity:  i.Quantity,
	}
}
