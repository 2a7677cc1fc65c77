package entity

type Order struct {
	ID        int    `json:"id"`
	UserID    int    `json:"user_id"`
	ProductID int    `json:"product_id"`
	OrderDate string `json:"order_date"`
	Status    string `json:"status"` // e.g., "created", "paid", "cancelled"
}

// OrderRequest is the payload accepted by POST /orders and PUT /orders/:id.
type OrderRequest struct {
	UserID    int    `json:"user_id" validate:"required,gt=0"`
	ProductID int    `json:"product_id" validate:"required,gt=0"`
	OrderDate string `json:"order_date" validate:"required"`
	Status    string `json:"status" validate:"required,max=20"`
}

// NewOrder builds an unsaved order from a request.
func NewOrder(req OrderRequest) *Order {
	o := &Order{}
	o.Replace(req)
	return o
}

// Replace overwrites every mutable field of the order with the request values.
func (o *Order) Replace(req OrderRequest) {
	o.UserID = req.UserID
	o.ProductID = req.ProductID
	o.OrderDate = req.OrderDate
	o.Status = req.Status
}

/*
Mysql Table

CREATE TABLE orders (
	id INT AUTO_INCREMENT PRIMARY KEY,
	user_id INT NOT NULL,
	product_id INT NOT NULL,
	order_date VARCHAR(64) NOT NULL,
	status VARCHAR(20) NOT NULL
);

user_id and product_id are not declared as foreign keys.
*/
