package entity

type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// ProductRequest is the payload accepted by POST /products and PUT /products/:id.
type ProductRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
}

func NewProduct(req ProductRequest) *Product {
	p := &Product{}
	p.Replace(req)
	return p
}

// Replace overwrites every mutable field of the product.
func (p *Product) Replace(req ProductRequest) {
	p.Name = req.Name
	p.Description = req.Description
	p.Price = req.Price
}

/*
Schema MySQL for product table:
CREATE TABLE `products` (
  `id` int(11) NOT NULL AUTO_INCREMENT,
  `name` varchar(255) NOT NULL,
  `description` text NOT NULL,
  `price` double NOT NULL,
  PRIMARY KEY (`id`)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;
*/
