package dto

type ProductResponse struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	SellerID    int64    `json:"seller_id"`
	Images      []string `json:"images"`
	CreatedAt   int64    `json:"created_at"`
}

type ProductListResponse struct {
	Products      []ProductResponse `json:"products"`
	TotalProducts int64             `json:"total_products"`
	CurrentPage   int               `json:"current_page"`
	TotalPages    int               `json:"total_pages"`
	HasNext       bool              `json:"has_next"`
	HasPrev       bool              `json:"has_prev"`
}
