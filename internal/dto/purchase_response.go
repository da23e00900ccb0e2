package dto

type PurchaseItemResponse struct {
	ProductID       int64   `json:"product_id"`
	ProductTitle    string  `json:"product_title"`
	ProductImage    *string `json:"product_image"`
	Quantity        int64   `json:"quantity"`
	PriceAtPurchase float64 `json:"price_at_purchase"`
}

type PurchaseResponse struct {
	ID          int64                  `json:"id"`
	OrderNumber string                 `json:"order_number"`
	TotalAmount float64                `json:"total_amount"`
	CreatedAt   int64                  `json:"created_at"`
	Items       []PurchaseItemResponse `json:"items"`
}

type CheckoutResponse struct {
	PurchaseID      int64            `json:"purchaseId"`
	PurchaseDetails PurchaseResponse `json:"purchaseDetails"`
}
