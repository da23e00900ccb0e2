package dto

type AddCartItemRequest struct {
	ProductID int64  `json:"productId"`
	Quantity  *int64 `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity *int64 `json:"quantity"`
}
