package dto

type Filter struct {
	Page     int    `query:"page"`
	PerPage  int    `query:"per_page"`
	Q        string `query:"q"`
	Category string `query:"category"`
}
