package model

// WebResponse is the success envelope wrapped around every API response.
// Failures are written as {"errors": ...} by the error middleware.
type WebResponse[T any] struct {
	Data   T       `json:"data"`
	Paging *Paging `json:"paging,omitempty"`
}

type ErrorResponse struct {
	Errors any `json:"errors"`
}

type Paging struct {
	CurrentPage int `json:"current_page"`
	Size        int `json:"size"`
	TotalPage   int `json:"total_page"`
}

// TotalPages is ceil(total/size); zero rows yields zero pages
func TotalPages(total int64, size int) int {
	if size <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}
