package httpresp

import "github.com/gin-gonic/gin"

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func List[T any](c *gin.Context, data []T) {
	c.JSON(200, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}

// Success é o envelope do formulário público de contato.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func Success(c *gin.Context, message string) {
	c.JSON(200, SuccessResponse{
		Success: true,
		Message: message,
	})
}
