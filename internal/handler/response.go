package handler

import "github.com/jwalitptl/hospital-admin/internal/model"

type Response struct {
	Status  string        `json:"status"`
	Data    interface{}   `json:"data,omitempty"`
	Flashes []model.Flash `json:"flashes,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Status: "success",
		Data:   data,
	}
}
