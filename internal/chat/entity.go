package chat

import "github.com/saulo-duarte/neurobloom-api/internal/session"

type SendRequest struct {
	Message string `json:"message"`
}

type SendResponse struct {
	Reply string            `json:"reply"`
	Chat  []session.Message `json:"chat"`
}

type HistoryResponse struct {
	Chat []session.Message `json:"chat"`
}
