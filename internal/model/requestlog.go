package model

import "time"

// RequestLog запись журнала входящих запросов. Только добавление.
type RequestLog struct {
	Method    string
	URL       string
	UserAgent string
	IP        string
	Timestamp time.Time
}
