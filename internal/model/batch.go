package model

// BatchShortenRequest пакетный запрос на сокращение URL.
type BatchShortenRequest struct {
	URLs []ShortenRequest `json:"urls" validate:"required,min=1,dive"`
}

// BatchShortenResponse ответ на пакетный запрос.
type BatchShortenResponse struct {
	URLs []ShortenResponse `json:"urls"`
}
