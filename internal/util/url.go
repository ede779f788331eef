// Package util содержит генератор коротких кодов и работу с адресами.
package util

import "regexp"

var schemeRe = regexp.MustCompile(`(?i)^https?://`)

// EnsureScheme добавляет https:// к адресу без схемы http или https.
func EnsureScheme(raw string) string {
	if schemeRe.MatchString(raw) {
		return raw
	}
	return "https://" + raw
}

// ShortLink собирает адрес перехода по коду для ответа клиенту.
func ShortLink(baseURL, code string) string {
	return baseURL + "/urls/redirect?code=" + code
}
