package model

import (
	"bytes"
	"encoding/json"
)

// Nullable поле с тремя состояниями для PATCH-запросов:
// отсутствует (Set=false), явный null (Set=true, Valid=false), значение (Set=true, Valid=true).
type Nullable[T any] struct {
	Value T
	Set   bool
	Valid bool
}

// NullableOf возвращает заданное значение.
func NullableOf[T any](v T) Nullable[T] {
	return Nullable[T]{Value: v, Set: true, Valid: true}
}

// Null возвращает явно очищенное значение.
func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

// UnmarshalJSON вызывается только для присутствующих ключей, поэтому Set всегда true.
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		n.Value = zero
		n.Valid = false
		return nil
	}
	if err := json.Unmarshal(data, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// MarshalJSON пишет null для отсутствующего и очищенного значения.
func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// Ptr возвращает указатель на значение или nil.
func (n Nullable[T]) Ptr() *T {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}
