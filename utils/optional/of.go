package optional

import (
	"bytes"
	"database/sql/driver"

	jsoniter "github.com/json-iterator/go"
)

// Of 値が設定されているかどうかを保持する汎用オプショナル型
type Of[T any] struct {
	V     T
	Valid bool
}

// From 値が設定されたOfを返します
func From[T any](v T) Of[T] {
	return New(v, true)
}

// New Ofを生成します
func New[T any](v T, valid bool) Of[T] {
	return Of[T]{V: v, Valid: valid}
}

// ValueOr 値が設定されていればその値を、そうでなければdefを返します
func (o Of[T]) ValueOr(def T) T {
	if o.Valid {
		return o.V
	}
	return def
}

// Value implements driver.Valuer interface.
// 値が設定されていなければnilを返します
func (o Of[T]) Value() (driver.Value, error) {
	if !o.Valid {
		return nil, nil
	}
	return o.V, nil
}

// MarshalYAML implements yaml.Marshaler interface.
func (o Of[T]) MarshalYAML() (interface{}, error) {
	if !o.Valid {
		return nil, nil
	}
	return o.V, nil
}

func (o *Of[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		var zero T
		o.V, o.Valid = zero, false
		return nil
	}

	if err := jsoniter.ConfigFastest.Unmarshal(data, &o.V); err != nil {
		return err
	}

	o.Valid = true
	return nil
}

func (o Of[T]) MarshalJSON() ([]byte, error) {
	if o.Valid {
		return jsoniter.ConfigFastest.Marshal(o.V)
	}
	return []byte("null"), nil
}
