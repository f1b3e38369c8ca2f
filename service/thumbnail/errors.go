package thumbnail

import (
	"errors"
	"fmt"
)

// ErrInvalidState サイズとスケールのどちらも設定されていません
var ErrInvalidState = errors.New("neither the size nor the scaling factor has been set")

// ArgumentError 引数の値が不正です
type ArgumentError struct {
	FieldName string
	Message   string
}

// ArgError 引数エラーを生成します
func ArgError(field, message string) *ArgumentError {
	return &ArgumentError{FieldName: field, Message: message}
}

// Error implements error interface
func (ae *ArgumentError) Error() string {
	return ae.Message
}

// IsArgError 引数エラーかどうか
func IsArgError(err error) bool {
	var ae *ArgumentError
	return errors.As(err, &ae)
}

// ReferenceError 必須の参照がnilです
type ReferenceError struct {
	FieldName string
}

// RefError 参照エラーを生成します
func RefError(field string) *ReferenceError {
	return &ReferenceError{FieldName: field}
}

// Error implements error interface
func (re *ReferenceError) Error() string {
	return fmt.Sprintf("%s is nil", re.FieldName)
}

// IsRefError 参照エラーかどうか
func IsRefError(err error) bool {
	var re *ReferenceError
	return errors.As(err, &re)
}
