package models

// Result is the tagged outcome returned by every service operation that can
// fail: Ok carries data, Err carries a human-readable message. Services never
// panic past their boundary; callers branch on Success.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func Ok[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

func Err[T any](msg string) Result[T] {
	return Result[T]{Success: false, Error: msg}
}
