package services

import (
	"errors"
	"fmt"
)

// business errors — controller map เป็น HTTP status ที่ boundary
var (
	// ราคาที่ client ส่งมาไม่ตรงกับที่คำนวณจาก catalog (HTTP 402)
	ErrPriceMismatch = errors.New("the total cost isn't correct")

	ErrEmptyOrder = errors.New("dishes are required")

	ErrWrongPassword = errors.New("wrong password")
)

// NotFoundError — entity ที่อ้างถึงไม่มีอยู่ (HTTP 404)
type NotFoundError struct {
	Entity string
	Name   string
}

func (e *NotFoundError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s with name '%s' not found", e.Entity, e.Name)
	}
	return fmt.Sprintf("%s not found", e.Entity)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
