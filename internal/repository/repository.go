package repository

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrUserAlreadyExists       = errors.New("user already exists")
	ErrWrongPassword           = errors.New("wrong password")
	ErrItemNotFound            = errors.New("item not found")
	ErrTransactionNotFound     = errors.New("transaction not found")
	ErrTransactionHasPurchases = errors.New("transaction has purchased items")
)
