package models

import "errors"

var (
	ErrWalletNotFound        = errors.New("wallet not found")
	ErrInsufficientFunds     = errors.New("insufficient funds")
	ErrRecipientNotFound     = errors.New("recipient not found")
	ErrInvalidAccountID      = errors.New("invalid recipient identifier")
	ErrSelfTransfer          = errors.New("cannot transfer to your own account")
	ErrPinNotSet             = errors.New("withdrawal pin not set")
	ErrPinMismatch           = errors.New("incorrect withdrawal pin")
	ErrServiceNotFound       = errors.New("service not found")
	ErrCurrencyNotFound      = errors.New("currency not available")
	ErrSearchRateLimited     = errors.New("too many recipient lookups, try again later")
	ErrBankAccountNotFound   = errors.New("bank account not found")
	ErrBankAccountUnverified = errors.New("bank account not verified")
	ErrTransferLimitExceeded = errors.New("amount exceeds single transfer limit")
	ErrPaymentNotCompleted   = errors.New("payment was not completed")
)
