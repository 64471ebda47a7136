package domain

// User account states.
const (
	UserPending  = "PENDING"
	UserActive   = "ACTIVE"
	UserInactive = "INACTIVE"
	UserBanned   = "BANNED"
)

// Ledger transaction types.
const (
	TxTypeTopup    = "TOPUP"
	TxTypeWithdraw = "WITHDRAW"
)

// Payment method kinds.
const (
	PaymentMethodBank    = "BANK"
	PaymentMethodEwallet = "EWALLET"
)
