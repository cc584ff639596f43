package models

type TransactionStatus string

const (
	TxCompleted TransactionStatus = "Completed"
	TxPending   TransactionStatus = "Pending"
	TxFailed    TransactionStatus = "Failed"
)

type Transaction struct {
	ID     int64             `json:"id"`
	Code   string            `json:"code"` // TRX-<n>
	Name   string            `json:"name"`
	Amount float64           `json:"amount"`
	Status TransactionStatus `json:"status"`
}

type StatCard struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Value int    `json:"value"`
	Icon  string `json:"icon"`
}

type Dashboard struct {
	Cards []StatCard `json:"cards"`
}
