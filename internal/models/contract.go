package models

type Contract struct {
	ID         int64          `json:"id"`
	DateSigned string         `json:"date_signed"` // YYYY-MM-DD
	Royalty    float64        `json:"royalty_rate"` // percent, 0..100
	Author     ContractAuthor `json:"author"`
}

type ContractAuthor struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
