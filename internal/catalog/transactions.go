package catalog

import (
	"strconv"

	"github.com/5w1tchy/nexus-admin/internal/listctl"
	"github.com/5w1tchy/nexus-admin/internal/models"
)

// The dashboard table is read-only and pages like a material table.
func transactionConfig(fold bool) listctl.Config[models.Transaction] {
	return listctl.Config[models.Transaction]{
		Name:  "transactions",
		ID:    func(t models.Transaction) int64 { return t.ID },
		SetID: func(t models.Transaction, id int64) models.Transaction { t.ID = id; return t },
		Fields: func(t models.Transaction) []string {
			return []string{t.Code, t.Name, strconv.FormatFloat(t.Amount, 'f', -1, 64), string(t.Status)}
		},
		FallbackID: 1,
		PageSizes:  []int{5, 10, 25, 100},
		Fold:       fold,
	}
}

// Dashboard builds the summary cards from the live collections.
func (c *Catalog) Dashboard() models.Dashboard {
	var revenue float64
	failed := 0
	for _, t := range c.Transactions.Items() {
		switch t.Status {
		case models.TxCompleted:
			revenue += t.Amount
		case models.TxFailed:
			failed++
		}
	}
	return models.Dashboard{Cards: []models.StatCard{
		{Key: "sales", Title: "Total sales", Value: int(revenue), Icon: "payments"},
		{Key: "users", Title: "Users", Value: c.Users.Len(), Icon: "group_add"},
		{Key: "books", Title: "Books", Value: c.Books.Len(), Icon: "book"},
		{Key: "contracts", Title: "Contracts", Value: c.Contracts.Len(), Icon: "assignment"},
		{Key: "alerts", Title: "Unread notifications", Value: c.UnreadCount(), Icon: "warning"},
		{Key: "failed", Title: "Failed transactions", Value: failed, Icon: "error"},
	}}
}
