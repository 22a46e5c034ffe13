package domain

import "time"

// Colunas fixas do CSV de negócio
const (
	BusinessColumnDate         = "date"
	BusinessColumnOrders       = "# of orders"
	BusinessColumnNewOrders    = "# of new orders"
	BusinessColumnNewCustomers = "new customers"
	BusinessColumnRevenue      = "total revenue"
	BusinessColumnProfit       = "gross profit"
)

// BusinessNumericColumns lista as colunas numéricas do CSV de negócio
var BusinessNumericColumns = []string{
	BusinessColumnOrders,
	BusinessColumnNewOrders,
	BusinessColumnNewCustomers,
	BusinessColumnRevenue,
	BusinessColumnProfit,
}

// BusinessRecord representa os resultados de negócio de um dia
type BusinessRecord struct {
	Date         time.Time `json:"date"`
	Orders       float64   `json:"orders"`
	NewOrders    float64   `json:"new_orders"`
	NewCustomers float64   `json:"new_customers"`
	TotalRevenue float64   `json:"total_revenue"`
	GrossProfit  float64   `json:"gross_profit"`
}

// BusinessDay é um registro de negócio já com os KPIs calculados
type BusinessDay struct {
	BusinessRecord
	BusinessKPIs
}
