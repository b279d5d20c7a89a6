package domain

import "fmt"

// RupeeSign — символ валюты для отображения цен.
const RupeeSign = "₹"

// FormatIndianPrice — цена с двумя знаками после запятой и символом рупии: 30 -> "₹30.00".
func FormatIndianPrice(price float64) string {
	return fmt.Sprintf("%s%.2f", RupeeSign, price)
}
