package domain

// SalesManager represents a sales manager offering appointment slots
type SalesManager struct {
	ID        int64
	Name      string
	Languages StringSet // Языки, на которых менеджер может общаться
	Products  StringSet // Продукты, по которым менеджер консультирует
	Ratings   StringSet // Рейтинговые категории клиентов, с которыми работает менеджер
}

// CanServe returns true if the manager covers the language, the full
// product set and the customer rating of the query
func (m *SalesManager) CanServe(language string, products []string, rating string) bool {
	return m.Languages.Contains(language) &&
		m.Products.ContainsAll(products) &&
		m.Ratings.Contains(rating)
}
