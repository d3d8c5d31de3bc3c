package web

// Product is a featured item in the static showcase.
type Product struct {
	Name  string
	Price string
	Emoji string
}

var featuredProducts = []Product{
	{Name: "Samsung Galaxy A15", Price: "Rs 48,999", Emoji: "📱"},
	{Name: "HP Laptop 14s", Price: "Rs 99,999", Emoji: "💻"},
	{Name: "AirPods Pro 2", Price: "Rs 54,000", Emoji: "🎧"},
}
