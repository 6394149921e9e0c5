package catalog

// SeedProducts returns the demo catalog used by the memory backend and tests.
func SeedProducts() []*Product {
	return []*Product{
		{
			ID:          "1",
			Title:       "Modern Slim Fit Blazer",
			Description: "A stylish slim-fit blazer perfect for formal occasions or casual Fridays. Made from high-quality fabric that ensures comfort and durability.",
			Price:       12999,
			Image:       "https://images.unsplash.com/photo-1598033129183-c4f50c736f10?q=80&w=800",
			Category:    "men",
			Rating:      4.5,
			Stock:       25,
		},
		{
			ID:          "2",
			Title:       "Classic White Dress Shirt",
			Description: "A timeless white dress shirt that belongs in every wardrobe. Made from 100% cotton for breathability and comfort throughout the day.",
			Price:       5999,
			Image:       "https://images.unsplash.com/photo-1563630423918-b58f07336ac9?q=80&w=800",
			Category:    "men",
			Rating:      4.3,
			Stock:       42,
		},
		{
			ID:          "3",
			Title:       "Premium Denim Jeans",
			Description: "High-quality denim jeans with a modern fit. These versatile jeans can be dressed up or down for any occasion.",
			Price:       8999,
			Image:       "https://images.unsplash.com/photo-1542272604-787c3835535d?q=80&w=800",
			Category:    "men",
			Rating:      4.2,
			Stock:       30,
		},
		{
			ID:          "4",
			Title:       "Elegant Evening Dress",
			Description: "A stunning evening dress designed to make you stand out. The elegant silhouette flatters any figure while the quality material ensures comfort all night long.",
			Price:       14999,
			Image:       "https://images.unsplash.com/photo-1572804013309-59a88b7e92f1?q=80&w=800",
			Category:    "women",
			Rating:      4.8,
			Stock:       15,
		},
		{
			ID:          "5",
			Title:       "Summer Floral Blouse",
			Description: "A light and breezy floral blouse perfect for summer days. The breathable fabric keeps you cool while the stylish design turns heads.",
			Price:       4599,
			Image:       "https://images.unsplash.com/photo-1581044777550-4cfa60707c03?q=80&w=800",
			Category:    "women",
			Rating:      4.4,
			Stock:       38,
		},
		{
			ID:          "6",
			Title:       "High-Waisted Trousers",
			Description: "These sleek high-waisted trousers create a flattering silhouette and can be styled for both office and evening wear. Made with stretchy fabric for all-day comfort.",
			Price:       7999,
			Image:       "https://images.unsplash.com/photo-1594633312681-425c7b97ccd1?q=80&w=800",
			Category:    "women",
			Rating:      4.6,
			Stock:       22,
		},
		{
			ID:          "7",
			Title:       "Kids Dinosaur T-Shirt",
			Description: "A fun and colorful dinosaur t-shirt that kids love. Made from soft, durable cotton that stands up to endless play and washing.",
			Price:       2499,
			Image:       "https://images.unsplash.com/photo-1622290291468-a28f7a7dc6a8?q=80&w=800",
			Category:    "kids",
			Rating:      4.7,
			Stock:       45,
		},
		{
			ID:          "8",
			Title:       "Children's Denim Overalls",
			Description: "Durable denim overalls designed to handle all your child's adventures. Multiple pockets provide space for treasures, while adjustable straps ensure a perfect fit.",
			Price:       3999,
			Image:       "https://images.unsplash.com/photo-1519278409-1f56fdda7fe5?q=80&w=800",
			Category:    "kids",
			Rating:      4.5,
			Stock:       28,
		},
		{
			ID:          "9",
			Title:       "Colorful Sneakers",
			Description: "Vibrant and comfortable sneakers perfect for active kids. The durable design and supportive sole keep up with playground activities and everyday wear.",
			Price:       4999,
			Image:       "https://images.unsplash.com/photo-1595950653106-6c9ebd614d3a?q=80&w=800",
			Category:    "kids",
			Rating:      4.4,
			Stock:       32,
		},
		{
			ID:          "10",
			Title:       "Premium Leather Wallet",
			Description: "A luxurious leather wallet with multiple card slots and compartments. The slim design fits comfortably in pockets while having ample space for all essentials.",
			Price:       6999,
			Image:       "https://images.unsplash.com/photo-1559563458-527698bf5295?q=80&w=800",
			Category:    "accessories",
			Rating:      4.8,
			Stock:       20,
		},
		{
			ID:          "11",
			Title:       "Aviator Sunglasses",
			Description: "Classic aviator sunglasses with UV protection. The timeless style complements any outfit while protecting your eyes from harmful rays.",
			Price:       8999,
			Image:       "https://images.unsplash.com/photo-1511499767150-a48a237f0083?q=80&w=800",
			Category:    "accessories",
			Rating:      4.3,
			Stock:       35,
		},
		{
			ID:          "12",
			Title:       "Silk Scarf",
			Description: "A luxurious silk scarf with a beautiful pattern. Versatile enough to be worn in multiple ways, adding an elegant touch to any outfit.",
			Price:       5999,
			Image:       "https://images.unsplash.com/photo-1584839401450-accbe1a8fca6?q=80&w=800",
			Category:    "accessories",
			Rating:      4.6,
			Stock:       18,
		},
	}
}
