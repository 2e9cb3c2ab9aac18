package menu

var defaultItems = []Item{
	pizza(110, "Margherita", "images/margheritapizza.jpg",
		"Fresh basil, Mozzarella, Tomato sauce", 20.30, 30.00),
	pizza(111, "Pepperoni", "images/istockphoto-1442417585-612x612.jpg",
		"Spicy, Hot", 25.00, 35.00),
	pizza(112, "Veggie Pizza", "images/1712661.jpg",
		"Vegetarian, Fresh vegetables, Cheesy", 30.00, 40.00),
	pizza(113, "Chicken and Mushroom Pizza", "images/dcd061ae-d693-4dc5-a117-aabb6c48a952.jpeg",
		"Grilled chicken, Fresh mushrooms, Cheesy", 22.00, 32.00),
	pizza(114, "Roast Beef Pizza", "images/61f67055e1c10.jpg",
		"Roast beef, Bell pepper, Mozzarella", 20.00, 30.00),
	pizza(115, "Kolbe Special Pizza", "images/pizzzza.jpg",
		"Cold cuts, Sausage, Olives", 12.00, 22.00),
	pizza(116, "Meat and Mushroom Pizza", "images/meat-and-mushroom.jpg",
		"Ground beef, Fresh mushrooms, Special sauce", 18.00, 28.00),
	pizza(117, "Chorizo Pizza", "images/AH5_5643-scaled.jpg",
		"Chorizo sausage, Red hot pepper, Stretchy cheese", 18.00, 28.00),
	pizza(118, "Mixed Pizza", "images/puzzzza.png",
		"Beef and chicken ham, Black olives, Pizza cheese", 18.00, 28.00),
	{
		ID:          119,
		Name:        "Regular Burger",
		Price:       18.00,
		Image:       "images/crispy-comte-cheesburgers-FT-RECIPE0921-6166c6552b7148e8a8561f7765ddf20b.jpg",
		Description: "Grilled beef",
	},
	{
		ID:          120,
		Name:        "Cheeseburger",
		Price:       20.00,
		Image:       "images/cheezburger.jpg",
		Description: "Melted cheese, Fresh beef",
	},
	{
		ID:          121,
		Name:        "Kolbe Special Burger",
		Price:       22.00,
		Image:       "images/1199662_180-1024x684.jpg",
		Description: "Special sauce, Premium ingredients, House specialty",
	},
	{
		ID:          122,
		Name:        "Mushroom and Cheese Burger",
		Price:       22.00,
		Image:       "images/mushroom_and_cheese_hamburger_w_hese_tazegi.jpg",
		Description: "Fresh mushrooms, Mozzarella, Garlic sauce",
	},
	{
		ID:          123,
		Name:        "Chorizo Burger",
		Price:       22.00,
		Image:       "images/2_1699867666_7976.jpg",
		Description: "Chorizo sausage, Spicy, Smoky chili sauce",
	},
	{
		ID:          124,
		Name:        "Hot Dog",
		Price:       8.00,
		Image:       "images/هات-داگ.jpg",
		Description: "Classic hot dog, Mustard & ketchup, Fresh bun",
	},
	{
		ID:          125,
		Name:        "Mushroom and Cheese Hot Dog",
		Price:       10.00,
		Image:       "images/طرز-تهیه-هات-داگ-خانگی.jpg",
		Description: "Mushrooms and cheese, Gourmet style",
	},
	{
		ID:          126,
		Name:        "Krakow",
		Price:       12.00,
		Image:       "images/pooooza.png",
		Description: "Krakow sausage, Traditional recipe",
	},
	{
		ID:          127,
		Name:        "Cocktail",
		Price:       8.00,
		Image:       "images/132638092866500.jpg",
		Description: "Cocktail sausage, Perfect appetizer",
	},
	{
		ID:          128,
		Name:        "Beef Ham",
		Price:       15.00,
		Image:       "images/ساندویچ-ژامبون-گوشت.jpg",
		Description: "Beef ham, Cheese, Lettuce and mayonnaise",
	},
	{
		ID:          129,
		Name:        "Chicken Ham",
		Price:       14.00,
		Image:       "images/0026188_-_550.jpeg",
		Description: "Chicken ham, White sauce, Fresh vegetables",
	},
	{
		ID:          130,
		Name:        "Roasted Ham",
		Price:       16.00,
		Image:       "images/janbon-tanori.jpg",
		Description: "Roasted ham, Mozzarella, Grilled to perfection",
	},
	{
		ID:          131,
		Name:        "Kolbe Special Fries",
		Price:       8.00,
		Image:       "images/sibzamini-paniri.jpg",
		Description: "House special seasoning, Crispy texture, Perfect side dish",
	},
	{
		ID:          132,
		Name:        "Baked Potato",
		Price:       6.00,
		Image:       "images/img_682617.jpeg",
		Description: "Fresh baked, Butter and herbs, Healthy option",
	},
	{
		ID:          133,
		Name:        "French Fries",
		Price:       5.00,
		Image:       "images/سیب-زمینی-سرخ-کرده.webp",
		Description: "Great with burgers, Golden crispy, Classic side",
	},
	{
		ID:          134,
		Name:        "Garlic Bread",
		Price:       4.00,
		Image:       "images/calindairy-blog-garlic-bread-030920-002.webp",
		Description: "Fresh baked, Garlic butter, Perfect starter",
	},
	{
		ID:          135,
		Name:        "Caesar Salad",
		Price:       12.00,
		Image:       "images/Caesar-salad-1.jpg",
		Description: "Grilled or fried chicken, Fresh romaine, Caesar dressing",
	},
	{
		ID:          136,
		Name:        "Garden Salad",
		Price:       10.00,
		Image:       "images/salad-fasl-min.jpg",
		Description: "Seasonal vegetables mix (lettuce, cucumber, tomato, carrot), Light diet friendly, Fresh and healthy",
	},
}

// pizza builds an item sold in two sizes; the base price is the single.
func pizza(id int64, name, image, description string, single, double float64) Item {
	return Item{
		ID:          id,
		Name:        name,
		Price:       single,
		Image:       image,
		Description: description,
		SinglePrice: &single,
		DoublePrice: &double,
	}
}
