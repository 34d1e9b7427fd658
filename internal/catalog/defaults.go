package catalog

// Default returns the resort's current price list. Prices were confirmed with
// the resort in early 2025; any change goes through this file.
func Default(lenient bool) *Catalog {
	return &Catalog{
		Lenient: lenient,

		Activities: map[string]map[string]int64{
			"Team Building": {
				"With Facilitator":            15000,
				"With Facilitator, DJ and PA": 20000,
			},
			"Bike Riding": {
				"Adult": 500,
				"Kids":  200,
			},
			"Group Mbuzi": {
				"Own Mbuzi":     7000,
				"Without Mbuzi": 20000,
			},
			"Grounds for Hire": {
				"Photoshoot": 10000,
			},
			"Bonfire and Outdoor Movie": {
				"Non-Drinkers": 20000,
				"Drinkers":     0,
			},
		},

		Food: map[string]int64{
			"Buffet": 2000,
			"BBQ":    2500,
			"Snacks": 800,
		},

		Drinks: map[string]int64{
			"Soft Drinks": 300,
			"Alcohol":     1500,
			"Cocktails":   2000,
		},

		Accommodation: map[string]AccommodationType{
			"Camping": {
				Rule: KeyPaxBedding,
				Prices: map[string]int64{
					"2 Pax Without Bedding": 2000,
					"2 Pax With Bedding":    2500,
					"1 Pax Without Bedding": 1500,
					"1 Pax With Bedding":    2000,
				},
			},
			"Big Tent Sharing": {
				Rule: KeyBedding,
				Prices: map[string]int64{
					"Without Bedding": 1000,
					"With Bedding":    1500,
				},
			},
			"4 Pax Room": {
				Rule: KeyBedding,
				Prices: map[string]int64{
					"Without Bedding": 5500,
					"With Bedding":    7500,
				},
			},
			"8 Pax Room": {
				Rule: KeyBedding,
				Prices: map[string]int64{
					"Without Bedding": 11000,
					"With Bedding":    15000,
				},
			},
			"Glamping": {
				Rule: KeyBedding,
				Prices: map[string]int64{
					"Without Bedding": 5000,
					"With Bedding":    6000,
				},
			},
			"Cabins": {
				Rule:     KeyFixed,
				FixedKey: "Standard",
				Prices: map[string]int64{
					"Standard": 3000,
				},
			},
		},

		Grounds: []Ground{
			{Name: "Tulia", Capacity: 150},
			{Name: "Lewa", Capacity: 100},
			{Name: "Zohari", Capacity: 600},
			{Name: "Ekani", Capacity: 300},
			{Name: "Zanzi", Capacity: 50},
		},

		Menu: defaultMenu(),
	}
}

func defaultMenu() []MenuCategory {
	return []MenuCategory{
		{
			Category: "Bites & Burgers",
			Items: []MenuItem{
				{Name: "Samosa (2 pcs)", Price: 150, Description: "Crispy golden pastry filled with a flavorful meat or vegetable stuffing"},
				{Name: "Sausages (2 pcs)", Price: 150, Description: "Juicy, well-seasoned sausages, perfect for a quick bite"},
				{Name: "Choma Sausage (1 pc)", Price: 150, Description: "Grilled sausage with a smoky, flavorful finish"},
				{Name: "Beef Burger with Chips", Price: 550, Description: "Juicy beef patty, fresh lettuce, tomatoes, and cheese in a soft bun, served with crispy chips"},
				{Name: "Chicken Burger with Chips", Price: 650, Description: "Succulent grilled chicken breast, fresh lettuce, tomatoes, and cheese in a soft bun, served with crispy chips"},
				{Name: "Chicken Wings Small (5 pcs) with Chips", Price: 500, Description: "Lightly marinated and perfectly crispy wings served with chips"},
				{Name: "Chicken Wings Large (10 pcs) with Chips", Price: 1000, Description: "A generous portion of flavorful chicken wings with crispy chips"},
				{Name: "Fish Fingers Small (5 pcs) with Chips", Price: 500, Description: "Crispy battered fish fillets served with golden chips"},
				{Name: "Fish Fingers Large (10 pcs) with Chips", Price: 1000, Description: "A hearty serving of crispy fish fillets with golden chips"},
			},
		},
		{
			Category: "Soups",
			Items: []MenuItem{
				{Name: "Cream of Mushroom Soup", Price: 300, Description: "A velvety and hearty mushroom-based soup with a hint of herbs"},
				{Name: "Roasted Pumpkin & Coconut Soup", Price: 300, Description: "A silky blend of roasted pumpkin, coconut milk, and spices"},
				{Name: "Ginger-Infused Butternut Soup", Price: 300, Description: "A warm and comforting soup with ginger infusion"},
				{Name: "Chicken Broth", Price: 300, Description: "Traditional chicken broth"},
				{Name: "Tomato Soup", Price: 300, Description: "Classic tomato soup"},
			},
		},
		{
			Category: "Main Dishes - Mbuzi",
			Items: []MenuItem{
				{Name: "Mbuzi (500g)", Price: 650, Description: "Dry, wet, or choma style. Served with chips, saute, roast potatoes, ugali"},
				{Name: "Mbuzi (1kg)", Price: 1300, Description: "Dry, wet, or choma style. Served with chips, saute, roast potatoes, ugali"},
				{Name: "Mbuzi Tumbukiza (500g)", Price: 900, Description: "With potato portion and greens"},
				{Name: "Mbuzi Tumbukiza (1kg)", Price: 1700, Description: "With potato portion and greens"},
				{Name: "Mutton Curry (500g)", Price: 750, Description: "Served with veg rice, chapati, ugali"},
				{Name: "Mutton Curry (1kg)", Price: 1500, Description: "Served with veg rice, chapati, ugali"},
				{Name: "Moroccan Lamb Tajine (500g)", Price: 750, Description: "Served with rice, ugali, chapati, chips"},
				{Name: "Moroccan Lamb Tajine (1kg)", Price: 1500, Description: "Served with rice, ugali, chapati, chips"},
			},
		},
		{
			Category: "Main Dishes - Beef",
			Items: []MenuItem{
				{Name: "Beef (500g)", Price: 600, Description: "Dry, stir fry, or choma style. Served with ugali, chips, roast potatoes, saute"},
				{Name: "Beef (1kg)", Price: 1200, Description: "Dry, stir fry, or choma style. Served with ugali, chips, roast potatoes, saute"},
				{Name: "Beef Tumbukiza (500g)", Price: 850, Description: "With potato portion and greens"},
				{Name: "Beef Tumbukiza (1kg)", Price: 1700, Description: "With potato portion and greens"},
				{Name: "Beef Curry (500g)", Price: 700, Description: "Served with chapati, rice, ugali"},
				{Name: "Beef Curry (1kg)", Price: 1400, Description: "Served with chapati, rice, ugali"},
				{Name: "Beef Biryani (500g)", Price: 700, Description: "Served with chips, veg rice, ugali, chapati"},
				{Name: "Beef Biryani (1kg)", Price: 1400, Description: "Served with chips, veg rice, ugali, chapati"},
				{Name: "Beef in Olives (500g)", Price: 750, Description: "Served with chips, roast, veg rice, chapati"},
				{Name: "Beef in Olives (1kg)", Price: 1500, Description: "Served with chips, roast, veg rice, chapati"},
			},
		},
		{
			Category: "Main Dishes - Pork",
			Items: []MenuItem{
				{Name: "Pork (500g)", Price: 650, Description: "Choma or stir fry style. Served with chips, saute, ugali"},
				{Name: "Pork (1kg)", Price: 1300, Description: "Choma or stir fry style. Served with chips, saute, ugali"},
				{Name: "Barbequed Pork (500g)", Price: 800, Description: "Served with chips, roast, saute, ugali"},
				{Name: "Barbequed Pork (1kg)", Price: 1500, Description: "Served with chips, roast, saute, ugali"},
			},
		},
		{
			Category: "Main Dishes - Chicken",
			Items: []MenuItem{
				{Name: "Broiler Chicken (Half)", Price: 750, Description: "Choma, dry or wet style. Served with chips, roast, saute, ugali"},
				{Name: "Broiler Chicken (Full)", Price: 1500, Description: "Choma, dry or wet style. Served with chips, roast, saute, ugali"},
				{Name: "Kuku wa Kupaka (Half)", Price: 850, Description: "Served with roast potatoes, saute, chips"},
				{Name: "Kuku wa Kupaka (Full)", Price: 1700, Description: "Served with roast potatoes, saute, chips"},
				{Name: "Malawian Kwasu Kwasu Chicken (Half)", Price: 850, Description: "Served with mashed potatoes or sweet potatoes"},
				{Name: "Malawian Kwasu Kwasu Chicken (Full)", Price: 1700, Description: "Served with mashed potatoes or sweet potatoes"},
				{Name: "Chicken Tikka (Half)", Price: 850, Description: "Served with rice, chapati, chips, ugali"},
				{Name: "Chicken Tikka (Full)", Price: 1700, Description: "Served with rice, chapati, chips, ugali"},
				{Name: "Kuku Kienyeji (Half)", Price: 1200, Description: "Dry or wet style. Served with potatoes wedges, chips, ugali"},
				{Name: "Kuku Kienyeji (Full)", Price: 2000, Description: "Dry or wet style. Served with potatoes wedges, chips, ugali"},
			},
		},
		{
			Category: "Platters",
			Items: []MenuItem{
				{Name: "Acacia Platter (6pax)", Price: 4500, Description: "Herbs infused grilled chicken, oven grilled mbuzi, beef stir fry, honey glazed pork. Served with roast potatoes wedges, grilled corn, butter garlic naan bread, kachumbari, and dipping"},
				{Name: "Delight Platter (4pax)", Price: 2500, Description: "Herbs infused grilled chicken, oven grilled mbuzi, beef stir fry, honey glazed pork. Served with roast potatoes wedges, grilled corn, butter garlic naan bread, kachumbari, and dippings"},
				{Name: "Canaville Kuku Bahati", Price: 1500, Description: "Well marinated full chicken mixed with chips, arrow roots, boiled eggs"},
			},
		},
		{
			Category: "Barbeque",
			Items: []MenuItem{
				{Name: "Pork Barbeque", Price: 1500},
				{Name: "Chicken Barbeque", Price: 1700},
			},
		},
		{
			Category: "Desserts",
			Items: []MenuItem{
				{Name: "Vanilla Raspberry Sponge Cake Slice", Price: 400},
				{Name: "Ice Cream Trio", Price: 300, Description: "A choice of three flavors: Vanilla, Chocolate, Strawberry"},
			},
		},
		{
			Category: "Accompaniments",
			Items: []MenuItem{
				{Name: "Chips, Naan", Price: 200},
				{Name: "Roast, Saute, Mashed, Mukimo, Veg Rice, Pilau", Price: 250},
				{Name: "Chapati", Price: 150},
				{Name: "Chips Masala", Price: 300},
				{Name: "Kachumbari and Coleslaw", Price: 100},
				{Name: "Veggies", Price: 150},
			},
		},
		{
			Category: "Continental Breakfast",
			Items: []MenuItem{
				{Name: "Continental Breakfast Full", Price: 1200, Description: "Includes: Soups, Salad Bar, Bakery & Pastries, Hot Dishes & Sides, Cereal & Yogurt Bar, Fruits, Beverages"},
				{Name: "Signature Budget Breakfast", Price: 600, Description: "Includes: Pastries, Main Dishes & Sides, Fruits, Beverages"},
			},
		},
	}
}
