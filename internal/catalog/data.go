package catalog

import "github.com/jask/pilgrim/internal/itinerary"

var sites = []Site{
	{
		ID:           stableID("site", "Gurdwara Janam Asthan"),
		Name:         "Gurdwara Janam Asthan",
		Location:     "Nankana Sahib",
		City:         "Nankana Sahib",
		Province:     "Punjab",
		Significance: "Birthplace of Guru Nanak Dev Ji",
		Distance:     "75 km from Lahore",
		Coordinates:  itinerary.Coordinates{Lat: 31.4504, Lng: 73.7056},
		Image:        "🏛️",
		Description:  "The most sacred Gurdwara marking the birthplace of Guru Nanak Dev Ji, the founder of Sikhism.",
	},
	{
		ID:           stableID("site", "Gurdwara Panja Sahib"),
		Name:         "Gurdwara Panja Sahib",
		Location:     "Hasan Abdal",
		City:         "Hasan Abdal",
		Province:     "Punjab",
		Significance: "Sacred handprint of Guru Nanak",
		Distance:     "45 km from Islamabad",
		Coordinates:  itinerary.Coordinates{Lat: 33.8199, Lng: 72.6890},
		Image:        "✋",
		Description:  "Famous for the sacred handprint of Guru Nanak Dev Ji on a boulder.",
	},
	{
		ID:           stableID("site", "Gurdwara Dera Sahib"),
		Name:         "Gurdwara Dera Sahib",
		Location:     "Lahore",
		City:         "Lahore",
		Province:     "Punjab",
		Significance: "Martyrdom place of Guru Arjan Dev Ji",
		Distance:     "In Lahore city",
		Coordinates:  itinerary.Coordinates{Lat: 31.5804, Lng: 74.3287},
		Image:        "🕊️",
		Description:  "Sacred site where Guru Arjan Dev Ji, the fifth Sikh Guru, was martyred.",
	},
	{
		ID:           stableID("site", "Gurdwara Kartarpur Sahib"),
		Name:         "Gurdwara Kartarpur Sahib",
		Location:     "Kartarpur",
		City:         "Kartarpur",
		Province:     "Punjab",
		Significance: "Where Guru Nanak spent his final years",
		Distance:     "120 km from Lahore",
		Coordinates:  itinerary.Coordinates{Lat: 32.1373, Lng: 74.9009},
		Image:        "🌾",
		Description:  "The place where Guru Nanak Dev Ji spent the last 18 years of his life.",
	},
	{
		ID:           stableID("site", "Gurdwara Sacha Sauda"),
		Name:         "Gurdwara Sacha Sauda",
		Location:     "Farooqabad",
		City:         "Sheikhupura",
		Province:     "Punjab",
		Significance: "True bargain of Guru Nanak",
		Distance:     "50 km from Lahore",
		Coordinates:  itinerary.Coordinates{Lat: 31.7167, Lng: 73.9500},
		Image:        "💰",
		Description:  "Associated with Guru Nanak Dev Ji's philosophy of honest trade and fair dealing.",
	},
	{
		ID:           stableID("site", "Gurdwara Rohri Sahib"),
		Name:         "Gurdwara Rohri Sahib",
		Location:     "Rohri",
		City:         "Sukkur",
		Province:     "Sindh",
		Significance: "Visit of Guru Nanak Dev Ji",
		Distance:     "470 km from Karachi",
		Coordinates:  itinerary.Coordinates{Lat: 27.6689, Lng: 68.8956},
		Image:        "🏔️",
		Description:  "Historic Gurdwara in Sindh province visited by Guru Nanak Dev Ji.",
	},
}

var events = []Event{
	{
		ID:          stableID("event", "Guru Nanak Gurpurab"),
		Title:       "Guru Nanak Gurpurab",
		Gurdwara:    "Gurdwara Janam Asthan",
		Location:    "Nankana Sahib",
		Date:        "2024-11-15",
		Time:        "4:00 AM onwards",
		Type:        Gurpurab,
		Description: "Celebrating the birth anniversary of Guru Nanak Dev Ji with special prayers, kirtan, and langar.",
		Image:       "🌟",
	},
	{
		ID:          stableID("event", "Baisakhi Celebration"),
		Title:       "Baisakhi Celebration",
		Gurdwara:    "Gurdwara Panja Sahib",
		Location:    "Hasan Abdal",
		Date:        "2024-04-14",
		Time:        "5:00 AM onwards",
		Type:        Festival,
		Description: "Annual harvest festival and commemoration of the formation of the Khalsa.",
		Image:       "🌾",
	},
	{
		ID:          stableID("event", "Martyrdom Day of Guru Arjan Dev Ji"),
		Title:       "Martyrdom Day of Guru Arjan Dev Ji",
		Gurdwara:    "Gurdwara Darbar Sahib Kartarpur",
		Location:    "Kartarpur",
		Date:        "2024-06-16",
		Time:        "6:00 AM onwards",
		Type:        Commemoration,
		Description: "Remembering the sacrifice of the fifth Guru with prayers and reflection.",
		Image:       "🙏",
	},
}
