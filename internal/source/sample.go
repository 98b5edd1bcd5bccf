package source

// Built-in sample datasets, used when no collector output files are
// configured. They cover overlapping products across all four sources
// so a default run exercises the full fusion path.

// SampleTrends returns sample trend records.
func SampleTrends() []TrendRecord {
	return []TrendRecord{
		{
			Keyword:        "electric lint remover",
			Momentum:       1.8,
			AvgInterest:    72,
			MaxInterest:    89,
			RelatedQueries: []string{"fabric shaver", "lint brush", "clothes defuzzer"},
		},
		{
			Keyword:        "phone holder car",
			Momentum:       1.2,
			AvgInterest:    65,
			MaxInterest:    84,
			RelatedQueries: []string{"car phone mount", "dashboard holder", "windshield mount"},
		},
		{
			Keyword:        "led strip lights",
			Momentum:       0.9,
			AvgInterest:    58,
			MaxInterest:    76,
			RelatedQueries: []string{"rgb led strip", "smart led lights", "room decoration"},
		},
		{
			Keyword:        "wireless earbuds",
			Momentum:       -0.2,
			AvgInterest:    82,
			MaxInterest:    95,
			RelatedQueries: []string{"bluetooth earbuds", "noise cancelling", "true wireless"},
		},
		{
			Keyword:        "portable blender",
			Momentum:       1.5,
			AvgInterest:    48,
			MaxInterest:    67,
			RelatedQueries: []string{"personal blender", "smoothie maker", "travel blender"},
		},
	}
}

// SampleAliExpress returns sample AliExpress listings.
func SampleAliExpress() []AliExpressRecord {
	return []AliExpressRecord{
		{
			Name:    "Electric Lint Remover Fabric Shaver",
			Orders:  15420,
			Reviews: 892,
			Rating:  4.4,
			Price:   12.99,
			URL:     "https://www.aliexpress.com/item/sample-lint-remover",
		},
		{
			Name:    "Car Phone Holder Dashboard Mount",
			Orders:  8750,
			Reviews: 634,
			Rating:  4.2,
			Price:   8.50,
			URL:     "https://www.aliexpress.com/item/sample-phone-holder",
		},
		{
			Name:    "RGB LED Strip Lights Smart",
			Orders:  12300,
			Reviews: 756,
			Rating:  4.1,
			Price:   18.99,
			URL:     "https://www.aliexpress.com/item/sample-led-strip",
		},
		{
			Name:    "Bluetooth Wireless Earbuds",
			Orders:  32100,
			Reviews: 1845,
			Rating:  4.3,
			Price:   22.50,
			URL:     "https://www.aliexpress.com/item/sample-earbuds",
		},
		{
			Name:    "Portable Blender USB Rechargeable",
			Orders:  6890,
			Reviews: 423,
			Rating:  4.0,
			Price:   15.75,
			URL:     "https://www.aliexpress.com/item/sample-blender",
		},
	}
}

// SampleAmazon returns sample Amazon listings.
func SampleAmazon() []AmazonRecord {
	return []AmazonRecord{
		{
			Name:    "Electric Lint Remover - Fabric Defuzzer",
			Reviews: 2340,
			Rating:  4.1,
			Price:   16.99,
			BSR:     125,
			IsPrime: true,
			URL:     "https://www.amazon.com/sample-lint-remover",
		},
		{
			Name:    "Phone Holder for Car Dashboard",
			Reviews: 1890,
			Rating:  4.0,
			Price:   12.99,
			BSR:     89,
			IsPrime: true,
			URL:     "https://www.amazon.com/sample-phone-holder",
		},
		{
			Name:    "LED Strip Lights RGB Color Changing",
			Reviews: 3450,
			Rating:  4.2,
			Price:   24.99,
			BSR:     156,
			IsPrime: true,
			URL:     "https://www.amazon.com/sample-led-strip",
		},
		{
			Name:    "Wireless Earbuds Bluetooth 5.0",
			Reviews: 8920,
			Rating:  4.3,
			Price:   29.99,
			BSR:     45,
			IsPrime: true,
			URL:     "https://www.amazon.com/sample-earbuds",
		},
		{
			Name:    "Portable Blender Personal Size",
			Reviews: 1250,
			Rating:  3.9,
			Price:   19.99,
			BSR:     234,
			IsPrime: true,
			URL:     "https://www.amazon.com/sample-blender",
		},
	}
}

// SampleTikTok returns sample TikTok videos.
func SampleTikTok() []TikTokRecord {
	return []TikTokRecord{
		{
			Title:    "This lint remover is AMAZING! #lintremover #cleaning #satisfying",
			Views:    2150000,
			Likes:    189000,
			Comments: 3400,
			Shares:   12500,
			URL:      "https://www.tiktok.com/@user/video/sample-lint",
			Hashtags: []string{"lintremover", "cleaning", "satisfying"},
		},
		{
			Title:    "Best phone holder for your car! #phoneholder #cardrive #musthave",
			Views:    850000,
			Likes:    67000,
			Comments: 1200,
			Shares:   4500,
			URL:      "https://www.tiktok.com/@user/video/sample-phone",
			Hashtags: []string{"phoneholder", "cardrive", "musthave"},
		},
		{
			Title:    "LED lights room transformation! #ledlights #roomdecor #aesthetic",
			Views:    1200000,
			Likes:    98000,
			Comments: 2800,
			Shares:   8900,
			URL:      "https://www.tiktok.com/@user/video/sample-led",
			Hashtags: []string{"ledlights", "roomdecor", "aesthetic"},
		},
		{
			Title:    "Testing cheap wireless earbuds #earbuds #tech #review",
			Views:    650000,
			Likes:    45000,
			Comments: 890,
			Shares:   2100,
			URL:      "https://www.tiktok.com/@user/video/sample-earbuds",
			Hashtags: []string{"earbuds", "tech", "review"},
		},
		{
			Title:    "Portable blender hack for smoothies! #blender #smoothie #healthy",
			Views:    920000,
			Likes:    72000,
			Comments: 1800,
			Shares:   5600,
			URL:      "https://www.tiktok.com/@user/video/sample-blender",
			Hashtags: []string{"blender", "smoothie", "healthy"},
		},
	}
}
