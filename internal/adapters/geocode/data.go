package geocode

// regions lists the bounding regions the resolver searches. Boxes are kept
// snug on purpose: where neighbours overlap, the smaller country's box must
// still win after the area sort in NewResolver. Countries with disjoint
// landmasses (United States, Russia before/after the antimeridian is not
// split here since the span stays within [-180,180]) carry several entries.
var regions = []regionBox{
	// Americas
	{"USA", "United States of America", 24.5, 49.0, -124.8, -66.9},
	{"USA", "United States of America", 51.0, 71.5, -168.0, -141.0}, // Alaska
	{"USA", "United States of America", 18.9, 22.3, -160.3, -154.7}, // Hawaii
	{"CAN", "Canada", 41.7, 83.1, -141.0, -52.6},
	{"MEX", "Mexico", 14.5, 32.7, -117.1, -86.7},
	{"GTM", "Guatemala", 13.7, 17.8, -92.2, -88.2},
	{"CRI", "Costa Rica", 8.0, 11.2, -85.9, -82.6},
	{"PAN", "Panama", 7.2, 9.6, -83.1, -77.2},
	{"CUB", "Cuba", 19.8, 23.3, -85.0, -74.1},
	{"JAM", "Jamaica", 17.7, 18.5, -78.4, -76.2},
	{"BRA", "Brazil", -33.7, 5.3, -73.9, -34.8},
	{"ARG", "Argentina", -55.0, -21.8, -73.6, -53.6},
	{"CHL", "Chile", -55.9, -17.5, -75.6, -69.5},
	{"PER", "Peru", -18.4, -0.1, -81.3, -68.7},
	{"COL", "Colombia", -4.2, 12.5, -79.0, -66.9},
	{"VEN", "Venezuela", 0.6, 12.2, -73.4, -59.8},
	{"BOL", "Bolivia", -22.9, -9.7, -69.6, -57.5},
	{"ECU", "Ecuador", -5.0, 1.4, -81.0, -75.2},
	{"GRL", "Greenland", 59.8, 83.6, -73.0, -12.0},

	// Europe
	{"GBR", "United Kingdom", 49.9, 58.7, -8.2, 1.8},
	{"IRL", "Ireland", 51.4, 55.4, -10.5, -5.9},
	{"FRA", "France", 42.3, 51.1, -4.8, 8.2},
	{"ESP", "Spain", 36.0, 43.8, -9.3, 3.3},
	{"PRT", "Portugal", 36.9, 42.2, -9.5, -6.2},
	{"DEU", "Germany", 47.3, 55.1, 5.9, 15.0},
	{"ITA", "Italy", 36.6, 47.1, 6.6, 18.5},
	{"CHE", "Switzerland", 45.8, 47.8, 5.9, 10.5},
	{"AUT", "Austria", 46.4, 49.0, 9.5, 17.2},
	{"BEL", "Belgium", 49.5, 51.5, 2.5, 6.4},
	{"NLD", "Netherlands", 50.7, 53.6, 3.3, 7.2},
	{"POL", "Poland", 49.0, 54.8, 14.1, 24.1},
	{"CZE", "Czechia", 48.5, 51.1, 12.1, 18.9},
	{"UKR", "Ukraine", 44.4, 52.4, 22.1, 40.2},
	{"RUS", "Russia", 41.2, 77.0, 27.3, 180.0},
	{"FIN", "Finland", 59.8, 70.1, 20.5, 31.6},
	{"SWE", "Sweden", 55.3, 69.1, 11.1, 24.2},
	{"NOR", "Norway", 58.0, 71.2, 4.6, 31.1},
	{"DNK", "Denmark", 54.5, 57.8, 8.0, 12.7},
	{"ISL", "Iceland", 63.3, 66.6, -24.5, -13.5},
	{"GRC", "Greece", 34.8, 41.8, 19.3, 28.3},

	// Middle East & Africa
	{"TUR", "Turkey", 35.8, 42.1, 26.0, 44.8},
	{"ISR", "Israel", 29.5, 33.3, 34.2, 35.9},
	{"EGY", "Egypt", 22.0, 31.7, 24.7, 36.9},
	{"SAU", "Saudi Arabia", 16.3, 32.2, 34.5, 55.7},
	{"ARE", "United Arab Emirates", 22.6, 26.1, 51.5, 56.4},
	{"IRN", "Iran", 25.0, 39.8, 44.0, 63.3},
	{"IRQ", "Iraq", 29.0, 37.4, 38.8, 48.6},
	{"SYR", "Syria", 32.3, 37.3, 35.7, 42.4},
	{"MAR", "Morocco", 27.7, 35.9, -13.2, -1.0},
	{"DZA", "Algeria", 19.0, 37.1, -8.7, 12.0},
	{"TUN", "Tunisia", 30.2, 37.5, 7.5, 11.6},
	{"LBY", "Libya", 19.5, 33.2, 9.3, 25.2},
	{"SDN", "Sudan", 8.7, 22.2, 21.8, 38.6},
	{"NGA", "Nigeria", 4.3, 13.9, 2.7, 14.7},
	{"GHA", "Ghana", 4.7, 11.2, -3.3, 1.2},
	{"KEN", "Kenya", -4.7, 5.0, 33.9, 41.9},
	{"ETH", "Ethiopia", 3.4, 14.9, 33.0, 48.0},
	{"TZA", "Tanzania", -11.7, -1.0, 29.3, 40.4},
	{"COD", "Democratic Republic of the Congo", -13.5, 5.4, 12.2, 31.3},
	{"ZAF", "South Africa", -34.8, -22.1, 16.5, 32.9},

	// Asia & Oceania
	{"KAZ", "Kazakhstan", 40.6, 55.4, 46.5, 87.3},
	{"UZB", "Uzbekistan", 37.2, 45.6, 56.0, 73.1},
	{"AFG", "Afghanistan", 29.4, 38.5, 60.5, 74.9},
	{"PAK", "Pakistan", 23.7, 37.1, 60.9, 77.8},
	{"IND", "India", 8.0, 35.5, 68.1, 97.4},
	{"NPL", "Nepal", 26.3, 30.4, 80.0, 88.2},
	{"BGD", "Bangladesh", 20.7, 26.6, 88.0, 92.7},
	{"CHN", "China", 18.1, 53.6, 73.5, 134.8},
	{"MNG", "Mongolia", 41.6, 52.1, 87.7, 119.9},
	{"JPN", "Japan", 30.9, 45.6, 128.9, 146.0},
	{"KOR", "South Korea", 33.1, 38.6, 125.9, 129.6},
	{"PRK", "North Korea", 37.7, 43.0, 124.2, 130.7},
	{"TWN", "Taiwan", 21.9, 25.3, 120.0, 122.0},
	{"VNM", "Vietnam", 8.4, 23.4, 102.1, 109.5},
	{"LAO", "Laos", 19.0, 22.5, 100.1, 104.3},
	{"LAO", "Laos", 13.9, 19.0, 100.9, 107.0},
	{"THA", "Thailand", 5.6, 20.5, 97.3, 105.6},
	{"MMR", "Myanmar", 9.8, 28.5, 92.2, 101.2},
	{"KHM", "Cambodia", 10.4, 14.7, 102.3, 107.6},
	{"MYS", "Malaysia", 0.9, 6.7, 99.6, 119.3},
	{"SGP", "Singapore", 1.2, 1.5, 103.6, 104.1},
	{"BRN", "Brunei", 4.0, 5.1, 114.0, 115.4},
	{"IDN", "Indonesia", -10.9, 5.9, 95.0, 141.0},
	{"PHL", "Philippines", 5.0, 19.0, 117.2, 126.6},
	{"AUS", "Australia", -43.7, -10.7, 113.2, 153.6},
	{"NZL", "New Zealand", -47.3, -34.4, 166.4, 178.6},
}
