package countrydata

// row is the storage form of a directory entry; the emoji is derived at load.
type row struct {
	name       string
	alpha2     string
	alpha3     string
	population int64
}

// table is the static country reference data. Order matters: Find returns the
// first row matching by code or name, so more prominent entries sit first
// within each region. Population figures are stale reference values used only
// as a display fallback; live figures come from the statistics service.
var table = []row{
	{"United States", "US", "USA", 333_287_557},
	{"Canada", "CA", "CAN", 38_929_902},
	{"Mexico", "MX", "MEX", 127_504_125},
	{"Guatemala", "GT", "GTM", 17_357_886},
	{"Costa Rica", "CR", "CRI", 5_180_829},
	{"Panama", "PA", "PAN", 4_408_581},
	{"Cuba", "CU", "CUB", 11_212_191},
	{"Jamaica", "JM", "JAM", 2_827_377},
	{"Brazil", "BR", "BRA", 215_313_498},
	{"Argentina", "AR", "ARG", 46_234_830},
	{"Chile", "CL", "CHL", 19_603_733},
	{"Peru", "PE", "PER", 34_049_588},
	{"Colombia", "CO", "COL", 51_874_024},
	{"Venezuela", "VE", "VEN", 28_301_696},
	{"Bolivia", "BO", "BOL", 12_224_110},
	{"Ecuador", "EC", "ECU", 17_988_406},
	{"Greenland", "GL", "GRL", 56_661},

	{"United Kingdom", "GB", "GBR", 66_971_395},
	{"Ireland", "IE", "IRL", 5_127_170},
	{"France", "FR", "FRA", 67_971_311},
	{"Spain", "ES", "ESP", 47_778_340},
	{"Portugal", "PT", "PRT", 10_409_704},
	{"Germany", "DE", "DEU", 83_797_985},
	{"Italy", "IT", "ITA", 58_940_425},
	{"Switzerland", "CH", "CHE", 8_775_760},
	{"Austria", "AT", "AUT", 9_041_851},
	{"Belgium", "BE", "BEL", 11_655_930},
	{"Netherlands", "NL", "NLD", 17_700_982},
	{"Poland", "PL", "POL", 36_821_749},
	{"Czechia", "CZ", "CZE", 10_672_118},
	{"Ukraine", "UA", "UKR", 38_000_000},
	{"Russia", "RU", "RUS", 143_556_383},
	{"Finland", "FI", "FIN", 5_556_106},
	{"Sweden", "SE", "SWE", 10_486_941},
	{"Norway", "NO", "NOR", 5_457_127},
	{"Denmark", "DK", "DNK", 5_903_037},
	{"Iceland", "IS", "ISL", 382_003},
	{"Greece", "GR", "GRC", 10_426_919},

	{"Turkey", "TR", "TUR", 84_979_913},
	{"Israel", "IL", "ISR", 9_557_500},
	{"Egypt", "EG", "EGY", 110_990_103},
	{"Saudi Arabia", "SA", "SAU", 36_408_820},
	{"United Arab Emirates", "AE", "ARE", 9_441_129},
	{"Iran", "IR", "IRN", 88_550_570},
	{"Iraq", "IQ", "IRQ", 44_496_122},
	{"Syria", "SY", "SYR", 22_125_249},
	{"Morocco", "MA", "MAR", 37_457_971},
	{"Algeria", "DZ", "DZA", 44_903_225},
	{"Tunisia", "TN", "TUN", 12_356_117},
	{"Libya", "LY", "LBY", 6_812_341},
	{"Sudan", "SD", "SDN", 46_874_204},
	{"Nigeria", "NG", "NGA", 218_541_212},
	{"Ghana", "GH", "GHA", 33_475_870},
	{"Kenya", "KE", "KEN", 54_027_487},
	{"Ethiopia", "ET", "ETH", 123_379_924},
	{"Tanzania", "TZ", "TZA", 65_497_748},
	{"DR Congo", "CD", "COD", 99_010_212},
	{"South Africa", "ZA", "ZAF", 59_893_885},

	{"Kazakhstan", "KZ", "KAZ", 19_621_972},
	{"Uzbekistan", "UZ", "UZB", 35_648_100},
	{"Afghanistan", "AF", "AFG", 41_128_771},
	{"Pakistan", "PK", "PAK", 235_824_862},
	{"India", "IN", "IND", 1_417_173_173},
	{"Nepal", "NP", "NPL", 30_547_580},
	{"Bangladesh", "BD", "BGD", 171_186_372},
	{"China", "CN", "CHN", 1_412_175_000},
	{"Mongolia", "MN", "MNG", 3_398_366},
	{"Japan", "JP", "JPN", 125_124_989},
	{"South Korea", "KR", "KOR", 51_628_117},
	{"North Korea", "KP", "PRK", 26_069_416},
	{"Taiwan", "TW", "TWN", 23_264_640},
	{"Vietnam", "VN", "VNM", 98_186_856},
	{"Laos", "LA", "LAO", 7_529_475},
	{"Thailand", "TH", "THA", 71_697_030},
	{"Myanmar (Burma)", "MM", "MMR", 54_179_306},
	{"Cambodia", "KH", "KHM", 16_767_842},
	{"Malaysia", "MY", "MYS", 33_938_221},
	{"Singapore", "SG", "SGP", 5_637_022},
	{"Brunei", "BN", "BRN", 449_002},
	{"Indonesia", "ID", "IDN", 275_501_339},
	{"Philippines", "PH", "PHL", 115_559_009},
	{"Australia", "AU", "AUS", 26_005_540},
	{"New Zealand", "NZ", "NZL", 5_124_100},
}
