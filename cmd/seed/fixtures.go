package main

import "github.com/shopspring/decimal"

type Industry struct {
	Code        string
	Name        string
	Description string
}

type Metric struct {
	Type       string
	Value      decimal.Decimal
	Unit       string
	PeriodType string
	PeriodDate string
}

type Quote struct {
	DaysAgo   int
	Price     decimal.Decimal
	Volume    int64
	MarketCap decimal.Decimal
}

type Headline struct {
	DaysAgo int
	Text    string
	Score   decimal.Decimal
}

type Company struct {
	Name         string
	Ticker       string
	IndustryCode string
	NAICSCode    string
	SICCode      string
	MarketCap    decimal.Decimal
	Country      string
	FoundedDate  string
	Employees    int
	Website      string
	Description  string
	Metrics      []Metric
	Quotes       []Quote
	Headlines    []Headline
}

func d(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

var industries = []Industry{
	{"TECH", "Technology", "Software, hardware e serviços de tecnologia"},
	{"FIN", "Financial Services", "Bancos, seguradoras e meios de pagamento"},
	{"HLTH", "Healthcare", "Farmacêuticas, equipamentos e serviços de saúde"},
	{"ENER", "Energy", "Petróleo, gás e energia renovável"},
}

var companies = []Company{
	{
		Name: "Northwind Cloud", Ticker: "NWC", IndustryCode: "TECH", NAICSCode: "518210", SICCode: "7374",
		MarketCap: d("182400000000"), Country: "US", FoundedDate: "2006-04-12", Employees: 48000,
		Website:     "https://northwind.example.com",
		Description: "Cloud infrastructure and data platform provider",
		Metrics: []Metric{
			{"revenue", d("21500000000"), "USD", "quarterly", "2024-03-31"},
			{"revenue", d("20100000000"), "USD", "quarterly", "2023-12-31"},
			{"revenue_growth", d("12.4"), "percent", "quarterly", "2024-03-31"},
			{"net_income", d("3900000000"), "USD", "quarterly", "2024-03-31"},
		},
		Quotes: []Quote{
			{1, d("412.18"), 5200000, d("182400000000")},
			{2, d("405.77"), 4800000, d("179500000000")},
		},
		Headlines: []Headline{
			{3, "Northwind Cloud expands data center footprint in Europe", d("0.62")},
			{10, "Analysts raise Northwind Cloud price targets after earnings", d("0.71")},
		},
	},
	{
		Name: "Contoso Software", Ticker: "CSW", IndustryCode: "TECH", NAICSCode: "511210", SICCode: "7372",
		MarketCap: d("96300000000"), Country: "US", FoundedDate: "1998-09-01", Employees: 31000,
		Website:     "https://contoso.example.com",
		Description: "Enterprise software for finance and operations teams",
		Metrics: []Metric{
			{"revenue", d("8700000000"), "USD", "quarterly", "2024-03-31"},
			{"revenue_growth", d("7.9"), "percent", "quarterly", "2024-03-31"},
			{"net_income", d("1600000000"), "USD", "quarterly", "2024-03-31"},
		},
		Quotes: []Quote{
			{1, d("188.40"), 3100000, d("96300000000")},
		},
		Headlines: []Headline{
			{5, "Contoso Software faces delays in product launch", d("-0.35")},
		},
	},
	{
		Name: "Fabrikam Bank", Ticker: "FBK", IndustryCode: "FIN", NAICSCode: "522110", SICCode: "6021",
		MarketCap: d("64100000000"), Country: "GB", FoundedDate: "1921-02-14", Employees: 72000,
		Website:     "https://fabrikam.example.com",
		Description: "Retail and commercial banking group",
		Metrics: []Metric{
			{"revenue", d("11200000000"), "USD", "quarterly", "2024-03-31"},
			{"revenue_growth", d("3.1"), "percent", "quarterly", "2024-03-31"},
		},
		Quotes: []Quote{
			{1, d("52.10"), 9100000, d("64100000000")},
		},
		Headlines: []Headline{
			{7, "Fabrikam Bank reports stable deposits", d("0.12")},
		},
	},
	{
		Name: "Litware Health", Ticker: "LWH", IndustryCode: "HLTH", NAICSCode: "325412", SICCode: "2834",
		MarketCap: d("41800000000"), Country: "DE", FoundedDate: "1987-06-30", Employees: 26000,
		Website:     "https://litware.example.com",
		Description: "Pharmaceutical research and medical devices",
		Metrics: []Metric{
			{"revenue", d("5400000000"), "USD", "quarterly", "2024-03-31"},
			{"revenue_growth", d("15.6"), "percent", "quarterly", "2024-03-31"},
		},
		Quotes: []Quote{
			{1, d("97.65"), 2400000, d("41800000000")},
		},
	},
}
