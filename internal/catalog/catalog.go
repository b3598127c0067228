// Package catalog holds the static table of investment opportunity candidates
// used by the deterministic brief engine. The entries are pure data: each
// mechanism/rationale is a template whose {{event}}, {{drivers}}, {{timing}}
// and {{sentiment}} placeholders are resolved per request.
package catalog

import "github.com/marketbrief/marketbrief/internal/models"

// Entry is one hand-authored opportunity candidate before template resolution.
type Entry struct {
	Ticker             string
	Company            string
	Sector             string
	Country            string
	ExpectedDirection  models.Sentiment
	TimeHorizon        models.TimeHorizon
	MechanismTemplate  string
	InvestabilityScore float64
	RationaleTemplate  string
	Sources            []string
}

// Entries returns the full catalog. Callers must treat the result as
// read-only shared data.
func Entries() []Entry {
	return baseOpportunities
}

// Size returns the number of catalog entries.
func Size() int {
	return len(baseOpportunities)
}

var baseOpportunities = []Entry{
	{
		Ticker:             "NVDA",
		Company:            "NVIDIA Corp.",
		Sector:             "Technology",
		Country:            "United States",
		ExpectedDirection:  models.SentimentBullish,
		TimeHorizon:        models.HorizonMediumTerm,
		MechanismTemplate:  "{{event}} supports capex for accelerated computing and AI infrastructure build-outs.",
		InvestabilityScore: 8,
		RationaleTemplate:  "Leverage leadership in data center GPUs as enterprises pursue {{drivers}}; monitor supply constraints through {{timing}}.",
		Sources:            []string{"Company filings", "Bloomberg Intelligence thematic snapshot"},
	},
	{
		Ticker:             "MSFT",
		Company:            "Microsoft Corp.",
		Sector:             "Technology",
		Country:            "United States",
		ExpectedDirection:  models.SentimentBullish,
		TimeHorizon:        models.HorizonMediumTerm,
		MechanismTemplate:  "Hyperscale cloud demand linked to {{event}} drives Azure consumption and AI services monetization.",
		InvestabilityScore: 8,
		RationaleTemplate:  "Cross-sell of analytics, security, and AI tooling into enterprise workloads tied to {{drivers}} underpins durable growth.",
		Sources:            []string{"Microsoft earnings transcripts", "Reuters enterprise software coverage"},
	},
	{
		Ticker:             "ASML",
		Company:            "ASML Holding NV",
		Sector:             "Technology",
		Country:            "Netherlands",
		ExpectedDirection:  models.SentimentBullish,
		TimeHorizon:        models.HorizonLongTerm,
		MechanismTemplate:  "{{event}} accelerates advanced node investment, sustaining EUV tool backlog through the strategic horizon.",
		InvestabilityScore: 7,
		RationaleTemplate:  "High switching costs and limited EUV supply create pricing power if governments subsidize {{drivers}}.",
		Sources:            []string{"ASML capital markets day", "Financial Times semiconductor policy coverage"},
	},
	{
		Ticker:             "TSM",
		Company:            "Taiwan Semiconductor Manufacturing Co.",
		Sector:             "Technology",
		Country:            "Taiwan",
		ExpectedDirection:  models.SentimentBullish,
		TimeHorizon:        models.HorizonLongTerm,
		MechanismTemplate:  "Foundry mix shifts toward high-performance computing tied to {{event}}, sustaining premium pricing.",
		InvestabilityScore: 7,
		RationaleTemplate:  "Geopolitical incentives and client prepayments provide funding bridge for capex aligned with {{drivers}}.",
		Sources:            []string{"Taiwan Ministry of Economic Affairs", "WSJ semiconductor supply chain updates"},
	},
	{
		Ticker:             "PLTR",
		Company:            "Palantir Technologies",
		Sector:             "Emerging Tech / AI",
		Country:            "United States",
		ExpectedDirection:  models.SentimentBullish,
		TimeHorizon:        models.HorizonShortTerm,
		MechanismTemplate:  "{{event}} expands demand for real-time decision platforms across defense and critical industries.",
		InvestabilityScore: 6,
		RationaleTemplate:  "Commercial pipeline benefits from urgency around {{drivers}}, though valuation requires disciplined sizing.",
		Sources:            []string{"Department of Defense contract database", "Bloomberg defense tech briefings"},
	},
	{
		Ticker:             "LMT",
		Company:            "Lockheed Martin",
		Sector:             "Defense",
		Country:            "United States",
		ExpectedDirection:  models.SentimentBullish,
		TimeHorizon:        models.HorizonMediumTerm,
		MechanismTemplate:  "Defense procurement linked to {{event}} supports backlog visibility and sustainment revenue.",
		InvestabilityScore: 7,
		RationaleTemplate:  "Budget reallocation toward deterrence and missile defense tied to {{drivers}} underpins free cash flow yield.",
		Sources:            []string{"US DoD budget request", "Jane’s Defense Weekly"},
	},
	{
		Ticker:             "RTX",
		Company:            "RTX Corp.",
		Sector:             "Defense",
		Country:            "United States",
		ExpectedDirection:  models.SentimentBullish,
		TimeHorizon:        models.HorizonMediumTerm,
		MechanismTemplate:  "{{event}} drives demand for integrated air defense and sensor upgrades across NATO partners.",
		InvestabilityScore: 6,
		RationaleTemplate:  "Balanced civil/military exposure offers hedge as airlines and governments respond to {{drivers}}.",
		Sources:            []string{"NATO procurement releases", "Reuters aerospace coverage"},
	},
	{
		Ticker:             "CVX",
		Company:            "Chevron Corp.",
		Sector:             "Energy",
		Country:            "United States",
		ExpectedDirection:  models.SentimentBullish,
		TimeHorizon:        models.HorizonShortTerm,
		MechanismTemplate:  "{{event}} tightens supply-demand expectations, elevating upstream realizations and cash returns.",
		InvestabilityScore: 6,
		RationaleTemplate:  "Capital discipline plus variable buybacks offer torque if commodity volatility from {{drivers}} persists.",
		Sources:            []string{"IEA Oil Market Report", "Bloomberg commodity strategy"},
	},
	{
		Ticker:             "XLE",
		Company:            "Energy Select Sector SPDR ETF",
		Sector:             "Energy",
		Country:            "United States",
		ExpectedDirection:  models.SentimentBullish,
		TimeHorizon:        models.HorizonShortTerm,
		MechanismTemplate:  "Sector ETF captures broad energy beta as {{event}} reprices supply risks and refining margins.",
		InvestabilityScore: 5,
		RationaleTemplate:  "Diversified holdings mitigate single-name risk while retaining upside to {{drivers}}.",
		Sources:            []string{"IEA Oil Market Report", "FT energy markets coverage"},
	},
	{
		Ticker:             "VWS.CO",
		Company:            "Vestas Wind Systems",
		Sector:             "Industrials",
		Country:            "Denmark",
		ExpectedDirection:  models.SentimentBullish,
		TimeHorizon:        models.HorizonLongTerm,
		MechanismTemplate:  "{{event}} potentially accelerates renewable auctions and grid-scale wind deployment.",
		InvestabilityScore: 6,
		RationaleTemplate:  "Policy support and IRA-style incentives aligned with {{drivers}} could expand order intake and service margin.",
		Sources:            []string{"IEA Renewable Outlook", "Bloomberg New Energy Finance"},
	},
	{
		Ticker:             "ABB",
		Company:            "ABB Ltd.",
		Sector:             "Industrials",
		Country:            "Switzerland",
		ExpectedDirection:  models.SentimentBullish,
		TimeHorizon:        models.HorizonMediumTerm,
		MechanismTemplate:  "Automation and grid modernization capex tied to {{event}} support robotics and electrification demand.",
		InvestabilityScore: 6,
		RationaleTemplate:  "Strong backlog and software attach rates provide resilience as clients execute on {{drivers}}.",
		Sources:            []string{"Company investor day", "Reuters industrial automation coverage"},
	},
	{
		Ticker:             "CAT",
		Company:            "Caterpillar Inc.",
		Sector:             "Industrials",
		Country:            "United States",
		ExpectedDirection:  models.SentimentBullish,
		TimeHorizon:        models.HorizonMediumTerm,
		MechanismTemplate:  "{{event}} increases infrastructure and resource development activity supporting heavy machinery orders.",
		InvestabilityScore: 6,
		RationaleTemplate:  "Dealer inventories lean while pricing power endures if fiscal programs around {{drivers}} materialize.",
		Sources:            []string{"US Infrastructure Investment updates", "Wall Street Journal construction reports"},
	},
	{
		Ticker:             "LIN",
		Company:            "Linde Plc",
		Sector:             "Materials",
		Country:            "Ireland",
		ExpectedDirection:  models.SentimentBullish,
		TimeHorizon:        models.HorizonLongTerm,
		MechanismTemplate:  "Industrial gas demand linked to {{event}} supports long-term contracts in hydrogen and clean fuels.",
		InvestabilityScore: 6,
		RationaleTemplate:  "Project backlog benefits from on-site agreements as clients scale {{drivers}} technologies.",
		Sources:            []string{"Company sustainability report", "Financial Times energy transition coverage"},
	},
	{
		Ticker:             "ADBE",
		Company:            "Adobe Inc.",
		Sector:             "Technology",
		Country:            "United States",
		ExpectedDirection:  models.SentimentBullish,
		TimeHorizon:        models.HorizonMediumTerm,
		MechanismTemplate:  "{{event}} lifts demand for content automation and AI-native productivity suites.",
		InvestabilityScore: 5,
		RationaleTemplate:  "Generative AI integration helps expand ARPU as marketing teams react to {{drivers}}.",
		Sources:            []string{"Adobe earnings call", "Reuters digital media coverage"},
	},
	{
		Ticker:             "SHOP",
		Company:            "Shopify Inc.",
		Sector:             "Consumer Goods",
		Country:            "Canada",
		ExpectedDirection:  models.SentimentBullish,
		TimeHorizon:        models.HorizonMediumTerm,
		MechanismTemplate:  "{{event}} catalyzes omnichannel investment and cross-border commerce upgrades.",
		InvestabilityScore: 5,
		RationaleTemplate:  "Merchants retool logistics and storefronts to align with {{drivers}}, aiding take-rate expansion.",
		Sources:            []string{"Company investor presentations", "Bloomberg e-commerce insights"},
	},
	{
		Ticker:             "MCD",
		Company:            "McDonald's Corp.",
		Sector:             "Consumer Goods",
		Country:            "United States",
		ExpectedDirection:  models.SentimentNeutral,
		TimeHorizon:        models.HorizonShortTerm,
		MechanismTemplate:  "Global franchise footprint offers defensive cashflows if {{event}} increases volatility.",
		InvestabilityScore: 4,
		RationaleTemplate:  "Value positioning and menu localization provide hedge against demand shocks from {{drivers}}.",
		Sources:            []string{"Company quarterly filings", "WSJ consumer trends coverage"},
	},
	{
		Ticker:             "JNJ",
		Company:            "Johnson & Johnson",
		Sector:             "Healthcare",
		Country:            "United States",
		ExpectedDirection:  models.SentimentNeutral,
		TimeHorizon:        models.HorizonMediumTerm,
		MechanismTemplate:  "Defensive healthcare exposure offsets cyclical swings while capitalizes on {{event}}-driven policy spend.",
		InvestabilityScore: 5,
		RationaleTemplate:  "Diversified revenue mix and balance sheet strength provide ballast amid {{drivers}} uncertainty.",
		Sources:            []string{"Company filings", "Bloomberg Healthcare Outlook"},
	},
	{
		Ticker:             "UNH",
		Company:            "UnitedHealth Group",
		Sector:             "Healthcare",
		Country:            "United States",
		ExpectedDirection:  models.SentimentNeutral,
		TimeHorizon:        models.HorizonMediumTerm,
		MechanismTemplate:  "{{event}} could reshape reimbursement or utilization trends; diversified services platform manages variance.",
		InvestabilityScore: 5,
		RationaleTemplate:  "Optum analytics and insurance mix enable agile response to policy shifts from {{drivers}}.",
		Sources:            []string{"CMS policy releases", "Financial Times healthcare policy coverage"},
	},
	{
		Ticker:             "JPM",
		Company:            "JPMorgan Chase & Co.",
		Sector:             "Financials",
		Country:            "United States",
		ExpectedDirection:  models.SentimentBullish,
		TimeHorizon:        models.HorizonShortTerm,
		MechanismTemplate:  "{{event}} reshapes yield curve expectations, supporting net interest income and trading flows.",
		InvestabilityScore: 5,
		RationaleTemplate:  "Balance sheet optionality and investment banking rebound tied to {{drivers}} support premium valuation.",
		Sources:            []string{"Federal Reserve FOMC statements", "Reuters banking sector coverage"},
	},
	{
		Ticker:             "BX",
		Company:            "Blackstone Inc.",
		Sector:             "Financials",
		Country:            "United States",
		ExpectedDirection:  models.SentimentBullish,
		TimeHorizon:        models.HorizonMediumTerm,
		MechanismTemplate:  "{{event}} unlocks alternative asset inflows toward private credit, infrastructure, and real assets.",
		InvestabilityScore: 6,
		RationaleTemplate:  "Dry powder deployment aligned with {{drivers}} themes could accelerate fee-related earnings.",
		Sources:            []string{"Preqin fundraising data", "Bloomberg alternative asset commentary"},
	},
	{
		Ticker:             "EQIX",
		Company:            "Equinix Inc.",
		Sector:             "Real Estate",
		Country:            "United States",
		ExpectedDirection:  models.SentimentBullish,
		TimeHorizon:        models.HorizonLongTerm,
		MechanismTemplate:  "{{event}} amplifies demand for interconnection and edge computing colocation.",
		InvestabilityScore: 6,
		RationaleTemplate:  "Global footprint and pricing escalators capture secular data growth from {{drivers}}.",
		Sources:            []string{"Company investor relations", "Gartner data center outlook"},
	},
	{
		Ticker:             "PLD",
		Company:            "Prologis Inc.",
		Sector:             "Real Estate",
		Country:            "United States",
		ExpectedDirection:  models.SentimentBullish,
		TimeHorizon:        models.HorizonMediumTerm,
		MechanismTemplate:  "{{event}} drives reshoring and inventory reconfiguration, supporting logistics real estate demand.",
		InvestabilityScore: 5,
		RationaleTemplate:  "High-barrier locations and CPI-linked leases monetize supply chain adjustments around {{drivers}}.",
		Sources:            []string{"Company logistics report", "WSJ supply chain coverage"},
	},
	{
		Ticker:             "DUK",
		Company:            "Duke Energy",
		Sector:             "Utilities",
		Country:            "United States",
		ExpectedDirection:  models.SentimentNeutral,
		TimeHorizon:        models.HorizonLongTerm,
		MechanismTemplate:  "Utility capex plans adjust to grid reliability mandates emerging from {{event}}.",
		InvestabilityScore: 4,
		RationaleTemplate:  "Regulated returns provide income stability; monitor regulatory lag as {{drivers}} evolve.",
		Sources:            []string{"State utility commission filings", "Reuters power markets coverage"},
	},
	{
		Ticker:             "HYG",
		Company:            "iShares iBoxx High Yield Corp Bond ETF",
		Sector:             "Financials",
		Country:            "United States",
		ExpectedDirection:  models.SentimentBearish,
		TimeHorizon:        models.HorizonShortTerm,
		MechanismTemplate:  "{{event}} could widen credit spreads as investors reprice default risk.",
		InvestabilityScore: 4,
		RationaleTemplate:  "High beta credit faces drawdown risk if {{drivers}} undermine liquidity; consider hedges.",
		Sources:            []string{"ICE BofA High Yield Index data", "Bloomberg credit strategy"},
	},
	{
		Ticker:             "ASHR",
		Company:            "Xtrackers Harvest CSI 300 China A ETF",
		Sector:             "Emerging Markets",
		Country:            "China",
		ExpectedDirection:  models.SentimentBearish,
		TimeHorizon:        models.HorizonMediumTerm,
		MechanismTemplate:  "{{event}} may intensify regulatory pressure or capital restrictions impacting mainland equities.",
		InvestabilityScore: 3,
		RationaleTemplate:  "Sensitivity to policy signals and global positioning makes ASHR a tactical hedge against {{drivers}}.",
		Sources:            []string{"PBOC policy announcements", "Financial Times China markets coverage"},
	},
	{
		Ticker:             "RKLB",
		Company:            "Rocket Lab USA Inc.",
		Sector:             "Space",
		Country:            "United States",
		ExpectedDirection:  models.SentimentBullish,
		TimeHorizon:        models.HorizonLongTerm,
		MechanismTemplate:  "{{event}} boosts demand for responsive launch and satellite deployment capabilities as governments realign space strategy.",
		InvestabilityScore: 5,
		RationaleTemplate:  "Backlog growth and diversified missions tied to {{drivers}} increase visibility; monitor execution risk as production scales.",
		Sources:            []string{"US Space Force procurement releases", "Bloomberg space economy coverage"},
	},
	{
		Ticker:             "IONQ",
		Company:            "IonQ Inc.",
		Sector:             "Quantum Computing",
		Country:            "United States",
		ExpectedDirection:  models.SentimentBullish,
		TimeHorizon:        models.HorizonLongTerm,
		MechanismTemplate:  "{{event}} accelerates funding for quantum research, positioning IonQ to benefit from early commercial pilots.",
		InvestabilityScore: 4,
		RationaleTemplate:  "Partnership pipeline aligned with {{drivers}} offers optionality; valuation volatility warrants staged exposure.",
		Sources:            []string{"National quantum initiative updates", "Financial Times emerging technology coverage"},
	},
}
