// question/questions.go
package question

// Built-in question pool, categorized by topic and tiered by difficulty.
var pool = []Record{
	// Economics
	{
		Question:      "What does GDP stand for?",
		Options:       []string{"Gross Domestic Product", "General Domestic Price", "Global Development Plan", "Gross Development Profit"},
		CorrectAnswer: 0,
		Explanation:   "GDP, Gross Domestic Product, measures the total value of goods and services produced in a country.",
		Category:      "economics",
		Difficulty:    Easy,
	},
	{
		Question:      "If demand rises while supply stays the same, what happens to price?",
		Options:       []string{"It falls", "It rises", "It stays the same", "It becomes zero"},
		CorrectAnswer: 1,
		Explanation:   "With more buyers competing for the same quantity, the market price is bid upward.",
		Category:      "economics",
		Difficulty:    Easy,
	},
	{
		Question:      "What is inflation?",
		Options:       []string{"Falling unemployment", "A general rise in prices", "Rising exports", "A fall in interest rates"},
		CorrectAnswer: 1,
		Explanation:   "Inflation is a sustained increase in the general price level, reducing purchasing power.",
		Category:      "economics",
		Difficulty:    Easy,
	},
	{
		Question:      "Which body sets the UK's official interest rate?",
		Options:       []string{"HM Treasury", "The Bank of England", "The London Stock Exchange", "The World Bank"},
		CorrectAnswer: 1,
		Explanation:   "The Bank of England's Monetary Policy Committee sets the Bank Rate.",
		Category:      "economics",
		Difficulty:    Medium,
	},
	{
		Question:      "What is the term for a market dominated by a single seller?",
		Options:       []string{"Oligopoly", "Duopoly", "Monopoly", "Monopsony"},
		CorrectAnswer: 2,
		Explanation:   "A monopoly exists when one firm is the only supplier in a market.",
		Category:      "economics",
		Difficulty:    Easy,
	},
	{
		Question:      "What is opportunity cost?",
		Options:       []string{"The cost of raw materials", "The value of the next best alternative forgone", "Total fixed costs", "The price of borrowing money"},
		CorrectAnswer: 1,
		Explanation:   "Opportunity cost is what you give up by choosing one option over the next best alternative.",
		Category:      "economics",
		Difficulty:    Medium,
	},
	{
		Question:      "A Giffen good is unusual because demand for it...",
		Options:       []string{"Falls when income rises", "Rises when its price rises", "Is perfectly elastic", "Never changes"},
		CorrectAnswer: 1,
		Explanation:   "For a Giffen good the income effect of a price rise outweighs the substitution effect, so demand rises.",
		Category:      "economics",
		Difficulty:    Hard,
	},
	// Business
	{
		Question:      "What does ROI stand for?",
		Options:       []string{"Rate Of Interest", "Return On Investment", "Revenue Over Income", "Risk Of Insolvency"},
		CorrectAnswer: 1,
		Explanation:   "Return On Investment measures gain or loss relative to the amount invested.",
		Category:      "business",
		Difficulty:    Easy,
	},
	{
		Question:      "Which financial statement shows assets, liabilities and equity at a point in time?",
		Options:       []string{"Income statement", "Cash flow statement", "Balance sheet", "Trial balance"},
		CorrectAnswer: 2,
		Explanation:   "The balance sheet is a snapshot of what a business owns and owes on a given date.",
		Category:      "business",
		Difficulty:    Medium,
	},
	{
		Question:      "Gross profit equals revenue minus...",
		Options:       []string{"All expenses", "Cost of goods sold", "Tax", "Dividends"},
		CorrectAnswer: 1,
		Explanation:   "Gross profit is revenue less the direct cost of producing the goods sold.",
		Category:      "business",
		Difficulty:    Medium,
	},
	{
		Question:      "What is a fixed cost?",
		Options:       []string{"A cost that changes with output", "A cost that stays the same regardless of output", "A one-off startup cost", "A cost paid in cash only"},
		CorrectAnswer: 1,
		Explanation:   "Fixed costs such as rent do not vary with the level of production.",
		Category:      "business",
		Difficulty:    Easy,
	},
	{
		Question:      "In a limited company, shareholders' liability is limited to...",
		Options:       []string{"Their personal assets", "The amount they invested", "The company's total debt", "One year of profits"},
		CorrectAnswer: 1,
		Explanation:   "Limited liability means owners can lose at most what they put in.",
		Category:      "business",
		Difficulty:    Medium,
	},
	{
		Question:      "What does a price-to-earnings ratio of 20 mean?",
		Options:       []string{"The share pays 20% dividends", "Investors pay 20 times annual earnings per share", "The company earns 20% margins", "Earnings grew 20% last year"},
		CorrectAnswer: 1,
		Explanation:   "A P/E of 20 means the share price is twenty times the company's earnings per share.",
		Category:      "business",
		Difficulty:    Hard,
	},
	{
		Question:      "Which of these is an example of horizontal integration?",
		Options:       []string{"A brewery buying a pub chain", "A car maker buying a rival car maker", "A retailer buying a farm", "A bank buying a software firm"},
		CorrectAnswer: 1,
		Explanation:   "Horizontal integration is merging with a competitor at the same stage of production.",
		Category:      "business",
		Difficulty:    Hard,
	},
	// Mathematics
	{
		Question:      "What is 15% of 200?",
		Options:       []string{"15", "20", "30", "35"},
		CorrectAnswer: 2,
		Explanation:   "15% of 200 is 0.15 x 200 = 30.",
		Category:      "maths",
		Difficulty:    Easy,
	},
	{
		Question:      "A price of 80 is increased by 25%. What is the new price?",
		Options:       []string{"95", "100", "105", "110"},
		CorrectAnswer: 1,
		Explanation:   "25% of 80 is 20, so the new price is 100.",
		Category:      "maths",
		Difficulty:    Easy,
	},
	{
		Question:      "You invest 1000 at 10% simple interest per year. How much interest after 3 years?",
		Options:       []string{"100", "300", "331", "1300"},
		CorrectAnswer: 1,
		Explanation:   "Simple interest pays 100 per year, so 300 over three years.",
		Category:      "maths",
		Difficulty:    Medium,
	},
	{
		Question:      "You invest 1000 at 10% compound interest per year. What is it worth after 2 years?",
		Options:       []string{"1200", "1210", "1100", "1221"},
		CorrectAnswer: 1,
		Explanation:   "1000 x 1.1 x 1.1 = 1210; compounding earns interest on interest.",
		Category:      "maths",
		Difficulty:    Medium,
	},
	{
		Question:      "A shop buys an item for 60 and sells it for 90. What is the markup percentage on cost?",
		Options:       []string{"30%", "33%", "50%", "66%"},
		CorrectAnswer: 2,
		Explanation:   "The markup is 30 on a cost of 60, which is 50%.",
		Category:      "maths",
		Difficulty:    Hard,
	},
	// Geography
	{
		Question:      "Which city is home to the Bank of England?",
		Options:       []string{"Manchester", "Edinburgh", "London", "Birmingham"},
		CorrectAnswer: 2,
		Explanation:   "The Bank of England has been based on Threadneedle Street in London since 1734.",
		Category:      "geography",
		Difficulty:    Easy,
	},
	{
		Question:      "Which country uses the yen as its currency?",
		Options:       []string{"China", "South Korea", "Japan", "Thailand"},
		CorrectAnswer: 2,
		Explanation:   "The yen is the currency of Japan.",
		Category:      "geography",
		Difficulty:    Easy,
	},
	{
		Question:      "The headquarters of the World Trade Organization is in which city?",
		Options:       []string{"New York", "Geneva", "Brussels", "Paris"},
		CorrectAnswer: 1,
		Explanation:   "The WTO has been headquartered in Geneva, Switzerland since its founding in 1995.",
		Category:      "geography",
		Difficulty:    Medium,
	},
	{
		Question:      "Which of these countries is NOT in the eurozone?",
		Options:       []string{"Ireland", "Finland", "Sweden", "Portugal"},
		CorrectAnswer: 2,
		Explanation:   "Sweden is an EU member but has kept the krona rather than adopting the euro.",
		Category:      "geography",
		Difficulty:    Hard,
	},
	// History
	{
		Question:      "In which decade did the Wall Street Crash happen?",
		Options:       []string{"1910s", "1920s", "1930s", "1940s"},
		CorrectAnswer: 1,
		Explanation:   "The Wall Street Crash of October 1929 marked the start of the Great Depression.",
		Category:      "history",
		Difficulty:    Medium,
	},
	{
		Question:      "Which company was the first to reach a one trillion dollar market value?",
		Options:       []string{"Microsoft", "Amazon", "Apple", "PetroChina"},
		CorrectAnswer: 3,
		Explanation:   "PetroChina briefly passed one trillion dollars on its 2007 Shanghai debut, a decade before Apple.",
		Category:      "history",
		Difficulty:    Hard,
	},
	{
		Question:      "The South Sea Bubble was a famous financial crash in which country?",
		Options:       []string{"France", "Britain", "Spain", "Netherlands"},
		CorrectAnswer: 1,
		Explanation:   "The South Sea Company's collapse in 1720 ruined many British investors.",
		Category:      "history",
		Difficulty:    Hard,
	},
}
