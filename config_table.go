package odex

// Raw rational weight data for each supported (order, cores) scheme,
// transcribed verbatim from the reference scheme derivation. Each
// weight is a numerator/denominator pair of decimal-literal strings so
// it can be parsed at full precision with math/big before rounding
// once to float64. See the weights field below and evalRational in
// config.go.
type rational struct {
	num, den string
}

type configRow struct {
	order, cores int
	isbn         float32
	steps        []int
	weights      []rational
}

// configTable holds the full admissible set of (order, cores)
// schemes. An implementation MUST reject any other pair (see
// [Lookup]). The (steps, weights) pairs are fixed by the scheme's
// derivation and are reproduced bit-for-bit from the reference
// source constants; do not "simplify" or re-derive them.
var configTable = []configRow{
	{
		order: 8, cores: 3, isbn: 0.5799,
		steps: []int{2, 16, 18, 20},
		weights: []rational{
			{"-1", "498960"},
			{"65536", "9639"},
			{"-531441", "25840"},
			{"250000", "16929"},
		},
	},
	{
		order: 8, cores: 6, isbn: 0.7675,
		steps: []int{2, 4, 6, 10, 8, 12, 14, 16, 18, 20, 22},
		weights: []rational{
			{"-32952289146985386285870523118228405533963", "8936455970950449255004500793755553651752960000"},
			{"577598451788090848795408620332945866052063", "7941577083559481271537202853825736155366400000"},
			{"85250432905463981456535914913119571901637", "122585129917015764814876554098155742822400000"},
			{"1677712357266484804784340039643670407130779", "200176613749290063312100817780124401799266304"},
			{"2165", "767488"},
			{"13805", "611712"},
			{"4553", "72080"},
			{"14503", "66520"},
			{"27058", "7627"},
			{"-86504", "5761"},
			{"40916", "3367"},
		},
	},
	{
		order: 8, cores: 8, isbn: 0.8176,
		steps: []int{2, 26, 28, 30, 4, 6, 8, 10, 12, 14, 16, 18, 20, 22, 24},
		weights: []rational{
			{"-298857882660976887631476729981565763568862608650111", "418309165211319520505929581345807932301941968522444800000"},
			{"54841752514603990885070634946141665271319680054382001869", "7796886807193233666234782137510621223379391720980480000"},
			{"-6653387365673258947809103108875129803987861502988566763111", "258933840128714385112278118363748576398397951218483200000"},
			{"54824130826438857272172198804804549641875992497090297", "2867295913488162504174863944731843756709312047611904"},
			{"6833", "476577792"},
			{"10847", "91078656"},
			{"15235", "34643968"},
			{"383", "321152"},
			{"543", "198784"},
			{"9947", "1741056"},
			{"6243", "543104"},
			{"6875", "296192"},
			{"1401", "28496"},
			{"17713", "152688"},
			{"6375", "19264"},
		},
	},
	{
		order: 12, cores: 4, isbn: 0.4515,
		steps: []int{2, 8, 12, 14, 16, 20},
		weights: []rational{
			{"-1", "157172400"},
			{"4096", "155925"},
			{"-59049", "15925"},
			{"282475249", "15752880"},
			{"-4194304", "178605"},
			{"9765625", "954261"},
		},
	},
	{
		order: 12, cores: 8, isbn: 0.7116,
		steps: []int{2, 8, 10, 16, 24, 26, 4, 6, 12, 14, 18, 20, 22, 28, 30},
		weights: []rational{
			{"-1703338201142081344537976944145527211643949659234240721389419", "23648864513368626787371236562816879339803777703368508907192320000000000"},
			{"28566269141029842679611128435317644430416456404930682840133", "1235974431889711160110009091223554591673172898357667840000000000"},
			{"1661823701099033749417849761031734684833334503871915993221173", "16039458446054067082385395561773359826518343984165155963236515840"},
			{"297002124618857676974925717053765105019453996390390125558609", "160179791893258872271743935365682835875612617239142743750000000"},
			{"-5460019744535790351900106662607930219497507008045052153266932061", "109934733569605065449891190520737372992080772483328000000000000"},
			{"4518788471550054059819510090434891452487764271627191207619322033987247547", "24806501237799258867871926464493230076717249339197736615936000000000000"},
			{"235", "21030240256"},
			{"4147", "1612709888"},
			{"11521", "39731200"},
			{"2375", "3528704"},
			{"6435", "708736"},
			{"1291", "15780"},
			{"11311", "4672"},
			{"-180864", "751"},
			{"222080", "2079"},
		},
	},
	{
		order: 16, cores: 5, isbn: 0.4162,
		steps: []int{2, 8, 10, 12, 14, 16, 18, 22},
		weights: []rational{
			{"-1", "365783040000"},
			{"4194304", "456080625"},
			{"-6103515625", "11955879936"},
			{"544195584", "74449375"},
			{"-678223072849", "17079828480"},
			{"68719476736", "749962395"},
			{"-2541865828329", "31682560000"},
			{"379749833583241", "16878274560000"},
		},
	},
}
