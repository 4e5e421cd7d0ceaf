// board/board.go
package board

// SpaceType classifies one of the 40 board spaces.
type SpaceType int

const (
	Corner SpaceType = iota
	Property
	Station
	Utility
	Tax
	Chest
	Chance
)

func (t SpaceType) String() string {
	switch t {
	case Corner:
		return "corner"
	case Property:
		return "property"
	case Station:
		return "station"
	case Utility:
		return "utility"
	case Tax:
		return "tax"
	case Chest:
		return "chest"
	case Chance:
		return "chance"
	}
	return "unknown"
}

// Space is one immutable board space. Rent holds the tier schedule:
// for color properties [base, 1 house, 2, 3, 4, hotel], for stations one
// tier per station owned. Utilities ignore Rent and use dice multipliers.
type Space struct {
	Name  string
	Type  SpaceType
	Group string
	Price int
	Rent  []int
	Tax   int
}

// Ownable reports whether the space can have an owner.
func (s Space) Ownable() bool {
	return s.Type == Property || s.Type == Station || s.Type == Utility
}

// Size is the number of spaces on the board.
const Size = 40

// Group keys for the ownable spaces.
const (
	GroupStation = "station"
	GroupUtility = "utility"
)

var spaces = [Size]Space{
	{Name: "Go", Type: Corner},
	{Name: "Old Kent Road", Type: Property, Group: "dark-purple", Price: 60, Rent: []int{2, 10, 30, 90, 160, 250}},
	{Name: "Community Chest", Type: Chest},
	{Name: "Whitechapel Road", Type: Property, Group: "dark-purple", Price: 60, Rent: []int{4, 20, 60, 180, 320, 450}},
	{Name: "Income Tax", Type: Tax, Tax: 200},
	{Name: "King's Cross Station", Type: Station, Group: GroupStation, Price: 200, Rent: []int{25, 50, 100, 200}},
	{Name: "The Angel Islington", Type: Property, Group: "light-blue", Price: 100, Rent: []int{6, 30, 90, 270, 400, 550}},
	{Name: "Chance", Type: Chance},
	{Name: "Euston Road", Type: Property, Group: "light-blue", Price: 100, Rent: []int{6, 30, 90, 270, 400, 550}},
	{Name: "Pentonville Road", Type: Property, Group: "light-blue", Price: 120, Rent: []int{8, 40, 100, 300, 450, 600}},
	{Name: "Jail", Type: Corner},
	{Name: "Pall Mall", Type: Property, Group: "purple", Price: 140, Rent: []int{10, 50, 150, 450, 625, 750}},
	{Name: "Electric Company", Type: Utility, Group: GroupUtility, Price: 150},
	{Name: "Whitehall", Type: Property, Group: "purple", Price: 140, Rent: []int{10, 50, 150, 450, 625, 750}},
	{Name: "Northumberland Avenue", Type: Property, Group: "purple", Price: 160, Rent: []int{12, 60, 180, 500, 700, 900}},
	{Name: "Marylebone Station", Type: Station, Group: GroupStation, Price: 200, Rent: []int{25, 50, 100, 200}},
	{Name: "Bow Street", Type: Property, Group: "orange", Price: 180, Rent: []int{14, 70, 200, 550, 750, 950}},
	{Name: "Community Chest", Type: Chest},
	{Name: "Marlborough Street", Type: Property, Group: "orange", Price: 180, Rent: []int{14, 70, 200, 550, 750, 950}},
	{Name: "Vine Street", Type: Property, Group: "orange", Price: 200, Rent: []int{16, 80, 220, 600, 800, 1000}},
	{Name: "Free Parking", Type: Corner},
	{Name: "The Strand", Type: Property, Group: "red", Price: 220, Rent: []int{18, 90, 250, 700, 875, 1050}},
	{Name: "Chance", Type: Chance},
	{Name: "Fleet Street", Type: Property, Group: "red", Price: 220, Rent: []int{18, 90, 250, 700, 875, 1050}},
	{Name: "Trafalgar Square", Type: Property, Group: "red", Price: 240, Rent: []int{20, 100, 300, 750, 925, 1100}},
	{Name: "Fenchurch Street Station", Type: Station, Group: GroupStation, Price: 200, Rent: []int{25, 50, 100, 200}},
	{Name: "Leicester Square", Type: Property, Group: "yellow", Price: 260, Rent: []int{22, 110, 330, 800, 975, 1150}},
	{Name: "Coventry Street", Type: Property, Group: "yellow", Price: 260, Rent: []int{22, 110, 330, 800, 975, 1150}},
	{Name: "Water Works", Type: Utility, Group: GroupUtility, Price: 150},
	{Name: "Piccadilly", Type: Property, Group: "yellow", Price: 280, Rent: []int{24, 120, 360, 850, 1025, 1200}},
	{Name: "Go To Jail", Type: Corner},
	{Name: "Regent Street", Type: Property, Group: "green", Price: 300, Rent: []int{26, 130, 390, 900, 1100, 1275}},
	{Name: "Oxford Street", Type: Property, Group: "green", Price: 300, Rent: []int{26, 130, 390, 900, 1100, 1275}},
	{Name: "Community Chest", Type: Chest},
	{Name: "Bond Street", Type: Property, Group: "green", Price: 320, Rent: []int{28, 150, 450, 1000, 1200, 1400}},
	{Name: "Liverpool Street Station", Type: Station, Group: GroupStation, Price: 200, Rent: []int{25, 50, 100, 200}},
	{Name: "Chance", Type: Chance},
	{Name: "Park Lane", Type: Property, Group: "dark-blue", Price: 350, Rent: []int{35, 175, 500, 1100, 1300, 1500}},
	{Name: "Super Tax", Type: Tax, Tax: 100},
	{Name: "Mayfair", Type: Property, Group: "dark-blue", Price: 400, Rent: []int{50, 200, 600, 1400, 1700, 2000}},
}

var groupSizes map[string]int

func init() {
	groupSizes = make(map[string]int)
	for _, s := range spaces {
		if s.Group != "" {
			groupSizes[s.Group]++
		}
	}
}

// SpaceAt returns the space at the given index, wrapping around the board.
func SpaceAt(index int) Space {
	return spaces[((index%Size)+Size)%Size]
}

// GroupSize returns how many spaces belong to a color group; 0 for an
// unknown group.
func GroupSize(group string) int {
	return groupSizes[group]
}
