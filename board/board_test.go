package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoardLayout(t *testing.T) {
	assert.Equal(t, "Go", SpaceAt(0).Name)
	assert.Equal(t, "Mayfair", SpaceAt(39).Name)
	assert.Equal(t, "Go", SpaceAt(40).Name, "index wraps around the board")
	assert.Equal(t, "Mayfair", SpaceAt(-1).Name)
}

func TestGroupSizes(t *testing.T) {
	assert.Equal(t, 2, GroupSize("dark-purple"))
	assert.Equal(t, 2, GroupSize("dark-blue"))
	assert.Equal(t, 3, GroupSize("purple"))
	assert.Equal(t, 3, GroupSize("green"))
	assert.Equal(t, 4, GroupSize(GroupStation))
	assert.Equal(t, 2, GroupSize(GroupUtility))
	assert.Zero(t, GroupSize("no-such-group"))
}

func TestOwnable(t *testing.T) {
	for i := 0; i < Size; i++ {
		sp := SpaceAt(i)
		switch sp.Type {
		case Property, Station, Utility:
			assert.True(t, sp.Ownable(), sp.Name)
			assert.Positive(t, sp.Price, "%s must have a price", sp.Name)
			assert.NotEmpty(t, sp.Group, "%s must belong to a group", sp.Name)
		default:
			assert.False(t, sp.Ownable(), sp.Name)
			assert.Zero(t, sp.Price, sp.Name)
		}
	}
}

func TestRentSchedules(t *testing.T) {
	for i := 0; i < Size; i++ {
		sp := SpaceAt(i)
		switch sp.Type {
		case Property:
			assert.Len(t, sp.Rent, 6, "%s needs base, 1-4 house and hotel tiers", sp.Name)
		case Station:
			assert.Len(t, sp.Rent, 4, sp.Name)
		case Utility:
			assert.Empty(t, sp.Rent, "%s rent comes from dice multipliers", sp.Name)
		}
	}
}

func TestTaxSpaces(t *testing.T) {
	assert.Equal(t, Tax, SpaceAt(4).Type)
	assert.Equal(t, 200, SpaceAt(4).Tax)
	assert.Equal(t, Tax, SpaceAt(38).Type)
	assert.Equal(t, 100, SpaceAt(38).Tax)
}

func TestSpaceTypeString(t *testing.T) {
	assert.Equal(t, "property", Property.String())
	assert.Equal(t, "corner", Corner.String())
	assert.Equal(t, "unknown", SpaceType(99).String())
}
