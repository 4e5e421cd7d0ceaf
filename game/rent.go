// game/rent.go
package game

import "github.com/quizopoly/gameserver/board"

// Rent computes the rent owed for landing on the space at index, given the
// current ownership snapshot. diceTotal feeds the utility multiplier.
// Deterministic: depends only on the slots array and the dice total.
func Rent(index int, slots *[board.Size]PropertySlot, diceTotal int) int {
	sp := board.SpaceAt(index)
	slot := slots[index]
	if slot.Owner == "" || !sp.Ownable() {
		return 0
	}

	switch sp.Type {
	case board.Station:
		owned := ownedInGroup(slots, board.GroupStation, slot.Owner)
		if owned == 0 {
			return 0
		}
		if owned > len(sp.Rent) {
			owned = len(sp.Rent)
		}
		return sp.Rent[owned-1]

	case board.Utility:
		if ownedInGroup(slots, board.GroupUtility, slot.Owner) == 1 {
			return diceTotal * 4
		}
		return diceTotal * 10

	case board.Property:
		if slot.Hotel {
			return sp.Rent[len(sp.Rent)-1]
		}
		if slot.Houses > 0 {
			tier := slot.Houses
			if tier > len(sp.Rent)-2 {
				tier = len(sp.Rent) - 2
			}
			return sp.Rent[tier]
		}
		if ownedInGroup(slots, sp.Group, slot.Owner) == board.GroupSize(sp.Group) {
			// Undeveloped monopoly doubles the base rent.
			return sp.Rent[0] * 2
		}
		return sp.Rent[0]
	}
	return 0
}

func ownedInGroup(slots *[board.Size]PropertySlot, group, owner string) int {
	count := 0
	for i := range slots {
		if slots[i].Owner == owner && board.SpaceAt(i).Group == group {
			count++
		}
	}
	return count
}
