package game

// sow empties pit and drops its stones one by one into the following pits,
// skipping the opponent's store, and returns the index of the last stone.
func sow(pits *[NumPits]int, pit int, mover Player) int {
	skip := mover.Opponent().Store()
	stones := pits[pit]
	pits[pit] = 0

	i := pit
	for stones > 0 {
		i = (i + 1) % NumPits
		if i == skip {
			continue
		}
		pits[i]++
		stones--
	}
	return i
}

// capture applies the capture rule after a sow ending at last and returns the
// number of stones moved into the mover's store.
func capture(pits *[NumPits]int, last int, mover Player) int {
	if !mover.Owns(last) || pits[last] != 1 {
		return 0
	}
	opposite := Opposite(last)
	if pits[opposite] == 0 {
		return 0
	}

	captured := pits[last] + pits[opposite]
	pits[mover.Store()] += captured
	pits[last], pits[opposite] = 0, 0
	return captured
}

// Preview reports what playing pit as player p would do to the board, without
// modifying it: whether it grants an extra turn and how many stones it captures.
// The pit must be one of p's non-empty pits.
func (b Board) Preview(p Player, pit int) (extraTurn bool, captured int) {
	pits := b.Pits
	last := sow(&pits, pit, p)
	return last == p.Store(), capture(&pits, last, p)
}

// DistanceToStore returns how many sowing steps separate pit from the owner's
// store, 1 for the pit next to the store.
func DistanceToStore(p Player, pit int) int {
	return p.Store() - pit
}
