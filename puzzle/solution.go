package puzzle

// Move is one ring transfer identified by ring size
type Move struct {
	Size int
	From PoleID
	To   PoleID
}

// Solve returns the optimal move sequence for n rings from one pole to another
func Solve(n int, from, to PoleID) []Move {
	via := PoleID(3) - from - to
	moves := make([]Move, 0, 1<<n-1)
	var step func(k int, from, to, via PoleID)
	step = func(k int, from, to, via PoleID) {
		if k == 0 {
			return
		}
		step(k-1, from, via, to)
		moves = append(moves, Move{Size: k, From: from, To: to})
		step(k-1, via, to, from)
	}
	step(n, from, to, via)
	return moves
}
