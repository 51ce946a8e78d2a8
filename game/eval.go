package game

// Piece values
const (
	ManValue  = 1
	KingBonus = 2 // Extra value of a promoted piece
	WinScore  = 1000
)

// Evaluators by configuration name
var Evaluators = map[string]Evaluate{
	"material": EvaluateMaterial,
	"outcome":  EvaluateOutcome,
}

// EvaluateMaterial tallies each side's pieces, kings counting KingBonus extra, and returns the
// surplus of the player who just moved over the player to move.
func EvaluateMaterial(s State) int {
	p, ok := s.(*Position)
	if !ok {
		panic("unexpected state type")
	}
	return p.material(p.next.Other()) - p.material(p.next)
}

// EvaluateOutcome scores decided games as a win for the player who just moved (the side to
// move is blocked), drawn games as 0 and running games by material.
func EvaluateOutcome(s State) int {
	p, ok := s.(*Position)
	if !ok {
		panic("unexpected state type")
	}
	if p.quiet >= DrawPlies {
		return 0
	}
	if !p.hasMoves() {
		return WinScore
	}
	return EvaluateMaterial(p)
}

func (p *Position) material(side Side) int {
	men, kings := p.Count(side)
	return men*ManValue + kings*(ManValue+KingBonus)
}
