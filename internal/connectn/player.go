package connectn

// Player supplies moves to a Game. Decide receives a snapshot of the board
// and the color the player is dropping, and must return a column index for
// which board.AvailableColumn is true. Any error ends the game.
type Player interface {
	Name() string
	Decide(board *Board, color Color) (int, error)
}

// PlayerFunc adapts a function into a Player.
type PlayerFunc struct {
	PlayerName string
	DecideFunc func(board *Board, color Color) (int, error)
}

// Name returns the player's display name.
func (p PlayerFunc) Name() string { return p.PlayerName }

// Decide calls DecideFunc.
func (p PlayerFunc) Decide(board *Board, color Color) (int, error) {
	return p.DecideFunc(board, color)
}

// Presenter shows the final board and announcement when a game ends.
// Errors are returned from Game.Resume.
type Presenter interface {
	Present(board *Board, announcement string) error
}
