package board

import (
	"github.com/dmesquita/olimpicos/internal/model"
)

// Service provides board lookups. The track layout is fixed and shared by
// every game, so the service generates it once and hands out read-only views.
type Service struct {
	board *model.Board
}

// New creates a new BoardService
func New() *Service {
	return &Service{
		board: model.GenerateBoard(),
	}
}

// Board returns the full track layout
func (s *Service) Board() *model.Board {
	return s.board
}

// SpaceAt returns the space at the given index
func (s *Service) SpaceAt(index int) model.Space {
	return s.board.At(index)
}

// NextSameTheme finds the next space ahead of from with the same theme.
// Returns -1 when no such space exists before the finish.
func (s *Service) NextSameTheme(from int) int {
	return s.board.NextSameTheme(from)
}

// Interface for dependency injection
type BoardService interface {
	Board() *model.Board
	SpaceAt(index int) model.Space
	NextSameTheme(from int) int
}

var _ BoardService = (*Service)(nil)
