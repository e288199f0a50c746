package board

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/dmesquita/olimpicos/internal/model"
)

type BoardServiceSuite struct {
	suite.Suite
	service *Service
}

func TestBoardServiceSuite(t *testing.T) {
	suite.Run(t, new(BoardServiceSuite))
}

func (s *BoardServiceSuite) SetupTest() {
	s.service = New()
}

func (s *BoardServiceSuite) TestBoardLength() {
	s.Len(s.service.Board().Spaces, model.BoardLength)
}

func (s *BoardServiceSuite) TestStartAndFinish() {
	s.Equal(model.SpaceStart, s.service.SpaceAt(0).Type)
	s.Equal(model.SpaceFinish, s.service.SpaceAt(model.BoardLength-1).Type)
}

func (s *BoardServiceSuite) TestSpecialSpacesEveryEighth() {
	for i := 8; i < model.BoardLength-1; i += 8 {
		s.Equal(model.SpaceSpecial, s.service.SpaceAt(i).Type, "space %d", i)
	}
}

func (s *BoardServiceSuite) TestThemeCycle() {
	// Space 1 is the first theme space; themes cycle with the index
	s.Equal(model.Theme("Odisseia"), s.service.SpaceAt(1).Theme)
	s.Equal(model.Theme("Deuses"), s.service.SpaceAt(2).Theme)
	s.Equal(model.Theme("Ilíada"), s.service.SpaceAt(7).Theme)
	// 8 is special, no theme
	s.Equal(model.Theme(""), s.service.SpaceAt(8).Theme)
	s.Equal(model.Theme("Deuses"), s.service.SpaceAt(9).Theme)
}

func (s *BoardServiceSuite) TestNextSameTheme() {
	// Space 9 has theme Deuses (9 % 7 = 2); the next Deuses space is 16... but
	// 16 is special (16 % 8 == 0), so generation skips it and the next one with
	// the theme is 23 (23 % 7 = 2).
	next := s.service.NextSameTheme(9)
	s.Equal(23, next)
	s.Equal(s.service.SpaceAt(9).Theme, s.service.SpaceAt(next).Theme)
}

func (s *BoardServiceSuite) TestNextSameThemeAdjacentCycle() {
	// Space 1 (Odisseia); next occurrence is 1 + 7 = 8, which is special, so 15
	s.Equal(15, s.service.NextSameTheme(1))
}

func (s *BoardServiceSuite) TestNextSameThemeNoneAhead() {
	// Find the last theme space and ask past it
	board := s.service.Board()
	last := -1
	for i := len(board.Spaces) - 1; i >= 0; i-- {
		if board.Spaces[i].Type == model.SpaceTheme {
			last = i
			break
		}
	}
	s.Require().GreaterOrEqual(last, 0)
	s.Equal(-1, s.service.NextSameTheme(last))
}

func (s *BoardServiceSuite) TestNextSameThemeFromThemelessSpace() {
	s.Equal(-1, s.service.NextSameTheme(0))
	s.Equal(-1, s.service.NextSameTheme(8))
}
