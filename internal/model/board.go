package model

// Theme is one of the 7 mythological question categories
type Theme string

// The fixed theme cycle; a theme space at index i carries Themes[i % 7]
var Themes = []Theme{"Ilíada", "Odisseia", "Deuses", "Criaturas", "Titãs", "Heróis", "Mitos"}

// ThemeArtifacts maps each theme to its collectible artifact emoji
var ThemeArtifacts = map[Theme]string{
	"Ilíada":    "⚔️",
	"Odisseia":  "🏺",
	"Deuses":    "⚡",
	"Criaturas": "🐍",
	"Titãs":     "🏔️",
	"Heróis":    "🛡️",
	"Mitos":     "📜",
}

// BoardLength is the number of spaces on the track
const BoardLength = 60

// SpaceType classifies a board space
type SpaceType string

const (
	SpaceStart   SpaceType = "start"
	SpaceFinish  SpaceType = "finish"
	SpaceSpecial SpaceType = "special"
	SpaceTheme   SpaceType = "theme"
)

// Space is one position on the track
type Space struct {
	Index int
	Type  SpaceType
	Theme Theme // set only for theme spaces
}

// Board is the fixed 60-space track, generated once per process
type Board struct {
	Spaces []Space
}

// GenerateBoard builds the track: space 0 is the start, the last space is the
// finish, every 8th index is a special event space, everything else is a
// theme space cycling through the 7 themes.
func GenerateBoard() *Board {
	spaces := make([]Space, BoardLength)
	for i := 0; i < BoardLength; i++ {
		s := Space{Index: i}
		switch {
		case i == 0:
			s.Type = SpaceStart
		case i == BoardLength-1:
			s.Type = SpaceFinish
		case i%8 == 0:
			s.Type = SpaceSpecial
		default:
			s.Type = SpaceTheme
			s.Theme = Themes[i%len(Themes)]
		}
		spaces[i] = s
	}
	return &Board{Spaces: spaces}
}

// At returns the space at the given index
func (b *Board) At(index int) Space {
	return b.Spaces[index]
}

// NextSameTheme scans forward from (but excluding) the given index for the
// next space with the same theme. Returns -1 if there is none before the end
// of the board, or if the space at from has no theme.
func (b *Board) NextSameTheme(from int) int {
	theme := b.Spaces[from].Theme
	if theme == "" {
		return -1
	}
	for i := from + 1; i < len(b.Spaces); i++ {
		if b.Spaces[i].Theme == theme {
			return i
		}
	}
	return -1
}
