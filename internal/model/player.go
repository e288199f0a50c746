package model

// PlayerID identifies a player within a single game (1-based, stable across
// roster edits)
type PlayerID int

// Archetype is a selectable player identity with presentational attributes
type Archetype struct {
	Name    string
	Icon    string
	Color   string
	BgColor string
}

// Archetypes is the fixed catalogue players choose from.
// Order matters: new players take the first archetype not already in use.
var Archetypes = []Archetype{
	{Name: "Hoplita", Icon: "🛡️", Color: "text-red-700", BgColor: "bg-red-100"},
	{Name: "Filósofo", Icon: "📚", Color: "text-blue-700", BgColor: "bg-blue-100"},
	{Name: "Sacerdotisa", Icon: "🏛️", Color: "text-purple-700", BgColor: "bg-purple-100"},
	{Name: "Atleta", Icon: "🏃", Color: "text-green-700", BgColor: "bg-green-100"},
	{Name: "Oráculo", Icon: "🔮", Color: "text-indigo-700", BgColor: "bg-indigo-100"},
	{Name: "Artesão", Icon: "🏺", Color: "text-orange-700", BgColor: "bg-orange-100"},
	{Name: "Poeta", Icon: "🎭", Color: "text-pink-700", BgColor: "bg-pink-100"},
	{Name: "Guerreiro", Icon: "⚔️", Color: "text-gray-700", BgColor: "bg-gray-100"},
}

// ArchetypeByName returns the archetype with the given name, or nil
func ArchetypeByName(name string) *Archetype {
	for i := range Archetypes {
		if Archetypes[i].Name == name {
			return &Archetypes[i]
		}
	}
	return nil
}

// Player represents one game participant
type Player struct {
	ID         PlayerID
	Name       string // archetype name
	CustomName string // optional display name override
	Position   int    // board index, [0, BoardLength-1]
	Artifacts  []Theme
	Powers     []PowerID

	// Presentational attributes copied from the archetype
	Icon    string
	Color   string
	BgColor string
}

// NewPlayer creates a player at the start position with the given archetype
func NewPlayer(id PlayerID, archetype Archetype) Player {
	return Player{
		ID:      id,
		Name:    archetype.Name,
		Icon:    archetype.Icon,
		Color:   archetype.Color,
		BgColor: archetype.BgColor,
	}
}

// DisplayName returns the custom name if set, otherwise the archetype name
func (p *Player) DisplayName() string {
	if p.CustomName != "" {
		return p.CustomName
	}
	return p.Name
}

// HasArtifact reports whether the player owns the artifact for a theme
func (p *Player) HasArtifact(theme Theme) bool {
	for _, t := range p.Artifacts {
		if t == theme {
			return true
		}
	}
	return false
}

// GrantArtifact adds the theme's artifact if not already owned.
// Returns true if the artifact was granted.
func (p *Player) GrantArtifact(theme Theme) bool {
	if p.HasArtifact(theme) {
		return false
	}
	p.Artifacts = append(p.Artifacts, theme)
	return true
}

// HasPower reports whether the player holds the given power
func (p *Player) HasPower(power PowerID) bool {
	for _, pw := range p.Powers {
		if pw == power {
			return true
		}
	}
	return false
}

// GrantPower adds a power if not already held; powers are a set.
// Returns true if the power was granted.
func (p *Player) GrantPower(power PowerID) bool {
	if p.HasPower(power) {
		return false
	}
	p.Powers = append(p.Powers, power)
	return true
}

// ConsumePower removes one instance of the power.
// Returns true if the player held it.
func (p *Player) ConsumePower(power PowerID) bool {
	for i, pw := range p.Powers {
		if pw == power {
			p.Powers = append(p.Powers[:i], p.Powers[i+1:]...)
			return true
		}
	}
	return false
}

// QuestionPowers returns the held powers usable in the question context
func (p *Player) QuestionPowers() []PowerID {
	var powers []PowerID
	for _, pw := range p.Powers {
		if PowerUsableIn(pw, PowerContextQuestion) {
			powers = append(powers, pw)
		}
	}
	return powers
}
