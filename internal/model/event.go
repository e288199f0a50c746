package model

// EventEffects is the mechanical effect bundle of a special event.
// Effects are applied in a fixed order: power grant, movement delta,
// teleport, extra turn.
type EventEffects struct {
	Power     PowerID // grant this power, if non-empty
	Movement  int     // move by this delta, clamped at space 0
	ExtraTurn bool    // suppress the turn advance after resolution
	Teleport  bool    // jump to the next space of the same theme
	Message   string  // history fragment, appended after the player's name
}

// SpecialEvent is one entry of the fixed event table
type SpecialEvent struct {
	Name        string
	Description string
	Effects     EventEffects
}

// SpecialEvents is the fixed ordered event table. The event for a special
// space is selected deterministically by space index modulo the table length,
// never randomly.
var SpecialEvents = []SpecialEvent{
	{
		Name:        "Oráculo de Delfos",
		Description: "A Pítia sussurra segredos dos deuses em seus ouvidos, concedendo sabedoria para as próximas perguntas.",
		Effects: EventEffects{
			Power:   PowerFiftyFifty,
			Message: "recebeu o poder do Oráculo (50/50)!",
		},
	},
	{
		Name:        "Fúria de Ares",
		Description: "O deus da guerra está furioso! Sua ira o empurra para trás no campo de batalha.",
		Effects: EventEffects{
			Movement: -3,
			Message:  "sofreu a Fúria de Ares e voltou 3 casas!",
		},
	},
	{
		Name:        "Bênção de Atena",
		Description: "A deusa da sabedoria sorri para você, concedendo uma segunda chance.",
		Effects: EventEffects{
			ExtraTurn: true,
			Message:   "recebeu a Bênção de Atena e pode jogar novamente!",
		},
	},
	{
		Name:        "Labirinto de Creta",
		Description: "Você se perde nos corredores do terrível labirinto do Minotauro.",
		Effects: EventEffects{
			Power:   PowerSkipTurn,
			Message: "se perdeu no Labirinto de Creta e perderá o próximo turno!",
		},
	},
	{
		Name:        "Atalho do Hermes",
		Description: "O mensageiro dos deuses oferece um caminho mais rápido através dos céus.",
		Effects: EventEffects{
			Teleport: true,
			Message:  "usou o Atalho do Hermes!",
		},
	},
	{
		Name:        "Favor de Zeus",
		Description: "O rei dos deuses concede sua proteção divina contra adversidades.",
		Effects: EventEffects{
			Power:   PowerShield,
			Message: "recebeu o Favor de Zeus (Escudo Divino)!",
		},
	},
	{
		Name:        "Maldição de Hades",
		Description: "O senhor do submundo marca você com sua maldição sombria.",
		Effects: EventEffects{
			Movement: -2,
			Power:    PowerCursed,
			Message:  "foi amaldiçoado por Hades!",
		},
	},
	{
		Name:        "Sabedoria de Apolo",
		Description: "O deus da luz e do conhecimento ilumina sua mente com sabedoria divina.",
		Effects: EventEffects{
			Power:   PowerDivineInsight,
			Message: "recebeu a Sabedoria de Apolo!",
		},
	},
}

// EventForSpace selects the event triggered by landing on the given space
// index. Selection is by index modulo the table length, so each special space
// always yields the same event.
func EventForSpace(spaceIndex int) SpecialEvent {
	return SpecialEvents[spaceIndex%len(SpecialEvents)]
}
