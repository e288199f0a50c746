package model

// PowerID identifies a consumable special power
type PowerID string

const (
	PowerFiftyFifty    PowerID = "50/50"
	PowerTimeFreeze    PowerID = "Time Freeze"
	PowerDivineInsight PowerID = "Divine Insight"
	PowerShield        PowerID = "Shield"
	PowerSkipTurn      PowerID = "Skip Turn"
	PowerCursed        PowerID = "Cursed"
)

// PowerContext is the kind of interaction a power may be activated in
type PowerContext string

const (
	PowerContextQuestion PowerContext = "question"
)

// PowerInfo describes a power's presentation and where it applies
type PowerInfo struct {
	ID          PowerID
	Name        string
	Description string
	Contexts    []PowerContext
}

// PowerCatalogue maps each activatable power to its applicability.
// Skip Turn, Shield and Cursed are not listed: Skip Turn is consumed
// automatically on the holder's roll, and Shield and Cursed are marks with no
// activation of their own.
var PowerCatalogue = map[PowerID]PowerInfo{
	PowerFiftyFifty: {
		ID:          PowerFiftyFifty,
		Name:        "Oráculo 50/50",
		Description: "Remove duas opções incorretas da pergunta atual",
		Contexts:    []PowerContext{PowerContextQuestion},
	},
	PowerTimeFreeze: {
		ID:          PowerTimeFreeze,
		Name:        "Congelar Tempo",
		Description: "Dobra o tempo limite da próxima pergunta",
		Contexts:    []PowerContext{PowerContextQuestion},
	},
	PowerDivineInsight: {
		ID:          PowerDivineInsight,
		Name:        "Visão Divina",
		Description: "Revela a resposta correta",
		Contexts:    []PowerContext{PowerContextQuestion},
	},
}

// PowerUsableIn reports whether a power may be activated in the given context
func PowerUsableIn(power PowerID, context PowerContext) bool {
	info, ok := PowerCatalogue[power]
	if !ok {
		return false
	}
	for _, c := range info.Contexts {
		if c == context {
			return true
		}
	}
	return false
}
