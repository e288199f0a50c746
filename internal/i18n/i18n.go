// Package i18n holds the interface label catalogue. Game content (questions,
// events, history) is Portuguese only; the chrome around it is translatable.
package i18n

// Labels is one language's interface strings
type Labels map[string]string

var catalogue = map[string]Labels{
	"pt-br": {
		"title":        "Olímpicos",
		"subtitle":     "Uma jornada pela mitologia grega",
		"new_game":     "Novo jogo",
		"join_game":    "Entrar em um jogo",
		"game_id":      "Código do jogo",
		"players":      "Jogadores",
		"add_player":   "Adicionar jogador",
		"remove":       "Remover",
		"start_game":   "Iniciar jornada",
		"roll_dice":    "Lançar dado",
		"history":      "Crônica da jornada",
		"artifacts":    "Artefatos",
		"powers":       "Poderes",
		"time_left":    "Tempo restante",
		"continue":     "Continuar",
		"use_power":    "Usar poder",
		"keep_powers":  "Guardar poderes",
		"victory":      "Vitória!",
		"play_again":   "Jogar novamente",
		"current_turn": "Vez de",
		"language":     "Idioma",
	},
	"en": {
		"title":        "Olímpicos",
		"subtitle":     "A journey through Greek mythology",
		"new_game":     "New game",
		"join_game":    "Join a game",
		"game_id":      "Game code",
		"players":      "Players",
		"add_player":   "Add player",
		"remove":       "Remove",
		"start_game":   "Begin the journey",
		"roll_dice":    "Roll the die",
		"history":      "Journey chronicle",
		"artifacts":    "Artifacts",
		"powers":       "Powers",
		"time_left":    "Time left",
		"continue":     "Continue",
		"use_power":    "Use power",
		"keep_powers":  "Keep powers",
		"victory":      "Victory!",
		"play_again":   "Play again",
		"current_turn": "Now playing",
		"language":     "Language",
	},
}

// T returns the label for a key in the given language, falling back to
// Portuguese and then to the key itself
func T(language, key string) string {
	if labels, ok := catalogue[language]; ok {
		if label, ok := labels[key]; ok {
			return label
		}
	}
	if label, ok := catalogue["pt-br"][key]; ok {
		return label
	}
	return key
}

// Supported reports whether a language has a label catalogue
func Supported(language string) bool {
	_, ok := catalogue[language]
	return ok
}

// SupportedLanguages returns the language codes with a catalogue, in a stable
// order for UI listing
func SupportedLanguages() []string {
	return []string{"pt-br", "en"}
}
