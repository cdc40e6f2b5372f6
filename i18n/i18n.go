// Package i18n translates the user-visible strings: preset names and control
// labels. English keys are returned untouched when no translation exists.
package i18n

import (
	"strings"
	"sync"

	"github.com/jeandeaual/go-locale"
	"go.uber.org/zap"
)

var (
	mu   sync.RWMutex
	lang = "en"
)

var supported = []string{"pt", "es", "ru"}

var translations = map[string]map[string]string{
	"Kitchen Timer": {
		"pt": "Temporizador de Cozinha",
		"es": "Temporizador de Cocina",
		"ru": "Кухонный таймер",
	},
	"Popcorn": {
		"pt": "Pipoca",
		"es": "Palomitas",
		"ru": "Попкорн",
	},
	"Beverage": {
		"pt": "Bebida",
		"es": "Bebida",
		"ru": "Напиток",
	},
	"Vegetable": {
		"pt": "Legumes",
		"es": "Verduras",
		"ru": "Овощи",
	},
	"Dumplings": {
		"pt": "Bolinhos",
		"es": "Empanadillas",
		"ru": "Пельмени",
	},
	"Fish": {
		"pt": "Peixe",
		"es": "Pescado",
		"ru": "Рыба",
	},
	"Stir Fry": {
		"pt": "Salteado",
		"es": "Salteado",
		"ru": "Стир-фрай",
	},
	"Start": {
		"pt": "Iniciar",
		"es": "Iniciar",
		"ru": "Старт",
	},
	"Pause": {
		"pt": "Pausar",
		"es": "Pausar",
		"ru": "Пауза",
	},
	"Resume": {
		"pt": "Retomar",
		"es": "Reanudar",
		"ru": "Продолжить",
	},
	"Cancel": {
		"pt": "Cancelar",
		"es": "Cancelar",
		"ru": "Отмена",
	},
	"Custom": {
		"pt": "Personalizado",
		"es": "Personalizado",
		"ru": "Своё время",
	},
	"Idle": {
		"pt": "Parado",
		"es": "Detenido",
		"ru": "Ожидание",
	},
	"Running": {
		"pt": "Em andamento",
		"es": "En marcha",
		"ru": "Идёт",
	},
	"Paused": {
		"pt": "Pausado",
		"es": "En pausa",
		"ru": "На паузе",
	},
	"Done": {
		"pt": "Pronto",
		"es": "Listo",
		"ru": "Готово",
	},
	"quit": {
		"pt": "sair",
		"es": "salir",
		"ru": "выход",
	},
}

// Detect picks the UI language. A non-empty forced value (from configuration)
// wins; otherwise the first system locale is used. Unsupported languages fall
// back to English.
func Detect(forced string, logger *zap.Logger) string {
	if logger == nil {
		logger = zap.NewNop()
	}

	if forced = strings.TrimSpace(forced); forced != "" {
		logger.Info("language forced by configuration", zap.String("lang", forced))
		return SetLang(forced)
	}

	userLocales, err := locale.GetLocales()
	if err != nil {
		logger.Warn("could not get user locale, defaulting to english", zap.Error(err))
		return SetLang("en")
	}
	if len(userLocales) == 0 {
		logger.Info("no user locale detected, defaulting to english")
		return SetLang("en")
	}

	logger.Debug("detected user locale", zap.String("locale", userLocales[0]))
	l := SetLang(userLocales[0])
	logger.Info("language set", zap.String("lang", l))
	return l
}

// SetLang selects the language from a locale tag such as "pt-BR" or "es_ES"
// and returns the language actually in use.
func SetLang(tag string) string {
	l := normalize(tag)
	mu.Lock()
	lang = l
	mu.Unlock()
	return l
}

func normalize(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	for _, s := range supported {
		if strings.HasPrefix(tag, s) {
			return s
		}
	}
	return "en"
}

// T returns the translation of key in the current language.
func T(key string) string {
	mu.RLock()
	l := lang
	mu.RUnlock()
	if translated, ok := translations[key][l]; ok {
		return translated
	}
	return key
}

// GetLang returns the current language.
func GetLang() string {
	mu.RLock()
	defer mu.RUnlock()
	return lang
}
