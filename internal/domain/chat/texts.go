package chat

// User-facing copy (Spanish).
const (
	PromptText = "Escriba el nombre de una variable o 'lista' para ver opciones."

	NotFoundText = "No encontré esa variable. Escriba 'lista' para ver alternativas o intente con otro nombre."

	HelpText = "Puedo ayudar a identificar variables del comercio internacional y su ficha:\n" +
		"- Escriba el nombre de una variable: 'Valor FOB', 'Código HS', 'Incoterm', 'Tiempo de tránsito', etc.\n" +
		"- Escriba 'lista' para ver todas las variables.\n" +
		"También explico tipificación (cualitativa/cuantitativa; discreta/continua) y escalas (nominal, ordinal, intervalo, razón)."

	TypologyText = "Tipificación:\n" +
		"- Cualitativa nominal: categorías sin orden (p. ej., Incoterm, país).\n" +
		"- Cualitativa ordinal: categorías con orden (p. ej., nivel de prioridad).\n" +
		"- Cuantitativa discreta: conteos enteros (p. ej., tamaño de pedido).\n" +
		"- Cuantitativa continua: valores en un intervalo (p. ej., peso, tiempo).\n\n" +
		"Escalas de medición:\n" +
		"- Nominal: etiquetas (sin orden).\n" +
		"- Ordinal: orden sin distancia fija.\n" +
		"- Intervalo: diferencias significativas, cero arbitrario (p. ej., °C).\n" +
		"- Razón: cero absoluto, proporciones válidas (p. ej., USD, kg, días)."

	listHeader = "Variables disponibles:\n- "
)

// helpSynonyms must equal the whole lowercased message.
var helpSynonyms = map[string]struct{}{
	"ayuda":              {},
	"help":               {},
	"¿qué puedes hacer?": {},
	"que puedes hacer":   {},
	"menu":               {},
	"menú":               {},
}

// listKeywords and typologyKeywords match anywhere in the message.
var (
	listKeywords     = []string{"lista", "variables"}
	typologyKeywords = []string{"cualitativa", "cuantitativa", "escala", "discreta", "continua"}
)
