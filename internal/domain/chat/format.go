package chat

import (
	"fmt"
	"strings"

	"tradechat/internal/domain/catalog"
)

// FormatVariable renders a variable as the fixed multi-line card shown in the chat.
// Field contents are passed through as is.
func FormatVariable(v catalog.Variable) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s**\n", v.Name)
	fmt.Fprintf(&b, "- Concepto: %s\n", v.Concept)
	fmt.Fprintf(&b, "- Fuente: %s (%s)\n", v.SourceName, v.SourceURL)
	fmt.Fprintf(&b, "- Unidad de medida: %s\n", v.Unit)
	fmt.Fprintf(&b, "- Tipificación: %s\n", v.Type)
	fmt.Fprintf(&b, "- Escala de medición: %s\n", v.Scale)
	fmt.Fprintf(&b, "- Campos de aplicación: %s", strings.Join(v.Applications, ", "))
	return b.String()
}

func formatNames(names []string) string {
	return listHeader + strings.Join(names, "\n- ")
}
