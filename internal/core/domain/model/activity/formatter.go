package activity

import (
	"strconv"
	"strings"
)

// FormatFloat renders quantities and totals for activity parameters using a
// fixed decimal-display rule: rounded to two decimals, trailing zeros trimmed.
// Raw floating-point serialization is never exposed in the activity stream.
func FormatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// messageCatalog maps translation keys to their default (English) templates.
// Placeholders use the %name% convention of the activity stream.
func messageCatalog() map[string]string {
	return map[string]string{
		KeySalesOrderCreated:       "Order %ref% has been created",
		KeyRowQuantityTotalUpdated: "Order %order_ref%, product %ref%: quantity changed from %old_quantity% to %quantity%, total changed from %old_total% to %total%",
		KeyRowQuantityUpdated:      "Order %order_ref%, product %ref%: quantity changed from %old_quantity% to %quantity%",
		KeyRowTotalUpdated:         "Order %order_ref%, product %ref%: total changed from %old_total% to %total%",
	}
}

// Formatter resolves translation keys to display text.
// It is the default in-process rendering used by logs and the HTTP read models;
// full localization stays outside the core.
type Formatter struct{}

// NewFormatter creates a Formatter.
func NewFormatter() Formatter {
	return Formatter{}
}

// Format renders the template for key, substituting every %name% placeholder
// from params. Unknown keys fall back to the key itself so an entry is never
// rendered empty.
func (Formatter) Format(key string, params map[string]string) string {
	template, ok := messageCatalog()[key]
	if !ok {
		return key
	}

	replacements := make([]string, 0, len(params)*2)
	for name, value := range params {
		replacements = append(replacements, "%"+name+"%", value)
	}
	return strings.NewReplacer(replacements...).Replace(template)
}
