package booking

import (
	"fmt"
	"time"
)

// The practice runs in Spanish; the confirmation summary matches the
// original site's es-ES long date format.

var spanishDays = [...]string{
	"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
}

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

func spanishDate(t time.Time) string {
	return fmt.Sprintf("%s, %d de %s de %d",
		spanishDays[t.Weekday()], t.Day(), spanishMonths[t.Month()-1], t.Year())
}
