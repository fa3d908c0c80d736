package domain

import (
	"fmt"
	"strings"
	"time"
)

// Month representa um mês do calendário (1 = janeiro ... 12 = dezembro)
type Month int

const MonthsInYear = 12

var monthNames = [MonthsInYear]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// CalendarMonths retorna os doze meses na ordem canônica do calendário
func CalendarMonths() []Month {
	months := make([]Month, MonthsInYear)
	for i := range months {
		months[i] = Month(i + 1)
	}
	return months
}

func (m Month) Valid() bool {
	return m >= 1 && m <= MonthsInYear
}

// Index retorna a posição do mês na série ordenada (0..11)
func (m Month) Index() int {
	return int(m) - 1
}

func (m Month) String() string {
	if !m.Valid() {
		return ""
	}
	return monthNames[m.Index()]
}

// Short retorna a abreviação de três letras usada nos eixos dos gráficos
func (m Month) Short() string {
	if !m.Valid() {
		return ""
	}
	return time.Month(m).String()[:3]
}

func (m Month) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Month) UnmarshalText(text []byte) error {
	parsed, ok := ParseMonth(string(text))
	if !ok {
		return fmt.Errorf("invalid month %q", text)
	}
	*m = parsed
	return nil
}

// ParseMonth aceita o nome completo em inglês ou a abreviação de três letras, sem diferenciar maiúsculas
func ParseMonth(label string) (Month, bool) {
	label = strings.TrimSpace(label)
	for i, name := range monthNames {
		if strings.EqualFold(label, name) || strings.EqualFold(label, name[:3]) {
			return Month(i + 1), true
		}
	}
	return 0, false
}
