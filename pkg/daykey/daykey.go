package daykey

import (
	"errors"
	"strconv"
	"strings"
)

// WeekDay - канонический код дня недели: 0=воскресенье ... 6=суббота.
// Все внешние представления (полное имя, двухбуквенное сокращение,
// числовой ключ 0-7) приводятся к этому типу на границе системы.
type WeekDay int

const (
	Sunday WeekDay = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var ErrInvalidDayKey = errors.New("InvalidDayKey")

// Kind - вид исходного ключа дня. Нужен для детерминированного
// выбора при дубликатах одного и того же дня в сырых данных.
type Kind int

const (
	KindUnknown Kind = iota
	KindNumeric
	KindFullName
	KindAbbrev
)

var fullNames = map[string]WeekDay{
	"воскресенье": Sunday,
	"понедельник": Monday,
	"вторник":     Tuesday,
	"среда":       Wednesday,
	"четверг":     Thursday,
	"пятница":     Friday,
	"суббота":     Saturday,
}

var abbrevs = map[string]WeekDay{
	"вс": Sunday,
	"пн": Monday,
	"вт": Tuesday,
	"ср": Wednesday,
	"чт": Thursday,
	"пт": Friday,
	"сб": Saturday,
}

// Normalize приводит сырой ключ дня к каноническому WeekDay.
// Принимает цифровые строки "0"-"7" (7 сворачивается в воскресенье),
// полные русские названия и двухбуквенные сокращения без учета регистра.
// Нормализация идемпотентна: Normalize(d.Key()) возвращает d.
func Normalize(raw string) (WeekDay, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, ErrInvalidDayKey
	}

	if n, err := strconv.Atoi(trimmed); err == nil {
		return FromInt(n)
	}

	lowered := strings.ToLower(trimmed)
	if day, ok := fullNames[lowered]; ok {
		return day, nil
	}
	if day, ok := abbrevs[lowered]; ok {
		return day, nil
	}

	return 0, ErrInvalidDayKey
}

// FromInt приводит числовой код 0-7 к WeekDay. Внешний код 7 тоже
// означает воскресенье и сворачивается в 0.
func FromInt(n int) (WeekDay, error) {
	if n < 0 || n > 7 {
		return 0, ErrInvalidDayKey
	}
	if n == 7 {
		return Sunday, nil
	}
	return WeekDay(n), nil
}

// KeyKind классифицирует сырой ключ, не выполняя нормализацию.
func KeyKind(raw string) Kind {
	trimmed := strings.TrimSpace(raw)
	if _, err := strconv.Atoi(trimmed); err == nil {
		return KindNumeric
	}
	lowered := strings.ToLower(trimmed)
	if _, ok := fullNames[lowered]; ok {
		return KindFullName
	}
	if _, ok := abbrevs[lowered]; ok {
		return KindAbbrev
	}
	return KindUnknown
}

// Key возвращает канонический цифровой ключ дня ("0"-"6").
func (d WeekDay) Key() string {
	return strconv.Itoa(int(d))
}

// String возвращает полное русское название дня.
func (d WeekDay) String() string {
	switch d {
	case Sunday:
		return "Воскресенье"
	case Monday:
		return "Понедельник"
	case Tuesday:
		return "Вторник"
	case Wednesday:
		return "Среда"
	case Thursday:
		return "Четверг"
	case Friday:
		return "Пятница"
	case Saturday:
		return "Суббота"
	default:
		return ""
	}
}

// Abbrev возвращает двухбуквенное сокращение дня.
func (d WeekDay) Abbrev() string {
	switch d {
	case Sunday:
		return "Вс"
	case Monday:
		return "Пн"
	case Tuesday:
		return "Вт"
	case Wednesday:
		return "Ср"
	case Thursday:
		return "Чт"
	case Friday:
		return "Пт"
	case Saturday:
		return "Сб"
	default:
		return ""
	}
}

// IsValid проверяет, что код дня лежит в каноническом диапазоне.
func (d WeekDay) IsValid() bool {
	return d >= Sunday && d <= Saturday
}

// All возвращает все дни недели в порядке отображения недели
// (понедельник первым, как в расписании салона).
func All() []WeekDay {
	return []WeekDay{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}
