package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// ParseDay interpreta um dia "2006-01-02" no timezone informado
func ParseDay(day string, tz string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", day, Location(tz))
}

// DayKey normaliza um instante para a chave de dia "2006-01-02"
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
