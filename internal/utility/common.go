package utility

import (
	"time"
)

// UnixMilli devuelve los milisegundos del tiempo dado
func UnixMilli(t time.Time) int64 {
	return t.Round(time.Millisecond).UnixNano() / (int64(time.Millisecond) / int64(time.Nanosecond))
}

// CurrentTimeInMilli devuelve el timestamp actual en milisegundos
func CurrentTimeInMilli() int64 {
	return UnixMilli(time.Now())
}
