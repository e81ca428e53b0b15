package entity

import "time"

// TrackPoint — географическая точка трека с абсолютной меткой времени.
// Точки в треке упорядочиваются по времени; порядок на входе не гарантирован.
type TrackPoint struct {
	Latitude  float64   // широта, WGS 84
	Longitude float64   // долгота, WGS 84
	Time      time.Time // момент фиксации координаты
}

// ResolvedLocation — координата, восстановленная для момента времени: либо
// скопированная из точки трека, либо линейно интерполированная между двумя
// соседними точками.
type ResolvedLocation struct {
	Latitude  float64
	Longitude float64
}
