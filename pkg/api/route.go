package api

// RouteResponse is the subset of an OSRM /route/v1 response the client reads.
type RouteResponse struct {
	Code    string  `json:"code"`              // "Ok" при успехе, иначе код ошибки OSRM
	Message string  `json:"message,omitempty"` // описание ошибки
	Routes  []Route `json:"routes"`            // найденные маршруты, первый лучший
}

// Route представляет один маршрут OSRM
type Route struct {
	Geometry LineString `json:"geometry"` // геометрия в формате GeoJSON
	Distance float64    `json:"distance"` // длина маршрута в метрах
	Duration float64    `json:"duration"` // время в пути в секундах
}

// LineString is a GeoJSON LineString. Coordinates are [lng, lat] pairs.
type LineString struct {
	Type        string       `json:"type"`
	Coordinates [][2]float64 `json:"coordinates"`
}
