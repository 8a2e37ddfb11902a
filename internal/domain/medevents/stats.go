package medevents

// Stats son conteos descriptivos sobre una secuencia de eventos.
// Solo conteos crudos: porcentajes y formatos son tema del cliente
// (y así totalEvents = 0 no produce divisiones por cero acá).
type Stats struct {
	TotalEvents int `json:"total_events"`

	// Los mapas solo contienen los valores observados; no se rellenan
	// con ceros del catálogo completo.
	CountByType     map[EventType]int `json:"count_by_type"`
	CountBySeverity map[Severity]int  `json:"count_by_severity"`
	CountByStatus   map[Status]int    `json:"count_by_status"`

	OpenEvents       int `json:"open_events"`
	FollowUpRequired int `json:"follow_up_required"`
}

// Summarize es total sobre cualquier secuencia, incluida la vacía.
func Summarize(events []MedicalEvent) Stats {
	st := Stats{
		TotalEvents:     len(events),
		CountByType:     make(map[EventType]int),
		CountBySeverity: make(map[Severity]int),
		CountByStatus:   make(map[Status]int),
	}

	for _, e := range events {
		st.CountByType[e.Type]++
		st.CountBySeverity[e.Severity]++
		st.CountByStatus[e.Status]++

		if e.Status == StatusOpen {
			st.OpenEvents++
		}
		if e.FollowUpRequired {
			st.FollowUpRequired++
		}
	}

	return st
}
