package medevents

// Catálogo cerrado de vocabulario. La API almacena y compara siempre los
// valores canónicos en inglés; la localización es tema del cliente.

var eventTypes = []EventType{
	EventTypeInjury,
	EventTypeIllness,
	EventTypeMedicalCondition,
	EventTypeInfectiousDisease,
	EventTypeAllergicReaction,
	EventTypeMentalHealth,
	EventTypeOther,
}

var eventSubtypes = map[EventType][]string{
	EventTypeInjury: {
		"Cut/Scrape", "Bruise", "Sprain", "Fracture", "Head Injury", "Burn", "Other",
	},
	EventTypeIllness: {
		"Fever", "Headache", "Stomach Ache", "Nausea/Vomiting", "Dizziness", "Sore Throat", "Other",
	},
	EventTypeMedicalCondition: {
		"Asthma", "Diabetes", "Epilepsy", "Other",
	},
	EventTypeInfectiousDisease: {
		"Chickenpox", "Influenza", "Hand-Foot-Mouth", "Conjunctivitis", "Other",
	},
	EventTypeAllergicReaction: {
		"Food Allergy", "Insect Sting", "Skin Rash", "Anaphylaxis", "Other",
	},
	EventTypeMentalHealth: {
		"Anxiety", "Panic Attack", "Other",
	},
	EventTypeOther: {
		"Other",
	},
}

var severityLevels = []Severity{
	SeverityMinor,
	SeverityModerate,
	SeveritySerious,
	SeveritySevere,
}

var statusOptions = []Status{
	StatusOpen,
	StatusInProgress,
	StatusFollowUp,
	StatusResolved,
}

// Catalog es la tabla de consulta que se expone en GET /catalog.
type Catalog struct {
	EventTypes    []EventType            `json:"event_types"`
	EventSubtypes map[EventType][]string `json:"event_subtypes"`
	Severities    []Severity             `json:"severities"`
	Statuses      []Status               `json:"statuses"`
}

// GetCatalog devuelve copias; el catálogo en sí es inmutable.
func GetCatalog() Catalog {
	subtypes := make(map[EventType][]string, len(eventSubtypes))
	for t, subs := range eventSubtypes {
		subtypes[t] = append([]string(nil), subs...)
	}
	return Catalog{
		EventTypes:    append([]EventType(nil), eventTypes...),
		EventSubtypes: subtypes,
		Severities:    append([]Severity(nil), severityLevels...),
		Statuses:      append([]Status(nil), statusOptions...),
	}
}

func ValidEventType(t EventType) bool {
	_, ok := eventSubtypes[t]
	return ok
}

// ValidSubtype valida el par (tipo, subtipo). Subtipo vacío es válido:
// el formulario del portal no siempre lo completa.
func ValidSubtype(t EventType, subtype string) bool {
	if subtype == "" {
		return true
	}
	subs, ok := eventSubtypes[t]
	if !ok {
		return false
	}
	for _, s := range subs {
		if s == subtype {
			return true
		}
	}
	return false
}

func ValidSeverity(s Severity) bool {
	for _, v := range severityLevels {
		if v == s {
			return true
		}
	}
	return false
}

func ValidStatus(s Status) bool {
	for _, v := range statusOptions {
		if v == s {
			return true
		}
	}
	return false
}
