package memory

import (
	"context"
	"time"

	"school-health-records/internal/domain/campaigns"
	"school-health-records/internal/domain/medevents"
	"school-health-records/internal/domain/students"

	"github.com/google/uuid"
)

// SeedSampleData carga los datos de muestra del portal (modo dev / demo).
// Los eventos reciben ids 1..5 por orden de inserción.
func SeedSampleData(evRepo medevents.Repository, stRepo students.Repository, cRepo campaigns.Repository) error {
	ctx := context.Background()
	now := time.Now()

	for _, e := range sampleEvents() {
		if _, err := evRepo.Create(ctx, e); err != nil {
			return err
		}
	}

	for _, st := range sampleStudents(now) {
		if err := stRepo.Create(ctx, st); err != nil {
			return err
		}
	}

	for _, c := range sampleCampaigns(now) {
		if err := cRepo.Create(ctx, c); err != nil {
			return err
		}
	}

	return nil
}

func sampleEvents() []medevents.MedicalEvent {
	recorded := date(2025, 5, 20)
	return []medevents.MedicalEvent{
		{
			StudentName: "Liam Johnson",
			StudentID:   "ST-2025-001",
			Grade:       "3B",
			Type:        medevents.EventTypeInjury,
			Subtype:     "Sprain",
			OccurredAt:  at(2025, 5, 14, 10, 15),
			RecordedAt:  recorded,
			Location:    "Playground",
			Description: "Twisted ankle during recess",
			Severity:    medevents.SeverityMinor,
			Treatment:   "Ice pack, rest",
			TreatedBy:   "School nurse",
			Status:      medevents.StatusResolved,
		},
		{
			StudentName:      "Emma Wilson",
			StudentID:        "ST-2025-002",
			Grade:            "4A",
			Type:             medevents.EventTypeIllness,
			Subtype:          "Fever",
			OccurredAt:       at(2025, 5, 15, 9, 30),
			RecordedAt:       recorded,
			Location:         "Classroom 4A",
			Description:      "38.5C fever, sent home",
			Severity:         medevents.SeverityModerate,
			FollowUpRequired: true,
			FollowUpDate:     datePtr(2025, 5, 22),
			ParentNotified:   true,
			NotifiedAt:       timePtr(at(2025, 5, 15, 10, 0)),
			NotifiedBy:       "nurse-1",
			Status:           medevents.StatusFollowUp,
		},
		{
			StudentName:    "Sophia Davis",
			StudentID:      "ST-2025-003",
			Grade:          "5A",
			Type:           medevents.EventTypeMedicalCondition,
			Subtype:        "Asthma",
			OccurredAt:     at(2025, 5, 17, 11, 0),
			RecordedAt:     recorded,
			Location:       "Gym",
			Description:    "Asthma attack during PE class",
			Severity:       medevents.SeveritySerious,
			Treatment:      "Personal inhaler administered",
			TreatedBy:      "PE teacher + school nurse",
			ParentNotified: true,
			NotifiedAt:     timePtr(at(2025, 5, 17, 11, 20)),
			NotifiedBy:     "nurse-1",
			Status:         medevents.StatusResolved,
		},
		{
			StudentName:      "Noah Martinez",
			StudentID:        "ST-2025-004",
			Grade:            "2C",
			Type:             medevents.EventTypeAllergicReaction,
			Subtype:          "Insect Sting",
			OccurredAt:       at(2025, 5, 19, 13, 45),
			RecordedAt:       recorded,
			Location:         "Schoolyard",
			Description:      "Bee sting on forearm, localized swelling",
			Severity:         medevents.SeverityModerate,
			Treatment:        "Antihistamine cream",
			TreatedBy:        "School nurse",
			FollowUpRequired: true,
			FollowUpDate:     datePtr(2025, 5, 26),
			Status:           medevents.StatusInProgress,
		},
		{
			StudentName: "Olivia Brown",
			StudentID:   "ST-2025-005",
			Grade:       "1A",
			Type:        medevents.EventTypeInfectiousDisease,
			Subtype:     "Chickenpox",
			OccurredAt:  at(2025, 5, 20, 8, 20),
			RecordedAt:  recorded,
			Location:    "Classroom 1A",
			Description: "Visible rash, suspected chickenpox, isolated pending pickup",
			Severity:    medevents.SeveritySevere,
			Status:      medevents.StatusOpen,
		},
	}
}

func sampleStudents(now time.Time) []students.Student {
	mk := func(code, name, grade string, gender students.Gender, parent, phone string) students.Student {
		return students.Student{
			ID:          uuid.NewString(),
			Code:        code,
			FullName:    name,
			Grade:       grade,
			Gender:      gender,
			ParentName:  parent,
			ParentPhone: phone,
			Active:      true,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	}
	return []students.Student{
		mk("ST-2025-001", "Liam Johnson", "3B", students.GenderMale, "Sarah Johnson", "+1-555-0101"),
		mk("ST-2025-002", "Emma Wilson", "4A", students.GenderFemale, "David Wilson", "+1-555-0102"),
		mk("ST-2025-003", "Sophia Davis", "5A", students.GenderFemale, "Maria Davis", "+1-555-0103"),
		mk("ST-2025-004", "Noah Martinez", "2C", students.GenderMale, "Carlos Martinez", "+1-555-0104"),
		mk("ST-2025-005", "Olivia Brown", "1A", students.GenderFemale, "Jessica Brown", "+1-555-0105"),
	}
}

func sampleCampaigns(now time.Time) []campaigns.Campaign {
	return []campaigns.Campaign{
		{
			ID:            uuid.NewString(),
			Kind:          campaigns.KindVaccination,
			Name:          "Influenza 2025",
			Description:   "Annual flu vaccination round",
			ScheduledDate: datePtr(2025, 6, 10),
			TargetGrades:  []string{"1A", "2C", "3B", "4A", "5A"},
			Status:        campaigns.StatusScheduled,
			CreatedBy:     "admin-1",
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:           uuid.NewString(),
			Kind:         campaigns.KindHealthCheck,
			Name:         "Annual health check",
			Description:  "Height, weight, vision and dental screening",
			TargetGrades: []string{"1A", "2C"},
			Status:       campaigns.StatusDraft,
			CreatedBy:    "admin-1",
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func timePtr(t time.Time) *time.Time {
	return &t
}
